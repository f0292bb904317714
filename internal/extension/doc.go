// Package extension maps TMDB movie records to typed data-extension cells.
//
// The property registry is the single source of truth for every column the
// service can add: stable id, display name, and value kind. Each registered
// property has exactly one extraction rule; adding a property means one
// registry entry plus one rule, and the parity between the two is enforced
// by tests. Unknown property ids are not errors: they yield a fallback
// descriptor and an empty cell list.
package extension

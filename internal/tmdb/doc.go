// Package tmdb provides the TMDB API client used for reconciliation and
// data extension.
//
// It exposes movie search with an optional release-year filter and movie
// detail retrieval. Detail requests bundle credits via TMDB's
// append_to_response feature so a single call serves both candidate scoring
// and property extraction. Responses are strongly typed; callers decide how
// to degrade on failure. Options allow tests to supply custom HTTP clients
// without modifying production code.
package tmdb

// Package textutil provides the text canonicalization and similarity
// primitives used by reconciliation.
//
// Normalize is the single source of truth for title equality: every
// component that compares titles must go through TitlesMatch rather than
// doing its own case folding. TokenSortRatio supplies an order-insensitive
// name similarity on a 0-100 scale for director matching.
package textutil

// Package reconcile implements candidate generation and scoring for movie
// title reconciliation.
//
// A Query carries a free-text title plus optional year, director, and
// country hints. The Resolver merges year-scoped and general TMDB searches
// into a deduplicated candidate pool, scores each candidate on title
// equality, year proximity, director similarity, and country overlap, and
// flags candidates confident enough to auto-accept. A single unambiguous
// title+year hit short-circuits to a certain match without any detail
// fetches.
//
// Catalog failures never abort a resolution: a failed search contributes no
// candidates and a failed detail fetch scores as an empty record.
package reconcile

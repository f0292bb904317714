package extension

import (
	"sort"
	"strconv"

	"reelmatch/internal/tmdb"
)

const topCastSize = 5

// extractFunc converts one detail record into the cells for one property.
// Rules are pure; a rule that finds no usable data returns no cells.
type extractFunc func(d *tmdb.MovieDetails) []Cell

// extractors holds exactly one rule per registered property id. Registry
// and rule table must never drift; extract_test.go asserts the parity.
var extractors = map[string]extractFunc{
	"genres": func(d *tmdb.MovieDetails) []Cell {
		cells := make([]Cell, 0, len(d.Genres))
		for _, g := range d.Genres {
			if g.Name == "" {
				continue
			}
			cells = append(cells, EntityCell{ID: strconv.FormatInt(g.ID, 10), Name: g.Name})
		}
		return cells
	},
	"director": func(d *tmdb.MovieDetails) []Cell {
		var cells []Cell
		for _, m := range d.Credits.Crew {
			if m.Job != "Director" || m.Name == "" {
				continue
			}
			cells = append(cells, EntityCell{ID: strconv.FormatInt(m.ID, 10), Name: m.Name})
		}
		return cells
	},
	"cast":                 extractTopCast,
	"release_date":         textField(func(d *tmdb.MovieDetails) string { return d.ReleaseDate }),
	"tagline":              textField(func(d *tmdb.MovieDetails) string { return d.Tagline }),
	"overview":             textField(func(d *tmdb.MovieDetails) string { return d.Overview }),
	"original_language":    textField(func(d *tmdb.MovieDetails) string { return d.OriginalLanguage }),
	"original_title":       textField(func(d *tmdb.MovieDetails) string { return d.OriginalTitle }),
	"status":               textField(func(d *tmdb.MovieDetails) string { return d.Status }),
	"homepage":             textField(func(d *tmdb.MovieDetails) string { return d.Homepage }),
	"imdb_id":              textField(func(d *tmdb.MovieDetails) string { return d.IMDbID }),
	"runtime":              intField(func(d *tmdb.MovieDetails) int64 { return d.Runtime }),
	"budget":               intField(func(d *tmdb.MovieDetails) int64 { return d.Budget }),
	"revenue":              intField(func(d *tmdb.MovieDetails) int64 { return d.Revenue }),
	"vote_count":           intField(func(d *tmdb.MovieDetails) int64 { return d.VoteCount }),
	"vote_average":         decimalField(func(d *tmdb.MovieDetails) *float64 { return d.VoteAverage }),
	"popularity":           decimalField(func(d *tmdb.MovieDetails) *float64 { return d.Popularity }),
	"production_countries": extractCountries,
	"production_companies": extractCompanies,
}

// Extract returns the cells for one property of one detail record. Unknown
// property ids and nil records yield an empty list, never an error.
func Extract(propertyID string, d *tmdb.MovieDetails) []Cell {
	fn, ok := extractors[propertyID]
	if !ok || d == nil {
		return nil
	}
	return fn(d)
}

// textField emits a single TextCell when the selected field is non-empty.
func textField(get func(d *tmdb.MovieDetails) string) extractFunc {
	return func(d *tmdb.MovieDetails) []Cell {
		if v := get(d); v != "" {
			return []Cell{TextCell(v)}
		}
		return nil
	}
}

// intField emits a single IntCell, suppressing zero: the catalog uses 0 as
// its sentinel for "unknown" on numeric fields, so it must never surface as
// a real value.
func intField(get func(d *tmdb.MovieDetails) int64) extractFunc {
	return func(d *tmdb.MovieDetails) []Cell {
		if v := get(d); v != 0 {
			return []Cell{IntCell(v)}
		}
		return nil
	}
}

// decimalField emits a single DecimalCell when the field is present. Zero
// is a legitimate decimal value and is not suppressed.
func decimalField(get func(d *tmdb.MovieDetails) *float64) extractFunc {
	return func(d *tmdb.MovieDetails) []Cell {
		if v := get(d); v != nil {
			return []Cell{DecimalCell(*v)}
		}
		return nil
	}
}

// extractTopCast emits the five lowest-billed cast members with a name,
// ascending by billing order. A missing order sorts last.
func extractTopCast(d *tmdb.MovieDetails) []Cell {
	named := make([]tmdb.CastMember, 0, len(d.Credits.Cast))
	for _, m := range d.Credits.Cast {
		if m.Name != "" {
			named = append(named, m)
		}
	}
	sort.SliceStable(named, func(i, j int) bool {
		return billingOrder(named[i]) < billingOrder(named[j])
	})
	if len(named) > topCastSize {
		named = named[:topCastSize]
	}
	cells := make([]Cell, 0, len(named))
	for _, m := range named {
		cells = append(cells, EntityCell{ID: strconv.FormatInt(m.ID, 10), Name: m.Name})
	}
	return cells
}

func billingOrder(m tmdb.CastMember) int {
	if m.Order == nil {
		return int(^uint(0) >> 1)
	}
	return *m.Order
}

// extractCountries uses the ISO 3166-1 code as the stable entity id so
// country cells can themselves be reconciled.
func extractCountries(d *tmdb.MovieDetails) []Cell {
	cells := make([]Cell, 0, len(d.ProductionCountries))
	for _, c := range d.ProductionCountries {
		if c.Name == "" {
			continue
		}
		cells = append(cells, EntityCell{ID: c.ISOCode, Name: c.Name})
	}
	return cells
}

func extractCompanies(d *tmdb.MovieDetails) []Cell {
	cells := make([]Cell, 0, len(d.ProductionCompanies))
	for _, c := range d.ProductionCompanies {
		if c.Name == "" {
			continue
		}
		cells = append(cells, EntityCell{ID: strconv.FormatInt(c.ID, 10), Name: c.Name})
	}
	return cells
}

package extension

import "strings"

// Kind identifies the value type of an extension property, using the wire
// names of the data-extension protocol.
type Kind string

const (
	KindText    Kind = "str"
	KindInteger Kind = "int"
	KindDecimal Kind = "float"
	KindEntity  Kind = "entity"
)

// Property describes one extension column. IDs are stable and never reused
// for a different meaning.
type Property struct {
	ID   string
	Name string
	Kind Kind
}

// properties is the immutable registry of every extension property the
// service offers. Display names appear in the client's column picker.
var properties = []Property{
	{ID: "genres", Name: "Genres", Kind: KindEntity},
	{ID: "director", Name: "Director", Kind: KindEntity},
	{ID: "cast", Name: "Top Cast", Kind: KindEntity},
	{ID: "release_date", Name: "Release Date", Kind: KindText},
	{ID: "runtime", Name: "Runtime (min)", Kind: KindInteger},
	{ID: "tagline", Name: "Tagline", Kind: KindText},
	{ID: "overview", Name: "Overview", Kind: KindText},
	{ID: "original_language", Name: "Original Language", Kind: KindText},
	{ID: "original_title", Name: "Original Title", Kind: KindText},
	{ID: "production_countries", Name: "Production Countries", Kind: KindEntity},
	{ID: "production_companies", Name: "Production Companies", Kind: KindEntity},
	{ID: "budget", Name: "Budget (USD)", Kind: KindInteger},
	{ID: "revenue", Name: "Revenue (USD)", Kind: KindInteger},
	{ID: "vote_average", Name: "TMDB Rating", Kind: KindDecimal},
	{ID: "vote_count", Name: "Vote Count", Kind: KindInteger},
	{ID: "popularity", Name: "Popularity Score", Kind: KindDecimal},
	{ID: "status", Name: "Status", Kind: KindText},
	{ID: "homepage", Name: "Homepage", Kind: KindText},
	{ID: "imdb_id", Name: "IMDb ID", Kind: KindText},
}

var propertyIndex = buildIndex()

func buildIndex() map[string]Property {
	index := make(map[string]Property, len(properties))
	for _, p := range properties {
		index[p.ID] = p
	}
	return index
}

// Properties returns the full registry in declaration order.
func Properties() []Property {
	out := make([]Property, len(properties))
	copy(out, properties)
	return out
}

// Lookup returns the registered property for id.
func Lookup(id string) (Property, bool) {
	p, ok := propertyIndex[id]
	return p, ok
}

// Describe returns the property for id, or a text-kinded fallback whose
// display name is the raw id. Unknown properties are served, not rejected.
func Describe(id string) Property {
	if p, ok := propertyIndex[id]; ok {
		return p
	}
	return Property{ID: id, Name: id, Kind: KindText}
}

// Filter returns registered properties whose display name contains substr,
// case-insensitively. An empty substr returns the full registry.
func Filter(substr string) []Property {
	substr = strings.ToLower(substr)
	out := make([]Property, 0, len(properties))
	for _, p := range properties {
		if strings.Contains(strings.ToLower(p.Name), substr) {
			out = append(out, p)
		}
	}
	return out
}

package extension

import (
	"testing"

	"reelmatch/internal/tmdb"
)

func TestRegistryAndRulesStayInSync(t *testing.T) {
	for _, p := range Properties() {
		if _, ok := extractors[p.ID]; !ok {
			t.Errorf("registered property %q has no extraction rule", p.ID)
		}
	}
	for id := range extractors {
		if _, ok := Lookup(id); !ok {
			t.Errorf("extraction rule %q is not registered", id)
		}
	}
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func TestExtractZeroSuppression(t *testing.T) {
	d := &tmdb.MovieDetails{
		Budget:      0,
		Revenue:     0,
		Runtime:     117,
		VoteCount:   0,
		VoteAverage: floatPtr(0),
	}

	if cells := Extract("budget", d); len(cells) != 0 {
		t.Errorf("budget 0 must be suppressed, got %#v", cells)
	}
	if cells := Extract("revenue", d); len(cells) != 0 {
		t.Errorf("revenue 0 must be suppressed, got %#v", cells)
	}
	if cells := Extract("vote_count", d); len(cells) != 0 {
		t.Errorf("vote_count 0 must be suppressed, got %#v", cells)
	}
	if cells := Extract("runtime", d); len(cells) != 1 || cells[0] != IntCell(117) {
		t.Errorf("runtime 117 should surface, got %#v", cells)
	}
	// Zero is a legitimate rating.
	if cells := Extract("vote_average", d); len(cells) != 1 || cells[0] != DecimalCell(0) {
		t.Errorf("vote_average 0.0 should surface, got %#v", cells)
	}
	// An absent decimal emits nothing.
	if cells := Extract("popularity", d); len(cells) != 0 {
		t.Errorf("absent popularity should emit nothing, got %#v", cells)
	}
}

func TestExtractTextFields(t *testing.T) {
	d := &tmdb.MovieDetails{Tagline: "They're back.", Status: ""}
	if cells := Extract("tagline", d); len(cells) != 1 || cells[0] != TextCell("They're back.") {
		t.Errorf("unexpected tagline cells: %#v", cells)
	}
	if cells := Extract("status", d); len(cells) != 0 {
		t.Errorf("empty status should emit nothing, got %#v", cells)
	}
}

func TestExtractDirector(t *testing.T) {
	d := &tmdb.MovieDetails{
		Credits: tmdb.Credits{
			Crew: []tmdb.CrewMember{
				{ID: 1, Name: "Lana Wachowski", Job: "Director"},
				{ID: 2, Name: "Lilly Wachowski", Job: "Director"},
				{ID: 3, Name: "Bill Pope", Job: "Director of Photography"},
				{ID: 4, Name: "", Job: "Director"},
			},
		},
	}

	cells := Extract("director", d)
	if len(cells) != 2 {
		t.Fatalf("expected two directors, got %#v", cells)
	}
	if cells[0] != (EntityCell{ID: "1", Name: "Lana Wachowski"}) {
		t.Errorf("unexpected first director: %#v", cells[0])
	}
}

func TestExtractTopCastOrdering(t *testing.T) {
	d := &tmdb.MovieDetails{
		Credits: tmdb.Credits{
			Cast: []tmdb.CastMember{
				{ID: 6, Name: "Unbilled Extra", Order: nil},
				{ID: 3, Name: "Third", Order: intPtr(2)},
				{ID: 1, Name: "Lead", Order: intPtr(0)},
				{ID: 4, Name: "Fourth", Order: intPtr(3)},
				{ID: 2, Name: "Second", Order: intPtr(1)},
				{ID: 5, Name: "Fifth", Order: intPtr(4)},
				{ID: 7, Name: "", Order: intPtr(5)},
			},
		},
	}

	cells := Extract("cast", d)
	if len(cells) != 5 {
		t.Fatalf("expected top five cast, got %d", len(cells))
	}
	wantIDs := []string{"1", "2", "3", "4", "5"}
	for i, want := range wantIDs {
		entity, ok := cells[i].(EntityCell)
		if !ok || entity.ID != want {
			t.Errorf("cast[%d] = %#v, want id %s", i, cells[i], want)
		}
	}
}

func TestExtractTopCastMissingOrderSortsLast(t *testing.T) {
	d := &tmdb.MovieDetails{
		Credits: tmdb.Credits{
			Cast: []tmdb.CastMember{
				{ID: 1, Name: "Unknown Billing", Order: nil},
				{ID: 2, Name: "Lead", Order: intPtr(0)},
			},
		},
	}

	cells := Extract("cast", d)
	if len(cells) != 2 {
		t.Fatalf("expected two cast cells, got %d", len(cells))
	}
	if entity := cells[0].(EntityCell); entity.ID != "2" {
		t.Errorf("billed member should sort first, got %#v", cells)
	}
}

func TestExtractCountriesUseISOCode(t *testing.T) {
	d := &tmdb.MovieDetails{
		ProductionCountries: []tmdb.ProductionCountry{
			{ISOCode: "US", Name: "United States of America"},
			{ISOCode: "XX", Name: ""},
		},
	}

	cells := Extract("production_countries", d)
	if len(cells) != 1 {
		t.Fatalf("expected one country, got %#v", cells)
	}
	if cells[0] != (EntityCell{ID: "US", Name: "United States of America"}) {
		t.Errorf("unexpected country cell: %#v", cells[0])
	}
}

func TestExtractGenresAndCompanies(t *testing.T) {
	d := &tmdb.MovieDetails{
		Genres:              []tmdb.Genre{{ID: 878, Name: "Science Fiction"}, {ID: 0, Name: ""}},
		ProductionCompanies: []tmdb.ProductionCompany{{ID: 25, Name: "Warner Bros."}},
	}

	if cells := Extract("genres", d); len(cells) != 1 || cells[0] != (EntityCell{ID: "878", Name: "Science Fiction"}) {
		t.Errorf("unexpected genre cells: %#v", cells)
	}
	if cells := Extract("production_companies", d); len(cells) != 1 || cells[0] != (EntityCell{ID: "25", Name: "Warner Bros."}) {
		t.Errorf("unexpected company cells: %#v", cells)
	}
}

func TestExtractUnknownProperty(t *testing.T) {
	if cells := Extract("foo", &tmdb.MovieDetails{Runtime: 90}); len(cells) != 0 {
		t.Errorf("unknown property must yield no cells, got %#v", cells)
	}
	if cells := Extract("runtime", nil); len(cells) != 0 {
		t.Errorf("nil record must yield no cells, got %#v", cells)
	}
}

package reconcile_test

import (
	"testing"

	"reelmatch/internal/reconcile"
	"reelmatch/internal/tmdb"
)

func TestScoreYear(t *testing.T) {
	tests := []struct {
		name        string
		catalogYear string
		queryYear   int
		want        int
	}{
		{"exact", "2020", 2020, 20},
		{"within one", "2020", 2021, 10},
		{"within two", "2020", 2022, 10},
		{"far off", "2020", 2025, -10},
		{"catalog year missing", "", 2020, 0},
		{"catalog year garbage", "n/a", 2020, 0},
		{"catalog year zero scores a real diff", "0000", 2020, -10},
		{"query year missing", "2020", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reconcile.ScoreYear(tt.catalogYear, tt.queryYear); got != tt.want {
				t.Errorf("ScoreYear(%q, %d) = %d, want %d", tt.catalogYear, tt.queryYear, got, tt.want)
			}
		})
	}
}

func TestScoreDirector(t *testing.T) {
	crew := []tmdb.CrewMember{
		{ID: 1, Name: "Ridley Scott", Job: "Director"},
		{ID: 2, Name: "Jordan Cronenweth", Job: "Director of Photography"},
	}

	if got := reconcile.ScoreDirector(crew, ""); got != 0 {
		t.Errorf("no hint = %d, want 0", got)
	}
	if got := reconcile.ScoreDirector(crew, "Ridley Scott"); got != 20 {
		t.Errorf("exact name = %d, want 20", got)
	}
	if got := reconcile.ScoreDirector(crew, "Scott Ridley"); got != 20 {
		t.Errorf("reordered name = %d, want 20", got)
	}
	if got := reconcile.ScoreDirector(crew, "Wes Anderson"); got != -10 {
		t.Errorf("wrong name = %d, want -10", got)
	}
	if got := reconcile.ScoreDirector(nil, "Ridley Scott"); got != -10 {
		t.Errorf("no directors = %d, want -10", got)
	}
}

func TestScoreDirectorIgnoresNonDirectorCrew(t *testing.T) {
	crew := []tmdb.CrewMember{{ID: 2, Name: "Wes Anderson", Job: "Producer"}}
	if got := reconcile.ScoreDirector(crew, "Wes Anderson"); got != -10 {
		t.Errorf("producer-only crew = %d, want -10", got)
	}
}

func TestScoreCountry(t *testing.T) {
	countries := []tmdb.ProductionCountry{
		{ISOCode: "US", Name: "United States of America"},
		{ISOCode: "GB", Name: "United Kingdom"},
	}

	if got := reconcile.ScoreCountry(countries, ""); got != 0 {
		t.Errorf("no hint = %d, want 0", got)
	}
	if got := reconcile.ScoreCountry(countries, "united states"); got != 10 {
		t.Errorf("substring hint = %d, want 10", got)
	}
	// Matching is contiguous-substring based, so the "usa" abbreviation does
	// not pair with the spelled-out catalog name.
	if got := reconcile.ScoreCountry(countries, "usa"); got != -5 {
		t.Errorf("abbreviation hint = %d, want -5", got)
	}
	if got := reconcile.ScoreCountry(countries, "United States of America and Canada"); got != 10 {
		t.Errorf("catalog-name-in-hint = %d, want 10", got)
	}
	if got := reconcile.ScoreCountry(countries, "France, Germany"); got != -5 {
		t.Errorf("no overlap = %d, want -5", got)
	}
	if got := reconcile.ScoreCountry(countries, "france, united kingdom"); got != 10 {
		t.Errorf("second term matches = %d, want 10", got)
	}
	if got := reconcile.ScoreCountry(nil, "France"); got != -5 {
		t.Errorf("empty record = %d, want -5", got)
	}
}

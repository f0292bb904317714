package extension_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"reelmatch/internal/extension"
	"reelmatch/internal/logging"
	"reelmatch/internal/tmdb"
)

type fakeDetailer struct {
	details map[int64]*tmdb.MovieDetails
	failIDs map[int64]bool
}

func (f *fakeDetailer) GetMovieDetails(_ context.Context, movieID int64) (*tmdb.MovieDetails, error) {
	if f.failIDs[movieID] {
		return nil, errors.New("timeout")
	}
	if d, ok := f.details[movieID]; ok {
		return d, nil
	}
	return &tmdb.MovieDetails{}, nil
}

func rating(v float64) *float64 { return &v }

func TestExtendBuildsMetaAndRows(t *testing.T) {
	detailer := &fakeDetailer{
		details: map[int64]*tmdb.MovieDetails{
			78: {
				Runtime:     117,
				VoteAverage: rating(7.9),
				Genres:      []tmdb.Genre{{ID: 878, Name: "Science Fiction"}},
			},
		},
	}
	extender := extension.NewExtender(detailer, logging.NewNop(), 2)

	result := extender.Extend(context.Background(), []string{"78"}, []string{"genres", "runtime", "vote_average"})

	if len(result.Meta) != 3 {
		t.Fatalf("expected three meta columns, got %d", len(result.Meta))
	}
	if result.Meta[0].ID != "genres" || result.Meta[0].Type == nil || result.Meta[0].Type.ID != "entity" {
		t.Fatalf("genres meta should carry an entity type tag: %#v", result.Meta[0])
	}
	if result.Meta[1].Type != nil {
		t.Fatalf("runtime meta must not carry a type tag: %#v", result.Meta[1])
	}

	row := result.Rows["78"]
	if len(row["genres"]) != 1 || len(row["runtime"]) != 1 || len(row["vote_average"]) != 1 {
		t.Fatalf("unexpected row contents: %#v", row)
	}
}

func TestExtendUnknownProperty(t *testing.T) {
	extender := extension.NewExtender(&fakeDetailer{}, logging.NewNop(), 2)

	result := extender.Extend(context.Background(), []string{"78"}, []string{"foo"})

	if len(result.Meta) != 1 || result.Meta[0].ID != "foo" || result.Meta[0].Name != "foo" {
		t.Fatalf("unexpected meta for unknown property: %#v", result.Meta)
	}
	if result.Meta[0].Type != nil {
		t.Fatalf("unknown property meta must not carry a type tag: %#v", result.Meta[0])
	}
	cells, ok := result.Rows["78"]["foo"]
	if !ok || len(cells) != 0 {
		t.Fatalf("unknown property should map to an empty cell list, got %#v", cells)
	}
	// The empty list must serialize as [], not null.
	raw, err := json.Marshal(cells)
	if err != nil {
		t.Fatalf("marshal cells: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("expected empty JSON array, got %s", raw)
	}
}

func TestExtendFetchFailureIsolation(t *testing.T) {
	detailer := &fakeDetailer{
		details: map[int64]*tmdb.MovieDetails{
			2: {Runtime: 95},
		},
		failIDs: map[int64]bool{1: true},
	}
	extender := extension.NewExtender(detailer, logging.NewNop(), 2)

	result := extender.Extend(context.Background(), []string{"1", "2"}, []string{"runtime"})

	if cells := result.Rows["1"]["runtime"]; len(cells) != 0 {
		t.Fatalf("failed fetch should yield empty cells, got %#v", cells)
	}
	if cells := result.Rows["2"]["runtime"]; len(cells) != 1 || cells[0] != extension.IntCell(95) {
		t.Fatalf("unaffected id should still return data, got %#v", cells)
	}
}

func TestExtendMalformedID(t *testing.T) {
	extender := extension.NewExtender(&fakeDetailer{}, logging.NewNop(), 2)

	result := extender.Extend(context.Background(), []string{"not-a-number"}, []string{"runtime"})
	if cells := result.Rows["not-a-number"]["runtime"]; len(cells) != 0 {
		t.Fatalf("malformed id should degrade to empty cells, got %#v", cells)
	}
}

func TestCellWireFormats(t *testing.T) {
	tests := []struct {
		name string
		cell extension.Cell
		want string
	}{
		{"text", extension.TextCell("hi"), `{"str":"hi"}`},
		{"int", extension.IntCell(7), `{"int":7}`},
		{"decimal", extension.DecimalCell(0), `{"float":0}`},
		{"entity", extension.EntityCell{ID: "US", Name: "United States of America"}, `{"id":"US","name":"United States of America"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.cell)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(raw) != tt.want {
				t.Errorf("got %s, want %s", raw, tt.want)
			}
		})
	}
}

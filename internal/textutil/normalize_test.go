package textutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"accents stripped", "León", "leon"},
		{"hyphen becomes space", "Spider-Man", "spider man"},
		{"punctuation dropped", "L.A. Confidential", "la confidential"},
		{"whitespace collapsed", "  The   Matrix  ", "the matrix"},
		{"empty", "", ""},
		{"only punctuation", "!?.", ""},
		{"mixed", "Amélie -- (2001)!", "amelie 2001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"León", "Spider-Man", "L.A. Confidential", "", "Die Härte", "WALL·E"}
	for _, s := range inputs {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, twice, once)
		}
	}
}

func TestTitlesMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"León", "Leon", true},
		{"Spider-Man", "Spider Man", true},
		{"L.A. Confidential", "LA Confidential", true},
		{"Heat", "Heat 2", false},
		{"", "", true},
	}

	for _, tt := range tests {
		if got := TitlesMatch(tt.a, tt.b); got != tt.want {
			t.Errorf("TitlesMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

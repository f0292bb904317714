package main

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	rendered := renderTable(registryColumns, [][]string{
		{"runtime", "Runtime (min)", "int"},
		{"genres", "Genres"},
	})

	lines := strings.Split(rendered, "\n")
	if len(lines) < 4 {
		t.Fatalf("expected header, rule, and data lines:\n%s", rendered)
	}
	for _, want := range []string{"ID", "Name", "Kind", "Runtime (min)", "genres"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered table missing %q:\n%s", want, rendered)
		}
	}
}

func TestRenderTableRightAlignsNumericColumns(t *testing.T) {
	rendered := renderTable(candidateColumns, [][]string{
		{"78", "Blade Runner", "100", "yes"},
		{"335984", "Blade Runner 2049", "55", "no"},
	})

	// Right alignment pads short scores on the left within their column.
	if !strings.Contains(rendered, " 55 ") {
		t.Errorf("expected right-aligned score column:\n%s", rendered)
	}
}

func TestRenderTableEmptyColumns(t *testing.T) {
	if got := renderTable(nil, nil); got != "" {
		t.Errorf("no columns should render nothing, got %q", got)
	}
}

package cli

import (
	"strings"
	"testing"
)

func TestRenderLifeGrid(t *testing.T) {
	// 2 lived weeks in a 3-year grid of 2-year lifespan.
	out := RenderLifeGrid(2, 2*GridCells, 3)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("grid has %d rows, want 3", len(lines))
	}

	all := strings.Join(lines, "")
	if got := strings.Count(all, "█"); got != 3 {
		t.Errorf("filled cells = %d, want 2 lived + 1 current", got)
	}
	if got := strings.Count(all, "□"); got != 2*GridCells-3 {
		t.Errorf("remaining cells = %d, want %d", got, 2*GridCells-3)
	}
	if got := strings.Count(all, "·"); got != GridCells {
		t.Errorf("beyond-lifespan cells = %d, want %d", got, GridCells)
	}
}

func TestRenderPercentBar(t *testing.T) {
	out := RenderPercentBar(50, 10)
	if got := strings.Count(out, "█"); got != 5 {
		t.Errorf("filled segments = %d, want 5", got)
	}
	if got := strings.Count(out, "░"); got != 5 {
		t.Errorf("empty segments = %d, want 5", got)
	}
	if !strings.Contains(out, "50.0%") {
		t.Errorf("missing percent label: %q", out)
	}

	// Clamped at both ends.
	if out := RenderPercentBar(-10, 4); strings.Contains(out, "█") {
		t.Errorf("negative percent should render empty: %q", out)
	}
	if out := RenderPercentBar(150, 4); strings.Contains(out, "░") {
		t.Errorf("overfull percent should render full: %q", out)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Perspective", "Total"},
		Rows: [][]string{
			{"Life in Weeks", "4,174"},
			{"---"},
			{"Weekends", "4,174"},
		},
	})

	for _, want := range []string{"Perspective", "Life in Weeks", "4,174", "╭", "╰", "├"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
	if RenderTable(Table{}) != "" {
		t.Error("empty table should render nothing")
	}
}

package quotes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestForPercentThresholds(t *testing.T) {
	book := Defaults()

	cases := []struct {
		pct  float64
		want string
	}{
		{0, "Paul Valéry"},
		{19.9, "Paul Valéry"},
		{20, "Sam Altman"},
		{42.5, "Steve Jobs"},
		{60, "privilege denied"},
		{79.9, "privilege denied"},
		{80, "Mark Twain"},
		{100, "Mark Twain"},
	}
	for _, tc := range cases {
		got := book.ForPercent(tc.pct)
		if !strings.Contains(got, tc.want) {
			t.Errorf("ForPercent(%v) = %q, want it to contain %q", tc.pct, got, tc.want)
		}
	}
}

func TestForPercentBelowAllThresholds(t *testing.T) {
	book := Book{quotes: []Quote{{Threshold: 50, Text: "late wisdom"}}}
	got := book.ForPercent(10)
	if !strings.Contains(got, "Theophrastus") {
		t.Errorf("expected fallback quote, got %q", got)
	}
}

func TestForPercentEmptyBookUsesDefaults(t *testing.T) {
	var book Book
	got := book.ForPercent(42.5)
	if !strings.Contains(got, "Steve Jobs") {
		t.Errorf("empty book should fall back to defaults, got %q", got)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	book, err := Load(filepath.Join(t.TempDir(), "quotes.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(book.quotes) != len(defaults) {
		t.Errorf("expected %d default quotes, got %d", len(defaults), len(book.quotes))
	}
}

func TestLoadOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.toml")
	content := `
[[quotes]]
threshold = 50.0
text = "Half gone."

[[quotes]]
threshold = 0.0
text = "Just started."
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	book, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := book.ForPercent(10); got != "Just started." {
		t.Errorf("ForPercent(10) = %q", got)
	}
	if got := book.ForPercent(75); got != "Half gone." {
		t.Errorf("ForPercent(75) = %q", got)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.toml")
	if err := os.WriteFile(path, []byte("[[quotes]\nbroken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed TOML")
	}
}

func TestLoadEmptyOverrideYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.toml")
	if err := os.WriteFile(path, []byte("# no quotes here\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	book, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := book.ForPercent(20); !strings.Contains(got, "Sam Altman") {
		t.Errorf("empty override should keep defaults, got %q", got)
	}
}

// Package quotes selects a wisdom line for the current life stage.
package quotes

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

// Quote pairs a percent-lived threshold with its line. The quote shown is
// the one with the highest threshold not exceeding the percentage.
type Quote struct {
	Threshold float64 `toml:"threshold"`
	Text      string  `toml:"text"`
}

var defaults = []Quote{
	{0, "Every beginning is a consequence. — Paul Valéry"},
	{20, "The days are long but the decades are short. — Sam Altman"},
	{40, "The only way to do great work is to love what you do. — Steve Jobs"},
	{60, "Do not regret growing older. It is a privilege denied to many."},
	{80, "The fear of death follows from the fear of life. Live fully. — Mark Twain"},
}

// Book is an ordered quote table.
type Book struct {
	quotes []Quote
}

// Defaults returns the built-in quote book.
func Defaults() Book {
	return Book{quotes: defaults}
}

type overrideFile struct {
	Quotes []Quote `toml:"quotes"`
}

// Load reads an optional TOML override file. A missing file yields the
// defaults; a malformed file is an error.
func Load(path string) (Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Book{}, fmt.Errorf("reading quotes: %w", err)
	}

	var f overrideFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Book{}, fmt.Errorf("parsing quotes: %w", err)
	}
	if len(f.Quotes) == 0 {
		return Defaults(), nil
	}

	sort.Slice(f.Quotes, func(i, j int) bool {
		return f.Quotes[i].Threshold < f.Quotes[j].Threshold
	})
	return Book{quotes: f.Quotes}, nil
}

// ForPercent picks the quote for the given percent-lived.
func (b Book) ForPercent(pct float64) string {
	quotes := b.quotes
	if len(quotes) == 0 {
		quotes = defaults
	}

	for i := len(quotes) - 1; i >= 0; i-- {
		if pct >= quotes[i].Threshold {
			return quotes[i].Text
		}
	}
	return "Time is the most valuable thing a person can spend. — Theophrastus"
}

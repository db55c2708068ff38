package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBg        = lipgloss.Color("#100F0F")
	ColorSurface   = lipgloss.Color("#1C1B1A")
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorYellow    = lipgloss.Color("#D0A215")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	livedStyle   = lipgloss.NewStyle().Foreground(ColorGreen)
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorYellow)
	beyondStyle  = lipgloss.NewStyle().Foreground(ColorRed)

	narrativeStyle = lipgloss.NewStyle().Italic(true).Foreground(ColorGreen)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderNarrative renders one derived narrative sentence.
func RenderNarrative(line string) string {
	return "  " + narrativeStyle.Render(line)
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if len(h) > widths[i] {
				widths[i] = len(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && len(cell) > widths[i] {
					widths[i] = len(cell)
				}
			}
		}
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	// Top border
	b.WriteString(dimStyle.Render("╭"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┬"))
		}
	}
	b.WriteString(dimStyle.Render("╮"))
	b.WriteString("\n")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			w := widths[i]
			padded := fmt.Sprintf(" %-*s ", w, h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")

		// Header separator
		b.WriteString(dimStyle.Render("├"))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("┼"))
			}
		}
		b.WriteString(dimStyle.Render("┤"))
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			// Separator row
			b.WriteString(dimStyle.Render("├"))
			for i, w := range widths {
				b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
				if i < numCols-1 {
					b.WriteString(dimStyle.Render("┼"))
				}
			}
			b.WriteString(dimStyle.Render("┤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", w, cell)
			} else {
				padded = fmt.Sprintf(" %*s ", w, cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	// Bottom border
	b.WriteString(dimStyle.Render("╰"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┴"))
		}
	}
	b.WriteString(dimStyle.Render("╯"))
	b.WriteString("\n")

	return b.String()
}

// RenderPercentBar renders a filled progress bar for a 0-100 percentage.
// The bar turns from yellow to red past the halfway mark.
func RenderPercentBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}

	style := lipgloss.NewStyle().Foreground(ColorYellow)
	if pct >= 50 {
		style = lipgloss.NewStyle().Foreground(ColorRed)
	}

	bar := style.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s", bar, FormatPercent(pct))
}

// GridCells is the number of week cells per grid row.
const GridCells = 52

// RenderLifeGrid renders the life-in-weeks grid: one cell per week, one
// row per year, decade markers down the left edge.
func RenderLifeGrid(weeksLived, totalWeeks, gridYears int) string {
	var b strings.Builder

	for year := 0; year < gridYears; year++ {
		marker := dimStyle
		if year%10 == 0 {
			marker = lipgloss.NewStyle().Bold(true).Foreground(ColorYellow)
		}
		b.WriteString(marker.Render(fmt.Sprintf("%2d ", year)))

		for week := 0; week < GridCells; week++ {
			n := year*GridCells + week
			switch {
			case n < weeksLived:
				b.WriteString(livedStyle.Render("█"))
			case n == weeksLived:
				b.WriteString(currentStyle.Render("█"))
			case n < totalWeeks:
				b.WriteString(dimStyle.Render("□"))
			default:
				b.WriteString(beyondStyle.Render("·"))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderGridLegend explains the grid cell glyphs.
func RenderGridLegend() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Legend: "))
	b.WriteString(livedStyle.Render("█ "))
	b.WriteString(valueStyle.Render("lived  "))
	b.WriteString(currentStyle.Render("█ "))
	b.WriteString(valueStyle.Render("this week  "))
	b.WriteString(dimStyle.Render("□ "))
	b.WriteString(valueStyle.Render("remaining  "))
	b.WriteString(beyondStyle.Render("· "))
	b.WriteString(valueStyle.Render("beyond expected lifespan"))
	return b.String()
}

// RenderMuted renders a dim informational line.
func RenderMuted(s string) string {
	return mutedStyle.Render(s)
}

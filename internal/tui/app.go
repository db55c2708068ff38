// Package tui provides the interactive Bubble Tea dashboard for memento.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/memento/internal/cli"
	"github.com/theirongolddev/memento/internal/config"
	"github.com/theirongolddev/memento/internal/engine"
	"github.com/theirongolddev/memento/internal/quotes"
	"github.com/theirongolddev/memento/internal/tui/theme"
)

// Tab indices.
const (
	tabOverview = iota
	tabGrid
	tabYear
	tabCount
)

var tabNames = []string{"Overview", "Grid", "Year"}

// tickMsg refreshes the report once a minute so a dashboard left open
// rolls over at midnight.
type tickMsg time.Time

// App is the root Bubble Tea model.
type App struct {
	cfg    config.Config
	report engine.LifeReport
	year   engine.YearStats
	book   quotes.Book
	now    func() time.Time

	lifeBar progress.Model

	width     int
	height    int
	activeTab int
	scroll    int
}

// NewApp creates a new TUI app model. now is injectable so tests can pin
// the evaluation date.
func NewApp(cfg config.Config, book quotes.Book, now func() time.Time) App {
	if now == nil {
		now = time.Now
	}

	bar := progress.New(progress.WithSolidFill(string(theme.Active.Accent)))
	bar.Width = 50
	bar.ShowPercentage = false

	a := App{
		cfg:     cfg,
		book:    book,
		now:     now,
		lifeBar: bar,
	}
	a.recompute()
	return a
}

func (a *App) recompute() {
	today := a.now()
	a.report = engine.Assemble(today, a.cfg)
	a.year = engine.YearOf(today)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tickMsg:
		a.recompute()
		return a, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "l", "right":
			a.activeTab = (a.activeTab + 1) % tabCount
			a.scroll = 0
		case "shift+tab", "h", "left":
			a.activeTab = (a.activeTab + tabCount - 1) % tabCount
			a.scroll = 0
		case "1":
			a.activeTab, a.scroll = tabOverview, 0
		case "2":
			a.activeTab, a.scroll = tabGrid, 0
		case "3":
			a.activeTab, a.scroll = tabYear, 0
		case "j", "down":
			a.scroll++
		case "k", "up":
			if a.scroll > 0 {
				a.scroll--
			}
		case "g":
			a.scroll = 0
		}
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active

	var body string
	switch a.activeTab {
	case tabGrid:
		body = a.viewGrid()
	case tabYear:
		body = a.viewYear()
	default:
		body = a.viewOverview()
	}

	body = a.clip(body)

	statusStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	status := statusStyle.Render(" tab/1-3 switch  •  j/k scroll  •  q quit")

	return a.renderTabBar() + "\n\n" + body + "\n" + status
}

// clip applies vertical scrolling within the terminal height.
func (a App) clip(body string) string {
	if a.height == 0 {
		return body
	}
	lines := strings.Split(body, "\n")
	avail := a.height - 4 // tab bar + status line
	if avail < 3 {
		avail = 3
	}

	start := a.scroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + avail
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n")
}

func (a App) renderTabBar() string {
	t := theme.Active
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var parts []string
	for i, name := range tabNames {
		label := fmt.Sprintf("%s[%d]", name, i+1)
		if i == a.activeTab {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, inactiveStyle.Render(label))
		}
	}
	return " " + strings.Join(parts, dimStyle.Render("  •  "))
}

func (a App) viewOverview() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	quoteStyle := lipgloss.NewStyle().Foreground(t.Green).Italic(true)

	life, _ := a.report.View(engine.KeyTotalLife)

	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s\n\n",
		labelStyle.Render("Life progress:"),
		valueStyle.Render(cli.FormatPercent(life.PercentComplete)))
	fmt.Fprintf(&b, "  %s\n\n", a.lifeBar.ViewAs(life.PercentComplete/100))

	for _, view := range a.report.Views {
		fmt.Fprintf(&b, "  %-28s %s %s used, %s left of %s\n",
			labelStyle.Render(view.Label),
			valueStyle.Render(cli.FormatPercent(view.PercentComplete)),
			cli.FormatCount(view.Used),
			cli.FormatCount(view.Remaining),
			cli.FormatCount(view.Total))
	}

	b.WriteString("\n")
	for _, line := range a.report.Narratives {
		fmt.Fprintf(&b, "  %s\n", quoteStyle.Render(line))
	}

	fmt.Fprintf(&b, "\n  %s\n",
		labelStyle.Render(a.book.ForPercent(life.PercentComplete)))

	return b.String()
}

func (a App) viewGrid() string {
	life, _ := a.report.View(engine.KeyTotalLife)

	var b strings.Builder
	fmt.Fprintf(&b, "  Each box is one week. %d years = %s weeks total\n\n",
		a.cfg.ExpectedLifespanYears, cli.FormatCount(life.Total))
	b.WriteString(cli.RenderLifeGrid(int(life.Used), int(life.Total), 90))
	b.WriteString("\n  " + cli.RenderGridLegend() + "\n")
	return b.String()
}

func (a App) viewYear() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	monthStyle := lipgloss.NewStyle().Foreground(t.Yellow).Bold(true)

	ys := a.year
	freeDays := ys.FreeWeekendDays(engine.FreeFraction())

	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s\n\n",
		labelStyle.Render("Year progress:"),
		valueStyle.Render(cli.FormatPercent(ys.ProgressPercent())))
	fmt.Fprintf(&b, "  %s days left  •  %.1f weeks  •  %d weekends (~%d truly free days)\n\n",
		cli.FormatNumber(int64(ys.DaysRemaining)), ys.WeeksRemaining,
		len(ys.Weekends), freeDays)

	currentMonth := ""
	for _, w := range ys.Weekends {
		month := w.Saturday.Format("January")
		if month != currentMonth {
			fmt.Fprintf(&b, "  %s\n", monthStyle.Render(month))
			currentMonth = month
		}
		fmt.Fprintf(&b, "    • %s–%s\n", w.Saturday.Format("Jan 2"), w.Sunday.Format("2"))
	}

	return b.String()
}

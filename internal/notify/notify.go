// Package notify builds the daily notification text and dispatches it to
// the desktop.
package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/theirongolddev/memento/internal/config"
	"github.com/theirongolddev/memento/internal/engine"
)

// Title is the notification summary line.
const Title = "Memento Mori"

// Build renders the single-line notification body for a report, keyed to
// the configured style.
func Build(report engine.LifeReport, style string) string {
	life, _ := report.View(engine.KeyTotalLife)

	var b strings.Builder
	switch style {
	case config.StyleSobering:
		fmt.Fprintf(&b, "Weeks lived: %.0f | Remaining: %.0f\n", life.Used, life.Remaining)
		fmt.Fprintf(&b, "%.1f%% of your expected life has passed\n", life.PercentComplete)
		if parents, ok := report.View(engine.KeyParents); ok {
			fmt.Fprintf(&b, "~%.0f days left with your parents\n", parents.Remaining)
		}
		b.WriteString("The clock does not pause.")
	default:
		fmt.Fprintf(&b, "%.0f weeks still ahead of you\n", life.Remaining)
		if weekends, ok := report.View(engine.KeyWeekends); ok {
			fmt.Fprintf(&b, "~%.0f weekends to fill\n", weekends.Remaining)
		}
		b.WriteString("Make today count.")
	}
	return b.String()
}

// Send dispatches body as a desktop notification. On Linux this shells out
// to notify-send; on macOS to osascript.
func Send(body string) error {
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", body, Title)
		return run("osascript", "-e", script)
	default:
		return run("notify-send", Title, body)
	}
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

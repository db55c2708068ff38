package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/memento/internal/config"
	"github.com/theirongolddev/memento/internal/engine"
)

func reportFor(t *testing.T, raw string) engine.LifeReport {
	t.Helper()
	today := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	cfg, err := config.Parse([]byte(raw), today)
	if err != nil {
		t.Fatal(err)
	}
	return engine.Assemble(today, cfg)
}

func TestBuildMotivational(t *testing.T) {
	report := reportFor(t, `{"birthdate": "1990-01-01"}`)
	body := Build(report, config.StyleMotivational)

	if !strings.Contains(body, "2400 weeks still ahead") {
		t.Errorf("missing remaining weeks: %q", body)
	}
	if !strings.Contains(body, "weekends to fill") {
		t.Errorf("missing weekends line: %q", body)
	}
	if !strings.HasSuffix(body, "Make today count.") {
		t.Errorf("missing closing line: %q", body)
	}
	if strings.Contains(body, "parents") {
		t.Errorf("motivational body should not mention parents: %q", body)
	}
}

func TestBuildSobering(t *testing.T) {
	report := reportFor(t, `{
		"birthdate": "1990-01-01",
		"parents": {"father_age": 65, "visits_per_year": 10}
	}`)
	body := Build(report, config.StyleSobering)

	if !strings.Contains(body, "Weeks lived: 1774") {
		t.Errorf("missing weeks lived: %q", body)
	}
	if !strings.Contains(body, "42.5%") {
		t.Errorf("missing percent: %q", body)
	}
	if !strings.Contains(body, "~150 days left with your parents") {
		t.Errorf("missing parents line: %q", body)
	}
	if !strings.HasSuffix(body, "The clock does not pause.") {
		t.Errorf("missing closing line: %q", body)
	}
}

func TestBuildSoberingWithoutParents(t *testing.T) {
	report := reportFor(t, `{"birthdate": "1990-01-01"}`)
	body := Build(report, config.StyleSobering)

	if strings.Contains(body, "parents") {
		t.Errorf("body should omit the parents line: %q", body)
	}
}

func TestBuildUnknownStyleDefaultsToMotivational(t *testing.T) {
	report := reportFor(t, `{"birthdate": "1990-01-01"}`)
	if got := Build(report, "whatever"); !strings.Contains(got, "Make today count.") {
		t.Errorf("unexpected body: %q", got)
	}
}

// Package config holds the validated memento configuration model and its
// JSON parsing/validation logic.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
)

// Defaults applied to optional fields before validation.
const (
	DefaultExpectedLifespanYears = 80
	DefaultRetirementAgeYears    = 67
	DefaultVacationWeeksPerYear  = 3
	DefaultHealthDeclineAge      = 65
	DefaultParentVisitsPerYear   = 10
	DefaultNotificationTime      = "08:00"
	DefaultNotificationStyle     = StyleMotivational
)

// Notification styles.
const (
	StyleMotivational = "motivational"
	StyleSobering     = "sobering"
)

// Config is the validated, immutable engine input. Construct it with Parse
// or Load; never mutate it afterwards.
type Config struct {
	Birthdate             time.Time
	ExpectedLifespanYears int
	RetirementAgeYears    int
	VacationWeeksPerYear  float64
	HealthDeclineAge      int

	// Absent parents are nil, which omits the parent-time view.
	FatherAgeYears      *int
	MotherAgeYears      *int
	ParentVisitsPerYear float64

	// An empty slice omits the children-milestones view.
	Children []Child

	NotificationTime  string // "HH:MM", local clock
	NotificationStyle string
}

// Child is one configured child for the milestones view.
type Child struct {
	Name      string
	Birthdate time.Time
}

// HasParents reports whether at least one parent age is configured.
func (c Config) HasParents() bool {
	return c.FatherAgeYears != nil || c.MotherAgeYears != nil
}

// Default returns the configuration with all defaults applied and a
// placeholder birthdate. Used by setup as the starting point.
func Default() Config {
	return Config{
		Birthdate:             time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		ExpectedLifespanYears: DefaultExpectedLifespanYears,
		RetirementAgeYears:    DefaultRetirementAgeYears,
		VacationWeeksPerYear:  DefaultVacationWeeksPerYear,
		HealthDeclineAge:      DefaultHealthDeclineAge,
		ParentVisitsPerYear:   DefaultParentVisitsPerYear,
		NotificationTime:      DefaultNotificationTime,
		NotificationStyle:     DefaultNotificationStyle,
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "memento")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "memento")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.json")
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads and parses the config file at path, validating it against
// today's date.
func Load(path string, today time.Time) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data, today)
}

// Save writes cfg to path in the documented JSON schema, creating the
// directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	raw := rawFromConfig(cfg)
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

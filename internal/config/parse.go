package config

import (
	"errors"
	"math"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

const dateLayout = "2006-01-02"

// rawConfig mirrors the on-disk JSON schema. Pointer fields distinguish
// "absent" from zero so defaults only fill genuinely missing values.
type rawConfig struct {
	Birthdate            *string     `json:"birthdate"`
	ExpectedLifespan     *int        `json:"expected_lifespan,omitempty"`
	RetirementAge        *int        `json:"retirement_age,omitempty"`
	VacationWeeksPerYear *float64    `json:"vacation_weeks_per_year,omitempty"`
	HealthDeclineAge     *int        `json:"health_decline_age,omitempty"`
	Parents              *rawParents `json:"parents,omitempty"`
	Children             []rawChild  `json:"children,omitempty"`
	NotificationTime     *string     `json:"notification_time,omitempty"`
	NotificationStyle    *string     `json:"notification_style,omitempty"`
}

type rawParents struct {
	FatherAge     *int     `json:"father_age,omitempty"`
	MotherAge     *int     `json:"mother_age,omitempty"`
	VisitsPerYear *float64 `json:"visits_per_year,omitempty"`
}

type rawChild struct {
	Name      string  `json:"name,omitempty"`
	Birthdate *string `json:"birthdate"`
}

// Parse decodes raw JSON into a validated Config. Defaults are applied for
// all optional fields before validation. Failures are *ConfigError values
// naming the offending field.
func Parse(data []byte, today time.Time) (Config, error) {
	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Config{}, invalidType(typeErr.Field, "expected "+typeErr.Type.String())
		}
		return Config{}, invalidType("config", "not a valid JSON object")
	}
	return fromRaw(raw, today)
}

func fromRaw(raw rawConfig, today time.Time) (Config, error) {
	cfg := Config{
		ExpectedLifespanYears: DefaultExpectedLifespanYears,
		RetirementAgeYears:    DefaultRetirementAgeYears,
		VacationWeeksPerYear:  DefaultVacationWeeksPerYear,
		HealthDeclineAge:      DefaultHealthDeclineAge,
		ParentVisitsPerYear:   DefaultParentVisitsPerYear,
		NotificationTime:      DefaultNotificationTime,
		NotificationStyle:     DefaultNotificationStyle,
	}

	if raw.Birthdate == nil {
		return Config{}, missingField("birthdate")
	}
	birthdate, err := time.Parse(dateLayout, *raw.Birthdate)
	if err != nil {
		return Config{}, invalidType("birthdate", "expected an ISO-8601 date (YYYY-MM-DD)")
	}
	if birthdate.After(today) {
		return Config{}, outOfRange("birthdate", "must not be in the future")
	}
	cfg.Birthdate = birthdate

	if raw.ExpectedLifespan != nil {
		cfg.ExpectedLifespanYears = *raw.ExpectedLifespan
	}
	if cfg.ExpectedLifespanYears <= 0 {
		return Config{}, outOfRange("expected_lifespan", "must be a positive integer of years")
	}

	if raw.RetirementAge != nil {
		cfg.RetirementAgeYears = *raw.RetirementAge
	}
	if cfg.RetirementAgeYears <= 0 {
		return Config{}, outOfRange("retirement_age", "must be a positive integer of years")
	}

	if raw.VacationWeeksPerYear != nil {
		cfg.VacationWeeksPerYear = *raw.VacationWeeksPerYear
	}
	if err := checkFiniteNonNegative("vacation_weeks_per_year", cfg.VacationWeeksPerYear); err != nil {
		return Config{}, err
	}

	if raw.HealthDeclineAge != nil {
		cfg.HealthDeclineAge = *raw.HealthDeclineAge
	}
	if cfg.HealthDeclineAge <= 0 {
		return Config{}, outOfRange("health_decline_age", "must be a positive integer of years")
	}

	if raw.Parents != nil {
		if raw.Parents.FatherAge != nil {
			if *raw.Parents.FatherAge < 0 {
				return Config{}, outOfRange("parents.father_age", "must be a non-negative integer of years")
			}
			cfg.FatherAgeYears = raw.Parents.FatherAge
		}
		if raw.Parents.MotherAge != nil {
			if *raw.Parents.MotherAge < 0 {
				return Config{}, outOfRange("parents.mother_age", "must be a non-negative integer of years")
			}
			cfg.MotherAgeYears = raw.Parents.MotherAge
		}
		if raw.Parents.VisitsPerYear != nil {
			cfg.ParentVisitsPerYear = *raw.Parents.VisitsPerYear
		}
		if err := checkFiniteNonNegative("parents.visits_per_year", cfg.ParentVisitsPerYear); err != nil {
			return Config{}, err
		}
	}

	for i, rc := range raw.Children {
		if rc.Birthdate == nil {
			return Config{}, missingField(childField(i, "birthdate"))
		}
		bd, err := time.Parse(dateLayout, *rc.Birthdate)
		if err != nil {
			return Config{}, invalidType(childField(i, "birthdate"), "expected an ISO-8601 date (YYYY-MM-DD)")
		}
		if bd.After(today) {
			return Config{}, outOfRange(childField(i, "birthdate"), "must not be in the future")
		}
		cfg.Children = append(cfg.Children, Child{Name: rc.Name, Birthdate: bd})
	}

	if raw.NotificationTime != nil {
		cfg.NotificationTime = *raw.NotificationTime
	}
	if _, err := time.Parse("15:04", cfg.NotificationTime); err != nil {
		return Config{}, invalidType("notification_time", "expected HH:MM")
	}

	if raw.NotificationStyle != nil {
		cfg.NotificationStyle = *raw.NotificationStyle
	}
	if cfg.NotificationStyle != StyleMotivational && cfg.NotificationStyle != StyleSobering {
		return Config{}, outOfRange("notification_style", `must be "motivational" or "sobering"`)
	}

	return cfg, nil
}

func checkFiniteNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return outOfRange(field, "must be a finite number")
	}
	if v < 0 {
		return outOfRange(field, "must be non-negative")
	}
	return nil
}

func childField(i int, name string) string {
	return "children[" + strconv.Itoa(i) + "]." + name
}

// rawFromConfig converts a Config back to the wire schema for Save.
func rawFromConfig(cfg Config) rawConfig {
	birthdate := cfg.Birthdate.Format(dateLayout)
	raw := rawConfig{
		Birthdate:            &birthdate,
		ExpectedLifespan:     &cfg.ExpectedLifespanYears,
		RetirementAge:        &cfg.RetirementAgeYears,
		VacationWeeksPerYear: &cfg.VacationWeeksPerYear,
		HealthDeclineAge:     &cfg.HealthDeclineAge,
		NotificationTime:     &cfg.NotificationTime,
		NotificationStyle:    &cfg.NotificationStyle,
	}

	if cfg.HasParents() {
		visits := cfg.ParentVisitsPerYear
		raw.Parents = &rawParents{
			FatherAge:     cfg.FatherAgeYears,
			MotherAge:     cfg.MotherAgeYears,
			VisitsPerYear: &visits,
		}
	}

	for _, child := range cfg.Children {
		bd := child.Birthdate.Format(dateLayout)
		raw.Children = append(raw.Children, rawChild{Name: child.Name, Birthdate: &bd})
	}

	return raw
}

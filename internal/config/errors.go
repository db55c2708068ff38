package config

import "fmt"

// ErrorKind classifies configuration failures.
type ErrorKind int

const (
	// MissingField means a required field is absent.
	MissingField ErrorKind = iota
	// InvalidType means a field has the wrong shape, e.g. a non-date birthdate.
	InvalidType
	// OutOfRange means a numeric field is negative or non-finite, or the
	// birthdate lies in the future.
	OutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case InvalidType:
		return "invalid type"
	case OutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

// ConfigError identifies the offending field and the expected format or
// range. All config errors are terminal for the run; no partial report is
// produced.
type ConfigError struct {
	Kind   ErrorKind
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s (%s)", e.Field, e.Reason, e.Kind)
}

func missingField(field string) *ConfigError {
	return &ConfigError{Kind: MissingField, Field: field, Reason: "required field is absent"}
}

func invalidType(field, reason string) *ConfigError {
	return &ConfigError{Kind: InvalidType, Field: field, Reason: reason}
}

func outOfRange(field, reason string) *ConfigError {
	return &ConfigError{Kind: OutOfRange, Field: field, Reason: reason}
}

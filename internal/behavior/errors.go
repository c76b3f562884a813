package behavior

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBehavior is returned by New for a behavior name nobody registered.
var ErrUnknownBehavior = errors.New("unknown behavior")

// FieldError describes one missing or invalid profile attribute.
type FieldError struct {
	Field  string
	Reason string
	Err    error
}

func (e FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ConfigError is returned when a behavior refuses to start because of bad profile arguments.
// Lists every offending field, not just the first one.
type ConfigError struct {
	Behavior string
	Fields   []FieldError
}

func (e *ConfigError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return fmt.Sprintf("%s: invalid profile arguments: %s", e.Behavior, strings.Join(parts, "; "))
}

// Has reports whether field is among the offending fields.
func (e *ConfigError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ConfigError) add(field, reason string, err error) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason, Err: err})
}

// errOrNil returns e as error only if it collected something.
func (e *ConfigError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

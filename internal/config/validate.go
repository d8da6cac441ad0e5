package config

import (
	"errors"
	"fmt"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %q)", e.Field, e.Message, e.Value)
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks all config values for validity.
// Returns nil if valid, or joined errors for all validation failures.
func (c *RunConfig) Validate() error {
	var errs []error

	required := []struct {
		field string
		value string
	}{
		{"config_file", c.ConfigFile},
		{"env_file", c.EnvFile},
		{"image", c.Image},
		{"engine", c.Engine},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, &ValidationError{
				Field:   r.field,
				Value:   r.value,
				Message: "must not be empty",
			})
		}
	}

	// LogLevel must be one of: debug, info, warn, error (case-sensitive)
	if !validLogLevels[c.LogLevel] {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Value:   c.LogLevel,
			Message: "must be one of: debug, info, warn, error",
		})
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

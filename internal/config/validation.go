package config

import (
	"fmt"
	"strings"

	"github.com/giantswarm/wirecheck/pkg/logging"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(err error) {
	if err == nil {
		return
	}
	if v, ok := err.(ValidationError); ok {
		*ve = append(*ve, v)
		return
	}
	*ve = append(*ve, ValidationError{Message: err.Error()})
}

// ValidateRequired checks if a required string field is not empty
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{
			Field:   field,
			Value:   value,
			Message: "is required",
		}
	}
	return nil
}

// ValidateOneOf checks if a value is in a list of allowed values
func ValidateOneOf(field, value string, allowed []string) error {
	for _, allowedValue := range allowed {
		if value == allowedValue {
			return nil
		}
	}
	return ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// ValidateRange checks that an integer lies within [lo, hi].
func ValidateRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf("must be between %d and %d", lo, hi),
		}
	}
	return nil
}

// Validate checks a loaded configuration.
func Validate(cfg WirecheckConfig) ValidationErrors {
	var errs ValidationErrors

	errs.Add(ValidateOneOf("validation.output", cfg.Validation.Output,
		[]string{OutputText, OutputJSON, OutputYAML, OutputTable}))
	errs.Add(ValidateRange("validation.maxReports", cfg.Validation.MaxReports, 0, 10000))

	errs.Add(ValidateRequired("server.host", cfg.Server.Host))
	errs.Add(ValidateRange("server.port", cfg.Server.Port, 1, 65535))
	if cfg.Server.ShutdownTimeout < 0 {
		errs.Add(ValidationError{Field: "server.shutdownTimeout", Value: cfg.Server.ShutdownTimeout, Message: "must not be negative"})
	}

	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		errs.Add(ValidationError{Field: "logging.level", Value: cfg.Logging.Level, Message: "must be one of: debug, info, warn, error"})
	}

	return errs
}

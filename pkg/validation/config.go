package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigValidator provides a fluent interface for validating configuration
// values. It collects all validation errors rather than failing on the first.
type ConfigValidator struct {
	errors []error
	name   string // config struct name for error messages
}

// NewConfigValidator creates a new config validator with the given config name.
func NewConfigValidator(configName string) *ConfigValidator {
	return &ConfigValidator{
		name:   configName,
		errors: make([]error, 0),
	}
}

// Required validates that a string field is not empty.
func (cv *ConfigValidator) Required(field, value string) *ConfigValidator {
	if value == "" {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: required field is empty", cv.name, field))
	}
	return cv
}

// OneOf validates that a string field holds one of the allowed values.
func (cv *ConfigValidator) OneOf(field, value string, allowed ...string) *ConfigValidator {
	for _, a := range allowed {
		if value == a {
			return cv
		}
	}
	cv.errors = append(cv.errors, fmt.Errorf("%s.%s: value %q is not one of [%s]",
		cv.name, field, value, strings.Join(allowed, ", ")))
	return cv
}

// MinInt validates that an int field is at least the minimum value.
func (cv *ConfigValidator) MinInt(field string, value, min int) *ConfigValidator {
	if value < min {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: value %d is below minimum %d", cv.name, field, value, min))
	}
	return cv
}

// Validate returns all collected errors joined, or nil when the config is valid.
func (cv *ConfigValidator) Validate() error {
	if len(cv.errors) == 0 {
		return nil
	}
	return errors.Join(cv.errors...)
}

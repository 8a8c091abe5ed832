package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// structValidator returns the shared validator, reporting fields by their koanf key.
func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("koanf"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks cfg against its struct tags and cross-field rules.
// It returns the first failure as a *ConfigError.
func Validate(cfg *Config) error {
	if cfg == nil {
		return NewValidationError("config", "configuration not initialized")
	}

	if err := structValidator().Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return fromFieldError(validationErrors[0])
		}
		return err
	}

	return validateStatement(&cfg.Statement)
}

// validateStatement requires the default limit to fit under the max limit when both are set.
func validateStatement(cfg *StatementConfig) error {
	if cfg.Limit.Max > 0 && cfg.Limit.Default > cfg.Limit.Max {
		return NewValidationError("statement.limit.default",
			fmt.Sprintf("must not exceed statement.limit.max (%d > %d)", cfg.Limit.Default, cfg.Limit.Max))
	}
	return nil
}

// fromFieldError converts a validator failure into a ConfigError keyed by koanf path.
func fromFieldError(fe validator.FieldError) *ConfigError {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		// Drop the root struct name
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		envVar := EnvPrefix + strings.ToUpper(strings.ReplaceAll(field, ".", "_"))
		return NewMissingFieldError(field, envVar, field)
	case "oneof":
		return NewInvalidFieldError(field, fmt.Sprintf("invalid value %q", fmt.Sprint(fe.Value())), strings.Fields(fe.Param()))
	case "gte":
		return NewInvalidFieldError(field, fmt.Sprintf("must be at least %s (got %v)", fe.Param(), fe.Value()), nil)
	default:
		return NewValidationError(field, fmt.Sprintf("failed %s validation", fe.Tag()))
	}
}

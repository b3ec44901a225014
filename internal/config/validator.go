package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mtlprog/clinicsite/internal/domain"
)

// Validator checks clinic configuration before anything is rendered.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new Validator that reports fields by their
// environment variable name.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateClinic normalizes cfg and checks that every required field is set.
// Returns the normalized config, or a *domain.MissingConfigurationError.
func (v *Validator) ValidateClinic(cfg domain.ClinicConfig) (domain.ClinicConfig, error) {
	cfg = cfg.Normalize()

	err := v.validate.Struct(cfg)
	if err == nil {
		return cfg, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return domain.ClinicConfig{}, fmt.Errorf("validate clinic config: %w", err)
	}

	missing := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		missing = append(missing, fe.Field())
	}

	return domain.ClinicConfig{}, &domain.MissingConfigurationError{Fields: missing}
}

var defaultValidator = NewValidator()

// Validate checks cfg with the package-level Validator.
func Validate(cfg domain.ClinicConfig) (domain.ClinicConfig, error) {
	return defaultValidator.ValidateClinic(cfg)
}

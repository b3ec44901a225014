package domain

import (
	"errors"
	"strings"
)

// Domain-specific errors.
var (
	// ErrMissingConfiguration means a required clinic setting is absent.
	ErrMissingConfiguration = errors.New("missing configuration")

	ErrUnknownPage   = errors.New("unknown page")
	ErrInvalidLayout = errors.New("invalid layout")
)

// MissingConfigurationError lists the required settings that were absent.
// It matches ErrMissingConfiguration with errors.Is.
type MissingConfigurationError struct {
	Fields []string
}

func (e *MissingConfigurationError) Error() string {
	return ErrMissingConfiguration.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingConfigurationError) Unwrap() error {
	return ErrMissingConfiguration
}

package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/clinicsite/internal/domain"
)

func TestMissingConfigurationError(t *testing.T) {
	err := fmt.Errorf("load: %w", &domain.MissingConfigurationError{Fields: []string{"CLINIC_NAME", "NP_FIRST_NAME"}})

	assert.True(t, errors.Is(err, domain.ErrMissingConfiguration))
	assert.Equal(t, "load: missing configuration: CLINIC_NAME, NP_FIRST_NAME", err.Error())
}

func TestParseLayout(t *testing.T) {
	layout, err := domain.ParseLayout("single")
	assert.NoError(t, err)
	assert.Equal(t, domain.LayoutSingle, layout)

	_, err = domain.ParseLayout("carousel")
	assert.True(t, errors.Is(err, domain.ErrInvalidLayout))
}

func TestNormalize(t *testing.T) {
	cfg := domain.ClinicConfig{Name: " Sunrise ", PractitionerName: "Jane"}.Normalize()

	assert.Equal(t, "Sunrise", cfg.Name)
	assert.Equal(t, domain.DefaultPhone, cfg.Phone)
	assert.Equal(t, domain.DefaultAddress, cfg.Address)
	assert.Equal(t, "#", cfg.BookingURL)
	assert.True(t, domain.PageContact.IsValid())
	assert.False(t, domain.PageID("billing").IsValid())
}

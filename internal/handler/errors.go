package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/mtlprog/clinicsite/internal/domain"
)

// MapDomainError maps domain errors to an HTTP status code and a message
// safe to show to visitors.
func MapDomainError(ctx context.Context, err error) (status int, message string) {
	switch {
	case errors.Is(err, domain.ErrUnknownPage):
		return http.StatusNotFound, "Page not found"
	case errors.Is(err, domain.ErrMissingConfiguration):
		return http.StatusInternalServerError, "Site is not configured"
	case errors.Is(err, domain.ErrInvalidLayout):
		return http.StatusInternalServerError, "Site is not configured"

	default:
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("error_type", fmt.Sprintf("%T", err)).
			Msg("unmapped domain error returned to client")
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError writes a plain-text error for err.
func respondError(w http.ResponseWriter, r *http.Request, err error) int {
	status, message := MapDomainError(r.Context(), err)
	http.Error(w, message, status)
	return status
}

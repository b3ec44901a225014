package middleware

import (
	"net/http"
	"strings"
)

// SecurityConfig represents security headers configuration.
type SecurityConfig struct {
	FrameOptions       string
	ContentTypeOptions string
	ReferrerPolicy     string
	CSPDirectives      []string
}

// DefaultSecurityConfig returns the headers used for the clinic pages.
// Pages carry no scripts; styles and images are served from this origin.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		FrameOptions:       "DENY",
		ContentTypeOptions: "nosniff",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		CSPDirectives: []string{
			"default-src 'self'",
			"img-src 'self' data:",
			"script-src 'none'",
			"style-src 'self'",
			"frame-ancestors 'none'",
		},
	}
}

// SecurityHeaders adds security headers to every response.
func SecurityHeaders(config SecurityConfig) func(http.Handler) http.Handler {
	csp := strings.Join(config.CSPDirectives, "; ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Frame-Options", config.FrameOptions)
			h.Set("X-Content-Type-Options", config.ContentTypeOptions)
			h.Set("Referrer-Policy", config.ReferrerPolicy)
			if csp != "" {
				h.Set("Content-Security-Policy", csp)
			}

			next.ServeHTTP(w, r)
		})
	}
}

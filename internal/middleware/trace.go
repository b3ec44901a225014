package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	// ContextKeyTraceID is the key for storing the trace id in request context.
	ContextKeyTraceID contextKey = "trace_id"

	// TraceIDHeader carries the trace id in requests and responses.
	TraceIDHeader = "X-Trace-ID"
)

// TraceID takes the trace id from the request header, or generates one,
// and attaches it to the context along with a child logger carrying it.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := log.With().Str("trace_id", traceID).Logger()
		ctx := context.WithValue(r.Context(), ContextKeyTraceID, traceID)
		ctx = l.WithContext(ctx)

		w.Header().Set(TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTraceIDFromContext retrieves the trace id from request context.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(ContextKeyTraceID).(string)
	return traceID
}

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/andesbank/core-banking/internal/api/shared"
	"github.com/andesbank/core-banking/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and stores a
// trace-enriched logger alongside it, so handlers, services, and stores all
// log with the same correlation ID.
// This middleware should be applied early in the middleware chain.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

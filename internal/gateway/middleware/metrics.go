package middleware

import (
	"net/http"
	"time"

	gw "authgate/internal/gateway"
	"authgate/internal/platform/telemetry"
)

// unmatchedRoute labels requests no route matched, keeping label cardinality
// bounded when clients probe arbitrary paths.
const unmatchedRoute = "unmatched"

// Metrics returns middleware that records HTTP request metrics.
// Place as the outermost middleware to capture the full request lifecycle.
func Metrics(m *telemetry.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &gw.StatusWriter{ResponseWriter: w, Code: http.StatusOK}
			ctx := gw.ContextWithRouteSlot(r.Context())

			next.ServeHTTP(sw, r.WithContext(ctx))

			if m != nil {
				route := gw.RouteFromContext(ctx)
				if route == "" {
					route = unmatchedRoute
				}
				m.RecordHTTPRequest(ctx, r.Method, route, sw.Code, time.Since(start).Seconds())
			}
		})
	}
}

package api

import (
	"log/slog"
	"net/http"

	"authgate/internal/gateway/middleware"
	"authgate/internal/gateway/rejection"
	"authgate/internal/gateway/router"
	"authgate/internal/platform/telemetry"
)

// Routes registers additional routes on the service router.
type Routes func(rt *router.Router, rejections *rejection.Handler)

// NewHandler assembles the service routes, any extra routes, and the
// middleware chain. metrics may be nil. Unknown rejections are reported on logger.
func NewHandler(logger *slog.Logger, metrics *telemetry.Metrics, extra ...Routes) http.Handler {
	rejections := rejection.New(logger.With("component", "rejection"), metrics)

	rt := router.New(rejections)
	rt.Mount(http.MethodGet, "/metrics", telemetry.MetricsHandler())
	Register(rt, rejections)
	for _, routes := range extra {
		routes(rt, rejections)
	}

	var metricsMW middleware.Middleware
	if metrics != nil {
		metricsMW = middleware.Metrics(metrics)
	}
	return middleware.Chain(
		rt,
		metricsMW,
		middleware.RequestID,
		middleware.Logging(logger),
		middleware.Recovery(rejections),
	)
}

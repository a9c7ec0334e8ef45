package telemetry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// ShutdownFunc releases telemetry resources.
type ShutdownFunc func(ctx context.Context) error

// Setup initializes OpenTelemetry with a Prometheus exporter.
// Returns a shutdown function that must be called on exit.
func Setup(ctx context.Context, serviceName string) (ShutdownFunc, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter for %s: %w", serviceName, err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	return provider.Shutdown, nil
}

// MetricsHandler returns an http.Handler that serves Prometheus metrics.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// Metrics holds the OTel instruments for the service.
type Metrics struct {
	httpRequestsTotal   otelmetric.Int64Counter
	httpRequestDuration otelmetric.Float64Histogram
	rejectionsTotal     otelmetric.Int64Counter
}

// NewMetrics creates and registers all service metrics.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("authgate")
	m := &Metrics{}
	var err error

	latencyBuckets := otelmetric.WithExplicitBucketBoundaries(
		0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0,
	)

	if m.httpRequestsTotal, err = meter.Int64Counter("authgate_http_requests_total",
		otelmetric.WithDescription("Total HTTP requests")); err != nil {
		return nil, fmt.Errorf("creating http_requests_total: %w", err)
	}
	if m.httpRequestDuration, err = meter.Float64Histogram("authgate_http_request_duration_seconds",
		otelmetric.WithDescription("HTTP request duration"), latencyBuckets); err != nil {
		return nil, fmt.Errorf("creating http_request_duration: %w", err)
	}
	if m.rejectionsTotal, err = meter.Int64Counter("authgate_rejections_total",
		otelmetric.WithDescription("Total rejected requests by status and reason")); err != nil {
		return nil, fmt.Errorf("creating rejections_total: %w", err)
	}

	return m, nil
}

// RecordHTTPRequest records an HTTP request metric. route should be a
// low-cardinality label such as the matched pattern.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, route string, status int, durationSec float64) {
	attrs := otelmetric.WithAttributes(
		methodAttr(method),
		routeAttr(route),
		statusAttr(status),
	)
	m.httpRequestsTotal.Add(ctx, 1, attrs)
	m.httpRequestDuration.Record(ctx, durationSec, attrs)
}

// RecordRejection records a request answered with an error response.
func (m *Metrics) RecordRejection(ctx context.Context, status int, reason string) {
	m.rejectionsTotal.Add(ctx, 1, otelmetric.WithAttributes(
		statusAttr(status),
		reasonAttr(reason),
	))
}

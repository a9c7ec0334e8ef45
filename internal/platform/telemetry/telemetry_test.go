package telemetry_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"authgate/internal/platform/telemetry"
)

func TestSetupAndShutdown(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}

func TestMetricsHandler(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	defer shutdown(context.Background())

	handler := telemetry.MetricsHandler()
	if handler == nil {
		t.Fatal("expected non-nil metrics handler")
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestServiceMetrics(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), "authgate")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	defer shutdown(context.Background())

	m, err := telemetry.NewMetrics()
	if err != nil {
		t.Fatalf("NewMetrics failed: %v", err)
	}

	ctx := context.Background()
	m.RecordHTTPRequest(ctx, "GET", "/healthz", 200, 0.002)
	m.RecordRejection(ctx, 403, "wrong_credentials")
	m.RecordRejection(ctx, 404, "not_found")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	telemetry.MetricsHandler().ServeHTTP(rec, req)

	body, _ := io.ReadAll(rec.Body)
	output := string(body)

	expected := []string{
		"authgate_http_requests_total",
		"authgate_http_request_duration_seconds",
		"authgate_rejections_total",
		`reason="wrong_credentials"`,
	}
	for _, metric := range expected {
		if !strings.Contains(output, metric) {
			t.Errorf("metrics output missing %q", metric)
		}
	}
}

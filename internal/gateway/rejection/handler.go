package rejection

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"authgate/internal/gateway"
	"authgate/internal/platform/telemetry"
)

// Handler writes rejections as JSON error responses. Unknown rejections are
// reported on the injected logger, never in the response body.
// A Handler is safe for concurrent use.
type Handler struct {
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// New returns a Handler. A nil logger falls back to slog.Default;
// metrics is optional.
func New(logger *slog.Logger, metrics *telemetry.Metrics) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, metrics: metrics}
}

// Reply classifies rej and writes the response. It never fails.
func (h *Handler) Reply(w http.ResponseWriter, r *http.Request, rej Rejection) {
	code, message := h.Report(r, rej)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(NewResponse(code, message)); err != nil {
		h.logger.ErrorContext(r.Context(), "encoding error response", "error", err)
	}
}

// Report classifies rej, logs it and records metrics without writing a
// response. Use it when the response has already been started.
func (h *Handler) Report(r *http.Request, rej Rejection) (int, string) {
	code, message := Classify(rej)
	ctx := r.Context()

	switch {
	case rej.reason == ReasonUnknown:
		h.logger.ErrorContext(ctx, "unhandled rejection",
			"error", rej.cause,
			"request_id", gateway.RequestIDFromContext(ctx),
			"method", r.Method,
			"path", r.URL.Path,
		)
	case rej.cause != nil:
		h.logger.DebugContext(ctx, "request rejected",
			"reason", rej.Label(),
			"error", rej.cause,
			"request_id", gateway.RequestIDFromContext(ctx),
		)
	}

	if h.metrics != nil {
		h.metrics.RecordRejection(ctx, code, rej.Label())
	}
	return code, message
}

// Logger returns the diagnostic logger.
func (h *Handler) Logger() *slog.Logger {
	return h.logger
}

// ReplyError is shorthand for Reply(w, r, FromError(err)).
func (h *Handler) ReplyError(w http.ResponseWriter, r *http.Request, err error) {
	h.Reply(w, r, FromError(err))
}

// NotFoundHandler answers every request with a not-found rejection.
func (h *Handler) NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.Reply(w, r, NotFound())
	})
}

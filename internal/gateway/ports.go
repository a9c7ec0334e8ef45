package gateway

import (
	"context"
	"net/http"
)

// StatusWriter wraps http.ResponseWriter to capture the status code.
// A zero Code means nothing has been written yet.
type StatusWriter struct {
	http.ResponseWriter
	Code int
}

func (sw *StatusWriter) WriteHeader(code int) {
	sw.Code = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *StatusWriter) Write(b []byte) (int, error) {
	if sw.Code == 0 {
		sw.Code = http.StatusOK
	}
	return sw.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (sw *StatusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}

// RequestIDFromContext extracts the request ID from the context.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// ContextWithRequestID stores the request ID in the context.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

type requestIDKey struct{}

// BearerTokenFromContext returns the raw bearer token extracted from the
// Authorization header. The token has not been verified.
func BearerTokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(bearerTokenKey{}).(string)
	return tok, ok
}

// ContextWithBearerToken stores the raw bearer token in the context.
func ContextWithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey{}, token)
}

type bearerTokenKey struct{}

// RouteFromContext returns the matched route pattern, or "" when no route matched.
func RouteFromContext(ctx context.Context) string {
	route, _ := ctx.Value(routeKey{}).(*string)
	if route == nil {
		return ""
	}
	return *route
}

// ContextWithRouteSlot installs a slot that an inner router fills with the
// matched pattern so outer middleware can read it after the request completes.
func ContextWithRouteSlot(ctx context.Context) context.Context {
	var route string
	return context.WithValue(ctx, routeKey{}, &route)
}

// SetRoute records the matched pattern in the slot installed by
// ContextWithRouteSlot. It is a no-op when no slot exists.
func SetRoute(ctx context.Context, pattern string) {
	if route, ok := ctx.Value(routeKey{}).(*string); ok && route != nil {
		*route = pattern
	}
}

type routeKey struct{}

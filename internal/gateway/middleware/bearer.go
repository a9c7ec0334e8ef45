package middleware

import (
	"net/http"
	"strings"

	"authgate/internal/domain"
	gw "authgate/internal/gateway"
	"authgate/internal/gateway/rejection"
)

// BearerAuth requires an "Authorization: Bearer <token>" header and stores the
// raw token in the request context. The token is not verified here.
func BearerAuth(rejections *rejection.Handler) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, kind, ok := extractBearerToken(r)
			if !ok {
				rejections.Reply(w, r, rejection.Known(kind))
				return
			}
			ctx := gw.ContextWithBearerToken(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) (string, domain.ErrorKind, bool) {
	values := r.Header.Values("Authorization")
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return "", domain.MissingAuthHeader, false
	}
	if len(values) > 1 {
		return "", domain.InvalidAuthHeader, false
	}
	scheme, token, found := strings.Cut(strings.TrimSpace(values[0]), " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.ContainsAny(token, " \t") {
		return "", domain.InvalidAuthHeader, false
	}
	return token, 0, true
}

// Package api registers the service's HTTP routes.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"authgate/internal/domain"
	gw "authgate/internal/gateway"
	"authgate/internal/gateway/middleware"
	"authgate/internal/gateway/rejection"
	"authgate/internal/gateway/router"
)

// TokenClaims is the body returned by the claims inspection endpoint.
type TokenClaims struct {
	Header map[string]any `json:"header"`
	Claims jwt.MapClaims  `json:"claims"`
}

// Register adds the service routes to rt. Response encoding failures are
// reported on the rejection handler's logger.
func Register(rt *router.Router, rejections *rejection.Handler) {
	logger := rejections.Logger()
	rt.Get("/healthz", status(logger, "ok"))
	rt.Get("/readyz", status(logger, "ready"))

	bearer := middleware.BearerAuth(rejections)
	rt.Mount(http.MethodGet, "/v1/token/claims", bearer(claimsHandler(rejections, logger)))
}

func status(logger *slog.Logger, s string) router.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		writeJSON(logger, w, http.StatusOK, map[string]string{"status": s})
		return nil
	}
}

// claimsHandler decodes the bearer token without verifying its signature,
// so operators can see what a client is sending.
func claimsHandler(rejections *rejection.Handler, logger *slog.Logger) http.Handler {
	parser := jwt.NewParser()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := gw.BearerTokenFromContext(r.Context())
		if !ok {
			rejections.Reply(w, r, rejection.Known(domain.MissingAuthHeader))
			return
		}

		claims := jwt.MapClaims{}
		token, _, err := parser.ParseUnverified(raw, claims)
		if err != nil {
			rejections.Reply(w, r, rejection.FromTokenError(err))
			return
		}

		writeJSON(logger, w, http.StatusOK, TokenClaims{Header: token.Header, Claims: claims})
	})
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encoding response", "error", err)
	}
}

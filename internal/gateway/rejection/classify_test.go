package rejection_test

import (
	"errors"
	"net/http"
	"testing"

	"authgate/internal/domain"
	"authgate/internal/gateway/rejection"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		rej    rejection.Rejection
		status int
		msg    string
	}{
		{"not found", rejection.NotFound(), http.StatusNotFound, "Not Found"},
		{"wrong credentials", rejection.Known(domain.WrongCredentials), http.StatusForbidden, "wrong credentials"},
		{"no permission", rejection.Known(domain.NoPermission), http.StatusUnauthorized, "no permission"},
		{"invalid token", rejection.Known(domain.InvalidToken), http.StatusForbidden, "jwt token not valid"},
		{"token creation failed", rejection.Known(domain.TokenCreationFailed), http.StatusInternalServerError, "Internal Server Error"},
		{"missing auth header", rejection.Known(domain.MissingAuthHeader), http.StatusBadRequest, "no auth header"},
		{"invalid auth header", rejection.Known(domain.InvalidAuthHeader), http.StatusBadRequest, "invalid auth header"},
		{"method not allowed", rejection.MethodNotAllowed(), http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"unknown", rejection.Unknown(errors.New("db connection refused")), http.StatusInternalServerError, "Internal Server Error"},
		{"unknown nil cause", rejection.Unknown(nil), http.StatusInternalServerError, "Internal Server Error"},
		{"zero value", rejection.Rejection{}, http.StatusInternalServerError, "Internal Server Error"},
		{"invalid kind", rejection.Known(domain.ErrorKind(0)), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := rejection.Classify(tt.rej)
			if status != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, status)
			}
			if msg != tt.msg {
				t.Errorf("expected message %q, got %q", tt.msg, msg)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for _, kind := range domain.Kinds() {
		s1, m1 := rejection.Classify(rejection.Known(kind))
		s2, m2 := rejection.Classify(rejection.Known(kind))
		if s1 != s2 || m1 != m2 {
			t.Errorf("%s: classification not deterministic: (%d,%q) vs (%d,%q)", kind.Name(), s1, m1, s2, m2)
		}
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{http.StatusBadRequest, "400 Bad Request"},
		{http.StatusUnauthorized, "401 Unauthorized"},
		{http.StatusForbidden, "403 Forbidden"},
		{http.StatusNotFound, "404 Not Found"},
		{http.StatusMethodNotAllowed, "405 Method Not Allowed"},
		{http.StatusInternalServerError, "500 Internal Server Error"},
		{599, "599"},
	}
	for _, tt := range tests {
		if got := rejection.StatusText(tt.code); got != tt.want {
			t.Errorf("StatusText(%d): expected %q, got %q", tt.code, tt.want, got)
		}
	}
}

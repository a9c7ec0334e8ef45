package domain_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"authgate/internal/domain"
)

func TestErrorKindMessages(t *testing.T) {
	tests := []struct {
		kind domain.ErrorKind
		msg  string
		name string
	}{
		{domain.WrongCredentials, "wrong credentials", "wrong_credentials"},
		{domain.InvalidToken, "jwt token not valid", "invalid_token"},
		{domain.TokenCreationFailed, "jwt token creation error", "token_creation_failed"},
		{domain.MissingAuthHeader, "no auth header", "missing_auth_header"},
		{domain.InvalidAuthHeader, "invalid auth header", "invalid_auth_header"},
		{domain.NoPermission, "no permission", "no_permission"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.kind.Error() != tt.msg {
				t.Errorf("expected %q, got %q", tt.msg, tt.kind.Error())
			}
			if tt.kind.String() != tt.msg {
				t.Errorf("String: expected %q, got %q", tt.msg, tt.kind.String())
			}
			if tt.kind.Name() != tt.name {
				t.Errorf("Name: expected %q, got %q", tt.name, tt.kind.Name())
			}
			if got := tt.kind.LogValue().String(); got != tt.name {
				t.Errorf("LogValue: expected %q, got %q", tt.name, got)
			}
		})
	}
}

func TestKindsIsClosedSet(t *testing.T) {
	kinds := domain.Kinds()
	if len(kinds) != 6 {
		t.Fatalf("expected 6 kinds, got %d", len(kinds))
	}
	seen := make(map[domain.ErrorKind]bool)
	for _, k := range kinds {
		if !k.Valid() {
			t.Errorf("kind %d should be valid", k)
		}
		if seen[k] {
			t.Errorf("duplicate kind %v", k)
		}
		seen[k] = true
	}

	var zero domain.ErrorKind
	if zero.Valid() {
		t.Error("zero ErrorKind should not be valid")
	}
	if zero.Name() != "unknown" {
		t.Errorf("expected zero kind name 'unknown', got %q", zero.Name())
	}
	if domain.ErrorKind(99).Valid() {
		t.Error("out-of-range ErrorKind should not be valid")
	}
}

func TestErrorKindWrapping(t *testing.T) {
	err := fmt.Errorf("checking credentials for %q: %w", "alice", domain.WrongCredentials)

	var kind domain.ErrorKind
	if !errors.As(err, &kind) {
		t.Fatal("expected errors.As to find the ErrorKind")
	}
	if kind != domain.WrongCredentials {
		t.Errorf("expected WrongCredentials, got %v", kind)
	}
	if !errors.Is(err, domain.WrongCredentials) {
		t.Error("expected errors.Is to match WrongCredentials")
	}
	if errors.Is(err, domain.NoPermission) {
		t.Error("WrongCredentials should not match NoPermission")
	}
}

func TestErrorResponseShape(t *testing.T) {
	b, err := json.Marshal(domain.ErrorResponse{Message: "no permission", Status: "401 Unauthorized"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"message":"no permission","status":"401 Unauthorized"}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
}

func TestRoutingSentinels(t *testing.T) {
	if domain.ErrNotFound.Error() != "not found" {
		t.Errorf("unexpected ErrNotFound message: %q", domain.ErrNotFound.Error())
	}
	if domain.ErrMethodNotAllowed.Error() != "method not allowed" {
		t.Errorf("unexpected ErrMethodNotAllowed message: %q", domain.ErrMethodNotAllowed.Error())
	}
	if errors.Is(domain.ErrNotFound, domain.ErrMethodNotAllowed) {
		t.Error("routing sentinels should be distinct")
	}
}

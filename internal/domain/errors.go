package domain

import (
	"errors"
	"log/slog"
)

// Sentinel errors for routing-level conditions. Handlers may return these
// to be answered the same way as an unmatched route or method.
var (
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// ErrorKind enumerates authentication and authorization failures.
// Kinds carry no payload; the kind alone determines status and message.
type ErrorKind int

const (
	kindInvalid ErrorKind = iota
	WrongCredentials
	InvalidToken
	TokenCreationFailed
	MissingAuthHeader
	InvalidAuthHeader
	NoPermission
)

var kindMessages = [...]string{
	WrongCredentials:    "wrong credentials",
	InvalidToken:        "jwt token not valid",
	TokenCreationFailed: "jwt token creation error",
	MissingAuthHeader:   "no auth header",
	InvalidAuthHeader:   "invalid auth header",
	NoPermission:        "no permission",
}

var kindNames = [...]string{
	WrongCredentials:    "wrong_credentials",
	InvalidToken:        "invalid_token",
	TokenCreationFailed: "token_creation_failed",
	MissingAuthHeader:   "missing_auth_header",
	InvalidAuthHeader:   "invalid_auth_header",
	NoPermission:        "no_permission",
}

// Kinds returns every valid ErrorKind in declaration order.
func Kinds() []ErrorKind {
	return []ErrorKind{
		WrongCredentials,
		InvalidToken,
		TokenCreationFailed,
		MissingAuthHeader,
		InvalidAuthHeader,
		NoPermission,
	}
}

// Valid reports whether k is one of the declared kinds.
func (k ErrorKind) Valid() bool {
	return k > kindInvalid && k <= NoPermission
}

// Error returns the canonical client-facing message.
func (k ErrorKind) Error() string {
	if !k.Valid() {
		return "unknown error kind"
	}
	return kindMessages[k]
}

func (k ErrorKind) String() string {
	return k.Error()
}

// Name returns a stable identifier suitable for logs and metric labels.
func (k ErrorKind) Name() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// LogValue implements slog.LogValuer.
func (k ErrorKind) LogValue() slog.Value {
	return slog.StringValue(k.Name())
}

// ErrorResponse is the JSON error envelope returned to clients.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

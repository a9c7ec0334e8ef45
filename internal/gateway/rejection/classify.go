package rejection

import (
	"net/http"
	"strconv"

	"authgate/internal/domain"
)

const (
	msgNotFound         = "Not Found"
	msgMethodNotAllowed = "Method Not Allowed"
	msgInternal         = "Internal Server Error"
)

// Classify returns the status code and client-facing message for rej.
// It is total: every Rejection value maps to a response.
func Classify(rej Rejection) (int, string) {
	switch rej.reason {
	case ReasonNotFound:
		return http.StatusNotFound, msgNotFound
	case ReasonKnown:
		return classifyKind(rej.kind)
	case ReasonMethodNotAllowed:
		return http.StatusMethodNotAllowed, msgMethodNotAllowed
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func classifyKind(kind domain.ErrorKind) (int, string) {
	switch kind {
	case domain.WrongCredentials:
		return http.StatusForbidden, kind.Error()
	case domain.NoPermission:
		return http.StatusUnauthorized, kind.Error()
	case domain.InvalidToken:
		return http.StatusForbidden, kind.Error()
	case domain.TokenCreationFailed:
		// Token creation failures are server faults; the cause stays internal.
		return http.StatusInternalServerError, msgInternal
	case domain.MissingAuthHeader, domain.InvalidAuthHeader:
		return http.StatusBadRequest, kind.Error()
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// StatusText renders a status code as "<code> <reason phrase>", e.g. "403 Forbidden".
func StatusText(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return strconv.Itoa(code)
	}
	return strconv.Itoa(code) + " " + text
}

// NewResponse builds the wire record for a classified rejection.
func NewResponse(code int, message string) domain.ErrorResponse {
	return domain.ErrorResponse{
		Message: message,
		Status:  StatusText(code),
	}
}

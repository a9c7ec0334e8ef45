package rejection

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"authgate/internal/domain"
)

var tokenValidationErrors = []error{
	jwt.ErrTokenMalformed,
	jwt.ErrTokenUnverifiable,
	jwt.ErrTokenSignatureInvalid,
	jwt.ErrTokenRequiredClaimMissing,
	jwt.ErrTokenInvalidAudience,
	jwt.ErrTokenExpired,
	jwt.ErrTokenUsedBeforeIssued,
	jwt.ErrTokenInvalidIssuer,
	jwt.ErrTokenInvalidSubject,
	jwt.ErrTokenNotValidYet,
	jwt.ErrTokenInvalidId,
	jwt.ErrTokenInvalidClaims,
}

var tokenSigningErrors = []error{
	jwt.ErrInvalidKey,
	jwt.ErrInvalidKeyType,
	jwt.ErrHashUnavailable,
}

// ClassifyTokenError maps an error from the jwt library to an ErrorKind.
// Parse errors wrap key errors too, so validation sentinels win.
func ClassifyTokenError(err error) domain.ErrorKind {
	for _, target := range tokenValidationErrors {
		if errors.Is(err, target) {
			return domain.InvalidToken
		}
	}
	for _, target := range tokenSigningErrors {
		if errors.Is(err, target) {
			return domain.TokenCreationFailed
		}
	}
	return domain.InvalidToken
}

// FromTokenError returns a known rejection for a jwt error, keeping err as
// the cause for diagnostics.
func FromTokenError(err error) Rejection {
	rej := Known(ClassifyTokenError(err))
	rej.cause = err
	return rej
}

package service

import (
	"time"

	"sews/internal/domain/entity"
)

// TokenService issues and verifies stateless bearer tokens.
type TokenService interface {
	// Issue mints an access and a refresh token for the principal.
	Issue(principal entity.Principal) (*entity.TokenPair, error)

	// Verify checks signature and expiry and returns what the token asserts.
	// Failures are ErrTokenExpired, ErrTokenMalformed or ErrTokenSignatureInvalid.
	Verify(token string) (*entity.ResolvedIdentity, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(refreshToken string) (accessToken string, expiresAt time.Time, err error)
}

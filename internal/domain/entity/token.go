package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenClass separates short-lived access tokens from long-lived refresh tokens.
type TokenClass string

const (
	TokenAccess  TokenClass = "access"
	TokenRefresh TokenClass = "refresh"
)

// ResolvedIdentity is what a verified token says about its bearer.
type ResolvedIdentity struct {
	PrincipalID uuid.UUID
	Kind        PrincipalKind
	Class       TokenClass
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

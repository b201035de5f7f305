// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"sews/internal/domain/entity"
)

// AuthUsecase checks raw credentials against the credential store.
// It never mints tokens; see SessionUsecase.Login for that.
type AuthUsecase interface {
	Authenticate(ctx context.Context, kind entity.PrincipalKind, identifier, password string) (entity.Principal, error)
}

// SessionUsecase turns credentials into tokens and tokens back into principals.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)
	// Resolve loads the account a verified token points at.
	Resolve(ctx context.Context, identity *entity.ResolvedIdentity) (entity.Principal, error)
}

// LoginInput carries the raw credentials of one login attempt.
type LoginInput struct {
	Kind       entity.PrincipalKind
	Identifier string
	Password   string
}

// LoginOutput is a successful login.
type LoginOutput struct {
	Principal entity.Principal
	Tokens    *entity.TokenPair
}

// RefreshOutput is a freshly minted access token.
type RefreshOutput struct {
	AccessToken string
	ExpiresAt   time.Time
}

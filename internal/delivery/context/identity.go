package context

import (
	"context"

	"sews/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the bearer's resolved identity in context.
const KeyIdentity ContextKey = "identity"

// WithIdentity returns a new context carrying the resolved identity.
func WithIdentity(ctx context.Context, identity *entity.ResolvedIdentity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentity returns the identity attached by the session middleware, or nil
// when the request is unauthenticated.
func GetIdentity(ctx context.Context) *entity.ResolvedIdentity {
	if identity, ok := ctx.Value(KeyIdentity).(*entity.ResolvedIdentity); ok {
		return identity
	}

	return nil
}

// SetIdentity stores the identity on both the echo context and the request context.
func SetIdentity(c echo.Context, identity *entity.ResolvedIdentity) {
	c.Set(string(KeyIdentity), identity)
	c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))
}

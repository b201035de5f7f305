package middleware

import (
	"log/slog"
	"strings"

	"sews/config"
	deliverycontext "sews/internal/delivery/context"
	"sews/internal/delivery/http/response"
	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
	"sews/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "bearer "

// SessionMiddleware resolves the bearer token of a request into an identity.
// By default it never rejects a request: a missing or bad token simply leaves
// the request unauthenticated, and each operation decides whether that is acceptable.
type SessionMiddleware struct {
	tokens      service.TokenService
	exemptPaths []string
	failOpen    bool
	logger      *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(tokens service.TokenService, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	m := &SessionMiddleware{
		tokens:   tokens,
		failOpen: true,
		logger:   logger,
	}
	if cfg != nil && cfg.Auth != nil {
		m.exemptPaths = cfg.Auth.ExemptPaths
		m.failOpen = cfg.Auth.SessionFailOpen()
	}

	return m
}

// Skipper reports whether path starts with a configured exempt prefix.
func (m *SessionMiddleware) Skipper(c echo.Context) bool {
	path := c.Request().URL.Path
	for _, prefix := range m.exemptPaths {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// Handle attaches the identity of a valid access token to the request context.
func (m *SessionMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.Skipper(c) {
			return next(c)
		}

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return next(c)
		}

		identity, err := m.verify(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
			logger.Debug("Bearer token not accepted", slog.String("kind", string(domainerrors.KindOf(err))))

			if !m.failOpen {
				return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
			}

			return next(c)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// verify accepts access tokens only; a refresh token never authenticates a request.
func (m *SessionMiddleware) verify(token string) (*entity.ResolvedIdentity, error) {
	identity, err := m.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	if identity.Class != entity.TokenAccess {
		return nil, domainerrors.ErrTokenMalformed.WithDetails("refresh token used as bearer")
	}

	return identity, nil
}

package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sews/config"
	deliverycontext "sews/internal/delivery/context"
	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
	mockService "sews/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionMiddleware(t *testing.T, failOpen bool) (*SessionMiddleware, *mockService.MockTokenService) {
	tokens := mockService.NewMockTokenService(t)
	cfg := &config.Config{Auth: &config.AuthConfig{
		ExemptPaths: []string{"/health", "/api/clothing-styles"},
		FailOpen:    &failOpen,
	}}

	return NewSessionMiddleware(tokens, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), tokens
}

// serve runs the middleware and reports the identity the handler saw.
func serve(t *testing.T, m *SessionMiddleware, path, authorization string) (*entity.ResolvedIdentity, *httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.ResolvedIdentity
	called := false
	err := m.Handle(func(c echo.Context) error {
		called = true
		seen = deliverycontext.GetIdentity(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	return seen, rec, called
}

func TestSessionMiddleware_AttachesAccessIdentity(t *testing.T) {
	m, tokens := newSessionMiddleware(t, true)
	identity := &entity.ResolvedIdentity{PrincipalID: uuid.New(), Kind: entity.PrincipalTailor, Class: entity.TokenAccess}
	tokens.On("Verify", "good").Return(identity, nil).Once()

	seen, _, called := serve(t, m, "/graphql", "Bearer good")

	assert.True(t, called)
	assert.Equal(t, identity, seen)
}

func TestSessionMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	m, tokens := newSessionMiddleware(t, true)
	identity := &entity.ResolvedIdentity{PrincipalID: uuid.New(), Kind: entity.PrincipalCustomer, Class: entity.TokenAccess}
	tokens.On("Verify", "good").Return(identity, nil).Once()

	seen, _, _ := serve(t, m, "/graphql", "bearer good")

	assert.Equal(t, identity, seen)
}

func TestSessionMiddleware_PassesThroughWithoutToken(t *testing.T) {
	m, _ := newSessionMiddleware(t, true)

	for _, header := range []string{"", "Basic dXNlcjpwYXNz", "Bearer "} {
		seen, rec, called := serve(t, m, "/graphql", header)

		assert.True(t, called, header)
		assert.Nil(t, seen, header)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestSessionMiddleware_FailOpenOnInvalidToken(t *testing.T) {
	m, tokens := newSessionMiddleware(t, true)
	tokens.On("Verify", "expired").Return(nil, domainerrors.ErrTokenExpired).Once()
	tokens.On("Verify", "refresh").Return(&entity.ResolvedIdentity{Class: entity.TokenRefresh}, nil).Once()

	for _, token := range []string{"expired", "refresh"} {
		seen, rec, called := serve(t, m, "/graphql", "Bearer "+token)

		assert.True(t, called)
		assert.Nil(t, seen)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestSessionMiddleware_FailClosedWhenConfigured(t *testing.T) {
	m, tokens := newSessionMiddleware(t, false)
	tokens.On("Verify", "tampered").Return(nil, domainerrors.ErrTokenSignatureInvalid).Once()

	_, rec, called := serve(t, m, "/graphql", "Bearer tampered")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_ExemptPathSkipsVerification(t *testing.T) {
	m, tokens := newSessionMiddleware(t, false)

	seen, _, called := serve(t, m, "/api/clothing-styles/", "Bearer whatever")

	assert.True(t, called)
	assert.Nil(t, seen)
	tokens.AssertNotCalled(t, "Verify", "whatever")
}

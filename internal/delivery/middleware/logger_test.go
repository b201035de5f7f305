package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"sews/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerMiddleware_LogsQueryParamNamesOnly(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

	q := url.Values{}
	q.Set("query", `mutation { tailorLogin(username: "jane", password: "S3cretPW") { success } }`)
	q.Set("operationName", "Login")
	req := httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, `"query_params":["operationName","query"]`)
	assert.NotContains(t, logged, "S3cretPW")
	assert.NotContains(t, logged, "tailorLogin")
}

func TestLoggerMiddleware_QuietOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	require.NoError(t, mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c))

	assert.Empty(t, buf.String())
}

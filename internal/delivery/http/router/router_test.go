package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sews/config"
	"sews/internal/delivery/http/router/handler"

	gql "github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_RegistersRoutes(t *testing.T) {
	schema, err := gql.NewSchema(gql.SchemaConfig{
		Query: gql.NewObject(gql.ObjectConfig{
			Name:   "Query",
			Fields: gql.Fields{"ping": &gql.Field{Type: gql.String}},
		}),
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter(RouterParams{
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{Logger: logger}),
		GraphQLHandler: handler.NewGraphQLHandler(handler.GraphQLHandlerParams{Schema: schema, Logger: logger}),
		Config:         &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}},
	})

	e := echo.New()
	r.RegisterRoutes(e)

	registered := map[string]bool{}
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"GET /metrics",
		"GET /api/clothing-styles/",
		"GET /graphql",
		"POST /graphql",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

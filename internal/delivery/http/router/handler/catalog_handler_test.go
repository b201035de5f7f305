package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sews/internal/delivery/http/middleware"
	"sews/internal/domain/entity"
	"sews/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog serves ListClothingStyles only.
type stubCatalog struct {
	usecase.CatalogUsecase

	styles     []*entity.ClothingStyle
	err        error
	activeOnly bool
}

func (s *stubCatalog) ListClothingStyles(_ context.Context, activeOnly bool) ([]*entity.ClothingStyle, error) {
	s.activeOnly = activeOnly

	return s.styles, s.err
}

func newCatalogHandler(catalog usecase.CatalogUsecase) *CatalogHandler {
	return NewCatalogHandler(CatalogHandlerParams{
		CatalogUC: catalog,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestCatalogHandler_ListClothingStyles(t *testing.T) {
	id := uuid.New()
	catalog := &stubCatalog{styles: []*entity.ClothingStyle{
		{ID: id, Name: "Kaftan", Description: "Loose robe", Cost: 30.5, Image: "https://img.example/kaftan.png", IsActive: true},
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/clothing-styles/", nil)
	rec := httptest.NewRecorder()

	err := newCatalogHandler(catalog).ListClothingStyles(e.NewContext(req, rec))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, catalog.activeOnly)

	var body map[string][]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body["clothing_styles"], 1)
	style := body["clothing_styles"][0]
	assert.Equal(t, id.String(), style["id"])
	assert.Equal(t, "Kaftan", style["name"])
	assert.Equal(t, 30.5, style["cost"])
	assert.NotContains(t, style, "isActive")
}

func TestCatalogHandler_EmptyListIsArray(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/clothing-styles/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, newCatalogHandler(&stubCatalog{}).ListClothingStyles(e.NewContext(req, rec)))

	assert.JSONEq(t, `{"clothing_styles": []}`, rec.Body.String())
}

func TestCatalogHandler_StoreFailureIsHidden(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/clothing-styles/", nil)
	rec := httptest.NewRecorder()

	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	c := e.NewContext(req, rec)

	err := newCatalogHandler(&stubCatalog{err: errors.New("pq: connection refused")}).ListClothingStyles(c)
	require.Error(t, err)
	e.HTTPErrorHandler(err, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

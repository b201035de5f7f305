package handler

import (
	"log/slog"
	"net/http"

	"sews/internal/delivery/http/response"
	"sews/internal/domain/entity"
	"sews/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public catalogue over REST.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ClothingStyleResponse is one entry of the public catalogue.
type ClothingStyleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Image       string  `json:"image"`
}

// ClothingStylesResponse wraps the active styles.
type ClothingStylesResponse struct {
	ClothingStyles []ClothingStyleResponse `json:"clothing_styles"`
}

// ListClothingStyles returns the active clothing styles.
func (h *CatalogHandler) ListClothingStyles(c echo.Context) error {
	styles, err := h.catalogUC.ListClothingStyles(c.Request().Context(), true)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, ClothingStylesResponse{ClothingStyles: toClothingStyleResponses(styles)})
}

func toClothingStyleResponses(styles []*entity.ClothingStyle) []ClothingStyleResponse {
	out := make([]ClothingStyleResponse, 0, len(styles))
	for _, style := range styles {
		out = append(out, ClothingStyleResponse{
			ID:          style.ID.String(),
			Name:        style.Name,
			Description: style.Description,
			Cost:        style.Cost,
			Image:       style.Image,
		})
	}

	return out
}

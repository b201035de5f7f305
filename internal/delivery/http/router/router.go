// Package router wires the HTTP routes onto echo.
package router

import (
	"sews/config"
	"sews/internal/delivery/http/router/handler"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	GraphQLHandler *handler.GraphQLHandler
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	graphQLHandler *handler.GraphQLHandler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		graphQLHandler: params.GraphQLHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics == nil || r.config.Metrics.Enabled {
		e.GET(r.metricsPath(), echoprometheus.NewHandler())
	}

	api := e.Group("/api")
	{
		api.GET("/clothing-styles/", r.catalogHandler.ListClothingStyles)
	}

	e.GET("/graphql", r.graphQLHandler.Execute)
	e.POST("/graphql", r.graphQLHandler.Execute)
}

func (r *router) metricsPath() string {
	if r.config.Metrics != nil && r.config.Metrics.Path != "" {
		return r.config.Metrics.Path
	}

	return "/metrics"
}

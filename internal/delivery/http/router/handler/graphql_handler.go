package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	deliverycontext "sews/internal/delivery/context"
	"sews/internal/delivery/http/graphql"
	"sews/internal/delivery/http/response"

	gql "github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/source"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GraphQLHandlerParams holds dependencies for GraphQLHandler, injected by Fx.
type GraphQLHandlerParams struct {
	fx.In

	Schema gql.Schema
	Logger *slog.Logger
}

// GraphQLHandler executes GraphQL requests against the application schema.
type GraphQLHandler struct {
	schema gql.Schema
	logger *slog.Logger
}

// NewGraphQLHandler is the constructor for GraphQLHandler
func NewGraphQLHandler(params GraphQLHandlerParams) *GraphQLHandler {
	return &GraphQLHandler{
		schema: params.Schema,
		logger: params.Logger,
	}
}

// Execute accepts a JSON body on POST and query parameters on GET.
// GET only runs query operations; mutations carry credentials and must be POSTed.
// Resolver failures are reported in the result, so the status is 200 once the request parses.
func (h *GraphQLHandler) Execute(c echo.Context) error {
	var req graphql.Request
	switch c.Request().Method {
	case http.MethodGet:
		req.Query = c.QueryParam("query")
		req.OperationName = c.QueryParam("operationName")
		if raw := c.QueryParam("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return response.BadRequest(c, "INVALID_VARIABLES", "variables must be a JSON object")
			}
		}
	default:
		if err := c.Bind(&req); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid GraphQL request body")
		}
	}

	if req.Query == "" {
		return response.BadRequest(c, "QUERY_REQUIRED", "query is required")
	}

	if c.Request().Method == http.MethodGet {
		if op := selectedOperation(req.Query, req.OperationName); op != "" && op != ast.OperationTypeQuery {
			return response.MethodNotAllowed(c, http.MethodPost, "METHOD_NOT_ALLOWED",
				"Can only perform a "+op+" operation from a POST request")
		}
	}

	ctx := c.Request().Context()
	result := graphql.Execute(ctx, h.schema, req)
	if result.HasErrors() {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("GraphQL request returned errors",
			slog.String("operation", req.OperationName),
			slog.Any("errors", result.Errors),
		)
	}

	return response.JSON(c, http.StatusOK, result)
}

// selectedOperation returns the type of the operation a request would run,
// or "" when the document does not parse or names no runnable operation.
// Execution reports those cases itself.
func selectedOperation(query, operationName string) string {
	doc, err := parser.Parse(parser.ParseParams{
		Source: source.NewSource(&source.Source{Body: []byte(query), Name: "GraphQL request"}),
	})
	if err != nil {
		return ""
	}

	var ops []*ast.OperationDefinition
	for _, def := range doc.Definitions {
		if op, ok := def.(*ast.OperationDefinition); ok {
			ops = append(ops, op)
		}
	}

	for _, op := range ops {
		if operationName == "" && len(ops) == 1 {
			return op.Operation
		}
		if op.Name != nil && op.Name.Value == operationName {
			return op.Operation
		}
	}

	return ""
}

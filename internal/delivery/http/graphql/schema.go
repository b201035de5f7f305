// Package graphql exposes the account and catalogue use cases as a GraphQL schema.
//
// Mutations never fail at the protocol level for expected outcomes: every
// mutation answers with an envelope { <entity>, success, message }.
package graphql

import (
	"context"
	"log/slog"

	deliverycontext "sews/internal/delivery/context"
	"sews/internal/errors"
	"sews/internal/usecase"

	"github.com/graphql-go/graphql"
	"go.uber.org/fx"
)

// SchemaParams holds the use cases the resolvers call, injected by Fx.
type SchemaParams struct {
	fx.In

	Session      usecase.SessionUsecase
	Registration usecase.RegistrationUsecase
	Directory    usecase.DirectoryUsecase
	Catalog      usecase.CatalogUsecase
	Logger       *slog.Logger
}

type resolver struct {
	session      usecase.SessionUsecase
	registration usecase.RegistrationUsecase
	directory    usecase.DirectoryUsecase
	catalog      usecase.CatalogUsecase
	logger       *slog.Logger
}

func (r *resolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// NewSchema builds the executable schema.
func NewSchema(params SchemaParams) (graphql.Schema, error) {
	r := &resolver{
		session:      params.Session,
		registration: params.Registration,
		directory:    params.Directory,
		catalog:      params.Catalog,
		logger:       params.Logger,
	}
	types := newObjectTypes(r)

	query := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: r.queryFields(types),
	})

	mutationFields := r.accountMutations(types)
	for name, field := range r.catalogMutations(types) {
		mutationFields[name] = field
	}
	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: mutationFields,
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
	if err != nil {
		return graphql.Schema{}, errors.Wrap(err, "failed to build graphql schema")
	}

	return schema, nil
}

// Request is a GraphQL request as sent over HTTP.
type Request struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}

// Execute runs req against schema. The identity attached to ctx is visible to the resolvers.
func Execute(ctx context.Context, schema graphql.Schema, req Request) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
}

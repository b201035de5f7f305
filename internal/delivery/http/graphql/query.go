package graphql

import (
	"context"

	deliverycontext "sews/internal/delivery/context"
	domainerrors "sews/internal/domain/errors"
	"sews/internal/errors"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

func (r *resolver) queryFields(types *objectTypes) graphql.Fields {
	idArgs := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	return graphql.Fields{
		"allCustomUsers": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(types.customUser)),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				customers, err := r.directory.ListCustomers(p.Context)
				if err != nil {
					return nil, r.queryError(p.Context, "allCustomUsers", err)
				}

				return viewList(customers, customerView), nil
			},
		},
		"allTailors": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(types.tailor)),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				tailors, err := r.directory.ListTailors(p.Context)
				if err != nil {
					return nil, r.queryError(p.Context, "allTailors", err)
				}

				return viewList(tailors, tailorView), nil
			},
		},
		"customUser": &graphql.Field{
			Type: types.customUser,
			Args: idArgs,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id := parseID(p.Args["id"])
				if id == uuid.Nil {
					return nil, nil
				}

				customer, err := r.directory.GetCustomer(p.Context, id)
				if err != nil {
					return nil, r.lookupError(p.Context, "customUser", err)
				}

				return customerView(customer), nil
			},
		},
		"tailor": &graphql.Field{
			Type: types.tailor,
			Args: idArgs,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id := parseID(p.Args["id"])
				if id == uuid.Nil {
					return nil, nil
				}

				tailor, err := r.directory.GetTailor(p.Context, id)
				if err != nil {
					return nil, r.lookupError(p.Context, "tailor", err)
				}

				return tailorView(tailor), nil
			},
		},
		"me": &graphql.Field{
			Type:    types.me,
			Resolve: r.resolveMe,
		},
		"allClothingStyles": &graphql.Field{
			Type:    graphql.NewList(graphql.NewNonNull(types.clothingStyle)),
			Resolve: r.listClothingStyles(false),
		},
		"activeClothingStyles": &graphql.Field{
			Type:    graphql.NewList(graphql.NewNonNull(types.clothingStyle)),
			Resolve: r.listClothingStyles(true),
		},
		"clothingStyle": &graphql.Field{
			Type: types.clothingStyle,
			Args: idArgs,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				id := parseID(p.Args["id"])
				if id == uuid.Nil {
					return nil, nil
				}

				style, err := r.catalog.GetClothingStyle(p.Context, id)
				if err != nil {
					return nil, r.lookupError(p.Context, "clothingStyle", err)
				}

				return clothingStyleView(style), nil
			},
		},
		"tailorProducts": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(types.tailorProduct)),
			Args: graphql.FieldConfigArgument{
				"tailorId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return r.tailorProducts(p.Context, parseID(p.Args["tailorId"]))
			},
		},
	}
}

func (r *resolver) listClothingStyles(activeOnly bool) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		styles, err := r.catalog.ListClothingStyles(p.Context, activeOnly)
		if err != nil {
			return nil, r.queryError(p.Context, "clothingStyles", err)
		}

		return viewList(styles, clothingStyleView), nil
	}
}

func (r *resolver) tailorProducts(ctx context.Context, tailorID uuid.UUID) (any, error) {
	if tailorID == uuid.Nil {
		return []map[string]any{}, nil
	}

	products, err := r.catalog.ListTailorProducts(ctx, tailorID)
	if err != nil {
		return nil, r.queryError(ctx, "tailorProducts", err)
	}

	return viewList(products, tailorProductView), nil
}

// resolveTailorProductsOfSource backs TailorType.products.
func (r *resolver) resolveTailorProductsOfSource(p graphql.ResolveParams) (any, error) {
	source, _ := p.Source.(map[string]any)

	return r.tailorProducts(p.Context, parseID(source["id"]))
}

// resolveMe loads the account behind the bearer token, or null for anonymous callers.
func (r *resolver) resolveMe(p graphql.ResolveParams) (any, error) {
	identity := deliverycontext.GetIdentity(p.Context)
	if identity == nil {
		return nil, nil
	}

	principal, err := r.session.Resolve(p.Context, identity)
	if err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindInternal {
			return nil, r.queryError(p.Context, "me", err)
		}
		r.log(p.Context).Debug("Token subject no longer resolves", "principal_id", identity.PrincipalID, "error", err)

		return nil, nil
	}

	return principalView(principal), nil
}

// lookupError turns a missing record into a null field.
func (r *resolver) lookupError(ctx context.Context, field string, err error) error {
	if domainerrors.KindOf(err) == domainerrors.KindNotFound {
		return nil
	}

	return r.queryError(ctx, field, err)
}

// queryError logs err and hands graphql a message that carries no store detail.
func (r *resolver) queryError(ctx context.Context, field string, err error) error {
	r.log(ctx).Error("Query failed", "field", field, "error", err)

	return errors.New(domainerrors.ErrInternalError.Message())
}

package graphql

import (
	deliverycontext "sews/internal/delivery/context"
	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
	"sews/internal/usecase"

	"github.com/graphql-go/graphql"
)

var (
	clothingStyleFailures = failureMessages{fallback: "Error saving clothing style"}
	tailorProductFailures = failureMessages{fallback: "Error saving product"}
)

func (r *resolver) catalogMutations(types *objectTypes) graphql.Fields {
	stylePayload := envelopeType("ClothingStylePayload", "clothingStyle", types.clothingStyle, nil)

	return graphql.Fields{
		"createClothingStyle": &graphql.Field{
			Type: stylePayload,
			Args: graphql.FieldConfigArgument{
				"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"description": &graphql.ArgumentConfig{Type: graphql.String},
				"cost":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				"image":       &graphql.ArgumentConfig{Type: graphql.String},
				"isActive":    &graphql.ArgumentConfig{Type: graphql.Boolean},
			},
			Resolve: r.createClothingStyle,
		},
		"updateClothingStyle": &graphql.Field{
			Type: stylePayload,
			Args: graphql.FieldConfigArgument{
				"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"name":        &graphql.ArgumentConfig{Type: graphql.String},
				"description": &graphql.ArgumentConfig{Type: graphql.String},
				"cost":        &graphql.ArgumentConfig{Type: graphql.Float},
				"image":       &graphql.ArgumentConfig{Type: graphql.String},
				"isActive":    &graphql.ArgumentConfig{Type: graphql.Boolean},
			},
			Resolve: r.updateClothingStyle,
		},
		"deleteClothingStyle": &graphql.Field{
			Type: graphql.NewObject(graphql.ObjectConfig{
				Name: "DeleteClothingStylePayload",
				Fields: graphql.Fields{
					"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
					"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
				},
			}),
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: r.deleteClothingStyle,
		},
		"createTailorProduct": &graphql.Field{
			Type: envelopeType("TailorProductPayload", "tailorProduct", types.tailorProduct, nil),
			Args: graphql.FieldConfigArgument{
				"category":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"productName":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"productImage":      &graphql.ArgumentConfig{Type: graphql.String},
				"cost":              &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				"description":       &graphql.ArgumentConfig{Type: graphql.String},
				"measurementGuides": &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: r.createTailorProduct,
		},
	}
}

func (r *resolver) createClothingStyle(p graphql.ResolveParams) (any, error) {
	if deliverycontext.GetIdentity(p.Context) == nil {
		return failed("clothingStyle", domainerrors.ErrUnauthenticated.Message()), nil
	}

	input := &usecase.ClothingStyleInput{
		Name:        stringArg(p, "name"),
		Description: stringArg(p, "description"),
		Image:       stringArg(p, "image"),
	}
	input.Cost, _ = p.Args["cost"].(float64)
	if active, ok := p.Args["isActive"].(bool); ok {
		input.IsActive = &active
	}

	style, err := r.catalog.CreateClothingStyle(p.Context, input)
	if err != nil {
		return failed("clothingStyle", clothingStyleFailures.message(err)), nil
	}

	return succeeded("clothingStyle", clothingStyleView(style), "Clothing style created successfully"), nil
}

func (r *resolver) updateClothingStyle(p graphql.ResolveParams) (any, error) {
	if deliverycontext.GetIdentity(p.Context) == nil {
		return failed("clothingStyle", domainerrors.ErrUnauthenticated.Message()), nil
	}

	input := &usecase.ClothingStyleUpdateInput{}
	if v, ok := p.Args["name"].(string); ok {
		input.Name = &v
	}
	if v, ok := p.Args["description"].(string); ok {
		input.Description = &v
	}
	if v, ok := p.Args["cost"].(float64); ok {
		input.Cost = &v
	}
	if v, ok := p.Args["image"].(string); ok {
		input.Image = &v
	}
	if v, ok := p.Args["isActive"].(bool); ok {
		input.IsActive = &v
	}

	style, err := r.catalog.UpdateClothingStyle(p.Context, parseID(p.Args["id"]), input)
	if err != nil {
		return failed("clothingStyle", clothingStyleFailures.message(err)), nil
	}

	return succeeded("clothingStyle", clothingStyleView(style), "Clothing style updated successfully"), nil
}

func (r *resolver) deleteClothingStyle(p graphql.ResolveParams) (any, error) {
	result := map[string]any{"success": false}
	if deliverycontext.GetIdentity(p.Context) == nil {
		result["message"] = domainerrors.ErrUnauthenticated.Message()

		return result, nil
	}

	if err := r.catalog.DeleteClothingStyle(p.Context, parseID(p.Args["id"])); err != nil {
		result["message"] = clothingStyleFailures.message(err)

		return result, nil
	}

	result["success"] = true
	result["message"] = "Clothing style deleted successfully"

	return result, nil
}

// createTailorProduct always files the product under the calling tailor.
func (r *resolver) createTailorProduct(p graphql.ResolveParams) (any, error) {
	identity := deliverycontext.GetIdentity(p.Context)
	if identity == nil {
		return failed("tailorProduct", domainerrors.ErrUnauthenticated.Message()), nil
	}
	if identity.Kind != entity.PrincipalTailor {
		return failed("tailorProduct", "Only tailors can add products"), nil
	}

	input := &usecase.TailorProductInput{
		Category:          stringArg(p, "category"),
		ProductName:       stringArg(p, "productName"),
		ProductImage:      stringArg(p, "productImage"),
		Description:       stringArg(p, "description"),
		MeasurementGuides: stringArg(p, "measurementGuides"),
	}
	input.Cost, _ = p.Args["cost"].(float64)

	product, err := r.catalog.CreateTailorProduct(p.Context, identity.PrincipalID, input)
	if err != nil {
		return failed("tailorProduct", tailorProductFailures.message(err)), nil
	}

	return succeeded("tailorProduct", tailorProductView(product), "Product created successfully"), nil
}

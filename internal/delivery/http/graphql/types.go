package graphql

import (
	"sews/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

// objectTypes groups the output types shared by queries and mutations.
type objectTypes struct {
	customUser    *graphql.Object
	tailor        *graphql.Object
	clothingStyle *graphql.Object
	tailorProduct *graphql.Object
	me            *graphql.Object
}

func newObjectTypes(r *resolver) *objectTypes {
	t := &objectTypes{}

	// Password hashes are never part of any type.
	t.customUser = graphql.NewObject(graphql.ObjectConfig{
		Name: "CustomUserType",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"firstName":   &graphql.Field{Type: graphql.String},
			"lastName":    &graphql.Field{Type: graphql.String},
			"email":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"isActive":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"isStaff":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"isSuperuser": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"dateJoined":  &graphql.Field{Type: graphql.DateTime},
		},
	})

	t.tailorProduct = graphql.NewObject(graphql.ObjectConfig{
		Name: "TailorProductType",
		Fields: graphql.Fields{
			"id":                &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"tailorId":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"category":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"productName":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"productImage":      &graphql.Field{Type: graphql.String},
			"cost":              &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"description":       &graphql.Field{Type: graphql.String},
			"measurementGuides": &graphql.Field{Type: graphql.String},
			"createdAt":         &graphql.Field{Type: graphql.DateTime},
			"updatedAt":         &graphql.Field{Type: graphql.DateTime},
		},
	})

	t.tailor = graphql.NewObject(graphql.ObjectConfig{
		Name: "TailorType",
		Fields: graphql.Fields{
			"id":                 &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"fullName":           &graphql.Field{Type: graphql.String},
			"username":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":              &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"nationalIdNumber":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"phoneNumber":        &graphql.Field{Type: graphql.String},
			"sex":                &graphql.Field{Type: graphql.String},
			"areaOfResidence":    &graphql.Field{Type: graphql.String},
			"areaOfWork":         &graphql.Field{Type: graphql.String},
			"dateOfRegistration": &graphql.Field{Type: graphql.DateTime},
			"isActive":           &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"isStaff":            &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"products": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(t.tailorProduct)),
				Resolve: r.resolveTailorProductsOfSource,
			},
		},
	})

	t.clothingStyle = graphql.NewObject(graphql.ObjectConfig{
		Name: "ClothingStyleType",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"cost":        &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"image":       &graphql.Field{Type: graphql.String},
			"isActive":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"createdAt":   &graphql.Field{Type: graphql.DateTime},
			"updatedAt":   &graphql.Field{Type: graphql.DateTime},
		},
	})

	t.me = graphql.NewObject(graphql.ObjectConfig{
		Name: "MeType",
		Fields: graphql.Fields{
			"kind":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"customUser": &graphql.Field{Type: t.customUser},
			"tailor":     &graphql.Field{Type: t.tailor},
		},
	})

	return t
}

func customerView(c *entity.Customer) map[string]any {
	if c == nil {
		return nil
	}

	return map[string]any{
		"id":          c.ID.String(),
		"firstName":   c.FirstName,
		"lastName":    c.LastName,
		"email":       c.Email,
		"isActive":    c.IsActive,
		"isStaff":     c.IsStaff,
		"isSuperuser": c.IsSuperuser,
		"dateJoined":  c.DateJoined,
	}
}

func tailorView(t *entity.Tailor) map[string]any {
	if t == nil {
		return nil
	}

	return map[string]any{
		"id":                 t.ID.String(),
		"fullName":           t.FullName,
		"username":           t.Username,
		"email":              t.Email,
		"nationalIdNumber":   t.NationalIDNumber,
		"phoneNumber":        t.PhoneNumber,
		"sex":                string(t.Sex),
		"areaOfResidence":    t.AreaOfResidence,
		"areaOfWork":         t.AreaOfWork,
		"dateOfRegistration": t.DateOfRegistration,
		"isActive":           t.IsActive,
		"isStaff":            t.IsStaff,
	}
}

func clothingStyleView(s *entity.ClothingStyle) map[string]any {
	if s == nil {
		return nil
	}

	return map[string]any{
		"id":          s.ID.String(),
		"name":        s.Name,
		"description": s.Description,
		"cost":        s.Cost,
		"image":       s.Image,
		"isActive":    s.IsActive,
		"createdAt":   s.CreatedAt,
		"updatedAt":   s.UpdatedAt,
	}
}

func tailorProductView(p *entity.TailorProduct) map[string]any {
	if p == nil {
		return nil
	}

	return map[string]any{
		"id":                p.ID.String(),
		"tailorId":          p.TailorID.String(),
		"category":          string(p.Category),
		"productName":       p.ProductName,
		"productImage":      p.ProductImage,
		"cost":              p.Cost,
		"description":       p.Description,
		"measurementGuides": p.MeasurementGuides,
		"createdAt":         p.CreatedAt,
		"updatedAt":         p.UpdatedAt,
	}
}

func principalView(p entity.Principal) map[string]any {
	view := map[string]any{"kind": p.Kind.String()}
	switch p.Kind {
	case entity.PrincipalCustomer:
		if p.Customer != nil {
			view["customUser"] = customerView(p.Customer)
		}
	case entity.PrincipalTailor:
		if p.Tailor != nil {
			view["tailor"] = tailorView(p.Tailor)
		}
	}

	return view
}

func viewList[T any](items []T, view func(T) map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, view(item))
	}

	return out
}

// parseID returns uuid.Nil for anything that is not a UUID.
func parseID(raw any) uuid.UUID {
	s, _ := raw.(string)
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}

	return id
}

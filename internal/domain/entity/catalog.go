package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ClothingStyle is a catalogue entry shown to customers.
type ClothingStyle struct {
	ID          uuid.UUID
	Name        string
	Description string
	Cost        float64
	Image       string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ClothingStylePatch carries the fields of a partial update. Nil fields are left untouched.
type ClothingStylePatch struct {
	Name        *string
	Description *string
	Cost        *float64
	Image       *string
	IsActive    *bool
}

// Apply copies the set fields of the patch onto style.
func (p ClothingStylePatch) Apply(style *ClothingStyle) {
	if p.Name != nil {
		style.Name = *p.Name
	}
	if p.Description != nil {
		style.Description = *p.Description
	}
	if p.Cost != nil {
		style.Cost = *p.Cost
	}
	if p.Image != nil {
		style.Image = *p.Image
	}
	if p.IsActive != nil {
		style.IsActive = *p.IsActive
	}
}

// ProductCategory classifies a tailor's product.
type ProductCategory string

const (
	CategorySuit    ProductCategory = "SUIT"
	CategoryTShirt  ProductCategory = "TSHIRT"
	CategoryTrouser ProductCategory = "TROUSER"
	CategoryGauni   ProductCategory = "GAUNI"
)

// ProductCategories lists every known category in display order.
var ProductCategories = []ProductCategory{CategorySuit, CategoryTShirt, CategoryTrouser, CategoryGauni}

// ParseProductCategory matches raw against the known categories, ignoring case.
func ParseProductCategory(raw string) (ProductCategory, bool) {
	candidate := ProductCategory(strings.ToUpper(strings.TrimSpace(raw)))
	for _, c := range ProductCategories {
		if c == candidate {
			return c, true
		}
	}

	return "", false
}

// TailorProduct is an item a tailor offers.
type TailorProduct struct {
	ID                uuid.UUID
	TailorID          uuid.UUID
	Category          ProductCategory
	ProductName       string
	ProductImage      string
	Cost              float64
	Description       string
	MeasurementGuides string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

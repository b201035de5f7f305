package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClothingStyleModel mirrors the 'clothing_styles' table.
type ClothingStyleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	Cost        float64   `gorm:"type:numeric(10,2);not null;check:chk_clothing_styles_cost,cost >= 0"`
	Image       string    `gorm:"type:varchar(500)"`
	IsActive    bool      `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClothingStyleModel) TableName() string {
	return "clothing_styles"
}

func (m *ClothingStyleModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// TailorProductModel mirrors the 'tailor_products' table.
type TailorProductModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TailorID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Category          string    `gorm:"type:varchar(20);not null"`
	ProductName       string    `gorm:"type:varchar(255);not null"`
	ProductImage      string    `gorm:"type:varchar(500)"`
	Cost              float64   `gorm:"type:numeric(10,2);not null;check:chk_tailor_products_cost,cost >= 0"`
	Description       string    `gorm:"type:text"`
	MeasurementGuides string    `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (TailorProductModel) TableName() string {
	return "tailor_products"
}

func (m *TailorProductModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// All lists every model handled by AutoMigrate, parents first.
func All() []any {
	return []any{
		&CustomerModel{},
		&TailorModel{},
		&TailorProductModel{},
		&ClothingStyleModel{},
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TailorModel mirrors the 'tailors' table. Username and email are stored lowercased.
type TailorModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName           string    `gorm:"type:varchar(255);not null"`
	Username           string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_tailors_username"`
	Email              string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_tailors_email"`
	NationalIDNumber   string    `gorm:"column:national_id_number;type:varchar(100);not null;uniqueIndex:idx_tailors_national_id"`
	PhoneNumber        string    `gorm:"type:varchar(20);not null"`
	Sex                string    `gorm:"type:varchar(10);not null"`
	AreaOfResidence    string    `gorm:"type:varchar(255);not null"`
	AreaOfWork         string    `gorm:"type:varchar(255);not null"`
	DateOfRegistration time.Time `gorm:"not null;<-:create"`
	PasswordHash       string    `gorm:"type:varchar(128);not null"`
	IsActive           bool      `gorm:"not null"`
	IsStaff            bool      `gorm:"not null"`
	UpdatedAt          time.Time

	Products []TailorProductModel `gorm:"foreignKey:TailorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TailorModel) TableName() string {
	return "tailors"
}

// BeforeCreate assigns the id client-side so it is known before the insert returns.
func (m *TailorModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Salon is the tenant boundary. Every business record carries a SalonID and
// every tenant-scoped query must filter on it.
type Salon struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Slug      string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug" validate:"required,min=2,max=100"`
	Phone     string         `gorm:"type:varchar(30)" json:"phone" validate:"max=30"`
	Email     string         `gorm:"type:varchar(200)" json:"email" validate:"omitempty,email,max=200"`
	Address   string         `gorm:"type:varchar(255)" json:"address" validate:"max=255"`
	OpensAt   string         `gorm:"type:varchar(5);default:'09:00'" json:"opens_at"`
	ClosesAt  string         `gorm:"type:varchar(5);default:'19:00'" json:"closes_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Salon) Validate() error {
	v := validator.New()

	return v.Struct(s)
}

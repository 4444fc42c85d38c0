package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultServiceDuration is used when a booking references a service that
// does not exist. The public booking flow deliberately does not fail in that
// case; it books a 60 minute slot at price zero.
const DefaultServiceDuration = 60

// Service is a bookable salon offering (cut, color, manicure, ...).
type Service struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	SalonID         uint           `gorm:"not null;index" json:"salon_id"`
	Name            string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	DurationMinutes int            `gorm:"not null;default:60" json:"duration_minutes" validate:"gt=0"`
	Price           float64        `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Active          bool           `gorm:"default:true" json:"active"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

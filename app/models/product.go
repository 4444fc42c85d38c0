package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a retail inventory item sold at checkout.
type Product struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SalonID   uint           `gorm:"not null;index" json:"salon_id"`
	Name      string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Stock     int            `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
	Price     float64        `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

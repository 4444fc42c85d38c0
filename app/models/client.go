package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is a salon customer. LoyaltyID is unique across the whole system,
// not just within the salon, so a client can be re-identified anywhere.
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SalonID   uint           `gorm:"not null;index" json:"salon_id"`
	Name      string         `gorm:"type:varchar(150);not null" json:"name"`
	Phone     string         `gorm:"type:varchar(30);index" json:"phone"`
	Email     string         `gorm:"type:varchar(200)" json:"email"`
	LoyaltyID string         `gorm:"type:varchar(36);uniqueIndex;not null" json:"loyalty_id"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns a loyalty identifier when none was supplied.
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.LoyaltyID == "" {
		c.LoyaltyID = uuid.NewString()
	}
	return nil
}

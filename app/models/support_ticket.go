package models

import "time"

const (
	TicketStatusOpen     = "open"
	TicketStatusAnswered = "answered"
	TicketStatusClosed   = "closed"
)

// SupportTicket is the support channel between a salon and the platform.
type SupportTicket struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SalonID   uint      `gorm:"not null;index" json:"salon_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Subject   string    `gorm:"type:varchar(200);not null" json:"subject" validate:"required,min=3,max=200"`
	Body      string    `gorm:"type:text;not null" json:"body" validate:"required"`
	Status    string    `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Replies []TicketReply `gorm:"foreignKey:TicketID" json:"replies,omitempty"`
}

// TicketReply is a single message appended to a ticket thread.
type TicketReply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TicketID  uint      `gorm:"not null;index" json:"ticket_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Body      string    `gorm:"type:text;not null" json:"body" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment is a booked slot. Date is a calendar day ("2006-01-02") and
// the times are zero-padded "HH:mm" strings; the fixed width keeps string
// comparison equivalent to minute-of-day comparison.
type Appointment struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	SalonID        uint           `gorm:"not null;index:idx_appointments_salon_date,priority:1" json:"salon_id"`
	ClientID       uint           `gorm:"not null;index" json:"client_id"`
	ServiceID      uint           `gorm:"index" json:"service_id"`
	ProfessionalID uint           `gorm:"index" json:"professional_id"` // 0 = not yet assigned
	Date           string         `gorm:"type:varchar(10);not null;index:idx_appointments_salon_date,priority:2" json:"date"`
	StartTime      string         `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime        string         `gorm:"type:varchar(5);not null" json:"end_time"`
	Status         string         `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Price          float64        `gorm:"not null;default:0" json:"price"` // service price snapshot at booking time
	Notes          string         `gorm:"type:varchar(255)" json:"notes"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsCancelled reports whether the appointment no longer occupies its slot.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

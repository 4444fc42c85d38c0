package models

import "time"

const (
	TransactionIncome         = "income"
	TransactionExpense        = "expense"
	TransactionLicensePayment = "license_payment"
)

// Transaction is an append-only ledger entry used for reporting. Records are
// never updated after creation.
type Transaction struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SalonID       uint      `gorm:"not null;index:idx_transactions_salon_kind,priority:1" json:"salon_id"`
	Kind          string    `gorm:"type:varchar(20);not null;index:idx_transactions_salon_kind,priority:2" json:"kind"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Description   string    `gorm:"type:varchar(255)" json:"description"`
	AppointmentID uint      `gorm:"index" json:"appointment_id"` // 0 when not tied to a checkout
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

package models

import "time"

const (
	PlanTrial    = "trial"
	PlanStandard = "standard"
	PlanGold     = "gold"
	PlanPremium  = "premium"
)

const (
	PlanIntervalMonth = "month"
	PlanIntervalYear  = "year"
)

const (
	LicenseStatusActive    = "active"
	LicenseStatusExpired   = "expired"
	LicenseStatusSuspended = "suspended"
)

// TrialDuration is how long a freshly registered salon may operate before
// activating a paid plan.
const TrialDuration = 14 * 24 * time.Hour

// License gates a salon's access and feature set. One record per salon.
// Expiry is detected lazily on authenticated access, there is no sweep.
type License struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	SalonID            uint      `gorm:"not null;uniqueIndex" json:"salon_id"`
	Plan               string    `gorm:"type:varchar(20);not null;default:'trial'" json:"plan"`
	Interval           string    `gorm:"type:varchar(10);not null;default:'month'" json:"interval"`
	Status             string    `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	ExpiresAt          time.Time `gorm:"not null" json:"expires_at"`
	BookingLimit       int       `gorm:"not null;default:0" json:"booking_limit"` // 0 = unlimited; stored but not enforced
	WaitingListEnabled bool      `gorm:"default:false" json:"waiting_list_enabled"`
	ReportDepth        int       `gorm:"not null;default:1" json:"report_depth"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsActive reports whether the license status is active. It does not look at
// the expiry timestamp; the gate handles lazy expiry.
func (l *License) IsActive() bool {
	return l.Status == LicenseStatusActive
}

// IsPastExpiry reports whether the license expiry lies before the given time.
func (l *License) IsPastExpiry(now time.Time) bool {
	return now.After(l.ExpiresAt)
}

// NewTrialLicense builds the trial license created during salon registration:
// active for 14 days with every feature flag enabled and no booking cap.
func NewTrialLicense(salonID uint, now time.Time) *License {
	return &License{
		SalonID:            salonID,
		Plan:               PlanTrial,
		Interval:           PlanIntervalMonth,
		Status:             LicenseStatusActive,
		ExpiresAt:          now.Add(TrialDuration),
		BookingLimit:       0,
		WaitingListEnabled: true,
		ReportDepth:        3,
	}
}

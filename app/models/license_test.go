package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTrialLicense(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l := NewTrialLicense(7, now)

	assert.Equal(t, uint(7), l.SalonID)
	assert.Equal(t, PlanTrial, l.Plan)
	assert.Equal(t, LicenseStatusActive, l.Status)
	assert.Equal(t, now.Add(14*24*time.Hour), l.ExpiresAt)
	assert.Equal(t, 0, l.BookingLimit)
	assert.True(t, l.WaitingListEnabled)
	assert.Equal(t, 3, l.ReportDepth)
}

func TestLicenseIsPastExpiry(t *testing.T) {
	expiry := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := &License{ExpiresAt: expiry}

	assert.False(t, l.IsPastExpiry(expiry.Add(-time.Second)))
	assert.False(t, l.IsPastExpiry(expiry))
	assert.True(t, l.IsPastExpiry(expiry.Add(time.Second)))
}

func TestLicenseIsActiveIgnoresExpiry(t *testing.T) {
	l := &License{Status: LicenseStatusActive, ExpiresAt: time.Now().Add(-time.Hour)}
	assert.True(t, l.IsActive())

	l.Status = LicenseStatusExpired
	assert.False(t, l.IsActive())
}

package license

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
)

// Gate decides whether an authenticated account may reach tenant-scoped
// business logic, based on the salon's license state. Dependencies are
// injected at construction; there is no ambient database handle.
type Gate struct {
	licenses repository.LicenseRepository
	now      func() time.Time
}

// NewGate creates a gate over the given license repository.
func NewGate(licenses repository.LicenseRepository) *Gate {
	return &Gate{licenses: licenses, now: time.Now}
}

// NewGateWithClock creates a gate with an injected clock, for tests.
func NewGateWithClock(licenses repository.LicenseRepository, now func() time.Time) *Gate {
	return &Gate{licenses: licenses, now: now}
}

// Check enforces the license invariant for a resolved account. Platform
// roles pass unconditionally. For tenant roles the salon license must exist
// and be active; an active license past its expiry is flipped to expired
// here and the request rejected. This lazy write is the gate's only side
// effect and is idempotent.
func (g *Gate) Check(account *models.User) error {
	if account == nil {
		return ErrUnauthenticated
	}
	if account.IsPlatformRole() {
		return nil
	}

	lic, err := g.licenses.GetBySalonID(account.SalonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoLicense
		}
		return err
	}

	switch lic.Status {
	case models.LicenseStatusSuspended:
		return ErrSuspended
	case models.LicenseStatusExpired:
		return ErrExpired
	}

	if lic.IsPastExpiry(g.now()) {
		if err := g.licenses.MarkExpired(lic.ID); err != nil {
			// The reject still stands; the next request retries the write.
			log.Printf("license gate: failed to mark license %d expired: %v", lic.ID, err)
		}
		return ErrExpired
	}

	return nil
}

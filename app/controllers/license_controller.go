package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/license"
	"github.com/salonhub/salonhub/internal/pkg/requestctx"
)

// LicenseController handles tenant license reads and platform-side license
// administration.
type LicenseController struct {
	licenses     repository.LicenseRepository
	salons       repository.SalonRepository
	transactions repository.TransactionRepository
}

// NewLicenseController creates a license controller.
func NewLicenseController(licenses repository.LicenseRepository, salons repository.SalonRepository, transactions repository.TransactionRepository) *LicenseController {
	return &LicenseController{licenses: licenses, salons: salons, transactions: transactions}
}

// HandleGetLicense returns the caller's license. Reachable with an inactive
// license: the billing read must stay open so the tenant can see why they
// are locked out and renew.
func (lc *LicenseController) HandleGetLicense(c *fiber.Ctx) error {
	account := requestctx.Account(c)
	if account.IsPlatformRole() {
		return jsonError(c, fiber.StatusBadRequest, "validation_failed", "Platform accounts have no license")
	}
	lic, err := lc.licenses.GetBySalonID(account.SalonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusForbidden, string(license.KindNoLicense), "No license found for this salon")
		}
		return internalError(c, "Failed to load license")
	}
	return c.JSON(lic)
}

type licenseUpdateRequest struct {
	Plan      string  `json:"plan"`
	Interval  string  `json:"interval"`
	Status    string  `json:"status"`
	ExpiresAt string  `json:"expires_at"` // RFC3339
	Amount    float64 `json:"amount"`     // payment recorded on activation
}

// HandleAdminUpdateLicense updates a salon's license (platform roles only).
// Activating a plan rewrites quota and feature flags from the plan catalog
// and records a license payment in the salon's ledger.
func (lc *LicenseController) HandleAdminUpdateLicense(c *fiber.Ctx) error {
	salonID, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid salon id")
	}
	if _, err := lc.salons.GetByID(salonID); err != nil {
		return notFound(c, "Salon not found")
	}

	var req licenseUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}

	lic, err := lc.licenses.GetBySalonID(salonID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return internalError(c, "Failed to load license")
		}
		lic = models.NewTrialLicense(salonID, time.Now())
		if err := lc.licenses.Create(lic); err != nil {
			return internalError(c, "Failed to create license")
		}
	}

	activated := false
	if req.Plan != "" {
		lic.Plan = req.Plan
		lic.Interval = req.Interval
		license.ApplyPlanDefaults(lic)
		activated = true
	}
	if req.Status != "" {
		switch req.Status {
		case models.LicenseStatusActive, models.LicenseStatusExpired, models.LicenseStatusSuspended:
			lic.Status = req.Status
		default:
			return validationFailed(c, "Invalid license status")
		}
	}
	if req.ExpiresAt != "" {
		expires, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			return validationFailed(c, "Invalid expires_at, want RFC3339")
		}
		lic.ExpiresAt = expires
	} else if activated {
		// Plan activation without explicit expiry extends by one interval.
		if lic.Interval == models.PlanIntervalYear {
			lic.ExpiresAt = time.Now().AddDate(1, 0, 0)
		} else {
			lic.ExpiresAt = time.Now().AddDate(0, 1, 0)
		}
		lic.Status = models.LicenseStatusActive
	}

	if err := lc.licenses.Update(lic); err != nil {
		return internalError(c, "Failed to update license")
	}

	if activated && req.Amount > 0 {
		txn := &models.Transaction{
			SalonID:     salonID,
			Kind:        models.TransactionLicensePayment,
			Amount:      req.Amount,
			Description: "License activation: " + lic.Plan + "/" + lic.Interval,
		}
		if err := lc.transactions.Create(txn); err != nil {
			return internalError(c, "License updated but payment record failed")
		}
	}

	return c.JSON(lic)
}

// HandleAdminListSalons lists all salons (platform roles only).
func (lc *LicenseController) HandleAdminListSalons(c *fiber.Ctx) error {
	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 50)
	salons, err := lc.salons.List(offset, limit)
	if err != nil {
		return internalError(c, "Failed to list salons")
	}
	total, err := lc.salons.Count()
	if err != nil {
		return internalError(c, "Failed to count salons")
	}
	return c.JSON(fiber.Map{"salons": salons, "total": total})
}

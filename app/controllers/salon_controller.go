package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/mail"
	"github.com/salonhub/salonhub/internal/pkg/requestctx"
)

// SalonController handles tenant self-registration and settings.
type SalonController struct {
	salons repository.SalonRepository
	mailer mail.Mailer
}

// NewSalonController creates a salon controller.
func NewSalonController(salons repository.SalonRepository, mailer mail.Mailer) *SalonController {
	return &SalonController{salons: salons, mailer: mailer}
}

type registerRequest struct {
	SalonName  string `json:"salon_name"`
	Slug       string `json:"slug"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	AdminName  string `json:"admin_name"`
	AdminEmail string `json:"admin_email"`
	Password   string `json:"password"`
}

// HandleRegister creates a salon, its 14-day trial license and the first
// admin account in one transaction, then sends a welcome mail.
func (sc *SalonController) HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}

	salon := &models.Salon{
		Name:    req.SalonName,
		Slug:    req.Slug,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := salon.Validate(); err != nil {
		return validationFailed(c, err.Error())
	}

	exists, err := sc.salons.SlugExists(req.Slug)
	if err != nil {
		return internalError(c, "Registration failed")
	}
	if exists {
		return jsonError(c, fiber.StatusConflict, "conflict", "Salon slug already taken")
	}

	admin, err := models.CreateUser(0, req.AdminName, req.AdminEmail, req.Password, models.RoleAdmin)
	if err != nil {
		return validationFailed(c, err.Error())
	}

	license := models.NewTrialLicense(0, time.Now())
	if err := sc.salons.RegisterWithTrial(salon, license, admin); err != nil {
		// The admin email carries a unique index; a second registration with
		// the same address fails inside the transaction.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return jsonError(c, fiber.StatusConflict, "conflict", "Email already registered")
		}
		return internalError(c, "Registration failed")
	}

	// Fire-and-forget welcome mail.
	go func() {
		body := fmt.Sprintf("<p>Welcome to SalonHub, %s!</p><p>Your 14 day trial is active.</p>", salon.Name)
		if err := sc.mailer.Send(admin.Email, "Welcome to SalonHub", body); err != nil {
			log.Printf("welcome mail to %s failed: %v", admin.Email, err)
		}
	}()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"salon": salon,
		"license": fiber.Map{
			"plan":                 license.Plan,
			"status":               license.Status,
			"expires_at":           license.ExpiresAt.UTC().Format(time.RFC3339),
			"booking_limit":        license.BookingLimit,
			"waiting_list_enabled": license.WaitingListEnabled,
			"report_depth":         license.ReportDepth,
		},
		"admin": fiber.Map{
			"id":    admin.ID,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}

// HandleGetSalon returns the caller's salon settings. Reachable with an
// inactive license: settings reads stay available so a locked-out tenant can
// still see their own data.
func (sc *SalonController) HandleGetSalon(c *fiber.Ctx) error {
	salon, err := sc.salons.GetByID(requestctx.SalonID(c))
	if err != nil {
		return notFound(c, "Salon not found")
	}
	return c.JSON(salon)
}

type salonUpdateRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	OpensAt  string `json:"opens_at"`
	ClosesAt string `json:"closes_at"`
}

// HandleUpdateSalon updates the caller's salon settings (admin only).
func (sc *SalonController) HandleUpdateSalon(c *fiber.Ctx) error {
	salon, err := sc.salons.GetByID(requestctx.SalonID(c))
	if err != nil {
		return notFound(c, "Salon not found")
	}

	var req salonUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}
	if req.Name != "" {
		salon.Name = req.Name
	}
	if req.Phone != "" {
		salon.Phone = req.Phone
	}
	if req.Address != "" {
		salon.Address = req.Address
	}
	if req.Email != "" {
		salon.Email = req.Email
	}
	if req.OpensAt != "" {
		salon.OpensAt = req.OpensAt
	}
	if req.ClosesAt != "" {
		salon.ClosesAt = req.ClosesAt
	}
	if err := salon.Validate(); err != nil {
		return validationFailed(c, err.Error())
	}
	if err := sc.salons.Update(salon); err != nil {
		return internalError(c, "Failed to update salon")
	}
	return c.JSON(salon)
}

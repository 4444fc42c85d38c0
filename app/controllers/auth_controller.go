package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/token"
)

// AuthController handles login and token issuance.
type AuthController struct {
	users    repository.UserRepository
	licenses repository.LicenseRepository
}

// NewAuthController creates an auth controller.
func NewAuthController(users repository.UserRepository, licenses repository.LicenseRepository) *AuthController {
	return &AuthController{users: users, licenses: licenses}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and returns a signed login token together
// with the salon's license summary so the client can branch on license
// state right after login.
func (ac *AuthController) HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return validationFailed(c, "Email and password are required")
	}

	user, err := ac.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusUnauthorized, "unauthenticated", "Invalid email or password")
		}
		return internalError(c, "Login failed")
	}
	if !user.Active || !user.CheckPassword(req.Password) {
		return jsonError(c, fiber.StatusUnauthorized, "unauthenticated", "Invalid email or password")
	}

	signed, err := token.Issue(user, token.DefaultTTL)
	if err != nil {
		return internalError(c, "Failed to issue token")
	}

	if err := ac.users.UpdateLastLogin(user.ID, time.Now()); err != nil {
		log.Printf("failed to update last login for user %d: %v", user.ID, err)
	}

	response := fiber.Map{
		"token": signed,
		"user": fiber.Map{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"role":     user.Role,
			"salon_id": user.SalonID,
		},
	}

	// Tenant accounts get their license summary; platform accounts have none.
	if !user.IsPlatformRole() {
		if lic, err := ac.licenses.GetBySalonID(user.SalonID); err == nil {
			response["license"] = fiber.Map{
				"plan":                 lic.Plan,
				"interval":             lic.Interval,
				"status":               lic.Status,
				"expires_at":           lic.ExpiresAt.UTC().Format(time.RFC3339),
				"booking_limit":        lic.BookingLimit,
				"waiting_list_enabled": lic.WaitingListEnabled,
				"report_depth":         lic.ReportDepth,
			}
		}
	}

	return c.JSON(response)
}

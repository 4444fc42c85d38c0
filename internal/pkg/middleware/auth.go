package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/env"
	"github.com/salonhub/salonhub/internal/pkg/license"
	"github.com/salonhub/salonhub/internal/pkg/requestctx"
	"github.com/salonhub/salonhub/internal/pkg/token"
)

// TenancyGate authenticates every non-public request and enforces the salon
// license before handlers run. Constructed once with injected dependencies.
type TenancyGate struct {
	users repository.UserRepository
	gate  *license.Gate
}

// NewTenancyGate creates the gate middleware.
func NewTenancyGate(users repository.UserRepository, gate *license.Gate) *TenancyGate {
	return &TenancyGate{users: users, gate: gate}
}

// Authenticate resolves the caller identity from a bearer login token, an
// API key, or the master credential. It stores the resolved account and
// tenant in the request context. License state is not checked here.
func (t *TenancyGate) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		account, err := t.resolveAccount(c)
		if err != nil {
			var gateErr *license.GateError
			if errors.As(err, &gateErr) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error":   string(gateErr.Kind),
					"message": gateErr.Message,
				})
			}
			log.Printf("auth middleware: account resolution failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "internal_server_error",
				"message": "Authentication failed",
			})
		}

		requestctx.Set(c, requestctx.RequestContext{
			Account: account,
			SalonID: account.SalonID,
		})
		return c.Next()
	}
}

// EnforceLicense rejects tenant-scoped requests whose salon license is
// missing, suspended or expired. Platform roles pass unconditionally. An
// active license past its expiry is persisted as expired and rejected here,
// on this request; there is no background sweep.
func (t *TenancyGate) EnforceLicense() fiber.Handler {
	return func(c *fiber.Ctx) error {
		account := requestctx.Account(c)
		if err := t.gate.Check(account); err != nil {
			var gateErr *license.GateError
			if errors.As(err, &gateErr) {
				status := fiber.StatusForbidden
				if gateErr.Kind == license.KindUnauthenticated {
					status = fiber.StatusUnauthorized
				}
				return c.Status(status).JSON(fiber.Map{
					"error":   string(gateErr.Kind),
					"message": gateErr.Message,
				})
			}
			log.Printf("license gate: check failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "internal_server_error",
				"message": "License verification failed",
			})
		}
		return c.Next()
	}
}

// RequireRole rejects accounts below the required privilege.
func RequireRole(required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		account := requestctx.Account(c)
		if account == nil || !models.HasPrivilege(account.Role, required) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   "forbidden",
				"message": "Insufficient privileges",
			})
		}
		return c.Next()
	}
}

func (t *TenancyGate) resolveAccount(c *fiber.Ctx) (*models.User, error) {
	// Master credential resolves to the designated platform owner.
	if master := strings.TrimSpace(c.Get("X-Master-Key")); master != "" {
		expected := env.GetEnv("MASTER_KEY", "")
		if expected == "" || master != expected {
			return nil, license.ErrUnauthenticated
		}
		owner, err := t.users.GetPlatformOwner()
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, license.ErrUnauthenticated
			}
			return nil, err
		}
		return owner, nil
	}

	if apiKey := strings.TrimSpace(c.Get("X-API-Key")); apiKey != "" {
		account, err := t.users.GetByAPIKeyHash(models.HashAPIKey(apiKey))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, license.ErrUnauthenticated
			}
			return nil, err
		}
		if !account.Active {
			return nil, license.ErrUnauthenticated
		}
		return account, nil
	}

	if bearer := extractBearer(c); bearer != "" {
		claims, err := token.Parse(bearer)
		if err != nil {
			return nil, license.ErrUnauthenticated
		}
		account, err := t.users.GetByID(claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, license.ErrUnauthenticated
			}
			return nil, err
		}
		if !account.Active {
			return nil, license.ErrUnauthenticated
		}
		return account, nil
	}

	return nil, license.ErrUnauthenticated
}

func extractBearer(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

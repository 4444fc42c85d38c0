package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/requestctx"
)

// UserController manages a salon's staff accounts. Staff never
// self-register; accounts are created by the salon admin (or platform
// roles), the only exception being the admin created during registration.
type UserController struct {
	users repository.UserRepository
}

// NewUserController creates a user controller.
func NewUserController(users repository.UserRepository) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) HandleList(c *fiber.Ctx) error {
	users, err := uc.users.ListBySalon(requestctx.SalonID(c))
	if err != nil {
		return internalError(c, "Failed to list staff")
	}
	return c.JSON(fiber.Map{"users": users})
}

type staffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

func (uc *UserController) HandleCreate(c *fiber.Ctx) error {
	var req staffRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}

	// Tenant admins may only create tenant roles.
	switch req.Role {
	case models.RoleProfessional, models.RoleReception, models.RoleAdmin:
	default:
		return validationFailed(c, "Invalid staff role")
	}

	user, err := models.CreateUser(requestctx.SalonID(c), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return validationFailed(c, err.Error())
	}
	user.Phone = req.Phone
	if err := uc.users.Create(user); err != nil {
		return internalError(c, "Failed to create staff account")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

type staffUpdateRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Active *bool  `json:"active"`
}

func (uc *UserController) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid user id")
	}
	user, err := uc.users.GetForSalon(requestctx.SalonID(c), id)
	if err != nil {
		return notFound(c, "Staff account not found")
	}

	var req staffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Role != "" {
		switch req.Role {
		case models.RoleProfessional, models.RoleReception, models.RoleAdmin:
			user.Role = req.Role
		default:
			return validationFailed(c, "Invalid staff role")
		}
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if err := uc.users.Update(user); err != nil {
		return internalError(c, "Failed to update staff account")
	}
	return c.JSON(user)
}

func (uc *UserController) HandleDelete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid user id")
	}
	account := requestctx.Account(c)
	if account != nil && account.ID == id {
		return validationFailed(c, "Cannot delete your own account")
	}
	if err := uc.users.Delete(requestctx.SalonID(c), id); err != nil {
		return internalError(c, "Failed to delete staff account")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

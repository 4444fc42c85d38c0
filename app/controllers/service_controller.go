package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/requestctx"
)

// ServiceController handles the salon's service catalog.
type ServiceController struct {
	services repository.ServiceRepository
	validate *validator.Validate
}

// NewServiceController creates a service controller.
func NewServiceController(services repository.ServiceRepository) *ServiceController {
	return &ServiceController{services: services, validate: validator.New()}
}

func (sc *ServiceController) HandleList(c *fiber.Ctx) error {
	services, err := sc.services.List(requestctx.SalonID(c))
	if err != nil {
		return internalError(c, "Failed to list services")
	}
	return c.JSON(fiber.Map{"services": services})
}

type serviceRequest struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Active          *bool   `json:"active"`
}

func (sc *ServiceController) HandleCreate(c *fiber.Ctx) error {
	var req serviceRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}

	service := &models.Service{
		SalonID:         requestctx.SalonID(c),
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Active:          true,
	}
	if err := sc.validate.Struct(service); err != nil {
		return validationFailed(c, err.Error())
	}
	if err := sc.services.Create(service); err != nil {
		return internalError(c, "Failed to create service")
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

func (sc *ServiceController) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid service id")
	}
	service, err := sc.services.GetByID(requestctx.SalonID(c), id)
	if err != nil {
		return notFound(c, "Service not found")
	}

	var req serviceRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}
	if req.Name != "" {
		service.Name = req.Name
	}
	if req.DurationMinutes > 0 {
		service.DurationMinutes = req.DurationMinutes
	}
	if req.Price > 0 {
		service.Price = req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}
	if err := sc.validate.Struct(service); err != nil {
		return validationFailed(c, err.Error())
	}
	if err := sc.services.Update(service); err != nil {
		return internalError(c, "Failed to update service")
	}
	return c.JSON(service)
}

func (sc *ServiceController) HandleDelete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid service id")
	}
	if err := sc.services.Delete(requestctx.SalonID(c), id); err != nil {
		return internalError(c, "Failed to delete service")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

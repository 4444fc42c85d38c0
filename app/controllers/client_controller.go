package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/requestctx"
)

// ClientController handles the salon's client book.
type ClientController struct {
	clients repository.ClientRepository
}

// NewClientController creates a client controller.
func NewClientController(clients repository.ClientRepository) *ClientController {
	return &ClientController{clients: clients}
}

func (cc *ClientController) HandleList(c *fiber.Ctx) error {
	salonID := requestctx.SalonID(c)
	if query := c.Query("q"); query != "" {
		clients, err := cc.clients.Search(salonID, query)
		if err != nil {
			return internalError(c, "Failed to search clients")
		}
		return c.JSON(fiber.Map{"clients": clients})
	}

	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 50)
	clients, err := cc.clients.List(salonID, offset, limit)
	if err != nil {
		return internalError(c, "Failed to list clients")
	}
	total, err := cc.clients.Count(salonID)
	if err != nil {
		return internalError(c, "Failed to count clients")
	}
	return c.JSON(fiber.Map{"clients": clients, "total": total})
}

func (cc *ClientController) HandleGet(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid client id")
	}
	client, err := cc.clients.GetByID(requestctx.SalonID(c), id)
	if err != nil {
		return notFound(c, "Client not found")
	}
	return c.JSON(client)
}

type clientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

func (cc *ClientController) HandleCreate(c *fiber.Ctx) error {
	var req clientRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}
	if req.Name == "" {
		return validationFailed(c, "Client name is required")
	}

	client := &models.Client{
		SalonID: requestctx.SalonID(c),
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Notes:   req.Notes,
	}
	if err := cc.clients.Create(client); err != nil {
		return internalError(c, "Failed to create client")
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func (cc *ClientController) HandleUpdate(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid client id")
	}
	client, err := cc.clients.GetByID(requestctx.SalonID(c), id)
	if err != nil {
		return notFound(c, "Client not found")
	}

	var req clientRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}
	if req.Name != "" {
		client.Name = req.Name
	}
	if req.Phone != "" {
		client.Phone = req.Phone
	}
	if req.Email != "" {
		client.Email = req.Email
	}
	if req.Notes != "" {
		client.Notes = req.Notes
	}
	if err := cc.clients.Update(client); err != nil {
		return internalError(c, "Failed to update client")
	}
	return c.JSON(client)
}

func (cc *ClientController) HandleDelete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid client id")
	}
	if err := cc.clients.Delete(requestctx.SalonID(c), id); err != nil {
		return internalError(c, "Failed to delete client")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

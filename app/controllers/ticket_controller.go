package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/requestctx"
)

// TicketController is the support channel between salons and the platform.
type TicketController struct {
	tickets repository.TicketRepository
}

// NewTicketController creates a ticket controller.
func NewTicketController(tickets repository.TicketRepository) *TicketController {
	return &TicketController{tickets: tickets}
}

type ticketRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (tc *TicketController) HandleCreate(c *fiber.Ctx) error {
	var req ticketRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}
	if req.Subject == "" || req.Body == "" {
		return validationFailed(c, "Subject and body are required")
	}

	account := requestctx.Account(c)
	ticket := &models.SupportTicket{
		SalonID: requestctx.SalonID(c),
		UserID:  account.ID,
		Subject: req.Subject,
		Body:    req.Body,
		Status:  models.TicketStatusOpen,
	}
	if err := tc.tickets.Create(ticket); err != nil {
		return internalError(c, "Failed to create ticket")
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

func (tc *TicketController) HandleList(c *fiber.Ctx) error {
	tickets, err := tc.tickets.List(requestctx.SalonID(c))
	if err != nil {
		return internalError(c, "Failed to list tickets")
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

func (tc *TicketController) HandleGet(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid ticket id")
	}
	ticket, err := tc.tickets.GetByID(requestctx.SalonID(c), id)
	if err != nil {
		return notFound(c, "Ticket not found")
	}
	return c.JSON(ticket)
}

type replyRequest struct {
	Body  string `json:"body"`
	Close bool   `json:"close"`
}

// HandleReply appends a message to a ticket. Platform replies move the
// ticket to answered; the author may close it.
func (tc *TicketController) HandleReply(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid ticket id")
	}

	account := requestctx.Account(c)
	salonID := requestctx.SalonID(c)

	var ticket *models.SupportTicket
	if account.IsPlatformRole() {
		// Platform staff answer tickets across all salons.
		ticketSalonID, err := paramUint(c, "salon_id")
		if err != nil || ticketSalonID == 0 {
			return validationFailed(c, "Invalid salon id")
		}
		salonID = ticketSalonID
	}
	ticket, err = tc.tickets.GetByID(salonID, id)
	if err != nil {
		return notFound(c, "Ticket not found")
	}

	var req replyRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}
	if req.Body == "" {
		return validationFailed(c, "Reply body is required")
	}

	newStatus := models.TicketStatusOpen
	if account.IsPlatformRole() {
		newStatus = models.TicketStatusAnswered
	}
	if req.Close {
		newStatus = models.TicketStatusClosed
	}

	reply := &models.TicketReply{
		UserID: account.ID,
		Body:   req.Body,
	}
	if err := tc.tickets.AddReply(ticket.ID, reply, newStatus); err != nil {
		return internalError(c, "Failed to add reply")
	}

	ticket.Status = newStatus
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ticket": ticket, "reply": reply})
}

// HandleAdminList lists tickets across all salons (platform roles only).
func (tc *TicketController) HandleAdminList(c *fiber.Ctx) error {
	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 50)
	tickets, err := tc.tickets.ListAll(offset, limit)
	if err != nil {
		return internalError(c, "Failed to list tickets")
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

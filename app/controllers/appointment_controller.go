package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/requestctx"
	"github.com/salonhub/salonhub/internal/pkg/scheduling"
)

// AppointmentController handles the staff-facing scheduling flow. Unlike
// public booking it validates the service reference and rejects conflicting
// placements before persisting.
type AppointmentController struct {
	appointments repository.AppointmentRepository
	services     repository.ServiceRepository
	clients      repository.ClientRepository
	allocator    *scheduling.Allocator
}

// NewAppointmentController creates an appointment controller.
func NewAppointmentController(appointments repository.AppointmentRepository, services repository.ServiceRepository, clients repository.ClientRepository, allocator *scheduling.Allocator) *AppointmentController {
	return &AppointmentController{appointments: appointments, services: services, clients: clients, allocator: allocator}
}

// HandleList returns appointments for a day, or a date range when from/to
// are given.
func (apc *AppointmentController) HandleList(c *fiber.Ctx) error {
	salonID := requestctx.SalonID(c)

	if from, to := c.Query("from"), c.Query("to"); from != "" || to != "" {
		if !validDate(from) || !validDate(to) {
			return validationFailed(c, "Invalid from/to, want YYYY-MM-DD")
		}
		appts, err := apc.appointments.ListRange(salonID, from, to)
		if err != nil {
			return internalError(c, "Failed to list appointments")
		}
		return c.JSON(fiber.Map{"appointments": appts})
	}

	date := c.Query("date")
	if !validDate(date) {
		return validationFailed(c, "Invalid or missing date, want YYYY-MM-DD")
	}
	appts, err := apc.appointments.ListByDay(salonID, date)
	if err != nil {
		return internalError(c, "Failed to list appointments")
	}
	return c.JSON(fiber.Map{"appointments": appts})
}

type appointmentRequest struct {
	ClientID       uint   `json:"client_id"`
	ServiceID      uint   `json:"service_id"`
	ProfessionalID uint   `json:"professional_id"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	Notes          string `json:"notes"`
}

// HandleCreate books an appointment through the staff-facing flow: the
// client and service must exist, and the placement must not overlap an
// existing appointment of the same professional.
func (apc *AppointmentController) HandleCreate(c *fiber.Ctx) error {
	salonID := requestctx.SalonID(c)

	var req appointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}
	if !validDate(req.Date) {
		return validationFailed(c, "Invalid or missing date, want YYYY-MM-DD")
	}
	if !scheduling.ValidTime(req.StartTime) {
		return validationFailed(c, "Invalid or missing start_time, want HH:mm")
	}

	if _, err := apc.clients.GetByID(salonID, req.ClientID); err != nil {
		return notFound(c, "Client not found")
	}
	svc, err := apc.services.GetByID(salonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Service not found")
		}
		return internalError(c, "Failed to load service")
	}

	endTime, err := scheduling.EndTime(req.StartTime, svc.DurationMinutes)
	if err != nil {
		if errors.Is(err, scheduling.ErrCrossesMidnight) {
			return validationFailed(c, "Appointment would run past midnight")
		}
		return validationFailed(c, err.Error())
	}

	if err := apc.allocator.ValidateBooking(salonID, req.ProfessionalID, 0, req.Date, req.StartTime, endTime); err != nil {
		var conflict *scheduling.ConflictError
		if errors.As(err, &conflict) {
			return jsonError(c, fiber.StatusConflict, "conflict", conflict.Error())
		}
		return internalError(c, "Failed to validate booking")
	}

	appt := &models.Appointment{
		SalonID:        salonID,
		ClientID:       req.ClientID,
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        endTime,
		Status:         models.AppointmentStatusScheduled,
		Price:          svc.Price,
		Notes:          req.Notes,
	}
	if err := apc.appointments.Create(appt); err != nil {
		return internalError(c, "Failed to create appointment")
	}
	return c.Status(fiber.StatusCreated).JSON(appt)
}

type appointmentUpdateRequest struct {
	ProfessionalID *uint   `json:"professional_id"`
	Date           string  `json:"date"`
	StartTime      string  `json:"start_time"`
	Notes          *string `json:"notes"`
}

// HandleUpdate moves or reassigns a scheduled appointment, re-running the
// conflict validation for the new placement.
func (apc *AppointmentController) HandleUpdate(c *fiber.Ctx) error {
	salonID := requestctx.SalonID(c)
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid appointment id")
	}
	appt, err := apc.appointments.GetByID(salonID, id)
	if err != nil {
		return notFound(c, "Appointment not found")
	}
	if appt.Status != models.AppointmentStatusScheduled {
		return validationFailed(c, "Only scheduled appointments can be changed")
	}

	var req appointmentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}

	if req.ProfessionalID != nil {
		appt.ProfessionalID = *req.ProfessionalID
	}
	if req.Date != "" {
		if !validDate(req.Date) {
			return validationFailed(c, "Invalid date, want YYYY-MM-DD")
		}
		appt.Date = req.Date
	}
	if req.StartTime != "" {
		if !scheduling.ValidTime(req.StartTime) {
			return validationFailed(c, "Invalid start_time, want HH:mm")
		}
		duration := models.DefaultServiceDuration
		if svc, err := apc.services.GetByID(salonID, appt.ServiceID); err == nil {
			duration = svc.DurationMinutes
		}
		endTime, err := scheduling.EndTime(req.StartTime, duration)
		if err != nil {
			if errors.Is(err, scheduling.ErrCrossesMidnight) {
				return validationFailed(c, "Appointment would run past midnight")
			}
			return validationFailed(c, err.Error())
		}
		appt.StartTime = req.StartTime
		appt.EndTime = endTime
	}
	if req.Notes != nil {
		appt.Notes = *req.Notes
	}

	// The moved appointment is excluded from the scan so its vacated window
	// cannot hide an overlap with another appointment.
	if err := apc.allocator.ValidateBooking(salonID, appt.ProfessionalID, appt.ID, appt.Date, appt.StartTime, appt.EndTime); err != nil {
		var conflict *scheduling.ConflictError
		if errors.As(err, &conflict) {
			return jsonError(c, fiber.StatusConflict, "conflict", conflict.Error())
		}
		return internalError(c, "Failed to validate booking")
	}

	if err := apc.appointments.Update(appt); err != nil {
		return internalError(c, "Failed to update appointment")
	}
	return c.JSON(appt)
}

// HandleCancel cancels a scheduled appointment, freeing its slot.
func (apc *AppointmentController) HandleCancel(c *fiber.Ctx) error {
	salonID := requestctx.SalonID(c)
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid appointment id")
	}
	if err := apc.appointments.Cancel(salonID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "No scheduled appointment with this id")
		}
		return internalError(c, "Failed to cancel appointment")
	}
	return c.JSON(fiber.Map{"status": models.AppointmentStatusCancelled})
}

type checkoutItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type checkoutRequest struct {
	Items []checkoutItem `json:"items"`
}

// HandleCheckout completes an appointment at the point of sale: the
// appointment is marked completed, an income transaction is written to the
// ledger, and retail product stock is decremented, all atomically.
func (apc *AppointmentController) HandleCheckout(c *fiber.Ctx) error {
	salonID := requestctx.SalonID(c)
	id, err := paramUint(c, "id")
	if err != nil {
		return validationFailed(c, "Invalid appointment id")
	}
	appt, err := apc.appointments.GetByID(salonID, id)
	if err != nil {
		return notFound(c, "Appointment not found")
	}
	if appt.Status != models.AppointmentStatusScheduled {
		return validationFailed(c, "Only scheduled appointments can be checked out")
	}

	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return validationFailed(c, "Invalid request body")
	}

	items := make([]repository.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return validationFailed(c, "Item quantity must be positive")
		}
		items = append(items, repository.CheckoutItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	txn := &models.Transaction{
		SalonID:       salonID,
		Kind:          models.TransactionIncome,
		Amount:        appt.Price,
		Description:   fmt.Sprintf("Checkout appointment #%d", appt.ID),
		AppointmentID: appt.ID,
	}
	if err := apc.appointments.Checkout(appt, txn, items); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return notFound(c, "Product not found")
		}
		if errors.Is(err, repository.ErrInsufficientStock) {
			return jsonError(c, fiber.StatusConflict, "conflict", "Insufficient product stock")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "No scheduled appointment with this id")
		}
		return internalError(c, "Checkout failed")
	}

	appt.Status = models.AppointmentStatusCompleted
	return c.JSON(fiber.Map{"appointment": appt, "transaction": txn})
}

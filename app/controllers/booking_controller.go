package controllers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/mail"
	"github.com/salonhub/salonhub/internal/pkg/scheduling"
)

// BookingController handles the public booking flow. Unlike the staff-facing
// scheduling flow it does not pre-validate slot conflicts; the coarse slot
// view is the only guard shown to anonymous visitors.
type BookingController struct {
	salons       repository.SalonRepository
	services     repository.ServiceRepository
	appointments repository.AppointmentRepository
	mailer       mail.Mailer
	cache        SlotCache
}

// NewBookingController creates a booking controller.
func NewBookingController(salons repository.SalonRepository, services repository.ServiceRepository, appointments repository.AppointmentRepository, mailer mail.Mailer, cache SlotCache) *BookingController {
	return &BookingController{salons: salons, services: services, appointments: appointments, mailer: mailer, cache: cache}
}

type publicBookingRequest struct {
	ServiceID      uint   `json:"service_id"`
	ProfessionalID uint   `json:"professional_id"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	ClientName     string `json:"client_name"`
	ClientPhone    string `json:"client_phone"`
	ClientEmail    string `json:"client_email"`
	LoyaltyID      string `json:"loyalty_id"`
}

// HandleCreateBooking books an appointment for an anonymous visitor. The
// client is matched by loyalty ID, then phone, and created when unknown;
// upsert and appointment share one transaction. A booking referencing an
// unknown service falls back to a 60 minute slot at price zero instead of
// failing.
func (bc *BookingController) HandleCreateBooking(c *fiber.Ctx) error {
	salon, err := bc.salons.GetBySlug(c.Params("slug"))
	if err != nil {
		return notFound(c, "Salon not found")
	}

	var req publicBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}
	if !validDate(req.Date) {
		return validationFailed(c, "Invalid or missing date, want YYYY-MM-DD")
	}
	if !scheduling.ValidTime(req.StartTime) {
		return validationFailed(c, "Invalid or missing start_time, want HH:mm")
	}
	if req.ClientName == "" {
		return validationFailed(c, "Client name is required")
	}

	duration := models.DefaultServiceDuration
	price := 0.0
	svc, err := bc.services.GetByID(salon.ID, req.ServiceID)
	if err == nil {
		duration = svc.DurationMinutes
		price = svc.Price
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return internalError(c, "Booking failed")
	}

	endTime, err := scheduling.EndTime(req.StartTime, duration)
	if err != nil {
		if errors.Is(err, scheduling.ErrCrossesMidnight) {
			return validationFailed(c, "Appointment would run past midnight")
		}
		return validationFailed(c, err.Error())
	}

	client := &models.Client{
		SalonID:   salon.ID,
		Name:      req.ClientName,
		Phone:     req.ClientPhone,
		Email:     req.ClientEmail,
		LoyaltyID: req.LoyaltyID,
	}
	appt := &models.Appointment{
		SalonID:        salon.ID,
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        endTime,
		Status:         models.AppointmentStatusScheduled,
		Price:          price,
	}
	if err := bc.appointments.CreateWithClient(client, appt); err != nil {
		return internalError(c, "Booking failed")
	}
	if bc.cache != nil {
		bc.cache.Invalidate(salon.ID, req.Date)
	}

	if req.ClientEmail != "" {
		go func() {
			body := fmt.Sprintf("<p>Your appointment at %s on %s at %s is confirmed.</p>",
				salon.Name, req.Date, req.StartTime)
			if err := bc.mailer.Send(req.ClientEmail, "Booking confirmed", body); err != nil {
				log.Printf("booking confirmation mail to %s failed: %v", req.ClientEmail, err)
			}
		}()
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"appointment": appt,
		"client_id":   appt.ClientID,
		"loyalty_id":  client.LoyaltyID,
	})
}

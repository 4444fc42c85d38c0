package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/scheduling"
)

// SlotCache memoizes the public slot availability per salon and day.
type SlotCache interface {
	GetSlots(salonID uint, date string) ([]string, bool)
	SetSlots(salonID uint, date string, slots []string)
	Invalidate(salonID uint, date string)
}

// AvailabilityController serves the public slot and professional lookups
// used by the booking widget. These routes skip the tenancy gate entirely.
// Slot lookups are served read-through from the cache; a nil cache disables
// memoization.
type AvailabilityController struct {
	salons    repository.SalonRepository
	allocator *scheduling.Allocator
	cache     SlotCache
}

// NewAvailabilityController creates an availability controller.
func NewAvailabilityController(salons repository.SalonRepository, allocator *scheduling.Allocator, cache SlotCache) *AvailabilityController {
	return &AvailabilityController{salons: salons, allocator: allocator, cache: cache}
}

// HandleSlots returns the bookable hourly slots for a salon and day.
func (av *AvailabilityController) HandleSlots(c *fiber.Ctx) error {
	salon, err := av.salons.GetBySlug(c.Params("slug"))
	if err != nil {
		return notFound(c, "Salon not found")
	}
	date := c.Query("date")
	if !validDate(date) {
		return validationFailed(c, "Invalid or missing date, want YYYY-MM-DD")
	}

	if av.cache != nil {
		if slots, ok := av.cache.GetSlots(salon.ID, date); ok {
			return c.JSON(fiber.Map{"date": date, "slots": slots})
		}
	}

	slots, err := av.allocator.DaySlots(salon.ID, date)
	if err != nil {
		return internalError(c, "Failed to compute availability")
	}
	if av.cache != nil {
		av.cache.SetSlots(salon.ID, date, slots)
	}
	return c.JSON(fiber.Map{"date": date, "slots": slots})
}

// HandleProfessionals returns the staff free at an exact date and start time.
func (av *AvailabilityController) HandleProfessionals(c *fiber.Ctx) error {
	salon, err := av.salons.GetBySlug(c.Params("slug"))
	if err != nil {
		return notFound(c, "Salon not found")
	}
	date := c.Query("date")
	startTime := c.Query("time")
	if !validDate(date) {
		return validationFailed(c, "Invalid or missing date, want YYYY-MM-DD")
	}
	if !scheduling.ValidTime(startTime) {
		return validationFailed(c, "Invalid or missing time, want HH:mm")
	}

	staff, err := av.allocator.ProfessionalsAt(salon.ID, date, startTime)
	if err != nil {
		return internalError(c, "Failed to compute availability")
	}

	professionals := make([]fiber.Map, 0, len(staff))
	for _, u := range staff {
		professionals = append(professionals, fiber.Map{"id": u.ID, "name": u.Name})
	}
	return c.JSON(fiber.Map{"date": date, "time": startTime, "professionals": professionals})
}

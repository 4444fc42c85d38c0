package scheduling

import (
	"fmt"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
)

// ConflictError reports a rejected booking placement with an actionable
// message naming the occupied window.
type ConflictError struct {
	Existing *models.Appointment
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("professional already booked from %s to %s on %s",
		e.Existing.StartTime, e.Existing.EndTime, e.Existing.Date)
}

// Allocator answers availability queries and validates proposed bookings for
// one salon/day at a time. Repositories are injected at construction.
type Allocator struct {
	appointments repository.AppointmentRepository
	users        repository.UserRepository
}

// NewAllocator creates a slot allocator over the given repositories.
func NewAllocator(appointments repository.AppointmentRepository, users repository.UserRepository) *Allocator {
	return &Allocator{appointments: appointments, users: users}
}

// DaySlots returns the bookable slots for a salon and calendar day.
func (a *Allocator) DaySlots(salonID uint, date string) ([]string, error) {
	staffCount, err := a.users.CountActiveStaff(salonID)
	if err != nil {
		return nil, err
	}
	appts, err := a.appointments.ListByDay(salonID, date)
	if err != nil {
		return nil, err
	}
	return AvailableSlots(appts, int(staffCount)), nil
}

// ProfessionalsAt returns the active staff free at the exact start time on
// the given day.
func (a *Allocator) ProfessionalsAt(salonID uint, date, startTime string) ([]models.User, error) {
	staff, err := a.users.ListActiveProfessionals(salonID)
	if err != nil {
		return nil, err
	}
	appts, err := a.appointments.ListByDay(salonID, date)
	if err != nil {
		return nil, err
	}
	return AvailableProfessionals(staff, appts, startTime), nil
}

// ValidateBooking rejects a proposed placement that overlaps an existing
// non-cancelled appointment of the same professional. excludeID is the
// appointment being moved (0 when creating); it is dropped from the
// candidate set entirely so its old window cannot shadow a conflict with a
// different appointment. The check is a read followed by a separate write
// with no serializing lock; two concurrent requests for the same window can
// both pass. Known limitation of the booking flow.
func (a *Allocator) ValidateBooking(salonID, professionalID, excludeID uint, date, startTime, endTime string) error {
	if professionalID == 0 {
		return nil
	}
	appts, err := a.appointments.ListByDayForProfessional(salonID, professionalID, date)
	if err != nil {
		return err
	}
	if existing := FindConflict(appts, professionalID, excludeID, startTime, endTime); existing != nil {
		return &ConflictError{Existing: existing}
	}
	return nil
}

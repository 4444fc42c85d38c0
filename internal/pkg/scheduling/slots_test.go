package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salonhub/salonhub/app/models"
)

func TestAvailableSlotsCapacity(t *testing.T) {
	// two active staff: a slot stays bookable until two appointments start at it
	appts := []models.Appointment{
		{StartTime: "10:00", Status: models.AppointmentStatusScheduled},
		{StartTime: "10:00", Status: models.AppointmentStatusScheduled},
		{StartTime: "11:00", Status: models.AppointmentStatusScheduled},
	}

	got := AvailableSlots(appts, 2)
	assert.NotContains(t, got, "10:00")
	assert.Contains(t, got, "11:00")
	assert.Contains(t, got, "09:00")
}

func TestAvailableSlotsIgnoresCancelled(t *testing.T) {
	appts := []models.Appointment{
		{StartTime: "10:00", Status: models.AppointmentStatusScheduled},
		{StartTime: "10:00", Status: models.AppointmentStatusCancelled},
	}

	got := AvailableSlots(appts, 2)
	assert.Contains(t, got, "10:00")
}

func TestAvailableSlotsNoStaff(t *testing.T) {
	assert.Empty(t, AvailableSlots(nil, 0))
}

func TestAvailableSlotsEmptyDay(t *testing.T) {
	got := AvailableSlots(nil, 1)
	assert.Equal(t, SlotCatalog, got)
}

func TestAvailableProfessionalsExactStartOnly(t *testing.T) {
	staff := []models.User{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Bea"},
	}
	appts := []models.Appointment{
		{ProfessionalID: 1, StartTime: "14:00", EndTime: "15:00", Status: models.AppointmentStatusScheduled},
	}

	// busy at the exact start time
	at14 := AvailableProfessionals(staff, appts, "14:00")
	assert.Len(t, at14, 1)
	assert.Equal(t, uint(2), at14[0].ID)

	// still listed at 14:30 even though the appointment runs until 15:00
	at1430 := AvailableProfessionals(staff, appts, "14:30")
	assert.Len(t, at1430, 2)
}

func TestAvailableProfessionalsIgnoresCancelledAndUnassigned(t *testing.T) {
	staff := []models.User{{ID: 1}, {ID: 2}}
	appts := []models.Appointment{
		{ProfessionalID: 1, StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentStatusCancelled},
		{ProfessionalID: 0, StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentStatusScheduled},
	}

	got := AvailableProfessionals(staff, appts, "10:00")
	assert.Len(t, got, 2)
}

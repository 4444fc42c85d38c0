package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/internal/pkg/scheduling"
)

func newAppointmentTestApp(appts *fakeApptRepo) *fiber.App {
	services := &fakeServiceRepo{services: map[uint]*models.Service{
		1: {ID: 1, SalonID: 1, Name: "Cut", DurationMinutes: 60, Price: 30},
	}}
	clients := &fakeClientRepo{clients: map[uint]*models.Client{
		1: {ID: 1, SalonID: 1, Name: "Carla Dias"},
	}}
	allocator := scheduling.NewAllocator(appts, &fakeStaffRepo{})
	ctrl := NewAppointmentController(appts, services, clients, allocator)

	app := newTenantApp(&models.User{ID: 1, SalonID: 1, Role: models.RoleAdmin, Active: true})
	app.Post("/appointments", ctrl.HandleCreate)
	app.Put("/appointments/:id", ctrl.HandleUpdate)
	return app
}

func TestHandleUpdateRejectsOverlapWithOtherAppointment(t *testing.T) {
	appts := newFakeApptRepo(
		&models.Appointment{ID: 1, SalonID: 1, ClientID: 1, ServiceID: 1, ProfessionalID: 7,
			Date: "2026-09-01", StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentStatusScheduled},
		&models.Appointment{ID: 2, SalonID: 1, ClientID: 1, ServiceID: 1, ProfessionalID: 7,
			Date: "2026-09-01", StartTime: "10:30", EndTime: "11:30", Status: models.AppointmentStatusScheduled},
	)
	app := newAppointmentTestApp(appts)

	// moving appointment 1 to 10:45 collides with appointment 2; the vacated
	// window of appointment 1 itself must not mask that
	req := httptest.NewRequest("PUT", "/appointments/1", strings.NewReader(`{"start_time":"10:45"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// nothing was persisted
	stored, err := appts.GetByID(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "10:00", stored.StartTime)
	assert.Equal(t, "11:00", stored.EndTime)
}

func TestHandleUpdateMoveToFreeWindow(t *testing.T) {
	appts := newFakeApptRepo(
		&models.Appointment{ID: 1, SalonID: 1, ClientID: 1, ServiceID: 1, ProfessionalID: 7,
			Date: "2026-09-01", StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentStatusScheduled},
	)
	app := newAppointmentTestApp(appts)

	req := httptest.NewRequest("PUT", "/appointments/1", strings.NewReader(`{"start_time":"14:00"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	stored, err := appts.GetByID(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "14:00", stored.StartTime)
	assert.Equal(t, "15:00", stored.EndTime)
}

func TestHandleUpdateOwnWindowIsNotAConflict(t *testing.T) {
	appts := newFakeApptRepo(
		&models.Appointment{ID: 1, SalonID: 1, ClientID: 1, ServiceID: 1, ProfessionalID: 7,
			Date: "2026-09-01", StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentStatusScheduled},
	)
	app := newAppointmentTestApp(appts)

	// re-assigning within the appointment's own window passes
	req := httptest.NewRequest("PUT", "/appointments/1", strings.NewReader(`{"notes":"color touch-up"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleCreateRejectsConflict(t *testing.T) {
	appts := newFakeApptRepo(
		&models.Appointment{ID: 1, SalonID: 1, ClientID: 1, ServiceID: 1, ProfessionalID: 7,
			Date: "2026-09-01", StartTime: "10:00", EndTime: "11:00", Status: models.AppointmentStatusScheduled},
	)
	app := newAppointmentTestApp(appts)

	body := `{"client_id":1,"service_id":1,"professional_id":7,"date":"2026-09-01","start_time":"10:30"}`
	req := httptest.NewRequest("POST", "/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

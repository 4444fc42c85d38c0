package controllers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/internal/pkg/mail"
	"github.com/salonhub/salonhub/internal/pkg/scheduling"
)

// fakeSlotCache is a map-backed SlotCache recording hits and stores.
type fakeSlotCache struct {
	entries map[string][]string
	hits    int
	stores  int
}

func newFakeSlotCache() *fakeSlotCache {
	return &fakeSlotCache{entries: map[string][]string{}}
}

func (c *fakeSlotCache) key(salonID uint, date string) string {
	return fmt.Sprintf("%d:%s", salonID, date)
}

func (c *fakeSlotCache) GetSlots(salonID uint, date string) ([]string, bool) {
	slots, ok := c.entries[c.key(salonID, date)]
	if ok {
		c.hits++
	}
	return slots, ok
}

func (c *fakeSlotCache) SetSlots(salonID uint, date string, slots []string) {
	c.stores++
	c.entries[c.key(salonID, date)] = slots
}

func (c *fakeSlotCache) Invalidate(salonID uint, date string) {
	delete(c.entries, c.key(salonID, date))
}

func newAvailabilityTestApp(appts *fakeApptRepo, slotCache SlotCache) *fiber.App {
	salons := &fakeSalonRepo{salons: map[uint]*models.Salon{
		1: {ID: 1, Name: "Studio Norte", Slug: "studio-norte"},
	}}
	staff := &fakeStaffRepo{staff: []models.User{{ID: 7, Name: "Ana"}}}
	allocator := scheduling.NewAllocator(appts, staff)
	ctrl := NewAvailabilityController(salons, allocator, slotCache)

	app := fiber.New()
	app.Get("/public/:slug/slots", ctrl.HandleSlots)
	return app
}

func slotsFromResponse(t *testing.T, app *fiber.App, path string) []string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Slots []string `json:"slots"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload.Slots
}

func TestHandleSlotsReadThroughCache(t *testing.T) {
	appts := newFakeApptRepo()
	slotCache := newFakeSlotCache()
	app := newAvailabilityTestApp(appts, slotCache)

	first := slotsFromResponse(t, app, "/public/studio-norte/slots?date=2026-09-01")
	assert.Equal(t, scheduling.SlotCatalog, first)
	assert.Equal(t, 0, slotCache.hits)
	assert.Equal(t, 1, slotCache.stores)

	// a booking lands but the cache entry is still live, so the second read
	// is served from cache
	require.NoError(t, appts.Create(&models.Appointment{
		SalonID: 1, ClientID: 1, ProfessionalID: 7,
		Date: "2026-09-01", StartTime: "10:00", EndTime: "11:00",
		Status: models.AppointmentStatusScheduled,
	}))
	second := slotsFromResponse(t, app, "/public/studio-norte/slots?date=2026-09-01")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, slotCache.hits)
	assert.Equal(t, 1, slotCache.stores)

	// invalidation forces a recompute that sees the booking
	slotCache.Invalidate(1, "2026-09-01")
	third := slotsFromResponse(t, app, "/public/studio-norte/slots?date=2026-09-01")
	assert.NotContains(t, third, "10:00")
	assert.Equal(t, 2, slotCache.stores)
}

func TestHandleSlotsNilCache(t *testing.T) {
	app := newAvailabilityTestApp(newFakeApptRepo(), nil)

	got := slotsFromResponse(t, app, "/public/studio-norte/slots?date=2026-09-01")
	assert.Equal(t, scheduling.SlotCatalog, got)
}

func TestPublicBookingInvalidatesSlotCache(t *testing.T) {
	appts := newFakeApptRepo()
	slotCache := newFakeSlotCache()
	slotCache.SetSlots(1, "2026-09-01", scheduling.SlotCatalog)
	slotCache.stores = 0

	salons := &fakeSalonRepo{salons: map[uint]*models.Salon{
		1: {ID: 1, Name: "Studio Norte", Slug: "studio-norte"},
	}}
	services := &fakeServiceRepo{services: map[uint]*models.Service{}}
	ctrl := NewBookingController(salons, services, appts, mail.NoopMailer{}, slotCache)

	app := fiber.New()
	app.Post("/public/:slug/bookings", ctrl.HandleCreateBooking)

	body := `{"date":"2026-09-01","start_time":"10:00","client_name":"Carla Dias","client_phone":"111"}`
	req := httptest.NewRequest("POST", "/public/studio-norte/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	_, ok := slotCache.GetSlots(1, "2026-09-01")
	assert.False(t, ok)
}

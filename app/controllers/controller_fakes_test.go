package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/requestctx"
)

// newTenantApp builds a fiber app whose requests run as the given account,
// skipping the real authentication middleware.
func newTenantApp(account *models.User) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		requestctx.Set(c, requestctx.RequestContext{Account: account, SalonID: account.SalonID})
		return c.Next()
	})
	return app
}

// fakeApptRepo keeps appointments in memory.
type fakeApptRepo struct {
	appts  map[uint]*models.Appointment
	nextID uint
}

func newFakeApptRepo(appts ...*models.Appointment) *fakeApptRepo {
	r := &fakeApptRepo{appts: map[uint]*models.Appointment{}, nextID: 1}
	for _, a := range appts {
		r.appts[a.ID] = a
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return r
}

func (r *fakeApptRepo) Create(appt *models.Appointment) error {
	appt.ID = r.nextID
	r.nextID++
	r.appts[appt.ID] = appt
	return nil
}

func (r *fakeApptRepo) CreateWithClient(client *models.Client, appt *models.Appointment) error {
	if client.ID == 0 {
		client.ID = 90 + r.nextID
	}
	appt.ClientID = client.ID
	return r.Create(appt)
}

func (r *fakeApptRepo) GetByID(salonID, id uint) (*models.Appointment, error) {
	if a, ok := r.appts[id]; ok && a.SalonID == salonID {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeApptRepo) ListByDay(salonID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.SalonID == salonID && a.Date == date && !a.IsCancelled() {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) ListByDayForProfessional(salonID, professionalID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.SalonID == salonID && a.ProfessionalID == professionalID && a.Date == date && !a.IsCancelled() {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) ListRange(salonID uint, from, to string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeApptRepo) Update(appt *models.Appointment) error {
	cp := *appt
	r.appts[appt.ID] = &cp
	return nil
}

func (r *fakeApptRepo) Cancel(salonID, id uint) error {
	if a, ok := r.appts[id]; ok && a.SalonID == salonID && a.Status == models.AppointmentStatusScheduled {
		a.Status = models.AppointmentStatusCancelled
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeApptRepo) Checkout(appt *models.Appointment, txn *models.Transaction, items []repository.CheckoutItem) error {
	return r.Cancel(appt.SalonID, appt.ID)
}

// fakeServiceRepo serves a fixed service catalog.
type fakeServiceRepo struct {
	services map[uint]*models.Service
}

func (r *fakeServiceRepo) Create(s *models.Service) error { return nil }

func (r *fakeServiceRepo) GetByID(salonID, id uint) (*models.Service, error) {
	if s, ok := r.services[id]; ok && s.SalonID == salonID {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeServiceRepo) List(salonID uint) ([]models.Service, error) { return nil, nil }
func (r *fakeServiceRepo) Update(s *models.Service) error              { return nil }
func (r *fakeServiceRepo) Delete(salonID, id uint) error               { return nil }

// fakeClientRepo serves fixed clients.
type fakeClientRepo struct {
	clients map[uint]*models.Client
}

func (r *fakeClientRepo) Create(c *models.Client) error { return nil }

func (r *fakeClientRepo) GetByID(salonID, id uint) (*models.Client, error) {
	if c, ok := r.clients[id]; ok && c.SalonID == salonID {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeClientRepo) GetByLoyaltyID(loyaltyID string) (*models.Client, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeClientRepo) GetByPhone(salonID uint, phone string) (*models.Client, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeClientRepo) List(salonID uint, offset, limit int) ([]models.Client, error) {
	return nil, nil
}
func (r *fakeClientRepo) Search(salonID uint, query string) ([]models.Client, error) {
	return nil, nil
}
func (r *fakeClientRepo) Update(c *models.Client) error    { return nil }
func (r *fakeClientRepo) Delete(salonID, id uint) error    { return nil }
func (r *fakeClientRepo) Count(salonID uint) (int64, error) { return 0, nil }

// fakeSalonRepo serves salons and records registration outcomes.
type fakeSalonRepo struct {
	salons      map[uint]*models.Salon
	registerErr error
}

func (r *fakeSalonRepo) Create(s *models.Salon) error { return nil }

func (r *fakeSalonRepo) GetByID(id uint) (*models.Salon, error) {
	if s, ok := r.salons[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSalonRepo) GetBySlug(slug string) (*models.Salon, error) {
	for _, s := range r.salons {
		if s.Slug == slug {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSalonRepo) Update(s *models.Salon) error { return nil }

func (r *fakeSalonRepo) List(offset, limit int) ([]models.Salon, error) { return nil, nil }
func (r *fakeSalonRepo) Count() (int64, error)                          { return int64(len(r.salons)), nil }

func (r *fakeSalonRepo) SlugExists(slug string) (bool, error) {
	_, err := r.GetBySlug(slug)
	return err == nil, nil
}

func (r *fakeSalonRepo) RegisterWithTrial(salon *models.Salon, license *models.License, admin *models.User) error {
	if r.registerErr != nil {
		return r.registerErr
	}
	salon.ID = uint(len(r.salons) + 1)
	license.SalonID = salon.ID
	admin.SalonID = salon.ID
	admin.ID = 1
	if r.salons == nil {
		r.salons = map[uint]*models.Salon{}
	}
	r.salons[salon.ID] = salon
	return nil
}

// fakeStaffRepo backs the allocator's staff queries.
type fakeStaffRepo struct {
	staff []models.User
}

func (r *fakeStaffRepo) Create(u *models.User) error { return nil }
func (r *fakeStaffRepo) GetByID(id uint) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeStaffRepo) GetByEmail(email string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeStaffRepo) GetByAPIKeyHash(hash string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeStaffRepo) GetPlatformOwner() (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeStaffRepo) GetForSalon(salonID, id uint) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeStaffRepo) ListBySalon(salonID uint) ([]models.User, error) { return nil, nil }

func (r *fakeStaffRepo) ListActiveProfessionals(salonID uint) ([]models.User, error) {
	return r.staff, nil
}

func (r *fakeStaffRepo) CountActiveStaff(salonID uint) (int64, error) {
	return int64(len(r.staff)), nil
}

func (r *fakeStaffRepo) Update(u *models.User) error                 { return nil }
func (r *fakeStaffRepo) UpdateLastLogin(id uint, at time.Time) error { return nil }
func (r *fakeStaffRepo) Delete(salonID, id uint) error               { return nil }

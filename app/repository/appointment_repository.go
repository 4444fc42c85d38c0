package repository

import (
	"errors"

	"github.com/salonhub/salonhub/app/models"
	"gorm.io/gorm"
)

// appointmentRepository implements the AppointmentRepository interface
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository instance
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(appt *models.Appointment) error {
	return r.db.Create(appt).Error
}

// CreateWithClient upserts the client by loyalty ID, then phone, then
// creates it if no match, and books the appointment against the resolved
// client. Everything runs in one transaction so concurrent identical
// bookings cannot produce a duplicate client or an orphan appointment.
func (r *appointmentRepository) CreateWithClient(client *models.Client, appt *models.Appointment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return createWithClient(client, appt, txClientLookups(tx), func(a *models.Appointment) error {
			return tx.Create(a).Error
		})
	})
}

// clientLookups are the queries the client upsert runs, split out so the
// resolution order is testable without a database.
type clientLookups struct {
	byLoyaltyID func(loyaltyID string) (*models.Client, error)
	byPhone     func(salonID uint, phone string) (*models.Client, error)
	create      func(*models.Client) error
}

func txClientLookups(tx *gorm.DB) clientLookups {
	return clientLookups{
		byLoyaltyID: func(loyaltyID string) (*models.Client, error) {
			var existing models.Client
			if err := tx.Where("loyalty_id = ?", loyaltyID).First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		},
		byPhone: func(salonID uint, phone string) (*models.Client, error) {
			var existing models.Client
			if err := tx.Where("salon_id = ? AND phone = ?", salonID, phone).First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		},
		create: func(c *models.Client) error {
			return tx.Create(c).Error
		},
	}
}

func createWithClient(client *models.Client, appt *models.Appointment, lookups clientLookups, createAppt func(*models.Appointment) error) error {
	resolved, err := resolveClient(client, lookups)
	if err != nil {
		return err
	}
	*client = *resolved
	appt.ClientID = resolved.ID
	return createAppt(appt)
}

func resolveClient(client *models.Client, lookups clientLookups) (*models.Client, error) {
	if client.LoyaltyID != "" {
		existing, err := lookups.byLoyaltyID(client.LoyaltyID)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if client.Phone != "" {
		existing, err := lookups.byPhone(client.SalonID, client.Phone)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if err := lookups.create(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (r *appointmentRepository) GetByID(salonID, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	if err := r.db.Where("salon_id = ? AND id = ?", salonID, id).First(&appt).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

// ListByDay returns the day's non-cancelled appointments for a salon.
func (r *appointmentRepository) ListByDay(salonID uint, date string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("salon_id = ? AND date = ? AND status <> ?",
		salonID, date, models.AppointmentStatusCancelled).
		Order("start_time ASC").Find(&appts).Error
	return appts, err
}

// ListByDayForProfessional returns the day's non-cancelled appointments for
// one professional.
func (r *appointmentRepository) ListByDayForProfessional(salonID, professionalID uint, date string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("salon_id = ? AND professional_id = ? AND date = ? AND status <> ?",
		salonID, professionalID, date, models.AppointmentStatusCancelled).
		Order("start_time ASC").Find(&appts).Error
	return appts, err
}

func (r *appointmentRepository) ListRange(salonID uint, from, to string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("salon_id = ? AND date BETWEEN ? AND ?", salonID, from, to).
		Order("date ASC, start_time ASC").Find(&appts).Error
	return appts, err
}

func (r *appointmentRepository) Update(appt *models.Appointment) error {
	return r.db.Save(appt).Error
}

func (r *appointmentRepository) Cancel(salonID, id uint) error {
	res := r.db.Model(&models.Appointment{}).
		Where("salon_id = ? AND id = ? AND status = ?", salonID, id, models.AppointmentStatusScheduled).
		Update("status", models.AppointmentStatusCancelled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Checkout completes the appointment, records the income transaction and
// decrements stock for retail line items in a single transaction.
func (r *appointmentRepository) Checkout(appt *models.Appointment, txn *models.Transaction, items []CheckoutItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Appointment{}).
			Where("salon_id = ? AND id = ? AND status = ?",
				appt.SalonID, appt.ID, models.AppointmentStatusScheduled).
			Update("status", models.AppointmentStatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Create(txn).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := adjustStock(tx, appt.SalonID, item.ProductID, -item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

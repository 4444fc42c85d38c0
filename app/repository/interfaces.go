package repository

import (
	"time"

	"github.com/salonhub/salonhub/app/models"
	"gorm.io/gorm"
)

// Tenant-scoped repositories take the salon identifier on every query so a
// cross-tenant read cannot be expressed by accident. Only login/identity
// lookups and platform-level listings operate without one.

// SalonRepository defines salon (tenant) persistence operations.
type SalonRepository interface {
	Create(salon *models.Salon) error
	GetByID(id uint) (*models.Salon, error)
	GetBySlug(slug string) (*models.Salon, error)
	Update(salon *models.Salon) error
	List(offset, limit int) ([]models.Salon, error)
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	// RegisterWithTrial creates the salon, its trial license and the first
	// admin account in a single transaction.
	RegisterWithTrial(salon *models.Salon, license *models.License, admin *models.User) error
}

// LicenseRepository defines license persistence operations.
type LicenseRepository interface {
	Create(license *models.License) error
	GetBySalonID(salonID uint) (*models.License, error)
	Update(license *models.License) error
	// MarkExpired flips an active license to expired. The update is
	// conditioned on the current status so re-checking an already expired
	// license is a no-op.
	MarkExpired(licenseID uint) error
}

// UserRepository defines account persistence operations.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByAPIKeyHash(hash string) (*models.User, error)
	GetPlatformOwner() (*models.User, error)
	GetForSalon(salonID, id uint) (*models.User, error)
	ListBySalon(salonID uint) ([]models.User, error)
	ListActiveProfessionals(salonID uint) ([]models.User, error)
	CountActiveStaff(salonID uint) (int64, error)
	Update(user *models.User) error
	UpdateLastLogin(id uint, at time.Time) error
	Delete(salonID, id uint) error
}

// ClientRepository defines client persistence operations. Loyalty lookup is
// global on purpose: the loyalty identifier is unique system-wide.
type ClientRepository interface {
	Create(client *models.Client) error
	GetByID(salonID, id uint) (*models.Client, error)
	GetByLoyaltyID(loyaltyID string) (*models.Client, error)
	GetByPhone(salonID uint, phone string) (*models.Client, error)
	List(salonID uint, offset, limit int) ([]models.Client, error)
	Search(salonID uint, query string) ([]models.Client, error)
	Update(client *models.Client) error
	Delete(salonID, id uint) error
	Count(salonID uint) (int64, error)
}

// ServiceRepository defines service catalog persistence operations.
type ServiceRepository interface {
	Create(service *models.Service) error
	GetByID(salonID, id uint) (*models.Service, error)
	List(salonID uint) ([]models.Service, error)
	Update(service *models.Service) error
	Delete(salonID, id uint) error
}

// ProductRepository defines inventory persistence operations.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(salonID, id uint) (*models.Product, error)
	List(salonID uint) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(salonID, id uint) error
	// AdjustStock applies a stock delta and fails when it would go negative.
	AdjustStock(salonID, id uint, delta int) error
}

// CheckoutItem is a retail product line sold together with a checkout.
type CheckoutItem struct {
	ProductID uint
	Quantity  int
}

// AppointmentRepository defines appointment persistence operations.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	// CreateWithClient upserts the client and creates the appointment in one
	// transaction so concurrent identical bookings cannot leave a duplicate
	// client or an orphan appointment.
	CreateWithClient(client *models.Client, appt *models.Appointment) error
	GetByID(salonID, id uint) (*models.Appointment, error)
	// ListByDay returns the day's non-cancelled appointments.
	ListByDay(salonID uint, date string) ([]models.Appointment, error)
	ListByDayForProfessional(salonID, professionalID uint, date string) ([]models.Appointment, error)
	ListRange(salonID uint, from, to string) ([]models.Appointment, error)
	Update(appt *models.Appointment) error
	Cancel(salonID, id uint) error
	// Checkout completes the appointment, writes the income transaction and
	// decrements product stock for any retail items, atomically.
	Checkout(appt *models.Appointment, txn *models.Transaction, items []CheckoutItem) error
}

// TransactionRepository defines ledger persistence operations. Entries are
// append-only; there is no update or delete.
type TransactionRepository interface {
	Create(txn *models.Transaction) error
	List(salonID uint, offset, limit int) ([]models.Transaction, error)
	ListByKind(salonID uint, kind string, offset, limit int) ([]models.Transaction, error)
	SumByKind(salonID uint, kind string, from, to time.Time) (float64, error)
}

// TicketRepository defines support ticket persistence operations.
type TicketRepository interface {
	Create(ticket *models.SupportTicket) error
	GetByID(salonID, id uint) (*models.SupportTicket, error)
	List(salonID uint) ([]models.SupportTicket, error)
	ListAll(offset, limit int) ([]models.SupportTicket, error)
	AddReply(ticketID uint, reply *models.TicketReply, newStatus string) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Salon       SalonRepository
	License     LicenseRepository
	User        UserRepository
	Client      ClientRepository
	Service     ServiceRepository
	Product     ProductRepository
	Appointment AppointmentRepository
	Transaction TransactionRepository
	Ticket      TicketRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Salon:       NewSalonRepository(db),
		License:     NewLicenseRepository(db),
		User:        NewUserRepository(db),
		Client:      NewClientRepository(db),
		Service:     NewServiceRepository(db),
		Product:     NewProductRepository(db),
		Appointment: NewAppointmentRepository(db),
		Transaction: NewTransactionRepository(db),
		Ticket:      NewTicketRepository(db),
	}
}

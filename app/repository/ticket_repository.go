package repository

import (
	"github.com/salonhub/salonhub/app/models"
	"gorm.io/gorm"
)

// ticketRepository implements the TicketRepository interface
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new support ticket repository instance
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ticket *models.SupportTicket) error {
	return r.db.Create(ticket).Error
}

func (r *ticketRepository) GetByID(salonID, id uint) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	err := r.db.Preload("Replies").
		Where("salon_id = ? AND id = ?", salonID, id).First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) List(salonID uint) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := r.db.Where("salon_id = ?", salonID).Order("created_at DESC").Find(&tickets).Error
	return tickets, err
}

// ListAll is the platform-side view across every salon.
func (r *ticketRepository) ListAll(offset, limit int) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&tickets).Error
	return tickets, err
}

// AddReply appends a reply and moves the ticket into the given status.
func (r *ticketRepository) AddReply(ticketID uint, reply *models.TicketReply, newStatus string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		reply.TicketID = ticketID
		if err := tx.Create(reply).Error; err != nil {
			return err
		}
		return tx.Model(&models.SupportTicket{}).
			Where("id = ?", ticketID).Update("status", newStatus).Error
	})
}

package repository

import (
	"strings"

	"github.com/salonhub/salonhub/app/models"
	"gorm.io/gorm"
)

// clientRepository implements the ClientRepository interface
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository instance
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepository) GetByID(salonID, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.Where("salon_id = ? AND id = ?", salonID, id).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// GetByLoyaltyID looks a client up by loyalty identifier. The identifier is
// unique across the whole system, so the lookup is intentionally not
// salon-scoped.
func (r *clientRepository) GetByLoyaltyID(loyaltyID string) (*models.Client, error) {
	trimmed := strings.TrimSpace(loyaltyID)
	if trimmed == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var client models.Client
	if err := r.db.Where("loyalty_id = ?", trimmed).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) GetByPhone(salonID uint, phone string) (*models.Client, error) {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var client models.Client
	if err := r.db.Where("salon_id = ? AND phone = ?", salonID, trimmed).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) List(salonID uint, offset, limit int) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Where("salon_id = ?", salonID).
		Order("name ASC").Offset(offset).Limit(limit).Find(&clients).Error
	return clients, err
}

// Search searches clients by name or phone within a salon.
func (r *clientRepository) Search(salonID uint, query string) ([]models.Client, error) {
	var clients []models.Client
	pattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.Where("salon_id = ? AND (name LIKE ? OR phone LIKE ?)", salonID, pattern, pattern).
		Find(&clients).Error
	return clients, err
}

func (r *clientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

func (r *clientRepository) Delete(salonID, id uint) error {
	return r.db.Where("salon_id = ?", salonID).Delete(&models.Client{}, id).Error
}

func (r *clientRepository) Count(salonID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Client{}).Where("salon_id = ?", salonID).Count(&count).Error
	return count, err
}

package repository

import (
	"github.com/salonhub/salonhub/app/models"
	"gorm.io/gorm"
)

// salonRepository implements the SalonRepository interface
type salonRepository struct {
	db *gorm.DB
}

// NewSalonRepository creates a new salon repository instance
func NewSalonRepository(db *gorm.DB) SalonRepository {
	return &salonRepository{db: db}
}

func (r *salonRepository) Create(salon *models.Salon) error {
	return r.db.Create(salon).Error
}

func (r *salonRepository) GetByID(id uint) (*models.Salon, error) {
	var salon models.Salon
	if err := r.db.First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *salonRepository) GetBySlug(slug string) (*models.Salon, error) {
	var salon models.Salon
	if err := r.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *salonRepository) Update(salon *models.Salon) error {
	return r.db.Save(salon).Error
}

func (r *salonRepository) List(offset, limit int) ([]models.Salon, error) {
	var salons []models.Salon
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&salons).Error
	return salons, err
}

func (r *salonRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Salon{}).Count(&count).Error
	return count, err
}

func (r *salonRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Salon{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// RegisterWithTrial creates salon, trial license and admin account in one
// transaction. Registration must be all-or-nothing: a salon without a
// license would be locked out of every gated route.
func (r *salonRepository) RegisterWithTrial(salon *models.Salon, license *models.License, admin *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(salon).Error; err != nil {
			return err
		}
		license.SalonID = salon.ID
		if err := tx.Create(license).Error; err != nil {
			return err
		}
		admin.SalonID = salon.ID
		return tx.Create(admin).Error
	})
}

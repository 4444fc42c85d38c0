package repository

import (
	"github.com/salonhub/salonhub/app/models"
	"gorm.io/gorm"
)

// serviceRepository implements the ServiceRepository interface
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository instance
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *serviceRepository) GetByID(salonID, id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.Where("salon_id = ? AND id = ?", salonID, id).First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) List(salonID uint) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("salon_id = ?", salonID).Order("name ASC").Find(&services).Error
	return services, err
}

func (r *serviceRepository) Update(service *models.Service) error {
	return r.db.Save(service).Error
}

func (r *serviceRepository) Delete(salonID, id uint) error {
	return r.db.Where("salon_id = ?", salonID).Delete(&models.Service{}, id).Error
}

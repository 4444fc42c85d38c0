package repository

import (
	"github.com/salonhub/salonhub/app/models"
	"gorm.io/gorm"
)

// licenseRepository implements the LicenseRepository interface
type licenseRepository struct {
	db *gorm.DB
}

// NewLicenseRepository creates a new license repository instance
func NewLicenseRepository(db *gorm.DB) LicenseRepository {
	return &licenseRepository{db: db}
}

func (r *licenseRepository) Create(license *models.License) error {
	return r.db.Create(license).Error
}

func (r *licenseRepository) GetBySalonID(salonID uint) (*models.License, error) {
	var license models.License
	if err := r.db.Where("salon_id = ?", salonID).First(&license).Error; err != nil {
		return nil, err
	}
	return &license, nil
}

func (r *licenseRepository) Update(license *models.License) error {
	return r.db.Save(license).Error
}

// MarkExpired transitions an active license to expired. The WHERE clause on
// the current status makes the lazy expiry write idempotent.
func (r *licenseRepository) MarkExpired(licenseID uint) error {
	return r.db.Model(&models.License{}).
		Where("id = ? AND status = ?", licenseID, models.LicenseStatusActive).
		Update("status", models.LicenseStatusExpired).Error
}

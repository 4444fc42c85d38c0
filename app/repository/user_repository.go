package repository

import (
	"strings"
	"time"

	"github.com/salonhub/salonhub/app/models"
	"gorm.io/gorm"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByAPIKeyHash resolves an API key hash to its user.
func (r *userRepository) GetByAPIKeyHash(hash string) (*models.User, error) {
	trimmed := strings.TrimSpace(hash)
	if trimmed == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var user models.User
	if err := r.db.Where("api_key_hash = ? AND api_key_hash <> ''", trimmed).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetPlatformOwner resolves the designated platform owner account used when
// the master credential is presented.
func (r *userRepository) GetPlatformOwner() (*models.User, error) {
	var user models.User
	err := r.db.Where("role = ?", models.RolePlatformOwner).
		Order("id ASC").First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetForSalon retrieves a user scoped to a salon.
func (r *userRepository) GetForSalon(salonID, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Where("salon_id = ? AND id = ?", salonID, id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListBySalon retrieves all users of a salon.
func (r *userRepository) ListBySalon(salonID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("salon_id = ?", salonID).Order("name ASC").Find(&users).Error
	return users, err
}

// ListActiveProfessionals retrieves active bookable staff for a salon.
// Reception and admin accounts take bookings too, only platform roles and
// deactivated accounts are excluded.
func (r *userRepository) ListActiveProfessionals(salonID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("salon_id = ? AND active = ? AND role IN ?",
		salonID, true,
		[]string{models.RoleProfessional, models.RoleReception, models.RoleAdmin}).
		Order("name ASC").Find(&users).Error
	return users, err
}

// CountActiveStaff returns the number of active bookable staff for a salon.
func (r *userRepository) CountActiveStaff(salonID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("salon_id = ? AND active = ? AND role IN ?",
			salonID, true,
			[]string{models.RoleProfessional, models.RoleReception, models.RoleAdmin}).
		Count(&count).Error
	return count, err
}

// Update updates an existing user in the database
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdateLastLogin stamps the last successful login time.
func (r *userRepository) UpdateLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("last_login_at", at).Error
}

// Delete soft deletes a salon-scoped user.
func (r *userRepository) Delete(salonID, id uint) error {
	return r.db.Where("salon_id = ?", salonID).Delete(&models.User{}, id).Error
}

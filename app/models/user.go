package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleProfessional      = "professional"
	RoleReception         = "reception"
	RoleAdmin             = "admin"
	RolePlatformAssistant = "platform_assistant"
	RolePlatformOwner     = "platform_owner"
)

// User is a staff or platform account. Tenant roles belong to a salon;
// platform roles are global and carry SalonID = 0.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SalonID     uint           `gorm:"index" json:"salon_id"`
	Name        string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Email       string         `gorm:"uniqueIndex;type:varchar(200);not null" json:"email" validate:"required,email,min=5,max=200"`
	Password    string         `gorm:"type:text" json:"-" validate:"required,min=6"`
	Role        string         `gorm:"type:varchar(50);not null;default:'professional'" json:"role" validate:"oneof=professional reception admin platform_assistant platform_owner"`
	Phone       string         `gorm:"type:varchar(30)" json:"phone" validate:"max=30"`
	Active      bool           `gorm:"default:true" json:"active"`
	APIKeyHash  string         `gorm:"type:varchar(64);index" json:"-"`
	LastLoginAt *time.Time     `gorm:"type:timestamp;default:null" json:"last_login_at"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// CreateUser builds a tenant-scoped user with a hashed password.
func CreateUser(salonID uint, name, email, password, role string) (*User, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		SalonID:  salonID,
		Name:     name,
		Email:    email,
		Password: pw,
		Role:     role,
		Active:   true,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.Password)
}

// SetPassword hashes and sets a new password for the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hashedPassword
	return nil
}

// IsPlatformRole reports whether the role operates across all salons.
// Platform accounts are never blocked by tenant license state.
func (u *User) IsPlatformRole() bool {
	return u.Role == RolePlatformAssistant || u.Role == RolePlatformOwner
}

// roleRank orders roles by strictly increasing privilege. Reception and
// professional share the lowest tenant rank.
func roleRank(role string) int {
	switch role {
	case RolePlatformOwner:
		return 4
	case RolePlatformAssistant:
		return 3
	case RoleAdmin:
		return 2
	case RoleReception, RoleProfessional:
		return 1
	default:
		return 0
	}
}

// HasPrivilege reports whether role carries at least the privilege of
// required. This is the single place role policy is decided; handlers must
// not compare role strings directly.
func HasPrivilege(role, required string) bool {
	return roleRank(role) >= roleRank(required)
}

// HashAPIKey returns the hex sha256 digest stored for an API key.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

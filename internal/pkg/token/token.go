package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/internal/pkg/env"
)

// DefaultTTL is the lifetime of an issued login token.
const DefaultTTL = 24 * time.Hour

// Claims carries the resolved account identity inside a signed login token.
type Claims struct {
	UserID  uint   `json:"user_id"`
	SalonID uint   `json:"salon_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(env.GetEnv("JWT_SECRET", "salonhub-dev-secret"))
}

// Issue signs a login token for the given account.
func Issue(user *models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  user.ID,
		SalonID: user.SalonID,
		Role:    user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "salonhub",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// Parse validates a login token and returns its claims.
func Parse(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/salonhub/app/models"
)

func TestIssueAndParse(t *testing.T) {
	user := &models.User{ID: 42, SalonID: 7, Role: models.RoleAdmin}

	signed, err := Issue(user, DefaultTTL)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, uint(7), claims.SalonID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "salonhub", claims.Issuer)
}

func TestParseExpiredToken(t *testing.T) {
	user := &models.User{ID: 1, SalonID: 1, Role: models.RoleReception}

	signed, err := Issue(user, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(signed)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("not.a.token")
	assert.Error(t, err)
}

func TestParseTamperedToken(t *testing.T) {
	user := &models.User{ID: 1, SalonID: 1, Role: models.RoleProfessional}

	signed, err := Issue(user, DefaultTTL)
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = Parse(tampered)
	assert.Error(t, err)
}

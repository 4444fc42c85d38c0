package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasPrivilege(t *testing.T) {
	tests := []struct {
		role     string
		required string
		want     bool
	}{
		{RolePlatformOwner, RolePlatformAssistant, true},
		{RolePlatformAssistant, RolePlatformAssistant, true},
		{RoleAdmin, RolePlatformAssistant, false},
		{RoleAdmin, RoleAdmin, true},
		{RoleReception, RoleAdmin, false},
		{RoleReception, RoleProfessional, true},
		{RoleProfessional, RoleReception, true},
		{"", RoleProfessional, false},
		{"unknown", RoleProfessional, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, HasPrivilege(tc.role, tc.required), "%s >= %s", tc.role, tc.required)
	}
}

func TestIsPlatformRole(t *testing.T) {
	assert.True(t, (&User{Role: RolePlatformOwner}).IsPlatformRole())
	assert.True(t, (&User{Role: RolePlatformAssistant}).IsPlatformRole())
	assert.False(t, (&User{Role: RoleAdmin}).IsPlatformRole())
	assert.False(t, (&User{Role: RoleProfessional}).IsPlatformRole())
}

func TestCreateUserHashesPassword(t *testing.T) {
	u, err := CreateUser(1, "Maria Lopez", "maria@example.com", "secret123", RoleAdmin)
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", u.Password)
	assert.True(t, u.CheckPassword("secret123"))
	assert.False(t, u.CheckPassword("wrong"))
	assert.True(t, u.Active)
}

func TestCreateUserValidation(t *testing.T) {
	_, err := CreateUser(1, "X", "maria@example.com", "secret123", RoleAdmin)
	assert.Error(t, err, "name too short")

	_, err = CreateUser(1, "Maria", "not-an-email", "secret123", RoleAdmin)
	assert.Error(t, err, "bad email")

	_, err = CreateUser(1, "Maria", "maria@example.com", "secret123", "superuser")
	assert.Error(t, err, "unknown role")
}

func TestHashAPIKeyIsStable(t *testing.T) {
	a := HashAPIKey("key-one")
	b := HashAPIKey("key-one")
	c := HashAPIKey("key-two")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidDate(t *testing.T) {
	assert.True(t, validDate("2026-08-30"))
	assert.True(t, validDate("2026-02-28"))

	assert.False(t, validDate("2026-13-01"))
	assert.False(t, validDate("30-08-2026"))
	assert.False(t, validDate("2026-8-30"))
	assert.False(t, validDate(""))
}

func TestJSONErrorEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return validationFailed(c, "bad input")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "validation_failed", payload.Error)
	assert.Equal(t, "bad input", payload.Message)
}

func TestQueryIntAndParamUint(t *testing.T) {
	app := fiber.New()
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, err := paramUint(c, "id")
		if err != nil {
			return validationFailed(c, "Invalid id")
		}
		return c.JSON(fiber.Map{"id": id, "limit": queryInt(c, "limit", 50)})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/items/12?limit=5", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		ID    uint `json:"id"`
		Limit int  `json:"limit"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, uint(12), payload.ID)
	assert.Equal(t, 5, payload.Limit)

	resp, err = app.Test(httptest.NewRequest("GET", "/items/abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/items/12?limit=abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

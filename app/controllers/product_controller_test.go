package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
)

// fakeProductRepo keeps products in memory and applies the same stock guard
// as the real repository.
type fakeProductRepo struct {
	products map[uint]*models.Product
}

func (r *fakeProductRepo) Create(p *models.Product) error { return nil }

func (r *fakeProductRepo) GetByID(salonID, id uint) (*models.Product, error) {
	if p, ok := r.products[id]; ok && p.SalonID == salonID {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProductRepo) List(salonID uint) ([]models.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(p *models.Product) error              { return nil }
func (r *fakeProductRepo) Delete(salonID, id uint) error               { return nil }

func (r *fakeProductRepo) AdjustStock(salonID, id uint, delta int) error {
	p, ok := r.products[id]
	if !ok || p.SalonID != salonID {
		return repository.ErrProductNotFound
	}
	if p.Stock+delta < 0 {
		return repository.ErrInsufficientStock
	}
	p.Stock += delta
	return nil
}

func newProductTestApp(products *fakeProductRepo) *fiber.App {
	ctrl := NewProductController(products)
	app := newTenantApp(&models.User{ID: 1, SalonID: 1, Role: models.RoleAdmin, Active: true})
	app.Post("/products/:id/stock", ctrl.HandleAdjustStock)
	return app
}

func TestHandleAdjustStock(t *testing.T) {
	products := &fakeProductRepo{products: map[uint]*models.Product{
		3: {ID: 3, SalonID: 1, Name: "Shampoo", Stock: 5},
	}}
	app := newProductTestApp(products)

	req := httptest.NewRequest("POST", "/products/3/stock", strings.NewReader(`{"delta":-2}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, products.products[3].Stock)
}

func TestHandleAdjustStockInsufficient(t *testing.T) {
	products := &fakeProductRepo{products: map[uint]*models.Product{
		3: {ID: 3, SalonID: 1, Name: "Shampoo", Stock: 1},
	}}
	app := newProductTestApp(products)

	req := httptest.NewRequest("POST", "/products/3/stock", strings.NewReader(`{"delta":-2}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, 1, products.products[3].Stock)
}

func TestHandleAdjustStockUnknownProduct(t *testing.T) {
	products := &fakeProductRepo{products: map[uint]*models.Product{}}
	app := newProductTestApp(products)

	// an unknown product is a 404, not a stock conflict
	req := httptest.NewRequest("POST", "/products/99/stock", strings.NewReader(`{"delta":-1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

package repository

import (
	"errors"

	"github.com/salonhub/salonhub/app/models"
	"gorm.io/gorm"
)

// ErrInsufficientStock is returned when a stock adjustment would drive the
// quantity below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrProductNotFound is returned when a stock adjustment names a product the
// salon does not have.
var ErrProductNotFound = errors.New("product not found")

// productRepository implements the ProductRepository interface
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(salonID, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("salon_id = ? AND id = ?", salonID, id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(salonID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("salon_id = ?", salonID).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(salonID, id uint) error {
	return r.db.Where("salon_id = ?", salonID).Delete(&models.Product{}, id).Error
}

// AdjustStock applies a delta guarded against negative stock in a single
// conditional UPDATE.
func (r *productRepository) AdjustStock(salonID, id uint, delta int) error {
	return adjustStock(r.db, salonID, id, delta)
}

func adjustStock(db *gorm.DB, salonID, id uint, delta int) error {
	res := db.Model(&models.Product{}).
		Where("salon_id = ? AND id = ? AND stock + ? >= 0", salonID, id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Zero rows means either the guard blocked the delta or the product
		// does not exist; look again to tell the two apart.
		var count int64
		if err := db.Model(&models.Product{}).Where("salon_id = ? AND id = ?", salonID, id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrProductNotFound
		}
		return ErrInsufficientStock
	}
	return nil
}

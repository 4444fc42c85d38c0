package repository

import (
	"time"

	"github.com/salonhub/salonhub/app/models"
	"gorm.io/gorm"
)

// transactionRepository implements the TransactionRepository interface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(txn *models.Transaction) error {
	return r.db.Create(txn).Error
}

func (r *transactionRepository) List(salonID uint, offset, limit int) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.db.Where("salon_id = ?", salonID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&txns).Error
	return txns, err
}

func (r *transactionRepository) ListByKind(salonID uint, kind string, offset, limit int) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.db.Where("salon_id = ? AND kind = ?", salonID, kind).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&txns).Error
	return txns, err
}

// SumByKind totals ledger amounts of one kind over a time window.
func (r *transactionRepository) SumByKind(salonID uint, kind string, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.Transaction{}).
		Where("salon_id = ? AND kind = ? AND created_at BETWEEN ? AND ?", salonID, kind, from, to).
		Select("COALESCE(SUM(amount), 0)").Row().Scan(&total)
	return total, err
}

package repositories

import (
	"github.com/tontap/ton_tap_bot/internal/models"
	"github.com/tontap/ton_tap_bot/pkg/errors"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Log appends one transaction record. The log is write-once: there is no
// update or delete path anywhere in this package.
func (r *TransactionRepository) Log(userID uint, amount float64, txType, description string) error {
	transaction := &models.Transaction{
		UserID:          userID,
		Amount:          amount,
		TransactionType: txType,
		Description:     description,
	}

	if err := r.db.Create(transaction).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create transaction")
	}
	return nil
}

// HistoryByUser retrieves the user's transaction history, newest first
func (r *TransactionRepository) HistoryByUser(userID uint, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	result := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get transaction history")
	}

	return transactions, nil
}

// LogTraffic records a web claim attempt against the traffic log
func (r *TransactionRepository) LogTraffic(entry *models.TrafficLog) error {
	if err := r.db.Create(entry).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create traffic log")
	}
	return nil
}

package repositories

import (
	"fmt"

	"github.com/tontap/ton_tap_bot/internal/models"
	"github.com/tontap/ton_tap_bot/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

// AddReward appends a reward record for the user. The user row is locked for
// the duration so a concurrent claim for the same user serializes here.
func (r *RewardRepository) AddReward(userID uint, taskID string, amount float64, status string) (*models.Reward, error) {
	if amount < 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, fmt.Sprintf("negative reward amount: %v", amount))
	}

	reward := &models.Reward{
		UserID: userID,
		TaskID: taskID,
		Amount: amount,
		Status: status,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.New(errors.ErrCodeNotFound, "user not found")
			}
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to get user")
		}

		if err := tx.Create(reward).Error; err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create reward")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reward, nil
}

// SumRewards returns the total amount of the user's rewards with the given
// status. Users with no matching rewards sum to zero, not an error.
func (r *RewardRepository) SumRewards(userID uint, status string) (float64, error) {
	var total float64
	result := r.db.Model(&models.Reward{}).
		Where("user_id = ? AND status = ?", userID, status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to sum rewards")
	}

	return total, nil
}

// SettleRewards transitions all of the user's pending rewards to completed
// and returns how many were settled.
func (r *RewardRepository) SettleRewards(userID uint) (int64, error) {
	result := r.db.Model(&models.Reward{}).
		Where("user_id = ? AND status = ?", userID, models.RewardStatusPending).
		Update("status", models.RewardStatusCompleted)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to settle rewards")
	}

	return result.RowsAffected, nil
}

// ConsumeRewards marks all of the user's completed rewards withdrawn so the
// same balance cannot be requested twice. Returns how many were consumed.
func (r *RewardRepository) ConsumeRewards(userID uint) (int64, error) {
	result := r.db.Model(&models.Reward{}).
		Where("user_id = ? AND status = ?", userID, models.RewardStatusCompleted).
		Update("status", models.RewardStatusWithdrawn)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to consume rewards")
	}

	return result.RowsAffected, nil
}

// ListByUser returns the user's reward history, newest first
func (r *RewardRepository) ListByUser(userID uint, limit int) ([]models.Reward, error) {
	var rewards []models.Reward
	result := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rewards)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to list rewards")
	}

	return rewards, nil
}

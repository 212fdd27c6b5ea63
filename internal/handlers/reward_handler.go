package handlers

import (
	"github.com/tontap/ton_tap_bot/internal/models"
	"github.com/tontap/ton_tap_bot/pkg/logger"
)

// ScoreToTON converts a raw game score to a TON amount using the configured
// divisor (score 3000 at the default divisor is 3.0 TON).
func ScoreToTON(score int64, tapsPerTON int64) float64 {
	if score <= 0 || tapsPerTON <= 0 {
		return 0
	}
	return float64(score) / float64(tapsPerTON)
}

// CreditGameReward records a game payout as an already settled reward plus a
// transaction log entry. Game rewards skip the pending stage; only task
// rewards wait for settlement.
func (h *HandlerManager) CreditGameReward(user *models.User, amount float64, taps int64) error {
	if _, err := h.RewardRepo.AddReward(user.ID, "", amount, models.RewardStatusCompleted); err != nil {
		return err
	}
	if err := h.TxRepo.Log(user.ID, amount, models.TxTypeGameReward, "tap game score"); err != nil {
		// The reward row is already in; a missing log line is not worth
		// failing the claim over.
		logger.Error("Failed to log game reward transaction", "user_id", user.TelegramID, "error", err)
	}

	logger.Info("Game reward credited", "user_id", user.TelegramID, "taps", taps, "amount", amount)
	return nil
}

// CreditTaskReward records a task payout as a pending reward awaiting
// settlement.
func (h *HandlerManager) CreditTaskReward(user *models.User, taskID string, amount float64) error {
	if _, err := h.RewardRepo.AddReward(user.ID, taskID, amount, models.RewardStatusPending); err != nil {
		return err
	}
	if err := h.TxRepo.Log(user.ID, amount, models.TxTypeTaskReward, "task "+taskID); err != nil {
		logger.Error("Failed to log task reward transaction", "user_id", user.TelegramID, "error", err)
	}
	return nil
}

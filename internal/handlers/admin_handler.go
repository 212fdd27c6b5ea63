package handlers

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tontap/ton_tap_bot/internal/models"
	"github.com/tontap/ton_tap_bot/pkg/logger"
	"github.com/tontap/ton_tap_bot/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// IsAdmin reports whether the telegram id is the configured super admin.
func (h *HandlerManager) IsAdmin(telegramID int64) bool {
	return h.Config.SuperAdminTgID != 0 && telegramID == h.Config.SuperAdminTgID
}

// HandleUsersCommand replies with a short roster summary (admin only)
func (h *HandlerManager) HandleUsersCommand(userID int64, bot BotInterface) {
	if !h.IsAdmin(userID) {
		return
	}

	users, err := h.UserRepo.ListUsers()
	if err != nil {
		logger.Error("Failed to list users", "error", err)
		bot.SendMessage(userID, "Failed to list users.", nil)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "👥 %d users\n\n", len(users))
	for i, u := range users {
		if i >= 30 {
			fmt.Fprintf(&sb, "… and %d more (use /export)\n", len(users)-i)
			break
		}
		wallet := "—"
		if u.HasWallet() {
			wallet = u.TonAddress[:6] + "…"
		}
		fmt.Fprintf(&sb, "%d | %s | %s | %s\n", u.TelegramID, u.Username, u.Language, wallet)
	}

	bot.SendMessage(userID, sb.String(), nil)
}

// HandleSettleCommand settles a user's pending rewards: /settle <telegram_id>
func (h *HandlerManager) HandleSettleCommand(userID int64, args string, bot BotInterface) {
	if !h.IsAdmin(userID) {
		return
	}

	targetID, err := strconv.ParseInt(strings.TrimSpace(utils.NormalizePersianNumbers(args)), 10, 64)
	if err != nil {
		bot.SendMessage(userID, "Usage: /settle <telegram_id>", nil)
		return
	}

	target, err := h.UserRepo.GetByTelegramID(targetID)
	if err != nil {
		bot.SendMessage(userID, fmt.Sprintf("No user with id %d.", targetID), nil)
		return
	}

	count, err := h.RewardRepo.SettleRewards(target.ID)
	if err != nil {
		logger.Error("Failed to settle rewards", "target_id", targetID, "error", err)
		bot.SendMessage(userID, "Settlement failed.", nil)
		return
	}

	logger.Info("Rewards settled", "admin_id", userID, "target_id", targetID, "count", count)
	bot.SendMessage(userID, fmt.Sprintf("✅ Settled %d pending rewards for %s.", count, target.Username), nil)
}

// HandleRewardCommand grants a pending task reward:
// /reward <telegram_id> <amount> [task_id]
func (h *HandlerManager) HandleRewardCommand(userID int64, args string, bot BotInterface) {
	if !h.IsAdmin(userID) {
		return
	}

	fields := strings.Fields(utils.NormalizePersianNumbers(args))
	if len(fields) < 2 {
		bot.SendMessage(userID, "Usage: /reward <telegram_id> <amount> [task_id]", nil)
		return
	}

	targetID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		bot.SendMessage(userID, "Usage: /reward <telegram_id> <amount> [task_id]", nil)
		return
	}
	amount, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || amount < 0 {
		bot.SendMessage(userID, "Amount must be a non-negative number.", nil)
		return
	}
	taskID := "manual"
	if len(fields) > 2 {
		taskID = fields[2]
	}

	target, err := h.UserRepo.GetByTelegramID(targetID)
	if err != nil {
		bot.SendMessage(userID, fmt.Sprintf("No user with id %d.", targetID), nil)
		return
	}

	if err := h.CreditTaskReward(target, taskID, amount); err != nil {
		logger.Error("Failed to grant task reward", "target_id", targetID, "error", err)
		bot.SendMessage(userID, "Grant failed.", nil)
		return
	}

	logger.Info("Task reward granted", "admin_id", userID, "target_id", targetID, "task_id", taskID, "amount", amount)
	bot.SendMessage(userID, fmt.Sprintf("✅ Granted %s a pending reward of %s TON (%s). Use /settle %d to settle.",
		target.Username, models.FormatTON(amount), taskID, targetID), nil)
}

// HandleExportCommand builds an Excel workbook of the full user ledger and
// sends it as a document (admin only).
func (h *HandlerManager) HandleExportCommand(userID int64, bot BotInterface) {
	if !h.IsAdmin(userID) {
		return
	}

	data, err := h.buildLedgerWorkbook()
	if err != nil {
		logger.Error("Failed to build ledger export", "error", err)
		bot.SendMessage(userID, "Export failed.", nil)
		return
	}

	filename := fmt.Sprintf("ledger_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	bot.SendDocument(userID, filename, data, "📒 User ledger export")
}

func (h *HandlerManager) buildLedgerWorkbook() ([]byte, error) {
	users, err := h.UserRepo.ListUsers()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Users"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Telegram ID", "Username", "Language", "Wallet", "Consent", "Claimable TON", "Pending TON", "Withdrawn TON", "Joined"}
	for i, hname := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hname)
	}

	for row, u := range users {
		completed, err := h.RewardRepo.SumRewards(u.ID, models.RewardStatusCompleted)
		if err != nil {
			return nil, err
		}
		pending, err := h.RewardRepo.SumRewards(u.ID, models.RewardStatusPending)
		if err != nil {
			return nil, err
		}
		withdrawn, err := h.RewardRepo.SumRewards(u.ID, models.RewardStatusWithdrawn)
		if err != nil {
			return nil, err
		}

		values := []interface{}{
			u.TelegramID,
			u.Username,
			u.Language,
			u.TonAddress,
			u.ConsentAgreed,
			completed,
			pending,
			withdrawn,
			u.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

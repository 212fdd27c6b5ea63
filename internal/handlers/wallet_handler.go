package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/tontap/ton_tap_bot/internal/i18n"
	"github.com/tontap/ton_tap_bot/internal/models"
	"github.com/tontap/ton_tap_bot/pkg/logger"
	"github.com/tontap/ton_tap_bot/pkg/utils"
)

// HandleWallet shows the wallet on file, or starts the address conversation
// when none is bound yet.
func (h *HandlerManager) HandleWallet(userID int64, session *UserSession, bot BotInterface) {
	user, err := h.UserRepo.GetByTelegramID(userID)
	if err != nil {
		bot.SendMessage(userID, i18n.T(h.Config.DefaultLanguage, i18n.KeyErrorGeneric), nil)
		return
	}
	lang := h.lang(user)

	if user.HasWallet() {
		bot.SendMessage(userID, i18n.T(lang, i18n.KeyWalletCurrent, user.TonAddress), bot.GetMainMenuKeyboard(lang))
		return
	}

	session.State = StateAwaitingAddress
	bot.SendMessage(userID, i18n.T(lang, i18n.KeyWalletPrompt), nil)
}

// HandleWithdraw runs the withdrawal flow: consent gate, address gate, then
// the balance threshold check on the raw completed sum.
func (h *HandlerManager) HandleWithdraw(userID int64, session *UserSession, bot BotInterface) {
	user, err := h.UserRepo.GetByTelegramID(userID)
	if err != nil {
		bot.SendMessage(userID, i18n.T(h.Config.DefaultLanguage, i18n.KeyErrorGeneric), nil)
		return
	}
	lang := h.lang(user)

	if !user.ConsentAgreed {
		bot.SendMessage(userID, i18n.T(lang, i18n.KeyConsentPrompt), bot.GetConsentKeyboard(lang))
		return
	}

	if !user.HasWallet() {
		session.State = StateAwaitingAddress
		bot.SendMessage(userID, i18n.T(lang, i18n.KeyWalletPrompt), nil)
		return
	}

	balance, err := h.RewardRepo.SumRewards(user.ID, models.RewardStatusCompleted)
	if err != nil {
		logger.Error("Failed to sum rewards", "user_id", userID, "error", err)
		bot.SendMessage(userID, i18n.T(lang, i18n.KeyErrorGeneric), nil)
		return
	}

	// Compare the raw sum, round only for display.
	if balance < h.Config.MinWithdrawTON {
		bot.SendMessage(userID, i18n.T(lang, i18n.KeyWithdrawInsufficent,
			models.FormatTON(balance), models.FormatTON(h.Config.MinWithdrawTON)), bot.GetMainMenuKeyboard(lang))
		return
	}

	// The per-user worker ordering means no second withdraw for this user can
	// run between the sum and the consume.
	if _, err := h.RewardRepo.ConsumeRewards(user.ID); err != nil {
		logger.Error("Failed to consume rewards", "user_id", userID, "error", err)
		bot.SendMessage(userID, i18n.T(lang, i18n.KeyErrorGeneric), nil)
		return
	}

	if err := h.TxRepo.Log(user.ID, -balance, models.TxTypeWithdrawalRequest, "withdrawal requested via bot"); err != nil {
		logger.Error("Failed to log withdrawal request", "user_id", userID, "error", err)
	}

	logger.Info("Withdrawal requested", "user_id", userID, "amount", balance, "address", user.TonAddress)
	bot.SendMessage(userID, i18n.T(lang, i18n.KeyWithdrawRequested,
		models.FormatTON(balance), user.TonAddress), bot.GetMainMenuKeyboard(lang))
}

// HandleAddressInput consumes a message while the session is in
// awaiting_address: a matching address is saved and the state cleared;
// anything else re-prompts and keeps the state.
func (h *HandlerManager) HandleAddressInput(message *tgbotapi.Message, session *UserSession, bot BotInterface) {
	userID := message.From.ID
	text := utils.TrimZeroWidth(message.Text)

	user, _ := h.UserRepo.GetByTelegramID(userID)
	lang := h.lang(user)

	if !models.ValidTonAddress(text) {
		bot.SendMessage(userID, i18n.T(lang, i18n.KeyWalletInvalid), nil)
		return
	}

	if err := h.UserRepo.UpdateTonAddress(userID, text); err != nil {
		logger.Error("Failed to save address", "user_id", userID, "error", err)
		bot.SendMessage(userID, i18n.T(lang, i18n.KeyErrorGeneric), nil)
		return
	}

	session.State = StateNone
	bot.SendMessage(userID, i18n.T(lang, i18n.KeyWalletSaved, text), bot.GetMainMenuKeyboard(lang))
}

package handlers

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/tontap/ton_tap_bot/internal/i18n"
	"github.com/tontap/ton_tap_bot/internal/models"
	"github.com/tontap/ton_tap_bot/internal/security"
	"github.com/tontap/ton_tap_bot/pkg/logger"
)

// HandleStart gets-or-creates the user record and greets them. First contact
// additionally shows the consent prompt.
func (h *HandlerManager) HandleStart(message *tgbotapi.Message, session *UserSession, bot BotInterface) {
	userID := message.From.ID

	username := message.From.UserName
	if username == "" {
		username = message.From.FirstName
	}
	username = security.SanitizeName(username)

	existing, _ := h.UserRepo.GetByTelegramID(userID)

	user, err := h.UserRepo.GetOrCreate(userID, username, h.Config.DefaultLanguage)
	if err != nil {
		logger.Error("Failed to get or create user", "user_id", userID, "error", err)
		bot.SendMessage(userID, i18n.T(h.Config.DefaultLanguage, i18n.KeyErrorGeneric), nil)
		return
	}

	session.State = StateNone
	lang := h.lang(user)

	if existing == nil {
		logger.Info("New user registered", "user_id", userID, "username", username)
		bot.SendMessage(userID, i18n.T(lang, i18n.KeyWelcome, user.Username), h.gameKeyboard(user, bot))
		bot.SendMessage(userID, i18n.T(lang, i18n.KeyConsentPrompt), bot.GetConsentKeyboard(lang))
		return
	}

	bot.SendMessage(userID, i18n.T(lang, i18n.KeyWelcomeBack, user.Username), bot.GetMainMenuKeyboard(lang))
}

// ShowBalance replies with the claimable (completed) reward sum
func (h *HandlerManager) ShowBalance(userID int64, bot BotInterface) {
	user, err := h.UserRepo.GetByTelegramID(userID)
	if err != nil {
		bot.SendMessage(userID, i18n.T(h.Config.DefaultLanguage, i18n.KeyErrorGeneric), nil)
		return
	}

	balance, err := h.RewardRepo.SumRewards(user.ID, models.RewardStatusCompleted)
	if err != nil {
		logger.Error("Failed to sum rewards", "user_id", userID, "error", err)
		bot.SendMessage(userID, i18n.T(h.lang(user), i18n.KeyErrorGeneric), nil)
		return
	}

	bot.SendMessage(userID, i18n.T(h.lang(user), i18n.KeyBalance, models.FormatTON(balance)), bot.GetMainMenuKeyboard(h.lang(user)))
}

// ShowStats replies with claimable and pending sums plus the wallet on file
func (h *HandlerManager) ShowStats(userID int64, bot BotInterface) {
	user, err := h.UserRepo.GetByTelegramID(userID)
	if err != nil {
		bot.SendMessage(userID, i18n.T(h.Config.DefaultLanguage, i18n.KeyErrorGeneric), nil)
		return
	}
	lang := h.lang(user)

	completed, err := h.RewardRepo.SumRewards(user.ID, models.RewardStatusCompleted)
	if err != nil {
		logger.Error("Failed to sum completed rewards", "user_id", userID, "error", err)
		bot.SendMessage(userID, i18n.T(lang, i18n.KeyErrorGeneric), nil)
		return
	}
	pending, err := h.RewardRepo.SumRewards(user.ID, models.RewardStatusPending)
	if err != nil {
		logger.Error("Failed to sum pending rewards", "user_id", userID, "error", err)
		bot.SendMessage(userID, i18n.T(lang, i18n.KeyErrorGeneric), nil)
		return
	}

	wallet := "—"
	if user.HasWallet() {
		wallet = user.TonAddress
	}

	bot.SendMessage(userID, i18n.T(lang, i18n.KeyStats, models.FormatTON(completed), models.FormatTON(pending), wallet), bot.GetMainMenuKeyboard(lang))
}

// HandlePlay sends the game link button with a fresh session token
func (h *HandlerManager) HandlePlay(userID int64, bot BotInterface) {
	user, err := h.UserRepo.GetByTelegramID(userID)
	if err != nil {
		bot.SendMessage(userID, i18n.T(h.Config.DefaultLanguage, i18n.KeyErrorGeneric), nil)
		return
	}

	bot.SendMessage(userID, i18n.T(h.lang(user), i18n.KeyPlayPrompt), h.gameKeyboard(user, bot))
}

// gameKeyboard builds the inline keyboard carrying the signed game URL.
func (h *HandlerManager) gameKeyboard(user *models.User, bot BotInterface) interface{} {
	gameURL, err := h.GameURL(user)
	if err != nil {
		logger.Error("Failed to generate game token", "user_id", user.TelegramID, "error", err)
		return nil
	}
	return bot.GetGameKeyboard(h.lang(user), gameURL)
}

// GameURL returns the companion game page URL with the user's session token.
func (h *HandlerManager) GameURL(user *models.User) (string, error) {
	token, err := security.GenerateGameToken(user.ID, user.TelegramID, h.Config.JWTSecret, h.Config.GameTokenTTL())
	if err != nil {
		return "", err
	}
	base := strings.TrimSuffix(h.Config.WebAppBaseURL, "/")
	return fmt.Sprintf("%s/game?token=%s", base, token), nil
}

// HandleCancel confirms an aborted conversation in the user's language
func (h *HandlerManager) HandleCancel(userID int64, bot BotInterface) {
	user, _ := h.UserRepo.GetByTelegramID(userID)
	lang := h.lang(user)
	bot.SendMessage(userID, i18n.T(lang, i18n.KeyCancelled), bot.GetMainMenuKeyboard(lang))
}

// ShowHelp replies with the command overview
func (h *HandlerManager) ShowHelp(userID int64, bot BotInterface) {
	user, _ := h.UserRepo.GetByTelegramID(userID)
	lang := h.lang(user)
	bot.SendMessage(userID, i18n.T(lang, i18n.KeyHelp), bot.GetMainMenuKeyboard(lang))
}

// ShowLanguageMenu sends the language picker
func (h *HandlerManager) ShowLanguageMenu(userID int64, bot BotInterface) {
	user, _ := h.UserRepo.GetByTelegramID(userID)
	bot.SendMessage(userID, i18n.T(h.lang(user), i18n.KeyLanguagePrompt), bot.GetLanguageKeyboard())
}

// HandleLanguageCallback persists an inline language choice (callback data
// "lang_<code>").
func (h *HandlerManager) HandleLanguageCallback(query *tgbotapi.CallbackQuery, bot BotInterface) {
	userID := query.From.ID
	code := strings.TrimPrefix(query.Data, "lang_")

	if err := h.UserRepo.UpdateLanguage(userID, code); err != nil {
		logger.Warn("Failed to update language", "user_id", userID, "code", code, "error", err)
		bot.AnswerCallbackQuery(query.ID, i18n.T(h.Config.DefaultLanguage, i18n.KeyErrorGeneric), true)
		return
	}

	bot.AnswerCallbackQuery(query.ID, "", false)
	if query.Message != nil {
		bot.DeleteMessage(userID, query.Message.MessageID)
	}
	bot.SendMessage(userID, i18n.T(code, i18n.KeyLanguageSet), bot.GetMainMenuKeyboard(code))
}

// HandleConsentCallback records the one-time consent confirmation
func (h *HandlerManager) HandleConsentCallback(query *tgbotapi.CallbackQuery, bot BotInterface) {
	userID := query.From.ID

	if err := h.UserRepo.UpdateConsent(userID, true); err != nil {
		logger.Warn("Failed to update consent", "user_id", userID, "error", err)
		bot.AnswerCallbackQuery(query.ID, i18n.T(h.Config.DefaultLanguage, i18n.KeyErrorGeneric), true)
		return
	}

	user, _ := h.UserRepo.GetByTelegramID(userID)
	lang := h.lang(user)

	bot.AnswerCallbackQuery(query.ID, "", false)
	if query.Message != nil {
		bot.DeleteMessage(userID, query.Message.MessageID)
	}
	bot.SendMessage(userID, i18n.T(lang, i18n.KeyConsentDone), bot.GetMainMenuKeyboard(lang))
}

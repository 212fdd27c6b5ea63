package telegram

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/tontap/ton_tap_bot/internal/config"
	"github.com/tontap/ton_tap_bot/internal/handlers"
	"github.com/tontap/ton_tap_bot/internal/i18n"
	"github.com/tontap/ton_tap_bot/internal/middleware"
	"github.com/tontap/ton_tap_bot/pkg/logger"
)

const workerCount = 10

type Bot struct {
	api      *tgbotapi.BotAPI
	config   *config.Config
	handlers *handlers.HandlerManager
	limiter  *middleware.RateLimiter

	// User sessions for conversation state
	sessions map[int64]*handlers.UserSession
	mu       sync.RWMutex

	// Worker pool for parallel processing; updates are hashed by user id so
	// each user's updates are handled in order by a single worker.
	workerChans []chan tgbotapi.Update
}

func InitBot(cfg *config.Config, hm *handlers.HandlerManager, limiter *middleware.RateLimiter) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	if cfg.AppEnv == "development" {
		api.Debug = true
	}

	logger.Info("Authorized on account", "username", api.Self.UserName)

	bot := &Bot{
		api:         api,
		config:      cfg,
		handlers:    hm,
		limiter:     limiter,
		sessions:    make(map[int64]*handlers.UserSession),
		workerChans: make([]chan tgbotapi.Update, workerCount),
	}

	for i := 0; i < workerCount; i++ {
		bot.workerChans[i] = make(chan tgbotapi.Update, 100)
		go bot.startWorker(bot.workerChans[i])
	}

	go bot.startUpdateListener()

	return bot, nil
}

func (b *Bot) startUpdateListener() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for {
		logger.Info("Starting update listener...")
		updates := b.api.GetUpdatesChan(u)

		for update := range updates {
			var userID int64
			if update.Message != nil {
				userID = update.Message.From.ID
			} else if update.CallbackQuery != nil {
				userID = update.CallbackQuery.From.ID
			}

			if userID != 0 {
				// Hashed dispatch to workers to ensure per-user ordered processing
				workerIdx := userID % int64(len(b.workerChans))
				if workerIdx < 0 {
					workerIdx = -workerIdx
				}
				b.workerChans[workerIdx] <- update
			} else {
				go b.handleUpdate(update)
			}
		}

		logger.Warn("Update channel closed. Restarting in 5 seconds...")
		time.Sleep(5 * time.Second)
	}
}

func (b *Bot) startWorker(ch chan tgbotapi.Update) {
	for update := range ch {
		b.handleUpdate(update)
	}
}

// failureTargets extracts where a failure notice for update must go: the chat
// to message and, for callback queries, the query to answer so the client's
// loading spinner clears.
func failureTargets(update tgbotapi.Update) (chatID int64, callbackID string) {
	if update.Message != nil {
		chatID = update.Message.From.ID
	}
	if update.CallbackQuery != nil {
		chatID = update.CallbackQuery.From.ID
		callbackID = update.CallbackQuery.ID
	}
	return chatID, callbackID
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic in handleUpdate", "error", r)
			chatID, callbackID := failureTargets(update)
			if callbackID != "" {
				b.AnswerCallbackQuery(callbackID, i18n.T(b.config.DefaultLanguage, i18n.KeyErrorGeneric), true)
			}
			if chatID != 0 {
				b.sendMessage(chatID, i18n.T(b.config.DefaultLanguage, i18n.KeyErrorGeneric), nil)
			}
		}
	}()

	if update.Message != nil {
		b.handleMessage(update.Message)
	} else if update.CallbackQuery != nil {
		b.handleCallbackQuery(update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	userID := message.From.ID

	if !b.limiter.CheckUserLimit(userID) {
		logger.Debug("User rate limited", "user_id", userID)
		b.sendMessage(userID, i18n.T(b.config.DefaultLanguage, i18n.KeyRateLimited), nil)
		return
	}

	logger.Debug("Received message", "user_id", userID, "text", message.Text)

	session := b.getSession(userID)

	if message.IsCommand() {
		b.handleCommand(message, session)
		return
	}

	// Conversation state: the next plain message is a wallet address
	if session.State == handlers.StateAwaitingAddress {
		b.handlers.HandleAddressInput(message, session, b)
		return
	}

	// Unknown plain text: show the menu
	b.handlers.ShowHelp(userID, b)
}

func (b *Bot) handleCommand(message *tgbotapi.Message, session *handlers.UserSession) {
	userID := message.From.ID

	switch message.Command() {
	case "start":
		// Always clear session on start to prevent stuck states
		b.clearSession(userID)
		b.handlers.HandleStart(message, b.getSession(userID), b)

	case "balance":
		b.handlers.ShowBalance(userID, b)

	case "stats":
		b.handlers.ShowStats(userID, b)

	case "play":
		b.handlers.HandlePlay(userID, b)

	case "wallet":
		b.handlers.HandleWallet(userID, session, b)

	case "withdraw":
		b.handlers.HandleWithdraw(userID, session, b)

	case "language":
		b.handlers.ShowLanguageMenu(userID, b)

	case "help":
		b.handlers.ShowHelp(userID, b)

	case "cancel":
		b.clearSession(userID)
		b.handlers.HandleCancel(userID, b)

	case "users":
		b.handlers.HandleUsersCommand(userID, b)

	case "settle":
		b.handlers.HandleSettleCommand(userID, message.CommandArguments(), b)

	case "reward":
		b.handlers.HandleRewardCommand(userID, message.CommandArguments(), b)

	case "export":
		b.handlers.HandleExportCommand(userID, b)

	default:
		b.handlers.ShowHelp(userID, b)
	}
}

func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	data := query.Data

	if !b.limiter.CheckUserLimit(userID) {
		b.AnswerCallbackQuery(query.ID, i18n.T(b.config.DefaultLanguage, i18n.KeyRateLimited), false)
		return
	}

	session := b.getSession(userID)

	if strings.HasPrefix(data, CallbackLangPrefix) {
		b.handlers.HandleLanguageCallback(query, b)
		return
	}

	switch data {
	case CallbackConsentAgree:
		b.handlers.HandleConsentCallback(query, b)

	case CallbackMenuPlay:
		b.AnswerCallbackQuery(query.ID, "", false)
		b.handlers.HandlePlay(userID, b)

	case CallbackMenuBalance:
		b.AnswerCallbackQuery(query.ID, "", false)
		b.handlers.ShowBalance(userID, b)

	case CallbackMenuWallet:
		b.AnswerCallbackQuery(query.ID, "", false)
		b.handlers.HandleWallet(userID, session, b)

	case CallbackMenuWithdraw:
		b.AnswerCallbackQuery(query.ID, "", false)
		b.handlers.HandleWithdraw(userID, session, b)

	case CallbackMenuLanguage:
		b.AnswerCallbackQuery(query.ID, "", false)
		b.handlers.ShowLanguageMenu(userID, b)

	case CallbackMenuHelp:
		b.AnswerCallbackQuery(query.ID, "", false)
		b.handlers.ShowHelp(userID, b)

	default:
		b.AnswerCallbackQuery(query.ID, "", false)
	}
}

func (b *Bot) getSession(userID int64) *handlers.UserSession {
	b.mu.Lock()
	defer b.mu.Unlock()

	if session, exists := b.sessions[userID]; exists {
		return session
	}

	session := &handlers.UserSession{
		State: handlers.StateNone,
		Data:  make(map[string]interface{}),
	}
	b.sessions[userID] = session
	return session
}

func (b *Bot) clearSession(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.sessions[userID] = &handlers.UserSession{
		State: handlers.StateNone,
		Data:  make(map[string]interface{}),
	}
}

func (b *Bot) sendMessage(chatID int64, text string, keyboard interface{}) int {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	switch kb := keyboard.(type) {
	case tgbotapi.ReplyKeyboardMarkup:
		msg.ReplyMarkup = kb
	case tgbotapi.InlineKeyboardMarkup:
		msg.ReplyMarkup = kb
	case tgbotapi.ReplyKeyboardRemove:
		msg.ReplyMarkup = kb
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		sentMsg, err := b.api.Send(msg)
		if err != nil {
			logger.Error("Failed to send message", "error", err, "chat_id", chatID, "attempt", i+1)

			// Network errors are worth a retry, anything else is not
			if strings.Contains(err.Error(), "connection reset") ||
				strings.Contains(err.Error(), "timeout") ||
				strings.Contains(err.Error(), "network is unreachable") {
				time.Sleep(time.Duration(i+1) * time.Second)
				continue
			}
			return 0
		}
		return sentMsg.MessageID
	}
	return 0
}

func (b *Bot) SendMessage(chatID int64, text string, keyboard interface{}) int {
	return b.sendMessage(chatID, text, keyboard)
}

func (b *Bot) EditMessage(chatID int64, messageID int, text string, keyboard interface{}) {
	msg := tgbotapi.NewEditMessageText(chatID, messageID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	if keyboard != nil {
		if kb, ok := keyboard.(tgbotapi.InlineKeyboardMarkup); ok {
			msg.ReplyMarkup = &kb
		}
	}

	if _, err := b.api.Send(msg); err != nil {
		logger.Error("Failed to edit message", "error", err, "chat_id", chatID, "message_id", messageID)
	}
}

func (b *Bot) DeleteMessage(chatID int64, messageID int) {
	if messageID == 0 {
		return
	}
	deleteMsg := tgbotapi.NewDeleteMessage(chatID, messageID)
	if _, err := b.api.Request(deleteMsg); err != nil {
		logger.Error("Failed to delete message", "chat_id", chatID, "msg_id", messageID, "error", err)
	}
}

func (b *Bot) AnswerCallbackQuery(queryID string, text string, showAlert bool) {
	callback := tgbotapi.NewCallback(queryID, text)
	callback.ShowAlert = showAlert
	if _, err := b.api.Request(callback); err != nil {
		logger.Error("Failed to answer callback query", "error", err, "query_id", queryID)
	}
}

func (b *Bot) SendDocument(chatID int64, filename string, data []byte, caption string) int {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	doc.Caption = caption

	sentMsg, err := b.api.Send(doc)
	if err != nil {
		logger.Error("Failed to send document", "error", err, "chat_id", chatID, "filename", filename)
		return 0
	}
	return sentMsg.MessageID
}

func (b *Bot) GetMainMenuKeyboard(lang string) interface{} {
	return MainMenuKeyboard(lang)
}

func (b *Bot) GetLanguageKeyboard() interface{} {
	return LanguageKeyboard()
}

func (b *Bot) GetConsentKeyboard(lang string) interface{} {
	return ConsentKeyboard(lang)
}

func (b *Bot) GetGameKeyboard(lang, gameURL string) interface{} {
	return GameKeyboard(lang, gameURL)
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
	logger.Info("Bot stopped receiving updates")
}

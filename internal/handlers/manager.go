package handlers

import (
	"github.com/tontap/ton_tap_bot/internal/config"
	"github.com/tontap/ton_tap_bot/internal/models"
	"gorm.io/gorm"
)

// BotInterface is the slice of the Telegram bot the handlers need; it keeps
// this package free of a dependency cycle with telegram/.
type BotInterface interface {
	SendMessage(chatID int64, text string, keyboard interface{}) int
	EditMessage(chatID int64, messageID int, text string, keyboard interface{})
	DeleteMessage(chatID int64, messageID int)
	AnswerCallbackQuery(queryID string, text string, showAlert bool)
	SendDocument(chatID int64, filename string, data []byte, caption string) int
	GetMainMenuKeyboard(lang string) interface{}
	GetLanguageKeyboard() interface{}
	GetConsentKeyboard(lang string) interface{}
	GetGameKeyboard(lang, gameURL string) interface{}
}

// UserStore is the user repository surface the handlers depend on.
type UserStore interface {
	GetByTelegramID(telegramID int64) (*models.User, error)
	GetOrCreate(telegramID int64, username, language string) (*models.User, error)
	UpdateTonAddress(telegramID int64, address string) error
	UpdateConsent(telegramID int64, agreed bool) error
	UpdateLanguage(telegramID int64, language string) error
	ListUsers() ([]models.User, error)
}

// RewardStore is the reward ledger surface the handlers depend on.
type RewardStore interface {
	AddReward(userID uint, taskID string, amount float64, status string) (*models.Reward, error)
	SumRewards(userID uint, status string) (float64, error)
	SettleRewards(userID uint) (int64, error)
	ConsumeRewards(userID uint) (int64, error)
}

// TxStore is the transaction log surface the handlers depend on.
type TxStore interface {
	Log(userID uint, amount float64, txType, description string) error
	LogTraffic(entry *models.TrafficLog) error
}

type UserSession struct {
	State string
	Data  map[string]interface{}
}

// Conversation states
const (
	StateNone            = ""
	StateAwaitingAddress = "awaiting_address"
)

type HandlerManager struct {
	Config     *config.Config
	DB         *gorm.DB
	UserRepo   UserStore
	RewardRepo RewardStore
	TxRepo     TxStore
}

func NewHandlerManager(
	cfg *config.Config,
	db *gorm.DB,
	userRepo UserStore,
	rewardRepo RewardStore,
	txRepo TxStore,
) *HandlerManager {
	return &HandlerManager{
		Config:     cfg,
		DB:         db,
		UserRepo:   userRepo,
		RewardRepo: rewardRepo,
		TxRepo:     txRepo,
	}
}

// lang resolves the reply language for a user, falling back to the configured
// default for unknown users.
func (h *HandlerManager) lang(user *models.User) string {
	if user != nil && models.ValidLanguage(user.Language) {
		return user.Language
	}
	return h.Config.DefaultLanguage
}

package i18n

import (
	"fmt"

	"github.com/tontap/ton_tap_bot/internal/models"
)

// Message keys
const (
	KeyWelcome             = "welcome"
	KeyWelcomeBack         = "welcome_back"
	KeyHelp                = "help"
	KeyMainMenu            = "main_menu"
	KeyBalance             = "balance"
	KeyStats               = "stats"
	KeyPlayPrompt          = "play_prompt"
	KeyConsentPrompt       = "consent_prompt"
	KeyConsentDone         = "consent_done"
	KeyLanguagePrompt      = "language_prompt"
	KeyLanguageSet         = "language_set"
	KeyWalletPrompt        = "wallet_prompt"
	KeyWalletSaved         = "wallet_saved"
	KeyWalletInvalid       = "wallet_invalid"
	KeyWalletCurrent       = "wallet_current"
	KeyWithdrawInsufficent = "withdraw_insufficient"
	KeyWithdrawRequested   = "withdraw_requested"
	KeyGameReward          = "game_reward"
	KeyCancelled           = "cancelled"
	KeyErrorGeneric        = "error_generic"
	KeyRateLimited         = "rate_limited"

	KeyBtnPlay     = "btn_play"
	KeyBtnBalance  = "btn_balance"
	KeyBtnWallet   = "btn_wallet"
	KeyBtnWithdraw = "btn_withdraw"
	KeyBtnLanguage = "btn_language"
	KeyBtnHelp     = "btn_help"
	KeyBtnAgree    = "btn_agree"
)

// DefaultLanguage is the catalog used before a user picks one and as the
// fallback for missing translations.
const DefaultLanguage = models.LangEnglish

var catalog = map[string]map[string]string{
	models.LangEnglish: {
		KeyWelcome:             "Hi %s! 👋\n\nWelcome to the TON tap bot!\n\nCommands:\n/balance - your balance\n/play - play the game\n/help - help",
		KeyWelcomeBack:         "Welcome back, %s! 👋",
		KeyHelp:                "📖 Help:\n\n/start - start\n/balance - balance\n/play - play\n/stats - stats\n/wallet - wallet address\n/withdraw - withdraw\n/language - language",
		KeyMainMenu:            "What would you like to do?",
		KeyBalance:             "💰 Your balance: %s TON",
		KeyStats:               "📊 Your stats:\n\n💰 Claimable: %s TON\n⏳ Pending: %s TON\n👛 Wallet: %s",
		KeyPlayPrompt:          "🎮 Tap the button below to play:",
		KeyConsentPrompt:       "📜 Rewards in this bot are simulated and carry no monetary value. Tap Agree to continue.",
		KeyConsentDone:         "✅ Thanks! You're all set.",
		KeyLanguagePrompt:      "🌐 Choose your language:",
		KeyLanguageSet:         "✅ Language saved.",
		KeyWalletPrompt:        "👛 Send your TON wallet address (starts with UQ or EQ):",
		KeyWalletSaved:         "✅ Wallet address saved: %s",
		KeyWalletInvalid:       "❌ That doesn't look like a TON address. It must start with UQ or EQ followed by 46 characters. Try again:",
		KeyWalletCurrent:       "👛 Your wallet: %s",
		KeyWithdrawInsufficent: "⚠️ Insufficient balance: %s TON. You need at least %s TON to withdraw.",
		KeyWithdrawRequested:   "✅ Withdrawal request for %s TON registered. It will be sent to %s.",
		KeyGameReward:          "🎉 Congratulations! You earned %s TON!",
		KeyCancelled:           "Cancelled.",
		KeyErrorGeneric:        "❌ Something went wrong. Please try again.",
		KeyRateLimited:         "⏳ Too many requests. Please slow down.",

		KeyBtnPlay:     "🎮 Play Now",
		KeyBtnBalance:  "💰 Balance",
		KeyBtnWallet:   "👛 Wallet",
		KeyBtnWithdraw: "💸 Withdraw",
		KeyBtnLanguage: "🌐 Language",
		KeyBtnHelp:     "📖 Help",
		KeyBtnAgree:    "✅ Agree",
	},
	models.LangPersian: {
		KeyWelcome:             "سلام %s! 👋\n\nبه بوت TON خوش آمدید!\n\nدستورات:\n/balance - موجودی شما\n/play - بازی کنید\n/help - کمک",
		KeyWelcomeBack:         "%s عزیز، خوش برگشتی! 👋",
		KeyHelp:                "📖 راهنما:\n\n/start - شروع\n/balance - موجودی\n/play - بازی\n/stats - آمار\n/wallet - آدرس کیف پول\n/withdraw - برداشت\n/language - زبان",
		KeyMainMenu:            "چه کاری می‌خواهید انجام دهید؟",
		KeyBalance:             "💰 موجودی شما: %s TON",
		KeyStats:               "📊 آمار شما:\n\n💰 قابل برداشت: %s TON\n⏳ در انتظار: %s TON\n👛 کیف پول: %s",
		KeyPlayPrompt:          "🎮 برای بازی کردن روی دکمه زیر کلیک کنید:",
		KeyConsentPrompt:       "📜 پاداش‌های این بوت شبیه‌سازی شده هستند و ارزش مالی ندارند. برای ادامه روی موافقم بزنید.",
		KeyConsentDone:         "✅ ممنون! همه چیز آماده است.",
		KeyLanguagePrompt:      "🌐 زبان خود را انتخاب کنید:",
		KeyLanguageSet:         "✅ زبان ذخیره شد.",
		KeyWalletPrompt:        "👛 آدرس کیف پول TON خود را بفرستید (با UQ یا EQ شروع می‌شود):",
		KeyWalletSaved:         "✅ آدرس کیف پول ذخیره شد: %s",
		KeyWalletInvalid:       "❌ این یک آدرس TON معتبر نیست. باید با UQ یا EQ شروع شود و ۴۶ کاراکتر ادامه داشته باشد. دوباره تلاش کنید:",
		KeyWalletCurrent:       "👛 کیف پول شما: %s",
		KeyWithdrawInsufficent: "⚠️ موجودی کافی نیست: %s TON. برای برداشت حداقل %s TON لازم است.",
		KeyWithdrawRequested:   "✅ درخواست برداشت %s TON ثبت شد. به %s ارسال خواهد شد.",
		KeyGameReward:          "🎉 تبریک! شما %s TON برنده شدید!",
		KeyCancelled:           "لغو شد.",
		KeyErrorGeneric:        "❌ خطایی رخ داد. لطفا دوباره سعی کنید.",
		KeyRateLimited:         "⏳ درخواست‌های زیادی ارسال کردید. کمی صبر کنید.",

		KeyBtnPlay:     "🎮 بازی کنید",
		KeyBtnBalance:  "💰 موجودی",
		KeyBtnWallet:   "👛 کیف پول",
		KeyBtnWithdraw: "💸 برداشت",
		KeyBtnLanguage: "🌐 زبان",
		KeyBtnHelp:     "📖 راهنما",
		KeyBtnAgree:    "✅ موافقم",
	},
	models.LangRussian: {
		KeyWelcome:             "Привет, %s! 👋\n\nДобро пожаловать в TON tap бот!\n\nКоманды:\n/balance - ваш баланс\n/play - играть\n/help - помощь",
		KeyWelcomeBack:         "С возвращением, %s! 👋",
		KeyHelp:                "📖 Помощь:\n\n/start - старт\n/balance - баланс\n/play - играть\n/stats - статистика\n/wallet - адрес кошелька\n/withdraw - вывод\n/language - язык",
		KeyMainMenu:            "Что вы хотите сделать?",
		KeyBalance:             "💰 Ваш баланс: %s TON",
		KeyStats:               "📊 Ваша статистика:\n\n💰 Доступно: %s TON\n⏳ В ожидании: %s TON\n👛 Кошелёк: %s",
		KeyPlayPrompt:          "🎮 Нажмите кнопку ниже, чтобы играть:",
		KeyConsentPrompt:       "📜 Награды в этом боте симулированы и не имеют денежной ценности. Нажмите Согласен, чтобы продолжить.",
		KeyConsentDone:         "✅ Спасибо! Всё готово.",
		KeyLanguagePrompt:      "🌐 Выберите язык:",
		KeyLanguageSet:         "✅ Язык сохранён.",
		KeyWalletPrompt:        "👛 Отправьте адрес вашего TON-кошелька (начинается с UQ или EQ):",
		KeyWalletSaved:         "✅ Адрес кошелька сохранён: %s",
		KeyWalletInvalid:       "❌ Это не похоже на TON-адрес. Он должен начинаться с UQ или EQ и содержать ещё 46 символов. Попробуйте снова:",
		KeyWalletCurrent:       "👛 Ваш кошелёк: %s",
		KeyWithdrawInsufficent: "⚠️ Недостаточный баланс: %s TON. Для вывода нужно минимум %s TON.",
		KeyWithdrawRequested:   "✅ Заявка на вывод %s TON зарегистрирована. Будет отправлено на %s.",
		KeyGameReward:          "🎉 Поздравляем! Вы заработали %s TON!",
		KeyCancelled:           "Отменено.",
		KeyErrorGeneric:        "❌ Произошла ошибка. Попробуйте ещё раз.",
		KeyRateLimited:         "⏳ Слишком много запросов. Помедленнее.",

		KeyBtnPlay:     "🎮 Играть",
		KeyBtnBalance:  "💰 Баланс",
		KeyBtnWallet:   "👛 Кошелёк",
		KeyBtnWithdraw: "💸 Вывод",
		KeyBtnLanguage: "🌐 Язык",
		KeyBtnHelp:     "📖 Помощь",
		KeyBtnAgree:    "✅ Согласен",
	},
}

// T resolves key in lang, falling back to the default language and finally
// to the key itself so a missing translation never breaks a reply.
func T(lang, key string, args ...interface{}) string {
	msg, ok := catalog[lang][key]
	if !ok {
		msg, ok = catalog[DefaultLanguage][key]
	}
	if !ok {
		return key
	}

	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Languages returns the supported language codes in menu order.
func Languages() []string {
	return []string{models.LangEnglish, models.LangPersian, models.LangRussian}
}

// LanguageName returns the self-describing label for a language button.
func LanguageName(code string) string {
	switch code {
	case models.LangEnglish:
		return "English 🇬🇧"
	case models.LangPersian:
		return "فارسی 🇮🇷"
	case models.LangRussian:
		return "Русский 🇷🇺"
	}
	return code
}

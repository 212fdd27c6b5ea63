package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/tontap/ton_tap_bot/internal/i18n"
)

// Callback data values used by the inline menus
const (
	CallbackMenuPlay     = "menu_play"
	CallbackMenuBalance  = "menu_balance"
	CallbackMenuWallet   = "menu_wallet"
	CallbackMenuWithdraw = "menu_withdraw"
	CallbackMenuLanguage = "menu_language"
	CallbackMenuHelp     = "menu_help"
	CallbackConsentAgree = "consent_agree"
	CallbackLangPrefix   = "lang_"
)

// MainMenuKeyboard creates the main inline menu in the user's language
func MainMenuKeyboard(lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, i18n.KeyBtnPlay), CallbackMenuPlay),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, i18n.KeyBtnBalance), CallbackMenuBalance),
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, i18n.KeyBtnWithdraw), CallbackMenuWithdraw),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, i18n.KeyBtnWallet), CallbackMenuWallet),
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, i18n.KeyBtnLanguage), CallbackMenuLanguage),
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, i18n.KeyBtnHelp), CallbackMenuHelp),
		),
	)
}

// LanguageKeyboard creates the language picker
func LanguageKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, code := range i18n.Languages() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(i18n.LanguageName(code), CallbackLangPrefix+code),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// ConsentKeyboard creates the one-time consent confirmation keyboard
func ConsentKeyboard(lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(i18n.T(lang, i18n.KeyBtnAgree), CallbackConsentAgree),
		),
	)
}

// GameKeyboard creates the game launch keyboard with a TON wallet link. The
// game URL carries the signed session token, so the page opened in the in-app
// browser can claim rewards without asserting an identity of its own.
func GameKeyboard(lang, gameURL string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(i18n.T(lang, i18n.KeyBtnPlay), gameURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📱 TON Wallet", "https://ton.org"),
		),
	)
}

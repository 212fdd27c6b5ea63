package i18n

import (
	"strings"
	"testing"

	"github.com/tontap/ton_tap_bot/internal/models"
)

func TestT_KnownLanguage(t *testing.T) {
	got := T(models.LangPersian, KeyBalance, "3.00")
	if !strings.Contains(got, "3.00") {
		t.Errorf("T() = %q, want amount interpolated", got)
	}
	if got == T(models.LangEnglish, KeyBalance, "3.00") {
		t.Error("Persian and English balance messages should differ")
	}
}

func TestT_FallbackToDefault(t *testing.T) {
	got := T("de", KeyHelp)
	want := T(DefaultLanguage, KeyHelp)
	if got != want {
		t.Errorf("T() with unknown language = %q, want default %q", got, want)
	}
}

func TestT_FallbackToKey(t *testing.T) {
	if got := T(models.LangEnglish, "no_such_key"); got != "no_such_key" {
		t.Errorf("T() with unknown key = %q, want key echoed", got)
	}
}

func TestCatalogComplete(t *testing.T) {
	keys := []string{
		KeyWelcome, KeyWelcomeBack, KeyHelp, KeyMainMenu, KeyBalance, KeyStats,
		KeyPlayPrompt, KeyConsentPrompt, KeyConsentDone, KeyLanguagePrompt,
		KeyLanguageSet, KeyWalletPrompt, KeyWalletSaved, KeyWalletInvalid,
		KeyWalletCurrent, KeyWithdrawInsufficent, KeyWithdrawRequested,
		KeyGameReward, KeyCancelled, KeyErrorGeneric, KeyRateLimited,
		KeyBtnPlay, KeyBtnBalance, KeyBtnWallet, KeyBtnWithdraw, KeyBtnLanguage,
		KeyBtnHelp, KeyBtnAgree,
	}

	for _, lang := range Languages() {
		for _, key := range keys {
			if _, ok := catalog[lang][key]; !ok {
				t.Errorf("language %q missing key %q", lang, key)
			}
		}
	}
}

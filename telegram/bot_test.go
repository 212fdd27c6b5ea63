package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestFailureTargets(t *testing.T) {
	tests := []struct {
		name           string
		update         tgbotapi.Update
		wantChatID     int64
		wantCallbackID string
	}{
		{
			name:       "Message update",
			update:     tgbotapi.Update{Message: &tgbotapi.Message{From: &tgbotapi.User{ID: 42}}},
			wantChatID: 42,
		},
		{
			name: "Callback query update answers the query",
			update: tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
				ID:   "cbq-1",
				From: &tgbotapi.User{ID: 42},
			}},
			wantChatID:     42,
			wantCallbackID: "cbq-1",
		},
		{
			name: "Neither",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chatID, callbackID := failureTargets(tt.update)
			if chatID != tt.wantChatID {
				t.Errorf("chatID = %d, want %d", chatID, tt.wantChatID)
			}
			if callbackID != tt.wantCallbackID {
				t.Errorf("callbackID = %q, want %q", callbackID, tt.wantCallbackID)
			}
		})
	}
}

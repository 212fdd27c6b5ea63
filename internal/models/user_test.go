package models

import (
	"strings"
	"testing"
)

func TestValidTonAddress(t *testing.T) {
	valid46 := strings.Repeat("A", 46)

	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"UQ prefix", "UQ" + valid46, true},
		{"EQ prefix", "EQ" + valid46, true},
		{"Underscore and dash allowed", "UQ" + strings.Repeat("a-_9", 11) + "Zz", true},
		{"Wrong prefix", "XQ" + valid46, false},
		{"Lowercase prefix", "uq" + valid46, false},
		{"Too short", "UQ" + strings.Repeat("A", 45), false},
		{"Too long", "UQ" + strings.Repeat("A", 47), false},
		{"Invalid character", "UQ" + strings.Repeat("A", 45) + "+", false},
		{"Empty", "", false},
		{"Prefix only", "UQ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidTonAddress(tt.address); got != tt.want {
				t.Errorf("ValidTonAddress(%q) = %v, want %v", tt.address, got, tt.want)
			}
		})
	}
}

func TestValidLanguage(t *testing.T) {
	for _, code := range []string{LangEnglish, LangPersian, LangRussian} {
		if !ValidLanguage(code) {
			t.Errorf("ValidLanguage(%q) = false, want true", code)
		}
	}
	for _, code := range []string{"", "de", "EN", "farsi"} {
		if ValidLanguage(code) {
			t.Errorf("ValidLanguage(%q) = true, want false", code)
		}
	}
}

func TestHasWallet(t *testing.T) {
	u := &User{}
	if u.HasWallet() {
		t.Error("HasWallet() = true for user without address")
	}

	u.TonAddress = "UQ" + strings.Repeat("A", 46)
	if !u.HasWallet() {
		t.Error("HasWallet() = false for user with address")
	}
}

func TestFormatTON(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0.00"},
		{3, "3.00"},
		{0.5, "0.50"},
		{1.239, "1.24"},
		{0.004, "0.00"}, // display rounds down, raw value still counts toward the threshold
	}

	for _, tt := range tests {
		if got := FormatTON(tt.amount); got != tt.want {
			t.Errorf("FormatTON(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

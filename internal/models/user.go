package models

import (
	"fmt"
	"regexp"
	"time"
)

type User struct {
	ID            uint       `gorm:"primaryKey"`
	TelegramID    int64      `gorm:"uniqueIndex;not null"`
	Username      string     `gorm:"type:varchar(255);not null"`
	Language      string     `gorm:"type:varchar(8);not null;default:'en'"`
	TonAddress    string     `gorm:"type:varchar(64)"` // empty until the user binds a wallet
	ConsentAgreed bool       `gorm:"default:false;not null"`
	ConsentDate   *time.Time `gorm:"default:NULL"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

// Supported language codes
const (
	LangEnglish = "en"
	LangPersian = "fa"
	LangRussian = "ru"
)

// tonAddressPattern matches user-friendly TON wallet addresses: a two-letter
// bounceable/non-bounceable prefix followed by 46 base64url characters.
var tonAddressPattern = regexp.MustCompile(`^(UQ|EQ)[A-Za-z0-9_-]{46}$`)

// ValidTonAddress reports whether s is a well-formed TON wallet address.
func ValidTonAddress(s string) bool {
	return tonAddressPattern.MatchString(s)
}

// ValidLanguage reports whether code is a supported language.
func ValidLanguage(code string) bool {
	switch code {
	case LangEnglish, LangPersian, LangRussian:
		return true
	}
	return false
}

// HasWallet reports whether the user has a withdrawal address on file.
func (u *User) HasWallet() bool {
	return u.TonAddress != ""
}

// FormatTON renders an amount for display with two decimal places.
// Threshold comparisons must use the raw value, never this string.
func FormatTON(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

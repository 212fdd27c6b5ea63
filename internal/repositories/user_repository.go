package repositories

import (
	"time"

	"github.com/tontap/ton_tap_bot/internal/models"
	"github.com/tontap/ton_tap_bot/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByTelegramID retrieves a user by Telegram ID
func (r *UserRepository) GetByTelegramID(telegramID int64) (*models.User, error) {
	var user models.User
	result := r.db.Where("telegram_id = ?", telegramID).First(&user)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "user not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get user")
	}

	return &user, nil
}

// GetOrCreate returns the user for telegramID, creating the record on first
// contact. Repeated calls with the same ID are idempotent: the unique index
// on telegram_id plus ON CONFLICT DO NOTHING guarantee a single record.
func (r *UserRepository) GetOrCreate(telegramID int64, username, language string) (*models.User, error) {
	user := models.User{
		TelegramID: telegramID,
		Username:   username,
		Language:   language,
	}

	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "telegram_id"}},
		DoNothing: true,
	}).Create(&user)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to create user")
	}

	// The insert was skipped for an existing user; read either way so the
	// caller always sees the stored record.
	return r.GetByTelegramID(telegramID)
}

// UpdateTonAddress stores a validated withdrawal address
func (r *UserRepository) UpdateTonAddress(telegramID int64, address string) error {
	if !models.ValidTonAddress(address) {
		return errors.New(errors.ErrCodeInvalidAddress, "malformed TON address")
	}

	result := r.db.Model(&models.User{}).Where("telegram_id = ?", telegramID).Update("ton_address", address)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "user not found")
	}
	return nil
}

// UpdateConsent records the one-time consent decision with its timestamp
func (r *UserRepository) UpdateConsent(telegramID int64, agreed bool) error {
	now := time.Now().UTC()
	result := r.db.Model(&models.User{}).Where("telegram_id = ?", telegramID).Updates(map[string]interface{}{
		"consent_agreed": agreed,
		"consent_date":   &now,
	})
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update consent")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "user not found")
	}
	return nil
}

// UpdateLanguage persists the user's language choice
func (r *UserRepository) UpdateLanguage(telegramID int64, language string) error {
	if !models.ValidLanguage(language) {
		return errors.New(errors.ErrCodeInvalidRequest, "unsupported language")
	}

	result := r.db.Model(&models.User{}).Where("telegram_id = ?", telegramID).Update("language", language)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update language")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "user not found")
	}
	return nil
}

// ListUsers returns all users ordered by signup time
func (r *UserRepository) ListUsers() ([]models.User, error) {
	var users []models.User
	result := r.db.Order("created_at ASC").Find(&users)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to list users")
	}
	return users, nil
}

// CountUsers returns the total number of registered users
func (r *UserRepository) CountUsers() (int64, error) {
	var count int64
	result := r.db.Model(&models.User{}).Count(&count)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to count users")
	}
	return count, nil
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Reward struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TaskID    string    `gorm:"type:varchar(64);index"` // empty for game rewards
	Amount    float64   `gorm:"not null"`
	Status    string    `gorm:"type:varchar(16);not null;index;default:'pending'"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

// Reward status constants. Only completed rewards count toward the claimable
// balance; withdrawal flips them to withdrawn so a balance is paid out once.
const (
	RewardStatusPending   = "pending"
	RewardStatusCompleted = "completed"
	RewardStatusWithdrawn = "withdrawn"
)

// BeforeSave hook rejects malformed rewards before they hit the table.
func (r *Reward) BeforeSave(tx *gorm.DB) error {
	if r.Amount < 0 {
		return gorm.ErrInvalidData
	}
	switch r.Status {
	case RewardStatusPending, RewardStatusCompleted, RewardStatusWithdrawn:
		return nil
	}
	return gorm.ErrInvalidData
}

func (Reward) TableName() string {
	return "rewards"
}

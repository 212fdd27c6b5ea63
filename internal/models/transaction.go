package models

import (
	"time"
)

// Transaction is an append-only log of balance deltas. Rows are written once
// and never updated or deleted.
type Transaction struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"not null;index"`
	User            User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Amount          float64   `gorm:"not null"`
	TransactionType string    `gorm:"type:varchar(50);not null;index"`
	Description     string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index"`
}

// Transaction type constants
const (
	TxTypeGameReward        = "game_reward"
	TxTypeTaskReward        = "task_reward"
	TxTypeWithdrawalRequest = "withdrawal_request"
	TxTypeAdminAdjustment   = "admin_adjustment"
)

func (Transaction) TableName() string {
	return "transactions"
}

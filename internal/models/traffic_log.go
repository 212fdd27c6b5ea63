package models

import (
	"time"
)

// TrafficLog records every web claim hitting the game endpoint, successful or
// not, for abuse review.
type TrafficLog struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"` // zero when the token did not resolve to a user
	IP        string    `gorm:"type:varchar(45)"`
	Endpoint  string    `gorm:"type:varchar(128)"`
	Taps      int64     `gorm:"default:0"`
	Accepted  bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (TrafficLog) TableName() string {
	return "traffic_logs"
}

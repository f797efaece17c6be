package entity

import (
	"time"
)

// BlockedDate marks a calendar date on which no appointments may be booked
type BlockedDate struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date      string    `gorm:"type:date;not null;uniqueIndex" json:"date"`
	Reason    string    `gorm:"type:text;not null" json:"reason"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (BlockedDate) TableName() string {
	return "blocked_dates"
}

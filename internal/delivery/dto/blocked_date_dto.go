package dto

import (
	"time"
)

type CreateBlockedDateRequest struct {
	Date   string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Reason string `json:"reason" validate:"required"`
}

type BlockedDateResponse struct {
	ID        uint      `json:"id"`
	Date      string    `json:"date"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type BlockedDateListResponse struct {
	BlockedDates []BlockedDateResponse `json:"blocked_dates"`
	Total        int                   `json:"total"`
}

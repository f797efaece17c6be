package dto

import (
	"time"
)

type CreateVideoRequest struct {
	URL   string `json:"url" validate:"required,url"`
	Title string `json:"title" validate:"required"`
}

type VideoResponse struct {
	ID        uint      `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	YouTubeID string    `json:"youtube_id"`
	CreatedAt time.Time `json:"created_at"`
}

type VideoListResponse struct {
	Videos []VideoResponse `json:"videos"`
	Total  int             `json:"total"`
}

package dto

import (
	"time"
)

// CreateBlogPostRequest carries the multipart form fields; the optional
// image file is handled separately by the handler.
type CreateBlogPostRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Author      string `json:"author" validate:"required"`
}

type BlogPostResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BlogPostListResponse struct {
	Posts []BlogPostResponse `json:"posts"`
	Total int                `json:"total"`
}

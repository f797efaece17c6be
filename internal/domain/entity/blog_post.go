package entity

import (
	"time"
)

// BlogPost is an article published on the clinic site, optionally with a
// cover image stored in the object storage bucket.
type BlogPost struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Author      string    `gorm:"type:varchar(255);not null" json:"author"`
	ImageURL    *string   `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

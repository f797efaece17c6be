package entity

import (
	"regexp"
	"time"
)

// Video is a YouTube embed shown in the public gallery
type Video struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Video) TableName() string {
	return "videos"
}

var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// ExtractYouTubeID returns the 11-character video ID embedded in a YouTube
// watch/share/embed URL, or "" when the URL carries none.
func ExtractYouTubeID(url string) string {
	match := youtubeIDPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}

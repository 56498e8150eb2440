package models

import "time"

type Blog struct {
	BaseModel
	Title            string    `gorm:"not null" json:"title"`
	ImageURL         string    `json:"image"`
	ShortDescription string    `json:"short_description"`
	Content          string    `json:"content"`
	AuthorEmail      string    `json:"author_email"`
	PublishedAt      time.Time `json:"published_at"`
}

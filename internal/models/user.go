package models

import "time"

type User struct {
	BaseModel
	Email           string   `gorm:"uniqueIndex;not null" json:"email"`
	Name            string   `json:"name"`
	PhotoURL        string   `json:"photo_url"`
	PasswordHash    string   `gorm:"not null" json:"-"`
	Role            UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Specialty       string   `json:"specialty,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`

	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}

package models

import "time"

// DecoratorRequest is a user's application to become a decorator.
// At most one request exists per email.
type DecoratorRequest struct {
	BaseModel
	Name            string        `json:"name"`
	Email           string        `gorm:"uniqueIndex;not null" json:"email"`
	PhotoURL        string        `json:"photo_url"`
	Specialty       string        `json:"specialty"`
	ExperienceYears int           `json:"experience"`
	PortfolioURL    string        `json:"portfolio"`
	Status          RequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	AppliedAt       time.Time     `json:"applied_at"`
}

package dto

import "time"

type SubmitDecoratorRequest struct {
	Specialty       string `json:"specialty" validate:"required,min=2,max=100"`
	ExperienceYears int    `json:"experience" validate:"gte=0,lte=60"`
	PortfolioURL    string `json:"portfolio" validate:"omitempty,url"`
}

type ProcessDecoratorRequest struct {
	Status string `json:"status" validate:"required,is-request-status"`
}

type DecoratorRequestResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PhotoURL        string    `json:"photo_url,omitempty"`
	Specialty       string    `json:"specialty"`
	ExperienceYears int       `json:"experience"`
	PortfolioURL    string    `json:"portfolio,omitempty"`
	Status          string    `json:"status"`
	AppliedAt       time.Time `json:"applied_at"`
}

package dto

import "time"

type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	PhotoURL        string    `json:"photo_url,omitempty"`
	Role            string    `json:"role"`
	Specialty       string    `json:"specialty,omitempty"`
	ExperienceYears int       `json:"experience_years,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	PhotoURL *string `json:"photo_url" validate:"omitempty,url"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,is-user-role"`
}

type RoleResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

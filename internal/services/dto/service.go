package dto

import "eventora_backend/internal/models"

type CreateServiceRequest struct {
	ServiceName string `json:"service_name" validate:"required,min=2,max=150"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Image       string `json:"image" validate:"omitempty,url"`
	Category    string `json:"category" validate:"required,max=60"`
	Location    string `json:"location" validate:"omitempty,max=120"`
	Cost        int    `json:"cost" validate:"required,gt=0"`
	Unit        string `json:"unit" validate:"omitempty,max=40"`
}

type UpdateServiceRequest struct {
	ServiceName *string `json:"service_name" validate:"omitempty,min=2,max=150"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Image       *string `json:"image" validate:"omitempty,url"`
	Category    *string `json:"category" validate:"omitempty,max=60"`
	Location    *string `json:"location" validate:"omitempty,max=120"`
	Cost        *int    `json:"cost" validate:"omitempty,gt=0"`
	Unit        *string `json:"unit" validate:"omitempty,max=40"`
}

// ServiceListQuery is bound from query parameters of the catalog listing.
type ServiceListQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	MinPrice *int   `form:"min_price"`
	MaxPrice *int   `form:"max_price"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type ServiceListResponse struct {
	Services   []models.Service `json:"services"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

package models

// Service is a catalog entry: a bookable decoration package.
type Service struct {
	BaseModel
	Name        string `gorm:"not null;index" json:"service_name"`
	Description string `json:"description"`
	ImageURL    string `json:"image"`
	Category    string `gorm:"index" json:"category"`
	Location    string `gorm:"index" json:"location"`
	Cost        int    `gorm:"not null" json:"cost"`
	Unit        string `json:"unit"`
	CreatedBy   string `json:"created_by"`
}

package dto

type CreateBlogRequest struct {
	Title            string `json:"title" validate:"required,min=3,max=200"`
	Image            string `json:"image" validate:"omitempty,url"`
	ShortDescription string `json:"short_description" validate:"omitempty,max=500"`
	Content          string `json:"content" validate:"required"`
}

package dto

import "eventora_backend/internal/models"

func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		PhotoURL:        user.PhotoURL,
		Role:            string(user.Role),
		Specialty:       user.Specialty,
		ExperienceYears: user.ExperienceYears,
		CreatedAt:       user.CreatedAt,
	}
}

func ToUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}

func ToDecoratorRequestResponse(req *models.DecoratorRequest) DecoratorRequestResponse {
	return DecoratorRequestResponse{
		ID:              req.ID,
		Name:            req.Name,
		Email:           req.Email,
		PhotoURL:        req.PhotoURL,
		Specialty:       req.Specialty,
		ExperienceYears: req.ExperienceYears,
		PortfolioURL:    req.PortfolioURL,
		Status:          string(req.Status),
		AppliedAt:       req.AppliedAt,
	}
}

func ToDecoratorRequestResponses(reqs []models.DecoratorRequest) []DecoratorRequestResponse {
	out := make([]DecoratorRequestResponse, 0, len(reqs))
	for i := range reqs {
		out = append(out, ToDecoratorRequestResponse(&reqs[i]))
	}
	return out
}

func ToPaymentHistoryItem(tx *models.PaymentTransaction, serviceName string) PaymentHistoryItem {
	return PaymentHistoryItem{
		ID:          tx.ID,
		BookingID:   tx.BookingID,
		ServiceName: serviceName,
		Amount:      tx.Amount,
		Currency:    tx.Currency,
		Status:      string(tx.Status),
		PaidAt:      tx.PaidAt,
	}
}

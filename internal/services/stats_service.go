package services

import (
	"context"

	"eventora_backend/internal/repositories"
	"eventora_backend/internal/services/dto"
	"eventora_backend/pkg/apperrors"
)

type StatsService interface {
	Overview(ctx context.Context) (*dto.StatsResponse, error)
}

type StatsServiceImpl struct {
	userRepo    repositories.UserRepository
	serviceRepo repositories.ServiceRepository
	bookingRepo repositories.BookingRepository
}

func NewStatsService(
	userRepo repositories.UserRepository,
	serviceRepo repositories.ServiceRepository,
	bookingRepo repositories.BookingRepository,
) StatsService {
	return &StatsServiceImpl{
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
	}
}

// Overview backs the admin dashboard. Revenue counts every booking that has
// moved past pending, since payment is the pending→paid gate.
func (s *StatsServiceImpl) Overview(ctx context.Context) (*dto.StatsResponse, error) {
	totalUsers, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalServices, err := s.serviceRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalBookings, err := s.bookingRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	revenue, err := s.bookingRepo.RevenueTotal(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.StatsResponse{
		TotalUsers:    totalUsers,
		TotalServices: totalServices,
		TotalBookings: totalBookings,
		Revenue:       revenue,
	}, nil
}

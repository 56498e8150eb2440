package services

import (
	"context"
	"time"

	"eventora_backend/internal/email"
	"eventora_backend/internal/logger"
	"eventora_backend/internal/models"
	"eventora_backend/internal/repositories"
	"eventora_backend/internal/services/dto"
	"eventora_backend/pkg/apperrors"
)

type DecoratorRequestService interface {
	Submit(ctx context.Context, userEmail string, req *dto.SubmitDecoratorRequest) (*dto.DecoratorRequestResponse, error)
	ListAll(ctx context.Context) ([]dto.DecoratorRequestResponse, error)
	Process(ctx context.Context, id string, status models.RequestStatus) (*dto.DecoratorRequestResponse, error)
}

type DecoratorRequestServiceImpl struct {
	requestRepo   repositories.DecoratorRequestRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewDecoratorRequestService(
	requestRepo repositories.DecoratorRequestRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) DecoratorRequestService {
	return &DecoratorRequestServiceImpl{
		requestRepo:   requestRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// Submit files the caller's application. Name and photo come from the user
// record, not the request body, so an application always matches an account.
func (s *DecoratorRequestServiceImpl) Submit(ctx context.Context, userEmail string, req *dto.SubmitDecoratorRequest) (*dto.DecoratorRequestResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	request := &models.DecoratorRequest{
		Name:            user.Name,
		Email:           user.Email,
		PhotoURL:        user.PhotoURL,
		Specialty:       req.Specialty,
		ExperienceYears: req.ExperienceYears,
		PortfolioURL:    req.PortfolioURL,
		Status:          models.RequestStatusPending,
		AppliedAt:       time.Now(),
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		if apperrors.Is(err, repositories.ErrRequestAlreadyExists) {
			return nil, apperrors.ErrRequestAlreadySubmitted
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ToDecoratorRequestResponse(request)
	return &resp, nil
}

func (s *DecoratorRequestServiceImpl) ListAll(ctx context.Context) ([]dto.DecoratorRequestResponse, error) {
	requests, err := s.requestRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.ToDecoratorRequestResponses(requests), nil
}

// Process approves or rejects a pending request. Approval also promotes the
// applicant (role, specialty, experience) in the same transaction.
func (s *DecoratorRequestServiceImpl) Process(ctx context.Context, id string, status models.RequestStatus) (*dto.DecoratorRequestResponse, error) {
	var (
		request *models.DecoratorRequest
		err     error
	)

	switch status {
	case models.RequestStatusApproved:
		request, err = s.requestRepo.Approve(ctx, id)
	case models.RequestStatusRejected:
		request, err = s.requestRepo.Reject(ctx, id)
	default:
		return nil, apperrors.NewBadRequestError("Status must be approved or rejected")
	}

	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrRequestNotFound):
			return nil, apperrors.NewNotFoundError("decorator_request", "Request not found")
		case apperrors.Is(err, repositories.ErrRequestAlreadyProcessed):
			return nil, apperrors.ErrRequestAlreadyProcessed
		case apperrors.Is(err, repositories.ErrUserNotFound):
			return nil, apperrors.NewNotFoundError("user", "Applicant account not found")
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	if request.Status == models.RequestStatusApproved {
		s.notifyApproved(ctx, request)
	}

	resp := dto.ToDecoratorRequestResponse(request)
	return &resp, nil
}

// Notification failures never fail the approval.
func (s *DecoratorRequestServiceImpl) notifyApproved(ctx context.Context, request *models.DecoratorRequest) {
	err := s.emailProvider.SendTemplate(
		[]string{request.Email},
		"Your decorator application was approved",
		email.TemplateDecoratorApproved,
		email.TemplateData{
			"Name":      request.Name,
			"Specialty": request.Specialty,
		},
	)
	if err != nil {
		logger.CtxWarn(ctx, "Failed to send approval email", "error", err.Error())
	}
}

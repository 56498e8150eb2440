package services

import (
	"context"

	"eventora_backend/internal/models"
	"eventora_backend/internal/repositories"
	"eventora_backend/internal/services/dto"
	"eventora_backend/pkg/apperrors"
)

type UserService interface {
	GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error)
	GetRole(ctx context.Context, callerEmail, targetEmail string) (*dto.RoleResponse, error)
	UpdateProfile(ctx context.Context, email string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ListAll(ctx context.Context, limit, offset int) ([]dto.UserResponse, error)
	ListDecorators(ctx context.Context) ([]dto.UserResponse, error)
	UpdateRole(ctx context.Context, userID string, req *dto.UpdateRoleRequest) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// GetRole answers only for the caller's own email. The route exists for
// clients that cache a profile and want a cheap role recheck.
func (s *UserServiceImpl) GetRole(ctx context.Context, callerEmail, targetEmail string) (*dto.RoleResponse, error) {
	if callerEmail != targetEmail {
		return nil, apperrors.ErrInsufficientPermissions
	}

	user, err := s.userRepo.GetByEmail(ctx, targetEmail)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.RoleResponse{Email: user.Email, Role: string(user.Role)}, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, email string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.PhotoURL != nil {
		user.PhotoURL = *req.PhotoURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) ListAll(ctx context.Context, limit, offset int) ([]dto.UserResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.userRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.ToUserResponses(users), nil
}

func (s *UserServiceImpl) ListDecorators(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindByRole(ctx, models.UserRoleDecorator)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.ToUserResponses(users), nil
}

func (s *UserServiceImpl) UpdateRole(ctx context.Context, userID string, req *dto.UpdateRoleRequest) (*dto.UserResponse, error) {
	role := models.UserRole(req.Role)
	if !role.Valid() {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

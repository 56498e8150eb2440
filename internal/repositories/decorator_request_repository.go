package repositories

import (
	"context"
	"errors"
	"time"

	"eventora_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRequestNotFound         = errors.New("decorator request not found")
	ErrRequestAlreadyExists    = errors.New("decorator request already exists")
	ErrRequestAlreadyProcessed = errors.New("decorator request already processed")
)

type DecoratorRequestRepository interface {
	Create(ctx context.Context, request *models.DecoratorRequest) error
	GetByID(ctx context.Context, id string) (*models.DecoratorRequest, error)
	GetByEmail(ctx context.Context, email string) (*models.DecoratorRequest, error)
	FindAll(ctx context.Context) ([]models.DecoratorRequest, error)
	Approve(ctx context.Context, id string) (*models.DecoratorRequest, error)
	Reject(ctx context.Context, id string) (*models.DecoratorRequest, error)
}

type DecoratorRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewDecoratorRequestRepository(db *gorm.DB) DecoratorRequestRepository {
	return &DecoratorRequestRepositoryImpl{db: db}
}

func (r *DecoratorRequestRepositoryImpl) Create(ctx context.Context, request *models.DecoratorRequest) error {
	var existing models.DecoratorRequest
	if err := r.db.WithContext(ctx).Where("email = ?", request.Email).First(&existing).Error; err == nil {
		return ErrRequestAlreadyExists
	}

	return r.db.WithContext(ctx).Create(request).Error
}

func (r *DecoratorRequestRepositoryImpl) GetByID(ctx context.Context, id string) (*models.DecoratorRequest, error) {
	var request models.DecoratorRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *DecoratorRequestRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.DecoratorRequest, error) {
	var request models.DecoratorRequest
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *DecoratorRequestRepositoryImpl) FindAll(ctx context.Context) ([]models.DecoratorRequest, error) {
	var requests []models.DecoratorRequest
	err := r.db.WithContext(ctx).Order("applied_at DESC").Find(&requests).Error
	return requests, err
}

// Approve flips the request to approved and promotes the applicant's user
// record in one transaction. The applicant's specialty and experience are
// copied onto the user so the public decorator profile matches what they
// applied with.
func (r *DecoratorRequestRepositoryImpl) Approve(ctx context.Context, id string) (*models.DecoratorRequest, error) {
	var request models.DecoratorRequest

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		if request.Status != models.RequestStatusPending {
			return ErrRequestAlreadyProcessed
		}

		now := time.Now()
		if err := tx.Model(&request).Updates(map[string]interface{}{
			"status":     models.RequestStatusApproved,
			"updated_at": now,
		}).Error; err != nil {
			return err
		}

		result := tx.Model(&models.User{}).Where("email = ?", request.Email).Updates(map[string]interface{}{
			"role":             models.UserRoleDecorator,
			"specialty":        request.Specialty,
			"experience_years": request.ExperienceYears,
			"updated_at":       now,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	request.Status = models.RequestStatusApproved
	return &request, nil
}

func (r *DecoratorRequestRepositoryImpl) Reject(ctx context.Context, id string) (*models.DecoratorRequest, error) {
	var request models.DecoratorRequest

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		if request.Status != models.RequestStatusPending {
			return ErrRequestAlreadyProcessed
		}

		return tx.Model(&request).Updates(map[string]interface{}{
			"status":     models.RequestStatusRejected,
			"updated_at": time.Now(),
		}).Error
	})
	if err != nil {
		return nil, err
	}

	request.Status = models.RequestStatusRejected
	return &request, nil
}

package repositories

import (
	"context"
	"errors"
	"strings"

	"eventora_backend/internal/models"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

// ServiceFilter narrows the public catalog listing. Zero values mean
// "no constraint"; Category "All" is treated the same as empty.
type ServiceFilter struct {
	Search   string
	Category string
	MinPrice *int
	MaxPrice *int
	Page     int
	Limit    int
}

type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Service, error)
	Delete(ctx context.Context, id string) error
	FindWithFilter(ctx context.Context, filter ServiceFilter) ([]models.Service, int64, error)
	DistinctLocations(ctx context.Context) ([]string, error)
	CountAll(ctx context.Context) (int64, error)
}

type ServiceRepositoryImpl struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &ServiceRepositoryImpl{db: db}
}

func (r *ServiceRepositoryImpl) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *ServiceRepositoryImpl) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Service, error) {
	result := r.db.WithContext(ctx).Model(&models.Service{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrServiceNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ServiceRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Service{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepositoryImpl) FindWithFilter(ctx context.Context, filter ServiceFilter) ([]models.Service, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Service{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if filter.Category != "" && filter.Category != "All" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("cost >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("cost <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 6
	}

	var services []models.Service
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&services).Error
	if err != nil {
		return nil, 0, err
	}

	return services, total, nil
}

func (r *ServiceRepositoryImpl) DistinctLocations(ctx context.Context) ([]string, error) {
	var locations []string
	err := r.db.WithContext(ctx).Model(&models.Service{}).
		Where("location <> ''").
		Distinct("location").
		Order("location ASC").
		Pluck("location", &locations).Error
	return locations, err
}

func (r *ServiceRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Service{}).Count(&count).Error
	return count, err
}

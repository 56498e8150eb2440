package services

import (
	"context"

	"eventora_backend/internal/models"
	"eventora_backend/internal/repositories"
	"eventora_backend/internal/services/dto"
	"eventora_backend/pkg/apperrors"
)

type CatalogService interface {
	List(ctx context.Context, query *dto.ServiceListQuery) (*dto.ServiceListResponse, error)
	Get(ctx context.Context, id string) (*models.Service, error)
	Locations(ctx context.Context) ([]string, error)
	Create(ctx context.Context, creatorEmail string, req *dto.CreateServiceRequest) (*models.Service, error)
	Update(ctx context.Context, id string, req *dto.UpdateServiceRequest) (*models.Service, error)
	Delete(ctx context.Context, id string) error
}

type CatalogServiceImpl struct {
	serviceRepo repositories.ServiceRepository
}

func NewCatalogService(serviceRepo repositories.ServiceRepository) CatalogService {
	return &CatalogServiceImpl{serviceRepo: serviceRepo}
}

func (s *CatalogServiceImpl) List(ctx context.Context, query *dto.ServiceListQuery) (*dto.ServiceListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 || limit > 100 {
		limit = 6
	}

	filter := repositories.ServiceFilter{
		Search:   query.Search,
		Category: query.Category,
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
		Page:     page,
		Limit:    limit,
	}

	services, total, err := s.serviceRepo.FindWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.ServiceListResponse{
		Services:   services,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *CatalogServiceImpl) Get(ctx context.Context, id string) (*models.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.NewNotFoundError("service", "Service not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return service, nil
}

func (s *CatalogServiceImpl) Locations(ctx context.Context) ([]string, error) {
	locations, err := s.serviceRepo.DistinctLocations(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return locations, nil
}

func (s *CatalogServiceImpl) Create(ctx context.Context, creatorEmail string, req *dto.CreateServiceRequest) (*models.Service, error) {
	service := &models.Service{
		Name:        req.ServiceName,
		Description: req.Description,
		ImageURL:    req.Image,
		Category:    req.Category,
		Location:    req.Location,
		Cost:        req.Cost,
		Unit:        req.Unit,
		CreatedBy:   creatorEmail,
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return service, nil
}

func (s *CatalogServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateServiceRequest) (*models.Service, error) {
	updates := map[string]interface{}{}
	if req.ServiceName != nil {
		updates["name"] = *req.ServiceName
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image_url"] = *req.Image
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Cost != nil {
		updates["cost"] = *req.Cost
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}

	if len(updates) == 0 {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	service, err := s.serviceRepo.Update(ctx, id, updates)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.NewNotFoundError("service", "Service not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return service, nil
}

func (s *CatalogServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.serviceRepo.Delete(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return apperrors.NewNotFoundError("service", "Service not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

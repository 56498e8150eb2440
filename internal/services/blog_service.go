package services

import (
	"context"
	"time"

	"eventora_backend/internal/models"
	"eventora_backend/internal/repositories"
	"eventora_backend/internal/services/dto"
	"eventora_backend/pkg/apperrors"
)

type BlogService interface {
	Create(ctx context.Context, authorEmail string, req *dto.CreateBlogRequest) (*models.Blog, error)
	Get(ctx context.Context, id string) (*models.Blog, error)
	ListAll(ctx context.Context) ([]models.Blog, error)
	Delete(ctx context.Context, id string) error
}

type BlogServiceImpl struct {
	blogRepo repositories.BlogRepository
}

func NewBlogService(blogRepo repositories.BlogRepository) BlogService {
	return &BlogServiceImpl{blogRepo: blogRepo}
}

func (s *BlogServiceImpl) Create(ctx context.Context, authorEmail string, req *dto.CreateBlogRequest) (*models.Blog, error) {
	blog := &models.Blog{
		Title:            req.Title,
		ImageURL:         req.Image,
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
		AuthorEmail:      authorEmail,
		PublishedAt:      time.Now(),
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return blog, nil
}

func (s *BlogServiceImpl) Get(ctx context.Context, id string) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBlogNotFound) {
			return nil, apperrors.NewNotFoundError("blog", "Blog post not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return blog, nil
}

func (s *BlogServiceImpl) ListAll(ctx context.Context) ([]models.Blog, error) {
	blogs, err := s.blogRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return blogs, nil
}

func (s *BlogServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.blogRepo.Delete(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBlogNotFound) {
			return apperrors.NewNotFoundError("blog", "Blog post not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

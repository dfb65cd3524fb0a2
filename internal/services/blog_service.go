package services

import (
	"context"

	"techcare/internal/models"
	"techcare/internal/repositories/interfaces"
)

type BlogService interface {
	List(ctx context.Context) ([]*models.Blog, error)
}

type blogService struct {
	repo interfaces.BlogRepository
}

func NewBlogService(repo interfaces.BlogRepository) BlogService {
	return &blogService{repo: repo}
}

func (s *blogService) List(ctx context.Context) ([]*models.Blog, error) {
	return s.repo.GetAll(ctx)
}

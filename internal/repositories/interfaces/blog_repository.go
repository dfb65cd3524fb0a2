package interfaces

import (
	"context"

	"techcare/internal/models"
)

type BlogRepository interface {
	GetAll(ctx context.Context) ([]*models.Blog, error)
}

package interfaces

import (
	"context"

	"techcare/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceRepository interface {
	GetAll(ctx context.Context) ([]*models.Service, error)
	GetRecent(ctx context.Context, limit int) ([]*models.Service, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) (primitive.ObjectID, error)
}

package interfaces

import (
	"context"

	"techcare/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewRepository interface {
	GetByServiceID(ctx context.Context, serviceID primitive.ObjectID) ([]*models.Review, error)
	GetTopRated(ctx context.Context, limit int) ([]*models.Review, error)
	GetByUserMail(ctx context.Context, email string) ([]*models.Review, error)
	Create(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, rating, review string) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

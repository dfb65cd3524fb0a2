package services

import (
	"context"

	"techcare/internal/models"
	"techcare/internal/repositories/interfaces"
	"techcare/internal/validators"
	"techcare/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewService interface {
	ListForService(ctx context.Context, serviceID primitive.ObjectID) ([]*models.Review, error)
	ListTopRated(ctx context.Context, limit int) ([]*models.Review, error)
	ListForUser(ctx context.Context, email string) ([]*models.Review, error)
	Create(ctx context.Context, serviceID primitive.ObjectID, req *validators.ReviewCreateRequest) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, req *validators.ReviewUpdateRequest) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type reviewService struct {
	repo   interfaces.ReviewRepository
	logger *logger.Logger
}

func NewReviewService(repo interfaces.ReviewRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		repo:   repo,
		logger: logger,
	}
}

func (s *reviewService) ListForService(ctx context.Context, serviceID primitive.ObjectID) ([]*models.Review, error) {
	return s.repo.GetByServiceID(ctx, serviceID)
}

func (s *reviewService) ListTopRated(ctx context.Context, limit int) ([]*models.Review, error) {
	return s.repo.GetTopRated(ctx, limit)
}

func (s *reviewService) ListForUser(ctx context.Context, email string) ([]*models.Review, error) {
	return s.repo.GetByUserMail(ctx, email)
}

// Create persists the review against the given service id. The id is not
// checked against the services collection; the frontend only posts from an
// existing service page.
func (s *reviewService) Create(ctx context.Context, serviceID primitive.ObjectID, req *validators.ReviewCreateRequest) (primitive.ObjectID, error) {
	review := &models.Review{
		ServiceID:   serviceID,
		ServiceName: req.ServiceName,
		Review:      req.Review,
		Rating:      req.Rating,
		UserMail:    req.Email,
		UserName:    req.Name,
		UserPhoto:   req.UserPhoto,
	}

	id, err := s.repo.Create(ctx, review)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithFields(map[string]interface{}{
		"review_id":  id.Hex(),
		"service_id": serviceID.Hex(),
		"rating":     review.Rating,
	}).Info("Review created")

	return id, nil
}

func (s *reviewService) Update(ctx context.Context, id primitive.ObjectID, req *validators.ReviewUpdateRequest) (*models.UpdateResult, error) {
	result, err := s.repo.Update(ctx, id, req.Rating, req.Review)
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		s.logger.WithField("review_id", id.Hex()).Warn("Review update matched no document")
	}

	return result, nil
}

func (s *reviewService) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	if deleted == 0 {
		s.logger.WithField("review_id", id.Hex()).Warn("Review delete matched no document")
	}

	return deleted, nil
}

package services

import (
	"context"
	"errors"
	"time"

	"techcare/internal/models"
	"techcare/internal/repositories/interfaces"
	"techcare/internal/validators"
	"techcare/pkg/logger"
	"techcare/pkg/media"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceService interface {
	List(ctx context.Context) ([]*models.Service, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Service, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	Create(ctx context.Context, req *validators.ServiceCreateRequest) (primitive.ObjectID, error)
}

type serviceService struct {
	repo          interfaces.ServiceRepository
	uploader      media.Uploader
	uploadTimeout time.Duration
	logger        *logger.Logger
}

func NewServiceService(repo interfaces.ServiceRepository, uploader media.Uploader, uploadTimeout time.Duration, logger *logger.Logger) ServiceService {
	return &serviceService{
		repo:          repo,
		uploader:      uploader,
		uploadTimeout: uploadTimeout,
		logger:        logger,
	}
}

func (s *serviceService) List(ctx context.Context) ([]*models.Service, error) {
	return s.repo.GetAll(ctx)
}

func (s *serviceService) ListRecent(ctx context.Context, limit int) ([]*models.Service, error) {
	return s.repo.GetRecent(ctx, limit)
}

func (s *serviceService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	return s.repo.GetByID(ctx, id)
}

// Create uploads the image first and only persists the document once the
// media host has returned a URL, so a failed upload never leaves a service
// without an image.
func (s *serviceService) Create(ctx context.Context, req *validators.ServiceCreateRequest) (primitive.ObjectID, error) {
	uploadCtx := ctx
	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		uploadCtx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	imageURL, err := s.uploader.Upload(uploadCtx, req.FormData.ImageString)
	if err != nil {
		if errors.Is(err, media.ErrUploadTimeout) {
			s.logger.WithField("serviceName", req.FormData.ServiceName).Warn("Image upload timed out")
		} else {
			s.logger.WithError(err).Error("Image upload failed")
		}
		return primitive.NilObjectID, err
	}

	service := &models.Service{
		ServiceName: req.FormData.ServiceName,
		ImageURL:    imageURL,
		Price:       req.FormData.Price,
		Description: req.FormData.Description,
	}

	id, err := s.repo.Create(ctx, service)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithFields(map[string]interface{}{
		"service_id":  id.Hex(),
		"serviceName": service.ServiceName,
	}).Info("Service created")

	return id, nil
}

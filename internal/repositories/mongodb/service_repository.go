package mongodb

import (
	"context"
	"fmt"
	"time"

	"techcare/internal/models"
	"techcare/internal/repositories/interfaces"
	"techcare/internal/services"
	"techcare/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type serviceRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewServiceRepository(db *mongo.Database, cache services.CacheService) interfaces.ServiceRepository {
	return &serviceRepository{
		collection: db.Collection("services"),
		cache:      cache,
	}
}

func (r *serviceRepository) GetAll(ctx context.Context) ([]*models.Service, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find services: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeServices(ctx, cursor)
}

func (r *serviceRepository) GetRecent(ctx context.Context, limit int) ([]*models.Service, error) {
	cacheKey := fmt.Sprintf("%s_%d", utils.RecentServicesCacheKey, limit)
	if r.cache != nil {
		var cached []*models.Service
		if err := r.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "updatedDate", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find recent services: %w", err)
	}
	defer cursor.Close(ctx)

	svcs, err := decodeServices(ctx, cursor)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Set(ctx, cacheKey, svcs, utils.ListingCacheTTL)
	}

	return svcs, nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	var service models.Service
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return &service, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *models.Service) (primitive.ObjectID, error) {
	service.ID = primitive.NewObjectID()
	service.UpdatedDate = time.Now()

	_, err := r.collection.InsertOne(ctx, service)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create service: %w", err)
	}

	r.invalidateRecentCache(ctx)

	return service.ID, nil
}

func (r *serviceRepository) invalidateRecentCache(ctx context.Context) {
	if r.cache != nil {
		cacheKey := fmt.Sprintf("%s_%d", utils.RecentServicesCacheKey, utils.RecentServicesLimit)
		r.cache.Delete(ctx, cacheKey)
	}
}

func decodeServices(ctx context.Context, cursor *mongo.Cursor) ([]*models.Service, error) {
	var services []*models.Service
	for cursor.Next(ctx) {
		var service models.Service
		if err := cursor.Decode(&service); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, &service)
	}

	return services, nil
}

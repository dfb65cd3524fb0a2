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

type reviewRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewReviewRepository(db *mongo.Database, cache services.CacheService) interfaces.ReviewRepository {
	return &reviewRepository{
		collection: db.Collection("reviews"),
		cache:      cache,
	}
}

func (r *reviewRepository) GetByServiceID(ctx context.Context, serviceID primitive.ObjectID) ([]*models.Review, error) {
	filter := bson.M{"serviceId": serviceID}
	return r.findReviews(ctx, filter, options.Find().SetSort(bson.D{{Key: "updatedDate", Value: -1}}))
}

// GetTopRated lists the latest five-star reviews. Rating is stored as a
// string, so the filter matches the literal token "5".
func (r *reviewRepository) GetTopRated(ctx context.Context, limit int) ([]*models.Review, error) {
	cacheKey := fmt.Sprintf("%s_%d", utils.TopReviewsCacheKey, limit)
	if r.cache != nil {
		var cached []*models.Review
		if err := r.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	filter := bson.M{"rating": utils.TopRatingToken}
	opts := options.Find().
		SetSort(bson.D{{Key: "updatedDate", Value: -1}}).
		SetLimit(int64(limit))

	reviews, err := r.findReviews(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Set(ctx, cacheKey, reviews, utils.ListingCacheTTL)
	}

	return reviews, nil
}

func (r *reviewRepository) GetByUserMail(ctx context.Context, email string) ([]*models.Review, error) {
	filter := bson.M{"userMail": email}
	return r.findReviews(ctx, filter, options.Find().SetSort(bson.D{{Key: "updatedDate", Value: -1}}))
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	review.ID = primitive.NewObjectID()
	review.UpdatedDate = time.Now()

	_, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create review: %w", err)
	}

	r.invalidateTopRatedCache(ctx)

	return review.ID, nil
}

// Update patches exactly rating and review. updatedDate is left alone so
// an edit does not reorder the recent-first listings.
func (r *reviewRepository) Update(ctx context.Context, id primitive.ObjectID, rating, review string) (*models.UpdateResult, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"rating": rating,
			"review": review,
		}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	if result.MatchedCount > 0 {
		r.invalidateTopRatedCache(ctx)
	}

	return &models.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete review: %w", err)
	}

	if result.DeletedCount > 0 {
		r.invalidateTopRatedCache(ctx)
	}

	return result.DeletedCount, nil
}

func (r *reviewRepository) findReviews(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Review, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []*models.Review
	for cursor.Next(ctx) {
		var review models.Review
		if err := cursor.Decode(&review); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *reviewRepository) invalidateTopRatedCache(ctx context.Context) {
	if r.cache != nil {
		cacheKey := fmt.Sprintf("%s_%d", utils.TopReviewsCacheKey, utils.TopReviewsLimit)
		r.cache.Delete(ctx, cacheKey)
	}
}

package mongodb

import (
	"context"
	"fmt"

	"techcare/internal/models"
	"techcare/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type blogRepository struct {
	collection *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) interfaces.BlogRepository {
	return &blogRepository{
		collection: db.Collection("blogs"),
	}
}

func (r *blogRepository) GetAll(ctx context.Context) ([]*models.Blog, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find blogs: %w", err)
	}
	defer cursor.Close(ctx)

	var blogs []*models.Blog
	for cursor.Next(ctx) {
		var blog models.Blog
		if err := cursor.Decode(&blog); err != nil {
			return nil, fmt.Errorf("failed to decode blog: %w", err)
		}
		blogs = append(blogs, &blog)
	}

	return blogs, nil
}

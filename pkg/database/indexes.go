package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes the listing routes sort and filter on.
// CreateMany is idempotent for identical specs, so startup can call this
// unconditionally.
func (m *MongoDB) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	services := []mongo.IndexModel{
		{Keys: bson.D{{Key: "updatedDate", Value: -1}}},
	}
	if _, err := m.Collection("services").Indexes().CreateMany(ctx, services); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}

	reviews := []mongo.IndexModel{
		{Keys: bson.D{{Key: "serviceId", Value: 1}, {Key: "updatedDate", Value: -1}}},
		{Keys: bson.D{{Key: "userMail", Value: 1}, {Key: "updatedDate", Value: -1}}},
		{Keys: bson.D{{Key: "rating", Value: 1}, {Key: "updatedDate", Value: -1}}},
	}
	if _, err := m.Collection("reviews").Indexes().CreateMany(ctx, reviews); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}

	return nil
}

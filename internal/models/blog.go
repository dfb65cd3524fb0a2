package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a published article shown on the blog page. Read-only; documents
// are seeded outside this service.
type Blog struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	ImageURL      string             `json:"imageURL" bson:"imageURL"`
	Description   string             `json:"description" bson:"description"`
	PublishedDate time.Time          `json:"publishedDate" bson:"publishedDate"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a maintenance service offered on the site. Price is kept as
// received (number or string) because existing documents carry both forms.
type Service struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ServiceName string             `json:"serviceName" bson:"serviceName"`
	ImageURL    string             `json:"imageURL" bson:"imageURL"`
	Price       interface{}        `json:"price" bson:"price"`
	Description string             `json:"description" bson:"description"`
	UpdatedDate time.Time          `json:"updatedDate" bson:"updatedDate"`
}

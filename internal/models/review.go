package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user review of a service. ServiceName is a denormalized copy
// taken at creation time. Rating is a string; the five-star listing filters
// on the literal token "5".
type Review struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ServiceID   primitive.ObjectID `json:"serviceId" bson:"serviceId"`
	ServiceName string             `json:"serviceName" bson:"serviceName"`
	Review      string             `json:"review" bson:"review"`
	Rating      string             `json:"rating" bson:"rating"`
	UserMail    string             `json:"userMail" bson:"userMail"`
	UserName    string             `json:"userName" bson:"userName"`
	UserPhoto   string             `json:"userPhoto" bson:"userPhoto"`
	UpdatedDate time.Time          `json:"updatedDate" bson:"updatedDate"`
}

// UpdateResult reports the outcome of a partial review update so a no-op
// (unknown id) stays distinguishable from a successful edit.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// internal/domain/models/campaign.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign is a donation drive created by a user.
type Campaign struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email           string             `bson:"email" json:"email"` // creator
	PetName         string             `bson:"petName" json:"petName"`
	PetPicture      string             `bson:"petPicture,omitempty" json:"petPicture,omitempty"`
	MaxDonation     int64              `bson:"maxDonation" json:"maxDonation"` // cents
	ShortDescription string            `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	LongDescription  string            `bson:"longDescription,omitempty" json:"longDescription,omitempty"`
	LastDate        time.Time          `bson:"lastDate,omitempty" json:"lastDate,omitempty"`
	IsPaused        bool               `bson:"isPaused" json:"isPaused"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

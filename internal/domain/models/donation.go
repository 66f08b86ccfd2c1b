// internal/domain/models/donation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donator is one entry in a donation record's ordered donators array.
type Donator struct {
	DisplayName string `bson:"displayName" json:"displayName"`
	Amount      int64  `bson:"amount" json:"amount"` // cents
}

// Donation aggregates every successful payment for one campaign.
//
// There is exactly one document per campaignId: the first payment
// creates it ($setOnInsert) and every payment appends one Donator
// ($push), in arrival order. The metadata fields keep the values from
// the first payment and are never overwritten.
type Donation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CampaignID      string             `bson:"campaignId" json:"campaignId"`
	Email           string             `bson:"email" json:"email"` // campaign creator
	PetName         string             `bson:"petName,omitempty" json:"petName,omitempty"`
	PetPicture      string             `bson:"petPicture,omitempty" json:"petPicture,omitempty"`
	DonnerName      string             `bson:"donnerName,omitempty" json:"donnerName,omitempty"`
	CurrentDonation int64              `bson:"currentDonation" json:"currentDonation"` // cents
	MaxDonation     int64              `bson:"maxDonation" json:"maxDonation"`         // cents
	IsPaused        bool               `bson:"isPaused" json:"isPaused"`
	TransactionID   string             `bson:"transactionId" json:"transactionId"`
	Time            time.Time          `bson:"time" json:"time"`
	Status          string             `bson:"status,omitempty" json:"status,omitempty"`
	Donators        []Donator          `bson:"donators" json:"donators"`
}

// internal/app/store/donations/donationstore.go

// Package donationstore keeps one donation record per campaign and
// appends a donator entry for every successful payment.
//
// Concurrency: the append rides a single conditional upsert
// ($setOnInsert + $push), so simultaneous donors to the same campaign
// serialize inside Mongo. A read-modify-write would lose updates under
// concurrent donors.
package donationstore

import (
	"context"
	"time"

	"github.com/dalemusser/pawhub/internal/app/system/normalize"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("donations")}
}

// Record is one successful payment to apply.
type Record struct {
	CampaignID      string
	Email           string // campaign creator
	PetName         string
	PetPicture      string
	DonnerName      string
	CurrentDonation int64
	MaxDonation     int64
	IsPaused        bool
	TransactionID   string
	Status          string
	Donator         models.Donator
}

// BuildUpsert produces the filter and update for one payment. The
// campaignId lives only in the filter: Mongo copies the equality field
// into a newly inserted document, and repeating it under $setOnInsert
// would be a path conflict. Metadata goes under $setOnInsert so the
// first payment's values stick; the donator entry is always pushed.
func BuildUpsert(rec Record, now time.Time) (filter, update bson.M) {
	filter = bson.M{"campaignId": rec.CampaignID}
	update = bson.M{
		"$setOnInsert": bson.M{
			"email":           normalize.Email(rec.Email),
			"petName":         rec.PetName,
			"petPicture":      rec.PetPicture,
			"donnerName":      rec.DonnerName,
			"currentDonation": rec.CurrentDonation,
			"maxDonation":     rec.MaxDonation,
			"isPaused":        rec.IsPaused,
			"transactionId":   rec.TransactionID,
			"time":            now,
			"status":          rec.Status,
		},
		"$push": bson.M{"donators": rec.Donator},
	}
	return filter, update
}

// Apply records one payment atomically and returns the resulting
// donation document.
func (s *Store) Apply(ctx context.Context, rec Record) (*models.Donation, error) {
	filter, update := BuildUpsert(rec, time.Now())
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var d models.Donation
	if err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ByDonator returns every donation record containing an entry under
// the given display name. Donator entries carry no account reference
// of their own, so "my donations" resolves by display name.
func (s *Store) ByDonator(ctx context.Context, displayName string) ([]models.Donation, error) {
	return s.find(ctx, bson.M{"donators.displayName": displayName})
}

// ByCreator returns the donation records for campaigns the email
// created, donator roll-ups included.
func (s *Store) ByCreator(ctx context.Context, email string) ([]models.Donation, error) {
	return s.find(ctx, bson.M{"email": normalize.Email(email)})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Donation, error) {
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	donations := []models.Donation{}
	if err := cur.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

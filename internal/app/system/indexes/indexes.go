// internal/app/system/indexes/indexes.go

// Package indexes declares the Mongo indexes the service relies on.
// EnsureAll runs at startup (EnsureSchema hook); every ensure is
// idempotent, and errors are aggregated so startup can fail fast with
// the full picture.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll creates every declared index.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureDonations(ctx, db); err != nil {
		problems = append(problems, "donations: "+err.Error())
	}
	if err := ensureAdoptionRequests(ctx, db); err != nil {
		problems = append(problems, "adoption_requests: "+err.Error())
	}
	if err := ensureCampaigns(ctx, db); err != nil {
		problems = append(problems, "campaigns: "+err.Error())
	}
	if err := ensurePets(ctx, db); err != nil {
		problems = append(problems, "pets: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// users.email is the uniqueness constraint behind the 409 on duplicate
// sign-up.
func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	return err
}

// donations.campaignId is the upsert key: one record per campaign.
func ensureDonations(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("donations").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "campaignId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("campaignId_unique"),
	})
	return err
}

func ensureAdoptionRequests(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("adoption_requests").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "petId", Value: 1}}, Options: options.Index().SetName("petId")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("email")},
	})
	return err
}

func ensureCampaigns(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("campaigns").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email"),
	})
	return err
}

// Both species collections are probed by author email for the owner
// join.
func ensurePets(ctx context.Context, db *mongo.Database) error {
	for _, coll := range []string{"dogs", "cats"} {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "author.email", Value: 1}},
			Options: options.Index().SetName("author_email"),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// internal/app/store/adoptions/adoptionstore.go

// Package adoptionstore holds adoption requests and the owner-side
// join over them. A request references its pet by id only; the pet
// may have been deleted since, and every read path tolerates that by
// omission.
package adoptionstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/pawhub/internal/app/system/normalize"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidID is returned before any store access when an id is not
// well-formed ObjectID hex.
var ErrInvalidID = errors.New("malformed request id")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("adoption_requests")}
}

// Create inserts a request in pending state. The pet id is stored as
// given; existence is not checked.
func (s *Store) Create(ctx context.Context, req models.AdoptionRequest) (models.AdoptionRequest, error) {
	req.ID = primitive.NewObjectID()
	req.Email = normalize.Email(req.Email)
	if req.Status == "" {
		req.Status = "pending"
	}
	req.Requested = time.Now()

	if _, err := s.c.InsertOne(ctx, req); err != nil {
		return models.AdoptionRequest{}, err
	}
	return req, nil
}

// ListAll returns every request in the system, store order.
func (s *Store) ListAll(ctx context.Context) ([]models.AdoptionRequest, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reqs := []models.AdoptionRequest{}
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// ListByRequester returns the requests a user filed, newest first.
func (s *Store) ListByRequester(ctx context.Context, email string) ([]models.AdoptionRequest, error) {
	cur, err := s.c.Find(ctx, bson.M{"email": normalize.Email(email)},
		options.Find().SetSort(bson.D{{Key: "requestedAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reqs := []models.AdoptionRequest{}
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// UpdateStatus sets one request's status (approve/reject).
func (s *Store) UpdateStatus(ctx context.Context, idHex, status string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, ErrInvalidID
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes a request, which is how a requester cancels. Only
// the requester's own record qualifies.
func (s *Store) Delete(ctx context.Context, idHex, requesterEmail string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, ErrInvalidID
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "email": normalize.Email(requesterEmail)})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

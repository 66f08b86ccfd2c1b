// internal/app/store/campaigns/campaignstore.go
package campaignstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/pawhub/internal/app/system/normalize"
	"github.com/dalemusser/pawhub/internal/app/system/paging"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidID is returned before any store access when an id is not
// well-formed ObjectID hex.
var ErrInvalidID = errors.New("malformed campaign id")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("campaigns")}
}

// Create inserts a campaign for its creator.
func (s *Store) Create(ctx context.Context, c models.Campaign) (models.Campaign, error) {
	c.ID = primitive.NewObjectID()
	c.Email = normalize.Email(c.Email)
	c.CreatedAt = time.Now()

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Campaign{}, err
	}
	return c, nil
}

// GetByID returns one campaign, or (nil, nil) when none matches.
func (s *Store) GetByID(ctx context.Context, idHex string) (*models.Campaign, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidID
	}
	var c models.Campaign
	err = s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListAll returns every campaign, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Campaign, error) {
	return s.find(ctx, bson.M{})
}

// ListByEmail returns one creator's campaigns, newest first.
func (s *Store) ListByEmail(ctx context.Context, email string) ([]models.Campaign, error) {
	return s.find(ctx, bson.M{"email": normalize.Email(email)})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Campaign, error) {
	cur, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	campaigns := []models.Campaign{}
	if err := cur.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// PagedResult is one page of campaigns.
type PagedResult struct {
	Items       []models.Campaign `json:"items"`
	TotalCount  int64             `json:"totalCount"`
	TotalPages  int64             `json:"totalPages"`
	CurrentPage int64             `json:"currentPage"`
}

// ListPaged returns one page of all campaigns in store order.
func (s *Store) ListPaged(ctx context.Context, page, limit int64) (PagedResult, error) {
	if limit < 1 {
		limit = paging.DefaultLimit
	}
	if page < 1 {
		page = 1
	}

	total, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return PagedResult{}, err
	}

	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSkip((page-1)*limit).SetLimit(limit))
	if err != nil {
		return PagedResult{}, err
	}
	defer cur.Close(ctx)

	items := []models.Campaign{}
	if err := cur.All(ctx, &items); err != nil {
		return PagedResult{}, err
	}

	return PagedResult{
		Items:       items,
		TotalCount:  total,
		TotalPages:  paging.TotalPages(total, limit),
		CurrentPage: page,
	}, nil
}

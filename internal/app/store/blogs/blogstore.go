// internal/app/store/blogs/blogstore.go
package blogstore

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
var ErrInvalidID = errors.New("malformed blog id")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("blogs")}
}

// Create inserts a post with an empty comment thread. The body is
// expected to be sanitized by the caller before it gets here.
func (s *Store) Create(ctx context.Context, b models.Blog) (models.Blog, error) {
	b.ID = primitive.NewObjectID()
	b.Email = normalize.Email(b.Email)
	b.CreatedAt = time.Now()
	if b.Comments == nil {
		b.Comments = []models.BlogComment{}
	}

	if _, err := s.c.InsertOne(ctx, b); err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

// AppendComment pushes one comment onto a post's thread, preserving
// arrival order. Returns the matched count (0 when the post is gone).
func (s *Store) AppendComment(ctx context.Context, idHex string, c models.BlogComment) (int64, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, ErrInvalidID
	}
	c.Email = normalize.Email(c.Email)
	c.PostedAt = time.Now()

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"comments": c}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// ListAll returns every post, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Blog, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	blogs := []models.Blog{}
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// GetByID returns one post, or (nil, nil) when none matches.
func (s *Store) GetByID(ctx context.Context, idHex string) (*models.Blog, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidID
	}
	var b models.Blog
	err = s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

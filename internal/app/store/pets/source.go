// internal/app/store/pets/source.go
package petstore

import (
	"context"

	"github.com/dalemusser/pawhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// source is one physical pet collection. The Store never touches a
// collection directly so tests can swap in an in-memory fake.
type source interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Pet, error)
	FindAll(ctx context.Context, filter bson.M) ([]models.Pet, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Pet, error)
	Insert(ctx context.Context, pet models.Pet) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// mongoSource backs a source with a real collection.
type mongoSource struct {
	c *mongo.Collection
}

func (m *mongoSource) Count(ctx context.Context, filter bson.M) (int64, error) {
	return m.c.CountDocuments(ctx, filter)
}

func (m *mongoSource) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Pet, error) {
	cur, err := m.c.Find(ctx, filter, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	pets := []models.Pet{}
	if err := cur.All(ctx, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

func (m *mongoSource) FindAll(ctx context.Context, filter bson.M) ([]models.Pet, error) {
	cur, err := m.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	pets := []models.Pet{}
	if err := cur.All(ctx, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

func (m *mongoSource) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Pet, error) {
	var p models.Pet
	err := m.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *mongoSource) Insert(ctx context.Context, pet models.Pet) error {
	_, err := m.c.InsertOne(ctx, pet)
	return err
}

func (m *mongoSource) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error) {
	res, err := m.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (m *mongoSource) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := m.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// internal/app/store/pets/petstore.go

// Package petstore presents the two species-partitioned collections
// (dogs, cats) as one logical pet catalog. Callers never pick a
// collection themselves; every operation routes through one explicit
// species map.
package petstore

import (
	"context"
	"errors"

	"github.com/dalemusser/pawhub/internal/app/system/normalize"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrInvalidID is returned before any store access when an id is
	// not well-formed ObjectID hex.
	ErrInvalidID = errors.New("malformed pet id")

	// ErrUnknownSpecies is returned when a species tag matches neither
	// collection. Writes are rejected, never silently dropped.
	ErrUnknownSpecies = errors.New(`species must be "dog" or "cat"`)
)

type Store struct {
	dogs source
	cats source
}

func New(db *mongo.Database) *Store {
	return &Store{
		dogs: &mongoSource{c: db.Collection("dogs")},
		cats: &mongoSource{c: db.Collection("cats")},
	}
}

// sourceFor is the species-to-collection map. Accepts singular and
// plural tags, rejects everything else.
func (s *Store) sourceFor(species string) (source, error) {
	switch species {
	case "dog", "dogs":
		return s.dogs, nil
	case "cat", "cats":
		return s.cats, nil
	default:
		return nil, ErrUnknownSpecies
	}
}

// GetByID resolves an id using the route's category hint: "catlist"
// selects the cat collection, anything else the dogs. A well-formed id
// with no match returns (nil, nil), not an error.
func (s *Store) GetByID(ctx context.Context, categoryHint, idHex string) (*models.Pet, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidID
	}
	src := s.dogs
	if categoryHint == "catlist" {
		src = s.cats
	}
	return src.FindByID(ctx, id)
}

// ListAll returns one species' full collection in store order.
func (s *Store) ListAll(ctx context.Context, species string) ([]models.Pet, error) {
	src, err := s.sourceFor(species)
	if err != nil {
		return nil, err
	}
	return src.FindAll(ctx, bson.M{})
}

// ListByAuthor returns every pet listed by the email, dogs first then
// cats. The owner/request join uses this as its probe set.
func (s *Store) ListByAuthor(ctx context.Context, email string) ([]models.Pet, error) {
	filter := bson.M{"author.email": normalize.Email(email)}
	dogs, err := s.dogs.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	cats, err := s.cats.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return append(dogs, cats...), nil
}

// Create routes the pet to its species collection.
func (s *Store) Create(ctx context.Context, pet models.Pet) (models.Pet, error) {
	src, err := s.sourceFor(string(pet.Species))
	if err != nil {
		return models.Pet{}, err
	}
	pet.ID = primitive.NewObjectID()
	if pet.Status == "" {
		pet.Status = "available"
	}
	if err := src.Insert(ctx, pet); err != nil {
		return models.Pet{}, err
	}
	return pet, nil
}

// updatableFields is the allow-list for Update. Species and author are
// deliberately absent: species is immutable (a pet never moves between
// collections) and ownership never changes hands through an edit.
var updatableFields = map[string]struct{}{
	"name":            {},
	"age":             {},
	"gender":          {},
	"location":        {},
	"description":     {},
	"longDescription": {},
	"breed":           {},
	"adoptionFee":     {},
	"weight":          {},
	"image":           {},
	"status":          {},
}

// Update replaces the allow-listed fields of one pet. Fields outside
// the allow-list are ignored. Returns the matched count (0 when the id
// has no record).
func (s *Store) Update(ctx context.Context, species, idHex string, fields map[string]any) (int64, error) {
	src, err := s.sourceFor(species)
	if err != nil {
		return 0, err
	}
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, ErrInvalidID
	}

	set := bson.M{}
	for k, v := range fields {
		if _, ok := updatableFields[k]; ok {
			set[k] = v
		}
	}
	if len(set) == 0 {
		return 0, nil
	}
	return src.Update(ctx, id, set)
}

// UpdateStatus is the narrow variant restricted to the status field.
func (s *Store) UpdateStatus(ctx context.Context, species, idHex, status string) (int64, error) {
	src, err := s.sourceFor(species)
	if err != nil {
		return 0, err
	}
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, ErrInvalidID
	}
	return src.Update(ctx, id, bson.M{"status": status})
}

// Delete removes at most one pet.
func (s *Store) Delete(ctx context.Context, species, idHex string) (int64, error) {
	src, err := s.sourceFor(species)
	if err != nil {
		return 0, err
	}
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return 0, ErrInvalidID
	}
	return src.Delete(ctx, id)
}

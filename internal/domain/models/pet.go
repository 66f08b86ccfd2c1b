// internal/domain/models/pet.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Species names the two physical pet collections. A pet lives in
// exactly one of them; the species never changes after creation.
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// PetAuthor identifies the user who listed a pet. Ownership checks
// match on the email.
type PetAuthor struct {
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

// Pet is an adoptable animal. Field names mirror the documents the SPA
// already writes, so tags are camelCase rather than snake_case.
type Pet struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name            string             `bson:"name" json:"name"`
	Age             string             `bson:"age,omitempty" json:"age,omitempty"`
	Species         Species            `bson:"species" json:"species"`
	Gender          string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Location        string             `bson:"location,omitempty" json:"location,omitempty"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	LongDescription string             `bson:"longDescription,omitempty" json:"longDescription,omitempty"`
	Breed           string             `bson:"breed,omitempty" json:"breed,omitempty"`
	AdoptionFee     string             `bson:"adoptionFee,omitempty" json:"adoptionFee,omitempty"`
	Weight          string             `bson:"weight,omitempty" json:"weight,omitempty"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	Status          string             `bson:"status,omitempty" json:"status,omitempty"` // available | pending | adopted
	Author          PetAuthor          `bson:"author" json:"author"`
}

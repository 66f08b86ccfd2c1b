// internal/domain/models/adoption.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdoptionRequest is a requester's application for one pet.
//
// PetID is a weak reference: nothing enforces that the pet still
// exists. Joins resolve it best-effort and silently skip requests whose
// pet is gone (see store/adoptions).
type AdoptionRequest struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PetID    string             `bson:"petId" json:"petId"`
	Email    string             `bson:"email" json:"email"` // requester
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address  string             `bson:"address,omitempty" json:"address,omitempty"`
	Status   string             `bson:"status" json:"status"` // pending | approved | rejected
	Requested time.Time         `bson:"requestedAt" json:"requestedAt"`
}

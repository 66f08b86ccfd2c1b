// internal/app/store/adoptions/join.go
package adoptionstore

import (
	"context"

	"github.com/dalemusser/pawhub/internal/domain/models"
)

// PetLister supplies the owner's pets across both species collections.
// Satisfied by petstore.Store.
type PetLister interface {
	ListByAuthor(ctx context.Context, email string) ([]models.Pet, error)
}

// OwnerRequest pairs one of the owner's pets with a request that
// references it.
type OwnerRequest struct {
	Pet     models.Pet             `json:"pet"`
	Request models.AdoptionRequest `json:"request"`
}

// JoinResult is the joined view plus how many requests were skipped,
// so the drop policy stays observable instead of silent.
type JoinResult struct {
	Matches []OwnerRequest `json:"matches"`
	Skipped int            `json:"skipped"`
}

// JoinOwnerRequests joins the owner's pets against every request in
// the system. All requests are read, not just those touching the
// owner's pets.
func (s *Store) JoinOwnerRequests(ctx context.Context, pets PetLister, ownerEmail string) (JoinResult, error) {
	owned, err := pets.ListByAuthor(ctx, ownerEmail)
	if err != nil {
		return JoinResult{}, err
	}
	requests, err := s.ListAll(ctx)
	if err != nil {
		return JoinResult{}, err
	}
	return Join(owned, requests), nil
}

// Join resolves each request's petId against the owned set. A request
// whose pet is not in the set (someone else's pet, or a dangling id)
// is counted and skipped, never an error.
func Join(owned []models.Pet, requests []models.AdoptionRequest) JoinResult {
	byID := make(map[string]models.Pet, len(owned))
	for _, p := range owned {
		byID[p.ID.Hex()] = p
	}

	res := JoinResult{Matches: []OwnerRequest{}}
	for _, req := range requests {
		pet, ok := byID[req.PetID]
		if !ok {
			res.Skipped++
			continue
		}
		res.Matches = append(res.Matches, OwnerRequest{Pet: pet, Request: req})
	}
	return res
}

// internal/app/store/pets/paged.go
package petstore

import (
	"context"

	"github.com/dalemusser/pawhub/internal/app/system/paging"
	"github.com/dalemusser/pawhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// PagedResult is one page of the merged catalog.
//
// TotalCount and TotalPages are always computed from the unfiltered
// sizes of both collections, even when a filter narrows Items. The
// SPA's pager was built against that behavior, so it is kept rather
// than corrected.
type PagedResult struct {
	Items       []models.Pet `json:"items"`
	TotalCount  int64        `json:"totalCount"`
	TotalPages  int64        `json:"totalPages"`
	CurrentPage int64        `json:"currentPage"`
}

// ListPaged returns one page of the catalog, with every dog record
// ordered before every cat record. The filter applies to the primary
// dog fetch only; when a page straddles the dog/cat boundary the cat
// shortfall is fetched unfiltered (a long-standing asymmetry the
// callers tolerate). A nil filter means no filtering.
func (s *Store) ListPaged(ctx context.Context, filter bson.M, page, limit int64) (PagedResult, error) {
	if filter == nil {
		filter = bson.M{}
	}
	if limit < 1 {
		limit = paging.DefaultLimit
	}
	if page < 1 {
		page = 1
	}

	dogTotal, err := s.dogs.Count(ctx, bson.M{})
	if err != nil {
		return PagedResult{}, err
	}
	catTotal, err := s.cats.Count(ctx, bson.M{})
	if err != nil {
		return PagedResult{}, err
	}

	w := paging.MergeWindow(page, limit, dogTotal)

	items := []models.Pet{}
	if w.Primary.Limit > 0 {
		dogs, err := s.dogs.Find(ctx, filter, w.Primary.Skip, w.Primary.Limit)
		if err != nil {
			return PagedResult{}, err
		}
		items = append(items, dogs...)
	}
	if w.Fallback.Limit > 0 {
		cats, err := s.cats.Find(ctx, bson.M{}, w.Fallback.Skip, w.Fallback.Limit)
		if err != nil {
			return PagedResult{}, err
		}
		items = append(items, cats...)
	}

	total := dogTotal + catTotal
	return PagedResult{
		Items:       items,
		TotalCount:  total,
		TotalPages:  paging.TotalPages(total, limit),
		CurrentPage: page,
	}, nil
}

// internal/app/system/paging/paging.go

// Package paging holds the page math for offset pagination, including
// the window computation that presents two collections as one virtual
// sequence (every dog record before every cat record).
package paging

import (
	"net/http"
	"strconv"
)

// DefaultLimit is the page size used when the caller sends none.
const DefaultLimit = 10

// MaxLimit caps caller-supplied page sizes.
const MaxLimit = 100

// ParsePage reads the 1-based "page" query parameter, defaulting to 1.
func ParsePage(r *http.Request) int64 {
	n, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParseLimit reads the "limit" query parameter, defaulting to
// DefaultLimit and clamping to MaxLimit.
func ParseLimit(r *http.Request) int64 {
	n, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || n < 1 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// Segment is one skip/limit fetch against a single collection.
// Limit == 0 means the segment fetches nothing.
type Segment struct {
	Skip  int64
	Limit int64
}

// Window says how to satisfy one page of the merged sequence: a fetch
// against the primary (dog) collection and, if the primary runs out
// inside the page, a fallback fetch against the secondary (cat)
// collection.
type Window struct {
	Primary  Segment
	Fallback Segment
}

// MergeWindow computes the fetch window for one page over the virtual
// sequence. primaryTotal is the primary collection's full size.
//
// When the page starts inside the primary range, the fallback (if any)
// always starts at offset 0: the primary can only run out at its exact
// end, and that end maps to the secondary's beginning.
func MergeWindow(page, limit, primaryTotal int64) Window {
	if page < 1 {
		page = 1
	}
	skip := (page - 1) * limit

	if skip >= primaryTotal {
		return Window{Fallback: Segment{Skip: skip - primaryTotal, Limit: limit}}
	}

	available := primaryTotal - skip
	if available >= limit {
		return Window{Primary: Segment{Skip: skip, Limit: limit}}
	}
	return Window{
		Primary:  Segment{Skip: skip, Limit: available},
		Fallback: Segment{Skip: 0, Limit: limit - available},
	}
}

// TotalPages is ceil(total/limit); zero when total is zero.
func TotalPages(total, limit int64) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

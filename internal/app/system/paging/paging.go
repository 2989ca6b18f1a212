// internal/app/system/paging/paging.go

// Package paging parses page/size/sort query parameters into a PageSpec for
// offset pagination. The spec doubles as the listing cache key, so every
// parameter that changes the result set must be part of it.
package paging

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// DefaultSize is the page size when the request does not name one.
	DefaultSize = 50
	// MaxSize caps the page size a client may request.
	MaxSize = 200
)

// PageSpec is a fully resolved page request. Page is 1-based. Sort is the
// field name, prefixed with "-" for descending order, already checked
// against the caller's allowed set.
type PageSpec struct {
	Page int
	Size int
	Sort string
}

// Parse reads page, size, and sort from the request. defaultSort is used
// when sort is absent or not in allowed; allowed entries are bare field
// names (both ascending and descending forms are accepted).
func Parse(r *http.Request, defaultSort string, allowed ...string) PageSpec {
	spec := PageSpec{Page: 1, Size: DefaultSize, Sort: defaultSort}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			spec.Page = n
		}
	}
	if s := query.Get(r, "size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			if n > MaxSize {
				n = MaxSize
			}
			spec.Size = n
		}
	}
	if s := strings.TrimSpace(query.Get(r, "sort")); s != "" {
		field := strings.TrimPrefix(s, "-")
		for _, a := range allowed {
			if field == a {
				spec.Sort = s
				break
			}
		}
	}
	return spec
}

// Key returns a stable cache key covering every parameter of the page.
func (p PageSpec) Key() string {
	return fmt.Sprintf("page=%d&size=%d&sort=%s", p.Page, p.Size, p.Sort)
}

// Skip returns the number of documents to skip for this page.
func (p PageSpec) Skip() int64 {
	return int64(p.Page-1) * int64(p.Size)
}

// FindOptions builds Mongo find options with skip, limit, and sort applied.
// "_id" is appended as a tiebreaker so page boundaries are stable.
func (p PageSpec) FindOptions() *options.FindOptions {
	field := strings.TrimPrefix(p.Sort, "-")
	dir := 1
	if strings.HasPrefix(p.Sort, "-") {
		dir = -1
	}
	sort := bson.D{{Key: field, Value: dir}}
	if field != "_id" {
		sort = append(sort, bson.E{Key: "_id", Value: 1})
	}
	return options.Find().SetSkip(p.Skip()).SetLimit(int64(p.Size)).SetSort(sort)
}

package catalog

import (
	"time"

	"github.com/feral-file/ff-catalog/internal/ledger"
)

// Pagination is a 1-based page request
type Pagination struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1"`
}

// SortToken is one ordering key of a listing
type SortToken struct {
	Field string
	Desc  bool
}

// CategoryFilter narrows a listing by local category tags.
// Codes and Uncategorized may both be set; a nil *CategoryFilter means no category filter.
type CategoryFilter struct {
	Codes         []string
	Uncategorized bool
}

// Filter is the normalized set of listing constraints. Nil fields are not applied.
type Filter struct {
	IDs           []string
	ExcludeIDs    []string
	Categories    *CategoryFilter
	Owner         *string
	Creator       *string
	MarketplaceID *string
	SerieID       *string
	Listed        *bool
	IsCapsule     *bool
	Locked        *bool
	PriceMin      *float64
	PriceMax      *float64
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	// LikedBy restricts the listing to series liked by this wallet
	LikedBy *string
}

// Query is a normalized catalog request
type Query struct {
	Pagination *Pagination
	Sort       []SortToken
	Filter     Filter
}

// Page returns the ledger page of the query, or nil when the caller did not paginate
func (q *Query) Page() *ledger.Page {
	if q == nil || q.Pagination == nil {
		return nil
	}
	return &ledger.Page{Number: q.Pagination.Page, Size: q.Pagination.Limit}
}

// LedgerSort converts the sort tokens to ledger sort keys
func (q *Query) LedgerSort() []ledger.Sort {
	if q == nil {
		return nil
	}
	sorts := make([]ledger.Sort, 0, len(q.Sort))
	for _, s := range q.Sort {
		sorts = append(sorts, ledger.Sort{Field: s.Field, Desc: s.Desc})
	}
	return sorts
}

// ViewOptions carries who is looking at an entity
type ViewOptions struct {
	// IncrementViews records a view event for the entity
	IncrementViews bool
	ViewerIP       string
	// ViewerWallet is the authenticated wallet, if any
	ViewerWallet *string
}

// PageInfo mirrors the ledger page indicator
type PageInfo struct {
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Page is one page of a listing
type Page[T any] struct {
	Data       []T      `json:"data"`
	TotalCount int      `json:"totalCount"`
	PageInfo   PageInfo `json:"pageInfo"`
}

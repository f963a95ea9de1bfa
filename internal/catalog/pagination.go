package catalog

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/ledger"
	"github.com/feral-file/ff-catalog/internal/store"
)

// Reconciler resolves the local parts of a query into id sets and produces the ledger
// listing spec. Narrowed listings carry an inclusion list and the ledger still paginates
// and counts, so totalCount and page info always come from the ledger.
type Reconciler struct {
	categories *CategoryResolver
	store      store.Store
}

// NewReconciler creates a pagination reconciler
func NewReconciler(categories *CategoryResolver, store store.Store) *Reconciler {
	return &Reconciler{categories: categories, store: store}
}

// Plan builds the ledger spec of a catalog query
func (r *Reconciler) Plan(ctx context.Context, q *Query) (ledger.NFTSpec, error) {
	f := q.Filter
	spec := ledger.NFTSpec{
		ExcludeIDs:    f.ExcludeIDs,
		Owner:         f.Owner,
		Creator:       f.Creator,
		MarketplaceID: f.MarketplaceID,
		SerieID:       f.SerieID,
		Listed:        f.Listed,
		IsCapsule:     f.IsCapsule,
		IsLocked:      f.Locked,
		PriceMin:      f.PriceMin,
		PriceMax:      f.PriceMax,
		CreatedFrom:   f.CreatedFrom,
		CreatedTo:     f.CreatedTo,
		Sort:          q.LedgerSort(),
		Page:          q.Page(),
	}

	// explicit ids and the category include set combine into one inclusion list
	if f.IDs != nil {
		spec.IDs = f.IDs
		spec.RestrictIDs = true
	}

	scope, err := r.categories.Resolve(ctx, f.Categories)
	if err != nil {
		return ledger.NFTSpec{}, err
	}
	if scope.Restricted {
		if spec.RestrictIDs {
			spec.IDs = intersect(spec.IDs, scope.Include)
		} else {
			spec.IDs = scope.Include
			spec.RestrictIDs = true
		}
	}
	if len(scope.Exclude) > 0 {
		spec.ExcludeIDs = append(append([]string{}, spec.ExcludeIDs...), scope.Exclude...)
	}
	if spec.RestrictIDs && spec.IDs == nil {
		spec.IDs = []string{}
	}

	if f.LikedBy != nil {
		liked, err := r.likedSet(ctx, *f.LikedBy)
		if err != nil {
			return ledger.NFTSpec{}, err
		}
		spec.Liked = liked
	}

	return spec, nil
}

func (r *Reconciler) likedSet(ctx context.Context, walletID string) (*ledger.LikedSet, error) {
	likes, err := r.store.GetLikes(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve likes: %w", err)
	}

	set := &ledger.LikedSet{SerieIDs: []string{}}
	seen := make(map[string]struct{}, len(likes))
	for _, like := range likes {
		if !domain.HasSerie(like.SerieID) {
			set.NFTIDs = append(set.NFTIDs, like.NFTID)
			continue
		}
		if _, ok := seen[like.SerieID]; ok {
			continue
		}
		seen[like.SerieID] = struct{}{}
		set.SerieIDs = append(set.SerieIDs, like.SerieID)
	}
	return set, nil
}

// toPage copies the ledger totals and page info onto a page of records
func toPage[T any](conn *ledger.Connection, data []T) *Page[T] {
	if data == nil {
		data = []T{}
	}
	return &Page[T]{
		Data:       data,
		TotalCount: conn.TotalCount,
		PageInfo: PageInfo{
			HasNextPage:     conn.PageInfo.HasNextPage,
			HasPreviousPage: conn.PageInfo.HasPreviousPage,
		},
	}
}

package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/store"
)

// CategoryScope is a category filter expressed as NFT id sets
type CategoryScope struct {
	// Include lists the ids a listing is limited to when Restricted is set
	Include    []string
	Restricted bool
	// Exclude lists ids a listing must skip
	Exclude []string
}

// CategoryResolver turns category filters into id sets using the local tags
type CategoryResolver struct {
	store store.Store
}

// NewCategoryResolver creates a category resolver
func NewCategoryResolver(store store.Store) *CategoryResolver {
	return &CategoryResolver{store: store}
}

// Resolve computes the id sets of a category filter.
// Unknown codes are skipped. Only tagged ids are ever enumerated.
func (r *CategoryResolver) Resolve(ctx context.Context, cf *CategoryFilter) (CategoryScope, error) {
	if cf == nil {
		return CategoryScope{}, nil
	}

	codes, err := r.knownCodes(ctx, cf.Codes)
	if err != nil {
		return CategoryScope{}, err
	}

	if !cf.Uncategorized {
		include, err := r.store.GetNFTIDsByCategories(ctx, codes)
		if err != nil {
			return CategoryScope{}, fmt.Errorf("failed to resolve category members: %w", err)
		}
		return CategoryScope{Include: include, Restricted: true}, nil
	}

	// uncategorized, possibly mixed with codes: skip everything tagged with another category
	var include []string
	if len(codes) > 0 {
		include, err = r.store.GetNFTIDsByCategories(ctx, codes)
		if err != nil {
			return CategoryScope{}, fmt.Errorf("failed to resolve category members: %w", err)
		}
	}
	taggedElsewhere, err := r.store.GetNFTIDsTaggedOutside(ctx, codes)
	if err != nil {
		return CategoryScope{}, fmt.Errorf("failed to resolve tagged nfts: %w", err)
	}

	return CategoryScope{Include: include, Exclude: subtract(taggedElsewhere, include)}, nil
}

func (r *CategoryResolver) knownCodes(ctx context.Context, codes []string) ([]string, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	categories, err := r.store.GetCategoriesByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to look up categories: %w", err)
	}

	known := make([]string, 0, len(categories))
	for _, c := range categories {
		known = append(known, c.Code)
	}
	if len(known) < len(codes) {
		logger.DebugCtx(ctx, "skipping unknown category codes", zap.Strings("requested", codes), zap.Strings("known", known))
	}
	return known, nil
}

// subtract returns the elements of a that are not in b, keeping the order of a
func subtract(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	drop := make(map[string]struct{}, len(b))
	for _, v := range b {
		drop[v] = struct{}{}
	}
	out := make([]string, 0, len(a))
	for _, v := range a {
		if _, ok := drop[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// intersect returns the elements of a that are also in b, keeping the order of a
func intersect(a, b []string) []string {
	keep := make(map[string]struct{}, len(b))
	for _, v := range b {
		keep[v] = struct{}{}
	}
	out := make([]string, 0, len(a))
	for _, v := range a {
		if _, ok := keep[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/feral-file/ff-catalog/internal/api/shared/errors"
	"github.com/feral-file/ff-catalog/internal/catalog"
	"github.com/feral-file/ff-catalog/internal/ledger"
)

var nftOptions = catalog.NormalizeOptions{MaxLimit: 20, SortFields: catalog.NFTSortFields}

func requireValidation(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %T", err)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
	assert.Contains(t, apiErr.Details, field)
}

func TestNormalize_Pagination(t *testing.T) {
	tests := []struct {
		name      string
		raw       map[string]string
		wantNil   bool
		wantPage  int
		wantLimit int
	}{
		{name: "absent", raw: map[string]string{}, wantNil: true},
		{name: "json object", raw: map[string]string{"pagination": `{"page":2,"limit":10}`}, wantPage: 2, wantLimit: 10},
		{name: "flat aliases", raw: map[string]string{"page": "3", "limit": "5"}, wantPage: 3, wantLimit: 5},
		{name: "page only defaults limit", raw: map[string]string{"page": "2"}, wantPage: 2, wantLimit: 20},
		{name: "limit only defaults page", raw: map[string]string{"limit": "7"}, wantPage: 1, wantLimit: 7},
		{name: "limit is clamped", raw: map[string]string{"limit": "500"}, wantPage: 1, wantLimit: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := catalog.Normalize(tt.raw, nftOptions)
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, q.Pagination)
				return
			}
			require.NotNil(t, q.Pagination)
			assert.Equal(t, tt.wantPage, q.Pagination.Page)
			assert.Equal(t, tt.wantLimit, q.Pagination.Limit)
		})
	}
}

func TestNormalize_InvalidPagination(t *testing.T) {
	_, err := catalog.Normalize(map[string]string{"limit": "0"}, nftOptions)
	requireValidation(t, err, "limit")

	_, err = catalog.Normalize(map[string]string{"page": "0"}, nftOptions)
	requireValidation(t, err, "page")

	_, err = catalog.Normalize(map[string]string{"page": "abc"}, nftOptions)
	requireValidation(t, err, "page")

	_, err = catalog.Normalize(map[string]string{"pagination": "{"}, nftOptions)
	requireValidation(t, err, "pagination")
}

func TestNormalize_Sort(t *testing.T) {
	q, err := catalog.Normalize(map[string]string{"sort": "timestampCreate:desc, id"}, nftOptions)
	require.NoError(t, err)
	assert.Equal(t, []catalog.SortToken{
		{Field: "timestampCreate", Desc: true},
		{Field: "id"},
	}, q.Sort)

	_, err = catalog.Normalize(map[string]string{"sort": "color:asc"}, nftOptions)
	requireValidation(t, err, "sort")

	_, err = catalog.Normalize(map[string]string{"sort": "id:sideways"}, nftOptions)
	requireValidation(t, err, "sort")

	// allowed by the listing but not orderable on the ledger
	_, err = catalog.Normalize(map[string]string{"sort": "color"}, catalog.NormalizeOptions{SortFields: []string{"color"}})
	requireValidation(t, err, "sort")
}

func TestSortFields_OrderableOnLedger(t *testing.T) {
	for _, fields := range [][]string{catalog.NFTSortFields, catalog.HistorySortFields} {
		for _, field := range fields {
			assert.True(t, ledger.SortFieldSupported(field), field)
		}
	}
}

func TestNormalize_Filter(t *testing.T) {
	raw := map[string]string{
		"filter": `{"ids":["1","2","1"],"owner":"alice","listed":false,"marketplaceId":"3","priceMin":1.5,"categories":["art","none"],"likedBy":"bob"}`,
	}

	q, err := catalog.Normalize(raw, nftOptions)
	require.NoError(t, err)

	f := q.Filter
	assert.Equal(t, []string{"1", "2"}, f.IDs)
	require.NotNil(t, f.Owner)
	assert.Equal(t, "alice", *f.Owner)
	require.NotNil(t, f.Listed)
	assert.False(t, *f.Listed)
	require.NotNil(t, f.MarketplaceID)
	assert.Equal(t, "3", *f.MarketplaceID)
	require.NotNil(t, f.PriceMin)
	assert.Equal(t, 1.5, *f.PriceMin)
	assert.Nil(t, f.PriceMax)
	require.NotNil(t, f.Categories)
	assert.Equal(t, []string{"art"}, f.Categories.Codes)
	assert.True(t, f.Categories.Uncategorized)
	require.NotNil(t, f.LikedBy)
	assert.Equal(t, "bob", *f.LikedBy)
}

func TestNormalize_CategoriesOnlyNone(t *testing.T) {
	q, err := catalog.Normalize(map[string]string{"filter": `{"categories":["none"]}`}, nftOptions)
	require.NoError(t, err)
	require.NotNil(t, q.Filter.Categories)
	assert.Empty(t, q.Filter.Categories.Codes)
	assert.True(t, q.Filter.Categories.Uncategorized)

	q, err = catalog.Normalize(map[string]string{"filter": `{}`}, nftOptions)
	require.NoError(t, err)
	assert.Nil(t, q.Filter.Categories)
}

func TestNormalize_InvalidFilter(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{name: "unknown field", raw: `{"colour":"red"}`, field: "filter"},
		{name: "malformed json", raw: `{"owner":`, field: "filter"},
		{name: "non numeric marketplace", raw: `{"marketplaceId":"abc"}`, field: "marketplaceId"},
		{name: "negative price", raw: `{"priceMin":-1}`, field: "priceMin"},
		{name: "inverted price range", raw: `{"priceMin":5,"priceMax":1}`, field: "priceMin"},
		{name: "inverted date range", raw: `{"createdFrom":"2024-02-01T00:00:00Z","createdTo":"2024-01-01T00:00:00Z"}`, field: "createdFrom"},
		{name: "blank id", raw: `{"ids":["1",""]}`, field: "ids"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Normalize(map[string]string{"filter": tt.raw}, nftOptions)
			requireValidation(t, err, tt.field)
		})
	}
}

package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apierrors "github.com/feral-file/ff-catalog/internal/api/shared/errors"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/ledger"
)

// Raw query keys understood by Normalize
const (
	KeyPagination = "pagination"
	KeySort       = "sort"
	KeyFilter     = "filter"
	KeyPage       = "page"
	KeyLimit      = "limit"
)

// NFTSortFields are the sort fields of NFT listings
var NFTSortFields = []string{"id", "timestampCreate", "timestampList", "price", "serieId", "owner", "creator"}

// HistorySortFields are the sort fields of transfer history
var HistorySortFields = []string{"timestamp"}

// NormalizeOptions configures Normalize for one kind of listing
type NormalizeOptions struct {
	// MaxLimit clamps the page size
	MaxLimit int
	// SortFields lists the accepted sort fields; empty rejects any sort
	SortFields []string
}

// rawFilter is the wire shape of the filter object
type rawFilter struct {
	IDs           []string   `json:"ids" validate:"omitempty,dive,required"`
	ExcludeIDs    []string   `json:"excludeIds" validate:"omitempty,dive,required"`
	Categories    []string   `json:"categories" validate:"omitempty,dive,required"`
	Owner         *string    `json:"owner" validate:"omitempty,min=1"`
	Creator       *string    `json:"creator" validate:"omitempty,min=1"`
	MarketplaceID *string    `json:"marketplaceId" validate:"omitempty,numeric"`
	SerieID       *string    `json:"serieId" validate:"omitempty,min=1"`
	Listed        *bool      `json:"listed"`
	IsCapsule     *bool      `json:"isCapsule"`
	Locked        *bool      `json:"isLocked"`
	PriceMin      *float64   `json:"priceMin" validate:"omitempty,gte=0"`
	PriceMax      *float64   `json:"priceMax" validate:"omitempty,gte=0"`
	CreatedFrom   *time.Time `json:"createdFrom"`
	CreatedTo     *time.Time `json:"createdTo"`
	LikedBy       *string    `json:"likedBy" validate:"omitempty,min=1"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalize turns the raw key/value bag of a request into a validated Query.
// Errors are *apierrors.APIError with code validation_failed naming the failing field.
func Normalize(raw map[string]string, opts NormalizeOptions) (*Query, error) {
	pagination, err := normalizePagination(raw, opts.MaxLimit)
	if err != nil {
		return nil, err
	}

	sort, err := normalizeSort(raw[KeySort], opts.SortFields)
	if err != nil {
		return nil, err
	}

	filter, err := normalizeFilter(raw[KeyFilter])
	if err != nil {
		return nil, err
	}

	return &Query{
		Pagination: pagination,
		Sort:       sort,
		Filter:     filter,
	}, nil
}

func normalizePagination(raw map[string]string, maxLimit int) (*Pagination, error) {
	var page, limit *int

	if s := strings.TrimSpace(raw[KeyPagination]); s != "" {
		var wire struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		}
		if err := json.Unmarshal([]byte(s), &wire); err != nil {
			return nil, apierrors.NewValidationError(KeyPagination).WithCause(err)
		}
		page, limit = wire.Page, wire.Limit
	}

	for key, target := range map[string]**int{KeyPage: &page, KeyLimit: &limit} {
		s := strings.TrimSpace(raw[key])
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, apierrors.NewValidationError(key).WithCause(err)
		}
		*target = &n
	}

	if page == nil && limit == nil {
		return nil, nil
	}

	p := &Pagination{Page: 1, Limit: maxLimit}
	if page != nil {
		p.Page = *page
	}
	if limit != nil {
		p.Limit = *limit
	}
	if err := validate.Struct(p); err != nil {
		return nil, validationError(err)
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p, nil
}

// normalizeSort parses "field:direction" tokens separated by commas
func normalizeSort(raw string, allowed []string) ([]SortToken, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var tokens []SortToken
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		field, direction, _ := strings.Cut(part, ":")
		field = strings.TrimSpace(field)
		if !contains(allowed, field) || !ledger.SortFieldSupported(field) {
			return nil, apierrors.NewValidationError(KeySort, fmt.Sprintf("unknown sort field %q", field))
		}

		token := SortToken{Field: field}
		switch strings.ToLower(strings.TrimSpace(direction)) {
		case "", "asc":
		case "desc":
			token.Desc = true
		default:
			return nil, apierrors.NewValidationError(KeySort, fmt.Sprintf("unknown sort direction %q", direction))
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

func normalizeFilter(raw string) (Filter, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Filter{}, nil
	}

	var wire rawFilter
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&wire); err != nil {
		return Filter{}, apierrors.NewValidationError(KeyFilter).WithCause(err)
	}
	if err := validate.Struct(&wire); err != nil {
		return Filter{}, validationError(err)
	}
	if wire.PriceMin != nil && wire.PriceMax != nil && *wire.PriceMin > *wire.PriceMax {
		return Filter{}, apierrors.NewValidationError("priceMin")
	}
	if wire.CreatedFrom != nil && wire.CreatedTo != nil && wire.CreatedFrom.After(*wire.CreatedTo) {
		return Filter{}, apierrors.NewValidationError("createdFrom")
	}

	return Filter{
		IDs:           dedupe(wire.IDs),
		ExcludeIDs:    dedupe(wire.ExcludeIDs),
		Categories:    parseCategories(wire.Categories),
		Owner:         wire.Owner,
		Creator:       wire.Creator,
		MarketplaceID: wire.MarketplaceID,
		SerieID:       wire.SerieID,
		Listed:        wire.Listed,
		IsCapsule:     wire.IsCapsule,
		Locked:        wire.Locked,
		PriceMin:      wire.PriceMin,
		PriceMax:      wire.PriceMax,
		CreatedFrom:   wire.CreatedFrom,
		CreatedTo:     wire.CreatedTo,
		LikedBy:       wire.LikedBy,
	}, nil
}

// parseCategories splits the "none" sentinel from concrete codes
func parseCategories(codes []string) *CategoryFilter {
	if len(codes) == 0 {
		return nil
	}

	cf := &CategoryFilter{}
	for _, code := range dedupe(codes) {
		if code == domain.UncategorizedCode {
			cf.Uncategorized = true
			continue
		}
		cf.Codes = append(cf.Codes, code)
	}
	return cf
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0].Field()
		// dive errors name the element, e.g. ids[2]
		if i := strings.Index(field, "["); i > 0 {
			field = field[:i]
		}
		return apierrors.NewValidationError(field).WithCause(err)
	}
	return apierrors.NewValidationError().WithCause(err)
}

func dedupe(values []string) []string {
	if values == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

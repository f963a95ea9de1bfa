package ledger

import (
	"strings"
	"time"
)

// DefaultFirst is the page size sent to the ledger when a caller does not paginate
const DefaultFirst = 100

// Ledger field names used in filters
const (
	FieldID              = "id"
	FieldOwner           = "owner"
	FieldCreator         = "creator"
	FieldListed          = "listed"
	FieldSerieID         = "serieId"
	FieldPriceRounded    = "priceRounded"
	FieldIsCapsule       = "isCapsule"
	FieldIsLocked        = "isLocked"
	FieldMarketplaceID   = "marketplaceId"
	FieldTimestampCreate = "timestampCreate"
	FieldTimestampBurn   = "timestampBurn"
	FieldNFTID           = "nftId"
	FieldTypeOfTx        = "typeOfTransaction"
)

// sortEnums maps client sort fields to ledger order enum prefixes
var sortEnums = map[string]string{
	"id":              "ID",
	"timestampCreate": "TIMESTAMP_CREATE",
	"timestampList":   "TIMESTAMP_LIST",
	"timestamp":       "TIMESTAMP",
	"price":           "PRICE_ROUNDED",
	"serieId":         "SERIE_ID",
	"owner":           "OWNER",
	"creator":         "CREATOR",
}

// SortFieldSupported reports whether the ledger can order by the client field
func SortFieldSupported(field string) bool {
	_, ok := sortEnums[field]
	return ok
}

// Sort is one ordering key
type Sort struct {
	Field string
	Desc  bool
}

// Token returns the ledger enum of the sort, or false if the field is unknown
func (s Sort) Token() (OrderToken, bool) {
	prefix, ok := sortEnums[s.Field]
	if !ok {
		return "", false
	}
	if s.Desc {
		return OrderToken(prefix + "_DESC"), true
	}
	return OrderToken(prefix + "_ASC"), true
}

// Page is a 1-based page request
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows skipped before the page
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// NFTSpec describes an NFT listing in ledger terms
type NFTSpec struct {
	// IDs restricts results to these ids when RestrictIDs is set, even when empty
	IDs         []string
	RestrictIDs bool
	ExcludeIDs  []string
	// Liked restricts results to what a wallet liked
	Liked *LikedSet

	Owner         *string
	Creator       *string
	MarketplaceID *string
	SerieID       *string
	Listed        *bool
	IsCapsule     *bool
	IsLocked      *bool
	PriceMin      *float64
	PriceMax      *float64
	CreatedFrom   *time.Time
	CreatedTo     *time.Time

	Sort []Sort
	Page *Page
}

// Predicate builds the filter of the spec. Burned NFTs are always excluded.
func (s NFTSpec) Predicate() *Predicate {
	p := NewPredicate().IsNull(FieldTimestampBurn, true)

	if s.RestrictIDs {
		p.In(FieldID, s.IDs)
	}
	if len(s.ExcludeIDs) > 0 {
		p.NotIn(FieldID, s.ExcludeIDs)
	}
	if s.Liked != nil {
		s.Liked.apply(p)
	}
	if s.Owner != nil {
		p.Equal(FieldOwner, String(*s.Owner))
	}
	if s.Creator != nil {
		p.Equal(FieldCreator, String(*s.Creator))
	}
	if s.MarketplaceID != nil {
		p.Equal(FieldMarketplaceID, String(*s.MarketplaceID))
	}
	if s.SerieID != nil {
		p.Equal(FieldSerieID, String(*s.SerieID))
	}
	if s.Listed != nil {
		p.Equal(FieldListed, Int(boolToInt(*s.Listed)))
	}
	if s.IsCapsule != nil {
		p.Equal(FieldIsCapsule, Bool(*s.IsCapsule))
	}
	if s.IsLocked != nil {
		p.Equal(FieldIsLocked, Bool(*s.IsLocked))
	}
	if s.PriceMin != nil {
		p.AtLeast(FieldPriceRounded, Float(*s.PriceMin))
	}
	if s.PriceMax != nil {
		p.AtMost(FieldPriceRounded, Float(*s.PriceMax))
	}
	if s.CreatedFrom != nil {
		p.AtLeast(FieldTimestampCreate, Time(*s.CreatedFrom))
	}
	if s.CreatedTo != nil {
		p.AtMost(FieldTimestampCreate, Time(*s.CreatedTo))
	}
	return p
}

// LikedSet is the liked content of a wallet: whole series, plus NFTs that belong to no series
type LikedSet struct {
	SerieIDs []string
	NFTIDs   []string
}

// apply matches liked series, or liked series-less NFTs. An empty set matches nothing.
func (l *LikedSet) apply(p *Predicate) {
	switch {
	case len(l.SerieIDs) > 0 && len(l.NFTIDs) > 0:
		p.Or(
			NewPredicate().In(FieldSerieID, l.SerieIDs),
			NewPredicate().In(FieldID, l.NFTIDs),
		)
	case len(l.NFTIDs) > 0:
		p.In(FieldID, l.NFTIDs)
	default:
		p.In(FieldSerieID, l.SerieIDs)
	}
}

// AllNFTs compiles a listing of every matching NFT
func AllNFTs(spec NFTSpec) *Query {
	q := &Query{
		Name:    "AllNFTs",
		Root:    RootNFTs,
		Filter:  spec.Predicate(),
		OrderBy: orderTokens(spec.Sort),
		Fields:  nftFields,
	}
	applyPage(q, spec.Page)
	return q
}

// DistinctNFTs compiles a listing that returns one representative NFT per series
func DistinctNFTs(spec NFTSpec) *Query {
	q := AllNFTs(spec)
	q.Name = "DistinctNFTs"
	q.Root = RootDistinctSerieNFTs
	return q
}

// NFTsByOwner compiles a listing of the NFTs held by owner
func NFTsByOwner(owner string, page *Page) *Query {
	q := AllNFTs(NFTSpec{Owner: &owner, Page: page})
	q.Name = "NFTsByOwner"
	return q
}

// NFTsByCreator compiles a listing of the NFTs minted by creator
func NFTsByCreator(creator string, page *Page) *Query {
	q := AllNFTs(NFTSpec{Creator: &creator, Page: page})
	q.Name = "NFTsByCreator"
	return q
}

// NFTsByIDs compiles a listing restricted to ids
func NFTsByIDs(ids []string, page *Page) *Query {
	q := AllNFTs(NFTSpec{IDs: ids, RestrictIDs: true, Page: page})
	q.Name = "NFTsByIDs"
	return q
}

// NFTsExcludingIDs compiles a listing that skips ids
func NFTsExcludingIDs(ids []string, page *Page) *Query {
	q := AllNFTs(NFTSpec{ExcludeIDs: ids, Page: page})
	q.Name = "NFTsExcludingIDs"
	return q
}

// NFTByID compiles a single live NFT lookup
func NFTByID(id string) *Query {
	first := 1
	return &Query{
		Name:   "NFTByID",
		Root:   RootNFTs,
		Filter: NewPredicate().Equal(FieldID, String(id)).IsNull(FieldTimestampBurn, true),
		First:  &first,
		Fields: nftFields,
	}
}

// SerieByID compiles a series lookup
func SerieByID(id string) *Query {
	first := 1
	return &Query{
		Name:   "SerieByID",
		Root:   RootSeries,
		Filter: NewPredicate().Equal(FieldID, String(id)),
		First:  &first,
		Fields: serieFields,
	}
}

func countQuery(name string, p *Predicate) *Query {
	first := 0
	return &Query{
		Name:   name,
		Root:   RootNFTs,
		Filter: p.IsNull(FieldTimestampBurn, true),
		First:  &first,
	}
}

// CountOwned counts the live NFTs held by owner
func CountOwned(owner string) *Query {
	return countQuery("CountOwned", NewPredicate().Equal(FieldOwner, String(owner)))
}

// CountOwnedListed counts the NFTs owner has listed for sale
func CountOwnedListed(owner string) *Query {
	return countQuery("CountOwnedListed", NewPredicate().
		Equal(FieldOwner, String(owner)).
		Equal(FieldListed, Int(1)))
}

// CountOwnedUnlisted counts the NFTs owner holds without listing
func CountOwnedUnlisted(owner string) *Query {
	return countQuery("CountOwnedUnlisted", NewPredicate().
		Equal(FieldOwner, String(owner)).
		Equal(FieldListed, Int(0)))
}

// CountCreated counts the live NFTs minted by creator
func CountCreated(creator string) *Query {
	return countQuery("CountCreated", NewPredicate().Equal(FieldCreator, String(creator)))
}

// CountListedInMarketplace counts the NFTs listed on a marketplace
func CountListedInMarketplace(marketplaceID string) *Query {
	return countQuery("CountListedInMarketplace", NewPredicate().
		Equal(FieldMarketplaceID, String(marketplaceID)).
		Equal(FieldListed, Int(1)))
}

// CountSerie counts the live NFTs of a series
func CountSerie(serieID string) *Query {
	return countQuery("CountSerie", NewPredicate().Equal(FieldSerieID, String(serieID)))
}

// CountSerieListed counts the listed NFTs of a series, optionally on one marketplace
func CountSerieListed(serieID string, marketplaceID *string) *Query {
	p := NewPredicate().
		Equal(FieldSerieID, String(serieID)).
		Equal(FieldListed, Int(1))
	if marketplaceID != nil {
		p.Equal(FieldMarketplaceID, String(*marketplaceID))
	}
	return countQuery("CountSerieListed", p)
}

// SmallestPrice fetches the cheapest listed NFT of a series
func SmallestPrice(serieID string, marketplaceID *string) *Query {
	first := 1
	p := NewPredicate().
		Equal(FieldSerieID, String(serieID)).
		Equal(FieldListed, Int(1))
	if marketplaceID != nil {
		p.Equal(FieldMarketplaceID, String(*marketplaceID))
	}
	return &Query{
		Name:    "SmallestPrice",
		Root:    RootNFTs,
		Filter:  p.IsNull(FieldTimestampBurn, true),
		OrderBy: []OrderToken{"PRICE_ROUNDED_ASC"},
		First:   &first,
		Fields:  []string{"id", "price", "priceRounded"},
	}
}

// HistorySpec describes a transfer history request
type HistorySpec struct {
	NFTID   string
	SerieID *string
	Types   []string
	Sort    []Sort
	Page    *Page
}

// DefaultHistorySort is the newest-first order of history listings
var DefaultHistorySort = []Sort{{Field: "timestamp", Desc: true}}

// TransferHistory compiles the operations of an NFT, or of its whole series when SerieID is set
func TransferHistory(spec HistorySpec) *Query {
	p := NewPredicate()
	if spec.SerieID != nil {
		p.Equal(FieldSerieID, String(*spec.SerieID))
	} else {
		p.Equal(FieldNFTID, String(spec.NFTID))
	}
	if len(spec.Types) > 0 {
		p.In(FieldTypeOfTx, spec.Types)
	}

	sorts := spec.Sort
	if len(sorts) == 0 {
		sorts = DefaultHistorySort
	}
	q := &Query{
		Name:    "TransferHistory",
		Root:    RootTransfers,
		Filter:  p,
		OrderBy: orderTokens(sorts),
		Fields:  transferFields,
	}
	applyPage(q, spec.Page)
	return q
}

// IsDefaultHistorySort reports whether sorts leave history in its natural newest-first order
func IsDefaultHistorySort(sorts []Sort) bool {
	if len(sorts) == 0 {
		return true
	}
	return len(sorts) == 1 && strings.EqualFold(sorts[0].Field, "timestamp") && sorts[0].Desc
}

func orderTokens(sorts []Sort) []OrderToken {
	tokens := make([]OrderToken, 0, len(sorts))
	for _, s := range sorts {
		if token, ok := s.Token(); ok {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func applyPage(q *Query, page *Page) {
	if page == nil {
		first := DefaultFirst
		q.First = &first
		return
	}
	first := page.Size
	offset := page.Offset()
	q.First = &first
	q.Offset = &offset
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compact strips whitespace so rendered documents can be compared regardless of formatting
func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func ptr[T any](v T) *T {
	return &v
}

func TestQuery_String_RendersConnection(t *testing.T) {
	first, offset := 20, 40
	q := &Query{
		Name:    "AllNFTs",
		Root:    RootNFTs,
		Filter:  NewPredicate().Equal(FieldOwner, String("5Grw")).IsNull(FieldTimestampBurn, true),
		OrderBy: []OrderToken{"TIMESTAMP_LIST_DESC"},
		First:   &first,
		Offset:  &offset,
		Fields:  []string{"id", "owner"},
	}

	got := compact(q.String())
	assert.True(t, strings.HasPrefix(got, "queryAllNFTs{nftEntities("), got)
	assert.Contains(t, got, "first:20")
	assert.Contains(t, got, "offset:40")
	assert.Contains(t, got, "orderBy:[TIMESTAMP_LIST_DESC]")
	assert.Contains(t, got, `{owner:{equalTo:"5Grw"}}`)
	assert.Contains(t, got, "{timestampBurn:{isNull:true}}")
	assert.Contains(t, got, "totalCount")
	assert.Contains(t, got, "pageInfo{hasNextPagehasPreviousPage}")
	assert.Contains(t, got, "nodes{idowner}")
}

func TestQuery_String_EscapesStrings(t *testing.T) {
	q := &Query{
		Root:   RootNFTs,
		Filter: NewPredicate().Equal(FieldOwner, String(`a"b`)),
	}

	assert.Contains(t, compact(q.String()), `{owner:{equalTo:"a\"b"}}`)
}

func TestQuery_String_CountOnlyHasNoNodes(t *testing.T) {
	got := compact(CountOwned("5Grw").String())
	assert.NotContains(t, got, "nodes")
	assert.Contains(t, got, "first:0")
	assert.Contains(t, got, "totalCount")
}

func TestNFTSpec_Predicate(t *testing.T) {
	t.Run("burned NFTs are always excluded", func(t *testing.T) {
		p := NFTSpec{}.Predicate()
		c, ok := p.Find(FieldTimestampBurn, OpIsNull)
		require.True(t, ok)
		assert.True(t, c.Value.Bool)
		assert.Equal(t, 1, p.Len())
	})

	t.Run("absent fields are omitted", func(t *testing.T) {
		p := NFTSpec{Owner: ptr("5Grw")}.Predicate()
		_, ok := p.Find(FieldListed, OpEqualTo)
		assert.False(t, ok)
		_, ok = p.Find(FieldCreator, OpEqualTo)
		assert.False(t, ok)
		assert.Equal(t, 2, p.Len())
	})

	t.Run("listed false compiles to zero", func(t *testing.T) {
		p := NFTSpec{Listed: ptr(false)}.Predicate()
		c, ok := p.Find(FieldListed, OpEqualTo)
		require.True(t, ok)
		assert.Equal(t, KindInt, c.Value.Kind)
		assert.Equal(t, int64(0), c.Value.Int)
	})

	t.Run("empty id restriction is kept", func(t *testing.T) {
		p := NFTSpec{IDs: []string{}, RestrictIDs: true}.Predicate()
		c, ok := p.Find(FieldID, OpIn)
		require.True(t, ok)
		assert.Empty(t, c.Value.List)
	})

	t.Run("ranges", func(t *testing.T) {
		from := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
		p := NFTSpec{PriceMin: ptr(1.5), PriceMax: ptr(10.0), CreatedFrom: &from}.Predicate()

		c, ok := p.Find(FieldPriceRounded, OpGreaterThanOrEqualTo)
		require.True(t, ok)
		assert.Equal(t, 1.5, c.Value.Float)
		_, ok = p.Find(FieldPriceRounded, OpLessThanOrEqualTo)
		assert.True(t, ok)
		c, ok = p.Find(FieldTimestampCreate, OpGreaterThanOrEqualTo)
		require.True(t, ok)
		assert.Equal(t, "2023-01-02T03:04:05Z", c.Value.Str)
	})
}

func TestAllNFTs_Pagination(t *testing.T) {
	t.Run("no page uses the default first", func(t *testing.T) {
		q := AllNFTs(NFTSpec{})
		require.NotNil(t, q.First)
		assert.Equal(t, DefaultFirst, *q.First)
		assert.Nil(t, q.Offset)
	})

	t.Run("page maps to first and offset", func(t *testing.T) {
		q := AllNFTs(NFTSpec{Page: &Page{Number: 3, Size: 12}})
		assert.Equal(t, 12, *q.First)
		assert.Equal(t, 24, *q.Offset)
	})
}

func TestAllNFTs_Sort(t *testing.T) {
	q := AllNFTs(NFTSpec{Sort: []Sort{{Field: "price"}, {Field: "timestampCreate", Desc: true}, {Field: "bogus"}}})
	assert.Equal(t, []OrderToken{"PRICE_ROUNDED_ASC", "TIMESTAMP_CREATE_DESC"}, q.OrderBy)
}

func TestDistinctNFTs_UsesDistinctRoot(t *testing.T) {
	q := DistinctNFTs(NFTSpec{})
	assert.Equal(t, RootDistinctSerieNFTs, q.Root)
	assert.Contains(t, compact(q.String()), "distinctSerieNfts(")
}

func TestCountFlavors(t *testing.T) {
	tests := []struct {
		name    string
		query   *Query
		clauses map[string]Value
	}{
		{
			name:    "owned listed",
			query:   CountOwnedListed("alice"),
			clauses: map[string]Value{FieldOwner: String("alice"), FieldListed: Int(1)},
		},
		{
			name:    "owned unlisted",
			query:   CountOwnedUnlisted("alice"),
			clauses: map[string]Value{FieldOwner: String("alice"), FieldListed: Int(0)},
		},
		{
			name:    "created",
			query:   CountCreated("bob"),
			clauses: map[string]Value{FieldCreator: String("bob")},
		},
		{
			name:    "listed in marketplace",
			query:   CountListedInMarketplace("7"),
			clauses: map[string]Value{FieldMarketplaceID: String("7"), FieldListed: Int(1)},
		},
		{
			name:    "serie listed on marketplace",
			query:   CountSerieListed("S1", ptr("7")),
			clauses: map[string]Value{FieldSerieID: String("S1"), FieldListed: Int(1), FieldMarketplaceID: String("7")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, tt.query.Fields)
			_, ok := tt.query.Filter.Find(FieldTimestampBurn, OpIsNull)
			assert.True(t, ok)
			for field, want := range tt.clauses {
				c, ok := tt.query.Filter.Find(field, OpEqualTo)
				require.True(t, ok, field)
				assert.Equal(t, want, c.Value, field)
			}
		})
	}
}

func TestNFTListingFlavors(t *testing.T) {
	page := &Page{Number: 2, Size: 5}
	tests := []struct {
		name     string
		query    *Query
		wantName string
		field    string
		op       Operator
		want     Value
		rendered string
	}{
		{
			name:     "by owner",
			query:    NFTsByOwner("alice", page),
			wantName: "NFTsByOwner",
			field:    FieldOwner,
			op:       OpEqualTo,
			want:     String("alice"),
			rendered: `{owner:{equalTo:"alice"}}`,
		},
		{
			name:     "by creator",
			query:    NFTsByCreator("bob", page),
			wantName: "NFTsByCreator",
			field:    FieldCreator,
			op:       OpEqualTo,
			want:     String("bob"),
			rendered: `{creator:{equalTo:"bob"}}`,
		},
		{
			name:     "by ids",
			query:    NFTsByIDs([]string{"1", "2"}, page),
			wantName: "NFTsByIDs",
			field:    FieldID,
			op:       OpIn,
			want:     List([]string{"1", "2"}),
			rendered: `{id:{in:["1","2"]}}`,
		},
		{
			name:     "excluding ids",
			query:    NFTsExcludingIDs([]string{"3"}, page),
			wantName: "NFTsExcludingIDs",
			field:    FieldID,
			op:       OpNotIn,
			want:     List([]string{"3"}),
			rendered: `{id:{notIn:["3"]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.query.Name)
			assert.Equal(t, RootNFTs, tt.query.Root)
			assert.Equal(t, 5, *tt.query.First)
			assert.Equal(t, 5, *tt.query.Offset)

			c, ok := tt.query.Filter.Find(tt.field, tt.op)
			require.True(t, ok)
			assert.Equal(t, tt.want, c.Value)
			_, ok = tt.query.Filter.Find(FieldTimestampBurn, OpIsNull)
			assert.True(t, ok)

			got := compact(tt.query.String())
			assert.True(t, strings.HasPrefix(got, "query"+tt.wantName+"{nftEntities("), got)
			assert.Contains(t, got, tt.rendered)
			assert.Contains(t, got, "{timestampBurn:{isNull:true}}")
		})
	}

	t.Run("empty id restriction matches nothing", func(t *testing.T) {
		q := NFTsByIDs(nil, nil)
		c, ok := q.Filter.Find(FieldID, OpIn)
		require.True(t, ok)
		assert.Empty(t, c.Value.List)
	})
}

func TestSmallestPrice(t *testing.T) {
	q := SmallestPrice("S1", nil)
	assert.Equal(t, []OrderToken{"PRICE_ROUNDED_ASC"}, q.OrderBy)
	assert.Equal(t, 1, *q.First)
	_, ok := q.Filter.Find(FieldMarketplaceID, OpEqualTo)
	assert.False(t, ok)
}

func TestTransferHistory(t *testing.T) {
	t.Run("nft history defaults to newest first", func(t *testing.T) {
		q := TransferHistory(HistorySpec{NFTID: "42"})
		assert.Equal(t, RootTransfers, q.Root)
		assert.Equal(t, []OrderToken{"TIMESTAMP_DESC"}, q.OrderBy)
		c, ok := q.Filter.Find(FieldNFTID, OpEqualTo)
		require.True(t, ok)
		assert.Equal(t, "42", c.Value.Str)
	})

	t.Run("serie history filters by serie", func(t *testing.T) {
		q := TransferHistory(HistorySpec{NFTID: "42", SerieID: ptr("S1"), Types: []string{"sale"}})
		_, ok := q.Filter.Find(FieldNFTID, OpEqualTo)
		assert.False(t, ok)
		c, ok := q.Filter.Find(FieldTypeOfTx, OpIn)
		require.True(t, ok)
		assert.Equal(t, []string{"sale"}, c.Value.List)
	})
}

func TestIsDefaultHistorySort(t *testing.T) {
	assert.True(t, IsDefaultHistorySort(nil))
	assert.True(t, IsDefaultHistorySort([]Sort{{Field: "timestamp", Desc: true}}))
	assert.False(t, IsDefaultHistorySort([]Sort{{Field: "timestamp"}}))
}

func TestNFTSpec_Liked(t *testing.T) {
	t.Run("series only", func(t *testing.T) {
		p := NFTSpec{Liked: &LikedSet{SerieIDs: []string{"S1"}}}.Predicate()
		c, ok := p.Find(FieldSerieID, OpIn)
		require.True(t, ok)
		assert.Equal(t, []string{"S1"}, c.Value.List)
	})

	t.Run("empty set still restricts", func(t *testing.T) {
		p := NFTSpec{Liked: &LikedSet{}}.Predicate()
		c, ok := p.Find(FieldSerieID, OpIn)
		require.True(t, ok)
		assert.Empty(t, c.Value.List)
	})

	t.Run("series and loose nfts render a disjunction", func(t *testing.T) {
		q := AllNFTs(NFTSpec{Liked: &LikedSet{SerieIDs: []string{"S1"}, NFTIDs: []string{"7"}}})
		got := compact(q.String())
		assert.Contains(t, got, `{or:[{and:[{serieId:{in:["S1"]}}]},{and:[{id:{in:["7"]}}]}]}`)
	})
}

package catalog_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/ledger"
	"github.com/feral-file/ff-catalog/internal/store"
)

// fakeLedger evaluates compiled queries against in-memory rows
type fakeLedger struct {
	mu        sync.Mutex
	nfts      []ledger.NFTRow
	series    []ledger.SerieRow
	transfers []ledger.TransferRow
	queries   []*ledger.Query
	// fail makes queries with this operation name fail
	fail map[string]error
}

func (f *fakeLedger) Execute(_ context.Context, q *ledger.Query) (*ledger.Connection, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	err := f.fail[q.Name]
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var matched []any
	switch q.Root {
	case ledger.RootNFTs:
		for _, row := range f.nfts {
			if matches(q.Filter, row) {
				matched = append(matched, row)
			}
		}
	case ledger.RootDistinctSerieNFTs:
		seen := make(map[string]bool)
		for _, row := range f.nfts {
			if !matches(q.Filter, row) {
				continue
			}
			if domain.HasSerie(row.SerieID) {
				if seen[row.SerieID] {
					continue
				}
				seen[row.SerieID] = true
			}
			matched = append(matched, row)
		}
	case ledger.RootTransfers:
		for _, row := range f.transfers {
			if matches(q.Filter, row) {
				matched = append(matched, row)
			}
		}
	case ledger.RootSeries:
		for _, row := range f.series {
			if matches(q.Filter, row) {
				matched = append(matched, row)
			}
		}
	}

	total := len(matched)
	offset := 0
	if q.Offset != nil {
		offset = *q.Offset
	}
	if offset > total {
		offset = total
	}
	end := total
	if q.First != nil && offset+*q.First < end {
		end = offset + *q.First
	}

	conn := &ledger.Connection{
		TotalCount: total,
		PageInfo: ledger.PageInfo{
			HasNextPage:     end < total,
			HasPreviousPage: offset > 0,
		},
	}
	for _, row := range matched[offset:end] {
		raw, err := json.Marshal(row)
		if err != nil {
			return nil, err
		}
		conn.Nodes = append(conn.Nodes, raw)
	}
	return conn, nil
}

func (f *fakeLedger) queryNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.queries))
	for _, q := range f.queries {
		names = append(names, q.Name)
	}
	return names
}

func matches(p *ledger.Predicate, row any) bool {
	if p == nil {
		return true
	}
	fields := toFields(row)
	for _, c := range p.Clauses {
		if c.AnyOf != nil {
			ok := false
			for _, alt := range c.AnyOf {
				if matches(alt, row) {
					ok = true
					break
				}
			}
			if !ok {
				return false
			}
			continue
		}
		if !clauseHolds(c, fields) {
			return false
		}
	}
	return true
}

func toFields(row any) map[string]any {
	raw, _ := json.Marshal(row)
	fields := make(map[string]any)
	_ = json.Unmarshal(raw, &fields)
	return fields
}

func clauseHolds(c ledger.Clause, fields map[string]any) bool {
	v, present := fields[c.Field]
	isNull := !present || v == nil

	switch c.Op {
	case ledger.OpIsNull:
		return isNull == c.Value.Bool
	case ledger.OpEqualTo:
		return !isNull && literal(v) == valueString(c.Value)
	case ledger.OpNotEqualTo:
		return isNull || literal(v) != valueString(c.Value)
	case ledger.OpIn:
		return !isNull && containsString(c.Value.List, literal(v))
	case ledger.OpNotIn:
		return isNull || !containsString(c.Value.List, literal(v))
	case ledger.OpGreaterThanOrEqualTo, ledger.OpLessThanOrEqualTo:
		if isNull {
			return false
		}
		a, errA := strconv.ParseFloat(literal(v), 64)
		b, errB := strconv.ParseFloat(valueString(c.Value), 64)
		if errA != nil || errB != nil {
			if c.Op == ledger.OpGreaterThanOrEqualTo {
				return literal(v) >= valueString(c.Value)
			}
			return literal(v) <= valueString(c.Value)
		}
		if c.Op == ledger.OpGreaterThanOrEqualTo {
			return a >= b
		}
		return a <= b
	}
	return false
}

func literal(v any) string {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func valueString(v ledger.Value) string {
	switch v.Kind {
	case ledger.KindInt:
		return strconv.FormatInt(v.Int, 10)
	case ledger.KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case ledger.KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// newTestStore opens a fresh in-memory store
func newTestStore(t *testing.T) store.Store {
	db, err := store.Open(context.Background(), store.DriverSQLite, ":memory:", false, 0)
	require.NoError(t, err)
	require.NoError(t, store.ConfigureConnectionPool(db, 1, 1, 0, 0))
	require.NoError(t, store.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return store.NewStore(db)
}

func nft(id, serieID string, listed bool) ledger.NFTRow {
	row := ledger.NFTRow{
		ID:            id,
		Owner:         "owner-" + id,
		Creator:       "creator",
		SerieID:       serieID,
		MarketplaceID: "0",
		Price:         "10",
		PriceRounded:  10,
	}
	if listed {
		row.Listed = 1
	}
	return row
}

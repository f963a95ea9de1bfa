package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// zoneless is the layout the ledger index uses for timestamps without an offset
const zoneless = "2006-01-02T15:04:05.000"

// Timestamp is a ledger time that accepts both RFC3339 and zone-less values
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", string(data), err)
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range []string{time.RFC3339Nano, zoneless, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// NFTRow is an NFT as indexed by the ledger
type NFTRow struct {
	ID              string     `json:"id"`
	Owner           string     `json:"owner"`
	Creator         string     `json:"creator"`
	Listed          int        `json:"listed"`
	SerieID         string     `json:"serieId"`
	Price           string     `json:"price"`
	PriceRounded    float64    `json:"priceRounded"`
	PriceTiime      string     `json:"priceTiime,omitempty"`
	IsCapsule       bool       `json:"isCapsule"`
	FrozenCaps      string     `json:"frozenCaps,omitempty"`
	IsLocked        bool       `json:"isLocked"`
	MarketplaceID   string     `json:"marketplaceId"`
	NFTIPFS         string     `json:"nftIpfs"`
	TimestampCreate Timestamp  `json:"timestampCreate"`
	TimestampList   *Timestamp `json:"timestampList,omitempty"`
	TimestampBurn   *Timestamp `json:"timestampBurn,omitempty"`
}

// IsListed reports whether the NFT is for sale
func (r NFTRow) IsListed() bool {
	return r.Listed == 1
}

// SerieRow is a series as indexed by the ledger
type SerieRow struct {
	ID     string `json:"id"`
	Owner  string `json:"owner"`
	Locked bool   `json:"locked"`
}

// TransferRow is one ledger operation on an NFT
type TransferRow struct {
	ID                string    `json:"id"`
	NFTID             string    `json:"nftId"`
	SerieID           string    `json:"serieId"`
	From              string    `json:"from"`
	To                string    `json:"to"`
	Amount            string    `json:"amount"`
	TypeOfTransaction string    `json:"typeOfTransaction"`
	Timestamp         Timestamp `json:"timestamp"`
	// Quantity is the number of consecutive identical operations folded into this row
	Quantity int `json:"quantity"`
}

// PageInfo is the ledger's paging indicator
type PageInfo struct {
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Connection is a decoded ledger connection
type Connection struct {
	TotalCount int               `json:"totalCount"`
	PageInfo   PageInfo          `json:"pageInfo"`
	Nodes      []json.RawMessage `json:"nodes"`
}

// DecodeNodes decodes the connection nodes into T
func DecodeNodes[T any](conn *Connection) ([]T, error) {
	if conn == nil {
		return nil, nil
	}

	out := make([]T, 0, len(conn.Nodes))
	for i, raw := range conn.Nodes {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("failed to decode node %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

var (
	nftFields = []string{
		"id", "owner", "creator", "listed", "serieId", "price", "priceRounded", "priceTiime",
		"isCapsule", "frozenCaps", "isLocked", "marketplaceId", "nftIpfs",
		"timestampCreate", "timestampList", "timestampBurn",
	}
	serieFields    = []string{"id", "owner", "locked"}
	transferFields = []string{"id", "nftId", "serieId", "from", "to", "amount", "typeOfTransaction", "timestamp"}
)

package ledger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339", input: `"2022-06-01T10:20:30Z"`, want: time.Date(2022, 6, 1, 10, 20, 30, 0, time.UTC)},
		{name: "offset", input: `"2022-06-01T12:20:30+02:00"`, want: time.Date(2022, 6, 1, 10, 20, 30, 0, time.UTC)},
		{name: "zoneless millis", input: `"2022-06-01T10:20:30.123"`, want: time.Date(2022, 6, 1, 10, 20, 30, 123000000, time.UTC)},
		{name: "null", input: `null`},
		{name: "garbage", input: `"yesterday"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestDecodeNodes(t *testing.T) {
	conn := &Connection{
		TotalCount: 1,
		Nodes: []json.RawMessage{
			json.RawMessage(`{"id":"7","owner":"alice","listed":1,"serieId":"0","timestampCreate":"2022-01-01T00:00:00.000","timestampBurn":null}`),
		},
	}

	rows, err := DecodeNodes[NFTRow](conn)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "7", rows[0].ID)
	assert.True(t, rows[0].IsListed())
	assert.Nil(t, rows[0].TimestampBurn)
	assert.Equal(t, 2022, rows[0].TimestampCreate.Year())
}

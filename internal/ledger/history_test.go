package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupTransfers(t *testing.T) {
	transfer := func(id, from, to, amount string) TransferRow {
		return TransferRow{ID: id, From: from, To: to, Amount: amount, SerieID: "S1", TypeOfTransaction: "transfer"}
	}

	t.Run("folds consecutive identical operations", func(t *testing.T) {
		rows := []TransferRow{
			transfer("1", "A", "B", "1"),
			transfer("2", "A", "B", "1"),
			transfer("3", "A", "B", "1"),
			transfer("4", "C", "D", "2"),
		}

		got := GroupTransfers(rows)
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, 3, got[0].Quantity)
		assert.Equal(t, "4", got[1].ID)
		assert.Equal(t, 1, got[1].Quantity)
	})

	t.Run("non adjacent runs stay separate", func(t *testing.T) {
		rows := []TransferRow{
			transfer("1", "A", "B", "1"),
			transfer("2", "C", "D", "1"),
			transfer("3", "A", "B", "1"),
		}

		got := GroupTransfers(rows)
		require.Len(t, got, 3)
		for _, row := range got {
			assert.Equal(t, 1, row.Quantity)
		}
	})

	t.Run("type of transaction breaks a run", func(t *testing.T) {
		sale := transfer("2", "A", "B", "1")
		sale.TypeOfTransaction = "sale"

		got := GroupTransfers([]TransferRow{transfer("1", "A", "B", "1"), sale})
		assert.Len(t, got, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, GroupTransfers(nil))
	})
}

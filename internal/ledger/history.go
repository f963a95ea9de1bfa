package ledger

// GroupTransfers folds runs of consecutive operations that share the same
// sender, receiver, amount, series and type into one row carrying the run length.
// Rows must already be in display order.
func GroupTransfers(rows []TransferRow) []TransferRow {
	grouped := make([]TransferRow, 0, len(rows))
	for _, row := range rows {
		qty := row.Quantity
		if qty < 1 {
			qty = 1
		}

		if n := len(grouped); n > 0 && sameOperation(grouped[n-1], row) {
			grouped[n-1].Quantity += qty
			continue
		}

		row.Quantity = qty
		grouped = append(grouped, row)
	}
	return grouped
}

func sameOperation(a, b TransferRow) bool {
	return a.From == b.From &&
		a.To == b.To &&
		a.Amount == b.Amount &&
		a.SerieID == b.SerieID &&
		a.TypeOfTransaction == b.TypeOfTransaction
}

package catalog

import (
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/ledger"
)

// GroupBySerie collapses rows of the same series into the first row seen, which carries
// the group's total and listed counts. Rows outside any series stay on their own.
// The order of first appearance is kept.
func GroupBySerie(rows []ledger.NFTRow) []Record {
	records := make([]Record, 0, len(rows))
	index := make(map[string]int)

	for _, row := range rows {
		listed := 0
		if row.IsListed() {
			listed = 1
		}

		if domain.HasSerie(row.SerieID) {
			if i, ok := index[row.SerieID]; ok {
				*records[i].TotalNFT++
				*records[i].TotalListedNFT += listed
				continue
			}
			index[row.SerieID] = len(records)
		}

		total := 1
		records = append(records, Record{
			NFTRow:         row,
			TotalNFT:       &total,
			TotalListedNFT: &listed,
		})
	}
	return records
}

// singletons wraps rows as records without grouping
func singletons(rows []ledger.NFTRow) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, Record{NFTRow: row})
	}
	return records
}

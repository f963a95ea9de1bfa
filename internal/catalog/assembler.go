package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/ledger"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/metadata"
	"github.com/feral-file/ff-catalog/internal/profile"
	"github.com/feral-file/ff-catalog/internal/store"
)

// DefaultEnrichmentWorkers is the size of the enrichment pool when none is configured
const DefaultEnrichmentWorkers = 8

// outcome is the settled result of one enrichment step
type outcome[T any] struct {
	value T
	err   error
}

func settle[T any](value T, err error) outcome[T] {
	return outcome[T]{value: value, err: err}
}

// AssembleOptions tunes how a page of rows is turned into records
type AssembleOptions struct {
	// Distinct marks rows that represent a whole series
	Distinct bool
	// MarketplaceID scopes listed counts and prices of series aggregates
	MarketplaceID *string
	// Viewer is the wallet whose likes are reported on each record
	Viewer *string
}

// Assembler enriches ledger rows with local and off-chain data
type Assembler struct {
	ledger   ledger.Client
	store    store.Store
	profiles profile.Source
	metadata metadata.Fetcher
	pool     pond.ResultPool[Record]
}

// NewAssembler creates a result assembler backed by a pool of workers
func NewAssembler(ledgerClient ledger.Client, store store.Store, profiles profile.Source, fetcher metadata.Fetcher, workers int) *Assembler {
	if workers <= 0 {
		workers = DefaultEnrichmentWorkers
	}
	return &Assembler{
		ledger:   ledgerClient,
		store:    store,
		profiles: profiles,
		metadata: fetcher,
		pool:     pond.NewResultPool[Record](workers),
	}
}

// Close stops the worker pool and waits for running tasks
func (a *Assembler) Close() {
	a.pool.StopAndWait()
}

// Assemble enriches records concurrently and returns them in their original order.
// A failing enrichment step leaves its field empty and never drops the record.
func (a *Assembler) Assemble(ctx context.Context, records []Record, opts AssembleOptions) []Record {
	if len(records) == 0 {
		return []Record{}
	}

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}

	// page-wide lookups run once
	categories := settle(a.store.GetCategoryCodesByNFTIDs(ctx, ids))
	if categories.err != nil {
		logger.WarnCtx(ctx, "failed to load categories, records degrade to uncategorized", zap.Error(categories.err))
	}
	profiles := settle(a.profiles.GetProfiles(ctx, walletsOf(records)))
	if profiles.err != nil {
		logger.WarnCtx(ctx, "failed to batch load profiles, falling back to single lookups", zap.Error(profiles.err))
	}
	var liked outcome[map[string]struct{}]
	if opts.Viewer != nil {
		liked = settle(a.likedNFTs(ctx, *opts.Viewer))
		if liked.err != nil {
			logger.WarnCtx(ctx, "failed to load likes", zap.String("viewer", *opts.Viewer), zap.Error(liked.err))
		}
	}

	tasks := make([]pond.Result[Record], len(records))
	for i, record := range records {
		record := record
		tasks[i] = a.pool.SubmitErr(func() (Record, error) {
			return a.enrich(ctx, record, opts, profiles), nil
		})
	}

	out := make([]Record, len(records))
	for i, task := range tasks {
		enriched, err := task.Wait()
		if err != nil {
			// the pool refused the task, keep the bare row
			logger.WarnCtx(ctx, "enrichment task failed", zap.String("nftID", records[i].ID), zap.Error(err))
			enriched = records[i]
		}

		enriched.Categories = []string{}
		if categories.err == nil {
			if codes, ok := categories.value[enriched.ID]; ok {
				enriched.Categories = codes
			}
		}
		if opts.Viewer != nil && liked.err == nil {
			_, isLiked := liked.value[enriched.ID]
			enriched.Liked = &isLiked
		}
		out[i] = enriched
	}
	return out
}

func (a *Assembler) enrich(ctx context.Context, record Record, opts AssembleOptions, profiles outcome[map[string]*domain.ProfileSummary]) Record {
	var creator, owner outcome[*domain.ProfileSummary]
	if profiles.err == nil {
		creator.value = profiles.value[record.Creator]
		owner.value = profiles.value[record.Owner]
	} else {
		creator = settle(a.profile(ctx, record.Creator))
		owner = settle(a.profile(ctx, record.Owner))
	}

	var offchain outcome[*metadata.Offchain]
	if record.NFTIPFS != "" {
		offchain = settle(a.metadata.Fetch(ctx, record.NFTIPFS))
	}

	var aggregates outcome[seriesAggregates]
	if opts.Distinct {
		aggregates = settle(a.seriesAggregates(ctx, record.NFTRow, opts.MarketplaceID))
	}

	// compose once every step settled
	if creator.err != nil {
		logger.WarnCtx(ctx, "failed to load creator profile", zap.String("nftID", record.ID), zap.String("wallet", record.Creator), zap.Error(creator.err))
	} else {
		record.CreatorData = creator.value
	}
	if owner.err != nil {
		logger.WarnCtx(ctx, "failed to load owner profile", zap.String("nftID", record.ID), zap.String("wallet", record.Owner), zap.Error(owner.err))
	} else {
		record.OwnerData = owner.value
	}
	if offchain.err != nil {
		logger.WarnCtx(ctx, "failed to fetch metadata", zap.String("nftID", record.ID), zap.String("uri", record.NFTIPFS), zap.Error(offchain.err))
	} else {
		record.Metadata = offchain.value
	}
	if opts.Distinct {
		if aggregates.err != nil {
			logger.WarnCtx(ctx, "failed to load series aggregates", zap.String("serieID", record.SerieID), zap.Error(aggregates.err))
		} else {
			record.TotalNFT = &aggregates.value.total
			record.TotalListedNFT = &aggregates.value.listed
			record.SmallestPrice = aggregates.value.smallestPrice
		}
	}
	return record
}

// walletsOf returns the distinct creator and owner wallets of a page
func walletsOf(records []Record) []string {
	seen := make(map[string]struct{}, len(records)*2)
	wallets := make([]string, 0, len(records)*2)
	for _, r := range records {
		for _, w := range []string{r.Creator, r.Owner} {
			if w == "" {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			wallets = append(wallets, w)
		}
	}
	return wallets
}

// profile returns nil without error for wallets that have no profile
func (a *Assembler) profile(ctx context.Context, walletID string) (*domain.ProfileSummary, error) {
	if walletID == "" {
		return nil, nil
	}
	p, err := a.profiles.GetProfile(ctx, walletID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return nil, nil
	}
	return p, err
}

func (a *Assembler) likedNFTs(ctx context.Context, walletID string) (map[string]struct{}, error) {
	ids, err := a.store.GetLikedNFTIDs(ctx, walletID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

type seriesAggregates struct {
	total         int
	listed        int
	smallestPrice *string
}

// seriesAggregates counts the live and listed NFTs of the row's series and finds its lowest price.
// Rows outside any series are their own aggregate.
func (a *Assembler) seriesAggregates(ctx context.Context, row ledger.NFTRow, marketplaceID *string) (seriesAggregates, error) {
	if !domain.HasSerie(row.SerieID) {
		agg := seriesAggregates{total: 1}
		if row.IsListed() {
			agg.listed = 1
			price := row.Price
			agg.smallestPrice = &price
		}
		return agg, nil
	}
	return loadSeriesAggregates(ctx, a.ledger, row.SerieID, marketplaceID)
}

// loadSeriesAggregates runs the series count and price queries
func loadSeriesAggregates(ctx context.Context, client ledger.Client, serieID string, marketplaceID *string) (seriesAggregates, error) {
	total, err := client.Execute(ctx, ledger.CountSerie(serieID))
	if err != nil {
		return seriesAggregates{}, fmt.Errorf("failed to count series: %w", err)
	}
	listed, err := client.Execute(ctx, ledger.CountSerieListed(serieID, marketplaceID))
	if err != nil {
		return seriesAggregates{}, fmt.Errorf("failed to count listed series: %w", err)
	}

	agg := seriesAggregates{total: total.TotalCount, listed: listed.TotalCount}
	if listed.TotalCount == 0 {
		return agg, nil
	}

	cheapest, err := client.Execute(ctx, ledger.SmallestPrice(serieID, marketplaceID))
	if err != nil {
		return seriesAggregates{}, fmt.Errorf("failed to find smallest price: %w", err)
	}
	rows, err := ledger.DecodeNodes[ledger.NFTRow](cheapest)
	if err != nil {
		return seriesAggregates{}, err
	}
	if len(rows) > 0 {
		price := rows[0].Price
		if price == "" {
			price = strconv.FormatFloat(rows[0].PriceRounded, 'f', -1, 64)
		}
		agg.smallestPrice = &price
	}
	return agg, nil
}

package catalog

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/api/shared/constants"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/ledger"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/metadata"
	"github.com/feral-file/ff-catalog/internal/profile"
	"github.com/feral-file/ff-catalog/internal/store"
)

// HistoryRequest selects the operations of a history listing
type HistoryRequest struct {
	NFTID string
	// BySerie widens the history to every NFT of the NFT's series
	BySerie bool
	// Grouped folds consecutive identical operations; ignored unless the sort is newest-first
	Grouped bool
	// Types limits the listing to these transaction types
	Types []string
}

// Service is the catalog query and join engine
//
//go:generate mockgen -source=service.go -destination=../mocks/catalog_service.go -package=mocks -mock_names=Service=MockCatalogService
type Service interface {
	// QueryCatalog lists NFTs matching the query, grouped by series within the page
	QueryCatalog(ctx context.Context, q *Query, opts ViewOptions) (*Page[Record], error)
	// QueryDistinct lists one representative NFT per series with series aggregates
	QueryDistinct(ctx context.Context, q *Query, opts ViewOptions) (*Page[Record], error)
	// GetEntity retrieves a single NFT with series aggregates, optionally counting a view
	GetEntity(ctx context.Context, nftID string, opts ViewOptions) (*Record, error)
	// GetSeriesStatus retrieves the owner and lock state of a series
	GetSeriesStatus(ctx context.Context, serieID string) (*SeriesStatus, error)
	// RecordView records a deduplicated view of a subject.
	// NFT views land on the series the NFT belongs to.
	RecordView(ctx context.Context, subject domain.ViewSubject, viewerIP string, viewerWallet *string) (*ViewCount, error)
	// GetHistory lists the ledger operations of an NFT or its series
	GetHistory(ctx context.Context, req HistoryRequest, q *Query) (*Page[ledger.TransferRow], error)

	// GetUser retrieves a profile with its counters, optionally counting a view
	GetUser(ctx context.Context, walletID string, opts ViewOptions) (*User, error)
	// GetUserStats counts what a wallet owns, lists, created, follows and likes
	GetUserStats(ctx context.Context, walletID string) (*UserStats, error)
	// Follow makes follower follow followed
	Follow(ctx context.Context, followed, follower string) (*FollowResult, error)
	// Unfollow removes the follow relationship
	Unfollow(ctx context.Context, followed, follower string) (*FollowResult, error)
	// IsFollowing checks whether follower follows followed
	IsFollowing(ctx context.Context, followed, follower string) (bool, error)

	// ListCategories lists the category catalog
	ListCategories(ctx context.Context, q *Query) (*Page[Category], error)
	// CreateCategory adds a category, returning the existing one when the code is taken
	CreateCategory(ctx context.Context, input store.CreateCategoryInput) (*Category, error)
	// TagNFT attaches catalog categories to an NFT
	TagNFT(ctx context.Context, nftID string, codes []string) error

	// Like records that a wallet likes an NFT
	Like(ctx context.Context, walletID, nftID string) error
	// UpdateProfile creates or updates the profile of a wallet
	UpdateProfile(ctx context.Context, input store.UpsertProfileInput) (*User, error)
}

// Config holds the service tunables
type Config struct {
	// EnrichmentWorkers sizes the pool that enriches listing records
	EnrichmentWorkers int
	// ViewDedupWindow is how long repeated views from one IP are not counted
	ViewDedupWindow time.Duration
}

type service struct {
	ledger     ledger.Client
	store      store.Store
	reconciler *Reconciler
	assembler  *Assembler
	views      *ViewLedger
}

// NewService wires the catalog engine
func NewService(ledgerClient ledger.Client, store store.Store, profiles profile.Source, fetcher metadata.Fetcher, clock adapter.Clock, cfg Config) (Service, func()) {
	assembler := NewAssembler(ledgerClient, store, profiles, fetcher, cfg.EnrichmentWorkers)
	s := &service{
		ledger:     ledgerClient,
		store:      store,
		reconciler: NewReconciler(NewCategoryResolver(store), store),
		assembler:  assembler,
		views:      NewViewLedger(store, clock, cfg.ViewDedupWindow),
	}
	return s, assembler.Close
}

func (s *service) QueryCatalog(ctx context.Context, q *Query, opts ViewOptions) (*Page[Record], error) {
	conn, rows, err := s.listNFTs(ctx, q, ledger.AllNFTs)
	if err != nil {
		return nil, err
	}

	records := s.assembler.Assemble(ctx, GroupBySerie(rows), AssembleOptions{
		MarketplaceID: q.Filter.MarketplaceID,
		Viewer:        opts.ViewerWallet,
	})
	return toPage(conn, records), nil
}

func (s *service) QueryDistinct(ctx context.Context, q *Query, opts ViewOptions) (*Page[Record], error) {
	conn, rows, err := s.listNFTs(ctx, q, ledger.DistinctNFTs)
	if err != nil {
		return nil, err
	}

	records := s.assembler.Assemble(ctx, singletons(rows), AssembleOptions{
		Distinct:      true,
		MarketplaceID: q.Filter.MarketplaceID,
		Viewer:        opts.ViewerWallet,
	})
	return toPage(conn, records), nil
}

func (s *service) listNFTs(ctx context.Context, q *Query, compile func(ledger.NFTSpec) *ledger.Query) (*ledger.Connection, []ledger.NFTRow, error) {
	if q == nil {
		q = &Query{}
	}

	spec, err := s.reconciler.Plan(ctx, q)
	if err != nil {
		return nil, nil, err
	}

	conn, err := s.ledger.Execute(ctx, compile(spec))
	if err != nil {
		return nil, nil, err
	}
	rows, err := ledger.DecodeNodes[ledger.NFTRow](conn)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	return conn, rows, nil
}

func (s *service) GetEntity(ctx context.Context, nftID string, opts ViewOptions) (*Record, error) {
	row, err := s.getNFT(ctx, nftID)
	if err != nil {
		return nil, err
	}

	records := s.assembler.Assemble(ctx, singletons([]ledger.NFTRow{*row}), AssembleOptions{
		Distinct: true,
		Viewer:   opts.ViewerWallet,
	})
	record := records[0]

	subject := domain.SubjectForNFT(row.ID, row.SerieID)
	if views, ok := s.viewsOf(ctx, subject, opts); ok {
		record.ViewsCount = &views
	}
	return &record, nil
}

// viewsOf records or reads the view count of a subject. Failures are logged and reported as absent.
func (s *service) viewsOf(ctx context.Context, subject domain.ViewSubject, opts ViewOptions) (int64, bool) {
	var (
		views int64
		err   error
	)
	if opts.IncrementViews {
		views, err = s.views.RecordView(ctx, subject, opts.ViewerIP, opts.ViewerWallet)
	} else {
		views, err = s.views.Count(ctx, subject)
	}
	if err != nil {
		logger.WarnCtx(ctx, "failed to resolve views", zap.String("subject", subject.String()), zap.Error(err))
		return 0, false
	}
	return views, true
}

func (s *service) getNFT(ctx context.Context, nftID string) (*ledger.NFTRow, error) {
	conn, err := s.ledger.Execute(ctx, ledger.NFTByID(nftID))
	if err != nil {
		return nil, err
	}
	rows, err := ledger.DecodeNodes[ledger.NFTRow](conn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNFTNotFound, nftID)
	}
	return &rows[0], nil
}

func (s *service) GetSeriesStatus(ctx context.Context, serieID string) (*SeriesStatus, error) {
	conn, err := s.ledger.Execute(ctx, ledger.SerieByID(serieID))
	if err != nil {
		return nil, err
	}
	rows, err := ledger.DecodeNodes[ledger.SerieRow](conn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrSerieNotFound, serieID)
	}
	return &SeriesStatus{ID: rows[0].ID, Owner: rows[0].Owner, Locked: rows[0].Locked}, nil
}

func (s *service) RecordView(ctx context.Context, subject domain.ViewSubject, viewerIP string, viewerWallet *string) (*ViewCount, error) {
	if subject.Kind == domain.SubjectKindNFT {
		// views of series members count on the series
		row, err := s.getNFT(ctx, subject.ID)
		if err != nil {
			return nil, err
		}
		subject = domain.SubjectForNFT(row.ID, row.SerieID)
	}
	views, err := s.views.RecordView(ctx, subject, viewerIP, viewerWallet)
	if err != nil {
		return nil, err
	}
	return &ViewCount{Subject: subject, ViewsCount: views}, nil
}

func (s *service) GetHistory(ctx context.Context, req HistoryRequest, q *Query) (*Page[ledger.TransferRow], error) {
	if q == nil {
		q = &Query{}
	}

	spec := ledger.HistorySpec{
		NFTID: req.NFTID,
		Types: req.Types,
		Sort:  q.LedgerSort(),
		Page:  q.Page(),
	}
	if req.BySerie {
		row, err := s.getNFT(ctx, req.NFTID)
		if err != nil {
			return nil, err
		}
		if domain.HasSerie(row.SerieID) {
			spec.SerieID = &row.SerieID
		}
	}

	conn, err := s.ledger.Execute(ctx, ledger.TransferHistory(spec))
	if err != nil {
		return nil, err
	}
	rows, err := ledger.DecodeNodes[ledger.TransferRow](conn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}

	if req.Grouped && ledger.IsDefaultHistorySort(spec.Sort) {
		rows = ledger.GroupTransfers(rows)
	} else {
		for i := range rows {
			if rows[i].Quantity < 1 {
				rows[i].Quantity = 1
			}
		}
	}
	return toPage(conn, rows), nil
}

func (s *service) GetUser(ctx context.Context, walletID string, opts ViewOptions) (*User, error) {
	p, err := s.store.GetProfileByWalletID(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, walletID)
	}

	user := &User{
		WalletID:       p.WalletID,
		Name:           p.Name,
		Bio:            p.Bio,
		Verified:       p.Verified,
		Links:          p.Links,
		FollowersCount: p.FollowersCount,
		FollowingCount: p.FollowingCount,
	}

	if views, ok := s.viewsOf(ctx, domain.SubjectForUser(walletID), opts); ok {
		user.ViewsCount = &views
	}

	if opts.ViewerWallet != nil && *opts.ViewerWallet != walletID {
		following, err := s.store.IsFollowing(ctx, walletID, *opts.ViewerWallet)
		if err != nil {
			logger.WarnCtx(ctx, "failed to check follow state", zap.String("wallet", walletID), zap.Error(err))
		} else {
			user.IsFollowing = &following
		}
	}
	return user, nil
}

func (s *service) GetUserStats(ctx context.Context, walletID string) (*UserStats, error) {
	var stats UserStats
	g, gctx := errgroup.WithContext(ctx)

	ledgerCounts := []struct {
		query  *ledger.Query
		target *int
	}{
		{ledger.CountOwned(walletID), &stats.CountOwned},
		{ledger.CountOwnedListed(walletID), &stats.CountOwnedListed},
		{ledger.CountOwnedUnlisted(walletID), &stats.CountOwnedUnlisted},
		{ledger.CountCreated(walletID), &stats.CountCreated},
	}
	for _, c := range ledgerCounts {
		g.Go(func() error {
			conn, err := s.ledger.Execute(gctx, c.query)
			if err != nil {
				return err
			}
			*c.target = conn.TotalCount
			return nil
		})
	}

	storeCounts := []struct {
		count  func(context.Context, string) (uint64, error)
		target *uint64
	}{
		{s.store.CountFollowers, &stats.CountFollowers},
		{s.store.CountFollowing, &stats.CountFollowing},
		{s.store.CountLikes, &stats.CountLiked},
	}
	for _, c := range storeCounts {
		g.Go(func() error {
			n, err := c.count(gctx, walletID)
			if err != nil {
				return fmt.Errorf("failed to count user activity: %w", err)
			}
			*c.target = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *service) Follow(ctx context.Context, followed, follower string) (*FollowResult, error) {
	if followed == follower {
		return nil, domain.ErrSelfFollow
	}

	created, err := s.store.CreateFollow(ctx, followed, follower)
	if err != nil {
		return nil, fmt.Errorf("failed to follow: %w", err)
	}
	return &FollowResult{Followed: followed, Follower: follower, IsFollowing: true, Changed: created}, nil
}

func (s *service) Unfollow(ctx context.Context, followed, follower string) (*FollowResult, error) {
	if followed == follower {
		return nil, domain.ErrSelfFollow
	}

	deleted, err := s.store.DeleteFollow(ctx, followed, follower)
	if err != nil {
		return nil, fmt.Errorf("failed to unfollow: %w", err)
	}
	return &FollowResult{Followed: followed, Follower: follower, IsFollowing: false, Changed: deleted}, nil
}

func (s *service) IsFollowing(ctx context.Context, followed, follower string) (bool, error) {
	following, err := s.store.IsFollowing(ctx, followed, follower)
	if err != nil {
		return false, fmt.Errorf("failed to check follow state: %w", err)
	}
	return following, nil
}

func (s *service) ListCategories(ctx context.Context, q *Query) (*Page[Category], error) {
	limit, offset := constants.MAX_LIST_PAGE_SIZE, 0
	if page := q.Page(); page != nil {
		limit, offset = page.Size, page.Offset()
	}

	categories, total, err := s.store.ListCategories(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	data := make([]Category, 0, len(categories))
	for _, c := range categories {
		data = append(data, Category{Code: c.Code, Name: c.Name, Description: c.Description})
	}
	return &Page[Category]{
		Data:       data,
		TotalCount: int(total), //nolint:gosec,G115
		PageInfo: PageInfo{
			HasNextPage:     uint64(offset+len(data)) < total, //nolint:gosec,G115
			HasPreviousPage: offset > 0,
		},
	}, nil
}

func (s *service) CreateCategory(ctx context.Context, input store.CreateCategoryInput) (*Category, error) {
	existing, err := s.store.GetCategoriesByCodes(ctx, []string{input.Code})
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}
	if len(existing) > 0 {
		c := existing[0]
		return &Category{Code: c.Code, Name: c.Name, Description: c.Description}, nil
	}

	c, err := s.store.CreateCategory(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &Category{Code: c.Code, Name: c.Name, Description: c.Description}, nil
}

func (s *service) TagNFT(ctx context.Context, nftID string, codes []string) error {
	codes = dedupe(codes)
	known, err := s.store.GetCategoriesByCodes(ctx, codes)
	if err != nil {
		return fmt.Errorf("failed to look up categories: %w", err)
	}
	if len(known) != len(codes) {
		return fmt.Errorf("%w: %v", domain.ErrUnknownCategory, codes)
	}

	if _, err := s.getNFT(ctx, nftID); err != nil {
		return err
	}
	if err := s.store.TagNFT(ctx, nftID, codes); err != nil {
		return fmt.Errorf("failed to tag nft: %w", err)
	}
	return nil
}

func (s *service) Like(ctx context.Context, walletID, nftID string) error {
	row, err := s.getNFT(ctx, nftID)
	if err != nil {
		return err
	}

	serieID := row.SerieID
	if !domain.HasSerie(serieID) {
		serieID = domain.NoSerieID
	}
	err = s.store.CreateLike(ctx, store.CreateLikeInput{WalletID: walletID, NFTID: row.ID, SerieID: serieID})
	if err != nil {
		return fmt.Errorf("failed to like nft: %w", err)
	}
	return nil
}

func (s *service) UpdateProfile(ctx context.Context, input store.UpsertProfileInput) (*User, error) {
	p, err := s.store.UpsertProfile(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &User{
		WalletID:       p.WalletID,
		Name:           p.Name,
		Bio:            p.Bio,
		Verified:       p.Verified,
		Links:          p.Links,
		FollowersCount: p.FollowersCount,
		FollowingCount: p.FollowingCount,
	}, nil
}

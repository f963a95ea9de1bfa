package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/store"
)

// DefaultDedupWindow is how long a viewer IP is not counted again for the same subject
const DefaultDedupWindow = 30 * time.Minute

// ViewLedger records view events, counting each viewer IP at most once per window
type ViewLedger struct {
	store  store.Store
	clock  adapter.Clock
	window time.Duration
}

// NewViewLedger creates a view ledger
func NewViewLedger(store store.Store, clock adapter.Clock, window time.Duration) *ViewLedger {
	if window <= 0 {
		window = DefaultDedupWindow
	}
	return &ViewLedger{store: store, clock: clock, window: window}
}

// RecordView appends a view event unless the IP already viewed the subject inside the
// window, and returns the resulting count. The read and the append are not isolated, so
// concurrent first views from one IP may both be counted.
func (v *ViewLedger) RecordView(ctx context.Context, subject domain.ViewSubject, viewerIP string, viewerWallet *string) (int64, error) {
	if !subject.Valid() {
		return 0, fmt.Errorf("invalid view subject %q", subject.String())
	}

	prior, err := v.store.CountViews(ctx, subject)
	if err != nil {
		return 0, fmt.Errorf("failed to count views: %w", err)
	}

	if prior > 0 {
		latest, err := v.store.GetLatestViewByIP(ctx, subject, viewerIP)
		if err != nil {
			return 0, fmt.Errorf("failed to load latest view: %w", err)
		}
		if latest != nil && v.clock.Since(latest.ViewedAt) < v.window {
			logger.DebugCtx(ctx, "view deduplicated", zap.String("subject", subject.String()), zap.String("ip", viewerIP))
			return int64(prior), nil
		}
	}

	now := v.clock.Now()
	err = v.store.CreateViewEvent(ctx, store.CreateViewEventInput{
		ID:             ulid.MustNewDefault(now).String(),
		Subject:        subject,
		ViewerWalletID: viewerWallet,
		ViewerIP:       viewerIP,
		ViewedAt:       now,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to record view: %w", err)
	}
	return int64(prior) + 1, nil
}

// Count returns the number of recorded views of a subject
func (v *ViewLedger) Count(ctx context.Context, subject domain.ViewSubject) (int64, error) {
	n, err := v.store.CountViews(ctx, subject)
	if err != nil {
		return 0, fmt.Errorf("failed to count views: %w", err)
	}
	return int64(n), nil
}

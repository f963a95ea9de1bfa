package profile

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/feral-file/ff-catalog/internal/adapter"
	"github.com/feral-file/ff-catalog/internal/domain"
)

// DefaultLookupTimeout bounds a shared upstream lookup when none is configured
const DefaultLookupTimeout = 5 * time.Second

// CacheConfig holds the profile cache settings
type CacheConfig struct {
	Size int
	TTL  time.Duration
	// LookupTimeout bounds an upstream lookup shared by concurrent callers
	LookupTimeout time.Duration
}

type cacheEntry struct {
	profile  *domain.ProfileSummary
	notFound bool
	storedAt time.Time
}

// cachedSource memoizes profile lookups for a short time.
// Concurrent lookups of the same wallet share one upstream call.
type cachedSource struct {
	next          Source
	clock         adapter.Clock
	ttl           time.Duration
	lookupTimeout time.Duration
	cache         *lru.Cache[string, cacheEntry]
	group         singleflight.Group
}

// NewCachedSource wraps next with a bounded TTL cache
func NewCachedSource(next Source, clock adapter.Clock, cfg CacheConfig) (Source, error) {
	size := cfg.Size
	if size <= 0 {
		size = 1024
	}
	cache, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, err
	}

	lookupTimeout := cfg.LookupTimeout
	if lookupTimeout <= 0 {
		lookupTimeout = DefaultLookupTimeout
	}

	return &cachedSource{
		next:          next,
		clock:         clock,
		ttl:           cfg.TTL,
		lookupTimeout: lookupTimeout,
		cache:         cache,
	}, nil
}

// sharedContext detaches a shared lookup from the cancellation of the caller that started it
func (c *cachedSource) sharedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), c.lookupTimeout)
}

func (c *cachedSource) fresh(walletID string) (cacheEntry, bool) {
	entry, ok := c.cache.Get(walletID)
	if !ok || c.clock.Since(entry.storedAt) >= c.ttl {
		return cacheEntry{}, false
	}
	return entry, true
}

func (c *cachedSource) GetProfile(ctx context.Context, walletID string) (*domain.ProfileSummary, error) {
	if entry, ok := c.fresh(walletID); ok {
		if entry.notFound {
			return nil, domain.ErrProfileNotFound
		}
		return copySummary(entry.profile), nil
	}

	v, err, _ := c.group.Do(walletID, func() (interface{}, error) {
		lookupCtx, cancel := c.sharedContext(ctx)
		defer cancel()

		profile, err := c.next.GetProfile(lookupCtx, walletID)
		switch {
		case err == nil:
			c.cache.Add(walletID, cacheEntry{profile: profile, storedAt: c.clock.Now()})
		case errors.Is(err, domain.ErrProfileNotFound):
			c.cache.Add(walletID, cacheEntry{notFound: true, storedAt: c.clock.Now()})
		}
		return profile, err
	})
	if err != nil {
		return nil, err
	}
	return copySummary(v.(*domain.ProfileSummary)), nil
}

// GetProfiles serves fresh entries from the cache and loads the misses in one upstream call.
// Identical concurrent miss sets share that call.
func (c *cachedSource) GetProfiles(ctx context.Context, walletIDs []string) (map[string]*domain.ProfileSummary, error) {
	out := make(map[string]*domain.ProfileSummary, len(walletIDs))
	seen := make(map[string]struct{}, len(walletIDs))
	var misses []string
	for _, id := range walletIDs {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		entry, ok := c.fresh(id)
		switch {
		case !ok:
			misses = append(misses, id)
		case !entry.notFound:
			out[id] = copySummary(entry.profile)
		}
	}
	if len(misses) == 0 {
		return out, nil
	}

	sort.Strings(misses)
	v, err, _ := c.group.Do("batch:"+strings.Join(misses, ","), func() (interface{}, error) {
		lookupCtx, cancel := c.sharedContext(ctx)
		defer cancel()

		found, err := c.next.GetProfiles(lookupCtx, misses)
		if err != nil {
			return nil, err
		}
		now := c.clock.Now()
		for _, id := range misses {
			if p, ok := found[id]; ok && p != nil {
				c.cache.Add(id, cacheEntry{profile: p, storedAt: now})
			} else {
				c.cache.Add(id, cacheEntry{notFound: true, storedAt: now})
			}
		}
		return found, nil
	})
	if err != nil {
		return nil, err
	}

	for id, p := range v.(map[string]*domain.ProfileSummary) {
		if p != nil {
			out[id] = copySummary(p)
		}
	}
	return out, nil
}

func copySummary(p *domain.ProfileSummary) *domain.ProfileSummary {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

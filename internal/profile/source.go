package profile

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/store"
	"github.com/feral-file/ff-catalog/internal/store/schema"
)

// Source resolves wallet ids to profile summaries
//
//go:generate mockgen -source=source.go -destination=../mocks/profile_source.go -package=mocks -mock_names=Source=MockProfileSource
type Source interface {
	// GetProfile returns the profile of a wallet, or domain.ErrProfileNotFound
	GetProfile(ctx context.Context, walletID string) (*domain.ProfileSummary, error)
	// GetProfiles returns the profiles of many wallets keyed by wallet id.
	// Wallets without a profile are absent from the map.
	GetProfiles(ctx context.Context, walletIDs []string) (map[string]*domain.ProfileSummary, error)
}

type storeSource struct {
	store store.Store
}

// NewStoreSource creates a source that reads profiles from the local database
func NewStoreSource(store store.Store) Source {
	return &storeSource{store: store}
}

func (s *storeSource) GetProfile(ctx context.Context, walletID string) (*domain.ProfileSummary, error) {
	profile, err := s.store.GetProfileByWalletID(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	return toSummary(profile), nil
}

func (s *storeSource) GetProfiles(ctx context.Context, walletIDs []string) (map[string]*domain.ProfileSummary, error) {
	profiles, err := s.store.GetProfilesByWalletIDs(ctx, walletIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	out := make(map[string]*domain.ProfileSummary, len(profiles))
	for i := range profiles {
		out[profiles[i].WalletID] = toSummary(&profiles[i])
	}
	return out, nil
}

func toSummary(profile *schema.Profile) *domain.ProfileSummary {
	verified := profile.Verified
	return &domain.ProfileSummary{
		WalletID: profile.WalletID,
		Name:     profile.Name,
		Verified: &verified,
	}
}

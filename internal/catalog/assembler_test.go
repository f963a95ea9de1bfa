package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog/internal/catalog"
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/mocks"
)

func newAssembler(t *testing.T, profiles *mocks.MockProfileSource) *catalog.Assembler {
	ctrl := gomock.NewController(t)
	assembler := catalog.NewAssembler(&fakeLedger{}, newTestStore(t), profiles, mocks.NewMockMetadataFetcher(ctrl), 2)
	t.Cleanup(assembler.Close)
	return assembler
}

func TestAssembler_LoadsProfilesOncePerPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileSource(ctrl)

	name := "Creator"
	profiles.EXPECT().GetProfiles(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, wallets []string) (map[string]*domain.ProfileSummary, error) {
			assert.ElementsMatch(t, []string{"creator", "owner-1", "owner-2"}, wallets)
			return map[string]*domain.ProfileSummary{
				"creator": {WalletID: "creator", Name: &name},
				"owner-2": {WalletID: "owner-2"},
			}, nil
		}).Times(1)

	records := []catalog.Record{{NFTRow: nft("1", "0", false)}, {NFTRow: nft("2", "0", false)}}
	out := newAssembler(t, profiles).Assemble(context.Background(), records, catalog.AssembleOptions{})

	require.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "2", out[1].ID)
	for _, r := range out {
		require.NotNil(t, r.CreatorData)
		assert.Equal(t, "Creator", *r.CreatorData.Name)
	}
	assert.Nil(t, out[0].OwnerData)
	require.NotNil(t, out[1].OwnerData)
	assert.Equal(t, "owner-2", out[1].OwnerData.WalletID)
}

func TestAssembler_FallsBackToSingleProfileLookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileSource(ctrl)

	profiles.EXPECT().GetProfiles(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	profiles.EXPECT().GetProfile(gomock.Any(), "creator").Return(&domain.ProfileSummary{WalletID: "creator"}, nil)
	profiles.EXPECT().GetProfile(gomock.Any(), "owner-1").Return(nil, domain.ErrProfileNotFound)

	records := []catalog.Record{{NFTRow: nft("1", "0", false)}}
	out := newAssembler(t, profiles).Assemble(context.Background(), records, catalog.AssembleOptions{})

	require.Len(t, out, 1)
	require.NotNil(t, out[0].CreatorData)
	assert.Equal(t, "creator", out[0].CreatorData.WalletID)
	assert.Nil(t, out[0].OwnerData)
	assert.Equal(t, []string{}, out[0].Categories)
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog/internal/domain"
)

// StoreTestSuite provides the interface for running store tests against different implementations
type StoreTestSuite struct {
	Store Store
	// InitDB should be called before each test to initialize the database
	InitDB func(t *testing.T) Store
	// CleanupDB should be called after each test to clean up the database
	CleanupDB func(t *testing.T)
}

// =============================================================================
// Test Data Builders
// =============================================================================

func stringPtr(s string) *string {
	return &s
}

func buildTestCategory(code string) CreateCategoryInput {
	return CreateCategoryInput{
		Code:        code,
		Name:        "Category " + code,
		Description: stringPtr("about " + code),
	}
}

func buildTestView(id string, subject domain.ViewSubject, ip string, at time.Time) CreateViewEventInput {
	return CreateViewEventInput{
		ID:       id,
		Subject:  subject,
		ViewerIP: ip,
		ViewedAt: at,
	}
}

// =============================================================================
// Tests
// =============================================================================

func testCategories(t *testing.T, store Store) {
	ctx := context.Background()

	for _, code := range []string{"photo", "art", "music"} {
		_, err := store.CreateCategory(ctx, buildTestCategory(code))
		require.NoError(t, err)
	}

	t.Run("list is ordered by code and counted", func(t *testing.T) {
		categories, total, err := store.ListCategories(ctx, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, categories, 2)
		assert.Equal(t, "art", categories[0].Code)
		assert.Equal(t, "music", categories[1].Code)
	})

	t.Run("second page", func(t *testing.T) {
		categories, total, err := store.ListCategories(ctx, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, categories, 1)
		assert.Equal(t, "photo", categories[0].Code)
	})

	t.Run("get by codes skips unknown", func(t *testing.T) {
		categories, err := store.GetCategoriesByCodes(ctx, []string{"art", "nope"})
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "art", categories[0].Code)
		require.NotNil(t, categories[0].Description)
		assert.Equal(t, "about art", *categories[0].Description)
	})

	t.Run("duplicate code fails", func(t *testing.T) {
		_, err := store.CreateCategory(ctx, buildTestCategory("art"))
		assert.Error(t, err)
	})
}

func testNFTTags(t *testing.T, store Store) {
	ctx := context.Background()

	for _, code := range []string{"art", "photo"} {
		_, err := store.CreateCategory(ctx, buildTestCategory(code))
		require.NoError(t, err)
	}
	require.NoError(t, store.TagNFT(ctx, "1", []string{"art"}))
	require.NoError(t, store.TagNFT(ctx, "2", []string{"art", "photo"}))
	require.NoError(t, store.TagNFT(ctx, "3", []string{"photo"}))
	// tagging twice is a no-op
	require.NoError(t, store.TagNFT(ctx, "1", []string{"art"}))

	t.Run("ids by categories", func(t *testing.T) {
		ids, err := store.GetNFTIDsByCategories(ctx, []string{"art"})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, ids)
	})

	t.Run("ids by no categories", func(t *testing.T) {
		ids, err := store.GetNFTIDsByCategories(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("ids tagged outside", func(t *testing.T) {
		ids, err := store.GetNFTIDsTaggedOutside(ctx, []string{"art"})
		require.NoError(t, err)
		assert.Equal(t, []string{"2", "3"}, ids)
	})

	t.Run("every tagged id", func(t *testing.T) {
		ids, err := store.GetNFTIDsTaggedOutside(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, ids)
	})

	t.Run("codes by nft ids", func(t *testing.T) {
		codes, err := store.GetCategoryCodesByNFTIDs(ctx, []string{"2", "3", "9"})
		require.NoError(t, err)
		assert.Equal(t, []string{"art", "photo"}, codes["2"])
		assert.Equal(t, []string{"photo"}, codes["3"])
		_, ok := codes["9"]
		assert.False(t, ok)
	})
}

func testLikes(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateLike(ctx, CreateLikeInput{WalletID: "alice", NFTID: "1", SerieID: "S1"}))
	require.NoError(t, store.CreateLike(ctx, CreateLikeInput{WalletID: "alice", NFTID: "2", SerieID: "S1"}))
	require.NoError(t, store.CreateLike(ctx, CreateLikeInput{WalletID: "alice", NFTID: "3", SerieID: "0"}))
	require.NoError(t, store.CreateLike(ctx, CreateLikeInput{WalletID: "alice", NFTID: "1", SerieID: "S1"}))
	require.NoError(t, store.CreateLike(ctx, CreateLikeInput{WalletID: "bob", NFTID: "4", SerieID: "S2"}))

	nftIDs, err := store.GetLikedNFTIDs(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, nftIDs)

	serieIDs, err := store.GetLikedSerieIDs(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "S1"}, serieIDs)

	likes, err := store.GetLikes(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, likes, 3)
	assert.Equal(t, "0", likes[2].SerieID)

	count, err := store.CountLikes(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)

	none, err := store.GetLikedSerieIDs(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testViews(t *testing.T, store Store) {
	ctx := context.Background()
	subject := domain.SubjectForNFT("1", "S1")
	other := domain.SubjectForNFT("2", "0")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	latest, err := store.GetLatestViewByIP(ctx, subject, "10.0.0.1")
	require.NoError(t, err)
	assert.Nil(t, latest)

	require.NoError(t, store.CreateViewEvent(ctx, buildTestView("01HQ0000000000000000000001", subject, "10.0.0.1", base)))
	require.NoError(t, store.CreateViewEvent(ctx, buildTestView("01HQ0000000000000000000002", subject, "10.0.0.1", base.Add(time.Hour))))
	require.NoError(t, store.CreateViewEvent(ctx, buildTestView("01HQ0000000000000000000003", subject, "10.0.0.2", base.Add(2*time.Hour))))
	require.NoError(t, store.CreateViewEvent(ctx, buildTestView("01HQ0000000000000000000004", other, "10.0.0.1", base.Add(3*time.Hour))))

	count, err := store.CountViews(ctx, subject)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)

	latest, err = store.GetLatestViewByIP(ctx, subject, "10.0.0.1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "01HQ0000000000000000000002", latest.ID)
	assert.True(t, base.Add(time.Hour).Equal(latest.ViewedAt))
	assert.Equal(t, domain.SubjectKindSerie, latest.SubjectKind)
}

func testFollows(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.UpsertProfile(ctx, UpsertProfileInput{WalletID: "alice", Name: stringPtr("Alice")})
	require.NoError(t, err)
	_, err = store.UpsertProfile(ctx, UpsertProfileInput{WalletID: "bob"})
	require.NoError(t, err)

	created, err := store.CreateFollow(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.CreateFollow(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, created)

	following, err := store.IsFollowing(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, following)

	following, err = store.IsFollowing(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.False(t, following)

	alice, err := store.GetProfileByWalletID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), alice.FollowersCount)
	bob, err := store.GetProfileByWalletID(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(1), bob.FollowingCount)

	followers, err := store.CountFollowers(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), followers)
	followingCount, err := store.CountFollowing(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), followingCount)

	deleted, err := store.DeleteFollow(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.DeleteFollow(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, deleted)

	alice, err = store.GetProfileByWalletID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(0), alice.FollowersCount)
}

func testProfiles(t *testing.T, store Store) {
	ctx := context.Background()

	missing, err := store.GetProfileByWalletID(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	profile, err := store.UpsertProfile(ctx, UpsertProfileInput{
		WalletID: "alice",
		Name:     stringPtr("Alice"),
		Links:    map[string]interface{}{"twitter": "https://twitter.com/alice"},
	})
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Alice", *profile.Name)
	assert.False(t, profile.Verified)
	assert.Equal(t, "https://twitter.com/alice", profile.Links["twitter"])

	profile, err = store.UpsertProfile(ctx, UpsertProfileInput{WalletID: "alice", Name: stringPtr("Alice B"), Verified: true})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", *profile.Name)
	assert.True(t, profile.Verified)

	profiles, err := store.GetProfilesByWalletIDs(ctx, []string{"alice", "nobody"})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "alice", profiles[0].WalletID)
}

// RunStoreTests runs every store test against the store returned by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Categories", testCategories},
		{"NFTTags", testNFTTags},
		{"Likes", testLikes},
		{"Views", testViews},
		{"Follows", testFollows},
		{"Profiles", testProfiles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

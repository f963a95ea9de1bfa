package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/store/schema"
)

// CreateCategoryInput represents the input for creating a category
type CreateCategoryInput struct {
	Code        string
	Name        string
	Description *string
}

// CreateViewEventInput represents the input for recording a view
type CreateViewEventInput struct {
	ID             string
	Subject        domain.ViewSubject
	ViewerWalletID *string
	ViewerIP       string
	ViewedAt       time.Time
}

// CreateLikeInput represents the input for recording a like
type CreateLikeInput struct {
	WalletID string
	NFTID    string
	SerieID  string
}

// UpsertProfileInput represents the input for creating or updating a profile
type UpsertProfileInput struct {
	WalletID string
	Name     *string
	Bio      *string
	Verified bool
	Links    map[string]interface{}
}

// Store defines the interface for the catalog's local database
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// =============================================================================
	// Categories
	// =============================================================================

	// GetCategoriesByCodes retrieves the categories whose code is in codes
	GetCategoriesByCodes(ctx context.Context, codes []string) ([]schema.Category, error)
	// ListCategories retrieves categories ordered by code with the total count
	ListCategories(ctx context.Context, limit int, offset int) ([]schema.Category, uint64, error)
	// CreateCategory creates a category
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*schema.Category, error)
	// TagNFT attaches categories to an NFT, skipping existing tags
	TagNFT(ctx context.Context, nftID string, codes []string) error
	// GetNFTIDsByCategories retrieves the ids of NFTs tagged with any of codes
	GetNFTIDsByCategories(ctx context.Context, codes []string) ([]string, error)
	// GetNFTIDsTaggedOutside retrieves the ids of NFTs tagged with a category not in codes.
	// With no codes it returns every tagged NFT.
	GetNFTIDsTaggedOutside(ctx context.Context, codes []string) ([]string, error)
	// GetCategoryCodesByNFTIDs retrieves the category codes of each NFT
	GetCategoryCodesByNFTIDs(ctx context.Context, nftIDs []string) (map[string][]string, error)

	// =============================================================================
	// Likes
	// =============================================================================

	// CreateLike records a like, ignoring duplicates
	CreateLike(ctx context.Context, input CreateLikeInput) error
	// GetLikes retrieves the likes of a wallet
	GetLikes(ctx context.Context, walletID string) ([]schema.Like, error)
	// GetLikedNFTIDs retrieves the NFT ids liked by a wallet
	GetLikedNFTIDs(ctx context.Context, walletID string) ([]string, error)
	// GetLikedSerieIDs retrieves the distinct serie ids liked by a wallet
	GetLikedSerieIDs(ctx context.Context, walletID string) ([]string, error)
	// CountLikes counts the likes of a wallet
	CountLikes(ctx context.Context, walletID string) (uint64, error)

	// =============================================================================
	// Views
	// =============================================================================

	// CountViews counts the view events of a subject
	CountViews(ctx context.Context, subject domain.ViewSubject) (uint64, error)
	// GetLatestViewByIP retrieves the most recent view of a subject from an IP, or nil
	GetLatestViewByIP(ctx context.Context, subject domain.ViewSubject, viewerIP string) (*schema.ViewEvent, error)
	// CreateViewEvent records a view event
	CreateViewEvent(ctx context.Context, input CreateViewEventInput) error

	// =============================================================================
	// Follows
	// =============================================================================

	// CreateFollow records that follower follows followed and bumps both profile counters.
	// It returns false when the relationship already existed.
	CreateFollow(ctx context.Context, followed, follower string) (bool, error)
	// DeleteFollow removes the relationship and decrements both profile counters.
	// It returns false when there was nothing to remove.
	DeleteFollow(ctx context.Context, followed, follower string) (bool, error)
	// IsFollowing checks whether follower follows followed
	IsFollowing(ctx context.Context, followed, follower string) (bool, error)
	// CountFollowers counts the wallets following walletID
	CountFollowers(ctx context.Context, walletID string) (uint64, error)
	// CountFollowing counts the wallets walletID follows
	CountFollowing(ctx context.Context, walletID string) (uint64, error)

	// =============================================================================
	// Profiles
	// =============================================================================

	// GetProfileByWalletID retrieves a profile, or nil when none exists
	GetProfileByWalletID(ctx context.Context, walletID string) (*schema.Profile, error)
	// GetProfilesByWalletIDs retrieves the profiles that exist among walletIDs
	GetProfilesByWalletIDs(ctx context.Context, walletIDs []string) ([]schema.Profile, error)
	// UpsertProfile creates or updates a profile keyed by wallet id
	UpsertProfile(ctx context.Context, input UpsertProfileInput) (*schema.Profile, error)
}

package catalog

import (
	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/ledger"
	"github.com/feral-file/ff-catalog/internal/metadata"
)

// Record is an NFT listing entry: the ledger row plus series totals and enrichment.
// Enrichment fields are left empty when their source fails.
type Record struct {
	ledger.NFTRow

	TotalNFT       *int    `json:"totalNft,omitempty"`
	TotalListedNFT *int    `json:"totalListedNft,omitempty"`
	SmallestPrice  *string `json:"smallestPrice,omitempty"`

	CreatorData *domain.ProfileSummary `json:"creatorData,omitempty"`
	OwnerData   *domain.ProfileSummary `json:"ownerData,omitempty"`
	Metadata    *metadata.Offchain     `json:"metadata,omitempty"`
	Categories  []string               `json:"categories"`
	Liked       *bool                  `json:"liked,omitempty"`
	ViewsCount  *int64                 `json:"viewsCount,omitempty"`
}

// SeriesStatus is the lock state of a series
type SeriesStatus struct {
	ID     string `json:"id"`
	Owner  string `json:"owner"`
	Locked bool   `json:"locked"`
}

// ViewCount is the result of recording a view
type ViewCount struct {
	Subject    domain.ViewSubject `json:"-"`
	ViewsCount int64              `json:"viewsCount"`
}

// UserStats are the activity counters of a wallet
type UserStats struct {
	CountOwned         int    `json:"countOwned"`
	CountOwnedListed   int    `json:"countOwnedListed"`
	CountOwnedUnlisted int    `json:"countOwnedUnlisted"`
	CountCreated       int    `json:"countCreated"`
	CountFollowers     uint64 `json:"countFollowers"`
	CountFollowing     uint64 `json:"countFollowing"`
	CountLiked         uint64 `json:"countLiked"`
}

// User is a wallet profile with its counters
type User struct {
	WalletID       string                 `json:"walletId"`
	Name           *string                `json:"name,omitempty"`
	Bio            *string                `json:"bio,omitempty"`
	Verified       bool                   `json:"verified"`
	Links          map[string]interface{} `json:"links,omitempty"`
	FollowersCount int64                  `json:"followersCount"`
	FollowingCount int64                  `json:"followingCount"`
	ViewsCount     *int64                 `json:"viewsCount,omitempty"`
	IsFollowing    *bool                  `json:"isFollowing,omitempty"`
}

// FollowResult reports the follow state after a follow or unfollow
type FollowResult struct {
	Followed    string `json:"followed"`
	Follower    string `json:"follower"`
	IsFollowing bool   `json:"isFollowing"`
	// Changed is false when the request did not alter the relationship
	Changed bool `json:"changed"`
}

// Category is a listing entry of the category catalog
type Category struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Profile represents the profiles table - user-facing wallet profiles
type Profile struct {
	ID       uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	WalletID string  `gorm:"column:wallet_id;not null;uniqueIndex;size:128"`
	Name     *string `gorm:"column:name"`
	Bio      *string `gorm:"column:bio"`
	Verified bool    `gorm:"column:verified;not null;default:false"`
	// FollowersCount and FollowingCount are kept in step with the follows table
	FollowersCount int64 `gorm:"column:followers_count;not null;default:0"`
	FollowingCount int64 `gorm:"column:following_count;not null;default:0"`
	// Links holds social links keyed by network, e.g. {"twitter": "https://..."}
	Links     datatypes.JSONMap `gorm:"column:links"`
	CreatedAt time.Time         `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time         `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}

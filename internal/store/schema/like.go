package schema

import "time"

// Like represents the likes table
type Like struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	WalletID string `gorm:"column:wallet_id;not null;uniqueIndex:idx_likes_wallet_nft;size:128"`
	NFTID    string `gorm:"column:nft_id;not null;uniqueIndex:idx_likes_wallet_nft;size:128"`
	// SerieID is copied from the ledger when the like is recorded
	SerieID   string    `gorm:"column:serie_id;not null;index;size:128"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the Like model
func (Like) TableName() string {
	return "likes"
}

package schema

import "time"

// NFTCategory represents the nft_categories table - the tags linking ledger NFTs to categories
type NFTCategory struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// NFTID is the ledger id of the tagged NFT
	NFTID        string    `gorm:"column:nft_id;not null;uniqueIndex:idx_nft_categories_nft_code;size:128"`
	CategoryCode string    `gorm:"column:category_code;not null;uniqueIndex:idx_nft_categories_nft_code;index;size:64"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the NFTCategory model
func (NFTCategory) TableName() string {
	return "nft_categories"
}

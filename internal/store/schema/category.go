package schema

import "time"

// Category represents the categories table - editorial groupings of NFTs
type Category struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Code is the stable identifier clients filter by
	Code        string    `gorm:"column:code;not null;uniqueIndex;size:64" json:"code"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"-"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

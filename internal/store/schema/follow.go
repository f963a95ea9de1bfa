package schema

import "time"

// Follow represents the follows table - a follower wallet subscribing to a followed wallet
type Follow struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Followed  string    `gorm:"column:followed;not null;uniqueIndex:idx_follows_pair;index;size:128"`
	Follower  string    `gorm:"column:follower;not null;uniqueIndex:idx_follows_pair;index;size:128"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the Follow model
func (Follow) TableName() string {
	return "follows"
}

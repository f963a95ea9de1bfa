package schema

import (
	"time"

	"github.com/feral-file/ff-catalog/internal/domain"
)

// ViewEvent represents the view_events table - one row per counted view
type ViewEvent struct {
	// ID is a ULID, sortable by creation time
	ID          string             `gorm:"column:id;primaryKey;size:26"`
	SubjectKind domain.SubjectKind `gorm:"column:subject_kind;not null;index:idx_view_events_subject;size:16"`
	SubjectID   string             `gorm:"column:subject_id;not null;index:idx_view_events_subject;size:128"`
	// ViewerWalletID is set when the viewer was authenticated
	ViewerWalletID *string   `gorm:"column:viewer_wallet_id;size:128"`
	ViewerIP       string    `gorm:"column:viewer_ip;not null;size:64"`
	ViewedAt       time.Time `gorm:"column:viewed_at;not null;index"`
}

// TableName specifies the table name for the ViewEvent model
func (ViewEvent) TableName() string {
	return "view_events"
}

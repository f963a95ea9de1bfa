package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/feral-file/ff-catalog/internal/domain"
	"github.com/feral-file/ff-catalog/internal/logger"
	"github.com/feral-file/ff-catalog/internal/store/schema"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type sqlStore struct {
	db *gorm.DB
}

// NewStore creates a store backed by an open gorm connection
func NewStore(db *gorm.DB) Store {
	return &sqlStore{db: db}
}

// Open connects to the database, retrying with exponential backoff until maxWait elapses.
// A zero maxWait attempts the connection once.
func Open(ctx context.Context, driver, dsn string, debug bool, maxWait time.Duration) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres, "":
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	logLevel := gormlogger.Silent
	if debug {
		logLevel = gormlogger.Info
	}

	var db *gorm.DB
	operation := func() error {
		var err error
		db, err = gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(logLevel)})
		if err != nil {
			logger.Warn("failed to connect to database, retrying", zap.String("driver", driver), zap.Error(err))
			return err
		}
		return nil
	}

	var b backoff.BackOff = &backoff.StopBackOff{}
	if maxWait > 0 {
		exp := backoff.NewExponentialBackOff()
		exp.MaxElapsedTime = maxWait
		b = exp
	}
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the catalog tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(schema.Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// =============================================================================
// Categories
// =============================================================================

func (s *sqlStore) GetCategoriesByCodes(ctx context.Context, codes []string) ([]schema.Category, error) {
	if len(codes) == 0 {
		return []schema.Category{}, nil
	}

	var categories []schema.Category
	if err := s.db.WithContext(ctx).Where("code IN ?", codes).Order("code ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories by codes: %w", err)
	}
	return categories, nil
}

func (s *sqlStore) ListCategories(ctx context.Context, limit int, offset int) ([]schema.Category, uint64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&schema.Category{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	var categories []schema.Category
	if err := s.db.WithContext(ctx).Order("code ASC").Limit(limit).Offset(offset).Find(&categories).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, uint64(total), nil //nolint:gosec,G115
}

func (s *sqlStore) CreateCategory(ctx context.Context, input CreateCategoryInput) (*schema.Category, error) {
	category := schema.Category{
		Code:        input.Code,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *sqlStore) TagNFT(ctx context.Context, nftID string, codes []string) error {
	if len(codes) == 0 {
		return nil
	}

	tags := make([]schema.NFTCategory, 0, len(codes))
	for _, code := range codes {
		tags = append(tags, schema.NFTCategory{NFTID: nftID, CategoryCode: code})
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&tags).Error
	if err != nil {
		return fmt.Errorf("failed to tag nft: %w", err)
	}
	return nil
}

func (s *sqlStore) GetNFTIDsByCategories(ctx context.Context, codes []string) ([]string, error) {
	if len(codes) == 0 {
		return []string{}, nil
	}

	var ids []string
	err := s.db.WithContext(ctx).
		Model(&schema.NFTCategory{}).
		Distinct("nft_id").
		Where("category_code IN ?", codes).
		Order("nft_id ASC").
		Pluck("nft_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get nft ids by categories: %w", err)
	}
	return ids, nil
}

func (s *sqlStore) GetNFTIDsTaggedOutside(ctx context.Context, codes []string) ([]string, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.NFTCategory{}).
		Distinct("nft_id")
	if len(codes) > 0 {
		query = query.Where("category_code NOT IN ?", codes)
	}

	var ids []string
	if err := query.Order("nft_id ASC").Pluck("nft_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to get nft ids tagged outside categories: %w", err)
	}
	return ids, nil
}

func (s *sqlStore) GetCategoryCodesByNFTIDs(ctx context.Context, nftIDs []string) (map[string][]string, error) {
	result := make(map[string][]string, len(nftIDs))
	if len(nftIDs) == 0 {
		return result, nil
	}

	var tags []schema.NFTCategory
	err := s.db.WithContext(ctx).
		Where("nft_id IN ?", nftIDs).
		Order("nft_id ASC, category_code ASC").
		Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get categories by nft ids: %w", err)
	}

	for _, tag := range tags {
		result[tag.NFTID] = append(result[tag.NFTID], tag.CategoryCode)
	}
	return result, nil
}

// =============================================================================
// Likes
// =============================================================================

func (s *sqlStore) CreateLike(ctx context.Context, input CreateLikeInput) error {
	like := schema.Like{
		WalletID: input.WalletID,
		NFTID:    input.NFTID,
		SerieID:  input.SerieID,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
	if err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

func (s *sqlStore) GetLikes(ctx context.Context, walletID string) ([]schema.Like, error) {
	var likes []schema.Like
	if err := s.db.WithContext(ctx).Where("wallet_id = ?", walletID).Order("nft_id ASC").Find(&likes).Error; err != nil {
		return nil, fmt.Errorf("failed to get likes: %w", err)
	}
	return likes, nil
}

func (s *sqlStore) GetLikedNFTIDs(ctx context.Context, walletID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&schema.Like{}).
		Where("wallet_id = ?", walletID).
		Order("nft_id ASC").
		Pluck("nft_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get liked nft ids: %w", err)
	}
	return ids, nil
}

func (s *sqlStore) GetLikedSerieIDs(ctx context.Context, walletID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&schema.Like{}).
		Distinct("serie_id").
		Where("wallet_id = ?", walletID).
		Order("serie_id ASC").
		Pluck("serie_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get liked serie ids: %w", err)
	}
	return ids, nil
}

func (s *sqlStore) CountLikes(ctx context.Context, walletID string) (uint64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&schema.Like{}).Where("wallet_id = ?", walletID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return uint64(count), nil //nolint:gosec,G115
}

// =============================================================================
// Views
// =============================================================================

func (s *sqlStore) CountViews(ctx context.Context, subject domain.ViewSubject) (uint64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.ViewEvent{}).
		Where("subject_kind = ? AND subject_id = ?", subject.Kind, subject.ID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count views: %w", err)
	}
	return uint64(count), nil //nolint:gosec,G115
}

func (s *sqlStore) GetLatestViewByIP(ctx context.Context, subject domain.ViewSubject, viewerIP string) (*schema.ViewEvent, error) {
	var event schema.ViewEvent
	err := s.db.WithContext(ctx).
		Where("subject_kind = ? AND subject_id = ? AND viewer_ip = ?", subject.Kind, subject.ID, viewerIP).
		Order("viewed_at DESC").
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest view: %w", err)
	}
	return &event, nil
}

func (s *sqlStore) CreateViewEvent(ctx context.Context, input CreateViewEventInput) error {
	event := schema.ViewEvent{
		ID:             input.ID,
		SubjectKind:    input.Subject.Kind,
		SubjectID:      input.Subject.ID,
		ViewerWalletID: input.ViewerWalletID,
		ViewerIP:       input.ViewerIP,
		ViewedAt:       input.ViewedAt,
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to create view event: %w", err)
	}
	return nil
}

// =============================================================================
// Follows
// =============================================================================

func (s *sqlStore) CreateFollow(ctx context.Context, followed, follower string) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&schema.Follow{Followed: followed, Follower: follower})
		if result.Error != nil {
			return fmt.Errorf("failed to create follow: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true

		if err := tx.Model(&schema.Profile{}).
			Where("wallet_id = ?", followed).
			Update("followers_count", gorm.Expr("followers_count + 1")).Error; err != nil {
			return fmt.Errorf("failed to increment followers count: %w", err)
		}
		if err := tx.Model(&schema.Profile{}).
			Where("wallet_id = ?", follower).
			Update("following_count", gorm.Expr("following_count + 1")).Error; err != nil {
			return fmt.Errorf("failed to increment following count: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (s *sqlStore) DeleteFollow(ctx context.Context, followed, follower string) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("followed = ? AND follower = ?", followed, follower).Delete(&schema.Follow{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete follow: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true

		if err := tx.Model(&schema.Profile{}).
			Where("wallet_id = ? AND followers_count > 0", followed).
			Update("followers_count", gorm.Expr("followers_count - 1")).Error; err != nil {
			return fmt.Errorf("failed to decrement followers count: %w", err)
		}
		if err := tx.Model(&schema.Profile{}).
			Where("wallet_id = ? AND following_count > 0", follower).
			Update("following_count", gorm.Expr("following_count - 1")).Error; err != nil {
			return fmt.Errorf("failed to decrement following count: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (s *sqlStore) IsFollowing(ctx context.Context, followed, follower string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Follow{}).
		Where("followed = ? AND follower = ?", followed, follower).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return count > 0, nil
}

func (s *sqlStore) CountFollowers(ctx context.Context, walletID string) (uint64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&schema.Follow{}).Where("followed = ?", walletID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}
	return uint64(count), nil //nolint:gosec,G115
}

func (s *sqlStore) CountFollowing(ctx context.Context, walletID string) (uint64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&schema.Follow{}).Where("follower = ?", walletID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count following: %w", err)
	}
	return uint64(count), nil //nolint:gosec,G115
}

// =============================================================================
// Profiles
// =============================================================================

func (s *sqlStore) GetProfileByWalletID(ctx context.Context, walletID string) (*schema.Profile, error) {
	var profile schema.Profile
	if err := s.db.WithContext(ctx).Where("wallet_id = ?", walletID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

func (s *sqlStore) GetProfilesByWalletIDs(ctx context.Context, walletIDs []string) ([]schema.Profile, error) {
	if len(walletIDs) == 0 {
		return []schema.Profile{}, nil
	}

	var profiles []schema.Profile
	if err := s.db.WithContext(ctx).Where("wallet_id IN ?", walletIDs).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	return profiles, nil
}

func (s *sqlStore) UpsertProfile(ctx context.Context, input UpsertProfileInput) (*schema.Profile, error) {
	profile := schema.Profile{
		WalletID: input.WalletID,
		Name:     input.Name,
		Bio:      input.Bio,
		Verified: input.Verified,
		Links:    datatypes.JSONMap(input.Links),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wallet_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "bio", "verified", "links", "updated_at"}),
		}).
		Create(&profile).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return s.GetProfileByWalletID(ctx, input.WalletID)
}

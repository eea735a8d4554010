package storage

import (
	"context"
	"errors"
	"time"

	"github.com/GreatJeff90/bookstore/internal/domain/model"
	"github.com/GreatJeff90/bookstore/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore は storage_entries テーブルを使う（postgres）。
type GormStore struct {
	db *gorm.DB
}

// DI
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetItem(ctx context.Context, profileID string, key string) (string, error) {
	var entry model.StorageEntry

	err := s.db.WithContext(ctx).
		Where("profile_id = ? AND key = ?", profileID, key).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

// 同じキーは上書き（last write wins）
func (s *GormStore) SetItem(ctx context.Context, profileID string, key string, value string) error {
	entry := model.StorageEntry{
		ProfileID: profileID,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (s *GormStore) RemoveItem(ctx context.Context, profileID string, key string) error {
	return s.db.WithContext(ctx).
		Where("profile_id = ? AND key = ?", profileID, key).
		Delete(&model.StorageEntry{}).Error
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

var _ repository.Storage = (*GormStore)(nil)

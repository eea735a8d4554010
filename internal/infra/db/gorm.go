package db

import (
	"fmt"

	"github.com/GreatJeff90/bookstore/internal/config"
	"github.com/GreatJeff90/bookstore/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はpostgresに接続して *gorm.DB を返す。
func Connect(cfg config.StorageConfig) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return gormDB, nil
}

// Migrate はストレージとアカウントのテーブルを作る
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.StorageEntry{},
		&model.Account{},
	)
}

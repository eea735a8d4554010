package model

import "time"

// key-valueストレージの1行（postgres/sqlite用）
// (profile_id, key) で一意。
type StorageEntry struct {
	ProfileID string    `gorm:"primaryKey;type:varchar(64)"`
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

func (StorageEntry) TableName() string {
	return "storage_entries"
}

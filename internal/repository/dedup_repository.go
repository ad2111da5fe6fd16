package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type dedupRecord struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

func (dedupRecord) TableName() string { return "dedup_keys" }

// DedupRepository is a small key/value table used to gate once-per-day
// notifications.
type DedupRepository struct {
	db *gorm.DB
}

func NewDedupRepository(db *gorm.DB) *DedupRepository {
	return &DedupRepository{db: db}
}

func (r *DedupRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var rec dedupRecord
	err := r.db.WithContext(ctx).Where(&dedupRecord{Key: key}).First(&rec).Error
	switch {
	case err == nil:
		return rec.Value, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", false, nil
	default:
		return "", false, fmt.Errorf("find dedup key: %w", err)
	}
}

func (r *DedupRepository) Set(ctx context.Context, key, value string) error {
	rec := dedupRecord{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := r.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return fmt.Errorf("save dedup key: %w", err)
	}
	return nil
}

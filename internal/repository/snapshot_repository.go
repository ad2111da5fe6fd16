package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"daily-assistant/internal/model"
)

// DefaultSnapshotKey identifies the tracker state blob.
const DefaultSnapshotKey = "ai-productivity-assistant"

type snapshotRecord struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

func (snapshotRecord) TableName() string { return "snapshots" }

// SnapshotRepository stores the whole tracker state as one JSON blob.
type SnapshotRepository struct {
	db  *gorm.DB
	key string
}

func NewSnapshotRepository(db *gorm.DB, key string) *SnapshotRepository {
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &SnapshotRepository{db: db, key: key}
}

// Load returns the saved snapshot, or nil when nothing was saved yet.
func (r *SnapshotRepository) Load(ctx context.Context) (*model.Snapshot, error) {
	var rec snapshotRecord
	err := r.db.WithContext(ctx).Where(&snapshotRecord{Key: r.key}).First(&rec).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("find snapshot: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(rec.Data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Save replaces the stored snapshot.
func (r *SnapshotRepository) Save(ctx context.Context, snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	rec := snapshotRecord{Key: r.key, Data: data, UpdatedAt: time.Now()}
	if err := r.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

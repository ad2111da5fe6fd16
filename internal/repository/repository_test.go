package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"daily-assistant/internal/model"
)

func openTestDB(t *testing.T) *SnapshotRepository {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		t.Cleanup(func() { sqlDB.Close() })
	}
	return NewSnapshotRepository(db, "")
}

func TestSnapshotRoundTrip(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	if snap, err := repo.Load(ctx); err != nil || snap != nil {
		t.Fatalf("Load on empty db = %v, %v; want nil, nil", snap, err)
	}

	created := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	due := created.Add(48 * time.Hour)
	settings := model.DefaultSettings()
	settings.Theme = model.ThemeDark
	in := model.Snapshot{
		Tasks: []model.Task{
			{ID: "a", Title: "Write code", Category: "development", Priority: model.PriorityMedium, CreatedAt: created, DueDate: &due},
			{ID: "b", Title: "Buy milk", Category: "general", Priority: model.PriorityLow, CreatedAt: created, Completed: true},
		},
		Reminders: []model.Reminder{{ID: "r", TaskID: "a", Time: due, Message: "soon"}},
		Settings:  &settings,
	}

	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	in.Tasks[0].Title = "Write more code"
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out.Tasks) != 2 {
		t.Fatalf("len(Tasks) = %d, want 2", len(out.Tasks))
	}
	for i, want := range in.Tasks {
		got := out.Tasks[i]
		if got.ID != want.ID || got.Title != want.Title || !got.CreatedAt.Equal(want.CreatedAt) || got.Completed != want.Completed {
			t.Errorf("Tasks[%d] = %+v, want %+v", i, got, want)
		}
	}
	if out.Tasks[0].DueDate == nil || !out.Tasks[0].DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", out.Tasks[0].DueDate, due)
	}
	if out.Tasks[1].DueDate != nil {
		t.Errorf("DueDate = %v, want nil", out.Tasks[1].DueDate)
	}
	if len(out.Reminders) != 1 || !out.Reminders[0].Time.Equal(due) {
		t.Errorf("Reminders = %+v", out.Reminders)
	}
	if out.Settings == nil || out.Settings.Theme != model.ThemeDark {
		t.Errorf("Settings = %+v", out.Settings)
	}
}

func TestSnapshotMalformed(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	if err := repo.db.Create(&snapshotRecord{Key: DefaultSnapshotKey, Data: []byte("{not json")}).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := repo.Load(ctx); err == nil {
		t.Fatal("Load accepted malformed snapshot")
	}
}

func TestDedupRepository(t *testing.T) {
	snaps := openTestDB(t)
	repo := NewDedupRepository(snaps.db)
	ctx := context.Background()

	if _, ok, err := repo.Get(ctx, "overdue-a"); err != nil || ok {
		t.Fatalf("Get missing = %v, %v", ok, err)
	}
	if err := repo.Set(ctx, "overdue-a", "Mon Jan 01 2024"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Set(ctx, "overdue-a", "Tue Jan 02 2024"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, ok, err := repo.Get(ctx, "overdue-a")
	if err != nil || !ok || v != "Tue Jan 02 2024" {
		t.Errorf("Get = %q, %v, %v", v, ok, err)
	}
}

package service

import (
	"context"
	"log"
	"sync"
	"time"

	"daily-assistant/internal/model"
	"daily-assistant/internal/notify"
	"daily-assistant/internal/store"
)

const (
	overdueKeyPrefix = "overdue-"
	dailySummaryKey  = "last-daily-summary"
	overdueMessage   = "This task is overdue!"
)

// DedupStore remembers the last day a once-per-day alert was sent.
type DedupStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// ReminderService fires task reminders, overdue alerts and the daily summary
// alert.
type ReminderService struct {
	store *store.Store
	gate  *notify.Gate
	dedup DedupStore
}

func NewReminderService(st *store.Store, gate *notify.Gate, dedup DedupStore) *ReminderService {
	return &ReminderService{store: st, gate: gate, dedup: dedup}
}

// Enabled reports whether alerts may be sent right now.
func (s *ReminderService) Enabled() bool {
	return s.store.State().Settings.Notifications && s.gate.Granted()
}

// Check fires due reminders and overdue alerts. Fired reminders are latched
// and never fire again; each overdue task alerts at most once per day.
func (s *ReminderService) Check(ctx context.Context, now time.Time) {
	if !s.Enabled() {
		return
	}
	state := s.store.State()

	for _, reminder := range state.Reminders {
		if !reminder.Due(now) {
			continue
		}
		task, ok := state.Task(reminder.TaskID)
		if !ok || task.Completed {
			continue
		}
		s.gate.TaskReminder(ctx, task.Title, reminder.Message)
		reminder.Notified = true
		s.store.Dispatch(ctx, store.UpdateReminder{Reminder: reminder})
		log.Printf("[info] reminder fired id=%s task=%s", reminder.ID, task.ID)
	}

	today := model.DayKey(now)
	for _, task := range state.Tasks {
		if !task.IsOverdue(now) {
			continue
		}
		key := overdueKeyPrefix + task.ID
		if !s.claimDay(ctx, key, today) {
			continue
		}
		s.gate.TaskReminder(ctx, task.Title, overdueMessage)
		log.Printf("[info] overdue alert task=%s", task.ID)
	}
}

// CheckDailySummary sends the summary alert once per day after the
// configured time of day.
func (s *ReminderService) CheckDailySummary(ctx context.Context, now time.Time) {
	if !s.Enabled() {
		return
	}
	state := s.store.State()

	hour, minute, err := model.ParseClock(state.Settings.SummaryTime)
	if err != nil {
		log.Printf("daily summary time: %v", err)
		return
	}
	y, m, d := now.Date()
	at := time.Date(y, m, d, hour, minute, 0, 0, now.Location())
	if now.Before(at) {
		return
	}

	if !s.claimDay(ctx, dailySummaryKey, model.DayKey(now)) {
		return
	}
	sum := s.store.Summary()
	s.gate.DailySummary(ctx, sum.TasksCompleted, sum.TotalTasks)
	log.Printf("[info] daily summary sent completed=%d total=%d", sum.TasksCompleted, sum.TotalTasks)
}

// claimDay returns true if key was not yet marked for day and marks it.
func (s *ReminderService) claimDay(ctx context.Context, key, day string) bool {
	last, ok, err := s.dedup.Get(ctx, key)
	if err != nil {
		log.Printf("dedup get %s: %v", key, err)
		return false
	}
	if ok && last == day {
		return false
	}
	if err := s.dedup.Set(ctx, key, day); err != nil {
		log.Printf("dedup set %s: %v", key, err)
	}
	return true
}

// MemoryDedup is an in-process DedupStore.
type MemoryDedup struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryDedup() *MemoryDedup {
	return &MemoryDedup{values: make(map[string]string)}
}

func (m *MemoryDedup) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryDedup) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

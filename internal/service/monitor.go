package service

import (
	"context"
	"log"
	"sync"
	"time"

	"daily-assistant/internal/store"
)

// DefaultCheckInterval is how often reminders are polled.
const DefaultCheckInterval = time.Minute

// Monitor polls reminders and the daily summary while notifications are
// enabled. It checks once on activation, then every interval, and tears its
// scheduler down when notifications are switched off or Run returns.
type Monitor struct {
	reminders *ReminderService
	store     *store.Store
	interval  time.Duration
	loc       *time.Location
	now       func() time.Time

	mu    sync.Mutex
	sched *SchedulerService
	ticks sync.WaitGroup
}

func NewMonitor(reminders *ReminderService, st *store.Store, interval time.Duration, loc *time.Location) *Monitor {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	if loc == nil {
		loc = time.Local
	}
	return &Monitor{
		reminders: reminders,
		store:     st,
		interval:  interval,
		loc:       loc,
		now:       time.Now,
	}
}

// Run blocks until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	unsubscribe := m.store.Subscribe(func(state store.State) {
		m.sync(ctx, state.Settings.Notifications)
	})
	defer unsubscribe()

	m.sync(ctx, m.store.State().Settings.Notifications)

	// Roll the published summary over at midnight.
	daily := NewSchedulerService(m.loc)
	if _, err := daily.ScheduleDaily("00:00", func() { m.store.Refresh() }); err != nil {
		return err
	}
	daily.Start()
	defer daily.Stop()

	<-ctx.Done()
	m.sync(ctx, false)
	m.ticks.Wait()
	return nil
}

// Running reports whether the polling scheduler is active.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sched != nil
}

// Tick runs both checks once.
func (m *Monitor) Tick(ctx context.Context) {
	now := m.now().In(m.loc)
	m.reminders.Check(ctx, now)
	m.reminders.CheckDailySummary(ctx, now)
}

func (m *Monitor) sync(ctx context.Context, enabled bool) {
	if enabled && ctx.Err() != nil {
		enabled = false
	}

	m.mu.Lock()
	switch {
	case enabled && m.sched == nil:
		sched := NewSchedulerService(m.loc)
		if _, err := sched.ScheduleInterval(m.interval, func() { m.Tick(ctx) }); err != nil {
			m.mu.Unlock()
			log.Printf("schedule reminder checks: %v", err)
			return
		}
		sched.Start()
		m.sched = sched
		m.mu.Unlock()
		log.Printf("[info] reminder checks started every %s", m.interval)
		// sync runs inside store listeners; the first check must not hold up
		// the dispatch that switched notifications on.
		m.ticks.Add(1)
		go func() {
			defer m.ticks.Done()
			m.Tick(ctx)
		}()
	case !enabled && m.sched != nil:
		sched := m.sched
		m.sched = nil
		m.mu.Unlock()
		sched.Stop()
		log.Println("[info] reminder checks stopped")
	default:
		m.mu.Unlock()
	}
}

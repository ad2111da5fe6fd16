// Package store holds the tracker state and applies commands to it.
package store

import (
	"context"
	"log"
	"sync"
	"time"

	"daily-assistant/internal/model"
	"daily-assistant/internal/summary"
)

// Persister loads and saves the whole state as one snapshot.
type Persister interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	Save(ctx context.Context, snap model.Snapshot) error
}

// Listener is called with the new state after every dispatch.
type Listener func(State)

// Store serialises commands against a single State and keeps the daily
// summary in sync with the task list.
type Store struct {
	mu        sync.Mutex
	state     State
	persister Persister
	now       func() time.Time
	rev       uint64

	// saveMu orders snapshot writes; savedRev is the newest revision on disk.
	saveMu   sync.Mutex
	savedRev uint64

	subMu     sync.Mutex
	nextSub   int
	listeners map[int]Listener
}

// Option configures a Store.
type Option func(*Store)

// WithPersister saves the state after every command.
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

// WithClock overrides the wall clock used for summaries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		state:     NewState(),
		now:       time.Now,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = s.withSummary(s.state)
	return s
}

// Load restores the persisted snapshot. A missing or unreadable snapshot is
// logged and the store keeps its default state.
func (s *Store) Load(ctx context.Context) {
	if s.persister == nil {
		return
	}
	snap, err := s.persister.Load(ctx)
	if err != nil {
		log.Printf("load state: %v", err)
		return
	}
	if snap == nil {
		return
	}
	s.apply(ctx, LoadData{Snapshot: *snap}, false)
}

// Dispatch applies cmd and returns the resulting state.
func (s *Store) Dispatch(ctx context.Context, cmd Command) State {
	return s.apply(ctx, cmd, true)
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Now reads the store's clock.
func (s *Store) Now() time.Time {
	return s.now()
}

// Summary returns the current daily summary.
func (s *Store) Summary() model.DailySummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.DailySummary == nil {
		return summary.Generate(s.state.Tasks, s.now())
	}
	return *s.state.DailySummary
}

// Refresh recomputes the daily summary without changing the tasks, e.g.
// after midnight.
func (s *Store) Refresh() State {
	s.mu.Lock()
	s.state = s.withSummary(s.state)
	next := s.state.clone()
	s.mu.Unlock()

	s.publish(next)
	return next
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) apply(ctx context.Context, cmd Command, persist bool) State {
	s.mu.Lock()
	next := Reduce(s.state, cmd)
	if cmd.touchesTasks() {
		next = s.withSummary(next)
	}
	s.state = next
	s.rev++
	rev := s.rev
	out := next.clone()
	s.mu.Unlock()

	if persist && s.persister != nil {
		s.save(ctx, rev, out)
	}
	s.publish(out)
	return out
}

// save writes state unless a newer revision already reached the persister.
func (s *Store) save(ctx context.Context, rev uint64, state State) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if rev <= s.savedRev {
		return
	}
	if err := s.persister.Save(ctx, state.Snapshot()); err != nil {
		log.Printf("save state: %v", err)
		return
	}
	s.savedRev = rev
}

func (s *Store) withSummary(state State) State {
	sum := summary.Generate(state.Tasks, s.now())
	state.DailySummary = &sum
	return state
}

func (s *Store) publish(state State) {
	s.subMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.subMu.Unlock()

	for _, l := range listeners {
		l(state.clone())
	}
}

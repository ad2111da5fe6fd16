package model

import (
	"fmt"
	"strings"
	"time"
)

// Priority is the urgency level assigned to a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Weight orders priorities for sorting, high first.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether p is one of the known levels.
func (p Priority) Valid() bool {
	return p.Weight() > 0
}

// CategoryGeneral is assigned when no keyword matches.
const CategoryGeneral = "general"

// Task represents a single item in the tracker.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// IsOverdue returns true if the task is incomplete and past its due date.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return t.DueDate.Before(now)
}

// CreatedOn reports whether the task was created on the calendar day of day,
// in day's location.
func (t *Task) CreatedOn(day time.Time) bool {
	return SameDay(t.CreatedAt.In(day.Location()), day)
}

// SameDay compares the calendar dates of a and b as they are.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayKey is the per-day value stored by once-per-day notification gates.
func DayKey(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}

// ParseDue reads a due date typed by a user: "2006-01-02 15:04",
// "2006-01-02T15:04" or a bare date, which means the end of that day.
func ParseDue(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.ParseInLocation(time.RFC3339, value, loc); err == nil {
		return t, nil
	}
	day, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD [HH:MM]", value)
	}
	return day.Add(23*time.Hour + 59*time.Minute), nil
}

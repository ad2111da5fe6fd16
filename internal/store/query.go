package store

import (
	"fmt"
	"sort"
	"strings"

	"daily-assistant/internal/model"
)

// Filter selects tasks by completion state.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// SortBy orders a task listing.
type SortBy string

const (
	SortByDate     SortBy = "date"
	SortByPriority SortBy = "priority"
	SortByCategory SortBy = "category"
)

// ParseFilter maps user input to a Filter; empty means all.
func ParseFilter(raw string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterPending, FilterCompleted:
		return f, nil
	default:
		return "", fmt.Errorf("unknown filter %q", raw)
	}
}

// ParseSort maps user input to a SortBy; empty means date.
func ParseSort(raw string) (SortBy, error) {
	switch s := SortBy(strings.ToLower(strings.TrimSpace(raw))); s {
	case "":
		return SortByDate, nil
	case SortByDate, SortByPriority, SortByCategory:
		return s, nil
	default:
		return "", fmt.Errorf("unknown sort %q", raw)
	}
}

// Query returns a filtered and sorted copy of tasks. Date sorting shows the
// newest tasks first.
func Query(tasks []model.Task, filter Filter, by SortBy) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		switch filter {
		case FilterPending:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch by {
		case SortByPriority:
			return a.Priority.Weight() > b.Priority.Weight()
		case SortByCategory:
			return a.Category < b.Category
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
	return out
}

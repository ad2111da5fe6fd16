package store

import "daily-assistant/internal/model"

// State is the full tracker state. Values are treated as immutable: Reduce
// always returns fresh slices.
type State struct {
	Tasks        []model.Task
	Reminders    []model.Reminder
	DailySummary *model.DailySummary
	Settings     model.Settings
}

// NewState returns an empty state with default settings.
func NewState() State {
	return State{
		Tasks:     []model.Task{},
		Reminders: []model.Reminder{},
		Settings:  model.DefaultSettings(),
	}
}

// Task returns the task with the given id.
func (s State) Task(id string) (model.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// RemindersFor returns the reminders owned by a task.
func (s State) RemindersFor(taskID string) []model.Reminder {
	var out []model.Reminder
	for _, r := range s.Reminders {
		if r.TaskID == taskID {
			out = append(out, r)
		}
	}
	return out
}

// Snapshot converts the state into its persisted form.
func (s State) Snapshot() model.Snapshot {
	settings := s.Settings
	return model.Snapshot{
		Tasks:        s.Tasks,
		Reminders:    s.Reminders,
		DailySummary: s.DailySummary,
		Settings:     &settings,
	}
}

func (s State) clone() State {
	out := s
	out.Tasks = append([]model.Task(nil), s.Tasks...)
	out.Reminders = append([]model.Reminder(nil), s.Reminders...)
	if s.DailySummary != nil {
		summary := *s.DailySummary
		out.DailySummary = &summary
	}
	return out
}

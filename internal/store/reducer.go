package store

import "daily-assistant/internal/model"

// Reduce applies cmd to state and returns the new state. It never mutates
// the input; unknown ids leave the state unchanged.
func Reduce(state State, cmd Command) State {
	switch c := cmd.(type) {
	case AddTask:
		state.Tasks = append(append([]model.Task(nil), state.Tasks...), c.Task)
	case UpdateTask:
		state.Tasks = mapTasks(state.Tasks, c.Task.ID, func(model.Task) model.Task { return c.Task })
	case DeleteTask:
		state.Tasks = filterTasks(state.Tasks, func(t model.Task) bool { return t.ID != c.ID })
		state.Reminders = filterReminders(state.Reminders, func(r model.Reminder) bool { return r.TaskID != c.ID })
	case ToggleTask:
		state.Tasks = mapTasks(state.Tasks, c.ID, func(t model.Task) model.Task {
			t.Completed = !t.Completed
			return t
		})
	case AddReminder:
		state.Reminders = append(append([]model.Reminder(nil), state.Reminders...), c.Reminder)
	case UpdateReminder:
		out := make([]model.Reminder, len(state.Reminders))
		for i, r := range state.Reminders {
			if r.ID == c.Reminder.ID {
				r = c.Reminder
			}
			out[i] = r
		}
		state.Reminders = out
	case DeleteReminder:
		state.Reminders = filterReminders(state.Reminders, func(r model.Reminder) bool { return r.ID != c.ID })
	case UpdateSettings:
		state.Settings = state.Settings.Merge(c.Patch)
	case LoadData:
		snap := c.Snapshot
		if snap.Tasks != nil {
			state.Tasks = append([]model.Task(nil), snap.Tasks...)
		}
		if snap.Reminders != nil {
			state.Reminders = append([]model.Reminder(nil), snap.Reminders...)
		}
		if snap.Settings != nil {
			state.Settings = *snap.Settings
		}
		if snap.DailySummary != nil {
			summary := *snap.DailySummary
			state.DailySummary = &summary
		}
	}
	return state
}

func mapTasks(tasks []model.Task, id string, fn func(model.Task) model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == id {
			t = fn(t)
		}
		out[i] = t
	}
	return out
}

func filterTasks(tasks []model.Task, keep func(model.Task) bool) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func filterReminders(reminders []model.Reminder, keep func(model.Reminder) bool) []model.Reminder {
	out := make([]model.Reminder, 0, len(reminders))
	for _, r := range reminders {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

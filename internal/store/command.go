package store

import "daily-assistant/internal/model"

// Command is a state transition request handled by Reduce.
type Command interface {
	// touchesTasks reports whether the command can change the task list and
	// therefore requires the daily summary to be recomputed.
	touchesTasks() bool
}

type (
	AddTask struct{ Task model.Task }
	// UpdateTask replaces the task with the same ID.
	UpdateTask struct{ Task model.Task }
	// DeleteTask removes a task and every reminder pointing at it.
	DeleteTask struct{ ID string }
	ToggleTask struct{ ID string }

	AddReminder    struct{ Reminder model.Reminder }
	UpdateReminder struct{ Reminder model.Reminder }
	DeleteReminder struct{ ID string }

	UpdateSettings struct{ Patch model.SettingsPatch }

	// LoadData replaces the collections present in the snapshot.
	LoadData struct{ Snapshot model.Snapshot }
)

func (AddTask) touchesTasks() bool        { return true }
func (UpdateTask) touchesTasks() bool     { return true }
func (DeleteTask) touchesTasks() bool     { return true }
func (ToggleTask) touchesTasks() bool     { return true }
func (AddReminder) touchesTasks() bool    { return false }
func (UpdateReminder) touchesTasks() bool { return false }
func (DeleteReminder) touchesTasks() bool { return false }
func (UpdateSettings) touchesTasks() bool { return false }
func (LoadData) touchesTasks() bool       { return true }

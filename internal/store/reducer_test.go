package store

import (
	"testing"
	"time"

	"daily-assistant/internal/model"
)

func seed() State {
	s := NewState()
	s.Tasks = []model.Task{
		{ID: "t1", Title: "one", Priority: model.PriorityLow, Category: "general"},
		{ID: "t2", Title: "two", Priority: model.PriorityHigh, Category: "design"},
	}
	s.Reminders = []model.Reminder{
		{ID: "r1", TaskID: "t1", Message: "a"},
		{ID: "r2", TaskID: "t2", Message: "b"},
		{ID: "r3", TaskID: "t1", Message: "c"},
	}
	return s
}

func TestReduceAddTask(t *testing.T) {
	before := seed()
	after := Reduce(before, AddTask{Task: model.Task{ID: "t3", Title: "three"}})

	if len(after.Tasks) != 3 || after.Tasks[2].ID != "t3" {
		t.Fatalf("task not appended: %+v", after.Tasks)
	}
	if len(before.Tasks) != 2 {
		t.Errorf("input state mutated: %d tasks", len(before.Tasks))
	}
}

func TestReduceUpdateTask(t *testing.T) {
	after := Reduce(seed(), UpdateTask{Task: model.Task{ID: "t2", Title: "renamed"}})
	if after.Tasks[1].Title != "renamed" {
		t.Errorf("Title = %q, want renamed", after.Tasks[1].Title)
	}

	missing := Reduce(seed(), UpdateTask{Task: model.Task{ID: "nope", Title: "x"}})
	if len(missing.Tasks) != 2 || missing.Tasks[0].Title != "one" || missing.Tasks[1].Title != "two" {
		t.Errorf("update of missing id changed tasks: %+v", missing.Tasks)
	}
}

func TestReduceDeleteCascadesReminders(t *testing.T) {
	after := Reduce(seed(), DeleteTask{ID: "t1"})

	if len(after.Tasks) != 1 || after.Tasks[0].ID != "t2" {
		t.Errorf("Tasks = %+v, want only t2", after.Tasks)
	}
	if len(after.Reminders) != 1 || after.Reminders[0].ID != "r2" {
		t.Errorf("Reminders = %+v, want only r2", after.Reminders)
	}
}

func TestReduceDeleteMissingIsNoop(t *testing.T) {
	after := Reduce(seed(), DeleteTask{ID: "nope"})
	if len(after.Tasks) != 2 || len(after.Reminders) != 3 {
		t.Errorf("delete of missing id changed state: %d tasks, %d reminders", len(after.Tasks), len(after.Reminders))
	}
}

func TestReduceToggle(t *testing.T) {
	before := seed()
	after := Reduce(before, ToggleTask{ID: "t1"})
	if !after.Tasks[0].Completed {
		t.Error("t1 not completed after toggle")
	}
	if before.Tasks[0].Completed {
		t.Error("input state mutated by toggle")
	}
	again := Reduce(after, ToggleTask{ID: "t1"})
	if again.Tasks[0].Completed {
		t.Error("t1 still completed after second toggle")
	}

	missing := Reduce(seed(), ToggleTask{ID: "nope"})
	for _, tk := range missing.Tasks {
		if tk.Completed {
			t.Errorf("toggle of missing id completed %s", tk.ID)
		}
	}
}

func TestReduceReminders(t *testing.T) {
	s := Reduce(seed(), AddReminder{Reminder: model.Reminder{ID: "r4", TaskID: "t2"}})
	if len(s.Reminders) != 4 {
		t.Fatalf("len(Reminders) = %d, want 4", len(s.Reminders))
	}

	s = Reduce(s, UpdateReminder{Reminder: model.Reminder{ID: "r4", TaskID: "t2", Notified: true}})
	if !s.Reminders[3].Notified {
		t.Error("r4 not updated")
	}

	s = Reduce(s, DeleteReminder{ID: "r1"})
	if len(s.Reminders) != 3 {
		t.Fatalf("len(Reminders) = %d, want 3", len(s.Reminders))
	}
	for _, r := range s.Reminders {
		if r.ID == "r1" {
			t.Error("r1 still present")
		}
	}
	if got := len(s.RemindersFor("t1")); got != 1 {
		t.Errorf("RemindersFor(t1) = %d, want 1", got)
	}
}

func TestReduceUpdateSettingsMerges(t *testing.T) {
	off := false
	theme := model.ThemeDark
	s := Reduce(NewState(), UpdateSettings{Patch: model.SettingsPatch{Notifications: &off, Theme: &theme}})

	if s.Settings.Notifications {
		t.Error("notifications still enabled")
	}
	if s.Settings.Theme != model.ThemeDark {
		t.Errorf("Theme = %q, want dark", s.Settings.Theme)
	}
	if !s.Settings.VoiceInput || s.Settings.SummaryTime != "18:00" {
		t.Errorf("untouched settings changed: %+v", s.Settings)
	}
}

func TestReduceLoadData(t *testing.T) {
	due := time.Now()
	settings := model.Settings{Theme: model.ThemeLight, SummaryTime: "09:30"}
	s := Reduce(NewState(), LoadData{Snapshot: model.Snapshot{
		Tasks:    []model.Task{{ID: "x", DueDate: &due}},
		Settings: &settings,
	}})

	if len(s.Tasks) != 1 || s.Tasks[0].ID != "x" {
		t.Errorf("Tasks = %+v", s.Tasks)
	}
	if len(s.Reminders) != 0 {
		t.Errorf("Reminders = %+v, want empty", s.Reminders)
	}
	if s.Settings != settings {
		t.Errorf("Settings = %+v, want %+v", s.Settings, settings)
	}
}

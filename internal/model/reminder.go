package model

import "time"

// Reminder is a one-shot notification attached to a task. TaskID is a weak
// reference; reminders are removed together with their task.
type Reminder struct {
	ID       string    `json:"id"`
	TaskID   string    `json:"taskId"`
	Time     time.Time `json:"time"`
	Message  string    `json:"message"`
	Notified bool      `json:"notified"`
}

// Due reports whether the reminder should fire at now.
func (r *Reminder) Due(now time.Time) bool {
	return !r.Notified && !r.Time.After(now)
}

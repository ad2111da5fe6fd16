package model

// Snapshot is the persisted form of the whole tracker state.
type Snapshot struct {
	Tasks        []Task        `json:"tasks"`
	Reminders    []Reminder    `json:"reminders"`
	DailySummary *DailySummary `json:"dailySummary,omitempty"`
	Settings     *Settings     `json:"settings,omitempty"`
}

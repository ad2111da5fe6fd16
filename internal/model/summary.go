package model

import "time"

// DailySummary is derived from the task collection and never edited directly.
type DailySummary struct {
	Date           time.Time `json:"date"`
	TasksCompleted int       `json:"tasksCompleted"`
	TotalTasks     int       `json:"totalTasks"`
	TopCategory    string    `json:"topCategory"`
	Productivity   int       `json:"productivity"`
	Insights       []string  `json:"insights"`
	UpcomingTasks  []Task    `json:"upcomingTasks"`
}

// Package summary builds the daily productivity report from the task list.
package summary

import (
	"fmt"
	"math"
	"sort"
	"time"

	"daily-assistant/internal/model"
)

const (
	upcomingWindowDays = 3
	upcomingLimit      = 5
)

// Generate derives the DailySummary for now's calendar day. Completion
// statistics and the top category look only at tasks created today; insights
// and upcoming tasks look at the whole collection.
func Generate(tasks []model.Task, now time.Time) model.DailySummary {
	var today []model.Task
	for _, task := range tasks {
		if task.CreatedOn(now) {
			today = append(today, task)
		}
	}

	completed := 0
	for _, task := range today {
		if task.Completed {
			completed++
		}
	}

	rate := 0.0
	if len(today) > 0 {
		rate = float64(completed) / float64(len(today)) * 100
	}

	top := topCategory(today)

	return model.DailySummary{
		Date:           now,
		TasksCompleted: completed,
		TotalTasks:     len(today),
		TopCategory:    top,
		Productivity:   int(math.Round(rate)),
		Insights:       insights(tasks, rate, top, now),
		UpcomingTasks:  upcoming(tasks, now),
	}
}

// topCategory returns the most frequent category. Ties go to the category
// seen first.
func topCategory(tasks []model.Task) string {
	counts := make(map[string]int)
	var order []string
	for _, task := range tasks {
		if _, ok := counts[task.Category]; !ok {
			order = append(order, task.Category)
		}
		counts[task.Category]++
	}

	top, best := model.CategoryGeneral, 0
	for _, category := range order {
		if counts[category] > best {
			top, best = category, counts[category]
		}
	}
	return top
}

func insights(tasks []model.Task, rate float64, top string, now time.Time) []string {
	out := []string{productivityMessage(rate)}

	overdue, highPending := 0, 0
	for i := range tasks {
		if tasks[i].IsOverdue(now) {
			overdue++
		}
		if !tasks[i].Completed && tasks[i].Priority == model.PriorityHigh {
			highPending++
		}
	}

	if overdue > 0 {
		out = append(out, fmt.Sprintf("%d overdue %s need attention", overdue, plural("task", overdue)))
	}
	if highPending > 0 {
		out = append(out, fmt.Sprintf("%d high-priority %s pending", highPending, plural("task", highPending)))
	}
	if top != model.CategoryGeneral {
		out = append(out, fmt.Sprintf("Most active in %s today", top))
	}
	return out
}

func productivityMessage(rate float64) string {
	switch {
	case rate >= 80:
		return "Excellent productivity today! You're on fire 🔥"
	case rate >= 60:
		return "Good progress today. Keep up the momentum!"
	case rate >= 40:
		return "Steady progress. Consider breaking down larger tasks."
	case rate > 0:
		return "Every step counts. Focus on completing one task at a time."
	default:
		return "Fresh start! Begin with your highest priority task."
	}
}

func upcoming(tasks []model.Task, now time.Time) []model.Task {
	limit := now.AddDate(0, 0, upcomingWindowDays)

	out := []model.Task{}
	for _, task := range tasks {
		if task.Completed || task.DueDate == nil || task.DueDate.After(limit) {
			continue
		}
		out = append(out, task)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(*out[j].DueDate)
	})

	if len(out) > upcomingLimit {
		out = out[:upcomingLimit]
	}
	return out
}

func plural(noun string, n int) string {
	if n > 1 {
		return noun + "s"
	}
	return noun
}

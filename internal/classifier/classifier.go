// Package classifier assigns a category and a priority to new tasks using
// keyword heuristics over the task text.
package classifier

import (
	"math"
	"strings"
	"time"

	"daily-assistant/internal/model"
)

// Category labels produced by Categorize.
const (
	CategoryMeetings      = "meetings"
	CategoryCommunication = "communication"
	CategoryDevelopment   = "development"
	CategoryDesign        = "design"
	CategoryResearch      = "research"
	CategoryReview        = "review"
	CategoryGeneral       = model.CategoryGeneral
)

type rule struct {
	category string
	keywords []string
}

// Order matters: the first rule with a matching keyword wins.
var categoryRules = []rule{
	{CategoryMeetings, []string{"meeting", "call", "interview"}},
	{CategoryCommunication, []string{"email", "message", "reply"}},
	{CategoryDevelopment, []string{"project", "develop", "code"}},
	{CategoryDesign, []string{"design", "create", "mockup"}},
	{CategoryResearch, []string{"research", "analyze", "study"}},
	{CategoryReview, []string{"review", "feedback", "approve"}},
}

var (
	urgentKeywords    = []string{"urgent", "asap", "critical", "emergency", "deadline"}
	importantKeywords = []string{"important", "priority", "meeting", "client"}
)

// Categories lists every label Categorize can return, in match order.
func Categories() []string {
	out := make([]string, 0, len(categoryRules)+1)
	for _, r := range categoryRules {
		out = append(out, r.category)
	}
	return append(out, CategoryGeneral)
}

// Categorize returns the category of the first keyword set found in the text.
// Matching is plain substring containment, so "recreation" matches "create".
func Categorize(title, description string) string {
	text := normalize(title, description)
	for _, r := range categoryRules {
		if containsAny(text, r.keywords) {
			return r.category
		}
	}
	return CategoryGeneral
}

// DeterminePriority is DeterminePriorityAt evaluated against the wall clock.
func DeterminePriority(title, description string, due *time.Time) model.Priority {
	return DeterminePriorityAt(title, description, due, time.Now())
}

// DeterminePriorityAt picks a priority from urgent keywords first, then the
// number of days left until due, then softer keywords.
func DeterminePriorityAt(title, description string, due *time.Time, now time.Time) model.Priority {
	text := normalize(title, description)
	if containsAny(text, urgentKeywords) {
		return model.PriorityHigh
	}

	if due != nil {
		days := DaysUntil(*due, now)
		if days <= 1 {
			return model.PriorityHigh
		}
		if days <= 3 {
			return model.PriorityMedium
		}
	}

	if containsAny(text, importantKeywords) {
		return model.PriorityMedium
	}
	return model.PriorityLow
}

// DaysUntil returns the whole number of days from now to t, rounded up.
// Past dates give zero or negative values.
func DaysUntil(t, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}

func normalize(title, description string) string {
	return strings.ToLower(title + " " + description)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

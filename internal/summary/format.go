package summary

import (
	"fmt"
	"time"

	"daily-assistant/internal/classifier"
)

// FormatDate renders t like "Mon, Jan 2, 03:04 PM".
func FormatDate(t time.Time) string {
	return t.Format("Mon, Jan 2, 03:04 PM")
}

// FormatRelative describes t relative to now in whole days, rounded up.
func FormatRelative(t, now time.Time) string {
	days := classifier.DaysUntil(t, now)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0:
		return fmt.Sprintf("In %d days", days)
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

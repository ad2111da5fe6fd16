package bot

import (
	"fmt"
	"html"
	"strings"
	"time"
	"unicode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"daily-assistant/internal/classifier"
	"daily-assistant/internal/model"
	"daily-assistant/internal/summary"
)

const (
	btnSkip          = "⏭️ Skip"
	btnConfirm       = "✅ Confirm"
	btnCancel        = "↩️ Cancel"
	btnCancelDialog  = "⏪ Stop input"
	iconOverdue      = "⚠️"
	iconDone         = "☑️"
	menuLabelNewTask = "➕ New task"
	menuLabelTasks   = "📋 Tasks"
	menuLabelSummary = "📊 Summary"
	menuLabelHelp    = "ℹ️ Help"
)

func formatTask(task model.Task, now time.Time, loc *time.Location) string {
	var b strings.Builder
	icon := priorityIcon(task.Priority)
	switch {
	case task.Completed:
		icon = iconDone
	case task.IsOverdue(now):
		icon = iconOverdue
	}
	b.WriteString(fmt.Sprintf("%s <code>%s</code> %s\n", icon, shortID(task.ID), escape(normalizeTitle(task.Title))))
	b.WriteString(fmt.Sprintf("   %s · %s priority\n", categoryLabel(task.Category), task.Priority))
	if task.DueDate != nil {
		due := task.DueDate.In(loc)
		if task.IsOverdue(now) {
			b.WriteString(fmt.Sprintf("   ⏰ Due %s · <b>overdue</b>\n", summary.FormatDate(due)))
		} else {
			b.WriteString(fmt.Sprintf("   ⏰ Due %s · %s\n", summary.FormatDate(due), summary.FormatRelative(due, now)))
		}
	}
	if task.Description != "" {
		b.WriteString(fmt.Sprintf("   📝 %s\n", escape(task.Description)))
	}
	b.WriteByte('\n')
	return b.String()
}

func formatSummary(sum model.DailySummary, loc *time.Location) string {
	var b strings.Builder
	b.WriteString("📊 <b>Today's summary</b>\n")
	b.WriteString(fmt.Sprintf("Completed: <b>%d of %d</b> (%d%%)\n", sum.TasksCompleted, sum.TotalTasks, sum.Productivity))
	b.WriteString(fmt.Sprintf("Top category: %s\n", categoryLabel(sum.TopCategory)))

	if len(sum.Insights) > 0 {
		b.WriteString("\n<b>Insights</b>\n")
		for _, insight := range sum.Insights {
			b.WriteString(fmt.Sprintf("• %s\n", escape(insight)))
		}
	}

	if len(sum.UpcomingTasks) > 0 {
		b.WriteString("\n<b>Coming up</b>\n")
		for _, task := range sum.UpcomingTasks {
			b.WriteString(fmt.Sprintf("• %s %s · %s\n", priorityIcon(task.Priority), escape(task.Title), summary.FormatDate(task.DueDate.In(loc))))
		}
	}
	return strings.TrimSpace(b.String())
}

func formatSettings(s model.Settings) string {
	return fmt.Sprintf(
		"⚙️ <b>Settings</b>\n• Theme: %s\n• Notifications: %s\n• Voice input: %s\n• Daily summary after: %s",
		s.Theme, onOff(s.Notifications), onOff(s.VoiceInput), escape(s.SummaryTime),
	)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func priorityIcon(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "🔴"
	case model.PriorityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

func categoryLabel(name string) string {
	var icon string
	switch name {
	case classifier.CategoryMeetings:
		icon = "📅"
	case classifier.CategoryCommunication:
		icon = "✉️"
	case classifier.CategoryDevelopment:
		icon = "💻"
	case classifier.CategoryDesign:
		icon = "🎨"
	case classifier.CategoryResearch:
		icon = "🔬"
	case classifier.CategoryReview:
		icon = "🔍"
	default:
		icon = "📁"
	}
	return fmt.Sprintf("%s %s", icon, escape(normalizeTitle(name)))
}

// shortID is the id prefix shown to users; FindTask accepts it back.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func shortTitle(title string, maxLen int) string {
	clean := strings.TrimSpace(strings.ReplaceAll(title, "\n", " "))
	clean = normalizeTitle(clean)
	runes := []rune(clean)
	if len(runes) <= maxLen {
		return clean
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}

func normalizeTitle(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	runes := []rune(value)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func escape(s string) string {
	return html.EscapeString(s)
}

func confirmKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnConfirm),
			tgbotapi.NewKeyboardButton(btnCancel),
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelNewTask),
			tgbotapi.NewKeyboardButton(menuLabelTasks),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelSummary),
			tgbotapi.NewKeyboardButton(menuLabelHelp),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func cancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func skipKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSkip),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancelDialog),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func isSkipInput(text string) bool {
	value := strings.TrimSpace(strings.ToLower(text))
	return value == "-" || value == strings.ToLower(btnSkip) || value == "skip"
}

func isConfirmInput(text string) bool {
	value := strings.TrimSpace(strings.ToLower(text))
	return value == strings.ToLower(btnConfirm) || value == "confirm" || value == "yes"
}

func isCancelInput(text string) bool {
	value := strings.TrimSpace(strings.ToLower(text))
	return value == strings.ToLower(btnCancel) || value == "cancel" || value == "no"
}

func isCancelDialogInput(text string) bool {
	value := strings.TrimSpace(strings.ToLower(text))
	return value == strings.ToLower(btnCancelDialog) || value == "stop"
}

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Theme selects the colour scheme shown by clients.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Settings are process-wide user preferences.
type Settings struct {
	Theme         Theme  `json:"theme"`
	Notifications bool   `json:"notifications"`
	VoiceInput    bool   `json:"voiceInput"`
	SummaryTime   string `json:"summaryTime"`
}

// DefaultSettings returns the settings used for a fresh state.
func DefaultSettings() Settings {
	return Settings{
		Theme:         ThemeSystem,
		Notifications: true,
		VoiceInput:    true,
		SummaryTime:   "18:00",
	}
}

// SettingsPatch is a partial update; nil fields are left untouched.
type SettingsPatch struct {
	Theme         *Theme  `json:"theme,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
	VoiceInput    *bool   `json:"voiceInput,omitempty"`
	SummaryTime   *string `json:"summaryTime,omitempty"`
}

// Merge applies the non-nil fields of p on top of s.
func (s Settings) Merge(p SettingsPatch) Settings {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.VoiceInput != nil {
		s.VoiceInput = *p.VoiceInput
	}
	if p.SummaryTime != nil {
		s.SummaryTime = *p.SummaryTime
	}
	return s
}

// Validate checks the patch values that have a closed domain.
func (p SettingsPatch) Validate() error {
	if p.Theme != nil {
		switch *p.Theme {
		case ThemeLight, ThemeDark, ThemeSystem:
		default:
			return fmt.Errorf("invalid theme %q", *p.Theme)
		}
	}
	if p.SummaryTime != nil {
		if _, _, err := ParseClock(*p.SummaryTime); err != nil {
			return err
		}
	}
	return nil
}

// ParseClock parses an HH:MM time-of-day string.
func ParseClock(value string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour, minute, nil
}

package service

import (
	"context"
	"fmt"

	"daily-assistant/internal/model"
	"daily-assistant/internal/notify"
	"daily-assistant/internal/store"
)

// SettingsService validates and applies user preferences.
type SettingsService struct {
	store *store.Store
	gate  *notify.Gate
}

func NewSettingsService(st *store.Store, gate *notify.Gate) *SettingsService {
	return &SettingsService{store: st, gate: gate}
}

func (s *SettingsService) Get() model.Settings {
	return s.store.State().Settings
}

// Update merges patch into the current settings.
func (s *SettingsService) Update(ctx context.Context, patch model.SettingsPatch) (model.Settings, error) {
	if err := patch.Validate(); err != nil {
		return model.Settings{}, fmt.Errorf("update settings: %w", err)
	}
	return s.store.Dispatch(ctx, store.UpdateSettings{Patch: patch}).Settings, nil
}

// ToggleNotifications asks for permission the first time and enables
// notifications once granted; afterwards it flips the setting. Without
// backend support or after a denial nothing changes.
func (s *SettingsService) ToggleNotifications(ctx context.Context) model.Settings {
	current := s.Get()
	if !s.gate.Supported() {
		return current
	}

	switch s.gate.Permission() {
	case notify.PermissionDefault:
		if s.gate.RequestPermission(ctx) {
			on := true
			return s.store.Dispatch(ctx, store.UpdateSettings{Patch: model.SettingsPatch{Notifications: &on}}).Settings
		}
	case notify.PermissionGranted:
		flipped := !current.Notifications
		return s.store.Dispatch(ctx, store.UpdateSettings{Patch: model.SettingsPatch{Notifications: &flipped}}).Settings
	}
	return current
}

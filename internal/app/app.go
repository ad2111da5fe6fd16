// Package app assembles the assistant from its configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofrs/flock"
	"gorm.io/gorm"

	"daily-assistant/internal/api"
	"daily-assistant/internal/bot"
	"daily-assistant/internal/config"
	"daily-assistant/internal/notify"
	"daily-assistant/internal/repository"
	"daily-assistant/internal/service"
	"daily-assistant/internal/store"
)

const appName = "daily-assistant"

// Mode selects what the process is started for.
type Mode int

const (
	// ModeCommand runs a single CLI command; alerts are discarded.
	ModeCommand Mode = iota
	// ModeServe runs the bot, the HTTP API and the reminder monitor.
	ModeServe
)

// App holds the application state and dependencies.
type App struct {
	Config    config.Config
	Location  *time.Location
	Store     *store.Store
	Gate      *notify.Gate
	Tasks     *service.TaskService
	Settings  *service.SettingsService
	Reminders *service.ReminderService

	db       *gorm.DB
	telegram *tgbotapi.BotAPI
	lockFile *flock.Flock
}

// New opens the data directory, takes the instance lock and restores the
// persisted state.
func New(ctx context.Context, cfg config.Config, mode Mode) (*App, error) {
	loc, err := cfg.TimeLocation()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	a := &App{Config: cfg, Location: loc}
	if err := a.acquireLock(); err != nil {
		return nil, err
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		a.releaseLock()
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.db = db

	backend, err := a.notifier(mode)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Gate = notify.NewGate(backend)

	a.Store = store.New(
		store.WithPersister(repository.NewSnapshotRepository(db, repository.DefaultSnapshotKey)),
		store.WithClock(func() time.Time { return time.Now().In(loc) }),
	)
	a.Store.Load(ctx)

	a.Tasks = service.NewTaskService(a.Store)
	a.Settings = service.NewSettingsService(a.Store, a.Gate)
	a.Reminders = service.NewReminderService(a.Store, a.Gate, repository.NewDedupRepository(db))
	return a, nil
}

func (a *App) notifier(mode Mode) (notify.Notifier, error) {
	if mode == ModeServe && a.Config.TelegramToken != "" {
		api, err := tgbotapi.NewBotAPI(a.Config.TelegramToken)
		if err != nil {
			return nil, fmt.Errorf("create bot api: %w", err)
		}
		log.Printf("[info] bot authorized on account %s", api.Self.UserName)
		a.telegram = api
	}

	if mode != ModeServe {
		return notify.Discard{}, nil
	}
	switch a.Config.Notifier {
	case config.NotifierTelegram:
		return notify.NewTelegram(a.telegram, a.Config.TelegramChatID), nil
	case config.NotifierDesktop:
		return notify.NewDesktop(appName), nil
	default:
		return nil, nil
	}
}

// Serve runs every long-lived component until ctx is cancelled or one of
// them fails.
func (a *App) Serve(ctx context.Context) error {
	// Ask once at startup so the monitor can deliver without a manual toggle.
	if a.Gate.Supported() && a.Store.State().Settings.Notifications {
		if !a.Gate.RequestPermission(ctx) {
			log.Println("[info] notification permission denied")
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg   sync.WaitGroup
		once sync.Once
		ferr error
	)
	run := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil && !errors.Is(err, context.Canceled) {
				once.Do(func() { ferr = fmt.Errorf("%s: %w", name, err) })
				cancel()
			}
		}()
	}

	monitor := service.NewMonitor(a.Reminders, a.Store, a.Config.CheckInterval, a.Location)
	run("monitor", monitor.Run)

	if a.Config.HTTPAddr != "" {
		server := api.New(a.Tasks, a.Settings)
		run("http", func(ctx context.Context) error { return server.Run(ctx, a.Config.HTTPAddr) })
	}

	if a.telegram != nil {
		telegramBot := bot.New(a.telegram, a.Tasks, a.Settings, a.Config.TelegramChatID, a.Location)
		run("bot", telegramBot.Start)
	}

	log.Println("[info] daily assistant started")
	wg.Wait()
	log.Println("[info] shutdown complete")
	return ferr
}

func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.Config.DataDir, appName+".lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another %s instance is already using %s", appName, a.Config.DataDir)
	}
	return nil
}

func (a *App) releaseLock() {
	if a.lockFile != nil {
		if err := a.lockFile.Unlock(); err != nil {
			log.Printf("release lock: %v", err)
		}
	}
}

// Close cleans up application resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		if sqlDB, dbErr := a.db.DB(); dbErr == nil {
			if cerr := sqlDB.Close(); cerr != nil {
				err = fmt.Errorf("close database: %w", cerr)
			}
		}
	}
	a.releaseLock()
	return err
}

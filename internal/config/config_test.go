package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Notifier != NotifierNone || cfg.CheckInterval != time.Minute || cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DatabaseURL != "./daily_assistant.db" {
		t.Fatalf("database url = %q", cfg.DatabaseURL)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("ASSISTANT_NOTIFIER", "Telegram")
	t.Setenv("ASSISTANT_TELEGRAM_TOKEN", " token ")
	t.Setenv("ASSISTANT_TELEGRAM_CHAT_ID", "42")
	t.Setenv("ASSISTANT_CHECK_INTERVAL", "30s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Notifier != NotifierTelegram || cfg.TelegramToken != "token" || cfg.TelegramChatID != 42 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.CheckInterval != 30*time.Second {
		t.Fatalf("check interval = %s", cfg.CheckInterval)
	}
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("ASSISTANT_NOTIFIER", "telegram")

	if _, err := Load(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestLoadFileAndUnknownNotifier(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assistant.yaml")
	body := "notifier: pager\nhttp_addr: \":9090\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unknown notifier")
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTimeLocation(t *testing.T) {
	cfg := Config{Location: "UTC"}
	loc, err := cfg.TimeLocation()
	if err != nil || loc.String() != "UTC" {
		t.Fatalf("location = %v, %v", loc, err)
	}
	if _, err := (Config{Location: "Nowhere/City"}).TimeLocation(); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

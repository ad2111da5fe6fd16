package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type fakeBackend struct {
	allow   bool
	permErr error
	sendErr error
	sent    []Message
}

func (f *fakeBackend) RequestPermission(context.Context) (bool, error) {
	return f.allow, f.permErr
}

func (f *fakeBackend) Send(_ context.Context, msg Message) (*Handle, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, msg)
	return &Handle{ID: "1", Tag: msg.Tag}, nil
}

func TestGateBlocksUntilGranted(t *testing.T) {
	backend := &fakeBackend{allow: true}
	g := NewGate(backend)
	ctx := context.Background()

	if h := g.Send(ctx, Message{Title: "x"}); h != nil {
		t.Fatal("sent before permission was requested")
	}
	if g.Permission() != PermissionDefault {
		t.Errorf("Permission = %q, want default", g.Permission())
	}
	if !g.RequestPermission(ctx) {
		t.Fatal("RequestPermission = false")
	}
	if h := g.TaskReminder(ctx, "Buy milk", ""); h == nil || h.Tag != "task-reminder" {
		t.Fatalf("TaskReminder handle = %+v", h)
	}
	if got := backend.sent[0]; got.Title != "Task Reminder" || got.Body != "Don't forget: Buy milk" || !got.Sticky {
		t.Errorf("sent = %+v", got)
	}
}

func TestGateDenied(t *testing.T) {
	backend := &fakeBackend{permErr: errors.New("boom")}
	g := NewGate(backend)
	ctx := context.Background()

	if g.RequestPermission(ctx) {
		t.Fatal("RequestPermission = true on error")
	}
	if g.Permission() != PermissionDenied {
		t.Errorf("Permission = %q, want denied", g.Permission())
	}
	if h := g.DailySummary(ctx, 1, 2); h != nil {
		t.Error("sent while denied")
	}
	if len(backend.sent) != 0 {
		t.Errorf("backend received %d messages", len(backend.sent))
	}
}

func TestGateUnsupported(t *testing.T) {
	g := NewGate(nil)
	ctx := context.Background()
	if g.Supported() || g.RequestPermission(ctx) || g.Granted() {
		t.Error("nil backend reported as usable")
	}
	if h := g.Send(ctx, Message{Title: "x"}); h != nil {
		t.Error("nil backend returned a handle")
	}
}

func TestGateSendErrorIsSwallowed(t *testing.T) {
	backend := &fakeBackend{allow: true, sendErr: errors.New("offline")}
	g := NewGate(backend)
	g.RequestPermission(context.Background())
	if h := g.DailySummary(context.Background(), 3, 4); h != nil {
		t.Errorf("handle = %+v, want nil", h)
	}
}

func TestDailySummaryBody(t *testing.T) {
	backend := &fakeBackend{allow: true}
	g := NewGate(backend)
	g.RequestPermission(context.Background())
	g.DailySummary(context.Background(), 3, 7)
	if got := backend.sent[0].Body; got != "Completed 3 of 7 tasks today" {
		t.Errorf("Body = %q", got)
	}
}

func TestDesktopArgs(t *testing.T) {
	var gotName string
	var gotArgs []string
	d := NewDesktop("daily-assistant")
	d.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	d.run = func(_ context.Context, name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}

	if ok, _ := d.RequestPermission(context.Background()); ok {
		t.Error("permission granted without notify-send")
	}

	h, err := d.Send(context.Background(), Message{Title: "Task Reminder", Body: "This task is overdue!", Tag: "task-reminder", Sticky: true})
	if err != nil || h == nil {
		t.Fatalf("Send = %v, %v", h, err)
	}
	if gotName != "notify-send" {
		t.Errorf("command = %q", gotName)
	}
	joined := strings.Join(gotArgs, " ")
	for _, want := range []string{"-u critical", "-a daily-assistant", "x-canonical-private-synchronous:task-reminder"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}
	if strings.Contains(joined, "-t ") {
		t.Errorf("sticky alert has timeout: %q", joined)
	}
	if gotArgs[len(gotArgs)-2] != "Task Reminder" || gotArgs[len(gotArgs)-1] != "This task is overdue!" {
		t.Errorf("title/body not last: %q", gotArgs)
	}
}

type fakeSender struct {
	sent []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: 42}, nil
}

func TestTelegram(t *testing.T) {
	sender := &fakeSender{}
	tg := NewTelegram(sender, 100)

	if ok, _ := tg.RequestPermission(context.Background()); !ok {
		t.Fatal("permission denied with chat configured")
	}
	h, err := tg.Send(context.Background(), Message{Title: "Daily Summary", Body: "Completed 1 of 2 tasks today <3", Tag: "daily-summary"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if h.ID != "42" || h.Tag != "daily-summary" {
		t.Errorf("handle = %+v", h)
	}
	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("sent %T, want MessageConfig", sender.sent[0])
	}
	if msg.ChatID != 100 || !strings.Contains(msg.Text, "&lt;3") || msg.ParseMode != tgbotapi.ModeHTML {
		t.Errorf("message = %+v", msg)
	}

	if ok, _ := NewTelegram(sender, 0).RequestPermission(context.Background()); ok {
		t.Error("permission granted without chat id")
	}
}

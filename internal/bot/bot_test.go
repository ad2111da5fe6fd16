package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"daily-assistant/internal/notify"
	"daily-assistant/internal/service"
	"daily-assistant/internal/store"
)

type fakeAPI struct {
	sent []string
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg.Text)
	}
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeAPI) Request(tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	ch := make(chan tgbotapi.Update)
	close(ch)
	return ch
}

func (f *fakeAPI) StopReceivingUpdates() {}

func (f *fakeAPI) last() string {
	if len(f.sent) == 0 {
		return ""
	}
	return f.sent[len(f.sent)-1]
}

func (f *fakeAPI) contains(substr string) bool {
	for _, text := range f.sent {
		if strings.Contains(text, substr) {
			return true
		}
	}
	return false
}

type allowAll struct{}

func (allowAll) RequestPermission(context.Context) (bool, error) { return true, nil }

func (allowAll) Send(context.Context, notify.Message) (*notify.Handle, error) {
	return &notify.Handle{}, nil
}

func newTestBot(t *testing.T) (*Bot, *fakeAPI, *service.TaskService) {
	t.Helper()
	st := store.New()
	tasks := service.NewTaskService(st)
	settings := service.NewSettingsService(st, notify.NewGate(allowAll{}))
	api := &fakeAPI{}
	return New(api, tasks, settings, 0, time.UTC), api, tasks
}

func command(text string) *tgbotapi.Message {
	name := strings.Fields(text)[0]
	return &tgbotapi.Message{
		Text:     text,
		From:     &tgbotapi.User{ID: 7, FirstName: "ada"},
		Chat:     &tgbotapi.Chat{ID: 7, Type: "private"},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(name)}},
	}
}

func plain(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		From: &tgbotapi.User{ID: 7},
		Chat: &tgbotapi.Chat{ID: 7, Type: "private"},
	}
}

func TestQuickAddClassifiesTask(t *testing.T) {
	b, api, tasks := newTestBot(t)
	ctx := context.Background()

	if err := b.handleMessage(ctx, command("/add Urgent client email")); err != nil {
		t.Fatalf("handle: %v", err)
	}

	list := tasks.ListTasks(store.FilterAll, store.SortByDate)
	if len(list) != 1 {
		t.Fatalf("got %d tasks, want 1", len(list))
	}
	if list[0].Category != "communication" || list[0].Priority != "high" {
		t.Fatalf("task = %+v", list[0])
	}
	if !api.contains("Task saved") {
		t.Fatalf("no confirmation sent: %q", api.sent)
	}
}

func TestNewTaskConversation(t *testing.T) {
	b, api, tasks := newTestBot(t)
	ctx := context.Background()

	steps := []*tgbotapi.Message{
		command("/newtask"),
		plain("Design review"),
		plain("skip"),
		plain("not a date"),
		plain("2030-01-02 10:00"),
	}
	for _, msg := range steps {
		if err := b.handleMessage(ctx, msg); err != nil {
			t.Fatalf("handle %q: %v", msg.Text, err)
		}
	}

	if !api.contains("cannot read that date") {
		t.Fatal("invalid date was accepted")
	}
	list := tasks.ListTasks(store.FilterAll, store.SortByDate)
	if len(list) != 1 {
		t.Fatalf("got %d tasks, want 1", len(list))
	}
	task := list[0]
	if task.Title != "Design review" || task.Description != "" || task.Category != "design" {
		t.Fatalf("task = %+v", task)
	}
	want := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)
	if task.DueDate == nil || !task.DueDate.Equal(want) {
		t.Fatalf("due = %v, want %v", task.DueDate, want)
	}
	if b.hasConversation(7) {
		t.Fatal("conversation not cleared")
	}
}

func TestToggleByPrefixAndConfirmDelete(t *testing.T) {
	b, api, tasks := newTestBot(t)
	ctx := context.Background()
	task, err := tasks.CreateTask(ctx, service.TaskInput{Title: "write notes"})
	if err != nil {
		t.Fatal(err)
	}

	if err := b.handleMessage(ctx, command("/toggle "+shortID(task.ID))); err != nil {
		t.Fatal(err)
	}
	if got, _ := tasks.FindTask(task.ID); !got.Completed {
		t.Fatal("task not completed")
	}

	cb := &tgbotapi.CallbackQuery{
		ID:      "1",
		From:    &tgbotapi.User{ID: 7},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 7, Type: "private"}},
		Data:    cbDeletePrefix + task.ID,
	}
	if err := b.handleCallback(ctx, cb); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(api.last(), "Delete") {
		t.Fatalf("no confirmation prompt: %q", api.last())
	}
	if err := b.handleMessage(ctx, plain(btnConfirm)); err != nil {
		t.Fatal(err)
	}
	if _, err := tasks.FindTask(task.ID); err == nil {
		t.Fatal("task still present after confirmed delete")
	}
}

func TestRemindCommand(t *testing.T) {
	b, api, tasks := newTestBot(t)
	ctx := context.Background()
	task, err := tasks.CreateTask(ctx, service.TaskInput{Title: "call the bank"})
	if err != nil {
		t.Fatal(err)
	}

	if err := b.handleMessage(ctx, command("/remind "+task.ID+" 2030-05-01 09:30 bring papers")); err != nil {
		t.Fatal(err)
	}
	reminders := tasks.Reminders(task.ID)
	if len(reminders) != 1 {
		t.Fatalf("got %d reminders, want 1", len(reminders))
	}
	if reminders[0].Message != "bring papers" || reminders[0].Time.Hour() != 9 {
		t.Fatalf("reminder = %+v", reminders[0])
	}

	if err := b.handleMessage(ctx, command("/remind nope")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(api.last(), "Usage") {
		t.Fatalf("expected usage text, got %q", api.last())
	}
}

func TestSettingsCommands(t *testing.T) {
	b, api, _ := newTestBot(t)
	ctx := context.Background()

	if err := b.handleMessage(ctx, command("/theme neon")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(api.last(), "Usage") {
		t.Fatalf("invalid theme accepted: %q", api.last())
	}
	if err := b.handleMessage(ctx, command("/theme dark")); err != nil {
		t.Fatal(err)
	}
	if b.settingsSvc.Get().Theme != "dark" {
		t.Fatal("theme not updated")
	}

	// Notifications start on but permission is still default, so the first
	// toggle asks for it and keeps them on.
	if err := b.handleMessage(ctx, command("/notifications")); err != nil {
		t.Fatal(err)
	}
	if err := b.handleMessage(ctx, command("/notifications")); err != nil {
		t.Fatal(err)
	}
	if b.settingsSvc.Get().Notifications {
		t.Fatal("second toggle did not switch notifications off")
	}
	if !strings.Contains(api.last(), "off") {
		t.Fatalf("reply = %q", api.last())
	}
}

func TestSummaryCommand(t *testing.T) {
	b, api, tasks := newTestBot(t)
	ctx := context.Background()
	if _, err := tasks.CreateTask(ctx, service.TaskInput{Title: "team meeting"}); err != nil {
		t.Fatal(err)
	}

	if err := b.handleMessage(ctx, command("/summary")); err != nil {
		t.Fatal(err)
	}
	text := api.last()
	if !strings.Contains(text, "0 of 1") || !strings.Contains(text, "Most active in meetings today") {
		t.Fatalf("summary = %q", text)
	}
}

func TestIgnoresForeignChat(t *testing.T) {
	b, _, _ := newTestBot(t)
	b.allowedChat = 99
	if b.accepts(&tgbotapi.Chat{ID: 7, Type: "private"}) {
		t.Fatal("foreign chat accepted")
	}
	if !b.accepts(&tgbotapi.Chat{ID: 99, Type: "group"}) {
		t.Fatal("configured chat rejected")
	}
}

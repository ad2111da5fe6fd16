package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"daily-assistant/internal/model"
	"daily-assistant/internal/service"
	"daily-assistant/internal/store"
	"daily-assistant/internal/summary"
)

type conversationStage int

const (
	stageNone conversationStage = iota
	stageTitle
	stageDescription
	stageDueDate
)

const (
	cbTogglePrefix  = "toggle:"
	cbDeletePrefix  = "delete:"
	cbConfirmPrefix = "confirm:"
	cbCancelPrefix  = "cancel:"
)

type conversationState struct {
	stage conversationStage
	input service.TaskInput
}

type confirmationAction int

const (
	actionToggle confirmationAction = iota
	actionDelete
)

type confirmationRequest struct {
	taskID string
	action confirmationAction
}

// API is the part of tgbotapi.BotAPI the bot relies on.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot exposes the task services as a Telegram chat.
type Bot struct {
	api         API
	taskSvc     *service.TaskService
	settingsSvc *service.SettingsService
	// allowedChat limits the bot to one chat; zero accepts any private chat.
	allowedChat int64
	loc         *time.Location
	now         func() time.Time

	conversations map[int64]*conversationState
	confirmations map[int64]confirmationRequest
	mu            sync.Mutex
}

func New(api API, taskSvc *service.TaskService, settingsSvc *service.SettingsService, allowedChat int64, loc *time.Location) *Bot {
	if loc == nil {
		loc = time.Local
	}
	return &Bot{
		api:           api,
		taskSvc:       taskSvc,
		settingsSvc:   settingsSvc,
		allowedChat:   allowedChat,
		loc:           loc,
		now:           time.Now,
		conversations: make(map[int64]*conversationState),
		confirmations: make(map[int64]confirmationRequest),
	}
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Println("[info] start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				log.Printf("handle callback: %v", err)
			}
		case update.Message != nil:
			if !b.accepts(update.Message.Chat) {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				log.Printf("handle message: %v", err)
			}
		}
	}

	return nil
}

func (b *Bot) accepts(chat *tgbotapi.Chat) bool {
	if chat == nil {
		return false
	}
	if b.allowedChat != 0 {
		return chat.ID == b.allowedChat
	}
	return chat.IsPrivate()
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	if !msg.IsCommand() && isCancelDialogInput(msg.Text) {
		b.clearConversation(msg.From.ID)
		b.clearConfirmation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "⏪ Input cancelled. Start again whenever you like.")
	}

	if !msg.IsCommand() {
		if handled, err := b.handleMenuAlias(ctx, msg); handled {
			return err
		}
	}

	if msg.IsCommand() {
		log.Printf("[info] command from %d: /%s %s", msg.From.ID, msg.Command(), msg.CommandArguments())
		return b.handleCommand(ctx, msg)
	}

	if pending, ok := b.getConfirmation(msg.From.ID); ok {
		return b.handleConfirmationResponse(ctx, msg, pending)
	}

	if b.hasConversation(msg.From.ID) {
		log.Printf("[info] conversation step %d from %d", b.getConversation(msg.From.ID).stage, msg.From.ID)
		return b.handleConversation(ctx, msg)
	}

	return b.sendText(msg.Chat.ID, "I did not understand that. Send /newtask to add a task or /help for the command list.")
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		return b.handleStart(msg)
	case "help":
		return b.handleHelp(msg)
	case "newtask":
		return b.startNewTaskConversation(msg)
	case "add":
		return b.handleQuickAdd(ctx, msg)
	case "tasks":
		return b.handleListTasks(msg)
	case "toggle", "done":
		return b.handleToggle(ctx, msg)
	case "delete":
		return b.handleDelete(ctx, msg)
	case "remind":
		return b.handleRemind(ctx, msg)
	case "summary":
		return b.handleSummary(msg)
	case "settings":
		return b.handleSettings(msg)
	case "theme":
		return b.handleTheme(ctx, msg)
	case "summarytime":
		return b.handleSummaryTime(ctx, msg)
	case "notifications":
		return b.handleNotifications(ctx, msg)
	case "cancel":
		b.clearConversation(msg.From.ID)
		b.clearConfirmation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "⏪ Input cancelled.")
	default:
		return b.sendText(msg.Chat.ID, "Unknown command. See /help.")
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) error {
	name := strings.TrimSpace(msg.From.FirstName)
	if name == "" {
		name = "there"
	}

	text := fmt.Sprintf(
		"👋 Hi, %s!\n<b>I sort your tasks, remind you about them and tell you how the day went.</b>\n\n%s",
		escape(name),
		commandList,
	)
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) error {
	return b.sendText(msg.Chat.ID, "ℹ️ <b>Commands</b>\n"+commandList)
}

const commandList = "• /newtask — add a task step by step\n" +
	"• /add &lt;title&gt; — add a task in one message\n" +
	"• /tasks [all|pending|completed] [date|priority|category] — list tasks\n" +
	"• /toggle &lt;id&gt; — mark a task done or pending again\n" +
	"• /delete &lt;id&gt; — delete a task and its reminders\n" +
	"• /remind &lt;id&gt; &lt;YYYY-MM-DD HH:MM&gt; [message] — set a reminder\n" +
	"• /summary — today's productivity summary\n" +
	"• /settings — show preferences\n" +
	"• /theme &lt;light|dark|system&gt;, /summarytime &lt;HH:MM&gt;\n" +
	"• /notifications — turn alerts on or off\n" +
	"• /cancel — cancel the current input"

func (b *Bot) startNewTaskConversation(msg *tgbotapi.Message) error {
	log.Printf("[info] start new task conversation user=%d", msg.From.ID)
	b.setConversation(msg.From.ID, &conversationState{stage: stageTitle})
	return b.sendWithReplyMarkup(msg.Chat.ID, "🆕 New task.\n<b>Step 1:</b> what should it be called?", cancelKeyboard())
}

func (b *Bot) handleConversation(ctx context.Context, msg *tgbotapi.Message) error {
	state := b.getConversation(msg.From.ID)
	if state == nil {
		return nil
	}

	text := strings.TrimSpace(msg.Text)
	switch state.stage {
	case stageTitle:
		if text == "" {
			return b.sendWithReplyMarkup(msg.Chat.ID, "The title cannot be empty. What should the task be called?", cancelKeyboard())
		}
		state.input.Title = text
		state.stage = stageDescription
		return b.sendWithReplyMarkup(msg.Chat.ID, "✏️ Add a short description (or press Skip).", skipKeyboard())
	case stageDescription:
		if !isSkipInput(text) {
			state.input.Description = text
		}
		state.stage = stageDueDate
		return b.sendWithReplyMarkup(msg.Chat.ID, "⏰ Due date as <code>2025-11-30</code> or <code>2025-11-30 14:00</code> (or Skip).", skipKeyboard())
	case stageDueDate:
		if !isSkipInput(text) {
			due, err := model.ParseDue(text, b.loc)
			if err != nil {
				return b.sendWithReplyMarkup(msg.Chat.ID, "I cannot read that date. Use <code>2025-11-30</code>, <code>2025-11-30 14:00</code> or Skip.", skipKeyboard())
			}
			state.input.DueDate = &due
		}
		err := b.finishTaskCreation(ctx, msg.Chat.ID, state.input)
		b.clearConversation(msg.From.ID)
		return err
	default:
		b.clearConversation(msg.From.ID)
		return b.sendText(msg.Chat.ID, "Conversation reset. Try /newtask again.")
	}
}

func (b *Bot) handleQuickAdd(ctx context.Context, msg *tgbotapi.Message) error {
	title := strings.TrimSpace(msg.CommandArguments())
	if title == "" {
		return b.sendText(msg.Chat.ID, "Give the task a title: /add Review the design mockups")
	}
	return b.finishTaskCreation(ctx, msg.Chat.ID, service.TaskInput{Title: title})
}

func (b *Bot) finishTaskCreation(ctx context.Context, chatID int64, input service.TaskInput) error {
	task, err := b.taskSvc.CreateTask(ctx, input)
	if err != nil {
		return b.sendText(chatID, fmt.Sprintf("Could not save the task: %s", escape(err.Error())))
	}

	log.Printf("[info] task created id=%s category=%s priority=%s", task.ID, task.Category, task.Priority)

	var text strings.Builder
	text.WriteString("✅ <b>Task saved</b>\n")
	text.WriteString(fmt.Sprintf("• <b>ID:</b> <code>%s</code>\n", shortID(task.ID)))
	text.WriteString(fmt.Sprintf("• <b>Title:</b> %s\n", escape(task.Title)))
	if task.Description != "" {
		text.WriteString(fmt.Sprintf("• <b>Description:</b> %s\n", escape(task.Description)))
	}
	text.WriteString(fmt.Sprintf("• <b>Category:</b> %s\n", categoryLabel(task.Category)))
	text.WriteString(fmt.Sprintf("• <b>Priority:</b> %s %s\n", priorityIcon(task.Priority), task.Priority))
	if task.DueDate != nil {
		due := task.DueDate.In(b.loc)
		text.WriteString(fmt.Sprintf("• <b>Due:</b> %s (%s)\n", summary.FormatDate(due), summary.FormatRelative(due, b.now().In(b.loc))))
	}

	if err := b.sendTextWithRemove(chatID, strings.TrimSpace(text.String())); err != nil {
		return err
	}
	return b.sendTaskList(chatID, store.FilterPending, store.SortByDate)
}

func (b *Bot) handleListTasks(msg *tgbotapi.Message) error {
	filter, by := store.FilterAll, store.SortByDate
	for _, arg := range strings.Fields(msg.CommandArguments()) {
		if f, err := store.ParseFilter(arg); err == nil {
			filter = f
			continue
		}
		s, err := store.ParseSort(arg)
		if err != nil {
			return b.sendText(msg.Chat.ID, "Usage: /tasks [all|pending|completed] [date|priority|category]")
		}
		by = s
	}

	log.Printf("[info] list tasks filter=%s sort=%s", filter, by)
	return b.sendTaskList(msg.Chat.ID, filter, by)
}

func (b *Bot) handleToggle(ctx context.Context, msg *tgbotapi.Message) error {
	id := strings.TrimSpace(msg.CommandArguments())
	if id == "" {
		return b.sendText(msg.Chat.ID, "Give the task id: /toggle 1a2b3c4d")
	}
	task, err := b.taskSvc.ToggleTask(ctx, id)
	if err != nil {
		return b.sendText(msg.Chat.ID, taskErrorText(err))
	}
	return b.sendText(msg.Chat.ID, toggledText(task))
}

func (b *Bot) handleDelete(ctx context.Context, msg *tgbotapi.Message) error {
	id := strings.TrimSpace(msg.CommandArguments())
	if id == "" {
		return b.sendText(msg.Chat.ID, "Give the task id: /delete 1a2b3c4d")
	}
	task, err := b.taskSvc.DeleteTask(ctx, id)
	if err != nil {
		return b.sendText(msg.Chat.ID, taskErrorText(err))
	}
	log.Printf("[info] task deleted id=%s", task.ID)
	return b.sendText(msg.Chat.ID, fmt.Sprintf("🗑 Task \"%s\" deleted.", escape(task.Title)))
}

func (b *Bot) handleRemind(ctx context.Context, msg *tgbotapi.Message) error {
	const usage = "Usage: /remind &lt;id&gt; &lt;YYYY-MM-DD HH:MM&gt; [message]"
	fields := strings.Fields(msg.CommandArguments())
	if len(fields) < 3 {
		return b.sendText(msg.Chat.ID, usage)
	}
	at, err := model.ParseDue(fields[1]+" "+fields[2], b.loc)
	if err != nil {
		return b.sendText(msg.Chat.ID, usage)
	}
	message := strings.Join(fields[3:], " ")

	reminder, err := b.taskSvc.AddReminder(ctx, fields[0], at, message)
	if err != nil {
		return b.sendText(msg.Chat.ID, taskErrorText(err))
	}
	log.Printf("[info] reminder added id=%s task=%s at=%s", reminder.ID, reminder.TaskID, reminder.Time.Format(time.RFC3339))
	return b.sendText(msg.Chat.ID, fmt.Sprintf("🔔 Reminder set for %s.", summary.FormatDate(at)))
}

func (b *Bot) handleSummary(msg *tgbotapi.Message) error {
	return b.sendText(msg.Chat.ID, formatSummary(b.taskSvc.Summary(), b.loc))
}

func (b *Bot) handleSettings(msg *tgbotapi.Message) error {
	return b.sendText(msg.Chat.ID, formatSettings(b.settingsSvc.Get()))
}

func (b *Bot) handleTheme(ctx context.Context, msg *tgbotapi.Message) error {
	theme := model.Theme(strings.ToLower(strings.TrimSpace(msg.CommandArguments())))
	if _, err := b.settingsSvc.Update(ctx, model.SettingsPatch{Theme: &theme}); err != nil {
		return b.sendText(msg.Chat.ID, "Usage: /theme light|dark|system")
	}
	return b.sendText(msg.Chat.ID, fmt.Sprintf("🎨 Theme set to %s.", theme))
}

func (b *Bot) handleSummaryTime(ctx context.Context, msg *tgbotapi.Message) error {
	value := strings.TrimSpace(msg.CommandArguments())
	if _, err := b.settingsSvc.Update(ctx, model.SettingsPatch{SummaryTime: &value}); err != nil {
		return b.sendText(msg.Chat.ID, "Usage: /summarytime HH:MM, for example /summarytime 18:30")
	}
	return b.sendText(msg.Chat.ID, fmt.Sprintf("📊 The daily summary will arrive after %s.", escape(value)))
}

func (b *Bot) handleNotifications(ctx context.Context, msg *tgbotapi.Message) error {
	before := b.settingsSvc.Get().Notifications
	after := b.settingsSvc.ToggleNotifications(ctx).Notifications
	switch {
	case after:
		return b.sendText(msg.Chat.ID, "🔔 Notifications are on.")
	case before:
		return b.sendText(msg.Chat.ID, "🔕 Notifications are off.")
	default:
		return b.sendText(msg.Chat.ID, "Notifications are not available in this setup.")
	}
}

func (b *Bot) handleConfirmationResponse(ctx context.Context, msg *tgbotapi.Message, req confirmationRequest) error {
	text := strings.TrimSpace(msg.Text)
	switch {
	case isConfirmInput(text):
		b.clearConfirmation(msg.From.ID)
		if req.action == actionDelete {
			return b.deleteTaskAndRefresh(ctx, msg.Chat.ID, req.taskID)
		}
		return b.toggleTaskAndRefresh(ctx, msg.Chat.ID, req.taskID)
	case isCancelInput(text):
		b.clearConfirmation(msg.From.ID)
		return b.sendMenuPlaceholder(msg.Chat.ID)
	default:
		prompt := "Confirm or cancel the status change."
		if req.action == actionDelete {
			prompt = "Confirm or cancel the deletion."
		}
		return b.sendWithReplyMarkup(msg.Chat.ID, prompt, confirmKeyboard())
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb == nil || cb.From == nil || cb.Message == nil || !b.accepts(cb.Message.Chat) {
		return nil
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("callback ack: %v", err)
	}

	data := cb.Data
	chatID := cb.Message.Chat.ID
	switch {
	case strings.HasPrefix(data, cbTogglePrefix):
		log.Printf("[info] callback toggle request user=%d task=%s", cb.From.ID, strings.TrimPrefix(data, cbTogglePrefix))
		return b.askConfirmation(chatID, cb.From.ID, strings.TrimPrefix(data, cbTogglePrefix), actionToggle)
	case strings.HasPrefix(data, cbDeletePrefix):
		log.Printf("[info] callback delete request user=%d task=%s", cb.From.ID, strings.TrimPrefix(data, cbDeletePrefix))
		return b.askConfirmation(chatID, cb.From.ID, strings.TrimPrefix(data, cbDeletePrefix), actionDelete)
	case strings.HasPrefix(data, cbConfirmPrefix):
		b.clearConfirmation(cb.From.ID)
		return b.toggleTaskAndRefresh(ctx, chatID, strings.TrimPrefix(data, cbConfirmPrefix))
	case strings.HasPrefix(data, cbCancelPrefix):
		b.clearConfirmation(cb.From.ID)
		return nil
	default:
		return nil
	}
}

func (b *Bot) askConfirmation(chatID, userID int64, taskID string, action confirmationAction) error {
	task, err := b.taskSvc.FindTask(taskID)
	if err != nil {
		return b.sendText(chatID, taskErrorText(err))
	}

	var text string
	switch {
	case action == actionDelete:
		text = fmt.Sprintf("Delete \"%s\" (<code>%s</code>)?", escape(task.Title), shortID(task.ID))
	case task.Completed:
		text = fmt.Sprintf("Mark \"%s\" (<code>%s</code>) as pending again?", escape(task.Title), shortID(task.ID))
	default:
		text = fmt.Sprintf("Mark \"%s\" (<code>%s</code>) as done?", escape(task.Title), shortID(task.ID))
	}
	b.setConfirmation(userID, confirmationRequest{taskID: task.ID, action: action})
	return b.sendWithReplyMarkup(chatID, text, confirmKeyboard())
}

func (b *Bot) toggleTaskAndRefresh(ctx context.Context, chatID int64, taskID string) error {
	task, err := b.taskSvc.ToggleTask(ctx, taskID)
	if err != nil {
		return b.sendTextWithRemove(chatID, taskErrorText(err))
	}
	log.Printf("[info] task toggled id=%s completed=%t", task.ID, task.Completed)
	if err := b.sendTextWithRemove(chatID, toggledText(task)); err != nil {
		return err
	}
	return b.sendTaskList(chatID, store.FilterPending, store.SortByDate)
}

func (b *Bot) deleteTaskAndRefresh(ctx context.Context, chatID int64, taskID string) error {
	task, err := b.taskSvc.DeleteTask(ctx, taskID)
	if err != nil {
		return b.sendTextWithRemove(chatID, taskErrorText(err))
	}
	log.Printf("[info] task deleted id=%s", task.ID)
	if err := b.sendTextWithRemove(chatID, fmt.Sprintf("🗑 Task \"%s\" deleted.", escape(task.Title))); err != nil {
		return err
	}
	return b.sendTaskList(chatID, store.FilterPending, store.SortByDate)
}

func (b *Bot) sendTaskList(chatID int64, filter store.Filter, by store.SortBy) error {
	tasks := b.taskSvc.ListTasks(filter, by)
	if len(tasks) == 0 {
		return b.sendText(chatID, "No tasks here. Add one with /newtask.")
	}

	now := b.now().In(b.loc)
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("📋 <b>Tasks</b> · %s · by %s\n", filter, by))
	builder.WriteString("Use the buttons to change a task's status or delete it.\n\n")

	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, task := range tasks {
		builder.WriteString(formatTask(task, now, b.loc))
		label := "✅ "
		if task.Completed {
			label = "↩️ "
		}
		buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label+shortTitle(task.Title, 24), cbTogglePrefix+task.ID),
			tgbotapi.NewInlineKeyboardButtonData("🗑", cbDeletePrefix+task.ID),
		))
	}

	msg := tgbotapi.NewMessage(chatID, strings.TrimSpace(builder.String()))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(buttons...)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) handleMenuAlias(ctx context.Context, msg *tgbotapi.Message) (bool, error) {
	text := strings.TrimSpace(strings.ToLower(msg.Text))
	switch text {
	case strings.ToLower(menuLabelNewTask):
		return true, b.startNewTaskConversation(msg)
	case strings.ToLower(menuLabelTasks):
		return true, b.sendTaskList(msg.Chat.ID, store.FilterPending, store.SortByDate)
	case strings.ToLower(menuLabelSummary):
		return true, b.handleSummary(msg)
	case strings.ToLower(menuLabelHelp):
		return true, b.handleHelp(msg)
	default:
		return false, nil
	}
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = mainMenuKeyboard()
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendTextWithRemove(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if _, err := b.api.Send(msg); err != nil {
		return err
	}
	return b.sendMenuPlaceholder(chatID)
}

func (b *Bot) sendWithReplyMarkup(chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendMenuPlaceholder(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "🔹 Main menu")
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = mainMenuKeyboard()
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) getConfirmation(userID int64) (confirmationRequest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	req, ok := b.confirmations[userID]
	return req, ok
}

func (b *Bot) setConfirmation(userID int64, req confirmationRequest) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.confirmations[userID] = req
}

func (b *Bot) clearConfirmation(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.confirmations, userID)
}

func (b *Bot) setConversation(userID int64, state *conversationState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conversations[userID] = state
}

func (b *Bot) getConversation(userID int64) *conversationState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conversations[userID]
}

func (b *Bot) hasConversation(userID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.conversations[userID]
	return ok
}

func (b *Bot) clearConversation(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.conversations, userID)
}

func taskErrorText(err error) string {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		return "Task not found."
	case errors.Is(err, service.ErrAmbiguousID):
		return "Several tasks start with that id. Type a few more characters."
	default:
		return fmt.Sprintf("Error: %s", escape(err.Error()))
	}
}

func toggledText(task model.Task) string {
	if task.Completed {
		return fmt.Sprintf("✅ \"%s\" is done.", escape(task.Title))
	}
	return fmt.Sprintf("↩️ \"%s\" is pending again.", escape(task.Title))
}

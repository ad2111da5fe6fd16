package notify

import (
	"context"
	"fmt"
	"html"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MessageSender is the part of tgbotapi.BotAPI used for delivery.
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram delivers alerts as chat messages.
type Telegram struct {
	api    MessageSender
	chatID int64
}

func NewTelegram(api MessageSender, chatID int64) *Telegram {
	return &Telegram{api: api, chatID: chatID}
}

// RequestPermission succeeds when a target chat is configured.
func (t *Telegram) RequestPermission(context.Context) (bool, error) {
	return t.api != nil && t.chatID != 0, nil
}

func (t *Telegram) Send(_ context.Context, msg Message) (*Handle, error) {
	text := fmt.Sprintf("🔔 <b>%s</b>", html.EscapeString(msg.Title))
	if msg.Body != "" {
		text += "\n" + html.EscapeString(msg.Body)
	}

	out := tgbotapi.NewMessage(t.chatID, text)
	out.ParseMode = tgbotapi.ModeHTML

	sent, err := t.api.Send(out)
	if err != nil {
		return nil, fmt.Errorf("send telegram message: %w", err)
	}
	return &Handle{ID: strconv.Itoa(sent.MessageID), Tag: msg.Tag}, nil
}

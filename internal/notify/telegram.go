package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier sends reminders to a fixed Telegram chat.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	return &TelegramNotifier{api: api, chatID: chatID}, nil
}

func (n *TelegramNotifier) Notify(_ context.Context, title, body string) error {
	msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("⏳ %s — %s", title, body))
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send telegram notification: %w", err)
	}
	return nil
}

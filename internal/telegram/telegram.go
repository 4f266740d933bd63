// Package telegram handles construction of the Telegram bot client and
// exposes the narrow sending surface the rest of the application depends on.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Sender is the subset of the bot client used by handlers and the notifier.
// *bot.Bot satisfies it; tests substitute a recording fake.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
}

// New creates a Telegram bot instance using the go-telegram/bot library.
func New(token string, logger *slog.Logger, opts ...bot.Option) (*bot.Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telegram_bot")

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Error("Failed to create Telegram bot instance", "error", err)
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Info("Telegram bot instance created successfully")
	return b, nil
}

// SetCommandMenu publishes the bot's command list so clients show it in the
// command menu.
func SetCommandMenu(ctx context.Context, b *bot.Bot, logger *slog.Logger) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "Головне меню"},
	}
	ok, err := b.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: commands})
	if err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}
	if !ok {
		logger.Warn("Telegram rejected the command menu update")
	}
	return nil
}

// CallbackChatID extracts the chat a callback query originated from. The
// message may be inaccessible for old callbacks, in which case only the chat
// id survives.
func CallbackChatID(q *models.CallbackQuery) (int64, bool) {
	if q == nil {
		return 0, false
	}
	if q.Message.Message != nil {
		return q.Message.Message.Chat.ID, true
	}
	if q.Message.InaccessibleMessage != nil {
		return q.Message.InaccessibleMessage.Chat.ID, true
	}
	return 0, false
}

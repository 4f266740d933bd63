package handlers

import (
	"log/slog"

	"github.com/Maks2425/telegram-bot-book-meet/internal/config"
	"github.com/Maks2425/telegram-bot-book-meet/internal/conversation"
	"github.com/Maks2425/telegram-bot-book-meet/internal/notifier"
	"github.com/Maks2425/telegram-bot-book-meet/internal/pricing"
	"github.com/Maks2425/telegram-bot-book-meet/internal/stats"
	"github.com/Maks2425/telegram-bot-book-meet/internal/telegram"
)

// HandlerDeps provides dependencies for update handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	TG       telegram.Sender
	Sessions *conversation.Store
	Pricing  *pricing.Calculator
	Notifier notifier.Service
	Stats    *stats.Counters
}

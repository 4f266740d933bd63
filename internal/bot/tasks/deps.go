package tasks

import (
	"context"
	"log/slog"

	"github.com/Maks2425/telegram-bot-book-meet/internal/config"
	"github.com/Maks2425/telegram-bot-book-meet/internal/notifier"
	"github.com/Maks2425/telegram-bot-book-meet/internal/stats"
)

// ScheduledTaskFunc is the signature every scheduled task implements.
type ScheduledTaskFunc func(ctx context.Context) error

// TaskDeps provides dependencies for scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Notifier notifier.Service
	Stats    *stats.Counters
}

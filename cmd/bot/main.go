// Package main contains the entrypoint for the booking bot.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbot "github.com/go-telegram/bot"
	"github.com/joho/godotenv"

	"github.com/Maks2425/telegram-bot-book-meet/internal/bot"
	"github.com/Maks2425/telegram-bot-book-meet/internal/bot/handlers"
	"github.com/Maks2425/telegram-bot-book-meet/internal/bot/tasks"
	"github.com/Maks2425/telegram-bot-book-meet/internal/config"
	"github.com/Maks2425/telegram-bot-book-meet/internal/conversation"
	"github.com/Maks2425/telegram-bot-book-meet/internal/logger"
	"github.com/Maks2425/telegram-bot-book-meet/internal/notifier"
	"github.com/Maks2425/telegram-bot-book-meet/internal/pricing"
	"github.com/Maks2425/telegram-bot-book-meet/internal/stats"
	"github.com/Maks2425/telegram-bot-book-meet/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes all components, starts the orchestrator and returns the
// process exit code: 0 on graceful shutdown, 1 on failure. Configuration
// errors exit before any connection to Telegram is attempted.
func run(ctx context.Context) int {
	configPath := flag.String("config", "", "Path to configuration file (default: ./config.yaml if present)")
	flag.Parse()

	// Local development convenience; deployment platforms set the
	// environment directly and ship no .env file.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	log := logger.New(cfg.Logger.Level, cfg.Logger.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)
	log.Info("Operator notifications", "enabled", cfg.Telegram.OwnerID != nil)

	sessions := conversation.NewStore()
	counters := stats.New()
	calculator := pricing.NewCalculator(cfg.Pricing)

	deps := &handlers.HandlerDeps{
		Logger:   log,
		Config:   cfg,
		Sessions: sessions,
		Pricing:  calculator,
		Stats:    counters,
	}
	registry := handlers.RegisterAllCommands(deps)

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithDefaultHandler(handlers.NewRouter(deps, registry)),
	}
	tg, err := telegram.New(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	// Handlers close over deps; the sender and notifier slots are filled in
	// before the first update is polled.
	deps.TG = tg
	deps.Notifier = notifier.NewOperator(tg, cfg.Telegram.OwnerID, log)

	if err := telegram.SetCommandMenu(ctx, tg, log); err != nil {
		log.Error("Failed to publish command menu", "error", err)
		return 1
	}

	tDeps := tasks.TaskDeps{
		Logger:   log,
		Config:   cfg,
		Notifier: deps.Notifier,
		Stats:    counters,
	}
	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.NewBot(log, cfg, tg, sched)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}

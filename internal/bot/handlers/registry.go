// Package handlers contains the Telegram update handlers: the command
// registry, the inline-keyboard callback router and the booking dialog.
package handlers

import (
	"context"
	"log/slog"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandlerFunc processes one inbound update.
type HandlerFunc func(ctx context.Context, update *models.Update)

// Registry maps command names to handlers. Lookup is by exact name,
// case-sensitive, including the leading slash. Registering the same name
// twice overwrites the earlier handler: last registration wins.
type Registry struct {
	logger   *slog.Logger
	commands map[string]HandlerFunc
}

// NewRegistry returns an empty command registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:   logger.With("component", "command_registry"),
		commands: make(map[string]HandlerFunc),
	}
}

// Register binds a command name to a handler. Registration happens once at
// startup; the registry is not written to afterwards.
func (r *Registry) Register(name string, h HandlerFunc) {
	if _, exists := r.commands[name]; exists {
		r.logger.Warn("Overwriting existing command handler", "command", name)
	}
	r.commands[name] = h
}

// Dispatch routes a command message to its handler and reports whether one
// was found. Unrecognized commands are silently ignored.
func (r *Registry) Dispatch(ctx context.Context, update *models.Update) bool {
	if update.Message == nil {
		return false
	}
	name := CommandName(update.Message.Text)
	if name == "" {
		return false
	}
	h, ok := r.commands[name]
	if !ok {
		r.logger.DebugContext(ctx, "Ignoring unrecognized command", "command", name)
		return false
	}
	h(ctx, update)
	return true
}

// CommandName extracts the command from a message text: the first token, with
// any @botname suffix stripped. Returns "" if the text is not a command.
func CommandName(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	name, _, _ := strings.Cut(text, " ")
	name, _, _ = strings.Cut(name, "@")
	return name
}

// RegisterAllCommands builds the registry with every bot command bound.
func RegisterAllCommands(deps *HandlerDeps) *Registry {
	r := NewRegistry(deps.Logger)
	r.Register("/start", NewStartHandler(deps))
	return r
}

// NewRouter returns the single go-telegram/bot handler that fans incoming
// updates out to command dispatch, callback handling and dialog input. A
// panicking handler is contained here so one bad update cannot take down the
// polling loop.
func NewRouter(deps *HandlerDeps, registry *Registry) tgbot.HandlerFunc {
	onCallback := NewCallbackHandler(deps)
	onMessage := NewMessageHandler(deps)
	log := deps.Logger.With("component", "router")

	return func(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
		defer func() {
			if rec := recover(); rec != nil {
				log.ErrorContext(ctx, "Recovered from handler panic", "panic", rec, "update_id", update.ID)
			}
		}()

		switch {
		case update.CallbackQuery != nil:
			onCallback(ctx, update)
		case update.Message != nil && CommandName(update.Message.Text) != "":
			registry.Dispatch(ctx, update)
		case update.Message != nil:
			onMessage(ctx, update)
		}
	}
}

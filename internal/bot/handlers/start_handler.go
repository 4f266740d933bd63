package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewStartHandler returns a handler for the /start command. It covers both a
// typed /start and the Start button Telegram shows on first contact.
func NewStartHandler(deps *HandlerDeps) HandlerFunc {
	return startHandler{deps}.Handle
}

type startHandler struct {
	deps *HandlerDeps
}

func (h startHandler) Handle(ctx context.Context, update *models.Update) {
	log := h.deps.Logger.With("handler", "start")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Start handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Handling /start command", "chat_id", chatID, "user_id", update.Message.From.ID)

	// /start always restarts the dialog.
	h.deps.Sessions.Clear(chatID)
	sendMenu(ctx, h.deps, chatID)
}

// sendMenu sends the greeting with the start menu keyboard.
func sendMenu(ctx context.Context, deps *HandlerDeps, chatID int64) {
	_, err := deps.TG.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        deps.Config.Messages.Welcome,
		ReplyMarkup: startKeyboard(),
	})
	if err != nil {
		deps.Logger.ErrorContext(ctx, "Failed to send welcome message", "error", err, "chat_id", chatID)
	}
}

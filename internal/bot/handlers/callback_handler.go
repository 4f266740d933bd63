package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Maks2425/telegram-bot-book-meet/internal/conversation"
	"github.com/Maks2425/telegram-bot-book-meet/internal/dates"
	"github.com/Maks2425/telegram-bot-book-meet/internal/pricing"
	"github.com/Maks2425/telegram-bot-book-meet/internal/telegram"
)

// NewCallbackHandler returns the handler for inline keyboard callbacks. It
// routes on the action encoded in the callback data.
func NewCallbackHandler(deps *HandlerDeps) HandlerFunc {
	return callbackHandler{deps}.Handle
}

type callbackHandler struct {
	deps *HandlerDeps
}

func (h callbackHandler) Handle(ctx context.Context, update *models.Update) {
	log := h.deps.Logger.With("handler", "callback")

	q := update.CallbackQuery
	if q == nil || q.Data == "" {
		log.WarnContext(ctx, "Callback handler received update without callback data", "update_id", update.ID)
		return
	}
	chatID, ok := telegram.CallbackChatID(q)
	if !ok {
		log.WarnContext(ctx, "Callback without originating chat", "callback_id", q.ID)
		return
	}

	// Stop the client's loading spinner regardless of the outcome.
	if _, err := h.deps.TG.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: q.ID}); err != nil {
		log.WarnContext(ctx, "Failed to answer callback query", "error", err, "callback_id", q.ID)
	}

	action, value, _ := strings.Cut(q.Data, ":")
	log.InfoContext(ctx, "Handling callback", "action", action, "chat_id", chatID, "user_id", q.From.ID)

	switch action {
	case actionCalculatePrice:
		h.startCalculation(ctx, chatID)
	case actionCleaningType:
		h.selectCleaningType(ctx, chatID, value)
	case actionPropertyType:
		h.selectPropertyType(ctx, chatID, value)
	case actionBookCleaning:
		h.startBooking(ctx, chatID)
	case actionSelectDate:
		h.selectDate(ctx, chatID, value)
	case actionSelectTime:
		h.selectTime(ctx, chatID, value)
	default:
		log.WarnContext(ctx, "Unknown callback action", "data", q.Data)
		h.send(ctx, chatID, h.deps.Config.Messages.UnknownAction, nil)
	}
}

func (h callbackHandler) startCalculation(ctx context.Context, chatID int64) {
	h.deps.Sessions.SetState(chatID, conversation.StateSelectingCleaningType)
	h.send(ctx, chatID, "Оберіть тип прибирання:", cleaningTypeKeyboard())
}

func (h callbackHandler) selectCleaningType(ctx context.Context, chatID int64, value string) {
	cleaning := pricing.CleaningType(value)
	h.deps.Sessions.Update(chatID, func(d *conversation.Draft) {
		d.CleaningType = cleaning
	})
	h.deps.Sessions.SetState(chatID, conversation.StateSelectingPropertyType)

	text := fmt.Sprintf("✅ Ви обрали: %s\n\nОберіть тип житла:", cleaning.DisplayName())
	h.send(ctx, chatID, text, propertyTypeKeyboard())
}

func (h callbackHandler) selectPropertyType(ctx context.Context, chatID int64, value string) {
	property := pricing.PropertyType(value)
	h.deps.Sessions.Update(chatID, func(d *conversation.Draft) {
		d.PropertyType = property
	})
	h.deps.Sessions.SetState(chatID, conversation.StateEnteringArea)

	text := fmt.Sprintf("✅ Ви обрали: %s\n\nВведіть площу вашого житла у м² (наприклад: 50 або 75.5):", property.DisplayName())
	h.send(ctx, chatID, text, nil)
}

func (h callbackHandler) startBooking(ctx context.Context, chatID int64) {
	h.deps.Sessions.SetState(chatID, conversation.StateSelectingDate)
	h.send(ctx, chatID, "📅 Оберіть дату для бронювання:", dateSelectionKeyboard(time.Now()))
}

func (h callbackHandler) selectDate(ctx context.Context, chatID int64, value string) {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		h.deps.Logger.ErrorContext(ctx, "Invalid date in callback", "value", value, "error", err)
		h.send(ctx, chatID, "❌ Помилка формату дати. Спробуйте ще раз.", nil)
		return
	}
	h.deps.Sessions.Update(chatID, func(d *conversation.Draft) {
		d.Date = day
	})
	h.deps.Sessions.SetState(chatID, conversation.StateSelectingTime)

	text := fmt.Sprintf("📅 Обрана дата: %s\n\n🕐 Оберіть час для бронювання:", dates.FormatUkrainian(day))
	h.send(ctx, chatID, text, timeSelectionKeyboard())
}

func (h callbackHandler) selectTime(ctx context.Context, chatID int64, value string) {
	draft := h.deps.Sessions.Draft(chatID)
	if draft.Date.IsZero() {
		h.send(ctx, chatID, "❌ Помилка: дата не збережена. Почніть спочатку.", nil)
		h.deps.Sessions.Clear(chatID)
		return
	}
	h.deps.Sessions.Update(chatID, func(d *conversation.Draft) {
		d.TimeSlot = value
	})
	h.deps.Sessions.SetState(chatID, conversation.StateEnteringAddress)

	text := fmt.Sprintf(
		"✅ Ви обрали:\n📅 Дата: %s\n🕐 Час: %s\n\n📍 Введіть адресу для прибирання або поділіться локацією:",
		dates.FormatUkrainian(draft.Date), value,
	)
	h.send(ctx, chatID, text, locationKeyboard())
}

func (h callbackHandler) send(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) {
	_, err := h.deps.TG.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: markup,
	})
	if err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to send callback reply", "error", err, "chat_id", chatID)
	}
}

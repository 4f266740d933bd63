package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Maks2425/telegram-bot-book-meet/internal/dates"
	"github.com/Maks2425/telegram-bot-book-meet/internal/notifier"
)

// completeBooking finishes the dialog: it confirms the order to the client,
// notifies the operator and clears the session. The operator notification is
// best effort and cannot fail the client-facing confirmation.
func completeBooking(ctx context.Context, deps *HandlerDeps, msg *models.Message) {
	chatID := msg.Chat.ID
	draft := deps.Sessions.Draft(chatID)

	if draft.Address == "" {
		deps.Logger.ErrorContext(ctx, "Booking completion without address", "chat_id", chatID)
		sendText(ctx, deps, chatID, "❌ Помилка: адреса не збережена. Почніть спочатку.")
		deps.Sessions.Clear(chatID)
		sendMenu(ctx, deps, chatID)
		return
	}

	var sb strings.Builder
	sb.WriteString("✅ Бронювання підтверджено!\n\n📋 Деталі замовлення:")
	if draft.CleaningType != "" {
		fmt.Fprintf(&sb, "\n• Тип прибирання: %s", draft.CleaningType.DisplayName())
	}
	if draft.PropertyType != "" {
		fmt.Fprintf(&sb, "\n• Тип житла: %s", draft.PropertyType.DisplayName())
	}
	if draft.AreaM2 > 0 {
		fmt.Fprintf(&sb, "\n• Площа: %v м²", draft.AreaM2)
	}
	if !draft.Date.IsZero() {
		fmt.Fprintf(&sb, "\n• Дата: %s", dates.FormatUkrainian(draft.Date))
	}
	if draft.TimeSlot != "" {
		fmt.Fprintf(&sb, "\n• Час: %s", draft.TimeSlot)
	}
	fmt.Fprintf(&sb, "\n• Адреса: %s", draft.Address)
	sb.WriteString("\n\n✅ Дякуємо за замовлення! Наш менеджер зв'яжеться з вами найближчим часом для підтвердження.")

	sendText(ctx, deps, chatID, sb.String())

	deps.Stats.BookingCreated()
	deps.Notifier.BookingCreated(ctx, notifier.Booking{
		ClientID:       msg.From.ID,
		ClientUsername: msg.From.Username,
		Draft:          draft,
	})

	deps.Logger.InfoContext(ctx, "Booking completed",
		"user_id", msg.From.ID,
		"date", draft.Date.Format("2006-01-02"),
		"time", draft.TimeSlot,
	)

	deps.Sessions.Clear(chatID)
}

func sendText(ctx context.Context, deps *HandlerDeps, chatID int64, text string) {
	_, err := deps.TG.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
	if err != nil {
		deps.Logger.ErrorContext(ctx, "Failed to send message", "error", err, "chat_id", chatID)
	}
}

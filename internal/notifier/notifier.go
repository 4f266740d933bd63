// Package notifier delivers side-channel notifications to the configured
// operator account. Delivery is best effort: a missing operator identity is a
// valid configuration and send failures never propagate to the user-facing
// flow that triggered them.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"

	"github.com/Maks2425/telegram-bot-book-meet/internal/conversation"
	"github.com/Maks2425/telegram-bot-book-meet/internal/dates"
	"github.com/Maks2425/telegram-bot-book-meet/internal/telegram"
)

// Booking describes a completed booking for operator notification.
type Booking struct {
	ClientID       int64
	ClientUsername string
	Draft          conversation.Draft
}

// Service is the hook a business event source calls when something
// notify-worthy happens. Implementations must be safe to call with no
// operator configured.
type Service interface {
	BookingCreated(ctx context.Context, booking Booking)
	NotifyOperator(ctx context.Context, text string)
}

// Operator sends notifications to the owner chat over Telegram.
type Operator struct {
	sender  telegram.Sender
	ownerID *int64
	logger  *slog.Logger
}

// NewOperator creates the operator notifier. A nil ownerID disables it.
func NewOperator(sender telegram.Sender, ownerID *int64, logger *slog.Logger) *Operator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Operator{
		sender:  sender,
		ownerID: ownerID,
		logger:  logger.With("component", "notifier"),
	}
}

// Enabled reports whether an operator identity is configured.
func (o *Operator) Enabled() bool {
	return o.ownerID != nil
}

// BookingCreated forwards a new booking to the operator chat.
func (o *Operator) BookingCreated(ctx context.Context, booking Booking) {
	o.NotifyOperator(ctx, formatBooking(booking))
}

// NotifyOperator sends free-form text to the operator chat. Without an
// operator it is a no-op.
func (o *Operator) NotifyOperator(ctx context.Context, text string) {
	if o.ownerID == nil {
		o.logger.DebugContext(ctx, "No operator configured, skipping notification")
		return
	}
	_, err := o.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: *o.ownerID,
		Text:   text,
	})
	if err != nil {
		o.logger.ErrorContext(ctx, "Failed to send operator notification", "error", err, "owner_id", *o.ownerID)
		return
	}
	o.logger.InfoContext(ctx, "Operator notification sent", "owner_id", *o.ownerID)
}

func formatBooking(b Booking) string {
	var sb strings.Builder
	sb.WriteString("🔔 НОВЕ БРОНЮВАННЯ\n\n")

	client := fmt.Sprintf("ID: %d", b.ClientID)
	if b.ClientUsername != "" {
		client = "@" + b.ClientUsername
	}
	fmt.Fprintf(&sb, "👤 Клієнт: %s\n", client)
	fmt.Fprintf(&sb, "🆔 Telegram ID: %d\n\n", b.ClientID)

	sb.WriteString("📋 Деталі замовлення:")
	d := b.Draft
	if d.CleaningType != "" {
		fmt.Fprintf(&sb, "\n• Тип прибирання: %s", d.CleaningType.DisplayName())
	}
	if d.PropertyType != "" {
		fmt.Fprintf(&sb, "\n• Тип житла: %s", d.PropertyType.DisplayName())
	}
	if d.AreaM2 > 0 {
		fmt.Fprintf(&sb, "\n• Площа: %v м²", d.AreaM2)
	}
	if !d.Date.IsZero() {
		fmt.Fprintf(&sb, "\n• Дата: %s", dates.FormatUkrainian(d.Date))
	}
	if d.TimeSlot != "" {
		fmt.Fprintf(&sb, "\n• Час: %s", d.TimeSlot)
	}
	fmt.Fprintf(&sb, "\n• Адреса: %s", d.Address)

	return sb.String()
}

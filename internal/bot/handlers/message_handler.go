package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Maks2425/telegram-bot-book-meet/internal/conversation"
)

// NewMessageHandler returns the handler for non-command messages. Depending
// on the dialog state it consumes area or address input; outside the dialog
// any text brings the menu back up.
func NewMessageHandler(deps *HandlerDeps) HandlerFunc {
	return messageHandler{deps}.Handle
}

type messageHandler struct {
	deps *HandlerDeps
}

func (h messageHandler) Handle(ctx context.Context, update *models.Update) {
	log := h.deps.Logger.With("handler", "message")

	msg := update.Message
	if msg == nil || msg.From == nil {
		log.WarnContext(ctx, "Message handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := msg.Chat.ID
	state := h.deps.Sessions.State(chatID)

	if msg.Location != nil {
		if state == conversation.StateEnteringAddress {
			h.processLocation(ctx, msg)
		} else {
			h.send(ctx, chatID, "📍 Будь ласка, поділіться локацією після вибору часу бронювання.", nil)
		}
		return
	}

	switch state {
	case conversation.StateEnteringArea:
		h.processArea(ctx, msg)
	case conversation.StateEnteringAddress:
		h.processAddress(ctx, msg)
	default:
		sendMenu(ctx, h.deps, chatID)
	}
}

func (h messageHandler) processArea(ctx context.Context, msg *models.Message) {
	chatID := msg.Chat.ID

	area, err := strconv.ParseFloat(strings.TrimSpace(msg.Text), 64)
	if err != nil {
		h.send(ctx, chatID, "❌ Будь ласка, введіть коректне число (наприклад: 50 або 75.5):", nil)
		return
	}
	if area <= 0 {
		h.send(ctx, chatID, "❌ Площа повинна бути більше 0. Будь ласка, введіть коректне значення:", nil)
		return
	}

	draft := h.deps.Sessions.Draft(chatID)
	if draft.CleaningType == "" || draft.PropertyType == "" {
		h.deps.Logger.ErrorContext(ctx, "Dialog state lost cleaning or property type", "chat_id", chatID)
		h.send(ctx, chatID, "❌ Помилка: дані не збережені. Почніть спочатку.", nil)
		h.deps.Sessions.Clear(chatID)
		sendMenu(ctx, h.deps, chatID)
		return
	}

	quote, err := h.deps.Pricing.Quote(draft.CleaningType, draft.PropertyType, area)
	if err != nil {
		h.deps.Logger.ErrorContext(ctx, "Price calculation failed", "error", err, "chat_id", chatID)
		h.send(ctx, chatID, h.deps.Config.Messages.GeneralError, nil)
		h.deps.Sessions.Clear(chatID)
		sendMenu(ctx, h.deps, chatID)
		return
	}

	h.deps.Sessions.Update(chatID, func(d *conversation.Draft) {
		d.AreaM2 = area
	})
	// The collected answers stay around so the booking can reuse them.
	h.deps.Sessions.SetState(chatID, conversation.StateIdle)
	h.deps.Stats.QuoteCalculated()

	var sb strings.Builder
	fmt.Fprintf(&sb, "✅ Розрахунок завершено!\n\n")
	fmt.Fprintf(&sb, "📋 Тип прибирання: %s\n", draft.CleaningType.DisplayName())
	fmt.Fprintf(&sb, "🏠 Тип житла: %s\n", draft.PropertyType.DisplayName())
	fmt.Fprintf(&sb, "📐 Площа: %v м²\n\n", quote.AreaM2)
	if quote.DiscountPercent > 0 {
		fmt.Fprintf(&sb, "💵 Вартість до знижки: %v грн\n", quote.PriceBeforeDiscount)
		fmt.Fprintf(&sb, "🎁 Ваша знижка: %d%% (%v грн)\n\n", quote.DiscountPercent, quote.DiscountAmount)
	}
	fmt.Fprintf(&sb, "💰 Приблизна вартість прибирання вашої оселі дорівнює %v гривень.", quote.FinalPrice)

	h.send(ctx, chatID, sb.String(), bookCleaningKeyboard())

	h.deps.Logger.InfoContext(ctx, "Calculated price",
		"user_id", msg.From.ID,
		"cleaning_type", draft.CleaningType,
		"property_type", draft.PropertyType,
		"area_m2", area,
		"final_price", quote.FinalPrice,
	)
}

func (h messageHandler) processAddress(ctx context.Context, msg *models.Message) {
	chatID := msg.Chat.ID

	address := strings.TrimSpace(msg.Text)
	if len([]rune(address)) < 5 {
		h.send(ctx, chatID, "❌ Адреса занадто коротка. Будь ласка, введіть повну адресу:", nil)
		return
	}

	h.deps.Sessions.Update(chatID, func(d *conversation.Draft) {
		d.Address = address
	})
	h.send(ctx, chatID, "✅ Адресу збережено!\n\nОбробляю замовлення...", &models.ReplyKeyboardRemove{RemoveKeyboard: true})

	completeBooking(ctx, h.deps, msg)
}

func (h messageHandler) processLocation(ctx context.Context, msg *models.Message) {
	chatID := msg.Chat.ID
	address := fmt.Sprintf("📍 Координати: %.6f, %.6f", msg.Location.Latitude, msg.Location.Longitude)

	h.deps.Sessions.Update(chatID, func(d *conversation.Draft) {
		d.Address = address
	})
	text := fmt.Sprintf("✅ Локацію отримано!\n\n%s\n\nОбробляю замовлення...", address)
	h.send(ctx, chatID, text, &models.ReplyKeyboardRemove{RemoveKeyboard: true})

	completeBooking(ctx, h.deps, msg)
}

func (h messageHandler) send(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) {
	_, err := h.deps.TG.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: markup,
	})
	if err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID)
	}
}

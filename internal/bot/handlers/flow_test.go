package handlers_test

import (
	"context"
	"strings"
	"testing"

	"github.com/go-telegram/bot/models"

	"github.com/Maks2425/telegram-bot-book-meet/internal/bot/handlers"
	"github.com/Maks2425/telegram-bot-book-meet/internal/conversation"
	"github.com/Maks2425/telegram-bot-book-meet/internal/pricing"
)

func callbackUpdate(chatID, userID int64, data string) *models.Update {
	return &models.Update{
		CallbackQuery: &models.CallbackQuery{
			ID:   "cb-1",
			From: models.User{ID: userID, Username: "client"},
			Data: data,
			Message: models.MaybeInaccessibleMessage{
				Message: &models.Message{
					Date: 1,
					Chat: models.Chat{ID: chatID},
				},
			},
		},
	}
}

func TestFullBookingFlow(t *testing.T) {
	t.Parallel()

	deps, sender, notif := newTestDeps()
	onCallback := handlers.NewCallbackHandler(deps)
	onMessage := handlers.NewMessageHandler(deps)
	ctx := context.Background()
	const chatID, userID = int64(5), int64(7)

	// Price calculation: type, property, area.
	onCallback(ctx, callbackUpdate(chatID, userID, "calculate_price"))
	if got := deps.Sessions.State(chatID); got != conversation.StateSelectingCleaningType {
		t.Fatalf("state = %v, want StateSelectingCleaningType", got)
	}

	onCallback(ctx, callbackUpdate(chatID, userID, "cleaning_type:deep"))
	onCallback(ctx, callbackUpdate(chatID, userID, "property_type:apartment"))
	if got := deps.Sessions.State(chatID); got != conversation.StateEnteringArea {
		t.Fatalf("state = %v, want StateEnteringArea", got)
	}

	onMessage(ctx, messageUpdate(chatID, userID, "80"))
	quoteMsg := lastMessage(t, sender)
	if !strings.Contains(quoteMsg, "6080") {
		t.Errorf("quote message should contain the discounted price 6080:\n%s", quoteMsg)
	}

	// Booking: date, time, address.
	onCallback(ctx, callbackUpdate(chatID, userID, "book_cleaning"))
	if got := deps.Sessions.State(chatID); got != conversation.StateSelectingDate {
		t.Fatalf("state = %v, want StateSelectingDate", got)
	}

	onCallback(ctx, callbackUpdate(chatID, userID, "select_date:2026-09-01"))
	onCallback(ctx, callbackUpdate(chatID, userID, "select_time:10:00"))
	if got := deps.Sessions.State(chatID); got != conversation.StateEnteringAddress {
		t.Fatalf("state = %v, want StateEnteringAddress", got)
	}

	onMessage(ctx, messageUpdate(chatID, userID, "вул. Шевченка, 12"))

	confirmation := lastMessage(t, sender)
	if !strings.Contains(confirmation, "Бронювання підтверджено") {
		t.Errorf("missing booking confirmation:\n%s", confirmation)
	}

	if len(notif.bookings) != 1 {
		t.Fatalf("expected one operator notification, got %d", len(notif.bookings))
	}
	b := notif.bookings[0]
	if b.ClientID != userID {
		t.Errorf("notification ClientID = %d, want %d", b.ClientID, userID)
	}
	if b.Draft.CleaningType != pricing.CleaningDeep || b.Draft.TimeSlot != "10:00" {
		t.Errorf("notification draft = %+v", b.Draft)
	}
	if b.Draft.Date.Format("2006-01-02") != "2026-09-01" {
		t.Errorf("notification date = %v, want 2026-09-01", b.Draft.Date)
	}

	if got := deps.Sessions.State(chatID); got != conversation.StateIdle {
		t.Errorf("state after completion = %v, want StateIdle", got)
	}
	quotes, bookings := deps.Stats.Snapshot()
	if quotes != 1 || bookings != 1 {
		t.Errorf("stats = (%d quotes, %d bookings), want (1, 1)", quotes, bookings)
	}
}

func TestBookingWithSharedLocation(t *testing.T) {
	t.Parallel()

	deps, sender, notif := newTestDeps()
	onCallback := handlers.NewCallbackHandler(deps)
	onMessage := handlers.NewMessageHandler(deps)
	ctx := context.Background()
	const chatID, userID = int64(3), int64(3)

	onCallback(ctx, callbackUpdate(chatID, userID, "book_cleaning"))
	onCallback(ctx, callbackUpdate(chatID, userID, "select_date:2026-09-02"))
	onCallback(ctx, callbackUpdate(chatID, userID, "select_time:12:00"))

	update := messageUpdate(chatID, userID, "")
	update.Message.Location = &models.Location{Latitude: 50.450100, Longitude: 30.523400}
	onMessage(ctx, update)

	if len(notif.bookings) != 1 {
		t.Fatalf("expected one operator notification, got %d", len(notif.bookings))
	}
	if got := notif.bookings[0].Draft.Address; !strings.Contains(got, "50.450100") {
		t.Errorf("address should carry coordinates, got %q", got)
	}
	if msg := lastMessage(t, sender); !strings.Contains(msg, "Бронювання підтверджено") {
		t.Errorf("missing booking confirmation:\n%s", msg)
	}
}

func TestAreaInputValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantReply string
	}{
		{"not a number", "багато", "коректне число"},
		{"zero", "0", "більше 0"},
		{"negative", "-5", "більше 0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deps, sender, _ := newTestDeps()
			onCallback := handlers.NewCallbackHandler(deps)
			onMessage := handlers.NewMessageHandler(deps)
			ctx := context.Background()

			onCallback(ctx, callbackUpdate(1, 1, "calculate_price"))
			onCallback(ctx, callbackUpdate(1, 1, "cleaning_type:maintenance"))
			onCallback(ctx, callbackUpdate(1, 1, "property_type:house"))
			onMessage(ctx, messageUpdate(1, 1, tc.input))

			if msg := lastMessage(t, sender); !strings.Contains(msg, tc.wantReply) {
				t.Errorf("reply %q should contain %q", msg, tc.wantReply)
			}
			// The dialog stays on the same step so the user can retry.
			if got := deps.Sessions.State(1); got != conversation.StateEnteringArea {
				t.Errorf("state = %v, want StateEnteringArea", got)
			}
		})
	}
}

func TestUnknownCallbackActionReplies(t *testing.T) {
	t.Parallel()

	deps, sender, _ := newTestDeps()
	onCallback := handlers.NewCallbackHandler(deps)

	onCallback(context.Background(), callbackUpdate(1, 1, "do_something_weird"))

	if msg := lastMessage(t, sender); msg != deps.Config.Messages.UnknownAction {
		t.Errorf("reply = %q, want %q", msg, deps.Config.Messages.UnknownAction)
	}
}

func TestTimeSelectionWithoutDateRestartsDialog(t *testing.T) {
	t.Parallel()

	deps, sender, _ := newTestDeps()
	onCallback := handlers.NewCallbackHandler(deps)

	onCallback(context.Background(), callbackUpdate(1, 1, "select_time:10:00"))

	if msg := lastMessage(t, sender); !strings.Contains(msg, "дата не збережена") {
		t.Errorf("reply %q should ask to start over", msg)
	}
	if got := deps.Sessions.State(1); got != conversation.StateIdle {
		t.Errorf("state = %v, want StateIdle", got)
	}
}

func TestPlainTextOutsideDialogShowsMenu(t *testing.T) {
	t.Parallel()

	deps, sender, _ := newTestDeps()
	onMessage := handlers.NewMessageHandler(deps)

	onMessage(context.Background(), messageUpdate(1, 1, "привіт"))

	if msg := lastMessage(t, sender); msg != deps.Config.Messages.Welcome {
		t.Errorf("reply = %q, want the menu greeting", msg)
	}
}

func lastMessage(t *testing.T, sender *fakeSender) string {
	t.Helper()
	msgs := sender.messages()
	if len(msgs) == 0 {
		t.Fatal("no messages sent")
	}
	return msgs[len(msgs)-1].Text
}

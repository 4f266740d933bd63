package conversation_test

import (
	"sync"
	"testing"

	"github.com/Maks2425/telegram-bot-book-meet/internal/conversation"
	"github.com/Maks2425/telegram-bot-book-meet/internal/pricing"
)

func TestStoreLifecycle(t *testing.T) {
	t.Parallel()

	s := conversation.NewStore()
	const chatID = int64(42)

	if got := s.State(chatID); got != conversation.StateIdle {
		t.Fatalf("fresh chat state = %v, want StateIdle", got)
	}

	s.SetState(chatID, conversation.StateEnteringArea)
	if got := s.State(chatID); got != conversation.StateEnteringArea {
		t.Errorf("state = %v, want StateEnteringArea", got)
	}

	s.Update(chatID, func(d *conversation.Draft) {
		d.CleaningType = pricing.CleaningDeep
		d.AreaM2 = 75.5
	})
	draft := s.Draft(chatID)
	if draft.CleaningType != pricing.CleaningDeep || draft.AreaM2 != 75.5 {
		t.Errorf("draft = %+v, want deep cleaning of 75.5 m²", draft)
	}

	s.Clear(chatID)
	if got := s.State(chatID); got != conversation.StateIdle {
		t.Errorf("state after Clear = %v, want StateIdle", got)
	}
	if draft := s.Draft(chatID); draft != (conversation.Draft{}) {
		t.Errorf("draft after Clear = %+v, want zero value", draft)
	}
}

func TestStoreIsolatesChats(t *testing.T) {
	t.Parallel()

	s := conversation.NewStore()
	s.SetState(1, conversation.StateSelectingDate)
	s.Update(1, func(d *conversation.Draft) { d.Address = "вул. Хрещатик, 1" })

	if got := s.State(2); got != conversation.StateIdle {
		t.Errorf("chat 2 state = %v, want StateIdle", got)
	}
	if draft := s.Draft(2); draft.Address != "" {
		t.Errorf("chat 2 draft leaked address %q", draft.Address)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := conversation.NewStore()

	var wg sync.WaitGroup
	for i := range 50 {
		chatID := int64(i % 5)
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.SetState(chatID, conversation.StateEnteringAddress)
			s.Update(chatID, func(d *conversation.Draft) { d.AreaM2++ })
			_ = s.Draft(chatID)
			_ = s.State(chatID)
		}()
	}
	wg.Wait()

	for chatID := int64(0); chatID < 5; chatID++ {
		if got := s.Draft(chatID).AreaM2; got != 10 {
			t.Errorf("chat %d AreaM2 = %v, want 10", chatID, got)
		}
	}
}

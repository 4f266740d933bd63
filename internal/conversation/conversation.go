// Package conversation tracks the per-chat state of the booking dialog.
// State lives in process memory only and is dropped on restart; a chat
// restarts its dialog with /start.
package conversation

import (
	"sync"
	"time"

	"github.com/Maks2425/telegram-bot-book-meet/internal/pricing"
)

// State identifies the step a chat is currently at in the booking dialog.
type State int

const (
	StateIdle State = iota
	StateSelectingCleaningType
	StateSelectingPropertyType
	StateEnteringArea
	StateSelectingDate
	StateSelectingTime
	StateEnteringAddress
)

// Draft accumulates the answers collected so far for one chat.
type Draft struct {
	CleaningType pricing.CleaningType
	PropertyType pricing.PropertyType
	AreaM2       float64
	Date         time.Time
	TimeSlot     string
	Address      string
}

type session struct {
	state State
	draft Draft
}

// Store is a mutex-guarded in-memory session store keyed by chat ID.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*session
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*session)}
}

// State returns the current dialog state for a chat. Chats without a session
// are idle.
func (s *Store) State(chatID int64) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[chatID]; ok {
		return sess.state
	}
	return StateIdle
}

// SetState moves a chat to the given dialog state, creating the session if
// needed.
func (s *Store) SetState(chatID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(chatID).state = state
}

// Draft returns a copy of the chat's accumulated answers.
func (s *Store) Draft(chatID int64) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[chatID]; ok {
		return sess.draft
	}
	return Draft{}
}

// Update applies fn to the chat's draft under the store lock.
func (s *Store) Update(chatID int64, fn func(*Draft)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.get(chatID).draft)
}

// Clear removes all state for a chat.
func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

func (s *Store) get(chatID int64) *session {
	sess, ok := s.sessions[chatID]
	if !ok {
		sess = &session{}
		s.sessions[chatID] = sess
	}
	return sess
}

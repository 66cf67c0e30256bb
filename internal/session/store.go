// Package session tracks per-chat navigation state for the lifetime of the
// process. State is owned by one chat, replaced wholesale on navigation and
// never persisted.
package session

import (
	"sync"

	"github.com/fixturebot/fixturebot/internal/pkg/models"
)

// State is one chat's navigation context. The zero value is the top-level
// menu with nothing selected.
type State struct {
	Sport models.Sport
	// BasketLeague is only meaningful while Sport is basketball.
	BasketLeague *models.League
	// DateChoice is "today" or "tomorrow" once a date was picked.
	DateChoice string
	// Matches is the current result set, sorted ascending by start time.
	Matches []models.Match
	// Page indexes Matches in fixed-size windows; the renderer clamps it.
	Page int
}

// FindMatch looks up a match id in the current result set. A miss means the
// id belongs to a superseded list.
func (s State) FindMatch(id string) (models.Match, error) {
	for _, m := range s.Matches {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Match{}, &models.LookupError{Kind: "match", ID: id}
}

// Store holds the active sessions, keyed by chat id. Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]State
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]State)}
}

// Get returns the chat's state, or an empty one for new chats.
func (s *Store) Get(chatID int64) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[chatID]
}

// Put replaces the chat's state wholesale.
func (s *Store) Put(chatID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = state
}

// Reset drops the chat back to the empty top-level state.
func (s *Store) Reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

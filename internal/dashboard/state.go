package dashboard

import (
	"fmt"
	"strings"
	"sync"

	domainErrors "github.com/polkiloo/orderboard/internal/domain/errors"
)

// UIState is the per-admin dashboard state: committed filters and the selected row.
type UIState struct {
	Filters  Filters
	Selected string
}

// StateStore keeps UIState per admin in memory.
type StateStore struct {
	mu     sync.RWMutex
	states map[int64]*UIState
}

// NewStateStore constructs an empty StateStore.
func NewStateStore() *StateStore {
	return &StateStore{states: make(map[int64]*UIState)}
}

// Snapshot returns a copy of the admin's state.
func (s *StateStore) Snapshot(userID int64) UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.states[userID]
	if !ok {
		return UIState{Filters: Filters{}}
	}
	return UIState{Filters: st.Filters.Clone(), Selected: st.Selected}
}

// Search commits value as the filter for column. An empty value clears it.
func (s *StateStore) Search(userID int64, column, value string) error {
	if !IsSearchable(column) {
		return fmt.Errorf("%w: %q", domainErrors.ErrUnknownColumn, column)
	}
	value = strings.TrimSpace(value)

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.stateLocked(userID)
	if value == "" {
		delete(st.Filters, column)
		return nil
	}
	st.Filters[column] = value
	return nil
}

// Reset clears the filter for column.
func (s *StateStore) Reset(userID int64, column string) error {
	return s.Search(userID, column, "")
}

// Select records key as the selected row, replacing any earlier selection.
func (s *StateStore) Select(userID int64, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return domainErrors.ErrInvalidSelection
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stateLocked(userID).Selected = key
	return nil
}

// Forget drops all state for the admin.
func (s *StateStore) Forget(userID int64) {
	s.mu.Lock()
	delete(s.states, userID)
	s.mu.Unlock()
}

func (s *StateStore) stateLocked(userID int64) *UIState {
	st, ok := s.states[userID]
	if !ok {
		st = &UIState{Filters: Filters{}}
		s.states[userID] = st
	}
	return st
}

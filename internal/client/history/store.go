// Package history maintains the deduplicated lookup history: an ordered
// sequence of IP addresses where the first insertion fixes an entry's
// position and repeat lookups change nothing.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jcruzdev/ipnavigator/internal/client/state"
	"github.com/jcruzdev/ipnavigator/internal/common"
	"github.com/jcruzdev/ipnavigator/internal/logging"
)

// Store owns the durable history snapshot; no other component writes it.
// Every mutation persists the full resulting list before returning.
type Store struct {
	mu      sync.Mutex
	entries []string
	present map[string]struct{}
	repo    state.Repository
	logger  logging.Logger
}

// NewStore rehydrates the history from the last persisted snapshot. A missing
// or malformed snapshot falls back to an empty list; corrupted state is never
// fatal and never surfaced as an error.
func NewStore(ctx context.Context, repo state.Repository, logger logging.Logger) *Store {
	s := &Store{
		present: make(map[string]struct{}),
		repo:    repo,
		logger:  logger.With("module", "history"),
	}

	raw, err := repo.Get(ctx, common.HistoryStateKey)
	if err != nil {
		s.logger.Warn(ctx, "failed to read history snapshot, starting empty", "error", err.Error())
		return s
	}
	if raw == nil {
		return s
	}

	var entries []string
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.logger.Warn(ctx, "malformed history snapshot, starting empty", "error", err.Error())
		return s
	}

	// Defensive dedup: a hand-edited snapshot must not break the invariant.
	for _, ip := range entries {
		if _, ok := s.present[ip]; ok {
			continue
		}
		s.entries = append(s.entries, ip)
		s.present[ip] = struct{}{}
	}

	return s
}

// Add appends ip unless it is already present. Adding an existing value is a
// no-op: the entry keeps its original position. The updated list is persisted
// before Add returns.
func (s *Store) Add(ctx context.Context, ip string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.present[ip]; ok {
		return nil
	}

	s.entries = append(s.entries, ip)
	s.present[ip] = struct{}{}

	if err := s.persistLocked(ctx); err != nil {
		// roll back the in-memory change so memory and disk stay in step
		s.entries = s.entries[:len(s.entries)-1]
		delete(s.present, ip)
		return err
	}
	return nil
}

// List returns a copy of the history in insertion order.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports the number of history entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Remove drops every entry in selected, preserving the relative order of
// survivors, persists the result, and returns the updated list.
func (s *Store) Remove(ctx context.Context, selected map[string]struct{}) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(selected) == 0 {
		out := make([]string, len(s.entries))
		copy(out, s.entries)
		return out, nil
	}

	prevEntries := s.entries
	prevPresent := s.present

	survivors := make([]string, 0, len(s.entries))
	present := make(map[string]struct{}, len(s.entries))
	for _, ip := range s.entries {
		if _, drop := selected[ip]; drop {
			continue
		}
		survivors = append(survivors, ip)
		present[ip] = struct{}{}
	}

	s.entries = survivors
	s.present = present

	if err := s.persistLocked(ctx); err != nil {
		s.entries = prevEntries
		s.present = prevPresent
		return nil, err
	}

	out := make([]string, len(survivors))
	copy(out, survivors)
	return out, nil
}

func (s *Store) persistLocked(ctx context.Context) error {
	entries := s.entries
	if entries == nil {
		entries = []string{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshalling history: %w", err)
	}
	if err := s.repo.Set(ctx, common.HistoryStateKey, raw); err != nil {
		return fmt.Errorf("persisting history: %w", err)
	}
	return nil
}

// Package session owns the persisted client session: the JSON of the last
// successful login response, stored under the "user" state key. Its presence
// gates the authenticated surface of the CLI; clearing it ends the session.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jcruzdev/ipnavigator/internal/client/api"
	"github.com/jcruzdev/ipnavigator/internal/client/state"
	"github.com/jcruzdev/ipnavigator/internal/common"
	"github.com/jcruzdev/ipnavigator/internal/logging"
)

type Store struct {
	repo   state.Repository
	logger logging.Logger
}

func NewStore(repo state.Repository, logger logging.Logger) *Store {
	return &Store{repo: repo, logger: logger.With("module", "session")}
}

// Save persists the login response, entering the authenticated session.
func (s *Store) Save(ctx context.Context, result *api.LoginResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshalling session: %w", err)
	}
	if err := s.repo.Set(ctx, common.SessionStateKey, raw); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	return nil
}

// Load returns the stored session, or ok=false when no session exists. A
// malformed blob counts as absent: the user simply has to log in again,
// corrupted state is never an error.
func (s *Store) Load(ctx context.Context) (*api.LoginResult, bool) {
	raw, err := s.repo.Get(ctx, common.SessionStateKey)
	if err != nil {
		s.logger.Warn(ctx, "failed to read session, treating as logged out", "error", err.Error())
		return nil, false
	}
	if raw == nil {
		return nil, false
	}

	result := &api.LoginResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		s.logger.Warn(ctx, "malformed session, treating as logged out", "error", err.Error())
		return nil, false
	}
	if result.Token == "" {
		s.logger.Warn(ctx, "session without token, treating as logged out")
		return nil, false
	}
	return result, true
}

// Clear discards the stored session, ending it. The token is simply
// forgotten; the server holds no session state to revoke.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, common.SessionStateKey)
}

// Package session persists the signed-in user between runs as one JSON
// snapshot under a fixed storage key.
//
// Persistence is best effort: Load, Save and Clear never return errors.
// Failures are logged and Load reports them as "no session".
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dmitrijs2005/myauthapp/internal/client/models"
	"github.com/dmitrijs2005/myauthapp/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/myauthapp/internal/logging"
)

// StorageKey is the only key the store reads or writes.
const StorageKey = "@auth_user"

type Store struct {
	repo    metadata.Repository
	log     logging.Logger
	timeout time.Duration
}

// NewStore returns a Store over repo. Every storage call is bounded by
// timeout; a non-positive timeout leaves the caller's context as is.
func NewStore(repo metadata.Repository, log logging.Logger, timeout time.Duration) *Store {
	return &Store{repo: repo, log: log.With("key", StorageKey), timeout: timeout}
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Load returns the stored user, or nil when nothing usable is stored.
func (s *Store) Load(ctx context.Context) *models.User {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, found, err := s.repo.GetItem(ctx, StorageKey)
	if err != nil {
		s.log.Error(ctx, "error loading auth state", "err", err)
		return nil
	}
	if !found || raw == "" {
		return nil
	}

	var user *models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Error(ctx, "error loading auth state", "err", err)
		return nil
	}
	return user
}

// Save overwrites the stored snapshot with user.
func (s *Store) Save(ctx context.Context, user models.User) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	data, err := json.Marshal(user)
	if err != nil {
		s.log.Error(ctx, "error saving auth state", "err", err)
		return
	}
	if err := s.repo.SetItem(ctx, StorageKey, string(data)); err != nil {
		s.log.Error(ctx, "error saving auth state", "err", err)
		return
	}
	s.log.Debug(ctx, "auth state saved")
}

// Clear removes the stored snapshot.
func (s *Store) Clear(ctx context.Context) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.RemoveItem(ctx, StorageKey); err != nil {
		s.log.Error(ctx, "error clearing auth state", "err", err)
		return
	}
	s.log.Debug(ctx, "auth state cleared")
}

// Package session holds the per-run context shared by the menu state
// machine and the process lifecycle: the store, its storage, the console,
// and a logger tagged with the session ID.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/stockroom/internal/console"
	"github.com/mesh-intelligence/stockroom/internal/inventory"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Session is owned by the entry point and passed to everything that needs
// the store or the terminal. There is one Session per process run.
type Session struct {
	ID      uuid.UUID
	Store   *inventory.Store
	Storage types.Storage
	Console *console.Console
	Log     zerolog.Logger

	persistOnce sync.Once
	persistErr  error
}

// New creates a session with a fresh UUID v7 identifier. The logger is
// tagged with the session ID.
func New(store *inventory.Store, storage types.Storage, con *console.Console, log zerolog.Logger) (*Session, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:      id,
		Store:   store,
		Storage: storage,
		Console: con,
		Log:     log.With().Str("session", id.String()).Logger(),
	}, nil
}

// Persist saves the store to storage. The save runs at most once per
// session; later calls return the first call's result. Both the exit menu
// and the shutdown signal hook call Persist.
func (s *Session) Persist() error {
	s.persistOnce.Do(func() {
		s.persistErr = s.Store.Save(s.Storage)
		if s.persistErr != nil {
			s.Log.Error().Err(s.persistErr).Msg("saving inventory failed")
		}
	})
	return s.persistErr
}

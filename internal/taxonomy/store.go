package taxonomy

import (
	"log/slog"
	"sync/atomic"
)

// Loader builds a fresh Tables snapshot.
type Loader func() (*Tables, error)

// Store holds the current Tables snapshot. Readers call Load and keep the
// snapshot for the duration of one compilation; Reload swaps in a new
// snapshot atomically and leaves the old one untouched for readers still
// holding it.
type Store struct {
	cur    atomic.Pointer[Tables]
	load   Loader
	logger *slog.Logger
}

// NewStore loads the initial snapshot. It fails if the loader fails.
func NewStore(load Loader, logger *slog.Logger) (*Store, error) {
	t, err := load()
	if err != nil {
		return nil, err
	}
	s := &Store{load: load, logger: logger}
	s.cur.Store(t)
	return s, nil
}

// NewStaticStore wraps an already built snapshot. Reload keeps returning it.
func NewStaticStore(t *Tables) *Store {
	s := &Store{
		load:   func() (*Tables, error) { return t, nil },
		logger: slog.New(slog.DiscardHandler),
	}
	s.cur.Store(t)
	return s
}

// Load returns the current snapshot.
func (s *Store) Load() *Tables {
	return s.cur.Load()
}

// Reload rebuilds the tables and swaps them in. On error the current
// snapshot stays in place.
func (s *Store) Reload() (*Tables, error) {
	t, err := s.load()
	if err != nil {
		s.logger.Error("taxonomy reload failed", slog.Any("error", err))
		return s.cur.Load(), err
	}
	prev := s.cur.Swap(t)
	s.logger.Info("taxonomy reloaded",
		slog.String("previous", prev.Version()),
		slog.String("version", t.Version()))
	return t, nil
}

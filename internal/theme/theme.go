// Package theme manages the light/dark colour preference.
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/folio/internal/logger"
)

// Theme is a colour scheme.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"

	// Default applies when nothing has been saved.
	Default = Dark

	// DefaultClient keys the preference when the caller has no identity.
	DefaultClient = "default"
)

var ErrInvalidTheme = errors.New("invalid theme")

// Parse validates a theme name.
func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Dark, Light:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }

// Store persists one theme per client.
// LoadTheme returns ok=false when nothing has been saved.
type Store interface {
	LoadTheme(ctx context.Context, client string) (t Theme, ok bool, err error)
	SaveTheme(ctx context.Context, client string, t Theme) error
}

// Preferences reads and flips the saved theme.
type Preferences struct {
	store  Store
	logger logger.Logger
}

// NewPreferences creates a preference manager backed by store
func NewPreferences(store Store, log logger.Logger) *Preferences {
	return &Preferences{store: store, logger: log}
}

// Current returns the saved theme, or Default when none is saved or
// the store cannot be read.
func (p *Preferences) Current(ctx context.Context, client string) Theme {
	t, ok, err := p.store.LoadTheme(ctx, client)
	if err != nil {
		p.logger.Warn("failed to load theme, using default",
			logger.String("client", client),
			logger.Error(err))
		return Default
	}
	if !ok {
		return Default
	}
	return t
}

// Set saves t for client.
func (p *Preferences) Set(ctx context.Context, client string, t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}
	if err := p.store.SaveTheme(ctx, client, t); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// Toggle flips the client's theme and persists the result.
func (p *Preferences) Toggle(ctx context.Context, client string) (Theme, error) {
	next := p.Current(ctx, client).Toggle()
	if err := p.Set(ctx, client, next); err != nil {
		return next, err
	}
	return next, nil
}

// MemoryStore keeps themes in process memory. Entries remember when
// they were last read or written so idle clients can be swept.
type MemoryStore struct {
	mu     sync.Mutex
	themes map[string]memoryEntry
	now    func() time.Time
}

type memoryEntry struct {
	theme    Theme
	lastSeen time.Time
}

// NewMemoryStore creates an empty in-memory theme store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{themes: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryStore) LoadTheme(_ context.Context, client string) (Theme, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.themes[client]
	if !ok {
		return "", false, nil
	}
	e.lastSeen = s.now()
	s.themes[client] = e
	return e.theme, true, nil
}

func (s *MemoryStore) SaveTheme(_ context.Context, client string, t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.themes[client] = memoryEntry{theme: t, lastSeen: s.now()}
	return nil
}

// Sweep drops the entries not seen since cutoff and returns how many
// were removed.
func (s *MemoryStore) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for client, e := range s.themes {
		if e.lastSeen.Before(cutoff) {
			delete(s.themes, client)
			removed++
		}
	}
	return removed
}

// Len returns the number of clients with a saved theme.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.themes)
}

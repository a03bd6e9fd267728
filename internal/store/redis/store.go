package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/folio/internal/theme"
)

var _ theme.Store = (*Store)(nil)

// Store handles Redis persistence of theme preferences
type Store struct {
	client *redis.Client
	ttl    time.Duration // idle expiry, refreshed on every read (0 = keep forever)
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// LoadTheme retrieves a client's saved theme
func (s *Store) LoadTheme(ctx context.Context, client string) (theme.Theme, bool, error) {
	var cmd *redis.StringCmd
	if s.ttl > 0 {
		cmd = s.client.GetEx(ctx, ThemeKey(client), s.ttl)
	} else {
		cmd = s.client.Get(ctx, ThemeKey(client))
	}

	val, err := cmd.Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get theme: %w", err)
	}

	t, err := theme.Parse(val)
	if err != nil {
		// stale or hand-edited value; treat as unset
		return "", false, nil
	}
	return t, true, nil
}

// SaveTheme stores a client's theme
func (s *Store) SaveTheme(ctx context.Context, client string, t theme.Theme) error {
	if err := s.client.Set(ctx, ThemeKey(client), string(t), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

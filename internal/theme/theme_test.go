package theme

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MrSnakeDoc/folio/internal/logger"
)

type failingStore struct{}

func (failingStore) LoadTheme(context.Context, string) (Theme, bool, error) {
	return "", false, errors.New("down")
}

func (failingStore) SaveTheme(context.Context, string, Theme) error {
	return errors.New("down")
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Theme
		wantErr bool
	}{
		{"dark", Dark, false},
		{"light", Light, false},
		{"Dark", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidTheme) {
				t.Errorf("error should wrap ErrInvalidTheme")
			}
			if got != tt.want {
				t.Errorf("Parse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreferences_DefaultAndToggle(t *testing.T) {
	ctx := context.Background()
	prefs := NewPreferences(NewMemoryStore(), logger.New("error", false))

	if got := prefs.Current(ctx, DefaultClient); got != Dark {
		t.Errorf("Current() = %q, want dark when nothing saved", got)
	}

	got, err := prefs.Toggle(ctx, DefaultClient)
	if err != nil || got != Light {
		t.Fatalf("Toggle() = %q, %v, want light", got, err)
	}
	if got := prefs.Current(ctx, DefaultClient); got != Light {
		t.Errorf("Current() = %q, want persisted light", got)
	}

	got, _ = prefs.Toggle(ctx, DefaultClient)
	if got != Dark {
		t.Errorf("second Toggle() = %q, want dark", got)
	}

	if got := prefs.Current(ctx, "other"); got != Dark {
		t.Errorf("clients must not share preferences, got %q", got)
	}
}

func TestPreferences_StoreFailure(t *testing.T) {
	ctx := context.Background()
	prefs := NewPreferences(failingStore{}, logger.New("error", false))

	if got := prefs.Current(ctx, DefaultClient); got != Default {
		t.Errorf("Current() = %q, want default on store failure", got)
	}
	if _, err := prefs.Toggle(ctx, DefaultClient); err == nil {
		t.Error("Toggle() should report save failure")
	}
}

func TestPreferences_SetRejectsInvalid(t *testing.T) {
	prefs := NewPreferences(NewMemoryStore(), logger.New("error", false))

	if err := prefs.Set(context.Background(), DefaultClient, "blue"); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("Set() error = %v, want ErrInvalidTheme", err)
	}
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s := NewMemoryStore()
	s.now = func() time.Time { return now }
	_ = s.SaveTheme(ctx, "old", Light)

	now = now.Add(48 * time.Hour)
	_ = s.SaveTheme(ctx, "fresh", Light)

	if removed := s.Sweep(now.Add(-24 * time.Hour)); removed != 1 {
		t.Fatalf("Sweep() removed %d, want 1", removed)
	}
	if _, ok, _ := s.LoadTheme(ctx, "old"); ok {
		t.Error("idle client should have been swept")
	}
	if got, ok, _ := s.LoadTheme(ctx, "fresh"); !ok || got != Light {
		t.Errorf("fresh client = %q, %v", got, ok)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestMemoryStore_LoadRefreshesLastSeen(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s := NewMemoryStore()
	s.now = func() time.Time { return now }
	_ = s.SaveTheme(ctx, "reader", Dark)

	now = now.Add(10 * time.Hour)
	_, _, _ = s.LoadTheme(ctx, "reader")

	if removed := s.Sweep(now.Add(-time.Hour)); removed != 0 {
		t.Errorf("recently read client swept, removed = %d", removed)
	}
}

package theme

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	// PreferenceKey is the single persisted key holding "light" or "dark".
	PreferenceKey = "theme"
)

func Parse(value string) (Theme, bool) {
	switch Theme(value) {
	case Light, Dark:
		return Theme(value), true
	default:
		return "", false
	}
}

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Glyph is the label of the toggle control: it shows the theme a click switches to.
func Glyph(t Theme) string {
	if t == Dark {
		return "☀️"
	}
	return "🌙"
}

// FromOS derives a theme from the operating system color-scheme preference.
func FromOS(prefersDark bool) Theme {
	if prefersDark {
		return Dark
	}
	return Light
}

type PreferenceStore interface {
	GetPreference(ctx context.Context, name string) (string, bool, error)
	SavePreference(ctx context.Context, name, value string) error
}

// Settings holds the process-wide theme. Until a theme is persisted, the current
// theme follows the caller's OS preference.
type Settings struct {
	store     PreferenceStore
	mu        sync.RWMutex
	persisted Theme
}

func NewSettings(store PreferenceStore) *Settings {
	return &Settings{store: store}
}

// Init loads the persisted preference, if any.
func (s *Settings) Init(ctx context.Context) error {
	value, found, err := s.store.GetPreference(ctx, PreferenceKey)
	if err != nil {
		return fmt.Errorf("failed to load theme preference: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.persisted = ""
	if !found {
		return nil
	}

	t, ok := Parse(value)
	if !ok {
		log.Warn().Str("value", value).Msg("ignoring invalid persisted theme")
		return nil
	}
	s.persisted = t

	return nil
}

func (s *Settings) Current(osPrefersDark bool) Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.persisted != "" {
		return s.persisted
	}
	return FromOS(osPrefersDark)
}

// Set persists t and makes it the current theme. On error nothing changes.
func (s *Settings) Set(ctx context.Context, t Theme) error {
	if _, ok := Parse(string(t)); !ok {
		return fmt.Errorf("invalid theme %q", t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SavePreference(ctx, PreferenceKey, string(t)); err != nil {
		return fmt.Errorf("failed to persist theme preference: %w", err)
	}
	s.persisted = t

	return nil
}

// Toggle flips the current theme and persists it. Concurrent toggles are serialized
// so none of them is lost.
func (s *Settings) Toggle(ctx context.Context, osPrefersDark bool) (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.persisted
	if current == "" {
		current = FromOS(osPrefersDark)
	}
	next := current.Toggle()

	if err := s.store.SavePreference(ctx, PreferenceKey, string(next)); err != nil {
		return current, fmt.Errorf("failed to persist theme preference: %w", err)
	}
	s.persisted = next

	return next, nil
}

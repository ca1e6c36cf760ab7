// Package settings holds the client's process-wide preferences. They are
// loaded once at startup and written back on every change.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type Theme string

const (
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
	ThemeSystem Theme = "system"
)

var (
	ErrUnknownKey   = errors.New("unknown settings key")
	ErrInvalidValue = errors.New("invalid settings value")
)

type Settings struct {
	Theme                 Theme  `yaml:"theme" json:"theme"`
	OfflineMode           bool   `yaml:"offlineMode" json:"offlineMode"`
	HighContrast          bool   `yaml:"highContrast" json:"highContrast"`
	LargeText             bool   `yaml:"largeText" json:"largeText"`
	ScreenReaderOptimized bool   `yaml:"screenReaderOptimized" json:"screenReaderOptimized"`
	RemoteURL             string `yaml:"remoteURL,omitempty" json:"remoteURL,omitempty"`
}

func Defaults(remoteURL string) Settings {
	return Settings{
		Theme:       ThemeDark,
		OfflineMode: true,
		RemoteURL:   remoteURL,
	}
}

func (settings Settings) validate() error {
	switch settings.Theme {
	case ThemeDark, ThemeLight, ThemeSystem:
		return nil
	default:
		return fmt.Errorf("%w: theme must be dark, light or system, got %q", ErrInvalidValue, settings.Theme)
	}
}

type Store struct {
	path     string
	defaults Settings

	mu      sync.RWMutex
	current Settings
	// pinnedURL is true once remoteURL came from the file or from Set. Until
	// then the default from the environment is used and never written back.
	pinnedURL bool
}

// Load reads path over defaults. A missing file yields the defaults without
// creating it.
func Load(path string, defaults Settings) (*Store, error) {
	store := &Store{path: path, defaults: defaults, current: defaults}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	loaded := defaults
	loaded.RemoteURL = ""
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if strings.TrimSpace(loaded.RemoteURL) == "" {
		loaded.RemoteURL = defaults.RemoteURL
	} else {
		store.pinnedURL = true
	}
	if err := loaded.validate(); err != nil {
		return nil, err
	}
	store.current = loaded
	return store, nil
}

func (store *Store) Get() Settings {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.current
}

func (store *Store) OfflineMode() bool {
	return store.Get().OfflineMode
}

func (store *Store) RemoteURL() string {
	return store.Get().RemoteURL
}

// Set parses value for key and persists the result.
func (store *Store) Set(key string, value string) (Settings, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	next := store.current
	if err := assign(&next, key, value); err != nil {
		return Settings{}, err
	}
	if err := next.validate(); err != nil {
		return Settings{}, err
	}
	pinned := store.pinnedURL || strings.EqualFold(strings.TrimSpace(key), "remoteURL")
	if err := store.save(next, pinned); err != nil {
		return Settings{}, err
	}
	store.current = next
	store.pinnedURL = pinned
	return next, nil
}

func (store *Store) Reset() (Settings, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.save(store.defaults, false); err != nil {
		return Settings{}, err
	}
	store.current = store.defaults
	store.pinnedURL = false
	return store.current, nil
}

func (store *Store) save(settings Settings, pinnedURL bool) error {
	if !pinnedURL {
		settings.RemoteURL = ""
	}
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	payload, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tmp := store.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, store.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}

var boolKeys = map[string]func(*Settings) *bool{
	"offlinemode":           func(s *Settings) *bool { return &s.OfflineMode },
	"highcontrast":          func(s *Settings) *bool { return &s.HighContrast },
	"largetext":             func(s *Settings) *bool { return &s.LargeText },
	"screenreaderoptimized": func(s *Settings) *bool { return &s.ScreenReaderOptimized },
}

// Keys lists the names accepted by Set.
func Keys() []string {
	keys := []string{"theme", "remoteURL", "offlineMode", "highContrast", "largeText", "screenReaderOptimized"}
	sort.Strings(keys)
	return keys
}

func assign(settings *Settings, key string, value string) error {
	value = strings.TrimSpace(value)
	normalized := strings.ToLower(strings.TrimSpace(key))

	if field, ok := boolKeys[normalized]; ok {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", ErrInvalidValue, key, value)
		}
		*field(settings) = parsed
		return nil
	}

	switch normalized {
	case "theme":
		settings.Theme = Theme(strings.ToLower(value))
	case "remoteurl":
		if value == "" {
			return fmt.Errorf("%w: remoteURL must not be empty", ErrInvalidValue)
		}
		settings.RemoteURL = strings.TrimRight(value, "/")
	default:
		return fmt.Errorf("%w: %q (known keys: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	return nil
}

// Package config implements the process-wide application settings.
//
// Settings are read-mostly: every pipeline reads them, only the
// configure workflow writes them. Writes are pushed to subscribers so
// that independently running pipelines observe changes without
// polling.
package config

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/spf13/viper"
)

// DateStyle selects how transaction dates are rendered.
type DateStyle string

const (
	DateStyleAbsolute DateStyle = "absolute"
	DateStyleRelative DateStyle = "relative"
)

// Settings is one immutable snapshot of the application settings.
type Settings struct {
	Token     string    `mapstructure:"token"`
	BaseURL   string    `mapstructure:"base_url"`
	DateStyle DateStyle `mapstructure:"date_style"`
}

// Store holds the current settings and notifies subscribers on writes.
type Store struct {
	mu          sync.RWMutex
	settings    Settings
	subscribers map[int]func(Settings)
	nextID      int
}

// NewStore returns a Store holding the given settings.
func NewStore(settings Settings) *Store {
	if settings.BaseURL == "" {
		settings.BaseURL = DefaultBaseURL
	}
	if settings.DateStyle == "" {
		settings.DateStyle = DateStyleAbsolute
	}

	return &Store{
		settings:    settings,
		subscribers: map[int]func(Settings){},
	}
}

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.up.com.au/api/v1"

// Load reads settings from the configuration file and environment.
//
// The environment variables PROVENANCE_TOKEN, PROVENANCE_BASE_URL and
// PROVENANCE_DATE_STYLE override values from the file. A missing
// configuration file is not an error, all values have defaults.
func Load(configPath string) (*Store, error) {
	v := viper.New()
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("date_style", string(DateStyleAbsolute))

	v.SetEnvPrefix("provenance")
	v.AutomaticEnv()
	// AutomaticEnv alone does not surface env-only keys through Unmarshal
	for _, key := range []string{"token", "base_url", "date_style"} {
		_ = v.BindEnv(key)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	return NewStore(settings), nil
}

// Get returns the current settings snapshot.
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Token returns the configured bearer token.
func (s *Store) Token() string {
	return s.Get().Token
}

// SetToken updates the bearer token and notifies subscribers.
func (s *Store) SetToken(token string) {
	s.update(func(settings *Settings) { settings.Token = token })
}

// SetBaseURL updates the API base URL and notifies subscribers.
func (s *Store) SetBaseURL(baseURL string) {
	s.update(func(settings *Settings) { settings.BaseURL = baseURL })
}

// SetDateStyle updates the date display style and notifies subscribers.
func (s *Store) SetDateStyle(style DateStyle) {
	s.update(func(settings *Settings) { settings.DateStyle = style })
}

func (s *Store) update(mutate func(*Settings)) {
	s.mu.Lock()
	mutate(&s.settings)
	settings := s.settings
	subscribers := make([]func(Settings), 0, len(s.subscribers))
	for _, subscriber := range s.subscribers {
		subscribers = append(subscribers, subscriber)
	}
	s.mu.Unlock()

	for _, subscriber := range subscribers {
		subscriber(settings)
	}
}

// Subscribe registers a callback invoked on every settings write. The
// returned function removes the subscription and must be called when
// the subscriber is torn down.
func (s *Store) Subscribe(fn func(Settings)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/themuzzleflare/provenance/internal/config"
)

func TestDefaults(t *testing.T) {
	store := config.NewStore(config.Settings{})

	settings := store.Get()
	assert.Equal(t, config.DefaultBaseURL, settings.BaseURL)
	assert.Equal(t, config.DateStyleAbsolute, settings.DateStyle)
	assert.Empty(t, settings.Token)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("token = \"up:yeah:abc\"\ndate_style = \"relative\"\n"), 0o600))

	store, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "up:yeah:abc", store.Token())
	assert.Equal(t, config.DateStyleRelative, store.Get().DateStyle)
	assert.Equal(t, config.DefaultBaseURL, store.Get().BaseURL)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	store, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Empty(t, store.Token())
}

func TestWritesNotifySubscribers(t *testing.T) {
	store := config.NewStore(config.Settings{})

	var observed []config.Settings
	unsubscribe := store.Subscribe(func(s config.Settings) {
		observed = append(observed, s)
	})

	store.SetToken("up:yeah:abc")
	store.SetDateStyle(config.DateStyleRelative)

	require.Len(t, observed, 2)
	assert.Equal(t, "up:yeah:abc", observed[0].Token)
	assert.Equal(t, config.DateStyleRelative, observed[1].DateStyle)

	unsubscribe()
	store.SetToken("up:yeah:def")
	assert.Len(t, observed, 2, "unsubscribed callbacks see no further writes")

	assert.Equal(t, "up:yeah:def", store.Token())
}

func TestMultipleSubscribers(t *testing.T) {
	store := config.NewStore(config.Settings{})

	first, second := 0, 0
	store.Subscribe(func(config.Settings) { first++ })
	store.Subscribe(func(config.Settings) { second++ })

	store.SetToken("t")

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

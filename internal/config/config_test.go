package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"wkp/internal/core/apiclient/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, api.SimpleWikipedia, cfg.Subdomain)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRedirects)
	assert.NotEmpty(t, cfg.UserAgent)
	assert.False(t, cfg.Whole)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"titles", func(c *Config) { c.Titles = []string{"Go"} }, false},
		{"titles file", func(c *Config) { c.TitlesFile = "list.txt" }, false},
		{"nothing to fetch", func(c *Config) {}, true},
		{"zero timeout", func(c *Config) { c.Titles = []string{"Go"}; c.Timeout = 0 }, true},
		{"negative redirects", func(c *Config) { c.Titles = []string{"Go"}; c.MaxRedirects = -1 }, true},
		{"host with path", func(c *Config) { c.Titles = []string{"Go"}; c.Host = "de.wikipedia.org/w" }, true},
		{"host with port", func(c *Config) { c.Titles = []string{"Go"}; c.Host = "localhost:8443" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveTitles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.txt")
	require.NoError(t, os.WriteFile(path, []byte("Anesthetic\n# comment\nPet door\n"), 0o644))

	cfg := Default()
	cfg.Titles = []string{"Pet Door"}
	cfg.TitlesFile = path

	titles, err := cfg.ResolveTitles()
	require.NoError(t, err)
	assert.Equal(t, []string{"Pet Door", "Anesthetic", "Pet door"}, titles)
}

func TestResolveTitlesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n# only comments\n"), 0o644))

	cfg := Default()
	cfg.TitlesFile = path
	_, err := cfg.ResolveTitles()
	assert.ErrorIs(t, err, ErrNoTitles)
}

func TestResolveTitlesMissingFile(t *testing.T) {
	cfg := Default()
	cfg.TitlesFile = filepath.Join(t.TempDir(), "absent.txt")
	_, err := cfg.ResolveTitles()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

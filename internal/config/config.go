package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wkp/internal/core/apiclient/api"
	"wkp/internal/core/apiclient/rawdatafetcher"
	"wkp/internal/utils/file"
)

var ErrNoTitles = errors.New("no titles given: use --titles or --titles-file")

// Config is filled from command-line flags only.
type Config struct {
	Titles     []string
	TitlesFile string
	Subdomain  api.Subdomain
	Host       string // overrides the subdomain host when set
	Whole      bool

	Timeout      time.Duration
	MaxRedirects int
	UserAgent    string

	NoColor bool
	Verbose bool
}

func Default() *Config {
	return &Config{
		Subdomain:    api.SimpleWikipedia,
		Timeout:      rawdatafetcher.DefaultTimeout,
		MaxRedirects: rawdatafetcher.DefaultMaxRedirects,
		UserAgent:    rawdatafetcher.DefaultUserAgent,
	}
}

func (c *Config) Validate() error {
	if len(c.Titles) == 0 && c.TitlesFile == "" {
		return ErrNoTitles
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxRedirects < 0 {
		return fmt.Errorf("max-redirects must not be negative, got %d", c.MaxRedirects)
	}
	if strings.ContainsAny(c.Host, "/?#") {
		return fmt.Errorf("host %q must be a bare host name", c.Host)
	}
	return nil
}

// ResolveTitles returns the flag titles followed by those read from TitlesFile.
func (c *Config) ResolveTitles() ([]string, error) {
	titles := make([]string, 0, len(c.Titles))
	titles = append(titles, c.Titles...)

	if c.TitlesFile != "" {
		fromFile, err := file.ReadTextFile(c.TitlesFile)
		if err != nil {
			return nil, err
		}
		titles = append(titles, fromFile...)
	}

	if len(titles) == 0 {
		return nil, ErrNoTitles
	}
	return titles, nil
}

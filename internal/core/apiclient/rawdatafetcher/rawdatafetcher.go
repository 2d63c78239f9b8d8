package rawdatafetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	DefaultUserAgent    = "wkp/1.0 (command-line extract viewer)"
	DefaultTimeout      = 15 * time.Second
	DefaultMaxRedirects = 3
)

var ErrTooManyRedirects = errors.New("too many redirects")

type RawDataFetcher struct {
	httpClient *http.Client
	userAgent  string
}

type Option func(*RawDataFetcher)

// WithHTTPClient replaces the whole client; timeout and redirect options are then ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(r *RawDataFetcher) {
		r.httpClient = c
	}
}

func WithUserAgent(ua string) Option {
	return func(r *RawDataFetcher) {
		if ua != "" {
			r.userAgent = ua
		}
	}
}

func NewRawDataFetcher(timeout time.Duration, maxRedirects int, opts ...Option) *RawDataFetcher {
	r := &RawDataFetcher{userAgent: DefaultUserAgent}
	r.httpClient = &http.Client{
		Timeout: timeout, // Prevent hanging requests
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return ErrTooManyRedirects
			}
			return nil
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetRawData issues one GET. The caller closes the body.
func (r *RawDataFetcher) GetRawData(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("[RawDataFetcher] failed to create request: %w", err)
	}

	// Wikimedia rejects requests without a descriptive User-Agent
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	return res, nil
}

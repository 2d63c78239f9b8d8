package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"wkp/internal/model"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
)

// titleSeparator is the URL-encoded "|" MediaWiki uses between titles.
const titleSeparator = "%7C"

type Fetcher interface {
	GetRawData(ctx context.Context, url string) (*http.Response, error)
}

type APIClient struct {
	fetcher Fetcher
	log     zerolog.Logger
}

func NewAPIClient(fetcher Fetcher, log zerolog.Logger) *APIClient {
	return &APIClient{
		fetcher: fetcher,
		log:     log.With().Str("component", "APIClient").Logger(),
	}
}

// RequestURL appends the normalized titles to baseURL and returns the titles it used.
func RequestURL(baseURL string, titles []model.Title) (string, []string) {
	names := make([]string, 0, len(titles))
	escaped := make([]string, 0, len(titles))
	for _, t := range titles {
		if !t.IsNormalized() {
			t = t.Normalize()
		}
		names = append(names, t.String())
		escaped = append(escaped, url.QueryEscape(t.String()))
	}
	return baseURL + "&titles=" + strings.Join(escaped, titleSeparator), names
}

// Get fetches the pages for titles with a single GET against baseURL, which already
// carries every query parameter except titles. Failures are never retried.
func (a *APIClient) Get(ctx context.Context, baseURL string, titles []model.Title) (*model.WikiResponse, error) {
	if len(titles) == 0 {
		return nil, ErrNoTitles
	}

	requestURL, names := RequestURL(baseURL, titles)
	fail := func(kind Kind, err error) error {
		a.log.Debug().Str("kind", kind.String()).Err(err).Msg("request failed")
		return &WikiError{Kind: kind, Titles: names, Err: err}
	}

	a.log.Debug().Str("url", requestURL).Strs("titles", names).Msg("querying")
	res, err := a.fetcher.GetRawData(ctx, requestURL)
	if err != nil {
		return nil, fail(classifyTransport(err), err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fail(KindResponse, &StatusError{StatusCode: res.StatusCode, Status: res.Status})
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fail(KindResponse, fmt.Errorf("read response body failed: %w", err))
	}

	var result model.WikiResponse
	if err := sonic.Unmarshal(body, &result); err != nil {
		return nil, fail(KindTitle, fmt.Errorf("json unmarshal failed: %w", err))
	}
	if result.Error != nil {
		return nil, fail(KindResponse, result.Error)
	}
	if err := result.Validate(); err != nil {
		return nil, fail(KindTitle, err)
	}

	for _, r := range result.Query.Normalized {
		a.log.Debug().Str("from", r.From).Str("to", r.To).Msg("title normalized")
	}
	for _, r := range result.Query.Redirects {
		a.log.Debug().Str("from", r.From).Str("to", r.To).Msg("redirect followed")
	}
	a.log.Debug().Int("pages", len(result.Query.Pages)).Msg("response decoded")

	return &result, nil
}

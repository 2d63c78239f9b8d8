package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIncompletePage = errors.New("page is neither missing nor complete")

// WikiResponse is the body returned by action=query with prop=extracts and formatversion=2.
type WikiResponse struct {
	Query struct {
		Normalized []Rename `json:"normalized"` // titles the API rewrote (case, underscores)
		Redirects  []Rename `json:"redirects"`  // present when redirects=1
		Pages      []Page   `json:"pages"`      // same order as the requested titles
	} `json:"query"`
	Error *APIError `json:"error"`
}

type Rename struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Page struct {
	PageID        *int    `json:"pageid"`
	Title         string  `json:"title"`
	Extract       *string `json:"extract"`
	Missing       bool    `json:"missing"`
	Invalid       bool    `json:"invalid"`
	InvalidReason string  `json:"invalidreason"`
}

// APIError is the top-level "error" object MediaWiki sends with a 200 status.
type APIError struct {
	Code   string `json:"code"`
	Info   string `json:"info"`
	DocRef string `json:"docref"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s (code: %s)", e.Info, e.Code)
}

// Pages returns a copy of the pages in response order.
func (w *WikiResponse) Pages() []Page {
	pages := make([]Page, len(w.Query.Pages))
	copy(pages, w.Query.Pages)
	return pages
}

// Validate checks every page that claims to exist carries an id and an extract.
func (w *WikiResponse) Validate() error {
	for _, p := range w.Query.Pages {
		if p.Missing || p.Invalid {
			continue
		}
		if p.PageID == nil || p.Extract == nil {
			return fmt.Errorf("%w: %q", ErrIncompletePage, p.Title)
		}
	}
	return nil
}

// ID reports the page id. A missing page never has one, whatever the body said.
func (p Page) ID() (int, bool) {
	if p.Missing || p.PageID == nil {
		return 0, false
	}
	return *p.PageID, true
}

func (p Page) Text() (string, bool) {
	if p.Missing || p.Extract == nil {
		return "", false
	}
	return *p.Extract, true
}

// WikiURL is the human-facing article link under root, e.g. https://simple.wikipedia.org.
func (p Page) WikiURL(root string) string {
	return root + "/wiki/" + NewTitle(p.Title).Normalize().String()
}

// Title is a page name that remembers whether it is already in API form.
type Title struct {
	title      string
	normalized bool
}

func NewTitle(raw string) Title {
	return Title{title: raw}
}

// Normalize replaces every space with an underscore.
func (t Title) Normalize() Title {
	return Title{
		title:      strings.ReplaceAll(t.title, " ", "_"),
		normalized: true,
	}
}

func (t Title) IsNormalized() bool {
	return t.normalized
}

func (t Title) String() string {
	return t.title
}

func NewTitles(raw []string) []Title {
	titles := make([]Title, 0, len(raw))
	for _, r := range raw {
		titles = append(titles, NewTitle(r))
	}
	return titles
}

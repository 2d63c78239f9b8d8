package api

import (
	"fmt"
	"strings"
)

type Subdomain int

const (
	SimpleWikipedia Subdomain = iota
	Wikipedia
)

// ParseSubdomain accepts the long and short names, plus the legacy "tag" alias for the full wiki.
func ParseSubdomain(s string) (Subdomain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple", "s":
		return SimpleWikipedia, nil
	case "en", "e", "tag":
		return Wikipedia, nil
	}
	return 0, fmt.Errorf("unknown subdomain %q (allowed: en, simple, tag)", s)
}

func (s Subdomain) Host() string {
	switch s {
	case Wikipedia:
		return "en.wikipedia.org"
	default:
		return "simple.wikipedia.org"
	}
}

func (s Subdomain) String() string {
	switch s {
	case Wikipedia:
		return "en"
	default:
		return "simple"
	}
}

// Set and Type make *Subdomain usable as a pflag.Value.
func (s *Subdomain) Set(v string) error {
	parsed, err := ParseSubdomain(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s *Subdomain) Type() string {
	return "subdomain"
}

type Format int

const (
	FormatJSON Format = iota
	FormatPHP
	FormatXML
	FormatDebug
	FormatNone
)

func (f Format) String() string {
	switch f {
	case FormatPHP:
		return "php"
	case FormatXML:
		return "xml"
	case FormatDebug:
		return "rawfm"
	case FormatNone:
		return "none"
	default:
		return "json"
	}
}

type FormatVersion int

const (
	BackwardsCompatible FormatVersion = 1
	Modern              FormatVersion = 2
)

type PropKind int

const (
	PropExtracts PropKind = iota
	PropRevisions
)

// Prop is the single property requested. IntroOnly and PlainText only apply to extracts.
type Prop struct {
	Kind      PropKind
	IntroOnly bool
	PlainText bool
}

func Extracts(introOnly, plainText bool) Prop {
	return Prop{Kind: PropExtracts, IntroOnly: introOnly, PlainText: plainText}
}

func Revisions() Prop {
	return Prop{Kind: PropRevisions}
}

func (p Prop) Query() string {
	switch p.Kind {
	case PropRevisions:
		return "prop=revisions"
	default:
		params := []string{"prop=extracts"}
		if p.IntroOnly {
			params = append(params, "exintro=1")
		}
		if p.PlainText {
			params = append(params, "explaintext=1")
		}
		return strings.Join(params, "&")
	}
}

type QueryParams struct {
	Format        Format
	FormatVersion FormatVersion
	Redirects     bool
	Prop          Prop
}

// Query renders the parameters in a fixed order: action, format, formatversion, prop, redirects.
func (q QueryParams) Query() string {
	params := []string{
		"action=query",
		"format=" + q.Format.String(),
		fmt.Sprintf("formatversion=%d", q.FormatVersion),
		q.Prop.Query(),
	}
	if q.Redirects {
		params = append(params, "redirects=1")
	}
	return strings.Join(params, "&")
}

func DefaultQueryParams() QueryParams {
	return QueryParams{
		Format:        FormatJSON,
		FormatVersion: Modern,
		Redirects:     true,
		Prop:          Extracts(true, true),
	}
}

// WikiURL builds request URLs for one wiki. It holds no state beyond its fields.
type WikiURL struct {
	subdomain Subdomain
	host      string
	query     QueryParams
}

func NewWikiURL() WikiURL {
	return WikiURL{
		subdomain: SimpleWikipedia,
		query:     DefaultQueryParams(),
	}
}

func (w WikiURL) WithSubdomain(s Subdomain) WikiURL {
	w.subdomain = s
	return w
}

// WithHost overrides the host derived from the subdomain. An empty host restores the default.
func (w WikiURL) WithHost(host string) WikiURL {
	w.host = host
	return w
}

func (w WikiURL) WithQuery(q QueryParams) WikiURL {
	w.query = q
	return w
}

func (w WikiURL) Host() string {
	if w.host != "" {
		return w.host
	}
	return w.subdomain.Host()
}

func (w WikiURL) RootURI() string {
	return "https://" + w.Host()
}

func (w WikiURL) URL() string {
	return w.RootURI() + "/w/api.php?" + w.query.Query()
}

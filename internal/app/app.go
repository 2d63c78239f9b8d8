package app

import (
	"context"
	"io"

	"wkp/internal/config"
	"wkp/internal/core/apiclient"
	"wkp/internal/core/apiclient/api"
	"wkp/internal/core/apiclient/rawdatafetcher"
	"wkp/internal/core/presenter"
	"wkp/internal/model"

	"github.com/rs/zerolog"
)

type App struct {
	cfg       *config.Config
	log       zerolog.Logger
	url       api.WikiURL
	apiclient *apiclient.APIClient
	presenter *presenter.Presenter
}

// NewWikiApp wires builder, fetcher and presenter for one run. Output goes to out.
func NewWikiApp(cfg *config.Config, log zerolog.Logger, out io.Writer, opts ...rawdatafetcher.Option) *App {
	a := &App{
		cfg: cfg,
		log: log.With().Str("component", "WikiApp").Logger(),
	}

	a.url = api.NewWikiURL().
		WithSubdomain(cfg.Subdomain).
		WithHost(cfg.Host)

	opts = append([]rawdatafetcher.Option{rawdatafetcher.WithUserAgent(cfg.UserAgent)}, opts...)
	fetcher := rawdatafetcher.NewRawDataFetcher(cfg.Timeout, cfg.MaxRedirects, opts...)
	a.apiclient = apiclient.NewAPIClient(fetcher, log)

	mode := presenter.FirstParagraphOnly
	if cfg.Whole {
		mode = presenter.Whole
	}
	a.presenter = presenter.New(out, a.url.RootURI(), mode, cfg.NoColor)

	a.log.Debug().Str("host", a.url.Host()).Bool("whole", cfg.Whole).Msg("initialised")
	return a
}

// Run resolves the titles, performs the single lookup and prints the pages.
func (a *App) Run(ctx context.Context) error {
	raw, err := a.cfg.ResolveTitles()
	if err != nil {
		return err
	}

	resp, err := a.apiclient.Get(ctx, a.url.URL(), model.NewTitles(raw))
	if err != nil {
		return err
	}

	pages := resp.Pages()
	a.log.Debug().Int("requested", len(raw)).Int("returned", len(pages)).Msg("printing pages")
	return a.presenter.Print(pages)
}

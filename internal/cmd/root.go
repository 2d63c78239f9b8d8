package main

import (
	"context"
	"io"

	"wkp/internal/app"
	"wkp/internal/config"
	"wkp/internal/core/apiclient/api"
	"wkp/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var version = "0.1.0"

var _ pflag.Value = (*api.Subdomain)(nil)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:     "wkp",
		Short:   "Fetch Wikipedia excerpts",
		Long:    `wkp fetches the introduction of one or more Wikipedia articles and prints them in the terminal.`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := cfg.Validate(); err != nil {
				return err
			}
			log := logger.New(stderr, cfg.Verbose, cfg.NoColor)
			return app.NewWikiApp(cfg, log, stdout).Run(cmd.Context())
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringArrayVarP(&cfg.Titles, "titles", "t", nil, "The pages to fetch (repeatable)")
	flags.StringVarP(&cfg.TitlesFile, "titles-file", "f", "", "File with one page title per line")
	flags.VarP(&cfg.Subdomain, "subdomain", "s", `The source wiki. Allowed values are: "en", "simple", "tag"`)
	flags.BoolVarP(&cfg.Whole, "whole", "w", false, "Displays the full intro rather than just the first paragraph")
	flags.StringVar(&cfg.Host, "host", "", "Query this wiki host instead of the subdomain's (e.g. de.wikipedia.org)")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP request timeout")
	flags.IntVar(&cfg.MaxRedirects, "max-redirects", cfg.MaxRedirects, "Maximum number of HTTP redirects to follow")
	flags.StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "User-Agent sent to the API")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log request details to stderr")
	cmd.MarkFlagsOneRequired("titles", "titles-file")

	return cmd
}

func execute(ctx context.Context, stdout, stderr io.Writer) int {
	if err := newRootCmd(stdout, stderr).ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

package cmd

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/daterange"
	"github.com/Zachkp/folio/internal/experience"
	"github.com/Zachkp/folio/internal/site"
	"github.com/Zachkp/folio/internal/view"
)

// clock is swapped in tests.
var clock experience.Clock = experience.SystemClock

type rootOptions struct {
	data         string
	locale       string
	presentLabel string
	logLevel     string
}

// env is everything a subcommand needs, resolved from config and flags.
type env struct {
	cfg        *config.Config
	logger     *log.Logger
	site       *site.Site
	formatter  *daterange.Formatter
	calculator *experience.Calculator
}

func (e *env) page() *view.Page {
	return view.Build(e.site, e.formatter, e.calculator)
}

// NewRootCmd builds the folio command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "Render a portfolio page from a static site.json",
		Long:          `folio renders a single-page portfolio (hero, projects, experience, skills, contact) from a JSON or YAML data file. Serve it, build it to a directory, or preview it in the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.data, "data", "", "Path to the site data file (.json, .yaml); defaults to the bundled sample")
	flags.StringVar(&opts.locale, "locale", "", "Locale for month names (en, en_US, en_GB, fr, de, es, it, nl, pt)")
	flags.StringVar(&opts.presentLabel, "present-label", "", "Label shown for ongoing positions")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newServeCmd(opts),
		newBuildCmd(opts),
		newPreviewCmd(opts),
		newCheckCmd(opts),
	)
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration, applies flag overrides and loads the site data.
func setup(opts *rootOptions, stderr io.Writer) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.data != "" {
		cfg.Data = opts.data
	}
	if opts.locale != "" {
		cfg.Locale = opts.locale
	}
	if opts.presentLabel != "" {
		cfg.PresentLabel = opts.presentLabel
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	logger := log.New()
	logger.SetOutput(stderr)
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse log level %q", cfg.LogLevel)
	}
	logger.SetLevel(level)

	formatter, err := daterange.NewFormatter(cfg.Locale)
	if err != nil {
		return nil, err
	}
	if cfg.PresentLabel != "" {
		formatter.PresentLabel = cfg.PresentLabel
	}

	var s *site.Site
	if cfg.Data == "" {
		logger.Debug("no data file configured, using bundled sample")
		s = site.Default()
	} else {
		s, err = site.Load(cfg.Data)
		if err != nil {
			return nil, err
		}
		logger.WithField("data", cfg.Data).Debug("loaded site data")
	}

	return &env{
		cfg:        cfg,
		logger:     logger,
		site:       s,
		formatter:  formatter,
		calculator: experience.NewCalculator(clock),
	}, nil
}

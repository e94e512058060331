package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/seaward/perch/internal/config"
	"github.com/seaward/perch/internal/history"
	"github.com/seaward/perch/internal/log"
	"github.com/seaward/perch/internal/prefs"
	"github.com/seaward/perch/internal/reddit"
	"github.com/seaward/perch/internal/state"
	"github.com/seaward/perch/internal/ui"
)

// Options configure one run of the Perch application.
type Options struct {
	ConfigPath string // empty uses ~/.config/perch/perch.toml
	LogPath    string // overrides the configured log file
	Target     string // initial page; empty opens the front page
	Version    string
}

// Run boots the terminal client and blocks until the user quits or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logPath := cfg.Log.Path
	if opts.LogPath != "" {
		logPath = opts.LogPath
	}
	if err := log.Configure(log.Config{
		Level:   cfg.Log.Level,
		Path:    logPath,
		Service: "perch",
	}); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	logger := log.WithComponent("app")
	logger.Info().Str("version", opts.Version).Msg("starting")

	userPrefs, err := prefs.Load("")
	if err != nil {
		logger.Warn().Err(err).Msg("preferences unreadable, using defaults")
	}

	hist, err := history.Load(cfg.History.Path, cfg.History.Size)
	if err != nil {
		logger.Warn().Err(err).Msg("history unreadable, starting empty")
	}

	client, err := reddit.New(reddit.Options{
		BaseURL:    cfg.API.BaseURL,
		Token:      cfg.API.Token,
		UserAgent:  cfg.API.UserAgent,
		Timeout:    cfg.API.Timeout,
		MaxRetries: cfg.API.MaxRetries,
		RateLimit:  rate.Limit(cfg.API.RateLimit),
		RateBurst:  cfg.API.RateBurst,
	})
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}

	// The poller stops on context cancellation only, so a clean UI
	// exit has to cancel explicitly before Wait can return.
	g, ctx := errgroup.WithContext(ctx)
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	g.Go(func() error {
		pollAccount(ctx, store, client, cfg.Poll, log.WithComponent("poller"))
		return nil
	})
	g.Go(func() error {
		defer stop()
		return ui.Run(ctx, ui.Options{
			Client:      client,
			Store:       store,
			Config:      cfg,
			Prefs:       userPrefs,
			History:     hist,
			StartTarget: opts.Target,
			Version:     opts.Version,
		})
	})

	err = g.Wait()
	if saveErr := hist.Save(); saveErr != nil {
		logger.Warn().Err(saveErr).Msg("history not saved")
	}
	return err
}

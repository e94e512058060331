package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/seaward/perch/internal/config"
	"github.com/seaward/perch/internal/reddit"
	"github.com/seaward/perch/internal/state"
)

const (
	defaultPollInterval = time.Minute
	maxBackoff          = 10 * time.Minute
)

// pollAccount keeps the signed-in account fresh in the store: name,
// karma and the unread inbox count shown in the title bar. It blocks
// until the context is cancelled. Signed-out sessions have nothing to
// poll, so it returns immediately.
func pollAccount(ctx context.Context, store *state.Store, client *reddit.Client, cfg config.PollConfig, logger zerolog.Logger) {
	if !cfg.Enabled || !client.Authenticated() {
		logger.Debug().Msg("account polling disabled")
		return
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	for {
		account, err := client.Me(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn().Err(err).Msg("account poll failed")
		}
		store.Update(account, err)

		wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// calculateBackoff doubles the base interval per consecutive failure,
// capped so a long outage is still retried at a useful rate.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	d := base
	for ; failures > 0 && d < maxBackoff; failures-- {
		d *= 2
	}
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

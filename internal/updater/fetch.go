package updater

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/quantfold/price-updater/internal/frame"
	"github.com/quantfold/price-updater/internal/model"
	"github.com/quantfold/price-updater/internal/provider"
)

// fetchOutcome distinguishes the ways a per-asset fetch can finish without
// a hard error. Only outcomeFetched moves the asset's watermark.
type fetchOutcome int

const (
	// outcomeFetched: rows (possibly zero) were fetched and appended.
	outcomeFetched fetchOutcome = iota

	// outcomeCurrent: the watermark is already on today's date.
	outcomeCurrent

	// outcomeExhausted: every attempt failed; nothing was appended. The
	// asset stays unmarked and is retried on the next run.
	outcomeExhausted
)

// fetchAsset runs the retry loop for one asset, appending any fetched rows
// to the shared frame.
func (u *Updater) fetchAsset(ctx context.Context, asset model.Asset) (fetchOutcome, error) {
	rng, skip := PlanRange(u.today, asset.LastUpdated)
	if skip {
		return outcomeCurrent, nil
	}

	for attempt := 1; attempt <= u.cfg.MaxRetries; attempt++ {
		// Fresh client identity per attempt keeps server-side rate-limit
		// correlation low.
		src, err := u.newSource()
		if err != nil {
			return 0, fmt.Errorf("new source: %w", err)
		}

		// The pacing timer runs alongside the fetch as a minimum-duration
		// floor. It never cancels the fetch: a slow page is always awaited
		// to completion.
		var jitter time.Duration
		if u.cfg.Jitter > 0 {
			jitter = time.Duration(rand.Int64N(int64(u.cfg.Jitter)))
		}
		floor := time.NewTimer(u.cfg.Pace + jitter)

		bars, err := src.FetchDaily(ctx, asset.Symbol, rng)
		<-floor.C

		if err == nil {
			if err := u.appendBars(asset.ID, bars); err != nil {
				return 0, err
			}
			u.logger.Info("fetched asset",
				"symbol", asset.Symbol,
				"rows", len(bars),
				"attempt", attempt,
			)
			return outcomeFetched, nil
		}

		// Backoff is 2^maxRetries seconds, the same for every attempt.
		backoff := time.Duration(1<<u.cfg.MaxRetries) * u.cfg.BackoffUnit
		u.logger.Warn("retrying fetch",
			"symbol", asset.Symbol,
			"attempt", attempt,
			"max_retries", u.cfg.MaxRetries,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	return outcomeExhausted, nil
}

// appendBars tags the bars with the asset id and extends the shared frame.
func (u *Updater) appendBars(id int64, bars []provider.Bar) error {
	g := frame.New()
	for _, b := range bars {
		g.Push(id, b.Date, b.Open, b.High, b.Low, b.Close, b.Volume)
	}
	return u.frame.Extend(g)
}

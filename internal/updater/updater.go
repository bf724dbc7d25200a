package updater

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quantfold/price-updater/internal/frame"
	"github.com/quantfold/price-updater/internal/provider"
	"github.com/quantfold/price-updater/internal/store"
)

// Config holds run-loop settings.
type Config struct {
	// Pace is the base minimum delay alongside every provider fetch.
	Pace time.Duration

	// Jitter bounds the random delay added to Pace per attempt, exclusive.
	Jitter time.Duration

	// MaxRetries bounds fetch attempts per asset.
	MaxRetries int

	// FlushThreshold is the frame row count that triggers a mid-run flush.
	FlushThreshold int

	// BackoffUnit scales the retry backoff. One second in production;
	// tests shrink it.
	BackoffUnit time.Duration
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		Pace:           2 * time.Second,
		Jitter:         time.Second,
		MaxRetries:     4,
		FlushThreshold: 10000,
		BackoffUnit:    time.Second,
	}
}

// Updater owns the state of one ingestion run: today's date captured at run
// start, the shared price frame, and the ids fetched since the last flush.
type Updater struct {
	cfg       Config
	store     store.Store
	newSource provider.Factory
	logger    *slog.Logger

	// mu serializes runs. Run state below is owned by the run holding it.
	mu      sync.Mutex
	today   time.Time
	frame   *frame.Frame
	pending []int64
}

// New creates an Updater.
func New(cfg Config, st store.Store, factory provider.Factory, logger *slog.Logger) *Updater {
	if logger == nil {
		logger = slog.Default()
	}
	return &Updater{
		cfg:       cfg,
		store:     st,
		newSource: factory,
		logger:    logger,
		frame:     frame.New(),
	}
}

// Run drives one complete ingestion pass over the asset universe.
//
// Per-asset failures are warnings: the asset keeps its old watermark and is
// picked up again on the next run. Only asset-list loading and context
// cancellation abort the run.
//
// Runs are serialized: a call made while another run is in flight blocks
// until that run finishes.
func (u *Updater) Run(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.today = time.Now().UTC()
	u.frame.Clear()
	u.pending = u.pending[:0]

	assets, err := u.store.LoadAssets(ctx)
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	runID := uuid.NewString()
	u.logger.Info("run started",
		"run_id", runID,
		"assets", len(assets),
		"date", u.today.Format("2006-01-02"),
	)

	// Pop one asset at a time; processing order carries no meaning.
	for len(assets) > 0 {
		asset := assets[len(assets)-1]
		assets = assets[:len(assets)-1]

		outcome, err := u.fetchAsset(ctx, asset)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			u.logger.Warn("asset skipped", "symbol", asset.Symbol, "error", err)
			continue
		}

		switch outcome {
		case outcomeCurrent:
			u.logger.Debug("asset already current", "symbol", asset.Symbol)
			continue
		case outcomeExhausted:
			u.logger.Warn("retries exhausted, asset deferred to next run",
				"symbol", asset.Symbol,
				"attempts", u.cfg.MaxRetries,
			)
			continue
		}

		u.logger.Info("asset buffered",
			"symbol", asset.Symbol,
			"buffered", u.frame.Len(),
			"threshold", u.cfg.FlushThreshold,
		)

		// Flush before recording the id: an asset's watermark moves with
		// whichever later flush includes its rows.
		if u.frame.Len() >= u.cfg.FlushThreshold {
			if err := u.flush(ctx); err != nil {
				u.logger.Warn("flush failed, batch kept buffered", "error", err)
			}
		}

		u.pending = append(u.pending, asset.ID)
	}

	u.logger.Info("flushing remainder", "buffered", u.frame.Len())
	if err := u.flush(ctx); err != nil {
		u.logger.Warn("final flush failed", "error", err)
	}

	u.logger.Info("run finished", "run_id", runID)

	u.frame.Clear()
	u.pending = u.pending[:0]
	return nil
}

// flush upserts the buffered frame, then moves the watermark for every
// pending id. The frame is cleared only after a successful upsert and the
// pending set only after a successful watermark update, so a failed step
// leaves its input buffered for the next flush.
func (u *Updater) flush(ctx context.Context) error {
	if u.frame.Len() > 0 {
		start := time.Now()
		if err := u.store.UpsertPrices(ctx, u.frame); err != nil {
			return fmt.Errorf("upsert prices: %w", err)
		}
		u.logger.Info("flushed prices",
			"rows", u.frame.Len(),
			"duration", time.Since(start),
		)
		u.frame.Clear()
	}

	if len(u.pending) > 0 {
		if err := u.store.MarkUpdated(ctx, u.pending, u.today); err != nil {
			// Rows are durable; the stale watermark just means the next
			// run re-fetches a window the upsert key dedupes.
			return fmt.Errorf("mark updated: %w", err)
		}
		u.pending = u.pending[:0]
	}

	return nil
}

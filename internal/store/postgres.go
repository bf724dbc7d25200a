package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quantfold/price-updater/internal/frame"
	"github.com/quantfold/price-updater/internal/model"
)

// Store is the persistence contract the updater runs against.
type Store interface {
	// LoadAssets reads the full asset universe with watermarks.
	LoadAssets(ctx context.Context) ([]model.Asset, error)

	// UpsertPrices bulk-writes the frame, keyed by (asset id, date),
	// overwriting all value columns on conflict.
	UpsertPrices(ctx context.Context, f *frame.Frame) error

	// MarkUpdated sets each asset's watermark to date. Callers must only
	// pass ids whose rows were covered by the preceding successful
	// UpsertPrices call.
	MarkUpdated(ctx context.Context, ids []int64, date time.Time) error
}

// Postgres implements Store on a pgx connection pool.
type Postgres struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgres creates a Postgres store.
func NewPostgres(db *pgxpool.Pool, logger *slog.Logger) *Postgres {
	if logger == nil {
		logger = slog.Default()
	}
	return &Postgres{db: db, logger: logger}
}

// LoadAssets reads the asset universe.
func (s *Postgres) LoadAssets(ctx context.Context) ([]model.Asset, error) {
	rows, err := s.db.Query(ctx, "SELECT id, symbol, last_updated FROM assets")
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}
	defer rows.Close()

	var assets []model.Asset
	for rows.Next() {
		var a model.Asset
		if err := rows.Scan(&a.ID, &a.Symbol, &a.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read assets: %w", err)
	}

	return assets, nil
}

// UpsertPrices writes the frame in one set-based statement.
func (s *Postgres) UpsertPrices(ctx context.Context, f *frame.Frame) error {
	start := time.Now()

	tag, err := s.db.Exec(ctx, `
		INSERT INTO asset_prices (asset_id, open, high, low, close, volume, tstamp)
		SELECT * FROM UNNEST($1::bigint[], $2::real[], $3::real[], $4::real[], $5::real[], $6::bigint[], $7::date[])
		ON CONFLICT (asset_id, tstamp)
		DO UPDATE SET
			open   = EXCLUDED.open,
			high   = EXCLUDED.high,
			low    = EXCLUDED.low,
			close  = EXCLUDED.close,
			volume = EXCLUDED.volume
	`, f.IDs, f.Open, f.High, f.Low, f.Close, f.Volume, f.Dates)
	if err != nil {
		return fmt.Errorf("upsert prices: %w", err)
	}

	s.logger.Debug("upserted prices",
		"rows", f.Len(),
		"affected", tag.RowsAffected(),
		"duration", time.Since(start),
	)
	return nil
}

// MarkUpdated moves the watermark for the given assets.
func (s *Postgres) MarkUpdated(ctx context.Context, ids []int64, date time.Time) error {
	if _, err := s.db.Exec(ctx,
		"UPDATE assets SET last_updated = $1 WHERE id = ANY($2::bigint[])",
		date, ids,
	); err != nil {
		return fmt.Errorf("mark updated: %w", err)
	}
	return nil
}

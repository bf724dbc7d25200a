package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/quantfold/price-updater/internal/alpaca"
)

// defaultHistoryYears bounds a fetch with no watermark.
const defaultHistoryYears = 5

// AlpacaSource adapts the alpaca bars client to the Source contract.
type AlpacaSource struct {
	client *alpaca.Client
}

// NewAlpacaFactory returns a Factory minting alpaca sources. Each source
// gets its own HTTP client so connection state is not shared across fetch
// attempts.
func NewAlpacaFactory(keyID, secretKey string, logger *slog.Logger, opts ...alpaca.ClientOption) Factory {
	return func() (Source, error) {
		all := []alpaca.ClientOption{
			alpaca.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
		}
		if logger != nil {
			all = append(all, alpaca.WithLogger(logger))
		}
		all = append(all, opts...)
		return &AlpacaSource{
			client: alpaca.NewClient(keyID, secretKey, all...),
		}, nil
	}
}

// FetchDaily fetches the symbol's daily bars over r, paginating through the
// full result set.
func (s *AlpacaSource) FetchDaily(ctx context.Context, symbol string, r *Range) ([]Bar, error) {
	q := alpaca.QueryParams{
		Timeframe:  alpaca.Day,
		Adjustment: alpaca.AdjustmentAll,
		Sort:       alpaca.SortAsc,
	}
	if r != nil {
		q.Start = alpaca.OnDate(r.Start)
		q.End = alpaca.AtTime(r.End)
	} else {
		q.Start = alpaca.OnDate(time.Now().UTC().AddDate(-defaultHistoryYears, 0, 0))
	}

	bySymbol, err := s.client.GetAllBars(ctx, []string{symbol}, q)
	if err != nil {
		return nil, err
	}

	raw := bySymbol[symbol]
	bars := make([]Bar, 0, len(raw))
	for _, b := range raw {
		bar, err := alpacaBar(b)
		if err != nil {
			return nil, err
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

// alpacaBar normalizes one wire bar. The bar timestamp is RFC 3339; a value
// that does not parse is a decode error for the whole fetch.
func alpacaBar(b alpaca.Bar) (Bar, error) {
	ts, err := time.Parse(time.RFC3339, b.Timestamp)
	if err != nil {
		return Bar{}, fmt.Errorf("parse bar timestamp %q: %w", b.Timestamp, err)
	}

	o := float32(b.Open)
	h := float32(b.High)
	l := float32(b.Low)
	c := float32(b.Close)
	v := int64(b.Volume)

	return Bar{
		Date:   ts.UTC().Truncate(24 * time.Hour),
		Open:   &o,
		High:   &h,
		Low:    &l,
		Close:  &c,
		Volume: &v,
	}, nil
}

package provider

import (
	"context"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
)

// polygonPageLimit is the maximum aggregate count per request.
const polygonPageLimit = 50000

// PolygonSource adapts the Polygon aggregates API to the Source contract.
type PolygonSource struct {
	client *polygon.Client
}

// NewPolygonFactory returns a Factory minting polygon sources, one client
// per fetch attempt.
func NewPolygonFactory(apiKey string) Factory {
	return func() (Source, error) {
		return &PolygonSource{client: polygon.New(apiKey)}, nil
	}
}

// FetchDaily fetches split-adjusted daily aggregates for the symbol over r.
func (s *PolygonSource) FetchDaily(ctx context.Context, symbol string, r *Range) ([]Bar, error) {
	now := time.Now().UTC()
	from, to := now.AddDate(-defaultHistoryYears, 0, 0), now
	if r != nil {
		from, to = r.Start, r.End
	}

	params := models.GetAggsParams{
		Ticker:     symbol,
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(from),
		To:         models.Millis(to),
	}.WithAdjusted(true).WithOrder(models.Asc).WithLimit(polygonPageLimit)

	resp, err := s.client.GetAggs(ctx, params)
	if err != nil {
		return nil, err
	}

	bars := make([]Bar, 0, len(resp.Results))
	for _, agg := range resp.Results {
		bars = append(bars, polygonBar(agg))
	}
	return bars, nil
}

// polygonBar normalizes one aggregate row.
func polygonBar(agg models.Agg) Bar {
	o := float32(agg.Open)
	h := float32(agg.High)
	l := float32(agg.Low)
	c := float32(agg.Close)
	v := int64(agg.Volume)

	return Bar{
		Date:   time.Time(agg.Timestamp).UTC().Truncate(24 * time.Hour),
		Open:   &o,
		High:   &h,
		Low:    &l,
		Close:  &c,
		Volume: &v,
	}
}

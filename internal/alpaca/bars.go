package alpaca

import (
	"context"
	"iter"
)

// defaultPageLimit is applied when a pagination call has no explicit limit.
const defaultPageLimit = 10000

// GetAllBars fetches every page for the given symbols and merges per-symbol
// bar sequences by concatenation, in response order. Any page error fails
// the whole call; no partial result is returned.
func (c *Client) GetAllBars(ctx context.Context, symbols []string, q QueryParams) (map[string][]Bar, error) {
	if q.Limit == 0 {
		q.Limit = defaultPageLimit
	}

	all := make(map[string][]Bar)
	for {
		resp, err := c.GetBars(ctx, symbols, q)
		if err != nil {
			return nil, err
		}

		for symbol, bars := range resp.Bars {
			all[symbol] = append(all[symbol], bars...)
		}

		if resp.NextPageToken == nil {
			return all, nil
		}
		q.PageToken = *resp.NextPageToken
	}
}

// StreamBars exposes the pagination loop as a lazy sequence yielding one
// page's symbol→bars mapping per step. On a page error the sequence yields
// that error as its final element and ends; on cursor exhaustion it ends
// cleanly. The sequence is finite and non-restartable: the cursor lives in
// the iteration state, so it must not be shared across concurrent consumers.
func (c *Client) StreamBars(ctx context.Context, symbols []string, q QueryParams) iter.Seq2[map[string][]Bar, error] {
	return func(yield func(map[string][]Bar, error) bool) {
		if q.Limit == 0 {
			q.Limit = defaultPageLimit
		}

		for {
			resp, err := c.GetBars(ctx, symbols, q)
			if err != nil {
				yield(nil, err)
				return
			}

			next := resp.NextPageToken
			if !yield(resp.Bars, nil) {
				return
			}
			if next == nil {
				return
			}
			q.PageToken = *next
		}
	}
}

package updater

import (
	"time"

	"github.com/quantfold/price-updater/internal/provider"
)

// lookbackDays is subtracted from the watermark so the refetch window
// overlaps data already held. Providers restate recent daily bars after
// corrections; the overlap absorbs those regardless of gap size.
const lookbackDays = 30

// PlanRange computes the fetch window for one asset.
//
// No watermark → (nil, false): fetch the provider's default history.
// Watermark on today's date → (nil, true): already current, skip the fetch.
// Otherwise → ([watermark − 30 days, now], false).
func PlanRange(now time.Time, lastUpdated *time.Time) (*provider.Range, bool) {
	if lastUpdated == nil {
		return nil, false
	}
	if sameDate(*lastUpdated, now) {
		return nil, true
	}

	return &provider.Range{
		Start: lastUpdated.AddDate(0, 0, -lookbackDays),
		End:   now,
	}, false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

package provider

import (
	"context"
	"time"
)

// Range is a half-open fetch window in provider time.
type Range struct {
	Start time.Time
	End   time.Time
}

// Bar is one daily observation, normalized across providers. Value fields
// are pointers: a provider may omit any of them.
type Bar struct {
	Date   time.Time
	Open   *float32
	High   *float32
	Low    *float32
	Close  *float32
	Volume *int64
}

// Source fetches daily history for one symbol. A nil range requests the
// provider's default history window.
type Source interface {
	FetchDaily(ctx context.Context, symbol string, r *Range) ([]Bar, error)
}

// Factory mints a fresh Source. The updater calls it once per fetch attempt
// so each attempt carries a new client identity.
type Factory func() (Source, error)

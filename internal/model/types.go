package model

import "time"

// Asset is one row of the tradeable universe.
type Asset struct {
	ID     int64  // Primary key in the assets table
	Symbol string // Provider ticker symbol (e.g., "AAPL")

	// LastUpdated is the watermark: the last date through which this
	// asset's daily history is known to be complete. Nil means the asset
	// has never been fetched.
	LastUpdated *time.Time
}

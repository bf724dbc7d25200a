// Package model defines shared data types used across the price updater.
//
// Conventions:
//   - Asset IDs: int64, matching the assets table primary key
//   - Prices: float32 (the asset_prices table stores REAL columns)
//   - Dates: time.Time truncated to a calendar day in UTC
package model

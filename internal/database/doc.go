// Package database provides the PostgreSQL connection pool for the updater.
//
// One pool serves both the assets table (watermarks) and the asset_prices
// time-series table. The run is single-task, so the pool is only ever used
// sequentially.
package database

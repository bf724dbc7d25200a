// Package store implements the persistence sink: the asset universe read,
// the set-based price upsert, and the watermark update.
//
// UpsertPrices is a single UNNEST insert with last-write-wins conflict
// handling on (asset_id, tstamp), never a per-row loop.
package store

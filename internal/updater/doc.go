// Package updater drives one ingestion run: plan each asset's fetch window
// from its watermark, fetch with pacing and retries, accumulate rows into a
// shared columnar frame, and flush to the store in bulk.
//
// A run is a single sequential task. Fetches are deliberately not fanned out
// across assets; provider rate limits are respected through pacing, jitter,
// and backoff instead.
package updater

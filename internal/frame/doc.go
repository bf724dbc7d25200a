// Package frame implements the columnar price batch that accumulates rows
// across assets between database flushes.
//
// A Frame mirrors the asset_prices table: one slice per column, nullable
// value columns as pointer slices. All columns are always the same length.
package frame

// Package provider defines the daily-bar fetch contract the updater runs
// against, and adapters for the two supported market data providers.
//
// Adapters are minted through a Factory so each fetch attempt can use a
// fresh client identity.
package provider

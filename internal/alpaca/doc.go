// Package alpaca provides a client for the Alpaca Market Data stocks/bars
// endpoint.
//
// The endpoint is cursor-paginated: each response carries an opaque
// next_page_token which is round-tripped, never interpreted. Three fetch
// shapes are exposed:
//   - GetBars: one authenticated page
//   - GetAllBars: auto-pagination, pages merged per symbol
//   - StreamBars: lazy page-by-page sequence
package alpaca

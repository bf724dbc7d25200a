package alpaca

// Bar is one OHLCV observation as returned by the bars endpoint.
type Bar struct {
	Timestamp  string  `json:"t"`
	Open       float64 `json:"o"`
	High       float64 `json:"h"`
	Low        float64 `json:"l"`
	Close      float64 `json:"c"`
	Volume     float64 `json:"v"`
	VWAP       float64 `json:"vw"`
	TradeCount int64   `json:"n"`
}

// BarsResponse is one page of bars, grouped by symbol. NextPageToken is an
// opaque cursor; nil means the result set is exhausted.
type BarsResponse struct {
	Bars          map[string][]Bar `json:"bars"`
	NextPageToken *string          `json:"next_page_token"`
}

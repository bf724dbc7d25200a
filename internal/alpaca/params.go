package alpaca

import (
	"fmt"
	"strconv"
	"time"
)

// Timeframe is a bar aggregation window. The zero value is unset.
type Timeframe struct {
	unit timeframeUnit
	n    int
}

type timeframeUnit int

const (
	tfUnset timeframeUnit = iota
	tfMinute
	tfHour
	tfDay
	tfWeek
	tfMonth
)

// Minutes returns an n-minute timeframe.
func Minutes(n int) Timeframe { return Timeframe{tfMinute, n} }

// Hours returns an n-hour timeframe.
func Hours(n int) Timeframe { return Timeframe{tfHour, n} }

// Months returns an n-month timeframe.
func Months(n int) Timeframe { return Timeframe{tfMonth, n} }

// Fixed-width timeframes.
var (
	Day  = Timeframe{tfDay, 1}
	Week = Timeframe{tfWeek, 1}
)

func (tf Timeframe) isZero() bool { return tf.unit == tfUnset }

// String renders the wire token, e.g. "5Min", "1Hour", "1Day".
func (tf Timeframe) String() string {
	switch tf.unit {
	case tfMinute:
		return strconv.Itoa(tf.n) + "Min"
	case tfHour:
		return strconv.Itoa(tf.n) + "Hour"
	case tfDay:
		return "1Day"
	case tfWeek:
		return "1Week"
	case tfMonth:
		return strconv.Itoa(tf.n) + "Month"
	default:
		return ""
	}
}

// TimeValue is either a bare calendar date or a full timestamp. Dates render
// as YYYY-MM-DD, timestamps as RFC 3339. The zero value is unset.
type TimeValue struct {
	t        time.Time
	dateOnly bool
	set      bool
}

// OnDate wraps a calendar date.
func OnDate(t time.Time) TimeValue { return TimeValue{t: t, dateOnly: true, set: true} }

// AtTime wraps a full timestamp.
func AtTime(t time.Time) TimeValue { return TimeValue{t: t, set: true} }

func (v TimeValue) isZero() bool { return !v.set }

// format renders the value. Timestamps outside the RFC 3339 year range
// cannot be rendered; the error is propagated, not swallowed.
func (v TimeValue) format() (string, error) {
	if y := v.t.Year(); y < 0 || y >= 10000 {
		return "", fmt.Errorf("alpaca: time value year %d out of range", y)
	}
	if v.dateOnly {
		return v.t.Format("2006-01-02"), nil
	}
	return v.t.Format(time.RFC3339), nil
}

// Feed identifies the market data feed. The zero value is unset.
type Feed int

const (
	feedUnset Feed = iota
	FeedSIP
	FeedIEX
	FeedBoats
)

var feedNames = map[Feed]string{
	FeedSIP:   "sip",
	FeedIEX:   "iex",
	FeedBoats: "boats",
}

func (f Feed) String() string { return feedNames[f] }

// Currency is a quote currency. The two common codes have named values;
// any other ISO code is carried and emitted unchanged. The zero value is
// unset.
type Currency struct {
	code string
}

var (
	CurrencyUSD = Currency{"USD"}
	CurrencyEUR = Currency{"EUR"}
)

// CurrencyCode wraps an arbitrary currency code.
func CurrencyCode(code string) Currency { return Currency{code} }

func (c Currency) isZero() bool   { return c.code == "" }
func (c Currency) String() string { return c.code }

// Adjustment selects corporate-action adjustment of bar prices. The zero
// value is unset.
type Adjustment int

const (
	adjustmentUnset Adjustment = iota
	AdjustmentRaw
	AdjustmentSplit
	AdjustmentDividend
	AdjustmentSpinOff
	AdjustmentAll
)

var adjustmentNames = map[Adjustment]string{
	AdjustmentRaw:      "raw",
	AdjustmentSplit:    "split",
	AdjustmentDividend: "dividend",
	AdjustmentSpinOff:  "spin-off",
	AdjustmentAll:      "all",
}

func (a Adjustment) String() string { return adjustmentNames[a] }

// Sort orders bars within a response. The zero value is unset.
type Sort int

const (
	sortUnset Sort = iota
	SortAsc
	SortDesc
)

var sortNames = map[Sort]string{
	SortAsc:  "asc",
	SortDesc: "desc",
}

func (s Sort) String() string { return sortNames[s] }

// QueryParams holds the optional query options for a bars request. Zero
// values are omitted from the serialized parameter list.
type QueryParams struct {
	Timeframe  Timeframe
	Start      TimeValue
	End        TimeValue
	AsOf       time.Time // date only; zero = omitted
	Feed       Feed
	Currency   Currency
	Adjustment Adjustment
	Limit      int // 0 = omitted
	PageToken  string
	Sort       Sort
}

// Param is one wire key/value pair.
type Param struct {
	Key   string
	Value string
}

// ToParamList serializes the set fields, in wire order. Each set field
// produces exactly one pair; unset fields produce none.
func (q QueryParams) ToParamList() ([]Param, error) {
	var list []Param

	if !q.Timeframe.isZero() {
		list = append(list, Param{"timeframe", q.Timeframe.String()})
	}
	if !q.Start.isZero() {
		s, err := q.Start.format()
		if err != nil {
			return nil, fmt.Errorf("format start: %w", err)
		}
		list = append(list, Param{"start", s})
	}
	if !q.End.isZero() {
		s, err := q.End.format()
		if err != nil {
			return nil, fmt.Errorf("format end: %w", err)
		}
		list = append(list, Param{"end", s})
	}
	if !q.AsOf.IsZero() {
		s, err := OnDate(q.AsOf).format()
		if err != nil {
			return nil, fmt.Errorf("format asof: %w", err)
		}
		list = append(list, Param{"asof", s})
	}
	if q.Feed != feedUnset {
		list = append(list, Param{"feed", q.Feed.String()})
	}
	if !q.Currency.isZero() {
		list = append(list, Param{"currency", q.Currency.String()})
	}
	if q.Adjustment != adjustmentUnset {
		list = append(list, Param{"adjustment", q.Adjustment.String()})
	}
	if q.Limit > 0 {
		list = append(list, Param{"limit", strconv.Itoa(q.Limit)})
	}
	if q.PageToken != "" {
		list = append(list, Param{"page_token", q.PageToken})
	}
	if q.Sort != sortUnset {
		list = append(list, Param{"sort", q.Sort.String()})
	}

	return list, nil
}

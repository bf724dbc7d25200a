package frame

import (
	"fmt"
	"time"
)

// Frame is a columnar batch of daily price rows awaiting a bulk write.
// Value columns are pointers so a missing observation stays NULL through
// to the database.
type Frame struct {
	IDs    []int64
	Dates  []time.Time
	Open   []*float32
	High   []*float32
	Low    []*float32
	Close  []*float32
	Volume []*int64
}

// New returns an empty frame.
func New() *Frame {
	return &Frame{}
}

// Len reports the number of buffered rows.
func (f *Frame) Len() int {
	return len(f.IDs)
}

// Push appends one row.
func (f *Frame) Push(id int64, date time.Time, o, h, l, c *float32, v *int64) {
	f.IDs = append(f.IDs, id)
	f.Dates = append(f.Dates, date)
	f.Open = append(f.Open, o)
	f.High = append(f.High, h)
	f.Low = append(f.Low, l)
	f.Close = append(f.Close, c)
	f.Volume = append(f.Volume, v)
}

// Extend appends all of g's rows to f. It fails if g's columns are not all
// the same length, leaving f untouched.
func (f *Frame) Extend(g *Frame) error {
	n := len(g.IDs)
	if len(g.Dates) != n || len(g.Open) != n || len(g.High) != n ||
		len(g.Low) != n || len(g.Close) != n || len(g.Volume) != n {
		return fmt.Errorf("frame: ragged columns (ids=%d dates=%d o=%d h=%d l=%d c=%d v=%d)",
			n, len(g.Dates), len(g.Open), len(g.High), len(g.Low), len(g.Close), len(g.Volume))
	}

	f.IDs = append(f.IDs, g.IDs...)
	f.Dates = append(f.Dates, g.Dates...)
	f.Open = append(f.Open, g.Open...)
	f.High = append(f.High, g.High...)
	f.Low = append(f.Low, g.Low...)
	f.Close = append(f.Close, g.Close...)
	f.Volume = append(f.Volume, g.Volume...)
	return nil
}

// Clear empties all columns. Capacity is kept for reuse across flushes.
func (f *Frame) Clear() {
	f.IDs = f.IDs[:0]
	f.Dates = f.Dates[:0]
	f.Open = f.Open[:0]
	f.High = f.High[:0]
	f.Low = f.Low[:0]
	f.Close = f.Close[:0]
	f.Volume = f.Volume[:0]
}

package frame

import (
	"testing"
	"time"
)

func f32(v float32) *float32 { return &v }
func i64(v int64) *int64     { return &v }

// columnsEqual checks the frame invariant: every column has the same length.
func columnsEqual(t *testing.T, f *Frame) {
	t.Helper()
	n := len(f.IDs)
	if len(f.Dates) != n || len(f.Open) != n || len(f.High) != n ||
		len(f.Low) != n || len(f.Close) != n || len(f.Volume) != n {
		t.Fatalf("ragged frame: ids=%d dates=%d o=%d h=%d l=%d c=%d v=%d",
			n, len(f.Dates), len(f.Open), len(f.High), len(f.Low), len(f.Close), len(f.Volume))
	}
	if f.Len() != n {
		t.Fatalf("Len() = %d, want %d", f.Len(), n)
	}
}

func TestPush(t *testing.T) {
	f := New()
	day := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)

	f.Push(1, day, f32(10), f32(11), f32(9), f32(10.5), i64(1000))
	columnsEqual(t, f)

	// Missing observations stay nil.
	f.Push(2, day, nil, nil, nil, f32(3.14), nil)
	columnsEqual(t, f)

	if f.Len() != 2 {
		t.Errorf("Len() = %d, want 2", f.Len())
	}
	if f.Open[1] != nil {
		t.Error("Open[1] should be nil")
	}
	if *f.Close[1] != 3.14 {
		t.Errorf("Close[1] = %v, want 3.14", *f.Close[1])
	}
}

func TestExtend(t *testing.T) {
	day := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)

	t.Run("appends all columns", func(t *testing.T) {
		f := New()
		f.Push(1, day, f32(1), f32(2), f32(0.5), f32(1.5), i64(10))

		g := New()
		g.Push(2, day, f32(5), f32(6), f32(4), f32(5.5), i64(20))
		g.Push(3, day.AddDate(0, 0, 1), nil, nil, nil, nil, nil)

		if err := f.Extend(g); err != nil {
			t.Fatalf("Extend failed: %v", err)
		}
		columnsEqual(t, f)

		if f.Len() != 3 {
			t.Errorf("Len() = %d, want 3", f.Len())
		}
		if f.IDs[2] != 3 {
			t.Errorf("IDs[2] = %d, want 3", f.IDs[2])
		}
	})

	t.Run("rejects ragged source", func(t *testing.T) {
		f := New()
		f.Push(1, day, f32(1), f32(2), f32(0.5), f32(1.5), i64(10))

		g := New()
		g.Push(2, day, f32(5), f32(6), f32(4), f32(5.5), i64(20))
		g.Volume = g.Volume[:0] // break the invariant by hand

		if err := f.Extend(g); err == nil {
			t.Fatal("Extend should fail on ragged columns")
		}
		// f must be untouched.
		columnsEqual(t, f)
		if f.Len() != 1 {
			t.Errorf("Len() = %d after failed Extend, want 1", f.Len())
		}
	})
}

func TestClear(t *testing.T) {
	f := New()
	day := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)

	f.Push(1, day, f32(1), f32(2), f32(0.5), f32(1.5), i64(10))
	f.Push(2, day, f32(1), f32(2), f32(0.5), f32(1.5), i64(10))

	f.Clear()
	columnsEqual(t, f)
	if f.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", f.Len())
	}

	// Reusable after clear.
	f.Push(3, day, nil, nil, nil, nil, nil)
	columnsEqual(t, f)
	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1", f.Len())
	}
}

// TestInterleaved exercises arbitrary extend/clear sequences and checks the
// equal-length invariant after every call.
func TestInterleaved(t *testing.T) {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	f := New()

	for i := 0; i < 10; i++ {
		g := New()
		for j := 0; j <= i; j++ {
			g.Push(int64(j), day.AddDate(0, 0, j), f32(float32(j)), nil, nil, f32(float32(j)), nil)
		}
		if err := f.Extend(g); err != nil {
			t.Fatalf("Extend failed: %v", err)
		}
		columnsEqual(t, f)

		if i%3 == 2 {
			f.Clear()
			columnsEqual(t, f)
		}
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"testing"
)

func approxRange(a, b Range) bool {
	const eps = 1e-9
	return math.Abs(a.Min-b.Min) < eps && math.Abs(a.Max-b.Max) < eps
}

func TestSyncNone(t *testing.T) {
	y2 := Range{100, 200}
	for _, y1 := range []Range{{0, 1}, {-50, 50}, {5, 5}, {math.NaN(), 1}} {
		if got := SyncY2(y1, Range{0, 10}, y2, Y2Sync{}); got != y2 {
			t.Errorf("SyncY2(%v, none) = %v, want %v", y1, got, y2)
		}
	}
}

func TestSyncProportional(t *testing.T) {
	sync := Y2Sync{Mode: SyncProportional}
	tests := []struct {
		y1, y1Base, y2Base, want Range
	}{
		// Unzoomed.
		{Range{0, 10}, Range{0, 10}, Range{0, 100}, Range{0, 100}},
		// Zoomed in 2x around the center.
		{Range{2.5, 7.5}, Range{0, 10}, Range{0, 100}, Range{25, 75}},
		// Panned up by half a span.
		{Range{5, 15}, Range{0, 10}, Range{0, 100}, Range{50, 150}},
		// Degenerate base span.
		{Range{0, 10}, Range{3, 3}, Range{0, 100}, Range{0, 100}},
	}
	for _, tt := range tests {
		got := SyncY2(tt.y1, tt.y1Base, tt.y2Base, sync)
		if !approxRange(got, tt.want) {
			t.Errorf("SyncY2(%v, %v, %v, proportional) = %v, want %v", tt.y1, tt.y1Base, tt.y2Base, got, tt.want)
		}
	}
}

func TestSyncAlignZero(t *testing.T) {
	sync := Y2Sync{Mode: SyncAlignZero}
	tests := []struct {
		y1, y2Base Range
	}{
		{Range{-10, 30}, Range{0, 100}},
		{Range{-10, 30}, Range{-50, 10}},
		{Range{5, 10}, Range{-3, 3}},
		{Range{-4, -1}, Range{2, 8}},
	}
	for _, tt := range tests {
		got := SyncY2(tt.y1, tt.y1, tt.y2Base, sync)
		r1 := tt.y1.Include(0)
		p1 := (0 - r1.Min) / r1.Span()
		p2 := (0 - got.Min) / got.Span()
		if math.Abs(p1-p2) > 1e-9 {
			t.Errorf("SyncY2(%v, %v, align_zero) = %v: zero at %v, want %v", tt.y1, tt.y2Base, got, p2, p1)
		}
		n := tt.y2Base.Normalize()
		if got.Min > n.Min+1e-9 && p1 > 0 || got.Max < n.Max-1e-9 && p1 < 1 {
			t.Errorf("SyncY2(%v, %v, align_zero) = %v does not contain base range", tt.y1, tt.y2Base, got)
		}
	}
}

func TestSyncAlignValue(t *testing.T) {
	v := 10.0
	sync := Y2Sync{Mode: SyncAlignZero, AlignValue: &v}
	got := SyncY2(Range{0, 20}, Range{0, 20}, Range{0, 40}, sync)
	// 10 is mid-height on y1, so y2 must extend to [-20, 40] to
	// keep 10 centered while still showing [0, 40].
	if want := (Range{-20, 40}); !approxRange(got, want) {
		t.Errorf("SyncY2 align 10 = %v, want %v", got, want)
	}
}

func TestSyncGuards(t *testing.T) {
	y2 := Range{1, 2}
	inf := math.Inf(1)
	for _, sync := range []Y2Sync{{Mode: SyncProportional}, {Mode: SyncAlignZero}} {
		if got := SyncY2(Range{0, inf}, Range{0, 1}, y2, sync); got != y2 {
			t.Errorf("SyncY2 with infinite y1 (%v) = %v, want %v", sync.Mode, got, y2)
		}
		if got := SyncY2(Range{0, 1}, Range{0, 1}, Range{math.NaN(), 1}, sync); !math.IsNaN(got.Min) {
			t.Errorf("SyncY2 with NaN y2 base (%v) = %v, want base returned", sync.Mode, got)
		}
	}
	// Zero y1 span at the align value.
	if got := SyncY2(Range{0, 0}, Range{0, 0}, y2, Y2Sync{Mode: SyncAlignZero}); got != y2 {
		t.Errorf("SyncY2 zero span = %v, want %v", got, y2)
	}
}

func TestParseSyncMode(t *testing.T) {
	for _, m := range []SyncMode{SyncNone, SyncProportional, SyncAlignZero} {
		got, err := ParseSyncMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseSyncMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseSyncMode("bogus"); err == nil {
		t.Errorf("ParseSyncMode(bogus) succeeded")
	}
	nan := math.NaN()
	if err := (Y2Sync{Mode: SyncAlignZero, AlignValue: &nan}).Validate(); err == nil {
		t.Errorf("Validate accepted NaN align value")
	}
}

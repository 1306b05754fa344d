// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"testing"
)

func TestAuto(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	tests := []struct {
		name   string
		values []float64
		want   Range
	}{
		{"empty", nil, NoData},
		{"all non-finite", []float64{nan, inf, -inf}, NoData},
		{"single", []float64{3}, Range{2.5, 3.5}},
		{"constant", []float64{2, 2, 2}, Range{1.5, 2.5}},
		{"padded", []float64{0, 10}, Range{-0.5, 10.5}},
		{"skips non-finite", []float64{nan, 0, inf, 100, -inf}, Range{-5, 105}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Auto(tt.values)
			if math.Abs(got.Min-tt.want.Min) > 1e-12 || math.Abs(got.Max-tt.want.Max) > 1e-12 {
				t.Errorf("Auto(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name        string
		cur, cand   Range
		want        Range
		wantChanged bool
	}{
		{"sentinel to data", NoData, Range{2, 5}, Range{2, 5}, true},
		{"data to sentinel keeps data", Range{2, 5}, NoData, Range{2, 5}, false},
		{"sentinel to sentinel", NoData, NoData, NoData, false},
		{"both non-finite", Range{nan, 1}, Range{0, nan}, NoData, true},
		{"current non-finite", Range{nan, nan}, Range{3, 4}, Range{3, 4}, true},
		{"candidate non-finite", Range{3, 4}, Range{nan, 9}, Range{3, 4}, false},
		{"inside", Range{0, 10}, Range{2, 3}, Range{0, 10}, false},
		{"grow max", Range{0, 10}, Range{5, 20}, Range{0, 20}, true},
		{"grow both", Range{0, 10}, Range{-1, 11}, Range{-1, 11}, true},
		{"reversed inside", Range{10, 0}, Range{2, 3}, Range{10, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Expand(tt.cur, tt.cand)
			if got != tt.want || changed != tt.wantChanged {
				t.Errorf("Expand(%v, %v) = %v, %v; want %v, %v", tt.cur, tt.cand, got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestExpandIdempotent(t *testing.T) {
	cur := Range{0, 1.5}
	cand := Range{-3, 7}
	r, changed := Expand(cur, cand)
	if !changed {
		t.Fatalf("first Expand reported no change")
	}
	r2, changed := Expand(r, cand)
	if changed || r2 != r {
		t.Errorf("second Expand = %v, %v; want %v, false", r2, changed, r)
	}
}

func TestExpandMonotonic(t *testing.T) {
	r := NoData
	for _, cand := range []Range{{-10, 10}, {-5, 5}, {-1, 1}, NoData, {0, 0.5}} {
		prev := r
		r, _ = Expand(r, cand)
		if !prev.IsNoData() && (r.Min > prev.Min || r.Max < prev.Max) {
			t.Errorf("Expand(%v, %v) = %v shrank the range", prev, cand, r)
		}
	}
	if r != (Range{-10, 10}) {
		t.Errorf("final range = %v, want [-10,10]", r)
	}
}

func TestUnion(t *testing.T) {
	got := Union(Range{1, 2}, Range{math.NaN(), 3}, Range{5, -1})
	if want := (Range{-1, 5}); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
	if got := Union(); got != NoData {
		t.Errorf("Union() = %v, want NoData", got)
	}
}

func TestTracker(t *testing.T) {
	var tr Tracker
	if got := tr.Range("x"); got != NoData {
		t.Fatalf("empty tracker range = %v, want NoData", got)
	}
	tr2, changed := tr.Observe("x", Range{2, 5})
	if !changed || tr2.Range("x") != (Range{2, 5}) {
		t.Fatalf("Observe = %v, %v; want [2,5], true", tr2.Range("x"), changed)
	}
	if tr.Range("x") != NoData {
		t.Errorf("Observe mutated the original tracker")
	}
	tr3, changed := tr2.Observe("x", Range{3, 4})
	if changed || tr3.Range("x") != (Range{2, 5}) {
		t.Errorf("Observe inside = %v, %v; want [2,5], false", tr3.Range("x"), changed)
	}
	tr4 := tr3.Reset("x")
	if tr4.Range("x") != NoData || tr3.Range("x") != (Range{2, 5}) {
		t.Errorf("Reset = %v (original %v)", tr4.Range("x"), tr3.Range("x"))
	}
}

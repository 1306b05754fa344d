// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"bytes"
	"log/slog"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/plotcore/axis"
)

func near(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestEndpoints(t *testing.T) {
	rngs := []axis.Range{{Min: 0, Max: 500}, {Min: 400, Max: 0}, {Min: -1, Max: 1}}
	tests := []struct {
		typ    Type
		domain axis.Range
	}{
		{Linear, axis.Range{Min: 0, Max: 1}},
		{Linear, axis.Range{Min: -37.5, Max: 1e6}},
		{Linear, axis.Range{Min: 10, Max: -10}},
		{Log, axis.Range{Min: 1, Max: 1000}},
		{Log, axis.Range{Min: 0.003, Max: 7}},
		{Log, axis.Range{Min: 1e5, Max: 2}},
		{Arcsinh, axis.Range{Min: -1000, Max: 5}},
	}
	for _, tt := range tests {
		for _, r := range rngs {
			s := New(tt.typ, tt.domain, r, Options{})
			if got := s.Map(tt.domain.Min); !near(got, r.Min) {
				t.Errorf("%v.Map(%v) = %v, want %v", s, tt.domain.Min, got, r.Min)
			}
			if got := s.Map(tt.domain.Max); !near(got, r.Max) {
				t.Errorf("%v.Map(%v) = %v, want %v", s, tt.domain.Max, got, r.Max)
			}
		}
	}
}

func TestInvert(t *testing.T) {
	for _, typ := range []Type{Linear, Log, Arcsinh} {
		s := New(typ, axis.Range{Min: 0.5, Max: 2000}, axis.Range{Min: 0, Max: 640}, Options{Threshold: 3})
		for _, v := range []float64{0.5, 1, 17, 250, 2000} {
			if got := s.Invert(s.Map(v)); !near(got, v) {
				t.Errorf("%v: Invert(Map(%v)) = %v", s, v, got)
			}
		}
	}
}

func TestDegenerateDomain(t *testing.T) {
	for _, typ := range []Type{Linear, Log, Arcsinh} {
		s := New(typ, axis.Range{Min: 4, Max: 4}, axis.Range{Min: 100, Max: 300}, Options{Nice: true})
		for _, v := range []float64{-1, 4, 1e9} {
			if got := s.Map(v); got != 200 {
				t.Errorf("%v.Map(%v) = %v, want 200", s, v, got)
			}
		}
		if got := s.Invert(123); got != 4 {
			t.Errorf("%v.Invert(123) = %v, want 4", s, got)
		}
		if got := s.Ticks(TickSpec{Count: 5}); !reflect.DeepEqual(got, []float64{4}) {
			t.Errorf("%v.Ticks(5) = %v, want [4]", s, got)
		}
	}
}

func TestNonFiniteDomain(t *testing.T) {
	s := New(Linear, axis.Range{Min: math.NaN(), Max: 3}, axis.Range{Min: 0, Max: 10}, Options{})
	if got := s.Domain(); got != axis.NoData {
		t.Errorf("Domain() = %v, want NoData", got)
	}
	if got := s.Map(0.5); got != 5 {
		t.Errorf("Map(0.5) = %v, want 5", got)
	}
}

func TestLogFallback(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(slog.NewTextHandler(&buf, nil))

	s := New(Log, axis.Range{Min: -5, Max: -1}, axis.Range{Min: 0, Max: 1}, Options{Logger: lg})
	if s.Type() != Linear {
		t.Errorf("non-positive log domain: Type() = %v, want linear", s.Type())
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected a warning, got %q", buf.String())
	}

	s = New(Log, axis.Range{Min: 0, Max: 100}, axis.Range{Min: 0, Max: 1}, Options{})
	if s.Type() != Log {
		t.Fatalf("Type() = %v, want log", s.Type())
	}
	if d := s.Domain(); d.Min <= 0 || d.Max != 100 {
		t.Errorf("Domain() = %v, want positive minimum", d)
	}
	if got := s.Map(100); !near(got, 1) {
		t.Errorf("Map(100) = %v, want 1", got)
	}
}

func TestThreshold(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 1},
		{-3, machineEpsilon},
		{1e-300, machineEpsilon},
		{0.25, 0.25},
	}
	for _, tt := range tests {
		s := New(Arcsinh, axis.Range{Min: -1, Max: 1}, axis.Range{Min: 0, Max: 1}, Options{Threshold: tt.in})
		if got := s.Threshold(); got != tt.want {
			t.Errorf("threshold %v: got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestArcsinhRoundTrip(t *testing.T) {
	tests := []struct{ x, t float64 }{
		{0, 1e3}, {1e-12, 1e3}, {-3.5, 1e3}, {17, 1e3}, {1e5, 1e3}, {-2e7, 1e3},
		{1e300, 1e-10}, {-1e300, 1e-10},
	}
	for _, tt := range tests {
		u := asinhScaled(tt.x, tt.t)
		if math.IsInf(u, 0) || math.IsNaN(u) {
			t.Errorf("asinhScaled(%v, %v) = %v", tt.x, tt.t, u)
			continue
		}
		if got := sinhScaled(u, tt.t); !near(got, tt.x) {
			t.Errorf("sinhScaled(asinhScaled(%v, %v)) = %v", tt.x, tt.t, got)
		}
	}
}

func TestArcsinhHugeDomain(t *testing.T) {
	s := New(Arcsinh, axis.Range{Min: -1e300, Max: 1e300}, axis.Range{Min: 0, Max: 100}, Options{Threshold: 1e-10})
	tests := []struct{ v, want float64 }{
		{-1e300, 0},
		{0, 50},
		{1e300, 100},
	}
	for _, tt := range tests {
		if got := s.Map(tt.v); !near(got, tt.want) {
			t.Errorf("Map(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
	prev := math.Inf(-1)
	for _, v := range []float64{-1e300, -1, 0, 1, 1e300} {
		got := s.Map(v)
		if math.IsNaN(got) || got < prev {
			t.Errorf("Map(%v) = %v, want finite and above %v", v, got, prev)
		}
		prev = got
	}
	if got := s.Invert(100); !near(got, 1e300) {
		t.Errorf("Invert(100) = %v, want 1e300", got)
	}
	ticks := s.Ticks(TickSpec{Count: 5})
	if len(ticks) < 2 {
		t.Fatalf("Ticks = %v, want at least 2", ticks)
	}
	for i, v := range ticks {
		if v < -1e300 || v > 1e300 || (i > 0 && v <= ticks[i-1]) {
			t.Errorf("Ticks = %v, want ascending values in the domain", ticks)
			break
		}
	}
}

func TestNiceLinear(t *testing.T) {
	s := New(Linear, axis.Range{Min: 0.13, Max: 9.7}, axis.Range{Min: 0, Max: 1}, Options{Nice: true, TickCount: 5})
	d := s.Domain()
	if d.Min > 0.13 || d.Max < 9.7 {
		t.Errorf("niced domain %v does not cover [0.13,9.7]", d)
	}
	if d.Min != math.Floor(d.Min) || d.Max != math.Floor(d.Max) {
		t.Errorf("niced domain %v is not round", d)
	}

	rev := New(Linear, axis.Range{Min: 9.7, Max: 0.13}, axis.Range{Min: 0, Max: 1}, Options{Nice: true, TickCount: 5})
	if rd := rev.Domain(); rd.Min != d.Max || rd.Max != d.Min {
		t.Errorf("reversed niced domain = %v, want reverse of %v", rd, d)
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorbar

import (
	"image/color"
	"math"
	"testing"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/plotcore/axis"
	"github.com/aclements/plotcore/scale"
)

func TestStops(t *testing.T) {
	b := &Bar{Scale: scale.New(scale.Linear, axis.Range{Min: 0, Max: 100}, axis.Range{Min: 0, Max: 1}, scale.Options{})}
	stops := b.Stops(3)
	if len(stops) != 3 {
		t.Fatalf("Stops(3) returned %d stops", len(stops))
	}
	for i, want := range []float64{0, 50, 100} {
		if math.Abs(stops[i].Value-want) > 1e-9 {
			t.Errorf("stop %d value = %v, want %v", i, stops[i].Value, want)
		}
		if stops[i].Offset != float64(i)/2 {
			t.Errorf("stop %d offset = %v, want %v", i, stops[i].Offset, float64(i)/2)
		}
	}
	first, last := DefaultPalette.Colors[0], DefaultPalette.Colors[len(DefaultPalette.Colors)-1]
	if stops[0].Color != color.Color(first) || stops[2].Color != color.Color(last) {
		t.Errorf("end stop colors = %v, %v; want %v, %v", stops[0].Color, stops[2].Color, first, last)
	}

	if n := len(b.Stops(0)); n != 2 {
		t.Errorf("Stops(0) returned %d stops, want 2", n)
	}
}

func TestStopsLog(t *testing.T) {
	b := &Bar{
		Scale:   scale.New(scale.Log, axis.Range{Min: 1, Max: 1000}, axis.Range{Min: 0, Max: 300}, scale.Options{}),
		Palette: palette.RGBGradient{Colors: []color.RGBA{{0, 0, 0, 255}, {255, 255, 255, 255}}},
	}
	for i, s := range b.Stops(4) {
		if want := math.Pow(10, float64(i)); math.Abs(s.Value-want) > 1e-9*want {
			t.Errorf("stop %d value = %v, want %v", i, s.Value, want)
		}
	}
}

func TestTickMarks(t *testing.T) {
	b := &Bar{
		Scale: scale.New(scale.Linear, axis.Range{Min: 0, Max: 100}, axis.Range{Min: 0, Max: 1}, scale.Options{}),
		Ticks: scale.TickSpec{Values: []float64{0, 50, 100, 200}},
	}
	w, h, _, _ := b.SizeHint()
	if w != DefaultWidth || h != DefaultLength {
		t.Fatalf("SizeHint() = %v, %v; want %v, %v", w, h, DefaultWidth, DefaultLength)
	}
	b.SetLayout(10, 20, w, h)
	ticks := b.TickMarks()
	want := []Tick{
		{Value: 0, Offset: 0, X: 22, Y: 170},
		{Value: 50, Offset: 0.5, X: 22, Y: 95},
		{Value: 100, Offset: 1, X: 22, Y: 20},
	}
	if len(ticks) != len(want) {
		t.Fatalf("TickMarks() = %v, want %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Errorf("tick %d = %+v, want %+v", i, ticks[i], want[i])
		}
	}
}

func TestHorizontal(t *testing.T) {
	b := &Bar{
		Scale:      scale.New(scale.Linear, axis.Range{Min: -1, Max: 1}, axis.Range{Min: 0, Max: 1}, scale.Options{}),
		Ticks:      scale.TickSpec{Count: 3},
		Width:      8,
		Length:     100,
		Horizontal: true,
	}
	w, h, fw, fh := b.SizeHint()
	if w != 100 || h != 8 || fw || fh {
		t.Fatalf("SizeHint() = %v, %v, %v, %v; want 100, 8, false, false", w, h, fw, fh)
	}
	b.SetLayout(0, 0, w, h)
	ticks := b.TickMarks()
	if len(ticks) != 3 {
		t.Fatalf("TickMarks() = %v, want 3 ticks", ticks)
	}
	for i, wantX := range []float64{0, 50, 100} {
		if math.Abs(ticks[i].X-wantX) > 1e-9 || ticks[i].Y != 8 {
			t.Errorf("tick %d at (%v, %v), want (%v, 8)", i, ticks[i].X, ticks[i].Y, wantX)
		}
	}
}

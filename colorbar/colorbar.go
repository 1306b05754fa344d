// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorbar lays out a color bar: a gradient strip showing how
// a continuous palette maps onto a scale, with tick marks.
package colorbar

import (
	"image/color"

	"github.com/aclements/go-gg/gg/layout"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/plotcore/scale"
)

// DefaultPalette approximates the viridis color map.
var DefaultPalette = palette.RGBGradient{
	Colors: []color.RGBA{
		{0x44, 0x01, 0x54, 0xff},
		{0x3b, 0x52, 0x8b, 0xff},
		{0x21, 0x91, 0x8c, 0xff},
		{0x5e, 0xc9, 0x62, 0xff},
		{0xfd, 0xe7, 0x25, 0xff},
	},
}

// Default bar dimensions, in layout units.
const (
	DefaultWidth  = 12
	DefaultLength = 150
)

// A Bar is a color bar layout element.
//
// The bar runs along its length from the start of Scale's range to
// its end. Offsets along the bar are fractions in [0, 1], where 0 is
// the bottom of a vertical bar or the left of a horizontal one.
//
// A Bar must be used by pointer so SetLayout can record its position.
type Bar struct {
	layout.Leaf

	// Scale maps data values to bar positions. Only the shape of
	// its range is used, so any range works.
	Scale *scale.Scale

	// Palette colors the bar. If nil, DefaultPalette is used.
	Palette palette.Continuous

	// Ticks selects the tick values.
	Ticks scale.TickSpec

	// Width is the bar's thickness and Length its extent along
	// the scale. Zero values select the defaults.
	Width, Length float64

	// Horizontal lays the bar out left to right instead of bottom
	// to top.
	Horizontal bool
}

func (b *Bar) dims() (width, length float64) {
	width, length = b.Width, b.Length
	if width <= 0 {
		width = DefaultWidth
	}
	if length <= 0 {
		length = DefaultLength
	}
	return
}

// SizeHint returns the bar's fixed size.
func (b *Bar) SizeHint() (w, h float64, flexw, flexh bool) {
	width, length := b.dims()
	if b.Horizontal {
		return length, width, false, false
	}
	return width, length, false, false
}

func (b *Bar) colors() palette.Continuous {
	if b.Palette == nil {
		return DefaultPalette
	}
	return b.Palette
}

// A Stop is one gradient stop of a bar.
type Stop struct {
	Offset float64
	Value  float64
	Color  color.Color
}

// Stops returns n evenly spaced gradient stops from offset 0 to 1.
// n is raised to 2 if smaller. The value at each stop comes from
// inverting Scale, so stops on a log or arcsinh bar are spaced evenly
// in the transformed space.
func (b *Bar) Stops(n int) []Stop {
	if n < 2 {
		n = 2
	}
	r := b.Scale.Range()
	pal := b.colors()
	stops := make([]Stop, n)
	for i := range stops {
		off := float64(i) / float64(n-1)
		stops[i] = Stop{
			Offset: off,
			Value:  b.Scale.Invert(r.Min + off*r.Span()),
			Color:  pal.Map(off),
		}
	}
	return stops
}

// A Tick is a tick mark on a bar.
type Tick struct {
	Value float64

	// Offset is the fractional position along the bar.
	Offset float64

	// X and Y are the tick's layout position on the bar's outer
	// edge: the right edge of a vertical bar or the bottom of a
	// horizontal one.
	X, Y float64
}

// TickMarks returns the ticks selected by b.Ticks at b's current
// layout position. Ticks outside the bar are dropped.
func (b *Bar) TickMarks() []Tick {
	r := b.Scale.Range()
	x, y, w, h := b.Layout()
	var ticks []Tick
	for _, v := range b.Scale.Ticks(b.Ticks) {
		off := 0.5
		if span := r.Span(); span != 0 {
			off = (b.Scale.Map(v) - r.Min) / span
		}
		const eps = 1e-9
		if !(off >= -eps && off <= 1+eps) {
			continue
		}
		t := Tick{Value: v, Offset: off}
		if b.Horizontal {
			t.X, t.Y = x+off*w, y+h
		} else {
			t.X, t.Y = x+w, y+h-off*h
		}
		ticks = append(ticks, t)
	}
	return ticks
}

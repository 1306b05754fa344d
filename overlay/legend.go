// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import (
	"image/color"

	"github.com/aclements/go-gg/gg/layout"
	"github.com/aclements/plotcore/textmetrics"
)

// Default legend geometry, in layout units.
const (
	DefaultLegendPadding = 6
	DefaultSwatchSize    = 10
)

// A LegendEntry is one row of a legend.
type LegendEntry struct {
	Label string
	Color color.Color
}

// Legend is a layout element listing series labels next to color
// swatches, one entry per row.
//
// A Legend must be used by pointer so SetLayout can record its
// position.
type Legend struct {
	layout.Leaf

	Entries []LegendEntry

	// Measurer sizes the labels. If nil, textmetrics.Default is
	// used.
	Measurer textmetrics.Measurer

	// Padding is the margin inside the legend box and the gap
	// between a swatch and its label. Swatch is the side length
	// of each color swatch. Zero values select the defaults.
	Padding, Swatch float64
}

func (l *Legend) measurer() textmetrics.Measurer {
	if l.Measurer == nil {
		return textmetrics.Default()
	}
	return l.Measurer
}

func (l *Legend) metrics() (pad, swatch, row float64) {
	pad, swatch = l.Padding, l.Swatch
	if pad <= 0 {
		pad = DefaultLegendPadding
	}
	if swatch <= 0 {
		swatch = DefaultSwatchSize
	}
	row = l.measurer().LineHeight()
	if swatch > row {
		row = swatch
	}
	return
}

// SizeHint returns the size needed to show every entry. A legend
// does not stretch.
func (l *Legend) SizeHint() (w, h float64, flexw, flexh bool) {
	if len(l.Entries) == 0 {
		return 0, 0, false, false
	}
	pad, swatch, row := l.metrics()
	labels := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		labels[i] = e.Label
	}
	w = 3*pad + swatch + textmetrics.MaxWidth(l.measurer(), labels)
	h = 2*pad + row*float64(len(l.Entries))
	return w, h, false, false
}

// A LegendItem is the resolved geometry of one legend entry.
type LegendItem struct {
	LegendEntry

	// Swatch is the color swatch rectangle.
	Swatch Rect

	// TextX and TextY are the start of the label, vertically
	// centered on the swatch.
	TextX, TextY float64
}

// Items returns the geometry of every entry at the legend's current
// layout position.
func (l *Legend) Items() []LegendItem {
	x, y, _, _ := l.Layout()
	pad, swatch, row := l.metrics()
	items := make([]LegendItem, len(l.Entries))
	for i, e := range l.Entries {
		top := y + pad + row*float64(i)
		sy := top + (row-swatch)/2
		items[i] = LegendItem{
			LegendEntry: e,
			Swatch:      Rect{x + pad, sy, swatch, swatch},
			TextX:       x + 2*pad + swatch,
			TextY:       top + row/2,
		}
	}
	return items
}

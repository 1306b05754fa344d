// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package margin computes the padding around a plot area needed to
// fit its tick labels and titles.
package margin

import (
	"fmt"
	"math"

	"github.com/aclements/plotcore/overlay"
	"github.com/aclements/plotcore/textmetrics"
)

// Fixed spacing, in layout units.
const (
	// Pad is the minimum inset on every side.
	Pad = 10

	// TickLength is the length of a tick mark outside the plot.
	TickLength = 5

	// Gap separates tick marks, labels and titles.
	Gap = 3
)

// Labels formats tick values for display.
func Labels(ticks []float64) []string {
	out := make([]string, len(ticks))
	for i, v := range ticks {
		if v == 0 {
			// Avoid "-0".
			v = 0
		}
		out[i] = fmt.Sprintf("%.6g", v)
	}
	return out
}

// Axes describes the labels drawn around a plot.
type Axes struct {
	// X are the bottom tick labels, Y the left tick labels and Y2
	// the right tick labels, each in axis order.
	X, Y, Y2 []string

	Title, XTitle, YTitle, Y2Title string
}

// Insets are the distances from each edge of the chart to the plot
// area.
type Insets struct {
	Left, Right, Top, Bottom float64
}

// Compute returns the insets needed to show a's labels measured by m.
// If m is nil, textmetrics.Default is used.
//
// Y axis titles are assumed to be rotated, so they take one line of
// width. The first and last X labels are centered on the plot edges
// and may push the side insets out.
func Compute(a Axes, m textmetrics.Measurer) Insets {
	if m == nil {
		m = textmetrics.Default()
	}
	line := m.LineHeight()

	side := func(labels []string, title string) float64 {
		w := float64(Pad)
		if len(labels) > 0 {
			w += TickLength + Gap + textmetrics.MaxWidth(m, labels)
		}
		if title != "" {
			w += line + Gap
		}
		return w
	}
	in := Insets{
		Left:   side(a.Y, a.YTitle),
		Right:  side(a.Y2, a.Y2Title),
		Top:    Pad,
		Bottom: Pad,
	}

	if n := len(a.X); n > 0 {
		in.Bottom += TickLength + Gap + line
		in.Left = math.Max(in.Left, Pad+m.TextWidth(a.X[0])/2)
		in.Right = math.Max(in.Right, Pad+m.TextWidth(a.X[n-1])/2)
	}
	if a.XTitle != "" {
		in.Bottom += line + Gap
	}
	if a.Title != "" {
		in.Top += line + Gap
	} else if len(a.Y) > 0 || len(a.Y2) > 0 {
		// The top tick label is centered on the top edge.
		in.Top += line / 2
	}
	return in
}

// Inner returns the plot area of a w by h chart with insets in. The
// area collapses to zero size if the insets do not fit.
func Inner(w, h float64, in Insets) overlay.Rect {
	return overlay.Rect{
		X: in.Left,
		Y: in.Top,
		W: math.Max(0, w-in.Left-in.Right),
		H: math.Max(0, h-in.Top-in.Bottom),
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refgeom resolves declarative reference lines and planes
// into concrete geometry.
//
// Two dimensional lines resolve to pixel segments through a pair of
// axis scales. Three dimensional lines and planes resolve to points
// in a centered scene coordinate system (see Scene). Geometry that
// falls outside the plot, or that is degenerate, resolves to "not
// visible" rather than an error.
package refgeom

import (
	"log/slog"
	"math"

	"github.com/aclements/plotcore/axis"
	"github.com/aclements/plotcore/internal/diag"
)

// A Mapper maps data values on one axis to pixels. *scale.Scale
// implements Mapper.
type Mapper interface {
	Map(v float64) float64
}

// Style is the visual style of a reference line. It is passed
// through untouched for the renderer.
type Style struct {
	Color   string
	Width   float64
	Dash    []float64
	Opacity float64
}

// Span limits the extent of a reference line along one axis. Either
// bound may be nil, meaning unbounded.
type Span struct {
	Min, Max *float64
}

// clip intersects r with s. It reports false if the result is
// empty.
func (s Span) clip(r axis.Range) (axis.Range, bool) {
	r = r.Normalize()
	if s.Min != nil && *s.Min > r.Min {
		r.Min = *s.Min
	}
	if s.Max != nil && *s.Max < r.Max {
		r.Max = *s.Max
	}
	return r, r.Min <= r.Max
}

func (s Span) contains(v float64) bool {
	return (s.Min == nil || v >= *s.Min) && (s.Max == nil || v <= *s.Max)
}

// Common holds the attributes shared by all reference line and plane
// descriptions.
type Common struct {
	Name       string
	Style      Style
	HoverStyle Style
	Annotation *Annotation
	XSpan      Span
	YSpan      Span
	Hidden     bool
}

func (c Common) common() Common { return c }

// A Line is a two dimensional reference line description. It is
// one of Horizontal, Vertical, Diagonal, LineSegment or
// InfiniteLine.
type Line interface {
	common() Common
}

// Horizontal is the line y = Y across the plot.
type Horizontal struct {
	Common
	Y any
}

// Vertical is the line x = X across the plot.
type Vertical struct {
	Common
	X any
}

// Diagonal is the line y = Slope*x + Intercept.
type Diagonal struct {
	Common
	Slope, Intercept float64
}

// LineSegment is the segment between two points.
type LineSegment struct {
	Common
	X1, Y1, X2, Y2 any
}

// InfiniteLine is the line through two points, extended to the edges
// of the plot.
type InfiniteLine struct {
	Common
	X1, Y1, X2, Y2 any
}

// Segment is a resolved line in pixel coordinates.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Bounds is the visible data extent of a two dimensional plot.
type Bounds struct {
	X, Y axis.Range
}

// A Resolver turns two dimensional reference lines into pixel
// segments.
type Resolver struct {
	Bounds Bounds
	X, Y   Mapper

	// Logger receives coercion warnings. It may be nil.
	Logger *slog.Logger
}

// Resolve returns the visible pixel segment of l, or false if no
// part of l is visible.
func (r Resolver) Resolve(l Line) (Segment, bool) {
	if l == nil || l.common().Hidden {
		return Segment{}, false
	}
	x1, y1, x2, y2, ok := r.resolveData(l)
	if !ok {
		return Segment{}, false
	}
	return Segment{r.X.Map(x1), r.Y.Map(y1), r.X.Map(x2), r.Y.Map(y2)}, true
}

// resolveData returns the visible endpoints of l in data space.
func (r Resolver) resolveData(l Line) (x1, y1, x2, y2 float64, ok bool) {
	b := Bounds{r.Bounds.X.Normalize(), r.Bounds.Y.Normalize()}
	c := l.common()

	switch l := l.(type) {
	case Horizontal:
		y := r.coerce(l.Y)
		if !finite(y) || !b.Y.Contains(y) || !c.YSpan.contains(y) {
			return
		}
		xr, ok := c.XSpan.clip(b.X)
		if !ok {
			return 0, 0, 0, 0, false
		}
		return xr.Min, y, xr.Max, y, true

	case Vertical:
		x := r.coerce(l.X)
		if !finite(x) || !b.X.Contains(x) || !c.XSpan.contains(x) {
			return
		}
		yr, ok := c.YSpan.clip(b.Y)
		if !ok {
			return 0, 0, 0, 0, false
		}
		return x, yr.Min, x, yr.Max, true

	case Diagonal:
		if !finite(l.Slope) || !finite(l.Intercept) {
			return
		}
		return clipLine(l.Slope, l.Intercept, b, c)

	case InfiniteLine:
		px1, py1 := r.coerce(l.X1), r.coerce(l.Y1)
		px2, py2 := r.coerce(l.X2), r.coerce(l.Y2)
		if !finite(px1) || !finite(py1) || !finite(px2) || !finite(py2) {
			return
		}
		if px1 == px2 {
			if py1 == py2 {
				// Two equal points do not define a line.
				return
			}
			return r.resolveData(Vertical{Common: c, X: px1})
		}
		slope := (py2 - py1) / (px2 - px1)
		return clipLine(slope, py1-slope*px1, b, c)

	case LineSegment:
		p := [2]float64{r.coerce(l.X1), r.coerce(l.Y1)}
		q := [2]float64{r.coerce(l.X2), r.coerce(l.Y2)}
		for _, v := range []float64{p[0], p[1], q[0], q[1]} {
			if !finite(v) {
				return
			}
		}
		t0, t1 := 0.0, 1.0
		spans := [2]Span{c.XSpan, c.YSpan}
		for i := range spans {
			if !clipParam(p[i], q[i]-p[i], spans[i], &t0, &t1) {
				return
			}
		}
		return p[0] + t0*(q[0]-p[0]), p[1] + t0*(q[1]-p[1]),
			p[0] + t1*(q[0]-p[0]), p[1] + t1*(q[1]-p[1]), true
	}

	diag.Or(r.Logger).Warn("unknown reference line kind", "line", l)
	return
}

func (r Resolver) coerce(v any) float64 {
	return Coerce(v, r.Logger)
}

// clipLine clips y = slope*x + icept to the bounds and spans.
func clipLine(slope, icept float64, b Bounds, c Common) (x1, y1, x2, y2 float64, ok bool) {
	xr, ok := c.XSpan.clip(b.X)
	if !ok {
		return
	}
	yr, ok := c.YSpan.clip(b.Y)
	if !ok {
		return
	}
	x1, x2 = xr.Min, xr.Max
	if slope == 0 {
		if !yr.Contains(icept) {
			return 0, 0, 0, 0, false
		}
	} else {
		xa, xb := (yr.Min-icept)/slope, (yr.Max-icept)/slope
		if xa > xb {
			xa, xb = xb, xa
		}
		x1, x2 = math.Max(x1, xa), math.Min(x2, xb)
		if x1 > x2 {
			return 0, 0, 0, 0, false
		}
	}
	return x1, slope*x1 + icept, x2, slope*x2 + icept, true
}

// clipParam narrows the parameter interval [t0, t1] of p + t*d so
// that the coordinate stays within s. It reports false if the
// interval becomes empty.
func clipParam(p, d float64, s Span, t0, t1 *float64) bool {
	bound := func(limit float64, lower bool) bool {
		if d == 0 {
			if lower {
				return p >= limit
			}
			return p <= limit
		}
		t := (limit - p) / d
		// Entering the allowed half-line when moving forward
		// raises t0; leaving it lowers t1.
		if (d > 0) == lower {
			*t0 = math.Max(*t0, t)
		} else {
			*t1 = math.Min(*t1, t)
		}
		return *t0 <= *t1
	}
	if s.Min != nil && !bound(*s.Min, true) {
		return false
	}
	if s.Max != nil && !bound(*s.Max, false) {
		return false
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

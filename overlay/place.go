// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overlay places floating chart elements, such as legends and
// color bars, over the plot area where they hide the least data.
//
// Placement is a scored search over a uniform grid of candidate
// positions. Each candidate loses a point for every data point it
// covers, gains a bonus for hugging a corner of the plot, and is
// heavily penalized for overlapping any excluded rectangle, such as
// an element placed earlier.
package overlay

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
)

// Scoring weights.
const (
	// DistanceWeight scales the distance from a candidate to the
	// nearest data point. It only breaks ties between candidates
	// that cover the same number of points.
	DistanceWeight = 1e-3

	// MaxDistanceScore caps the distance term so that it never
	// outweighs one covered point.
	MaxDistanceScore = 0.5

	// CornerWeight is the bonus for a candidate sitting exactly in
	// a corner of the placement region. It decays linearly to 0
	// at the far side of the region.
	CornerWeight = 3

	// ExcludePenalty is subtracted for every excluded rectangle a
	// candidate overlaps.
	ExcludePenalty = 1e6
)

// MaxPoints is the number of data points above which Place scores
// against an even-stride subsample.
const MaxPoints = 500

// DefaultGridResolution is the grid resolution used when
// Params.GridResolution is 0.
const DefaultGridResolution = 10

// MaxGridResolution bounds Params.GridResolution. Place scores the
// square of the resolution candidates.
const MaxGridResolution = 32

// A Point is a data point in screen coordinates.
type Point struct {
	X, Y float64
}

// A Size is the width and height of an element.
type Size struct {
	W, H float64
}

// A Rect is an axis-aligned rectangle with top-left corner (X, Y).
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) String() string {
	return fmt.Sprintf("%gx%g+%g+%g", r.W, r.H, r.X, r.Y)
}

// Contains reports whether p lies inside r, including its edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Overlaps reports whether r and o share a region of positive area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Params describes one placement problem.
type Params struct {
	// Bounds is the plot area.
	Bounds Rect

	// Size is the size of the element to place.
	Size Size

	// Points are the data points the element should avoid.
	Points []Point

	// Exclude are rectangles the element must not cover.
	Exclude []Rect

	// AxisClearance is the gap kept between the element and every
	// edge of Bounds.
	AxisClearance float64

	// GridResolution is the number of candidate positions along
	// each axis. Values below 2 are raised to 2, except that 0
	// means DefaultGridResolution. Values above MaxGridResolution
	// are lowered to it.
	GridResolution int
}

// A Candidate is a scored element position. Higher scores are better.
type Candidate struct {
	Rect
	Score float64
}

// Place returns the best position for an element of p.Size inside
// p.Bounds. Points with a non-finite coordinate are ignored.
//
// If the element does not fit in the region left after clearance, the
// candidate range collapses to the region's top-left corner, so Place
// always returns a position. Among equally scored candidates the first
// in row-major grid order wins.
func Place(p Params) Candidate {
	xs, ys := grid(p)
	pts := subsample(finitePoints(p.Points))
	region := shrink(p.Bounds, p.AxisClearance)

	best := Candidate{Score: math.Inf(-1)}
	for _, y := range ys {
		for _, x := range xs {
			r := Rect{x, y, p.Size.W, p.Size.H}
			s := score(r, region, pts, p.Exclude)
			if s > best.Score {
				best = Candidate{r, s}
			}
		}
	}
	return best
}

// shrink returns b inset by d on all sides. Reversed sides collapse to
// their midpoint.
func shrink(b Rect, d float64) Rect {
	if !(d > 0) || math.IsInf(d, 0) {
		d = 0
	}
	r := Rect{b.X + d, b.Y + d, b.W - 2*d, b.H - 2*d}
	if r.W < 0 {
		r.X, r.W = b.X+b.W/2, 0
	}
	if r.H < 0 {
		r.Y, r.H = b.Y+b.H/2, 0
	}
	return r
}

// grid returns the candidate x and y positions for the element's
// top-left corner.
func grid(p Params) (xs, ys []float64) {
	n := p.GridResolution
	if n == 0 {
		n = DefaultGridResolution
	} else if n < 2 {
		n = 2
	} else if n > MaxGridResolution {
		n = MaxGridResolution
	}
	region := shrink(p.Bounds, p.AxisClearance)
	axis := func(lo, extent, size float64) []float64 {
		hi := lo + extent - size
		if hi < lo {
			hi = lo
		}
		return vec.Linspace(lo, hi, n)
	}
	return axis(region.X, region.W, p.Size.W), axis(region.Y, region.H, p.Size.H)
}

// finitePoints returns the points of pts whose coordinates are both
// finite. It returns pts itself when there is nothing to drop.
func finitePoints(pts []Point) []Point {
	for i, pt := range pts {
		if !pt.finite() {
			out := append([]Point(nil), pts[:i]...)
			for _, pt := range pts[i+1:] {
				if pt.finite() {
					out = append(out, pt)
				}
			}
			return out
		}
	}
	return pts
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// subsample returns at most MaxPoints of pts, taken at an even stride.
func subsample(pts []Point) []Point {
	if len(pts) <= MaxPoints {
		return pts
	}
	out := make([]Point, 0, MaxPoints)
	stride := float64(len(pts)) / MaxPoints
	for i := 0; i < MaxPoints; i++ {
		out = append(out, pts[int(float64(i)*stride)])
	}
	return out
}

func score(r, region Rect, pts []Point, exclude []Rect) float64 {
	s := 0.0
	nearest := math.Inf(1)
	for _, pt := range pts {
		if r.Contains(pt) {
			s--
		}
		nearest = math.Min(nearest, rectDist(r, pt))
	}
	if !math.IsInf(nearest, 0) {
		s += math.Min(nearest*DistanceWeight, MaxDistanceScore)
	}
	s += CornerWeight * cornerCloseness(r, region)
	for _, ex := range exclude {
		if r.Overlaps(ex) {
			s -= ExcludePenalty
		}
	}
	return s
}

// rectDist returns the distance from pt to the nearest point of r.
func rectDist(r Rect, pt Point) float64 {
	dx := math.Max(0, math.Max(r.X-pt.X, pt.X-(r.X+r.W)))
	dy := math.Max(0, math.Max(r.Y-pt.Y, pt.Y-(r.Y+r.H)))
	return math.Hypot(dx, dy)
}

// cornerCloseness returns 1 when a corner of r coincides with the
// matching corner of region, falling linearly to 0 when the closest
// such pair is a region diagonal apart.
func cornerCloseness(r, region Rect) float64 {
	diag := math.Hypot(region.W, region.H)
	if diag == 0 {
		return 1
	}
	pairs := [4][2]Point{
		{{r.X, r.Y}, {region.X, region.Y}},
		{{r.X + r.W, r.Y}, {region.X + region.W, region.Y}},
		{{r.X, r.Y + r.H}, {region.X, region.Y + region.H}},
		{{r.X + r.W, r.Y + r.H}, {region.X + region.W, region.Y + region.H}},
	}
	d := math.Inf(1)
	for _, pr := range pairs {
		d = math.Min(d, math.Hypot(pr[0].X-pr[1].X, pr[0].Y-pr[1].Y))
	}
	return math.Max(0, 1-d/diag)
}

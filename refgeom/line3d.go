// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refgeom

import (
	"log/slog"
	"math"

	"github.com/aclements/plotcore/internal/diag"
)

// slabEpsilon is the tolerance used when testing whether a crossing
// with a bounding plane lies on the box.
const slabEpsilon = 1e-6

// Common3D holds the attributes shared by three dimensional
// reference line and plane descriptions.
type Common3D struct {
	Common
	ZSpan Span
}

func (c Common3D) common3D() Common3D { return c }

// spans returns the X, Y and Z spans of c.
func (c Common3D) spans() [3]Span {
	return [3]Span{c.XSpan, c.YSpan, c.ZSpan}
}

// Point3 is a point in a three dimensional reference description.
// Each coordinate is coerced like a two dimensional axis value.
type Point3 struct {
	X, Y, Z any
}

// A Line3D is a three dimensional reference line description. It
// is one of XAxisLine, YAxisLine, ZAxisLine, Segment3D or
// InfiniteLine3D.
type Line3D interface {
	common3D() Common3D
}

// XAxisLine is the line parallel to the X axis through (Y, Z).
type XAxisLine struct {
	Common3D
	Y, Z any
}

// YAxisLine is the line parallel to the Y axis through (X, Z).
type YAxisLine struct {
	Common3D
	X, Z any
}

// ZAxisLine is the line parallel to the Z axis through (X, Y).
type ZAxisLine struct {
	Common3D
	X, Y any
}

// Segment3D is the segment between two points.
type Segment3D struct {
	Common3D
	From, To Point3
}

// InfiniteLine3D is the line through two points, clipped to the
// visible box.
type InfiniteLine3D struct {
	Common3D
	P1, P2 Point3
}

// A Resolver3D turns three dimensional reference lines and planes
// into scene coordinates.
type Resolver3D struct {
	Scene Scene

	// Logger receives coercion warnings. It may be nil.
	Logger *slog.Logger
}

func (r Resolver3D) point(p Point3) Vec3 {
	return Vec3{Coerce(p.X, r.Logger), Coerce(p.Y, r.Logger), Coerce(p.Z, r.Logger)}
}

// box returns the visible box narrowed by spans. It reports false if
// the result is empty.
func (r Resolver3D) box(spans [3]Span) (Box, bool) {
	b := r.Scene.Box.normalize()
	var ok [3]bool
	b.X, ok[0] = spans[0].clip(b.X)
	b.Y, ok[1] = spans[1].clip(b.Y)
	b.Z, ok[2] = spans[2].clip(b.Z)
	return b, ok[0] && ok[1] && ok[2]
}

// Line returns the visible part of l as two points in scene
// coordinates, or false if no part of l is visible.
func (r Resolver3D) Line(l Line3D) ([2]Vec3, bool) {
	if l == nil {
		return [2]Vec3{}, false
	}
	c := l.common3D()
	if c.Hidden {
		return [2]Vec3{}, false
	}
	p, q, ok := r.lineData(l, c)
	if !ok {
		return [2]Vec3{}, false
	}
	return [2]Vec3{r.Scene.ToScene(p), r.Scene.ToScene(q)}, true
}

func (r Resolver3D) lineData(l Line3D, c Common3D) (p, q Vec3, ok bool) {
	b, ok := r.box(c.spans())
	if !ok {
		return
	}

	// axisLine spans axis i of b at fixed coordinates elsewhere.
	axisLine := func(i int, at Vec3) (Vec3, Vec3, bool) {
		for j := 0; j < 3; j++ {
			if j == i {
				continue
			}
			v := at.at(j)
			if !finite(v) || !b.axis(j).Contains(v) {
				return Vec3{}, Vec3{}, false
			}
		}
		lo, hi := at, at
		r := b.axis(i)
		switch i {
		case 0:
			lo.X, hi.X = r.Min, r.Max
		case 1:
			lo.Y, hi.Y = r.Min, r.Max
		case 2:
			lo.Z, hi.Z = r.Min, r.Max
		}
		return lo, hi, true
	}

	switch l := l.(type) {
	case XAxisLine:
		return axisLine(0, Vec3{Y: Coerce(l.Y, r.Logger), Z: Coerce(l.Z, r.Logger)})
	case YAxisLine:
		return axisLine(1, Vec3{X: Coerce(l.X, r.Logger), Z: Coerce(l.Z, r.Logger)})
	case ZAxisLine:
		return axisLine(2, Vec3{X: Coerce(l.X, r.Logger), Y: Coerce(l.Y, r.Logger)})

	case Segment3D:
		from, to := r.point(l.From), r.point(l.To)
		if !from.isFinite() || !to.isFinite() {
			return
		}
		d := to.Sub(from)
		t0, t1 := 0.0, 1.0
		spans := c.spans()
		for i := 0; i < 3; i++ {
			if !clipParam(from.at(i), d.at(i), spans[i], &t0, &t1) {
				return Vec3{}, Vec3{}, false
			}
		}
		return from.lerp(to, t0), from.lerp(to, t1), true

	case InfiniteLine3D:
		p1, p2 := r.point(l.P1), r.point(l.P2)
		if !p1.isFinite() || !p2.isFinite() {
			return
		}
		return slabClip(p1, p2, b)
	}

	diag.Or(r.Logger).Warn("unknown 3D reference line kind", "line", l)
	return
}

// slabClip returns the part of the infinite line through p1 and p2
// that lies inside normalized box b.
//
// For each of the six faces of b not parallel to the line, it finds
// the line parameter t of the crossing and keeps the crossing if it
// lies on the box. The extreme kept parameters bound the visible
// segment.
func slabClip(p1, p2 Vec3, b Box) (Vec3, Vec3, bool) {
	d := p2.Sub(p1)
	var ts []float64
	for i := 0; i < 3; i++ {
		di := d.at(i)
		if di == 0 {
			continue
		}
		r := b.axis(i)
		for _, bound := range []float64{r.Min, r.Max} {
			t := (bound - p1.at(i)) / di
			if b.contains(p1.Add(d.Scale(t)), slabEpsilon) {
				ts = append(ts, t)
			}
		}
	}
	if len(ts) < 2 {
		return Vec3{}, Vec3{}, false
	}
	tMin, tMax := math.Inf(1), math.Inf(-1)
	for _, t := range ts {
		tMin = math.Min(tMin, t)
		tMax = math.Max(tMax, t)
	}
	return p1.Add(d.Scale(tMin)), p1.Add(d.Scale(tMax)), true
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refgeom

import (
	"math"

	"github.com/aclements/plotcore/internal/diag"
)

// minNormal is the smallest normal vector length for which a plane
// is considered well defined.
const minNormal = 1e-9

// A Plane is a reference plane description. It is one of PlaneXY,
// PlaneXZ, PlaneYZ, PlaneNormal or PlanePoints.
type Plane interface {
	common3D() Common3D
}

// PlaneXY is the plane z = Z.
type PlaneXY struct {
	Common3D
	Z any
}

// PlaneXZ is the plane y = Y.
type PlaneXZ struct {
	Common3D
	Y any
}

// PlaneYZ is the plane x = X.
type PlaneYZ struct {
	Common3D
	X any
}

// PlaneNormal is the plane through Point perpendicular to Normal.
type PlaneNormal struct {
	Common3D
	Point  Point3
	Normal Vec3
}

// PlanePoints is the plane through three points.
type PlanePoints struct {
	Common3D
	P1, P2, P3 Point3
}

// Plane returns the four corners of the visible quad of p in scene
// coordinates, or false if p is not visible.
//
// Axis-parallel planes resolve to their cross-section of the visible
// box, narrowed by any spans. Other planes resolve to a square
// centered on their anchor point (PlaneNormal.Point or
// PlanePoints.P1) whose half-width is twice the largest box
// dimension, so it covers the box from any anchor inside it. A plane
// whose normal is shorter than 1e-9 (including three collinear
// points) is not visible.
func (r Resolver3D) Plane(p Plane) ([4]Vec3, bool) {
	if p == nil {
		return [4]Vec3{}, false
	}
	c := p.common3D()
	if c.Hidden {
		return [4]Vec3{}, false
	}
	corners, ok := r.planeData(p, c)
	if !ok {
		return [4]Vec3{}, false
	}
	for i, v := range corners {
		corners[i] = r.Scene.ToScene(v)
	}
	return corners, true
}

func (r Resolver3D) planeData(p Plane, c Common3D) ([4]Vec3, bool) {
	var none [4]Vec3

	// section returns the cross-section of the spanned box at
	// coordinate v on axis i.
	section := func(i int, v float64) ([4]Vec3, bool) {
		b, ok := r.box(c.spans())
		if !ok || !finite(v) || !b.axis(i).Contains(v) {
			return none, false
		}
		// u and w are the two in-plane axes, in order.
		u, w := (i+1)%3, (i+2)%3
		if u > w {
			u, w = w, u
		}
		ur, wr := b.axis(u), b.axis(w)
		var out [4]Vec3
		for k, uw := range [4][2]float64{
			{ur.Min, wr.Min}, {ur.Max, wr.Min}, {ur.Max, wr.Max}, {ur.Min, wr.Max},
		} {
			var coords [3]float64
			coords[i], coords[u], coords[w] = v, uw[0], uw[1]
			out[k] = Vec3{coords[0], coords[1], coords[2]}
		}
		return out, true
	}

	switch p := p.(type) {
	case PlaneYZ:
		return section(0, Coerce(p.X, r.Logger))
	case PlaneXZ:
		return section(1, Coerce(p.Y, r.Logger))
	case PlaneXY:
		return section(2, Coerce(p.Z, r.Logger))
	case PlaneNormal:
		return r.quad(r.point(p.Point), p.Normal)
	case PlanePoints:
		p1, p2, p3 := r.point(p.P1), r.point(p.P2), r.point(p.P3)
		return r.quad(p1, p2.Sub(p1).Cross(p3.Sub(p1)))
	}

	diag.Or(r.Logger).Warn("unknown reference plane kind", "plane", p)
	return none, false
}

// quad returns a square in the plane through anchor with the given
// normal.
func (r Resolver3D) quad(anchor, normal Vec3) ([4]Vec3, bool) {
	if !anchor.isFinite() || !normal.isFinite() || normal.Len() < minNormal {
		return [4]Vec3{}, false
	}
	n := normal.Unit()

	// Cross n with the coordinate axis it is least aligned with to
	// get a stable in-plane direction.
	ref := Vec3{X: 1}
	if math.Abs(n.Y) < math.Abs(n.X) && math.Abs(n.Y) <= math.Abs(n.Z) {
		ref = Vec3{Y: 1}
	} else if math.Abs(n.Z) < math.Abs(n.X) && math.Abs(n.Z) < math.Abs(n.Y) {
		ref = Vec3{Z: 1}
	}
	u := n.Cross(ref).Unit()
	v := n.Cross(u)

	size := 2 * r.Scene.Box.normalize().maxDim()
	u, v = u.Scale(size), v.Scale(size)
	return [4]Vec3{
		anchor.Sub(u).Sub(v),
		anchor.Add(u).Sub(v),
		anchor.Add(u).Add(v),
		anchor.Sub(u).Add(v),
	}, true
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refgeom

import (
	"math"
	"testing"

	"github.com/aclements/plotcore/axis"
)

func approxVec(a, b Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func unitBox() Box {
	return Box{axis.Range{Min: 0, Max: 10}, axis.Range{Min: 0, Max: 10}, axis.Range{Min: 0, Max: 10}}
}

func testResolver3D() Resolver3D {
	return Resolver3D{Scene: Scene{Box: unitBox(), Size: Vec3{10, 10, 10}}}
}

func TestSceneAxisSwap(t *testing.T) {
	s := Scene{
		Box:  Box{axis.Range{Min: 0, Max: 1}, axis.Range{Min: 0, Max: 100}, axis.Range{Min: -5, Max: 5}},
		Size: Vec3{2, 4, 8},
	}
	tests := []struct{ data, scene Vec3 }{
		{Vec3{0.5, 50, 0}, Vec3{0, 0, 0}},
		{Vec3{1, 50, 0}, Vec3{1, 0, 0}},
		// Data Z is scene Y (up).
		{Vec3{0.5, 50, 5}, Vec3{0, 2, 0}},
		// Data Y is scene Z.
		{Vec3{0.5, 0, 0}, Vec3{0, 0, -4}},
	}
	for _, tt := range tests {
		if got := s.ToScene(tt.data); !approxVec(got, tt.scene) {
			t.Errorf("ToScene(%v) = %v, want %v", tt.data, got, tt.scene)
		}
		if got := s.FromScene(tt.scene); !approxVec(got, tt.data) {
			t.Errorf("FromScene(%v) = %v, want %v", tt.scene, got, tt.data)
		}
	}

	// Degenerate axes map to the center.
	flat := Scene{Box: Box{axis.Range{Min: 3, Max: 3}, axis.Range{Min: 0, Max: 1}, axis.Range{Min: 0, Max: 1}}, Size: Vec3{1, 1, 1}}
	if got := flat.ToScene(Vec3{3, 0, 0}); got.X != 0 {
		t.Errorf("degenerate axis ToScene x = %v, want 0", got.X)
	}
}

func TestLine3D(t *testing.T) {
	r := testResolver3D()
	tests := []struct {
		name string
		line Line3D
		want [2]Vec3 // data coordinates
		ok   bool
	}{
		{"x axis", XAxisLine{Y: 5, Z: 5}, [2]Vec3{{0, 5, 5}, {10, 5, 5}}, true},
		{"x axis outside", XAxisLine{Y: 5, Z: 11}, [2]Vec3{}, false},
		{"y axis span", YAxisLine{Common3D: Common3D{Common: Common{YSpan: Span{Max: ptr(4)}}}, X: 1, Z: 2}, [2]Vec3{{1, 0, 2}, {1, 4, 2}}, true},
		{"z axis", ZAxisLine{X: 0, Y: 10}, [2]Vec3{{0, 10, 0}, {0, 10, 10}}, true},
		{"z axis z span", ZAxisLine{Common3D: Common3D{ZSpan: Span{Min: ptr(3)}}, X: 0, Y: 10}, [2]Vec3{{0, 10, 3}, {0, 10, 10}}, true},
		{"segment", Segment3D{From: Point3{1, 2, 3}, To: Point3{4, 5, 6}}, [2]Vec3{{1, 2, 3}, {4, 5, 6}}, true},
		{"segment z span", Segment3D{Common3D: Common3D{ZSpan: Span{Max: ptr(4.5)}}, From: Point3{1, 2, 3}, To: Point3{4, 5, 6}}, [2]Vec3{{1, 2, 3}, {2.5, 3.5, 4.5}}, true},
		{"diagonal", InfiniteLine3D{P1: Point3{1, 1, 1}, P2: Point3{2, 2, 2}}, [2]Vec3{{0, 0, 0}, {10, 10, 10}}, true},
		{"parallel to x", InfiniteLine3D{P1: Point3{-50, 3, 4}, P2: Point3{50, 3, 4}}, [2]Vec3{{0, 3, 4}, {10, 3, 4}}, true},
		{"miss", InfiniteLine3D{P1: Point3{0, 20, 0}, P2: Point3{10, 20, 10}}, [2]Vec3{}, false},
		{"degenerate", InfiniteLine3D{P1: Point3{1, 1, 1}, P2: Point3{1, 1, 1}}, [2]Vec3{}, false},
		{"hidden", XAxisLine{Common3D: Common3D{Common: Common{Hidden: true}}, Y: 5, Z: 5}, [2]Vec3{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Line(tt.line)
			if ok != tt.ok {
				t.Fatalf("Line(%+v) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if !ok {
				return
			}
			want := [2]Vec3{r.Scene.ToScene(tt.want[0]), r.Scene.ToScene(tt.want[1])}
			if !approxVec(got[0], want[0]) || !approxVec(got[1], want[1]) {
				t.Errorf("Line(%+v) = %v, want %v", tt.line, got, want)
			}
		})
	}
}

func TestSlabClipInside(t *testing.T) {
	b := unitBox()
	// A line clipping a corner region stays within the box.
	p, q, ok := slabClip(Vec3{9, 9, -100}, Vec3{9.5, 9.5, 100}, b)
	if !ok {
		t.Fatalf("slabClip missed the box")
	}
	for _, v := range []Vec3{p, q} {
		if !b.contains(v, slabEpsilon) {
			t.Errorf("slabClip endpoint %v outside box", v)
		}
	}
}

func TestPlaneSections(t *testing.T) {
	r := testResolver3D()
	got, ok := r.Plane(PlaneXY{Z: 5})
	if !ok {
		t.Fatalf("PlaneXY not visible")
	}
	for _, c := range got {
		d := r.Scene.FromScene(c)
		if math.Abs(d.Z-5) > 1e-9 {
			t.Errorf("PlaneXY corner %v has z = %v, want 5", c, d.Z)
		}
	}
	if _, ok := r.Plane(PlaneXZ{Y: 12}); ok {
		t.Errorf("PlaneXZ outside box is visible")
	}
	spanned, ok := r.Plane(PlaneYZ{Common3D: Common3D{Common: Common{YSpan: Span{Min: ptr(2), Max: ptr(3)}}}, X: 1})
	if !ok {
		t.Fatalf("spanned PlaneYZ not visible")
	}
	for _, c := range spanned {
		d := r.Scene.FromScene(c)
		if d.Y < 2-1e-9 || d.Y > 3+1e-9 || math.Abs(d.X-1) > 1e-9 {
			t.Errorf("spanned PlaneYZ corner %v out of span", d)
		}
	}
}

func TestPlaneNormal(t *testing.T) {
	r := testResolver3D()
	normal := Vec3{1, 2, 3}
	anchor := Vec3{5, 5, 5}
	got, ok := r.Plane(PlaneNormal{Point: Point3{5, 5, 5}, Normal: normal})
	if !ok {
		t.Fatalf("PlaneNormal not visible")
	}
	for _, c := range got {
		d := r.Scene.FromScene(c)
		if dot := d.Sub(anchor).Dot(normal); math.Abs(dot) > 1e-6 {
			t.Errorf("corner %v is off the plane (dot %v)", d, dot)
		}
		// Half-diagonal is size*sqrt(2) with size twice the box.
		if dist := d.Sub(anchor).Len(); math.Abs(dist-20*math.Sqrt2) > 1e-6 {
			t.Errorf("corner %v at distance %v, want %v", d, dist, 20*math.Sqrt2)
		}
	}
	if _, ok := r.Plane(PlaneNormal{Point: Point3{5, 5, 5}, Normal: Vec3{1e-12, 0, 0}}); ok {
		t.Errorf("PlaneNormal with tiny normal is visible")
	}
}

func TestPlanePoints(t *testing.T) {
	r := testResolver3D()
	if _, ok := r.Plane(PlanePoints{P1: Point3{0, 0, 0}, P2: Point3{1, 1, 1}, P3: Point3{2, 2, 2}}); ok {
		t.Errorf("collinear PlanePoints is visible")
	}
	got, ok := r.Plane(PlanePoints{P1: Point3{0, 0, 4}, P2: Point3{1, 0, 4}, P3: Point3{0, 1, 4}})
	if !ok {
		t.Fatalf("PlanePoints not visible")
	}
	for _, c := range got {
		if d := r.Scene.FromScene(c); math.Abs(d.Z-4) > 1e-9 {
			t.Errorf("corner %v not at z = 4", d)
		}
	}
}

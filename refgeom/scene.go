// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refgeom

import "github.com/aclements/plotcore/axis"

// Box is the visible data extent of a three dimensional plot.
type Box struct {
	X, Y, Z axis.Range
}

func (b Box) normalize() Box {
	return Box{b.X.Normalize(), b.Y.Normalize(), b.Z.Normalize()}
}

func (b Box) axis(i int) axis.Range {
	return [3]axis.Range{b.X, b.Y, b.Z}[i]
}

// contains reports whether p lies in normalized box b, allowing eps
// of slack on every face.
func (b Box) contains(p Vec3, eps float64) bool {
	for i := 0; i < 3; i++ {
		r, v := b.axis(i), p.at(i)
		if v < r.Min-eps || v > r.Max+eps {
			return false
		}
	}
	return true
}

// maxDim returns the largest side length of normalized box b.
func (b Box) maxDim() float64 {
	m := 0.0
	for i := 0; i < 3; i++ {
		if s := b.axis(i).Span(); s > m {
			m = s
		}
	}
	return m
}

// DefaultSceneSize is the scene extent used for non-positive sizes.
const DefaultSceneSize = 1

// A Scene maps data coordinates into a three dimensional scene
// centered at the origin.
//
// The scene's up axis is Y while the data's up axis is Z, so data Y
// maps to scene Z and data Z maps to scene Y. Data X maps to scene X.
// Every 3D consumer must go through ToScene so they agree on this
// convention.
type Scene struct {
	// Box is the data extent mapped onto the scene.
	Box Box

	// Size is the scene extent along each scene axis. The data
	// box is mapped onto [-Size/2, Size/2] on each axis.
	Size Vec3
}

// ToScene maps data point p into scene coordinates.
func (s Scene) ToScene(p Vec3) Vec3 {
	return Vec3{
		X: toScene(p.X, s.Box.X, s.Size.X),
		Y: toScene(p.Z, s.Box.Z, s.Size.Y),
		Z: toScene(p.Y, s.Box.Y, s.Size.Z),
	}
}

// FromScene maps scene point q back into data coordinates.
func (s Scene) FromScene(q Vec3) Vec3 {
	return Vec3{
		X: fromScene(q.X, s.Box.X, s.Size.X),
		Y: fromScene(q.Z, s.Box.Y, s.Size.Z),
		Z: fromScene(q.Y, s.Box.Z, s.Size.Y),
	}
}

func sceneSize(size float64) float64 {
	if !(size > 0) || !finite(size) {
		return DefaultSceneSize
	}
	return size
}

func toScene(v float64, r axis.Range, size float64) float64 {
	span := r.Span()
	if span == 0 || !r.IsFinite() {
		return 0
	}
	return ((v-r.Min)/span - 0.5) * sceneSize(size)
}

func fromScene(c float64, r axis.Range, size float64) float64 {
	if !r.IsFinite() {
		return 0
	}
	return r.Min + (c/sceneSize(size)+0.5)*r.Span()
}

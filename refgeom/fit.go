// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refgeom

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// FitDiagonal returns the least squares trend line through the
// finite points (xs[i], ys[i]).
//
// It reports false if xs and ys differ in length, if fewer than two
// usable points remain, or if all of them share one x value, since no
// unique line fits them.
func FitDiagonal(xs, ys []float64) (Diagonal, bool) {
	if len(xs) != len(ys) {
		return Diagonal{}, false
	}
	var fx, fy []float64
	for i := range xs {
		if finite(xs[i]) && finite(ys[i]) {
			fx = append(fx, xs[i])
			fy = append(fy, ys[i])
		}
	}
	if len(fx) < 2 {
		return Diagonal{}, false
	}
	distinct := false
	for _, x := range fx[1:] {
		if x != fx[0] {
			distinct = true
			break
		}
	}
	if !distinct {
		return Diagonal{}, false
	}

	// Fit against u = (x - mean) / scale so the system stays well
	// conditioned when the x values sit far from zero.
	mean := 0.0
	for _, x := range fx {
		mean += x
	}
	mean /= float64(len(fx))
	scale := 0.0
	for _, x := range fx {
		scale = math.Max(scale, math.Abs(x-mean))
	}
	if scale == 0 || !finite(scale) {
		return Diagonal{}, false
	}

	// Solve the normal equations (𝐔ᵀ𝐔)Β̂ = 𝐔ᵀ𝐲 for the terms 1
	// and u.
	n := len(fx)
	uTVals := make([]float64, 2*n)
	for i, x := range fx {
		uTVals[i] = 1
		uTVals[n+i] = (x - mean) / scale
	}
	UT := mat64.NewDense(2, n, uTVals)
	U := UT.T()
	y := mat64.NewVector(n, fy)

	lhs := mat64.NewDense(2, 2, nil)
	lhs.Mul(UT, U)
	rhs := mat64.NewVector(2, nil)
	rhs.MulVec(UT, y)

	BVals := make([]float64, 2)
	B := mat64.NewVector(2, BVals)
	if err := B.SolveVec(lhs, rhs); err != nil {
		return Diagonal{}, false
	}

	slope := BVals[1] / scale
	intercept := BVals[0] - slope*mean
	if !finite(slope) || !finite(intercept) {
		return Diagonal{}, false
	}
	return Diagonal{Intercept: intercept, Slope: slope}, true
}

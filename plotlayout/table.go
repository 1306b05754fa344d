// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/aclements/go-gg/table"
)

// seriesToTable flattens the visible series into one row per data
// point with columns "series", "axis", "x", "y" and "z". Series
// without z values get NaN z.
func seriesToTable(ss []Series) *table.Table {
	var names, axes []string
	var xs, ys, zs []float64
	nan := math.NaN()
	for _, s := range ss {
		if s.Hidden {
			continue
		}
		ax := "y"
		if s.OnY2 {
			ax = "y2"
		}
		for i := range s.X {
			names = append(names, s.Name)
			axes = append(axes, ax)
			xs = append(xs, s.X[i])
			ys = append(ys, s.Y[i])
			z := nan
			if s.Z != nil {
				z = s.Z[i]
			}
			zs = append(zs, z)
		}
	}

	return new(table.Builder).
		Add("series", names).
		Add("axis", axes).
		Add("x", xs).
		Add("y", ys).
		Add("z", zs).
		Done()
}

// columns returns the x, y and z values of the rows of tab plotted
// against the named y axis. An empty axis name selects every row.
func columns(tab *table.Table, yAxis string) (xs, ys, zs []float64) {
	if tab.Len() == 0 {
		return nil, nil, nil
	}
	axes := tab.MustColumn("axis").([]string)
	allX := tab.MustColumn("x").([]float64)
	allY := tab.MustColumn("y").([]float64)
	allZ := tab.MustColumn("z").([]float64)
	for i, ax := range axes {
		if yAxis != "" && ax != yAxis {
			continue
		}
		xs = append(xs, allX[i])
		ys = append(ys, allY[i])
		zs = append(zs, allZ[i])
	}
	return
}

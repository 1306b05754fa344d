// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textmetrics measures rendered text for layout.
//
// Layout code depends only on the Measurer interface so that a
// renderer can supply its own measurements. Font implements Measurer
// for any golang.org/x/image font face.
package textmetrics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// A Measurer reports the size of rendered text in layout units.
type Measurer interface {
	// TextWidth returns the advance width of s on one line.
	TextWidth(s string) float64

	// LineHeight returns the distance between consecutive
	// baselines.
	LineHeight() float64
}

// Font measures text using a font face.
type Font struct {
	Face font.Face
}

// Default returns a Measurer for the fixed 7x13 basic font.
func Default() Font {
	return Font{basicfont.Face7x13}
}

func (f Font) TextWidth(s string) float64 {
	return fixedToFloat(font.MeasureString(f.Face, s))
}

func (f Font) LineHeight() float64 {
	return fixedToFloat(f.Face.Metrics().Height)
}

// MaxWidth returns the widest of ss as measured by m, or 0 if ss is
// empty.
func MaxWidth(m Measurer, ss []string) float64 {
	w := 0.0
	for _, s := range ss {
		if sw := m.TextWidth(s); sw > w {
			w = sw
		}
	}
	return w
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

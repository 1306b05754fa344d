// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refgeom

import (
	"fmt"
	"math"
)

// Position selects where along a line an annotation sits. The zero
// value is End.
type Position int

const (
	End Position = iota
	Start
	Center
)

var positionNames = []string{"end", "start", "center"}

func (p Position) String() string { return enumString(positionNames, int(p), "Position") }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	i, err := enumParse(positionNames, string(text), "annotation position")
	*p = Position(i)
	return err
}

// fraction returns the fraction along the line for p.
func (p Position) fraction() float64 {
	switch p {
	case Start:
		return 0
	case Center:
		return 0.5
	}
	return 1
}

// Side selects which side of a line an annotation is offset to. The
// zero value is Above.
type Side int

const (
	Above Side = iota
	Below
	Left
	Right
)

var sideNames = []string{"above", "below", "left", "right"}

func (s Side) String() string { return enumString(sideNames, int(s), "Side") }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	i, err := enumParse(sideNames, string(text), "annotation side")
	*s = Side(i)
	return err
}

// TextAnchor is the horizontal alignment of label text relative to
// its anchor point.
type TextAnchor int

const (
	AnchorMiddle TextAnchor = iota
	AnchorStart
	AnchorEnd
)

var anchorNames = []string{"middle", "start", "end"}

func (a TextAnchor) String() string { return enumString(anchorNames, int(a), "TextAnchor") }

// MarshalText implements encoding.TextMarshaler.
func (a TextAnchor) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Baseline is the vertical alignment of label text relative to its
// anchor point.
type Baseline int

const (
	// BaselineMiddle centers the text on the anchor point.
	BaselineMiddle Baseline = iota
	// BaselineBottom puts the text above the anchor point.
	BaselineBottom
	// BaselineTop puts the text below the anchor point.
	BaselineTop
)

var baselineNames = []string{"middle", "bottom", "top"}

func (b Baseline) String() string { return enumString(baselineNames, int(b), "Baseline") }

// MarshalText implements encoding.TextMarshaler.
func (b Baseline) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// DefaultAnnotationOffset is the distance in pixels between a line
// and its annotation.
const DefaultAnnotationOffset = 8

// An Annotation is a text label attached to a reference line.
type Annotation struct {
	Text     string
	Position Position
	Side     Side

	// OffsetX and OffsetY are added to the computed position, in
	// pixels.
	OffsetX, OffsetY float64

	// AutoRotate rotates the text to follow the line. The angle
	// is kept within ±90° so text is never upside down.
	AutoRotate bool
}

// A Label is a placed annotation in pixel coordinates.
type Label struct {
	Text     string
	X, Y     float64
	Anchor   TextAnchor
	Baseline Baseline
	// Rotation is in degrees, clockwise in screen space.
	Rotation float64
}

// PlaceAnnotation positions a on seg, a pixel segment with y growing
// downward.
//
// The label point is interpolated along seg according to a.Position
// and offset perpendicular to seg by DefaultAnnotationOffset pixels.
// "Above" always means toward smaller screen y, whichever way seg
// runs; for a vertical line it means toward smaller x.
func PlaceAnnotation(seg Segment, a Annotation) Label {
	dx, dy := seg.X2-seg.X1, seg.Y2-seg.Y1
	length := math.Hypot(dx, dy)

	// Unit normal pointing "above".
	nx, ny := 0.0, -1.0
	if length > 0 {
		nx, ny = dy/length, -dx/length
		if ny > 0 || (ny == 0 && nx > 0) {
			nx, ny = -nx, -ny
		}
	}

	var ox, oy float64
	l := Label{Text: a.Text}
	switch a.Side {
	case Above, Below:
		ox, oy = nx, ny
		l.Baseline = BaselineBottom
		if a.Side == Below {
			ox, oy = -nx, -ny
			l.Baseline = BaselineTop
		}
		switch a.Position {
		case Start:
			l.Anchor = AnchorStart
		case End:
			l.Anchor = AnchorEnd
		default:
			l.Anchor = AnchorMiddle
		}
		if dx < 0 {
			// The line runs right to left, so its visual
			// start is on the right.
			switch l.Anchor {
			case AnchorStart:
				l.Anchor = AnchorEnd
			case AnchorEnd:
				l.Anchor = AnchorStart
			}
		}
	case Left, Right:
		if math.Abs(nx) < 1e-9 {
			// Horizontal line: offset sideways.
			ox, oy = -1, 0
		} else if nx < 0 {
			ox, oy = nx, ny
		} else {
			ox, oy = -nx, -ny
		}
		l.Anchor = AnchorEnd
		if a.Side == Right {
			ox, oy = -ox, -oy
			l.Anchor = AnchorStart
		}
		l.Baseline = BaselineMiddle
	}

	f := a.Position.fraction()
	l.X = seg.X1 + f*dx + ox*DefaultAnnotationOffset + a.OffsetX
	l.Y = seg.Y1 + f*dy + oy*DefaultAnnotationOffset + a.OffsetY

	if a.AutoRotate && length > 0 {
		l.Rotation = clampAngle(math.Atan2(dy, dx) * 180 / math.Pi)
	}
	return l
}

// clampAngle folds deg into [-90, 90] by turning it half a circle.
func clampAngle(deg float64) float64 {
	for deg > 90 {
		deg -= 180
	}
	for deg < -90 {
		deg += 180
	}
	return deg
}

func enumString(names []string, i int, typ string) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%s(%d)", typ, i)
}

func enumParse(names []string, s, what string) (int, error) {
	if s == "" {
		return 0, nil
	}
	for i, name := range names {
		if s == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", what, s)
}

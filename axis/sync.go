// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"math"
)

// SyncMode selects how a secondary y axis follows the primary one.
type SyncMode int

const (
	// SyncNone leaves the secondary axis at its own base range.
	SyncNone SyncMode = iota
	// SyncProportional applies the primary axis' zoom factor and
	// relative pan to the secondary axis.
	SyncProportional
	// SyncAlignZero places a reference value (normally 0) at the
	// same relative height on both axes.
	SyncAlignZero
)

var syncModeNames = []string{"none", "proportional", "align_zero"}

func (m SyncMode) String() string {
	if m >= 0 && int(m) < len(syncModeNames) {
		return syncModeNames[m]
	}
	return fmt.Sprintf("SyncMode(%d)", int(m))
}

// ParseSyncMode parses the String form of a SyncMode. The empty
// string is SyncNone.
func ParseSyncMode(s string) (SyncMode, error) {
	if s == "" {
		return SyncNone, nil
	}
	for i, name := range syncModeNames {
		if s == name {
			return SyncMode(i), nil
		}
	}
	return SyncNone, fmt.Errorf("unknown y2 sync mode %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SyncMode) UnmarshalText(text []byte) error {
	v, err := ParseSyncMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m SyncMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Y2Sync configures secondary axis synchronization.
type Y2Sync struct {
	Mode SyncMode

	// AlignValue is the value kept at the same relative position
	// in SyncAlignZero mode. nil means 0.
	AlignValue *float64
}

// Align returns the effective align value of s.
func (s Y2Sync) Align() float64 {
	if s.AlignValue == nil {
		return 0
	}
	return *s.AlignValue
}

// Validate checks that s is usable.
func (s Y2Sync) Validate() error {
	if s.Mode < SyncNone || s.Mode > SyncAlignZero {
		return fmt.Errorf("invalid y2 sync mode %v", s.Mode)
	}
	if s.Mode == SyncAlignZero && !isFinite(s.Align()) {
		return fmt.Errorf("y2 align value must be finite, got %v", s.Align())
	}
	return nil
}

// SyncY2 returns the range of the secondary y axis given the current
// primary range y1, the primary axis' unzoomed range y1Base, and the
// secondary axis' own unzoomed range y2Base.
//
// If any of the three ranges is non-finite, or the computation would
// divide by zero, SyncY2 returns y2Base.
func SyncY2(y1, y1Base, y2Base Range, sync Y2Sync) Range {
	if !y1.IsFinite() || !y1Base.IsFinite() || !y2Base.IsFinite() {
		return y2Base
	}

	switch sync.Mode {
	case SyncProportional:
		baseSpan := y1Base.Span()
		if baseSpan == 0 {
			return y2Base
		}
		zoom := y1.Span() / baseSpan
		shift := (y1.Center() - y1Base.Center()) / baseSpan

		y2Span := y2Base.Span()
		span := y2Span * zoom
		center := y2Base.Center() + shift*y2Span
		return Range{center - span/2, center + span/2}

	case SyncAlignZero:
		v := sync.Align()
		if !isFinite(v) {
			return y2Base
		}
		r1 := y1.Include(v)
		span1 := r1.Span()
		if span1 == 0 {
			return y2Base
		}
		// Relative height of v on the primary axis.
		p := (v - r1.Min) / span1

		r2 := y2Base.Include(v)
		below, above := v-r2.Min, r2.Max-v
		var span float64
		switch {
		case p <= 0:
			span = above
		case p >= 1:
			span = below
		default:
			span = math.Max(below/p, above/(1-p))
		}
		if span == 0 || !isFinite(span) {
			return y2Base
		}
		lo := v - p*span
		return Range{lo, lo + span}
	}
	return y2Base
}

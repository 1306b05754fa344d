// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis manages the numeric extent of plot axes.
//
// It computes padded ranges from raw data, grows ranges lazily as
// new data appears, and derives the range of a secondary (y2) axis
// from a primary axis. All functions are pure: any state that must
// persist between render passes is held and threaded by the caller.
package axis

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Range is a closed interval [Min, Max] of data values.
//
// Min > Max is allowed and denotes a reversed axis. A Range with a
// NaN or infinite bound is invalid; functions in this package treat
// invalid ranges as missing data.
type Range struct {
	Min, Max float64
}

// NoData is the sentinel range used before any data is known.
var NoData = Range{0, 1}

func (r Range) String() string {
	return fmt.Sprintf("[%g,%g]", r.Min, r.Max)
}

// IsFinite reports whether both bounds of r are finite.
func (r Range) IsFinite() bool {
	return isFinite(r.Min) && isFinite(r.Max)
}

// IsNoData reports whether r is the NoData sentinel.
func (r Range) IsNoData() bool {
	return r == NoData
}

// Span returns Max - Min, which is negative for reversed ranges.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Center returns the midpoint of r.
func (r Range) Center() float64 {
	return r.Min + (r.Max-r.Min)/2
}

// Normalize returns r with Min <= Max.
func (r Range) Normalize() Range {
	if r.Min > r.Max {
		return Range{r.Max, r.Min}
	}
	return r
}

// Include returns the smallest range containing both r and v.
// Non-finite v are ignored. The result is normalized.
func (r Range) Include(v float64) Range {
	if !isFinite(v) {
		return r
	}
	r = r.Normalize()
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}

// Contains reports whether v lies in r, inclusive, regardless of the
// direction of r.
func (r Range) Contains(v float64) bool {
	n := r.Normalize()
	return v >= n.Min && v <= n.Max
}

// OrNoData returns r if it is finite and NoData otherwise.
func (r Range) OrNoData() Range {
	if !r.IsFinite() {
		return NoData
	}
	return r
}

// Union returns the smallest range containing every finite range in
// rs. If no range is finite, it returns NoData.
func Union(rs ...Range) Range {
	out, ok := Range{}, false
	for _, r := range rs {
		if !r.IsFinite() {
			continue
		}
		r = r.Normalize()
		if !ok {
			out, ok = r, true
			continue
		}
		out.Min = math.Min(out.Min, r.Min)
		out.Max = math.Max(out.Max, r.Max)
	}
	if !ok {
		return NoData
	}
	return out
}

// autoPad is the fraction of the data span added to each side of an
// automatic range.
const autoPad = 0.05

// Auto returns the padded range of the finite values in values.
//
// Each side is padded by 5% of the data span, or by 0.5 if all
// finite values are equal. If values contains no finite values, Auto
// returns NoData.
func Auto(values []float64) Range {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if isFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return NoData
	}
	min, max := stats.Bounds(finite)
	pad := (max - min) * autoPad
	if pad == 0 {
		pad = 0.5
	}
	return Range{min - pad, max + pad}
}

// Expand grows current to include candidate and reports whether the
// result differs from current.
//
// Expand never shrinks a range that holds real data: if candidate is
// NoData (for example because all series are hidden) but current is
// not, current is returned unchanged. If current is NoData and
// candidate is real data, candidate is adopted as is. A non-finite
// side yields to the finite one, and if both are non-finite the
// result is NoData.
func Expand(current, candidate Range) (Range, bool) {
	curOK, candOK := current.IsFinite(), candidate.IsFinite()
	switch {
	case !curOK && !candOK:
		return NoData, true
	case !curOK:
		return candidate, true
	case !candOK:
		return current, false
	}

	switch {
	case current.IsNoData() && candidate.IsNoData():
		return current, false
	case current.IsNoData():
		return candidate, true
	case candidate.IsNoData():
		return current, false
	}

	cur, cand := current.Normalize(), candidate.Normalize()
	next := Range{math.Min(cur.Min, cand.Min), math.Max(cur.Max, cand.Max)}
	if next == cur {
		return current, false
	}
	return next, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

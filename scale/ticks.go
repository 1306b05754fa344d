// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"sort"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

// TickSpec requests ticks for a scale.
//
// If Values is non-nil, those ticks are used as given. Otherwise up
// to Count ticks are generated from the scale.
type TickSpec struct {
	Values []float64
	Count  int
}

// Ticks returns tick values for s in increasing data order.
//
// With Nice set, generated ticks are snapped to round values and
// there may be fewer than t.Count of them. Without it, linear and log
// scales return exactly t.Count evenly spaced ticks (in data or log
// space, respectively). A Count of 0 yields no ticks and a Count of 1
// yields just the domain minimum.
func (s *Scale) Ticks(t TickSpec) []float64 {
	if t.Values != nil {
		return append([]float64(nil), t.Values...)
	}
	d := s.domain.Normalize()
	switch {
	case t.Count <= 0:
		return []float64{}
	case t.Count == 1 || s.degenerate:
		return []float64{d.Min}
	}

	switch s.typ {
	case Log:
		if s.nice {
			return logPowerTicks(d.Min, d.Max, t.Count)
		}
		ticks := vec.Linspace(math.Log10(d.Min), math.Log10(d.Max), t.Count)
		for i, e := range ticks {
			ticks[i] = math.Pow(10, e)
		}
		// Avoid exp/log round trip drift at the endpoints.
		ticks[0], ticks[len(ticks)-1] = d.Min, d.Max
		return ticks
	case Arcsinh:
		return arcsinhTicks(d.Min, d.Max, s.threshold, t.Count)
	}

	if s.nice {
		if major := linearTicks(d.Min, d.Max, t.Count); len(major) > 0 {
			return major
		}
	}
	return vec.Linspace(d.Min, d.Max, t.Count)
}

// linearTicks returns at most count round ticks in [lo, hi].
func linearTicks(lo, hi float64, count int) []float64 {
	major, _ := mscale.Linear{Min: lo, Max: hi}.Ticks(mscale.TickOptions{Max: count})
	tol := 1e-9 * (hi - lo)
	out := major[:0:0]
	for _, v := range major {
		if v < lo-tol || v > hi+tol {
			continue
		}
		out = append(out, math.Max(lo, math.Min(hi, v)))
	}
	return out
}

// logPowerTicks returns the integer powers of ten in [lo, hi],
// thinned by an even stride to at most count ticks. If the domain
// holds no power of ten, it returns the endpoints.
func logPowerTicks(lo, hi float64, count int) []float64 {
	kLo := int(math.Ceil(math.Log10(lo) - 1e-9))
	kHi := int(math.Floor(math.Log10(hi) + 1e-9))
	if kHi < kLo {
		return []float64{lo, hi}
	}
	n := kHi - kLo + 1
	stride := 1
	if n > count {
		stride = (n + count - 1) / count
	}
	var ticks []float64
	for k := kLo; k <= kHi; k += stride {
		ticks = append(ticks, math.Pow10(k))
	}
	return ticks
}

// arcsinhTicks returns round ticks for an arcsinh scale.
//
// Candidates are 0 and ±m·10^k for m in {1, 2, 5}. They are accepted
// greedily in preference order (0, then powers of ten from small to
// large magnitude, then the 2 and 5 multiples) as long as every
// accepted pair stays at least 1/count of the transformed span
// apart. This keeps the result deterministic and symmetric for
// symmetric domains.
func arcsinhTicks(lo, hi, threshold float64, count int) []float64 {
	f := func(x float64) float64 { return asinhScaled(x, threshold) }
	minGap := (f(hi) - f(lo)) / float64(count)

	maxAbs := math.Max(math.Abs(lo), math.Abs(hi))
	var cands []float64
	if lo <= 0 && hi >= 0 {
		cands = append(cands, 0)
	}
	if maxAbs > 0 {
		kHi := int(math.Ceil(math.Log10(maxAbs)))
		kLo := kHi - 16
		for _, m := range []float64{1, 2, 5} {
			for k := kLo; k <= kHi; k++ {
				v := m * math.Pow10(k)
				for _, c := range []float64{v, -v} {
					if c >= lo && c <= hi {
						cands = append(cands, c)
					}
				}
			}
		}
	}

	var ticks, us []float64
	for _, c := range cands {
		if len(ticks) == count {
			break
		}
		u := f(c)
		ok := true
		for _, a := range us {
			if math.Abs(u-a) < minGap {
				ok = false
				break
			}
		}
		if ok {
			ticks = append(ticks, c)
			us = append(us, u)
		}
	}

	if len(ticks) < 2 {
		ticks = linearTicks(lo, hi, count)
	}
	if len(ticks) < 2 {
		return []float64{lo, hi}
	}
	sort.Float64s(ticks)
	return ticks
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data values to output coordinates.
//
// A Scale is built from a data domain, an output range and a
// transform type (linear, logarithmic or arcsinh). It maps in both
// directions and generates tick values. Construction never fails:
// malformed domains are replaced by safe fallbacks so that a live
// chart keeps rendering.
package scale

import (
	"fmt"
	"log/slog"
	"math"

	mscale "github.com/aclements/go-moremath/scale"

	"github.com/aclements/plotcore/axis"
	"github.com/aclements/plotcore/internal/diag"
)

// Type is the transform applied by a Scale.
type Type int

const (
	Linear Type = iota
	Log
	// Arcsinh maps x to asinh(x/threshold). It is close to linear
	// for |x| below the threshold and close to logarithmic above
	// it, and is defined for zero and negative values.
	Arcsinh
)

var typeNames = []string{"linear", "log", "arcsinh"}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType parses the String form of a Type. The empty string is
// Linear.
func ParseType(s string) (Type, error) {
	if s == "" {
		return Linear, nil
	}
	for i, name := range typeNames {
		if s == name {
			return Type(i), nil
		}
	}
	return Linear, fmt.Errorf("unknown scale type %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

const (
	// logEpsilon replaces a non-positive log domain minimum,
	// relative to a maximum of 1.
	logEpsilon = 1e-10

	// machineEpsilon is the smallest accepted arcsinh threshold.
	machineEpsilon = 2.220446049250313e-16

	defaultTickCount = 10
)

// Options configures a Scale.
type Options struct {
	// Threshold is the arcsinh linear threshold. Zero means 1.
	// Values at or below machine epsilon are clamped up to it.
	Threshold float64

	// Nice enables snapping: the domain is widened to human
	// friendly boundaries and generated ticks fall on round
	// values (powers of ten for log scales).
	Nice bool

	// TickCount is the tick count the domain is niced for. Zero
	// means 10.
	TickCount int

	// Logger receives diagnostics about replaced input. It may be
	// nil.
	Logger *slog.Logger
}

// A Scale maps a data domain onto an output range.
//
// A Scale is immutable and safe for concurrent use.
type Scale struct {
	typ       Type
	domain    axis.Range
	rng       axis.Range
	threshold float64
	nice      bool

	// degenerate is set when the domain has zero width. Every
	// value then maps to the middle of the range.
	degenerate bool

	lin mscale.Linear
	log mscale.Log
	// logReversed records a descending log domain, since
	// mscale.Log always orders its bounds.
	logReversed bool
}

// New returns a scale of the given type mapping domain onto rng.
//
// Non-finite domains are replaced by axis.NoData. A log domain with
// a non-positive minimum gets a small positive minimum instead; one
// with a non-positive maximum falls back to a linear scale. Both
// replacements are reported to opts.Logger at warning level.
func New(typ Type, domain, rng axis.Range, opts Options) *Scale {
	lg := diag.Or(opts.Logger)

	if !domain.IsFinite() {
		lg.Debug("non-finite scale domain replaced", "domain", domain)
		domain = axis.NoData
	}
	if !rng.IsFinite() {
		lg.Debug("non-finite scale range replaced", "range", rng)
		rng = axis.NoData
	}

	s := &Scale{typ: typ, rng: rng, nice: opts.Nice}
	count := opts.TickCount
	if count <= 0 {
		count = defaultTickCount
	}

	switch typ {
	case Log:
		domain = s.logDomain(domain, lg)
	case Arcsinh:
		s.threshold = clampThreshold(opts.Threshold)
	case Linear:
	default:
		lg.Warn("unknown scale type, using linear", "type", typ)
		s.typ = Linear
	}

	if opts.Nice && domain.Min != domain.Max {
		domain = s.niceDomain(domain, count)
	}
	s.domain = domain
	s.degenerate = domain.Min == domain.Max

	switch s.typ {
	case Linear:
		s.lin = mscale.Linear{Min: domain.Min, Max: domain.Max}
	case Log:
		n := domain.Normalize()
		s.logReversed = domain.Min > domain.Max
		if l, err := mscale.NewLog(n.Min, n.Max, 10); err == nil {
			s.log = l
		} else {
			// Unreachable after logDomain, but keep the scale
			// usable.
			lg.Warn("log scale rejected domain, using linear", "domain", domain, "err", err)
			s.typ = Linear
			s.lin = mscale.Linear{Min: domain.Min, Max: domain.Max}
		}
	}
	return s
}

// logDomain makes domain usable by a log scale, switching s to a
// linear scale if it cannot be.
func (s *Scale) logDomain(domain axis.Range, lg *slog.Logger) axis.Range {
	n := domain.Normalize()
	if n.Max <= 0 {
		lg.Warn("log scale domain has no positive values, using linear", "domain", domain)
		s.typ = Linear
		return domain
	}
	if n.Min <= 0 {
		eps := logEpsilon * math.Min(1, n.Max)
		lg.Warn("log scale domain minimum replaced", "domain", domain, "min", eps)
		if domain.Min <= 0 {
			domain.Min = eps
		} else {
			domain.Max = eps
		}
	}
	return domain
}

func clampThreshold(t float64) float64 {
	switch {
	case t == 0 || math.IsNaN(t) || math.IsInf(t, 0):
		return 1
	case t <= machineEpsilon:
		return machineEpsilon
	}
	return t
}

// niceDomain widens domain to round boundaries, preserving its
// direction.
func (s *Scale) niceDomain(domain axis.Range, count int) axis.Range {
	n := domain.Normalize()
	switch s.typ {
	case Linear:
		l := mscale.Linear{Min: n.Min, Max: n.Max}
		l.Nice(mscale.TickOptions{Max: count})
		if l.Min <= n.Min && l.Max >= n.Max && l.Min < l.Max {
			n = axis.Range{Min: l.Min, Max: l.Max}
		}
	case Log:
		lo := math.Pow(10, math.Floor(math.Log10(n.Min)+1e-9))
		hi := math.Pow(10, math.Ceil(math.Log10(n.Max)-1e-9))
		if lo > 0 && !math.IsInf(hi, 0) {
			n = axis.Range{Min: lo, Max: hi}
		}
	case Arcsinh:
		// Arcsinh domains are used as given; their ticks are
		// snapped independently of the bounds.
		return domain
	}
	if domain.Min > domain.Max {
		return axis.Range{Min: n.Max, Max: n.Min}
	}
	return n
}

// Type returns the effective transform type of s. This may differ
// from the requested type if the domain could not support it.
func (s *Scale) Type() Type { return s.typ }

// Domain returns the effective domain of s.
func (s *Scale) Domain() axis.Range { return s.domain }

// Range returns the output range of s.
func (s *Scale) Range() axis.Range { return s.rng }

// Threshold returns the arcsinh threshold of s, or 0 for other
// types.
func (s *Scale) Threshold() float64 { return s.threshold }

// Map returns the output coordinate of data value v.
func (s *Scale) Map(v float64) float64 {
	if s.degenerate {
		return s.rng.Center()
	}
	return s.rng.Min + s.normalize(v)*s.rng.Span()
}

// normalize maps v to [0, 1] across the domain.
func (s *Scale) normalize(v float64) float64 {
	switch s.typ {
	case Log:
		if v <= 0 {
			v = math.Min(s.log.Min, logEpsilon)
		}
		t := s.log.Map(v)
		if s.logReversed {
			t = 1 - t
		}
		return t
	case Arcsinh:
		u0, u1 := s.asinh(s.domain.Min), s.asinh(s.domain.Max)
		return (s.asinh(v) - u0) / (u1 - u0)
	}
	return s.lin.Map(v)
}

// Invert returns the data value that maps to output coordinate c.
func (s *Scale) Invert(c float64) float64 {
	if s.degenerate {
		return s.domain.Min
	}
	span := s.rng.Span()
	if span == 0 {
		return s.domain.Min
	}
	t := (c - s.rng.Min) / span
	d := s.domain
	switch s.typ {
	case Log:
		l0, l1 := math.Log(d.Min), math.Log(d.Max)
		return math.Exp(l0 + t*(l1-l0))
	case Arcsinh:
		u0, u1 := s.asinh(d.Min), s.asinh(d.Max)
		return sinhScaled(u0+t*(u1-u0), s.threshold)
	}
	return d.Min + t*d.Span()
}

func (s *Scale) asinh(v float64) float64 {
	return asinhScaled(v, s.threshold)
}

// asinhScaled returns asinh(v/t) for t > 0, without overflowing
// when v/t exceeds the float64 range.
func asinhScaled(v, t float64) float64 {
	if q := v / t; !math.IsInf(q, 0) {
		return math.Asinh(q)
	}
	// asinh(q) = ln(2|q|) for large |q|.
	return math.Copysign(math.Ln2+math.Log(math.Abs(v))-math.Log(t), v)
}

// sinhScaled inverts asinhScaled, returning t·sinh(u).
func sinhScaled(u, t float64) float64 {
	if r := t * math.Sinh(u); !math.IsInf(r, 0) {
		return r
	}
	return math.Copysign(math.Exp(math.Abs(u)-math.Ln2+math.Log(t)), u)
}

func (s *Scale) String() string {
	return fmt.Sprintf("%s %v => %v", s.typ, s.domain, s.rng)
}

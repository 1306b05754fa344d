// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

// A Tracker holds the lazily expanded ranges of a set of named axes
// across render passes.
//
// A Tracker is a plain value owned by its caller. Observe returns an
// updated copy rather than mutating the receiver, so a caller can
// keep or discard the new state explicitly.
type Tracker struct {
	ranges map[string]Range
}

// Range returns the tracked range of the named axis, or NoData if
// nothing has been observed for it.
func (t Tracker) Range(name string) Range {
	if r, ok := t.ranges[name]; ok {
		return r
	}
	return NoData
}

// Observe expands the named axis to include the candidate range and
// returns the updated tracker and whether the axis changed.
func (t Tracker) Observe(name string, candidate Range) (Tracker, bool) {
	next, changed := Expand(t.Range(name), candidate)
	if !changed {
		if _, ok := t.ranges[name]; ok {
			return t, false
		}
	}
	ranges := make(map[string]Range, len(t.ranges)+1)
	for k, v := range t.ranges {
		ranges[k] = v
	}
	ranges[name] = next
	return Tracker{ranges}, changed
}

// Reset returns a tracker with the named axis forgotten, for example
// after the user explicitly requests a rescale.
func (t Tracker) Reset(name string) Tracker {
	if _, ok := t.ranges[name]; !ok {
		return t
	}
	ranges := make(map[string]Range, len(t.ranges))
	for k, v := range t.ranges {
		if k != name {
			ranges[k] = v
		}
	}
	return Tracker{ranges}
}

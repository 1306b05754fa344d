// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlay

import (
	"github.com/aclements/go-gg/gg/layout"
)

// PlaceAll places elems one after another using params as the shared
// problem description. Each element is sized by its SizeHint and
// receives its position through SetLayout. Every placed element is
// added to the exclusions of the elements after it, so the results do
// not overlap when there is room for all of them.
//
// The returned candidates are in the order of elems.
func PlaceAll(params Params, elems ...layout.Element) []Candidate {
	exclude := append([]Rect(nil), params.Exclude...)
	out := make([]Candidate, 0, len(elems))
	for _, e := range elems {
		w, h, _, _ := e.SizeHint()
		p := params
		p.Size = Size{w, h}
		p.Exclude = exclude
		c := Place(p)
		e.SetLayout(c.X, c.Y, c.W, c.H)
		exclude = append(exclude, c.Rect)
		out = append(out, c)
	}
	return out
}

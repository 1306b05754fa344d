// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale_test

import (
	"fmt"

	"github.com/aclements/plotcore/axis"
	"github.com/aclements/plotcore/scale"
)

func ExampleScale_Ticks() {
	s := scale.New(scale.Log, axis.Range{Min: 1, Max: 1000}, axis.Range{Min: 0, Max: 300}, scale.Options{Nice: true})
	for _, tick := range s.Ticks(scale.TickSpec{Count: 10}) {
		fmt.Printf("%g at %.0f\n", tick, s.Map(tick))
	}
	// Output:
	// 1 at 0
	// 10 at 100
	// 100 at 200
	// 1000 at 300
}

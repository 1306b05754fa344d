// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refgeom

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/plotcore/internal/diag"
)

// timeLayouts are the date formats accepted for string axis values.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Coerce converts an axis value from a reference line description
// to a number.
//
// Numbers are used as is. Times become Unix milliseconds, the unit
// used by time axes. Strings are parsed as numbers, then as dates.
// Anything else becomes 0 and a warning is logged: a visibly wrong
// line is preferable to failing the whole render.
func Coerce(v any, lg *slog.Logger) float64 {
	x, ok := coerce(v)
	if !ok {
		diag.Or(lg).Warn("reference line value is not a number or date, using 0", "value", v)
	}
	return x
}

func coerce(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case *float64:
		if v != nil {
			return *v, true
		}
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, true
		}
	case time.Time:
		return float64(v.UnixMilli()), true
	case string:
		s := strings.TrimSpace(v)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return float64(t.UnixMilli()), true
			}
		}
	}
	return 0, false
}

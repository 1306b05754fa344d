// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag provides the structured logger plumbing shared by the
// plotcore libraries.
//
// Libraries never log through a global logger. Each takes an optional
// *slog.Logger in its options and resolves it with Or.
package diag

import (
	"io"
	"log/slog"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))

// Or returns l, or a logger that discards everything if l is nil.
func Or(l *slog.Logger) *slog.Logger {
	if l == nil {
		return discard
	}
	return l
}

// Discard returns a logger that drops all records.
func Discard() *slog.Logger {
	return discard
}

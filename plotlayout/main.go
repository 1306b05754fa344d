// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plotlayout resolves the layout of a chart description.
//
// plotlayout reads a YAML chart description and computes everything a
// renderer needs to draw it: axis scales and ticks, the plot area
// after margins, reference lines clipped to the plot with their
// annotation positions, and the positions of the legend and color bar
// chosen to hide as little data as possible. The result is written as
// JSON, or with -svg as an SVG wireframe.
//
// Additional chart files are treated as later frames of the same
// chart. Axis ranges that are not fixed only grow from frame to frame,
// so a chart does not jump around as data is hidden or replaced.
//
// Default flags can be given in the PLOTLAYOUT_FLAGS environment
// variable, which is split like a shell command line.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/aclements/plotcore/axis"
	"github.com/kballard/go-shellquote"
)

func main() {
	log.SetPrefix("plotlayout: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagSVG        = flag.Bool("svg", false, "write an SVG wireframe instead of JSON")
		flagVerbose    = flag.Bool("v", false, "log layout decisions to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] chart.yaml [frames.yaml...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	args, err := envArgs(os.Getenv("PLOTLAYOUT_FLAGS"), os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	flag.CommandLine.Parse(args)
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	level := slog.LevelWarn
	if *flagVerbose {
		level = slog.LevelDebug
	}
	l := &Layouter{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}

	// Lay out each frame, threading axis ranges through.
	var frames []*Frame
	var tr axis.Tracker
	for _, path := range flag.Args() {
		c, err := LoadChart(path)
		if err != nil {
			log.Fatal(err)
		}
		var f *Frame
		f, tr = l.Layout(c, tr)
		frames = append(frames, f)
	}

	// Prepare for output.
	out := os.Stdout
	if *flagOut != "" {
		var err error
		out, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()
	}

	if *flagSVG {
		writeSVG(out, frames)
		return
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "\t")
	if err := enc.Encode(frames); err != nil {
		log.Fatal(err)
	}
}

// envArgs returns the command line args prefixed by the flags in env.
func envArgs(env string, args []string) ([]string, error) {
	if env == "" {
		return args, nil
	}
	words, err := shellquote.Split(env)
	if err != nil {
		return nil, fmt.Errorf("parsing PLOTLAYOUT_FLAGS: %w", err)
	}
	return append(words, args...), nil
}

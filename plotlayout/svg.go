// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aclements/plotcore/colorbar"
	"github.com/aclements/plotcore/refgeom"
	svg "github.com/ajstarks/svgo"
)

// writeSVG draws a wireframe of frames stacked top to bottom. It shows
// the plot area, ticks, data points, reference lines and overlays, so
// a layout can be checked by eye. 3D scene geometry is not drawn.
func writeSVG(w io.Writer, frames []*Frame) {
	width, height := 0.0, 0.0
	for _, f := range frames {
		width = math.Max(width, f.Width)
		height += f.Height
	}

	canvas := svg.New(w)
	canvas.Start(px(width), px(height))
	canvas.Rect(0, 0, px(width), px(height), "fill:white")
	canvas.Gstyle("font-family:monospace;font-size:11px")
	top := 0.0
	for i, f := range frames {
		canvas.Gtransform(fmt.Sprintf("translate(0,%d)", px(top)))
		writeFrame(canvas, f, fmt.Sprintf("f%d", i))
		canvas.Gend()
		top += f.Height
	}
	canvas.Gend()
	canvas.End()
}

func px(v float64) int {
	return int(math.Round(v))
}

func writeFrame(canvas *svg.SVG, f *Frame, id string) {
	p := f.Plot
	canvas.Rect(0, 0, px(f.Width), px(f.Height), "fill:none;stroke:#ddd")
	canvas.Rect(px(p.X), px(p.Y), px(p.W), px(p.H), "fill:#f6f6f6;stroke:#888")
	if f.Title != "" {
		canvas.Text(px(f.Width/2), px(f.Insets.Top/2), f.Title, `text-anchor="middle" dy=".3em"`)
	}

	for _, a := range f.Axes {
		for _, t := range a.Ticks {
			switch a.Name {
			case "x":
				y := p.Y + p.H
				canvas.Line(px(t.Pos), px(y), px(t.Pos), px(y+5), "stroke:#888")
				canvas.Text(px(t.Pos), px(y+8), t.Label, `text-anchor="middle" dy="1em"`)
			case "y":
				canvas.Line(px(p.X-5), px(t.Pos), px(p.X), px(t.Pos), "stroke:#888")
				canvas.Text(px(p.X-8), px(t.Pos), t.Label, `text-anchor="end" dy=".3em"`)
			case "y2":
				x := p.X + p.W
				canvas.Line(px(x), px(t.Pos), px(x+5), px(t.Pos), "stroke:#888")
				canvas.Text(px(x+8), px(t.Pos), t.Label, `text-anchor="start" dy=".3em"`)
			}
		}
	}

	for _, s := range f.Series {
		for _, pt := range s.Points {
			canvas.Circle(px(pt.X), px(pt.Y), 2, "fill:"+s.Color)
		}
	}

	for _, l := range f.Lines {
		style := "stroke:" + orDefault(l.Color, "#444")
		if len(l.Dash) > 0 {
			dash := make([]string, len(l.Dash))
			for i, d := range l.Dash {
				dash[i] = fmt.Sprint(d)
			}
			style += ";stroke-dasharray:" + strings.Join(dash, ",")
		}
		s := l.Segment
		canvas.Line(px(s.X1), px(s.Y1), px(s.X2), px(s.Y2), style)
		if lb := l.Label; lb != nil {
			writeLabel(canvas, *lb)
		}
	}

	if lg := f.Legend; lg != nil {
		r := lg.Rect
		canvas.Rect(px(r.X), px(r.Y), px(r.W), px(r.H), "fill:white;stroke:#888")
		for _, it := range lg.Items {
			sw := it.Swatch
			canvas.Rect(px(sw.X), px(sw.Y), px(sw.W), px(sw.H), "fill:"+it.Color)
			canvas.Text(px(it.TextX), px(it.TextY), it.Label, `dy=".3em"`)
		}
	}

	if cb := f.ColorBar; cb != nil {
		writeColorBar(canvas, cb, id+"-cb")
	}
}

func writeLabel(canvas *svg.SVG, lb refgeom.Label) {
	anchor, _ := lb.Anchor.MarshalText()
	attrs := fmt.Sprintf(`text-anchor="%s"`, anchor)
	switch lb.Baseline {
	case refgeom.BaselineMiddle:
		attrs += ` dy=".3em"`
	case refgeom.BaselineTop:
		attrs += ` dy="1em"`
	}
	if lb.Rotation != 0 {
		attrs += fmt.Sprintf(` transform="rotate(%g %d %d)"`, lb.Rotation, px(lb.X), px(lb.Y))
	}
	canvas.Text(px(lb.X), px(lb.Y), lb.Text, attrs)
}

func writeColorBar(canvas *svg.SVG, cb *ColorBarLayout, id string) {
	r, horizontal := cb.Rect, cb.Horizontal

	// Gradient offsets run along the bar from its low end.
	stops := make([]svg.Offcolor, len(cb.Stops))
	for i, s := range cb.Stops {
		stops[i] = svg.Offcolor{Offset: uint8(math.Round(s.Offset * 100)), Color: s.Color, Opacity: 1}
	}
	canvas.Def()
	if horizontal {
		canvas.LinearGradient(id, 0, 0, 100, 0, stops)
	} else {
		canvas.LinearGradient(id, 0, 100, 0, 0, stops)
	}
	canvas.DefEnd()
	canvas.Rect(px(r.X), px(r.Y), px(r.W), px(r.H), fmt.Sprintf("fill:url(#%s);stroke:#888", id))

	for _, t := range cb.Ticks {
		writeBarTick(canvas, t, horizontal)
	}
}

func writeBarTick(canvas *svg.SVG, t colorbar.Tick, horizontal bool) {
	label := fmt.Sprintf("%.6g", t.Value)
	if horizontal {
		canvas.Line(px(t.X), px(t.Y), px(t.X), px(t.Y+4), "stroke:#888")
		canvas.Text(px(t.X), px(t.Y+6), label, `text-anchor="middle" dy="1em"`)
		return
	}
	canvas.Line(px(t.X), px(t.Y), px(t.X+4), px(t.Y), "stroke:#888")
	canvas.Text(px(t.X+6), px(t.Y), label, `dy=".3em"`)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

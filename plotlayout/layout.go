// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/aclements/go-gg/gg/layout"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/plotcore/axis"
	"github.com/aclements/plotcore/colorbar"
	"github.com/aclements/plotcore/internal/diag"
	"github.com/aclements/plotcore/margin"
	"github.com/aclements/plotcore/overlay"
	"github.com/aclements/plotcore/refgeom"
	"github.com/aclements/plotcore/scale"
	"github.com/aclements/plotcore/textmetrics"
)

// A Frame is the resolved layout of one chart.
type Frame struct {
	Source   string          `json:"source"`
	Title    string          `json:"title,omitempty"`
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Insets   margin.Insets   `json:"insets"`
	Plot     overlay.Rect    `json:"plot"`
	Axes     []AxisLayout    `json:"axes"`
	Series   []SeriesLayout  `json:"series,omitempty"`
	Lines    []LineLayout    `json:"lines,omitempty"`
	Legend   *LegendLayout   `json:"legend,omitempty"`
	ColorBar *ColorBarLayout `json:"colorbar,omitempty"`
	Scene    *SceneLayout    `json:"scene,omitempty"`
}

// AxisLayout is a resolved axis.
type AxisLayout struct {
	Name   string      `json:"name"`
	Title  string      `json:"title,omitempty"`
	Type   scale.Type  `json:"type"`
	Domain axis.Range  `json:"domain"`
	Range  axis.Range  `json:"range"`
	Ticks  []TickLabel `json:"ticks"`
}

// TickLabel is a tick at screen position Pos along its axis.
type TickLabel struct {
	Value float64 `json:"value"`
	Pos   float64 `json:"pos"`
	Label string  `json:"label"`
}

// SeriesLayout holds a series' points in screen coordinates.
type SeriesLayout struct {
	Name   string          `json:"name"`
	Color  string          `json:"color"`
	Points []overlay.Point `json:"points"`
}

// LineLayout is a visible reference line.
type LineLayout struct {
	Name    string          `json:"name,omitempty"`
	Color   string          `json:"color,omitempty"`
	Dash    []float64       `json:"dash,omitempty"`
	Segment refgeom.Segment `json:"segment"`
	Label   *refgeom.Label  `json:"label,omitempty"`
}

// LegendLayout is the placed legend.
type LegendLayout struct {
	Rect  overlay.Rect `json:"rect"`
	Score float64      `json:"score"`
	Items []LegendItem `json:"items"`
}

// LegendItem is one placed legend entry.
type LegendItem struct {
	Label  string       `json:"label"`
	Color  string       `json:"color"`
	Swatch overlay.Rect `json:"swatch"`
	TextX  float64      `json:"text_x"`
	TextY  float64      `json:"text_y"`
}

// ColorBarLayout is the placed color bar.
type ColorBarLayout struct {
	Title      string          `json:"title,omitempty"`
	Horizontal bool            `json:"horizontal,omitempty"`
	Rect       overlay.Rect    `json:"rect"`
	Score      float64         `json:"score"`
	Stops      []ColorStop     `json:"stops"`
	Ticks      []colorbar.Tick `json:"ticks"`
}

// ColorStop is a gradient stop with a hex color.
type ColorStop struct {
	Offset float64 `json:"offset"`
	Value  float64 `json:"value"`
	Color  string  `json:"color"`
}

// SceneLayout holds 3D reference geometry in scene coordinates.
type SceneLayout struct {
	Box    refgeom.Box  `json:"box"`
	Lines  []SceneLine  `json:"lines,omitempty"`
	Planes []ScenePlane `json:"planes,omitempty"`
}

// SceneLine is a visible 3D reference line.
type SceneLine struct {
	Name   string          `json:"name,omitempty"`
	Points [2]refgeom.Vec3 `json:"points"`
}

// ScenePlane is a visible reference plane quad.
type ScenePlane struct {
	Name    string          `json:"name,omitempty"`
	Corners [4]refgeom.Vec3 `json:"corners"`
}

// colorStops is the number of gradient stops reported for a color bar.
const colorStops = 11

// defaultColors colors series that do not set a color.
var defaultColors = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b"}

// A Layouter resolves charts into frames.
type Layouter struct {
	Measurer textmetrics.Measurer
	Logger   *slog.Logger
}

// axisState is one 2D axis during layout.
type axisState struct {
	name  string
	spec  AxisSpec
	dom   axis.Range
	scale *scale.Scale
	ticks []float64
}

// Layout resolves c. tr holds the axis ranges accumulated over earlier
// frames; Layout returns it updated with this frame's data.
func (l *Layouter) Layout(c *Chart, tr axis.Tracker) (*Frame, axis.Tracker) {
	lg := diag.Or(l.Logger).With("chart", c.Path)
	m := l.Measurer
	if m == nil {
		m = textmetrics.Default()
	}

	tab := seriesToTable(c.Series)

	// Data domains. Unless fixed, each axis only grows across
	// frames.
	domain := func(name string, spec AxisSpec, values []float64) axis.Range {
		if spec.Fixed != nil {
			return *spec.Fixed
		}
		var changed bool
		tr, changed = tr.Observe(name, axis.Auto(values))
		if changed {
			lg.Debug("axis range expanded", "axis", name, "range", tr.Range(name))
		}
		base := tr.Range(name)
		if spec.View != nil {
			return *spec.View
		}
		return base
	}
	allX, _, _ := columns(tab, "")
	_, yVals, _ := columns(tab, "y")
	x := &axisState{name: "x", spec: c.X, dom: domain("x", c.X, allX)}
	y := &axisState{name: "y", spec: c.Y, dom: domain("y", c.Y, yVals)}
	axes := []*axisState{x, y}
	var y2 *axisState
	if c.Y2 != nil {
		_, y2Vals, _ := columns(tab, "y2")
		y2 = &axisState{name: "y2", spec: *c.Y2, dom: domain("y2", *c.Y2, y2Vals)}
		if c.Y2.View == nil && c.Y2.Fixed == nil {
			yBase := tr.Range("y")
			if c.Y.Fixed != nil {
				yBase = *c.Y.Fixed
			}
			y2.dom = axis.SyncY2(y.dom, yBase, y2.dom, c.Y2Sync)
		}
		axes = append(axes, y2)
	}

	// Measure tick labels against provisional scales to size the
	// margins, then build the screen scales.
	for _, a := range axes {
		opts := a.spec.Opts
		opts.Logger = lg
		a.scale = scale.New(a.spec.Type, a.dom, axis.Range{Min: 0, Max: 1}, opts)
		a.ticks = a.scale.Ticks(a.spec.Ticks)
	}
	labels := margin.Axes{
		X:      margin.Labels(x.ticks),
		Y:      margin.Labels(y.ticks),
		Title:  c.Title,
		XTitle: c.X.Title,
		YTitle: c.Y.Title,
	}
	if y2 != nil {
		labels.Y2 = margin.Labels(y2.ticks)
		labels.Y2Title = y2.spec.Title
	}
	insets := margin.Compute(labels, m)
	plot := margin.Inner(c.Width, c.Height, insets)

	f := &Frame{
		Source: c.Path,
		Title:  c.Title,
		Width:  c.Width,
		Height: c.Height,
		Insets: insets,
		Plot:   plot,
	}
	for _, a := range axes {
		var rng axis.Range
		if a == x {
			rng = axis.Range{Min: plot.X, Max: plot.X + plot.W}
		} else {
			// Screen y grows downward.
			rng = axis.Range{Min: plot.Y + plot.H, Max: plot.Y}
		}
		opts := a.spec.Opts
		opts.Logger = lg
		a.scale = scale.New(a.spec.Type, a.dom, rng, opts)
		al := AxisLayout{
			Name:   a.name,
			Title:  a.spec.Title,
			Type:   a.spec.Type,
			Domain: a.scale.Domain(),
			Range:  rng,
		}
		for i, label := range margin.Labels(a.ticks) {
			al.Ticks = append(al.Ticks, TickLabel{a.ticks[i], a.scale.Map(a.ticks[i]), label})
		}
		f.Axes = append(f.Axes, al)
	}

	// Series points and trend lines.
	var points []overlay.Point
	var entries []overlay.LegendEntry
	lines := append([]RefLine(nil), c.Lines...)
	for i, s := range c.Series {
		if s.Hidden {
			continue
		}
		ys := y
		if s.OnY2 {
			ys = y2
		}
		col := s.Color
		if col == "" {
			col = defaultColors[i%len(defaultColors)]
		}
		sl := SeriesLayout{Name: s.Name, Color: col}
		for j := range s.X {
			p := overlay.Point{X: x.scale.Map(s.X[j]), Y: ys.scale.Map(s.Y[j])}
			if !finite(p.X) || !finite(p.Y) {
				lg.Debug("dropping non-finite point", "series", s.Name, "index", j)
				continue
			}
			sl.Points = append(sl.Points, p)
		}
		points = append(points, sl.Points...)
		f.Series = append(f.Series, sl)
		entries = append(entries, overlay.LegendEntry{Label: s.Name, Color: parseColor(col, lg)})

		if s.Trend {
			d, ok := refgeom.FitDiagonal(s.X, s.Y)
			if !ok {
				lg.Warn("cannot fit trend line", "series", s.Name)
				continue
			}
			d.Name = s.Name + " trend"
			d.Style = refgeom.Style{Color: col, Width: 1, Dash: []float64{4, 2}, Opacity: 1}
			lines = append(lines, RefLine{d, s.OnY2})
		}
	}

	// Reference lines. Their labels are kept clear of overlays.
	var exclude []overlay.Rect
	for _, rl := range lines {
		ys := y
		if rl.OnY2 {
			ys = y2
		}
		r := refgeom.Resolver{
			Bounds: refgeom.Bounds{X: x.scale.Domain(), Y: ys.scale.Domain()},
			X:      x.scale,
			Y:      ys.scale,
			Logger: lg,
		}
		seg, ok := r.Resolve(rl.Line)
		if !ok {
			continue
		}
		com := commonOf(rl.Line)
		ll := LineLayout{Name: com.Name, Color: com.Style.Color, Dash: com.Style.Dash, Segment: seg}
		if com.Annotation != nil {
			label := refgeom.PlaceAnnotation(seg, *com.Annotation)
			ll.Label = &label
			exclude = append(exclude, labelRect(label, m))
		}
		f.Lines = append(f.Lines, ll)
	}

	// Overlays.
	var elems []layout.Element
	if c.Legend && len(entries) > 0 {
		elems = append(elems, &overlay.Legend{Entries: entries, Measurer: m})
	}
	if cb := c.ColorBar; cb != nil {
		bar := &colorbar.Bar{
			Ticks:      scale.TickSpec{Count: cb.Ticks},
			Width:      cb.Width,
			Length:     cb.Length,
			Horizontal: cb.Horizontal,
		}
		_, length := barSize(bar)
		bar.Scale = scale.New(cb.Type, cb.Domain, axis.Range{Min: 0, Max: length}, scale.Options{Nice: true, TickCount: cb.Ticks, Logger: lg})
		elems = append(elems, bar)
	}
	placed := overlay.PlaceAll(overlay.Params{
		Bounds:         plot,
		Points:         points,
		Exclude:        exclude,
		AxisClearance:  c.Clearance,
		GridResolution: c.Grid,
	}, elems...)
	for i, e := range elems {
		lg.Debug("placed overlay", "element", fmt.Sprintf("%T", e), "rect", placed[i].Rect, "score", placed[i].Score)
		switch e := e.(type) {
		case *overlay.Legend:
			ll := &LegendLayout{Rect: placed[i].Rect, Score: placed[i].Score}
			for _, it := range e.Items() {
				ll.Items = append(ll.Items, LegendItem{
					Label:  it.Label,
					Color:  hexColor(it.Color),
					Swatch: it.Swatch,
					TextX:  it.TextX,
					TextY:  it.TextY,
				})
			}
			f.Legend = ll
		case *colorbar.Bar:
			cl := &ColorBarLayout{
				Title:      c.ColorBar.Title,
				Horizontal: e.Horizontal,
				Rect:       placed[i].Rect,
				Score:      placed[i].Score,
			}
			for _, s := range e.Stops(colorStops) {
				cl.Stops = append(cl.Stops, ColorStop{s.Offset, s.Value, hexColor(s.Color)})
			}
			cl.Ticks = e.TickMarks()
			f.ColorBar = cl
		}
	}

	if c.Scene != nil {
		f.Scene = l.layoutScene(c.Scene, tab, lg)
	}
	return f, tr
}

// layoutScene resolves 3D reference geometry in a box spanning the
// rows of tab that have z values.
func (l *Layouter) layoutScene(sc *SceneSpec, tab *table.Table, lg *slog.Logger) *SceneLayout {
	xs, ys, zs := columns(tab, "")
	var bx, by, bz []float64
	for i, z := range zs {
		if !math.IsNaN(z) {
			bx, by, bz = append(bx, xs[i]), append(by, ys[i]), append(bz, z)
		}
	}
	box := refgeom.Box{X: axis.Auto(bx), Y: axis.Auto(by), Z: axis.Auto(bz)}
	r := refgeom.Resolver3D{Scene: refgeom.Scene{Box: box, Size: sc.Size}, Logger: lg}

	out := &SceneLayout{Box: box}
	for _, ln := range sc.Lines {
		pts, ok := r.Line(ln)
		if !ok {
			continue
		}
		out.Lines = append(out.Lines, SceneLine{Name: common3DOf(ln).Name, Points: pts})
	}
	for _, pl := range sc.Planes {
		corners, ok := r.Plane(pl)
		if !ok {
			continue
		}
		out.Planes = append(out.Planes, ScenePlane{Name: common3DOf(pl).Name, Corners: corners})
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func barSize(b *colorbar.Bar) (width, length float64) {
	w, h, _, _ := b.SizeHint()
	if b.Horizontal {
		return h, w
	}
	return w, h
}

// commonOf returns the shared attributes of a 2D line.
func commonOf(l refgeom.Line) refgeom.Common {
	switch l := l.(type) {
	case refgeom.Horizontal:
		return l.Common
	case refgeom.Vertical:
		return l.Common
	case refgeom.Diagonal:
		return l.Common
	case refgeom.LineSegment:
		return l.Common
	case refgeom.InfiniteLine:
		return l.Common
	}
	return refgeom.Common{}
}

// common3DOf returns the shared attributes of a 3D line or plane.
func common3DOf(v any) refgeom.Common3D {
	switch v := v.(type) {
	case refgeom.XAxisLine:
		return v.Common3D
	case refgeom.YAxisLine:
		return v.Common3D
	case refgeom.ZAxisLine:
		return v.Common3D
	case refgeom.Segment3D:
		return v.Common3D
	case refgeom.InfiniteLine3D:
		return v.Common3D
	case refgeom.PlaneXY:
		return v.Common3D
	case refgeom.PlaneXZ:
		return v.Common3D
	case refgeom.PlaneYZ:
		return v.Common3D
	case refgeom.PlaneNormal:
		return v.Common3D
	case refgeom.PlanePoints:
		return v.Common3D
	}
	return refgeom.Common3D{}
}

// labelRect returns the approximate bounding box of an unrotated
// label.
func labelRect(lb refgeom.Label, m textmetrics.Measurer) overlay.Rect {
	w, h := m.TextWidth(lb.Text), m.LineHeight()
	r := overlay.Rect{X: lb.X, Y: lb.Y, W: w, H: h}
	switch lb.Anchor {
	case refgeom.AnchorMiddle:
		r.X -= w / 2
	case refgeom.AnchorEnd:
		r.X -= w
	}
	switch lb.Baseline {
	case refgeom.BaselineMiddle:
		r.Y -= h / 2
	case refgeom.BaselineBottom:
		r.Y -= h
	}
	return r
}

// parseColor parses a "#rrggbb" color. Unparseable colors are gray.
func parseColor(s string, lg *slog.Logger) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil || len(s) != 7 {
		lg.Warn("bad color", "color", s)
		return color.RGBA{0x80, 0x80, 0x80, 0xff}
	}
	return color.RGBA{r, g, b, 0xff}
}

func hexColor(c color.Color) string {
	if c == nil {
		return ""
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

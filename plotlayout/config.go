// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aclements/plotcore/axis"
	"github.com/aclements/plotcore/refgeom"
	"github.com/aclements/plotcore/scale"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
)

// ConfigError wraps an error loading a chart file with the operation
// and the offending field.
type ConfigError struct {
	Op    string
	Path  string
	Field string // Optional: YAML path of the bad field
	Err   error
}

func (e *ConfigError) Error() string {
	base := e.Op
	if e.Path != "" {
		base += " " + e.Path
	}
	if e.Field != "" {
		base += ": " + e.Field
	}
	if e.Err != nil {
		base += ": " + e.Err.Error()
	}
	return base
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func invalidField(path, field, msg string) error {
	return &ConfigError{
		Op:    "load chart",
		Path:  path,
		Field: field,
		Err:   fmt.Errorf("%w: %s", ErrInvalidConfig, msg),
	}
}

// YAML chart description.

type yamlChart struct {
	Title    string          `yaml:"title"`
	Width    float64         `yaml:"width"`
	Height   float64         `yaml:"height"`
	X        yamlAxis        `yaml:"x"`
	Y        yamlAxis        `yaml:"y"`
	Y2       *yamlAxis       `yaml:"y2"`
	Series   []yamlSeries    `yaml:"series"`
	Lines    []yamlLine      `yaml:"lines"`
	Legend   *bool           `yaml:"legend"`
	ColorBar *yamlColorBar   `yaml:"colorbar"`
	Scene    *yamlScene      `yaml:"scene"`
	Overlay  yamlOverlayOpts `yaml:"overlay"`
}

type yamlAxis struct {
	Title     string    `yaml:"title"`
	Type      string    `yaml:"type"`
	Ticks     *int      `yaml:"ticks"`
	TickAt    []float64 `yaml:"tick_values"`
	Nice      *bool     `yaml:"nice"`
	Threshold float64   `yaml:"threshold"`
	Range     []float64 `yaml:"range"`
	View      []float64 `yaml:"view"`
	Sync      *yamlSync `yaml:"sync"`
}

type yamlSync struct {
	Mode       string   `yaml:"mode"`
	AlignValue *float64 `yaml:"align_value"`
}

type yamlSeries struct {
	Name   string    `yaml:"name"`
	Axis   string    `yaml:"axis"`
	Color  string    `yaml:"color"`
	Hidden bool      `yaml:"hidden"`
	Trend  bool      `yaml:"trend"`
	X      []float64 `yaml:"x"`
	Y      []float64 `yaml:"y"`
	Z      []float64 `yaml:"z"`
}

type yamlSpan struct {
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

type yamlAnnotation struct {
	Text       string  `yaml:"text"`
	Position   string  `yaml:"position"`
	Side       string  `yaml:"side"`
	OffsetX    float64 `yaml:"offset_x"`
	OffsetY    float64 `yaml:"offset_y"`
	AutoRotate bool    `yaml:"auto_rotate"`
}

type yamlLine struct {
	Kind       string          `yaml:"kind"`
	Name       string          `yaml:"name"`
	Axis       string          `yaml:"axis"`
	Color      string          `yaml:"color"`
	Width      float64         `yaml:"width"`
	Dash       []float64       `yaml:"dash"`
	Hidden     bool            `yaml:"hidden"`
	X          any             `yaml:"x"`
	Y          any             `yaml:"y"`
	Z          any             `yaml:"z"`
	X1         any             `yaml:"x1"`
	Y1         any             `yaml:"y1"`
	Z1         any             `yaml:"z1"`
	X2         any             `yaml:"x2"`
	Y2         any             `yaml:"y2"`
	Z2         any             `yaml:"z2"`
	X3         any             `yaml:"x3"`
	Y3         any             `yaml:"y3"`
	Z3         any             `yaml:"z3"`
	Slope      float64         `yaml:"slope"`
	Intercept  float64         `yaml:"intercept"`
	Normal     []float64       `yaml:"normal"`
	XSpan      *yamlSpan       `yaml:"x_span"`
	YSpan      *yamlSpan       `yaml:"y_span"`
	ZSpan      *yamlSpan       `yaml:"z_span"`
	Annotation *yamlAnnotation `yaml:"annotation"`
}

type yamlColorBar struct {
	Title      string    `yaml:"title"`
	Type       string    `yaml:"type"`
	Domain     []float64 `yaml:"domain"`
	Ticks      *int      `yaml:"ticks"`
	Width      float64   `yaml:"width"`
	Length     float64   `yaml:"length"`
	Horizontal bool      `yaml:"horizontal"`
}

type yamlScene struct {
	Size   []float64  `yaml:"size"`
	Lines  []yamlLine `yaml:"lines"`
	Planes []yamlLine `yaml:"planes"`
}

type yamlOverlayOpts struct {
	Clearance *float64 `yaml:"clearance"`
	Grid      int      `yaml:"grid"`
}

// Resolved chart description.

// A Chart is one frame of input.
type Chart struct {
	Path          string
	Title         string
	Width, Height float64
	X, Y          AxisSpec
	Y2            *AxisSpec
	Y2Sync        axis.Y2Sync
	Series        []Series
	Lines         []RefLine
	Legend        bool
	ColorBar      *ColorBarSpec
	Scene         *SceneSpec
	Clearance     float64
	Grid          int
}

// AxisSpec describes one 2D axis.
type AxisSpec struct {
	Title string
	Type  scale.Type
	Ticks scale.TickSpec
	Opts  scale.Options

	// Fixed, if non-nil, replaces the auto range. View, if
	// non-nil, is the zoomed range shown instead of the tracked
	// range.
	Fixed, View *axis.Range
}

// Series is one data series.
type Series struct {
	Name   string
	OnY2   bool
	Color  string
	Hidden bool
	Trend  bool
	X, Y   []float64
	Z      []float64
}

// A RefLine is a 2D reference line bound to a y axis.
type RefLine struct {
	Line refgeom.Line
	OnY2 bool
}

// ColorBarSpec describes the chart's color bar.
type ColorBarSpec struct {
	Title         string
	Type          scale.Type
	Domain        axis.Range
	Ticks         int
	Width, Length float64
	Horizontal    bool
}

// SceneSpec describes 3D reference geometry drawn in a scene whose
// box is the range of the chart's X, Y and Z series data.
type SceneSpec struct {
	Size   refgeom.Vec3
	Lines  []refgeom.Line3D
	Planes []refgeom.Plane
}

// Defaults.
const (
	defaultWidth     = 640
	defaultHeight    = 400
	defaultTicks     = 5
	defaultClearance = 8
)

// LoadChart reads and validates the chart file at path.
func LoadChart(path string) (*Chart, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Op: "load chart", Path: path, Err: fmt.Errorf("%w: %w", ErrNotFound, err)}
	}
	return ParseChart(path, b)
}

// ParseChart decodes and validates a YAML chart description. path is
// used only in errors.
func ParseChart(path string, data []byte) (*Chart, error) {
	var dto yamlChart
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, &ConfigError{Op: "load chart", Path: path, Err: fmt.Errorf("%w: %w", ErrInvalidConfig, err)}
	}
	return mapChart(path, dto)
}

func mapChart(path string, yc yamlChart) (*Chart, error) {
	c := &Chart{
		Path:   path,
		Title:  yc.Title,
		Width:  yc.Width,
		Height: yc.Height,
		Legend: yc.Legend == nil || *yc.Legend,
		Grid:   yc.Overlay.Grid,
	}
	if c.Width == 0 {
		c.Width = defaultWidth
	}
	if c.Height == 0 {
		c.Height = defaultHeight
	}
	if c.Width < 0 || c.Height < 0 {
		return nil, invalidField(path, "width", "chart size must be positive")
	}
	c.Clearance = defaultClearance
	if yc.Overlay.Clearance != nil {
		c.Clearance = *yc.Overlay.Clearance
	}

	var err error
	if c.X, err = mapAxis(path, "x", yc.X); err != nil {
		return nil, err
	}
	if c.Y, err = mapAxis(path, "y", yc.Y); err != nil {
		return nil, err
	}
	if yc.Y2 != nil {
		y2, err := mapAxis(path, "y2", *yc.Y2)
		if err != nil {
			return nil, err
		}
		c.Y2 = &y2
		if s := yc.Y2.Sync; s != nil {
			mode, err := axis.ParseSyncMode(s.Mode)
			if err != nil {
				return nil, invalidField(path, "y2.sync.mode", err.Error())
			}
			c.Y2Sync = axis.Y2Sync{Mode: mode, AlignValue: s.AlignValue}
			if err := c.Y2Sync.Validate(); err != nil {
				return nil, invalidField(path, "y2.sync", err.Error())
			}
		}
	}

	for i, s := range yc.Series {
		field := fmt.Sprintf("series[%d]", i)
		if strings.TrimSpace(s.Name) == "" {
			return nil, invalidField(path, field+".name", "series name is required")
		}
		if len(s.X) != len(s.Y) {
			return nil, invalidField(path, field, fmt.Sprintf("x has %d values but y has %d", len(s.X), len(s.Y)))
		}
		if s.Z != nil && len(s.Z) != len(s.X) {
			return nil, invalidField(path, field+".z", fmt.Sprintf("z has %d values but x has %d", len(s.Z), len(s.X)))
		}
		onY2, err := mapAxisRef(path, field+".axis", s.Axis, c.Y2 != nil)
		if err != nil {
			return nil, err
		}
		c.Series = append(c.Series, Series{
			Name: s.Name, OnY2: onY2, Color: s.Color, Hidden: s.Hidden, Trend: s.Trend,
			X: s.X, Y: s.Y, Z: s.Z,
		})
	}

	for i, l := range yc.Lines {
		field := fmt.Sprintf("lines[%d]", i)
		line, err := mapLine(path, field, l)
		if err != nil {
			return nil, err
		}
		onY2, err := mapAxisRef(path, field+".axis", l.Axis, c.Y2 != nil)
		if err != nil {
			return nil, err
		}
		c.Lines = append(c.Lines, RefLine{line, onY2})
	}

	if cb := yc.ColorBar; cb != nil {
		spec := &ColorBarSpec{Title: cb.Title, Ticks: defaultTicks, Width: cb.Width, Length: cb.Length, Horizontal: cb.Horizontal}
		if cb.Ticks != nil {
			spec.Ticks = *cb.Ticks
		}
		if spec.Type, err = parseScaleType(cb.Type); err != nil {
			return nil, invalidField(path, "colorbar.type", err.Error())
		}
		r, err := mapRange(path, "colorbar.domain", cb.Domain)
		if err != nil {
			return nil, err
		}
		if r == nil {
			return nil, invalidField(path, "colorbar.domain", "color bar domain is required")
		}
		spec.Domain = *r
		c.ColorBar = spec
	}

	if sc := yc.Scene; sc != nil {
		if c.Scene, err = mapScene(path, *sc); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func parseScaleType(s string) (scale.Type, error) {
	if s == "" {
		return scale.Linear, nil
	}
	return scale.ParseType(s)
}

func mapAxis(path, name string, ya yamlAxis) (AxisSpec, error) {
	typ, err := parseScaleType(ya.Type)
	if err != nil {
		return AxisSpec{}, invalidField(path, name+".type", err.Error())
	}
	a := AxisSpec{
		Title: ya.Title,
		Type:  typ,
		Ticks: scale.TickSpec{Values: ya.TickAt, Count: defaultTicks},
		Opts: scale.Options{
			Threshold: ya.Threshold,
			Nice:      ya.Nice == nil || *ya.Nice,
		},
	}
	if ya.Ticks != nil {
		if *ya.Ticks < 0 {
			return AxisSpec{}, invalidField(path, name+".ticks", "tick count must not be negative")
		}
		a.Ticks.Count = *ya.Ticks
	}
	a.Opts.TickCount = a.Ticks.Count
	if typ == scale.Arcsinh && ya.Threshold < 0 {
		return AxisSpec{}, invalidField(path, name+".threshold", "threshold must be positive")
	}
	if a.Fixed, err = mapRange(path, name+".range", ya.Range); err != nil {
		return AxisSpec{}, err
	}
	if a.View, err = mapRange(path, name+".view", ya.View); err != nil {
		return AxisSpec{}, err
	}
	if ya.Sync != nil && name != "y2" {
		return AxisSpec{}, invalidField(path, name+".sync", "only y2 can be synchronized")
	}
	return a, nil
}

func mapRange(path, field string, v []float64) (*axis.Range, error) {
	if v == nil {
		return nil, nil
	}
	if len(v) != 2 {
		return nil, invalidField(path, field, "range must have two values")
	}
	r := axis.Range{Min: v[0], Max: v[1]}
	if !r.IsFinite() {
		return nil, invalidField(path, field, "range must be finite")
	}
	return &r, nil
}

func mapAxisRef(path, field, name string, haveY2 bool) (bool, error) {
	switch name {
	case "", "y":
		return false, nil
	case "y2":
		if !haveY2 {
			return false, invalidField(path, field, "y2 axis is not configured")
		}
		return true, nil
	}
	return false, invalidField(path, field, fmt.Sprintf("unknown axis %q", name))
}

func mapSpan(s *yamlSpan) refgeom.Span {
	if s == nil {
		return refgeom.Span{}
	}
	return refgeom.Span{Min: s.Min, Max: s.Max}
}

func mapCommon(path, field string, l yamlLine) (refgeom.Common, error) {
	c := refgeom.Common{
		Name:   l.Name,
		Style:  refgeom.Style{Color: l.Color, Width: l.Width, Dash: l.Dash, Opacity: 1},
		XSpan:  mapSpan(l.XSpan),
		YSpan:  mapSpan(l.YSpan),
		Hidden: l.Hidden,
	}
	if a := l.Annotation; a != nil {
		ann := &refgeom.Annotation{
			Text:       a.Text,
			OffsetX:    a.OffsetX,
			OffsetY:    a.OffsetY,
			AutoRotate: a.AutoRotate,
		}
		if a.Position != "" {
			if err := ann.Position.UnmarshalText([]byte(a.Position)); err != nil {
				return c, invalidField(path, field+".annotation.position", err.Error())
			}
		}
		if a.Side != "" {
			if err := ann.Side.UnmarshalText([]byte(a.Side)); err != nil {
				return c, invalidField(path, field+".annotation.side", err.Error())
			}
		}
		c.Annotation = ann
	}
	return c, nil
}

func mapLine(path, field string, l yamlLine) (refgeom.Line, error) {
	c, err := mapCommon(path, field, l)
	if err != nil {
		return nil, err
	}
	switch l.Kind {
	case "horizontal":
		return refgeom.Horizontal{Common: c, Y: l.Y}, nil
	case "vertical":
		return refgeom.Vertical{Common: c, X: l.X}, nil
	case "diagonal":
		return refgeom.Diagonal{Common: c, Slope: l.Slope, Intercept: l.Intercept}, nil
	case "segment":
		return refgeom.LineSegment{Common: c, X1: l.X1, Y1: l.Y1, X2: l.X2, Y2: l.Y2}, nil
	case "line":
		return refgeom.InfiniteLine{Common: c, X1: l.X1, Y1: l.Y1, X2: l.X2, Y2: l.Y2}, nil
	}
	return nil, invalidField(path, field+".kind", fmt.Sprintf("unknown line kind %q", l.Kind))
}

func mapScene(path string, ys yamlScene) (*SceneSpec, error) {
	s := &SceneSpec{Size: refgeom.Vec3{X: 1, Y: 1, Z: 1}}
	if ys.Size != nil {
		if len(ys.Size) != 3 {
			return nil, invalidField(path, "scene.size", "size must have three values")
		}
		s.Size = refgeom.Vec3{X: ys.Size[0], Y: ys.Size[1], Z: ys.Size[2]}
	}
	for i, l := range ys.Lines {
		field := fmt.Sprintf("scene.lines[%d]", i)
		c, err := mapCommon(path, field, l)
		if err != nil {
			return nil, err
		}
		c3 := refgeom.Common3D{Common: c, ZSpan: mapSpan(l.ZSpan)}
		var line refgeom.Line3D
		switch l.Kind {
		case "x-axis":
			line = refgeom.XAxisLine{Common3D: c3, Y: l.Y, Z: l.Z}
		case "y-axis":
			line = refgeom.YAxisLine{Common3D: c3, X: l.X, Z: l.Z}
		case "z-axis":
			line = refgeom.ZAxisLine{Common3D: c3, X: l.X, Y: l.Y}
		case "segment":
			line = refgeom.Segment3D{Common3D: c3, From: point1(l), To: point2(l)}
		case "line":
			line = refgeom.InfiniteLine3D{Common3D: c3, P1: point1(l), P2: point2(l)}
		default:
			return nil, invalidField(path, field+".kind", fmt.Sprintf("unknown 3D line kind %q", l.Kind))
		}
		s.Lines = append(s.Lines, line)
	}
	for i, l := range ys.Planes {
		field := fmt.Sprintf("scene.planes[%d]", i)
		c, err := mapCommon(path, field, l)
		if err != nil {
			return nil, err
		}
		c3 := refgeom.Common3D{Common: c, ZSpan: mapSpan(l.ZSpan)}
		var plane refgeom.Plane
		switch l.Kind {
		case "xy":
			plane = refgeom.PlaneXY{Common3D: c3, Z: l.Z}
		case "xz":
			plane = refgeom.PlaneXZ{Common3D: c3, Y: l.Y}
		case "yz":
			plane = refgeom.PlaneYZ{Common3D: c3, X: l.X}
		case "normal":
			if len(l.Normal) != 3 {
				return nil, invalidField(path, field+".normal", "normal must have three values")
			}
			n := refgeom.Vec3{X: l.Normal[0], Y: l.Normal[1], Z: l.Normal[2]}
			plane = refgeom.PlaneNormal{Common3D: c3, Point: point1(l), Normal: n}
		case "points":
			plane = refgeom.PlanePoints{Common3D: c3, P1: point1(l), P2: point2(l), P3: refgeom.Point3{X: l.X3, Y: l.Y3, Z: l.Z3}}
		default:
			return nil, invalidField(path, field+".kind", fmt.Sprintf("unknown plane kind %q", l.Kind))
		}
		s.Planes = append(s.Planes, plane)
	}
	return s, nil
}

func point1(l yamlLine) refgeom.Point3 { return refgeom.Point3{X: l.X1, Y: l.Y1, Z: l.Z1} }
func point2(l yamlLine) refgeom.Point3 { return refgeom.Point3{X: l.X2, Y: l.Y2, Z: l.Z2} }

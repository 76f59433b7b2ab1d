// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"cogentcore.org/arcslider/base/iox/tomlx"
	"cogentcore.org/arcslider/base/iox/yamlx"
	"cogentcore.org/arcslider/math32"
	"cogentcore.org/arcslider/raster"
	"cogentcore.org/arcslider/slider"
	"golang.org/x/image/colornames"
)

// Document is the file read by the commands: the configuration of
// a slider, its handle values, and how to draw it.
type Document struct {

	// Slider is the slider configuration.
	Slider slider.Config `toml:"slider" yaml:"slider"`

	// Value, Low, and High are the handle values; absent handles are nil.
	Value *float32 `toml:"value" yaml:"value"`
	Low   *float32 `toml:"low" yaml:"low"`
	High  *float32 `toml:"high" yaml:"high"`

	// Labels are the accessible labels of the handles, by handle name.
	Labels map[string]string `toml:"labels" yaml:"labels"`

	// Width and Height are the size of the rendered image, in pixels.
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// Stroke is the width of the track, in pixels.
	Stroke float32 `toml:"stroke" yaml:"stroke"`

	// CSS is a stylesheet setting the round slider custom properties,
	// such as --round-slider-bar-color and --round-slider-path-width.
	// Colors and the path width it sets take precedence over Stroke
	// and the default style.
	CSS string `toml:"css" yaml:"css"`

	// Colors are color names or hex values that take precedence
	// over the default style and CSS.
	Colors Colors `toml:"colors" yaml:"colors"`
}

// Colors are the color names of a [slider.Style].
type Colors struct {
	Track       string `toml:"track" yaml:"track"`
	Bar         string `toml:"bar" yaml:"bar"`
	DisabledBar string `toml:"disabled-bar" yaml:"disabledBar"`
	Handle      string `toml:"handle" yaml:"handle"`
	Low         string `toml:"low" yaml:"low"`
	High        string `toml:"high" yaml:"high"`
	Background  string `toml:"background" yaml:"background"`
}

// Defaults sets the default values of the document.
func (d *Document) Defaults() {
	*d = Document{Width: 200, Height: 200, Stroke: 3}
	d.Slider.Defaults()
}

// OpenDocument opens the document in the given TOML or YAML file,
// on top of the default values.
func OpenDocument(filename string) (*Document, error) {
	d := &Document{}
	d.Defaults()
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = tomlx.Open(d, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(d, filename)
	default:
		return nil, fmt.Errorf("arcslider: document %q must be a .toml or .yaml file", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("arcslider: opening document: %w", err)
	}
	return d, nil
}

// Size returns the size of the rendered image.
func (d *Document) Size() image.Point {
	return image.Pt(max(d.Width, 1), max(d.Height, 1))
}

// NewSlider returns a new slider with the configuration and values of
// the document, laid out for an image of the document size, together with
// the renderer for that image and the style to draw it with.
func (d *Document) NewSlider() (*slider.Slider, *raster.Renderer, *slider.Style, error) {
	st, stroke, err := d.Theme()
	if err != nil {
		return nil, nil, nil, err
	}
	// the layout only depends on the boundary, padding, and margin
	// of the configuration, which do not depend on the values
	probe := slider.NewBox(math32.Box2{}, stroke)
	if err := probe.SetConfig(d.Slider); err != nil {
		return nil, nil, nil, err
	}
	rm := probe.Render()
	rs := raster.New(d.Size(), nil)
	sl := slider.NewBox(rs.Layout(&rm), stroke)
	if err := sl.SetConfig(d.Slider); err != nil {
		return nil, nil, nil, err
	}
	for id, v := range map[slider.HandleIDs]*float32{slider.Value: d.Value, slider.Low: d.Low, slider.High: d.High} {
		if v != nil {
			sl.SetValue(id, *v)
		}
	}
	for name, label := range d.Labels {
		var id slider.HandleIDs
		if err := id.SetString(name); err != nil {
			return nil, nil, nil, fmt.Errorf("arcslider: label: %w", err)
		}
		sl.SetLabel(id, label)
	}
	return sl, rs, st, nil
}

// Theme returns the style of the document and the width of the track stroke.
func (d *Document) Theme() (*slider.Style, float32, error) {
	st := &slider.Style{}
	st.Defaults()
	stroke := d.Stroke
	if d.CSS != "" {
		w, err := applyCSS(st, d.CSS)
		if err != nil {
			return nil, 0, err
		}
		if w > 0 {
			stroke = w
		}
	}
	fields := []struct {
		name string
		dst  *color.Color
	}{
		{d.Colors.Track, &st.Track},
		{d.Colors.Bar, &st.Bar},
		{d.Colors.DisabledBar, &st.DisabledBar},
		{d.Colors.Handle, &st.Handle},
		{d.Colors.Low, &st.Low},
		{d.Colors.High, &st.High},
		{d.Colors.Background, &st.Background},
	}
	for _, f := range fields {
		if f.name == "" {
			continue
		}
		c, err := parseColor(f.name)
		if err != nil {
			return nil, 0, err
		}
		*f.dst = c
	}
	return st, stroke, nil
}

// parseColor parses a CSS color name or a #rgb, #rrggbb, or #rrggbbaa hex value.
func parseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if s == "transparent" || s == "none" {
		return color.RGBA{}, nil
	}
	if !strings.HasPrefix(s, "#") {
		return nil, fmt.Errorf("arcslider: unknown color %q", s)
	}
	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	var r, g, b, a uint8
	if n, err := fmt.Sscanf(h, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil || n != 4 || len(h) != 8 {
		return nil, fmt.Errorf("arcslider: invalid hex color %q", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// setValue sets the value of the given handle.
func (d *Document) setValue(id slider.HandleIDs, v float32) {
	switch id {
	case slider.Value:
		d.Value = &v
	case slider.Low:
		d.Low = &v
	case slider.High:
		d.High = &v
	}
}

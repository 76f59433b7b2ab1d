// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/arcslider/slider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestOpenDocument(t *testing.T) {
	fn := writeFile(t, "doc.toml", `
low = 20
high = 80
width = 300

[slider]
start-angle = 180
arc-length = 180

[labels]
low = "from"

[colors]
bar = "tomato"
`)
	d, err := OpenDocument(fn)
	require.NoError(t, err)
	assert.Equal(t, float32(180), d.Slider.StartAngle)
	assert.Equal(t, float32(100), d.Slider.Max, "defaults are kept")
	assert.Equal(t, 300, d.Width)
	assert.Equal(t, 200, d.Height)
	assert.Nil(t, d.Value)

	sl, _, _, err := d.NewSlider()
	require.NoError(t, err)
	assert.Equal(t, slider.ModeDual, sl.Handles().Mode())
	assert.Equal(t, "from", sl.Handles().Label(slider.Low))

	st, stroke, err := d.Theme()
	require.NoError(t, err)
	assert.Equal(t, float32(3), stroke)
	assert.Equal(t, color.Color(colornames.Tomato), st.Bar)
	assert.Equal(t, color.Color(colornames.Lightgray), st.Track)
}

func TestOpenDocumentYAML(t *testing.T) {
	fn := writeFile(t, "doc.yaml", "value: 5\nslider:\n  max: 10\n  rtl: true\n")
	d, err := OpenDocument(fn)
	require.NoError(t, err)
	require.NotNil(t, d.Value)
	assert.Equal(t, float32(5), *d.Value)
	assert.True(t, d.Slider.RTL)
	assert.Equal(t, float32(10), d.Slider.Max)
}

func TestOpenDocumentErrors(t *testing.T) {
	_, err := OpenDocument(writeFile(t, "doc.json", "{}"))
	assert.Error(t, err)

	_, err = OpenDocument(writeFile(t, "doc.yaml", "speed: 5\n"))
	assert.Error(t, err, "unknown fields")

	d, err := OpenDocument(writeFile(t, "doc.toml", "[slider]\nstep = 0\n"))
	require.NoError(t, err)
	_, _, _, err = d.NewSlider()
	assert.ErrorIs(t, err, slider.ErrInvalid)

	d, err = OpenDocument(writeFile(t, "doc.toml", "[labels]\nmiddle = \"x\"\n"))
	require.NoError(t, err)
	_, _, _, err = d.NewSlider()
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"deepskyblue", colornames.Deepskyblue},
		{" DarkGray ", colornames.Darkgray},
		{"#f00", color.NRGBA{R: 255, A: 255}},
		{"#00ff0080", color.NRGBA{G: 255, A: 128}},
		{"transparent", color.RGBA{}},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	for _, bad := range []string{"blurple", "#12", "#gg0000"} {
		_, err := parseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestDocumentCSS(t *testing.T) {
	fn := writeFile(t, "doc.yaml", `
value: 40
css: |
  :root {
    --round-slider-path-width: 8px;
    --round-slider-bar-color: gold;
    --round-slider-handle-color: gold;
  }
colors:
  handle: navy
`)
	d, err := OpenDocument(fn)
	require.NoError(t, err)
	sl, _, st, err := d.NewSlider()
	require.NoError(t, err)
	assert.Equal(t, float32(8), sl.Host().StrokeWidth())
	assert.Equal(t, color.Color(colornames.Gold), st.Bar)
	assert.Equal(t, color.Color(colornames.Navy), st.Handle, "colors take precedence over css")
}

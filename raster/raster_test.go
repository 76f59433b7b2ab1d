// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/arcslider/math32"
	"cogentcore.org/arcslider/slider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func assertColor(t *testing.T, want color.RGBA, img *image.RGBA, x, y int) {
	t.Helper()
	got := img.RGBAAt(x, y)
	assert.InDelta(t, want.R, got.R, 3, "R at %d,%d", x, y)
	assert.InDelta(t, want.G, got.G, 3, "G at %d,%d", x, y)
	assert.InDelta(t, want.B, got.B, 3, "B at %d,%d", x, y)
	assert.InDelta(t, want.A, got.A, 3, "A at %d,%d", x, y)
}

func render(t *testing.T, c slider.Config, v float32) (*Renderer, *slider.RenderModel) {
	t.Helper()
	sl := slider.NewBox(math32.B2(0, 0, 200, 200), 3)
	require.NoError(t, sl.SetConfig(c))
	rm := sl.ApplyValue(slider.Value, v)
	var st slider.Style
	st.Defaults()
	rs := New(image.Pt(200, 200), nil)
	rs.Render(&rm, &st)
	return rs, &rm
}

func TestLayout(t *testing.T) {
	var c slider.Config
	c.Defaults()
	rs, rm := render(t, c, 50)
	box := rs.Layout(rm)
	assert.InDelta(t, 9, box.Min.X, 1e-3)
	assert.InDelta(t, 191, box.Max.X, 1e-3)
	assert.InDelta(t, 100, box.Center().X, 1e-3)
	assert.InDelta(t, 91*(1+math32.Sqrt(2)/2), box.Size().Y, 1e-2)
	assert.InDelta(t, 100, box.Center().Y, 1e-3)
}

func TestRender(t *testing.T) {
	var c slider.Config
	c.Defaults()
	rs, _ := render(t, c, 50)
	img := rs.Image()

	// arc center is at (100, 113.3) with a radius of 91
	assertColor(t, colornames.Deepskyblue, img, 100, 22)
	assertColor(t, colornames.Lightgray, img, 189, 99)
	assertColor(t, colornames.Deepskyblue, img, 15, 78)
	assertColor(t, color.RGBA{}, img, 100, 113)
	assertColor(t, color.RGBA{}, img, 100, 199)
}

func TestRenderDisabled(t *testing.T) {
	var c slider.Config
	c.Defaults()
	c.Disabled = true
	rs, _ := render(t, c, 50)
	assertColor(t, colornames.Darkgray, rs.Image(), 100, 22)
	assertColor(t, colornames.Darkgray, rs.Image(), 15, 78)
}

func TestRenderRTL(t *testing.T) {
	var c slider.Config
	c.Defaults()
	c.RTL = true
	rs, _ := render(t, c, 25)
	img := rs.Image()
	// the bar from min to 25 is mirrored onto the right
	assertColor(t, colornames.Deepskyblue, img, 184, 78)
	assertColor(t, colornames.Lightgray, img, 15, 78)
}

func TestSetSize(t *testing.T) {
	rs := New(image.Pt(10, 10), nil)
	img := rs.Image()
	rs.SetSize(image.Pt(10, 10), nil)
	assert.Same(t, img, rs.Image())
	rs.SetSize(image.Pt(20, 30), nil)
	assert.Equal(t, image.Pt(20, 30), rs.Image().Bounds().Size())
	assert.Equal(t, image.Pt(20, 30), rs.Size())
}

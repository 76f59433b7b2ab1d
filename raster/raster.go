// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster draws a [slider.RenderModel] into an image,
// filling polygons with a [vector.Rasterizer].
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/arcslider/arc"
	"cogentcore.org/arcslider/math32"
	"cogentcore.org/arcslider/slider"
	"golang.org/x/image/vector"
)

// segments is the number of line segments per full circle.
const segments = 256

// Renderer draws slider render models into an RGBA image.
type Renderer struct {
	size  image.Point
	image *image.RGBA
	ras   *vector.Rasterizer
}

// New returns a new renderer of the given size, drawing into
// the given image, or a new one if it is nil.
func New(size image.Point, img *image.RGBA) *Renderer {
	if img == nil {
		img = image.NewRGBA(image.Rectangle{Max: size})
	}
	return &Renderer{size: size, image: img, ras: &vector.Rasterizer{}}
}

func (rs *Renderer) Image() *image.RGBA { return rs.image }
func (rs *Renderer) Size() image.Point  { return rs.size }

// SetSize sets the size of the renderer, and the image to draw into,
// which is made anew if it is nil.
func (rs *Renderer) SetSize(size image.Point, img *image.RGBA) {
	if rs.size == size && img == nil {
		return
	}
	rs.size = size
	if img != nil {
		rs.image = img
		return
	}
	rs.image = image.NewRGBA(image.Rectangle{Max: size})
}

// Layout returns the box that the boundary of the model takes up
// in the image, inside of its padding and margin, keeping the
// aspect ratio of the boundary. Pointer positions in image
// coordinates map onto the slider through this box.
func (rs *Renderer) Layout(rm *slider.RenderModel) math32.Box2 {
	m := rm.Margin
	pad := rm.Padding
	avail := math32.Vec2(
		float32(rs.size.X)-m.Left-m.Right-2*pad,
		float32(rs.size.Y)-m.Top-m.Bottom-2*pad,
	)
	b := rm.Boundary
	scale := min(avail.X/b.Width(), avail.Y/b.Height())
	if !math32.IsFinite(scale) || scale <= 0 {
		scale = max(min(avail.X, avail.Y)/2, 1)
	}
	size := math32.Vec2(b.Width()*scale, b.Height()*scale)
	mn := math32.Vec2(pad+m.Left, pad+m.Top).Add(avail.Sub(size).MulScalar(0.5))
	return math32.Box2{Min: mn, Max: mn.Add(size)}
}

// Render draws the model with the given style.
func (rs *Renderer) Render(rm *slider.RenderModel, st *slider.Style) {
	if st.Background != nil {
		draw.Draw(rs.image, rs.image.Bounds(), image.NewUniform(st.Background), image.Point{}, draw.Src)
	}
	box := rs.Layout(rm)
	b := rm.Boundary
	scale := box.Size().X / b.Width()
	if !math32.IsFinite(scale) || scale <= 0 {
		scale = box.Size().Y / b.Height()
	}
	tr := transform{
		center: box.Min.Add(math32.Vec2(b.Left*scale, b.Up*scale)),
		scale:  scale,
		arc:    arc.Arc{RTL: rm.RTL},
	}
	stroke := rm.StrokeWidth
	if stroke <= 0 {
		stroke = 3
	}
	rs.stroke(&tr, rm.Track, stroke, st.Track)
	if rm.HasBar {
		rs.stroke(&tr, rm.Bar, stroke, st.BarColor(rm))
	}
	for _, hm := range rm.Handles {
		rs.reset()
		rs.circle(tr.toImage(hm.Point), hm.Radius)
		rs.fill(st.HandleColor(rm, hm.ID))
	}
}

// transform maps arc coordinates onto image coordinates.
type transform struct {
	center math32.Vector2
	scale  float32
	arc    arc.Arc
}

func (tr *transform) toImage(p math32.Vector2) math32.Vector2 {
	return tr.center.Add(p.MulScalar(tr.scale))
}

// stroke draws the arc segment of the path with round caps.
func (rs *Renderer) stroke(tr *transform, p arc.Path, width float32, c color.Color) {
	if c == nil {
		return
	}
	hw := width / 2
	end := p.End + arc.Nudge
	n := max(int(segments*(end-p.Start)/math32.TwoPi), 1)
	pts := tr.arc.Points(p.Start, end, n)
	rs.reset()
	outer := 1 + hw/tr.scale
	inner := max(1-hw/tr.scale, 0)
	for i, pt := range pts {
		q := tr.toImage(pt.MulScalar(outer))
		if i == 0 {
			rs.ras.MoveTo(q.X, q.Y)
		} else {
			rs.ras.LineTo(q.X, q.Y)
		}
	}
	for i := len(pts) - 1; i >= 0; i-- {
		q := tr.toImage(pts[i].MulScalar(inner))
		rs.ras.LineTo(q.X, q.Y)
	}
	rs.ras.ClosePath()
	rs.fill(c)
	for _, pt := range []math32.Vector2{pts[0], pts[len(pts)-1]} {
		rs.reset()
		rs.circle(tr.toImage(pt), hw)
		rs.fill(c)
	}
}

// circle adds a circle to the current path.
func (rs *Renderer) circle(center math32.Vector2, radius float32) {
	n := 64
	for i := 0; i < n; i++ {
		a := math32.TwoPi * float32(i) / float32(n)
		x, y := center.X+radius*math32.Cos(a), center.Y+radius*math32.Sin(a)
		if i == 0 {
			rs.ras.MoveTo(x, y)
		} else {
			rs.ras.LineTo(x, y)
		}
	}
	rs.ras.ClosePath()
}

func (rs *Renderer) reset() {
	sz := rs.image.Bounds().Size()
	rs.ras.Reset(sz.X, sz.Y)
}

// fill draws the current path in the given color.
func (rs *Renderer) fill(c color.Color) {
	if c == nil {
		return
	}
	rs.ras.DrawOp = draw.Over
	rs.ras.Draw(rs.image, rs.image.Bounds(), image.NewUniform(c), image.Point{})
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"strings"
)

// WriteSVG writes the model as a standalone SVG document
// drawn with the given style.
func (rm *RenderModel) WriteSVG(w io.Writer, st *Style) error {
	var sb strings.Builder
	b := rm.Boundary
	margin := fmt.Sprintf("%gpx", rm.Padding)
	if rm.Margin != (Sides{}) {
		m := rm.Margin
		margin = fmt.Sprintf("%gpx %gpx %gpx %gpx", m.Top, m.Right, m.Bottom, m.Left)
	}
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s" style="margin: %s; overflow: visible;"`, b.ViewBox(), margin)
	if rm.Disabled {
		sb.WriteString(` disabled=""`)
	}
	sb.WriteString(` focusable="false">` + "\n")

	stroke := rm.StrokeWidth
	if stroke <= 0 {
		stroke = 3
	}
	fmt.Fprintf(&sb, `  <g class="slider" fill="none" stroke-width="%g" stroke-linecap="round">`+"\n", stroke)
	fmt.Fprintf(&sb, `    <path class="path" d="%s" vector-effect="non-scaling-stroke" stroke="%s"/>`+"\n", rm.Track, cssColor(st.Track))
	if rm.HasBar {
		fmt.Fprintf(&sb, `    <path class="bar" d="%s" vector-effect="non-scaling-stroke" stroke="%s"/>`+"\n", rm.Bar, cssColor(st.BarColor(rm)))
	}
	if !rm.ReadOnly {
		fmt.Fprintf(&sb, `    <path class="shadowpath" d="%s" vector-effect="non-scaling-stroke" stroke="rgba(0,0,0,0)" stroke-width="%g" stroke-linecap="butt"/>`+"\n", rm.Track, rm.TrackHitWidth)
	}
	sb.WriteString("  </g>\n")

	sb.WriteString(`  <g class="handles" stroke-linecap="round">` + "\n")
	for _, hm := range rm.Handles {
		d := fmt.Sprintf("M %g %g L %g %g", hm.Point.X, hm.Point.Y, hm.Point.X+0.001, hm.Point.Y+0.001)
		fmt.Fprintf(&sb, `    <g class="%s handle" stroke="%s">`+"\n", hm.ID, cssColor(st.HandleColor(rm, hm.ID)))
		fmt.Fprintf(&sb, `      <path id="%s" class="overflow" d="%s" vector-effect="non-scaling-stroke" stroke="rgba(0,0,0,0)" stroke-width="%g"/>`+"\n", hm.ID, d, 2*hm.HitRadius)
		r := hm.Role
		fmt.Fprintf(&sb, `      <path id="%s" class="handle" d="%s" vector-effect="non-scaling-stroke" stroke-width="%g" tabindex="0" role="slider" aria-valuemin="%g" aria-valuemax="%g" aria-valuenow="%g" aria-disabled="%t" aria-label="%s"/>`+"\n",
			hm.ID, d, 2*hm.Radius, r.Min, r.Max, r.Now, r.Disabled, html.EscapeString(r.Label))
		sb.WriteString("    </g>\n")
	}
	sb.WriteString("  </g>\n</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// cssColor returns the given color in CSS rgba notation.
func cssColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", n.R, n.G, n.B, float32(n.A)/255)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/arcslider/slider"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// applyCSS applies the round slider custom properties declared in the
// given stylesheet to the style, in order, and returns the path width
// it declares, or 0 if it declares none. Selectors are not matched:
// every rule applies.
func applyCSS(st *slider.Style, text string) (float32, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return 0, fmt.Errorf("arcslider: parsing stylesheet: %w", err)
	}
	colors := map[string]*color.Color{
		"--round-slider-path-color":         &st.Track,
		"--round-slider-bar-color":          &st.Bar,
		"--round-slider-disabled-bar-color": &st.DisabledBar,
		"--round-slider-handle-color":       &st.Handle,
		"--round-slider-low-handle-color":   &st.Low,
		"--round-slider-high-handle-color":  &st.High,
	}
	var width float32
	for _, r := range sheet.Rules {
		if r.Kind == css.AtRule {
			continue
		}
		for _, de := range r.Declarations {
			prop := strings.ToLower(de.Property)
			if prop == "--round-slider-path-width" {
				w, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(de.Value), "px"), 32)
				if err != nil {
					return 0, fmt.Errorf("arcslider: %s: %w", prop, err)
				}
				width = float32(w)
				continue
			}
			dst, ok := colors[prop]
			if !ok {
				slog.Debug("ignoring css property", "property", prop)
				continue
			}
			c, err := parseColor(de.Value)
			if err != nil {
				return 0, fmt.Errorf("arcslider: %s: %w", prop, err)
			}
			*dst = c
		}
	}
	return width, nil
}

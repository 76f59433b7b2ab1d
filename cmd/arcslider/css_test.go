// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"testing"

	"cogentcore.org/arcslider/slider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestApplyCSS(t *testing.T) {
	var st slider.Style
	st.Defaults()
	width, err := applyCSS(&st, `
round-slider {
	--round-slider-bar-color: tomato;
	--round-slider-low-handle-color: #00ff00;
	--round-slider-path-width: 12px;
	cursor: pointer;
}
`)
	require.NoError(t, err)
	assert.Equal(t, float32(12), width)
	assert.Equal(t, color.Color(colornames.Tomato), st.Bar)
	assert.Equal(t, color.Color(color.NRGBA{G: 255, A: 255}), st.Low)
	assert.Equal(t, color.Color(colornames.Lightgray), st.Track)

	_, err = applyCSS(&st, `:root { --round-slider-path-color: blurple; }`)
	assert.Error(t, err)
	_, err = applyCSS(&st, `:root { --round-slider-path-width: wide; }`)
	assert.Error(t, err)
}

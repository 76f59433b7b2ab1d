// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".PNG")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = ExtToFormat("jpg")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
	_, err = ExtToFormat("")
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	im := image.NewRGBA(image.Rect(0, 0, 4, 3))
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	im.Set(1, 1, color.RGBA{0, 191, 255, 255})
	fn := filepath.Join(t.TempDir(), "arc.bmp")
	require.NoError(t, Save(im, fn))

	file, err := os.Open(fn)
	require.NoError(t, err)
	defer file.Close()
	got, err := bmp.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, im.Bounds(), got.Bounds())
	r, g, b, _ := got.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0, 191, 255}, []uint32{r >> 8, g >> 8, b >> 8})

	assert.Error(t, Save(im, filepath.Join(t.TempDir(), "arc.svg")))
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32(t *testing.T) {
	mr := F32{}
	mr.Set(20, 120)
	assert.True(t, mr.IsValid())
	assert.True(t, mr.InRange(20))
	assert.True(t, mr.InRange(120))
	assert.False(t, mr.InRange(120.5))
	assert.True(t, mr.IsLow(19))
	assert.True(t, mr.IsHigh(121))
	assert.False(t, mr.IsHigh(21))
	assert.Equal(t, float32(100), mr.Range())
	assert.Equal(t, float32(0.25), mr.NormValue(45))
	assert.Equal(t, float32(1), mr.NormValue(500))
	assert.Equal(t, float32(45), mr.ProjValue(0.25))
	assert.Equal(t, float32(20), mr.ClipValue(-3))

	empty := F32{Min: 3, Max: 3}
	assert.Equal(t, float32(0), empty.Scale())
	assert.False(t, (&F32{Min: 4, Max: 3}).IsValid())
}

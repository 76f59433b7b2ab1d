// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dial struct {
	StartAngle float32 `toml:"start-angle"`
	Labels     []string
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "dial.toml")
	require.NoError(t, Save(&dial{StartAngle: 135, Labels: []string{"low", "high"}}, fn))
	var d dial
	require.NoError(t, Open(&d, fn))
	assert.Equal(t, dial{StartAngle: 135, Labels: []string{"low", "high"}}, d)
	assert.Error(t, Open(&d, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{"dial.toml": {Data: []byte("start-angle = 90.5\n")}}
	var d dial
	require.NoError(t, OpenFS(&d, fsys, "dial.toml"))
	assert.Equal(t, float32(90.5), d.StartAngle)
	assert.Error(t, ReadBytes(&d, []byte("start-angle = ")))
}

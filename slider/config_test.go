// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"testing"

	"cogentcore.org/arcslider/base/iox/tomlx"
	"cogentcore.org/arcslider/base/iox/yamlx"
	"cogentcore.org/arcslider/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	c := defaults()
	assert.NoError(t, c.Validate())
	assert.Equal(t, float32(0), c.Min)
	assert.Equal(t, float32(100), c.Max)
	assert.Equal(t, float32(1), c.Step)
	assert.Equal(t, float32(135), c.StartAngle)
	assert.Equal(t, float32(270), c.ArcLength)
	assert.Equal(t, float32(6), c.HandleSize)
	assert.Equal(t, float32(1.5), c.HandleZoom)
	assert.Equal(t, float32(10), c.pageStep())

	c.PageStep = 0
	assert.Equal(t, c.Step, c.pageStep(), "page step is at least step")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		set  func(c *Config)
		want string
	}{
		{"empty range", func(c *Config) { c.Min = 100 }, "min 100 must be less than max 100"},
		{"inverted range", func(c *Config) { c.Min, c.Max = 10, 0 }, "min 10 must be less than max 0"},
		{"zero step", func(c *Config) { c.Step = 0 }, "step must be positive"},
		{"negative step", func(c *Config) { c.Step = -1 }, "step must be positive"},
		{"nan max", func(c *Config) { c.Max = math32.NaN() }, "max must be finite"},
		{"infinite angle", func(c *Config) { c.StartAngle = math32.Infinity }, "start angle must be finite"},
		{"zero length", func(c *Config) { c.ArcLength = 0 }, "arc length must be positive"},
		{"zero handle", func(c *Config) { c.HandleSize = 0 }, "handle size must be positive"},
		{"zero zoom", func(c *Config) { c.HandleZoom = 0 }, "handle zoom must be positive"},
		{"negative page", func(c *Config) { c.PageStep = -5 }, "page step must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.set(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfigFiles(t *testing.T) {
	var c Config
	c.Defaults()
	require.NoError(t, tomlx.ReadBytes(&c, []byte("min = 10\nmax = 20\nstart-angle = 90\nrtl = true\n")))
	assert.Equal(t, float32(10), c.Min)
	assert.Equal(t, float32(20), c.Max)
	assert.Equal(t, float32(90), c.StartAngle)
	assert.True(t, c.RTL)
	assert.Equal(t, float32(270), c.ArcLength, "unset fields keep their defaults")

	c.Defaults()
	require.NoError(t, yamlx.ReadBytes(&c, []byte("step: 5\narcLength: 180\nreadOnly: true\n")))
	assert.Equal(t, float32(5), c.Step)
	assert.Equal(t, float32(180), c.ArcLength)
	assert.True(t, c.ReadOnly)
	assert.NoError(t, c.Validate())
}

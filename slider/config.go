// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"fmt"

	"cogentcore.org/arcslider/arc"
	"cogentcore.org/arcslider/base/errors"
	"cogentcore.org/arcslider/math32"
	"cogentcore.org/arcslider/math32/minmax"
)

// Config is the configuration of a [Slider]. It can be loaded from
// TOML or YAML files; see [Config.Defaults] for the default values.
type Config struct {

	// Min is the minimum value. It defaults to 0.
	Min float32 `toml:"min" yaml:"min"`

	// Max is the maximum value. It must be greater than Min.
	// It defaults to 100.
	Max float32 `toml:"max" yaml:"max"`

	// Step is the quantization step of dragged values, counted from Min,
	// and the amount that the arrow keys move a handle by.
	// It defaults to 1.
	Step float32 `toml:"step" yaml:"step"`

	// PageStep is the amount that the PageUp and PageDown keys
	// move a handle by. It defaults to 10, and will be at least as big as Step.
	PageStep float32 `toml:"page-step" yaml:"pageStep"`

	// StartAngle is the angle of the start of the arc, in degrees,
	// measured clockwise on screen from 3 o'clock. It defaults to 135.
	StartAngle float32 `toml:"start-angle" yaml:"startAngle"`

	// ArcLength is the angular length of the arc, in degrees.
	// Lengths of a full circle or more leave a small gap.
	// It defaults to 270.
	ArcLength float32 `toml:"arc-length" yaml:"arcLength"`

	// RTL mirrors the slider horizontally for right-to-left layouts.
	RTL bool `toml:"rtl" yaml:"rtl"`

	// HandleSize is the radius of a handle, in pixels. It defaults to 6.
	HandleSize float32 `toml:"handle-size" yaml:"handleSize"`

	// HandleZoom is the scale factor applied to a handle while it
	// is being dragged. It defaults to 1.5.
	HandleZoom float32 `toml:"handle-zoom" yaml:"handleZoom"`

	// Disabled shows the handles but ignores all interaction.
	Disabled bool `toml:"disabled" yaml:"disabled"`

	// ReadOnly shows the value bar without any handles,
	// and ignores all interaction.
	ReadOnly bool `toml:"read-only" yaml:"readOnly"`
}

// Defaults sets the default values of the configuration.
func (c *Config) Defaults() {
	*c = Config{
		Min:        0,
		Max:        100,
		Step:       1,
		PageStep:   10,
		StartAngle: 135,
		ArcLength:  270,
		HandleSize: 6,
		HandleZoom: 1.5,
	}
}

// Validate returns an error describing the first problem
// with the configuration, or nil if it is usable.
func (c *Config) Validate() error {
	fields := []struct {
		name string
		v    float32
	}{
		{"min", c.Min}, {"max", c.Max}, {"step", c.Step}, {"page step", c.PageStep},
		{"start angle", c.StartAngle}, {"arc length", c.ArcLength},
		{"handle size", c.HandleSize}, {"handle zoom", c.HandleZoom},
	}
	for _, f := range fields {
		if !math32.IsFinite(f.v) {
			return invalid("%s must be finite, got %g", f.name, f.v)
		}
	}
	switch {
	case c.Min >= c.Max:
		return invalid("min %g must be less than max %g", c.Min, c.Max)
	case c.Step <= 0:
		return invalid("step must be positive, got %g", c.Step)
	case c.PageStep < 0:
		return invalid("page step must not be negative, got %g", c.PageStep)
	case c.ArcLength <= 0:
		return invalid("arc length must be positive, got %g", c.ArcLength)
	case c.HandleSize <= 0:
		return invalid("handle size must be positive, got %g", c.HandleSize)
	case c.HandleZoom <= 0:
		return invalid("handle zoom must be positive, got %g", c.HandleZoom)
	}
	return nil
}

// ErrInvalid is wrapped by all errors returned by [Config.Validate].
var ErrInvalid = errors.New("slider: invalid configuration")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Geometry returns the value to angle mapping of the configuration.
func (c *Config) Geometry() arc.Geometry {
	return arc.Geometry{
		Arc:   arc.Arc{StartAngle: c.StartAngle, Length: c.ArcLength, RTL: c.RTL},
		Range: minmax.F32{Min: c.Min, Max: c.Max},
		Step:  c.Step,
	}
}

// pageStep returns the effective page step.
func (c *Config) pageStep() float32 {
	return max(c.PageStep, c.Step)
}

// interactive returns whether the configuration accepts interaction.
func (c *Config) interactive() bool {
	return !c.Disabled && !c.ReadOnly
}

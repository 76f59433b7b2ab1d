// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keymap

import (
	"testing"

	"cogentcore.org/arcslider/events/key"
	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	assert.Equal(t, MoveLeft, Of(key.CodeLeftArrow))
	assert.Equal(t, End, Of(key.CodeEnd))
	assert.Equal(t, None, Of(key.CodeTab))

	custom := Map{key.CodeSpacebar: PageDown}
	assert.Equal(t, PageDown, custom.Of(key.CodeSpacebar))
	assert.Equal(t, None, custom.Of(key.CodeLeftArrow))
	assert.Equal(t, "PageDown", PageDown.String())
}

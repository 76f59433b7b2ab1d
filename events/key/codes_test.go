// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodesSetString(t *testing.T) {
	var kc Codes
	assert.NoError(t, kc.SetString("ArrowLeft"))
	assert.Equal(t, CodeLeftArrow, kc)
	assert.NoError(t, kc.SetString("Home"))
	assert.Equal(t, CodeHome, kc)
	assert.NoError(t, kc.SetString("PageDown"))
	assert.Equal(t, CodePageDown, kc)
	assert.Error(t, kc.SetString("Hyper"))
	assert.Equal(t, CodePageDown, kc)

	assert.Equal(t, "UpArrow", CodeUpArrow.String())
	assert.Equal(t, "Codes(99)", Codes(99).String())
}

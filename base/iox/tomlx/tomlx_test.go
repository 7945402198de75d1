// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Shape float32
	On    bool
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.toml")
	in := testStruct{Name: "Heat 2", Shape: 40, On: true}
	require.NoError(t, Save(&in, fn))

	var out testStruct
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)

	b, err := WriteBytes(&in)
	require.NoError(t, err)
	var rb testStruct
	require.NoError(t, ReadBytes(&rb, b))
	assert.Equal(t, in, rb)
}

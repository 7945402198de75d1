// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	g, err := ReadCSV(strings.NewReader("# counts\n0, 1, 2\n-3.5,4,NaN\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 3, g.Cols)
	assert.Equal(t, float32(-3.5), g.At(1, 0))
	assert.True(t, g.At(1, 2) != g.At(1, 2))

	_, err = ReadCSV(strings.NewReader("1,2\n3\n"))
	assert.ErrorIs(t, err, ErrRagged)
	_, err = ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = ReadCSV(strings.NewReader("1,x\n"))
	assert.ErrorContains(t, err, "row 1 column 2")
}

func TestOpenCSV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(fn, []byte("1,2\n3,4\n"), 0666))
	g, err := OpenCSV(fn)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, g.Values)
	_, err = OpenCSV(filepath.Join(t.TempDir(), "none.csv"))
	assert.Error(t, err)
}

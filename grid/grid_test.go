// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"image"
	"testing"

	"cogentcore.org/pcolor/math32"
	"cogentcore.org/pcolor/math32/minmax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]float32{{0, 1}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 2, g.Cols)
	assert.Equal(t, float32(2), g.At(1, 0))
	assert.Equal(t, []float32{2, 3}, g.Row(1))
	assert.Equal(t, image.Rect(0, 0, 2, 2), g.Bounds())
	assert.NoError(t, g.Validate())

	_, err = FromRows(nil)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = FromRows([][]float32{{}})
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = FromRows([][]float32{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrRagged)
}

func TestNew(t *testing.T) {
	g, err := New(3, 4)
	require.NoError(t, err)
	assert.Len(t, g.Values, 12)
	g.Set(2, 3, 7)
	assert.Equal(t, float32(7), g.Values[11])

	_, err = New(0, 4)
	assert.ErrorIs(t, err, ErrEmpty)

	var nilg *Grid
	assert.ErrorIs(t, nilg.Validate(), ErrEmpty)
	bad := &Grid{Rows: 2, Cols: 2, Values: []float32{1}}
	assert.ErrorIs(t, bad.Validate(), ErrRagged)
}

func TestRange(t *testing.T) {
	g, err := FromRows([][]float32{
		{1, 9, 2, 8},
		{-3, 4, math32.NaN(), 5},
		{6, 0, 7, -1},
	})
	require.NoError(t, err)
	assert.Equal(t, minmax.F32{Min: -3, Max: 9}, g.Range(g.Bounds(), 1, 1))
	// every other column: 1, 2, -3, NaN, 6, 7
	assert.Equal(t, minmax.F32{Min: -3, Max: 7}, g.Range(g.Bounds(), 2, 1))
	// sub-rectangle of rows 1..2, cols 2..3
	assert.Equal(t, minmax.F32{Min: -1, Max: 7}, g.Range(image.Rect(2, 1, 4, 3), 1, 1))
	// rectangles outside the grid are clipped
	assert.Equal(t, minmax.F32{Min: -1, Max: 8}, g.Range(image.Rect(3, -5, 40, 40), 0, 0))

	empty := g.Range(image.Rect(10, 10, 12, 12), 1, 1)
	assert.False(t, empty.IsValid())
}

func TestPatterns(t *testing.T) {
	for _, nm := range PatternNames() {
		g, err := NewPattern(nm, 20, 30)
		require.NoError(t, err, nm)
		assert.NoError(t, g.Validate())
	}
	g, err := NewPattern("lines", 60, 60)
	require.NoError(t, err)
	assert.Equal(t, float32(1000), g.At(50, 3))
	assert.Equal(t, float32(1000), g.At(3, 50))
	assert.Equal(t, float32(12), g.At(3, 4))

	_, err = NewPattern("nope", 2, 2)
	assert.Error(t, err)
	_, err = NewPattern("ramp", 0, 2)
	assert.ErrorIs(t, err, ErrEmpty)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"image"
	"testing"

	"cogentcore.org/pcolor/coords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewport(t *testing.T, rows, cols, w, h int) *Viewport {
	t.Helper()
	v, err := New(rows, cols)
	require.NoError(t, err)
	require.NoError(t, v.SetPixelSize(w, h))
	return v
}

func TestNew(t *testing.T) {
	_, err := New(0, 3)
	assert.ErrorIs(t, err, coords.ErrDegenerate)

	v, err := New(2, 3)
	require.NoError(t, err)
	assert.Equal(t, coords.B(0, 0, 3, 2), v.GlobalBounds())
	assert.Equal(t, coords.B(0, 0, 3, 2), v.LocalBounds())
	rows, cols := v.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)

	_, err = v.LocalToPixel()
	assert.ErrorIs(t, err, ErrNoSurface)
	_, err = v.ImageRowOf(0)
	assert.ErrorIs(t, err, ErrNoSurface)
	assert.Error(t, v.SetPixelSize(0, 10))
}

func TestRejectDegenerate(t *testing.T) {
	v := newViewport(t, 4, 4, 10, 10)
	assert.ErrorIs(t, v.SetLocalBounds(coords.B(1, 1, 1, 3)), coords.ErrDegenerate)
	assert.ErrorIs(t, v.SetGlobalBounds(coords.B(0, 2, 5, 2)), coords.ErrDegenerate)
	assert.Equal(t, coords.B(0, 0, 4, 4), v.LocalBounds())
	assert.Equal(t, coords.B(0, 0, 4, 4), v.GlobalBounds())
}

func TestCells(t *testing.T) {
	v := newViewport(t, 2, 2, 100, 100)
	cells, err := v.VisibleCells()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), cells)
	cells, err = v.GlobalCells()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), cells)

	tests := []struct {
		local coords.Bounds
		want  image.Rectangle
	}{
		{coords.B(0.1, 0.1, 0.9, 0.9), image.Rect(0, 0, 1, 1)},
		{coords.B(0.5, 0.2, 1.5, 1.8), image.Rect(0, 0, 2, 2)},
		{coords.B(-3, -3, 0.5, 10), image.Rect(0, 0, 1, 2)},
		{coords.B(5, 5, 8, 8), image.Rect(1, 1, 2, 2)},
		{coords.B(-5, -5, -1, -1), image.Rect(0, 0, 1, 1)},
		{coords.B(2, 0, 0, 2), image.Rect(0, 0, 2, 2)},
	}
	for _, tt := range tests {
		require.NoError(t, v.SetLocalBounds(tt.local))
		cells, err := v.VisibleCells()
		require.NoError(t, err)
		assert.Equal(t, tt.want, cells, "local %v", tt.local)
		assert.False(t, cells.Empty())
	}
}

func TestImageRowCol(t *testing.T) {
	v := newViewport(t, 2, 2, 100, 100)
	tests := []struct {
		pixel, want int
	}{
		{0, 0}, {49, 0}, {50, 1}, {99, 1}, {-10, 0}, {500, 1},
	}
	for _, tt := range tests {
		row, err := v.ImageRowOf(tt.pixel)
		require.NoError(t, err)
		assert.Equal(t, tt.want, row, "row of %d", tt.pixel)
		col, err := v.ImageColOf(tt.pixel)
		require.NoError(t, err)
		assert.Equal(t, tt.want, col, "col of %d", tt.pixel)
	}

	row, col, err := v.CellAt(image.Pt(75, 10))
	require.NoError(t, err)
	assert.Equal(t, 0, row)
	assert.Equal(t, 1, col)
}

func TestMirroredLocal(t *testing.T) {
	v := newViewport(t, 10, 10, 100, 100)
	require.NoError(t, v.SetLocalBounds(coords.B(0, 10, 10, 0)))
	row, err := v.ImageRowOf(0)
	require.NoError(t, err)
	assert.Equal(t, 9, row)
	row, err = v.ImageRowOf(99)
	require.NoError(t, err)
	assert.Equal(t, 0, row)
	cells, err := v.VisibleCells()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 10), cells)
}

func TestWorldUnits(t *testing.T) {
	v := newViewport(t, 4, 8, 80, 40)
	// world y up, one world unit per two cells
	require.NoError(t, v.SetGlobalBounds(coords.B(0, 2, 4, 0)))
	require.NoError(t, v.SetLocalBounds(coords.B(0, 2, 4, 0)))
	row, col, err := v.CellAt(image.Pt(79, 39))
	require.NoError(t, err)
	assert.Equal(t, 3, row)
	assert.Equal(t, 7, col)

	require.NoError(t, v.SetLocalBounds(coords.B(2.1, 0.9, 3.9, 0.1)))
	cells, err := v.VisibleCells()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(4, 2, 8, 4), cells)
}

func TestSnapLocalToCells(t *testing.T) {
	v := newViewport(t, 10, 10, 100, 100)
	require.NoError(t, v.SetLocalBounds(coords.B(2.3, 3.7, 6.2, 7.9)))
	cells, err := v.VisibleCells()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(2, 3, 7, 8), cells)

	require.NoError(t, v.SnapLocalToCells(cells))
	lb := v.LocalBounds()
	assert.InDelta(t, 2, lb.X1, 0.01)
	assert.InDelta(t, 3, lb.Y1, 0.01)
	assert.InDelta(t, 7, lb.X2, 0.01)
	assert.InDelta(t, 8, lb.Y2, 0.01)

	snapped, err := v.VisibleCells()
	require.NoError(t, err)
	assert.Equal(t, cells, snapped)

	assert.Error(t, v.SnapLocalToCells(image.Rectangle{}))
}

func TestSnapWideGrid(t *testing.T) {
	v := newViewport(t, 2, 70000, 500, 2)
	want := image.Rect(40000, 0, 41000, 2)
	for range 5 {
		require.NoError(t, v.SnapLocalToCells(want))
		cells, err := v.VisibleCells()
		require.NoError(t, err)
		assert.Equal(t, want, cells)
	}

	// moving the zoom maps the new bounds afresh
	v.Pan(-40000, 0)
	cells, err := v.VisibleCells()
	require.NoError(t, err)
	assert.Equal(t, 0, cells.Min.X)
	assert.Less(t, cells.Max.X, 1100)

	require.NoError(t, v.SnapLocalToCells(want))
	require.NoError(t, v.SetGlobalBounds(coords.B(0, 0, 7, 2)))
	cells, err = v.VisibleCells()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(69999, 0, 70000, 2), cells)
}

func TestPan(t *testing.T) {
	v := newViewport(t, 10, 10, 100, 100)
	require.NoError(t, v.SetLocalBounds(coords.B(0, 0, 5, 5)))
	v.Pan(2, 1)
	assert.Equal(t, coords.B(2, 1, 7, 6), v.LocalBounds())
	cells, err := v.VisibleCells()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(2, 1, 7, 6), cells)
}

func TestStepCursor(t *testing.T) {
	v := newViewport(t, 10, 10, 100, 100)
	pt, err := v.StepCursor(image.Pt(55, 55), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(55, 65), pt)

	pt, err = v.StepCursor(pt, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(44, 65), pt)

	// clamped at the last row: stays on the center of that row
	pt, err = v.StepCursor(image.Pt(55, 95), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 95, pt.Y)

	// many cells per pixel: the cursor moves one pixel
	wide := newViewport(t, 10, 1000, 10, 10)
	pt, err = wide.StepCursor(image.Pt(3, 5), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(4, 5), pt)
}

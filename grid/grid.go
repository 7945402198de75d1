// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid provides Grid, a dense row-major 2D array of float32
// intensity values, as rendered by pseudo-color images.
package grid

import (
	"errors"
	"fmt"
	"image"

	"cogentcore.org/pcolor/math32/minmax"
)

var (
	// ErrEmpty is returned for grids with no rows or no columns.
	ErrEmpty = errors.New("grid: no rows or columns")

	// ErrRagged is returned when rows of a grid differ in length.
	ErrRagged = errors.New("grid: rows differ in length")
)

// Grid is a Rows x Cols array of values stored in row-major order.
// A Grid handed to a renderer is referenced, not copied: its values
// must not change until the renderer has been told about the change.
type Grid struct {
	Rows   int
	Cols   int
	Values []float32
}

// New returns a zero filled grid of the given size.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid.New(%d, %d): %w", rows, cols, ErrEmpty)
	}
	return &Grid{Rows: rows, Cols: cols, Values: make([]float32, rows*cols)}, nil
}

// FromRows returns a grid holding a copy of the given rows,
// which must be non-empty and all of the same length.
func FromRows(rows [][]float32) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	nc := len(rows[0])
	g := &Grid{Rows: len(rows), Cols: nc, Values: make([]float32, 0, len(rows)*nc)}
	for r, row := range rows {
		if len(row) != nc {
			return nil, fmt.Errorf("grid.FromRows: row %d has %d values, want %d: %w", r, len(row), nc, ErrRagged)
		}
		g.Values = append(g.Values, row...)
	}
	return g, nil
}

// Validate returns an error if the grid is nil, empty, or its
// Values do not match Rows * Cols.
func (g *Grid) Validate() error {
	if g == nil || g.Rows <= 0 || g.Cols <= 0 {
		return ErrEmpty
	}
	if len(g.Values) != g.Rows*g.Cols {
		return fmt.Errorf("grid: %d values for %d x %d: %w", len(g.Values), g.Rows, g.Cols, ErrRagged)
	}
	return nil
}

// At returns the value at the given row and column.
func (g *Grid) At(row, col int) float32 {
	return g.Values[row*g.Cols+col]
}

// Set sets the value at the given row and column.
func (g *Grid) Set(row, col int, val float32) {
	g.Values[row*g.Cols+col] = val
}

// Row returns the values of the given row, sharing storage with the grid.
func (g *Grid) Row(row int) []float32 {
	return g.Values[row*g.Cols : (row+1)*g.Cols]
}

// Bounds returns the index rectangle of the grid: X is the column
// and Y the row, so the result is (0, 0)-(Cols, Rows).
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Cols, g.Rows)
}

// Range returns the min and max of the cells of r (X columns, Y rows,
// Max exclusive), visiting every xStep'th column and yStep'th row.
// NaN values are skipped. The result is not normalized, so it is
// still at +/- infinity if no value was seen.
func (g *Grid) Range(r image.Rectangle, xStep, yStep int) minmax.F32 {
	r = r.Intersect(g.Bounds())
	xStep = max(xStep, 1)
	yStep = max(yStep, 1)
	var mr minmax.F32
	mr.SetInfinity()
	for y := r.Min.Y; y < r.Max.Y; y += yStep {
		row := g.Row(y)
		for x := r.Min.X; x < r.Max.X; x += xStep {
			mr.FitValInRange(row[x])
		}
	}
	return mr
}

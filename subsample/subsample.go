// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package subsample turns a rectangle of grid cells into a paletted image
// of about a target size, by nearest-neighbor decimation.
package subsample

import (
	"errors"
	"fmt"
	"image"

	"cogentcore.org/pcolor/colorscale"
	"cogentcore.org/pcolor/grid"
	"cogentcore.org/pcolor/math32/minmax"
)

// ErrEmptyCells is returned when the requested cells do not overlap the grid.
var ErrEmptyCells = errors.New("subsample: no cells in range")

// Request describes one sub-sampling pass.
type Request struct {
	Grid *grid.Grid

	// Cells to sample, X columns and Y rows, Max exclusive.
	// It is clamped to the grid.
	Cells image.Rectangle

	// Width and Height are the size of the surface the result is for.
	// Every step'th cell is taken so that the result is no smaller.
	Width, Height int

	Scale *colorscale.ColorScale

	// Range is the intensity range; its MaxAbs normalizes the values.
	Range minmax.F32

	// Global is the cell rectangle of the global bounds.
	Global image.Rectangle
}

// Result is the output of [SubSample].
type Result struct {
	// Image holds one palette index per sample, using the palette of
	// the request's scale.
	Image *image.Paletted

	// Cells is the clamped cell rectangle that was sampled.
	Cells image.Rectangle

	XStep, YStep int

	// ThumbnailEligible is set when Cells is the whole global rectangle,
	// so that the image is a picture of everything.
	ThumbnailEligible bool
}

// Steps returns the decimation step for span cells drawn on target pixels.
func Steps(span, target int) int {
	if target <= 0 {
		return 1
	}
	return max(1, span/target)
}

// outSize returns the number of samples taken from span cells at step.
func outSize(span, step int) int {
	return (span + step - 1) / step
}

// SubSample maps the requested cells to palette indexes.
func SubSample(req Request) (Result, error) {
	if err := req.Grid.Validate(); err != nil {
		return Result{}, err
	}
	if req.Width <= 0 || req.Height <= 0 {
		return Result{}, fmt.Errorf("subsample: target size %dx%d not positive", req.Width, req.Height)
	}
	if req.Scale == nil {
		req.Scale = colorscale.New()
	}
	cells := req.Cells.Intersect(req.Grid.Bounds())
	if cells.Empty() {
		return Result{}, fmt.Errorf("subsample: cells %v in %dx%d grid: %w", req.Cells, req.Grid.Rows, req.Grid.Cols, ErrEmptyCells)
	}
	xStep := Steps(cells.Dx(), req.Width)
	yStep := Steps(cells.Dy(), req.Height)
	w, h := outSize(cells.Dx(), xStep), outSize(cells.Dy(), yStep)

	rng := req.Range
	rng.Normalize()
	factor := req.Scale.Factor(rng.MaxAbs())

	img := image.NewPaletted(image.Rect(0, 0, w, h), req.Scale.Palette())
	for oy := range h {
		row := req.Grid.Row(cells.Min.Y + oy*yStep)
		pix := img.Pix[oy*img.Stride : oy*img.Stride+w]
		for ox := range w {
			pix[ox] = req.Scale.Index(row[cells.Min.X+ox*xStep] * factor)
		}
	}
	return Result{
		Image:             img,
		Cells:             cells,
		XStep:             xStep,
		YStep:             yStep,
		ThumbnailEligible: cells == req.Global,
	}, nil
}

// ScanRange returns the normalized min and max of the cells, visiting
// only as many as would be drawn on a width x height surface.
func ScanRange(g *grid.Grid, cells image.Rectangle, width, height int) minmax.F32 {
	cells = cells.Intersect(g.Bounds())
	mr := g.Range(cells, Steps(cells.Dx(), width), Steps(cells.Dy(), height))
	mr.Normalize()
	return mr
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewport maps among the world, image index, and pixel
// coordinates of a zoomable 2D data image.
//
// World coordinates are whatever continuous units the application uses.
// The global world bounds cover the whole data array; the local world
// bounds are the zoomed region shown on the pixel surface. Image index
// coordinates put column c, row r in the unit square at (c, r).
package viewport

import (
	"errors"
	"fmt"
	"image"

	"cogentcore.org/pcolor/coords"
	"cogentcore.org/pcolor/math32"
)

// Inset keeps the image index rectangle just inside the array so that
// mapping an edge back to a cell never rounds onto the next cell.
const Inset = 0.001

// ErrNoSurface is returned by pixel mappings before a pixel size is set.
var ErrNoSurface = errors.New("viewport: no pixel surface size")

// Viewport holds the zoom and pan state of a view onto a Rows x Cols
// array drawn on a Width x Height pixel surface.
// It is not safe for concurrent use.
type Viewport struct {
	global, local coords.Bounds
	rows, cols    int
	width, height int

	// snapped is the cell rectangle that the local bounds were last
	// snapped to, valid while local still equals snapLocal. Far from the
	// origin float32 cannot hold the inset, so mapping the snapped bounds
	// back to cells would take in one more cell on each pass.
	snapped   image.Rectangle
	snapLocal coords.Bounds
}

// New returns a viewport for a rows x cols array, with the global and
// local bounds both set to (0, 0, cols, rows).
func New(rows, cols int) (*Viewport, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("viewport.New(%d, %d): %w", rows, cols, coords.ErrDegenerate)
	}
	b := coords.B(0, 0, float32(cols), float32(rows))
	return &Viewport{global: b, local: b, rows: rows, cols: cols}, nil
}

// SetDims sets the size of the viewed array, keeping the current bounds.
func (v *Viewport) SetDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("viewport.SetDims(%d, %d): %w", rows, cols, coords.ErrDegenerate)
	}
	v.rows, v.cols = rows, cols
	v.snapped = image.Rectangle{}
	return nil
}

// Dims returns the number of rows and columns of the viewed array.
func (v *Viewport) Dims() (rows, cols int) { return v.rows, v.cols }

// GlobalBounds returns the world bounds of the whole array.
func (v *Viewport) GlobalBounds() coords.Bounds { return v.global }

// SetGlobalBounds sets the world bounds of the whole array.
// Degenerate bounds are rejected and leave the viewport unchanged.
func (v *Viewport) SetGlobalBounds(b coords.Bounds) error {
	if b.IsDegenerate() {
		return fmt.Errorf("viewport.SetGlobalBounds %v: %w", b, coords.ErrDegenerate)
	}
	v.global = b
	v.snapped = image.Rectangle{}
	return nil
}

// LocalBounds returns the world bounds of the zoomed region.
func (v *Viewport) LocalBounds() coords.Bounds { return v.local }

// SetLocalBounds sets the world bounds of the zoomed region. It may lie
// partly or wholly outside the global bounds; the visible cells are
// clamped to the array. Degenerate bounds are rejected.
func (v *Viewport) SetLocalBounds(b coords.Bounds) error {
	if b.IsDegenerate() {
		return fmt.Errorf("viewport.SetLocalBounds %v: %w", b, coords.ErrDegenerate)
	}
	v.local = b
	return nil
}

// Pan shifts the zoomed region by (dx, dy) world units.
func (v *Viewport) Pan(dx, dy float32) {
	v.local = v.local.Translate(dx, dy)
}

// PixelSize returns the size of the pixel surface.
func (v *Viewport) PixelSize() image.Point { return image.Pt(v.width, v.height) }

// SetPixelSize sets the size of the pixel surface.
func (v *Viewport) SetPixelSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("viewport.SetPixelSize(%d, %d): %w", width, height, ErrNoSurface)
	}
	v.width, v.height = width, height
	return nil
}

// ImageBounds returns the image index rectangle that the global world
// bounds map onto: the array, inset by [Inset] on every side.
func (v *Viewport) ImageBounds() coords.Bounds {
	return coords.B(Inset, Inset, float32(v.cols)-Inset, float32(v.rows)-Inset)
}

// WorldToImage returns the transform from world to image index coordinates.
func (v *Viewport) WorldToImage() (coords.Transform, error) {
	return coords.NewTransform(v.global, v.ImageBounds())
}

// LocalToPixel returns the transform from the local world bounds to the
// pixel surface, with (X1, Y1) at the top left pixel corner.
func (v *Viewport) LocalToPixel() (coords.Transform, error) {
	if v.width <= 0 || v.height <= 0 {
		return coords.Transform{}, ErrNoSurface
	}
	return coords.NewTransform(v.local, coords.B(0, 0, float32(v.width), float32(v.height)))
}

// ImageRowOf returns the array row under the center of pixel row py,
// clamped to [0, rows-1].
func (v *Viewport) ImageRowOf(py int) (int, error) {
	lp, err := v.LocalToPixel()
	if err != nil {
		return 0, err
	}
	wi, err := v.WorldToImage()
	if err != nil {
		return 0, err
	}
	return v.clampRow(wi.MapYTo(lp.MapYFrom(float32(py) + 0.5))), nil
}

// ImageColOf returns the array column under the center of pixel column px,
// clamped to [0, cols-1].
func (v *Viewport) ImageColOf(px int) (int, error) {
	lp, err := v.LocalToPixel()
	if err != nil {
		return 0, err
	}
	wi, err := v.WorldToImage()
	if err != nil {
		return 0, err
	}
	return v.clampCol(wi.MapXTo(lp.MapXFrom(float32(px) + 0.5))), nil
}

// CellAt returns the clamped row and column under the given pixel.
func (v *Viewport) CellAt(pt image.Point) (row, col int, err error) {
	row, err = v.ImageRowOf(pt.Y)
	if err != nil {
		return
	}
	col, err = v.ImageColOf(pt.X)
	return
}

func (v *Viewport) clampRow(y float32) int {
	return math32.Clamp(math32.FloorInt(y), 0, v.rows-1)
}

func (v *Viewport) clampCol(x float32) int {
	return math32.Clamp(math32.FloorInt(x), 0, v.cols-1)
}

// cellsOf returns the cells covered by world bounds b, clamped to the
// array so that the result always holds at least one cell.
func (v *Viewport) cellsOf(b coords.Bounds) (image.Rectangle, error) {
	wi, err := v.WorldToImage()
	if err != nil {
		return image.Rectangle{}, err
	}
	box := wi.MapBoundsTo(b).Box()
	c0, c1 := v.clampCol(box.Min.X), v.clampCol(box.Max.X)
	r0, r1 := v.clampRow(box.Min.Y), v.clampRow(box.Max.Y)
	return image.Rect(c0, r0, c1+1, r1+1), nil
}

// VisibleCells returns the cells of the local bounds as a rectangle
// with X columns and Y rows, Max exclusive, clamped to the array.
func (v *Viewport) VisibleCells() (image.Rectangle, error) {
	if !v.snapped.Empty() && v.local == v.snapLocal {
		return v.snapped, nil
	}
	return v.cellsOf(v.local)
}

// GlobalCells returns the cells of the global bounds, clamped to the array.
func (v *Viewport) GlobalCells() (image.Rectangle, error) {
	return v.cellsOf(v.global)
}

// SnapLocalToCells sets the local bounds to the world rectangle covering
// exactly the given cells, in the orientation of the global bounds.
func (v *Viewport) SnapLocalToCells(cells image.Rectangle) error {
	if cells.Empty() {
		return fmt.Errorf("viewport.SnapLocalToCells %v: %w", cells, coords.ErrDegenerate)
	}
	wi, err := v.WorldToImage()
	if err != nil {
		return err
	}
	ib := coords.B(float32(cells.Min.X)+Inset, float32(cells.Min.Y)+Inset,
		float32(cells.Max.X)-Inset, float32(cells.Max.Y)-Inset)
	if err := v.SetLocalBounds(wi.MapBoundsFrom(ib)); err != nil {
		return err
	}
	v.snapped = cells.Intersect(image.Rect(0, 0, v.cols, v.rows))
	v.snapLocal = v.local
	return nil
}

// StepCursor moves the pixel pt to the center of the cell dRow rows and
// dCol columns away, staying on the array, and returns the new pixel.
// When zoomed out so far that the next cell lands on the same pixel,
// it moves one pixel in the step direction instead.
func (v *Viewport) StepCursor(pt image.Point, dRow, dCol int) (image.Point, error) {
	row, col, err := v.CellAt(pt)
	if err != nil {
		return pt, err
	}
	lp, _ := v.LocalToPixel()
	wi, _ := v.WorldToImage()
	nrow := math32.Clamp(row+dRow, 0, v.rows-1)
	ncol := math32.Clamp(col+dCol, 0, v.cols-1)
	center := func(r, c int) math32.Vector2 {
		return lp.MapTo(wi.MapFrom(math32.Vec2(float32(c)+0.5, float32(r)+0.5)))
	}
	to := center(nrow, ncol)
	np := to.ToPointFloor()
	if np == pt && (nrow != row || ncol != col) {
		d := to.Sub(center(row, col))
		np = pt.Add(image.Pt(sign(d.X), sign(d.Y)))
	}
	return np, nil
}

func sign(x float32) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

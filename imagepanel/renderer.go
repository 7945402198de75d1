// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagepanel renders a 2D grid of intensities as a pseudo-color
// raster of a zoomable region, with a cached thumbnail of the whole grid
// and cursor value lookup.
//
// A [Renderer] is lazy: changes to the data, zoom, or color scale only
// mark it dirty, and the raster is rebuilt once on the next
// [Renderer.Render]. It is not safe for concurrent use.
package imagepanel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/pcolor/colorscale"
	"cogentcore.org/pcolor/coords"
	"cogentcore.org/pcolor/grid"
	"cogentcore.org/pcolor/math32"
	"cogentcore.org/pcolor/math32/minmax"
	"cogentcore.org/pcolor/subsample"
	"cogentcore.org/pcolor/viewport"
)

var (
	// ErrNoData is returned by operations that need data before SetData.
	ErrNoData = errors.New("imagepanel: no data")

	// ErrSize is returned for a render or surface size that is not positive.
	ErrSize = errors.New("imagepanel: size not positive")
)

// Options are the fixed settings of a [Renderer].
type Options struct {

	// ScanResolution bounds the number of cells visited when computing
	// the intensity range automatically: every step'th cell is read so
	// that about this many columns and rows are.
	ScanResolution image.Point

	// Filter scales the native resolution image to the raster size.
	Filter Filter

	// DefaultThumbnail is the thumbnail size used when a zero size
	// is requested.
	DefaultThumbnail image.Point
}

// DefaultOptions returns the default options: a 1920x1080 scan
// resolution, nearest neighbor scaling, and 100x100 thumbnails.
func DefaultOptions() Options {
	return Options{
		ScanResolution:   image.Pt(1920, 1080),
		Filter:           NearestNeighbor,
		DefaultThumbnail: image.Pt(100, 100),
	}
}

// Renderer produces pseudo-color rasters of a [grid.Grid].
type Renderer struct {
	opts  Options
	scale *colorscale.ColorScale
	view  *viewport.Viewport
	data  *grid.Grid

	rng       minmax.F32
	autoRange bool

	// globalSet is whether the global bounds came from SetGlobalBounds,
	// rather than from the grid size.
	globalSet bool

	dirty  bool
	size   image.Point
	native *image.Paletted
	raster *image.RGBA

	// thumb is the native image of the last pass over the global bounds.
	thumb *image.Paletted
}

// New returns a renderer with the given options. Zero valued fields
// of opts take their values from [DefaultOptions].
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.ScanResolution.X <= 0 || opts.ScanResolution.Y <= 0 {
		opts.ScanResolution = def.ScanResolution
	}
	if opts.DefaultThumbnail.X <= 0 || opts.DefaultThumbnail.Y <= 0 {
		opts.DefaultThumbnail = def.DefaultThumbnail
	}
	view, _ := viewport.New(1, 1)
	return &Renderer{
		opts:      opts,
		scale:     colorscale.New(),
		view:      view,
		rng:       minmax.F32{Min: 0, Max: 3},
		autoRange: true,
		dirty:     true,
	}
}

// Options returns the options of the renderer.
func (r *Renderer) Options() Options { return r.opts }

// invalidate marks the raster for rebuilding, and drops the thumbnail
// when its content is no longer current.
func (r *Renderer) invalidate(thumbnail bool) {
	r.dirty = true
	if thumbnail {
		r.thumb = nil
	}
}

// SetData sets the grid to render. The grid is referenced, not copied.
// If autoRange is set, the intensity range is computed from the cells
// that are currently visible; otherwise the range set by
// [Renderer.SetDataRange] is kept. An invalid grid is rejected with no
// change to the renderer.
func (r *Renderer) SetData(g *grid.Grid, autoRange bool) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("imagepanel.SetData: %w", err)
	}
	resized := r.data == nil || r.data.Rows != g.Rows || r.data.Cols != g.Cols
	r.view.SetDims(g.Rows, g.Cols)
	if resized && !r.globalSet {
		b := coords.B(0, 0, float32(g.Cols), float32(g.Rows))
		r.view.SetGlobalBounds(b)
		r.view.SetLocalBounds(b)
	}
	r.data = g
	r.autoRange = autoRange
	if autoRange {
		r.scanRange()
	}
	r.invalidate(true)
	return nil
}

// scanRange sets the intensity range from the visible cells.
func (r *Renderer) scanRange() {
	cells, err := r.view.VisibleCells()
	if err != nil {
		return
	}
	res := r.opts.ScanResolution
	r.rng = subsample.ScanRange(r.data, cells, res.X, res.Y)
}

// Data returns the grid, or nil before SetData.
func (r *Renderer) Data() *grid.Grid { return r.data }

// NumRows returns the number of rows of the data, or 0 if there is none.
func (r *Renderer) NumRows() int {
	if r.data == nil {
		return 0
	}
	return r.data.Rows
}

// NumCols returns the number of columns of the data, or 0 if there is none.
func (r *Renderer) NumCols() int {
	if r.data == nil {
		return 0
	}
	return r.data.Cols
}

// PreferredSize returns the size at which each cell is one pixel.
func (r *Renderer) PreferredSize() image.Point {
	return image.Pt(r.NumCols(), r.NumRows())
}

// SetDataRange pins the intensity range, turning off the automatic
// range. Reversed values are swapped, and equal values are widened
// to [min, min+1].
func (r *Renderer) SetDataRange(mn, mx float32) {
	r.rng.Set(mn, mx)
	r.rng.Normalize()
	r.autoRange = false
	r.invalidate(true)
}

// DataRange returns the intensity range that colors are scaled to.
func (r *Renderer) DataRange() minmax.F32 { return r.rng }

// AutoRange returns whether the intensity range is computed from the data.
func (r *Renderer) AutoRange() bool { return r.autoRange }

// EnableAutoRange turns the automatic intensity range on or off.
// Turning it on recomputes the range from the visible cells.
func (r *Renderer) EnableAutoRange(on bool) {
	r.autoRange = on
	if on && r.data != nil {
		r.scanRange()
		r.invalidate(true)
	}
}

// GlobalBounds returns the world bounds of the whole grid.
func (r *Renderer) GlobalBounds() coords.Bounds { return r.view.GlobalBounds() }

// SetGlobalBounds sets the world bounds of the whole grid and zooms
// out to them.
func (r *Renderer) SetGlobalBounds(b coords.Bounds) error {
	if err := r.view.SetGlobalBounds(b); err != nil {
		return err
	}
	r.view.SetLocalBounds(b)
	r.globalSet = true
	r.invalidate(true)
	return nil
}

// LocalBounds returns the world bounds of the zoomed region.
func (r *Renderer) LocalBounds() coords.Bounds { return r.view.LocalBounds() }

// SetZoom sets the world bounds of the zoomed region. It may extend
// past the grid, which is clamped when drawn.
func (r *Renderer) SetZoom(b coords.Bounds) error {
	if err := r.view.SetLocalBounds(b); err != nil {
		return err
	}
	r.invalidate(false)
	return nil
}

// ZoomToPixels zooms to the region drawn in the raster pixel rectangle
// with corners a and b, as of the last render. It is how a drag box
// selects a new zoom.
func (r *Renderer) ZoomToPixels(a, b image.Point) error {
	lp, err := r.LocalToPixel()
	if err != nil {
		return err
	}
	px := image.Rectangle{a, b}.Canon()
	if px.Empty() {
		return fmt.Errorf("imagepanel.ZoomToPixels %v: %w", px, coords.ErrDegenerate)
	}
	pb := coords.B(float32(px.Min.X), float32(px.Min.Y), float32(px.Max.X), float32(px.Max.Y))
	return r.SetZoom(lp.MapBoundsFrom(pb))
}

// ResetZoom zooms out to the global bounds.
func (r *Renderer) ResetZoom() {
	r.view.SetLocalBounds(r.view.GlobalBounds())
	r.invalidate(false)
}

// Pan shifts the zoomed region by (dx, dy) world units.
func (r *Renderer) Pan(dx, dy float32) {
	r.view.Pan(dx, dy)
	r.invalidate(false)
}

// Configure selects the color map by name and the one or two-sided model.
func (r *Renderer) Configure(paletteName string, twoSided bool) {
	r.scale.Configure(paletteName, twoSided)
	r.invalidate(true)
}

// SetShape sets the pseudo-logarithmic shape of the color scale,
// from 0 (linear) to 100.
func (r *Renderer) SetShape(s float32) {
	r.scale.SetShape(s)
	r.invalidate(true)
}

// State returns the color scale settings.
func (r *Renderer) State() colorscale.Config { return r.scale.State() }

// SetState restores color scale settings saved with [Renderer.State].
func (r *Renderer) SetState(cfg colorscale.Config) {
	r.scale.SetState(cfg)
	r.invalidate(true)
}

// Palette returns the palette of the color scale, for legends.
func (r *Renderer) Palette() color.Palette { return r.scale.Palette() }

// Dirty returns whether the next [Renderer.Render] will rebuild the raster.
func (r *Renderer) Dirty() bool { return r.dirty }

// Render returns the raster of the zoomed region at width x height,
// rebuilding it if anything changed since the last call. The returned
// image belongs to the renderer and is only valid until the next Render.
func (r *Renderer) Render(width, height int) (*image.RGBA, error) {
	if r.data == nil {
		return nil, ErrNoData
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("imagepanel.Render(%d, %d): %w", width, height, ErrSize)
	}
	if r.dirty || r.raster == nil || r.size != image.Pt(width, height) {
		if err := r.rebuild(width, height); err != nil {
			return nil, err
		}
	}
	return r.raster, nil
}

// Rebuild marks the raster dirty and rebuilds it at the last size,
// if there was one.
func (r *Renderer) Rebuild() error {
	r.invalidate(false)
	if r.data == nil || r.size == (image.Point{}) {
		return nil
	}
	return r.rebuild(r.size.X, r.size.Y)
}

// rebuild sub-samples the visible cells for a width x height surface,
// snaps the zoom to those cells, and scales the result.
func (r *Renderer) rebuild(width, height int) error {
	if err := r.view.SetPixelSize(width, height); err != nil {
		return fmt.Errorf("imagepanel: %w: %w", ErrSize, err)
	}
	cells, err := r.view.VisibleCells()
	if err != nil {
		return err
	}
	global, err := r.view.GlobalCells()
	if err != nil {
		return err
	}
	res, err := subsample.SubSample(subsample.Request{
		Grid:   r.data,
		Cells:  cells,
		Width:  width,
		Height: height,
		Scale:  r.scale,
		Range:  r.rng,
		Global: global,
	})
	if err != nil {
		return err
	}
	if err := r.view.SnapLocalToCells(res.Cells); err != nil {
		return err
	}
	if res.ThumbnailEligible {
		r.thumb = res.Image
	}
	r.native = res.Image
	r.raster = r.opts.Filter.Scale(res.Image, width, height)
	r.size = image.Pt(width, height)
	r.dirty = false
	slog.Debug("imagepanel: rebuilt raster", "cells", res.Cells, "native", res.Image.Bounds().Size(), "size", r.size, "thumbnail", res.ThumbnailEligible)
	return nil
}

// Thumbnail returns a new width x height image of the whole grid,
// regardless of zoom. A zero width or height uses
// [Options.DefaultThumbnail]. The thumbnail is cached from the last
// render of the global bounds; if there is none, or force is set,
// the global bounds are rendered without changing the current zoom
// or raster.
func (r *Renderer) Thumbnail(width, height int, force bool) (*image.RGBA, error) {
	if r.data == nil {
		return nil, ErrNoData
	}
	if width <= 0 || height <= 0 {
		width, height = r.opts.DefaultThumbnail.X, r.opts.DefaultThumbnail.Y
	}
	if r.thumb == nil || force {
		if err := r.renderThumbnail(width, height); err != nil {
			return nil, err
		}
	}
	return r.opts.Filter.Scale(r.thumb, width, height), nil
}

// renderThumbnail renders the global bounds at the current raster size,
// or at width x height if there has been no render, then puts the
// viewport and raster back.
func (r *Renderer) renderThumbnail(width, height int) error {
	view := *r.view
	size, native, raster, dirty := r.size, r.native, r.raster, r.dirty
	defer func() {
		*r.view = view
		r.size, r.native, r.raster, r.dirty = size, native, raster, dirty
	}()
	if size != (image.Point{}) {
		width, height = size.X, size.Y
	}
	r.view.SetLocalBounds(r.view.GlobalBounds())
	if err := r.rebuild(width, height); err != nil {
		return err
	}
	if r.thumb == nil {
		r.thumb = r.native
	}
	return nil
}

// WorldToImage returns the transform from world to image index coordinates.
func (r *Renderer) WorldToImage() (coords.Transform, error) {
	if r.data == nil {
		return coords.Transform{}, ErrNoData
	}
	return r.view.WorldToImage()
}

// ImageBounds returns the image index rectangle of the global bounds.
func (r *Renderer) ImageBounds() coords.Bounds { return r.view.ImageBounds() }

// LocalToPixel returns the transform from world to raster pixel
// coordinates, as of the last render.
func (r *Renderer) LocalToPixel() (coords.Transform, error) {
	if r.data == nil {
		return coords.Transform{}, ErrNoData
	}
	return r.view.LocalToPixel()
}

// CellAt returns the row and column drawn at the given raster pixel,
// clamped to the grid.
func (r *Renderer) CellAt(pixel image.Point) (row, col int, err error) {
	if r.data == nil {
		return 0, 0, ErrNoData
	}
	return r.view.CellAt(pixel)
}

// ValueAt returns the data value drawn at the given raster pixel.
// It returns NaN when there is no data, nothing has been rendered,
// or the pixel is off the raster.
func (r *Renderer) ValueAt(pixel image.Point) float32 {
	if r.data == nil || !pixel.In(image.Rectangle{Max: r.size}) {
		return math32.NaN()
	}
	row, col, err := r.view.CellAt(pixel)
	if err != nil {
		return math32.NaN()
	}
	return r.data.At(row, col)
}

// StepCursor returns the raster pixel of the cursor at pixel moved
// by dRow rows and dCol columns of cells, for keyboard navigation.
func (r *Renderer) StepCursor(pixel image.Point, dRow, dCol int) (image.Point, error) {
	if r.data == nil {
		return pixel, ErrNoData
	}
	return r.view.StepCursor(pixel, dRow, dCol)
}

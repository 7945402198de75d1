// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/pcolor/colors/colormap"
	"cogentcore.org/pcolor/colorscale"
	"cogentcore.org/pcolor/imagepanel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// thumbnailFraction is the size of the thumbnail inset relative to the window.
const thumbnailFraction = 5

// shapeStep is the change in log shape for each [ or ] key.
const shapeStep = 10

var (
	boxColor    = color.RGBA{255, 255, 255, 255}
	cursorColor = color.RGBA{0, 255, 0, 255}
)

// viewer is an [ebiten.Game] showing a renderer.
type viewer struct {
	r      *imagepanel.Renderer
	config string

	size   image.Point
	img    *ebiten.Image
	thumb  *ebiten.Image
	cursor image.Point

	// dragging is set while the left button is down, from drag.
	dragging bool
	drag     image.Point
}

func newViewer(r *imagepanel.Renderer, config string) *viewer {
	return &viewer{r: r, config: config}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	v.updateMouse()
	v.updateKeys()
	return nil
}

func (v *viewer) updateMouse() {
	x, y := ebiten.CursorPosition()
	pt := image.Pt(x, y)
	if pt.In(image.Rectangle{Max: v.size}) {
		v.cursor = pt
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		v.dragging = true
		v.drag = pt
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && v.dragging:
		v.dragging = false
		if err := v.r.ZoomToPixels(v.drag, pt); err != nil {
			slog.Debug("pcolorview: zoom ignored", "err", err)
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		v.r.ResetZoom()
	}
}

func (v *viewer) updateKeys() {
	steps := []struct {
		key        ebiten.Key
		dRow, dCol int
	}{
		{ebiten.KeyArrowUp, -1, 0},
		{ebiten.KeyArrowDown, 1, 0},
		{ebiten.KeyArrowLeft, 0, -1},
		{ebiten.KeyArrowRight, 0, 1},
	}
	for _, s := range steps {
		if inpututil.IsKeyJustPressed(s.key) {
			if pt, err := v.r.StepCursor(v.cursor, s.dRow, s.dCol); err == nil {
				v.cursor = pt
			}
		}
	}

	cfg := v.r.State()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		v.r.SetShape(cfg.LogShape - shapeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		v.r.SetShape(cfg.LogShape + shapeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		v.r.Configure(cfg.Palette, !cfg.TwoSided)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		names := colormap.AvailableMapsList()
		i := slices.Index(names, cfg.Palette)
		v.r.Configure(names[(i+1)%len(names)], cfg.TwoSided)
	case inpututil.IsKeyJustPressed(ebiten.KeyS) && v.config != "":
		if err := colorscale.SaveConfig(cfg, v.config); err != nil {
			slog.Error("pcolorview: saving config", "err", err)
		} else {
			slog.Info("pcolorview: saved config", "file", v.config)
		}
	}
}

// refresh renders the raster and thumbnail into ebiten images when
// the renderer was changed or the window resized.
func (v *viewer) refresh() error {
	if v.size.X <= 0 || v.size.Y <= 0 {
		return nil
	}
	if !v.r.Dirty() && v.img != nil && v.img.Bounds().Size() == v.size {
		return nil
	}
	raster, err := v.r.Render(v.size.X, v.size.Y)
	if err != nil {
		return err
	}
	if v.img == nil || v.img.Bounds().Size() != v.size {
		if v.img != nil {
			v.img.Deallocate()
		}
		v.img = ebiten.NewImage(v.size.X, v.size.Y)
	}
	v.img.WritePixels(raster.Pix)

	ts := v.size.Div(thumbnailFraction)
	if ts.X < 1 || ts.Y < 1 {
		return nil
	}
	th, err := v.r.Thumbnail(ts.X, ts.Y, false)
	if err != nil {
		return err
	}
	if v.thumb == nil || v.thumb.Bounds().Size() != ts {
		if v.thumb != nil {
			v.thumb.Deallocate()
		}
		v.thumb = ebiten.NewImage(ts.X, ts.Y)
	}
	v.thumb.WritePixels(th.Pix)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if err := v.refresh(); err != nil {
		ebitenutil.DebugPrint(screen, err.Error())
		return
	}
	if v.img == nil {
		return
	}
	screen.DrawImage(v.img, nil)

	zoomed := v.r.LocalBounds().Box() != v.r.GlobalBounds().Box()
	if zoomed && v.thumb != nil {
		op := &ebiten.DrawImageOptions{}
		tx := float64(v.size.X - v.thumb.Bounds().Dx() - 8)
		op.GeoM.Translate(tx, 8)
		screen.DrawImage(v.thumb, op)
		tb := v.thumb.Bounds()
		vector.StrokeRect(screen, float32(tx), 8, float32(tb.Dx()), float32(tb.Dy()), 1, boxColor, false)
	}

	if v.dragging {
		x, y := ebiten.CursorPosition()
		box := image.Rectangle{v.drag, image.Pt(x, y)}.Canon()
		vector.StrokeRect(screen, float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()), 1, boxColor, false)
	}

	cx, cy := float32(v.cursor.X)+0.5, float32(v.cursor.Y)+0.5
	vector.StrokeLine(screen, cx-6, cy, cx+6, cy, 1, cursorColor, false)
	vector.StrokeLine(screen, cx, cy-6, cx, cy+6, 1, cursorColor, false)

	ebitenutil.DebugPrint(screen, v.readout())
}

// readout returns the text describing the cell under the cursor and
// the color scale.
func (v *viewer) readout() string {
	cfg := v.r.State()
	rng := v.r.DataRange()
	scale := fmt.Sprintf("%s two-sided=%v shape=%g range=[%g, %g]", cfg.Palette, cfg.TwoSided, cfg.LogShape, rng.Min, rng.Max)
	row, col, err := v.r.CellAt(v.cursor)
	if err != nil {
		return scale
	}
	return fmt.Sprintf("row %d col %d value %g\n%s", row, col, v.r.ValueAt(v.cursor), scale)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.size = image.Pt(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

var _ ebiten.Game = (*viewer)(nil)

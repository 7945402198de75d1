// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorscale maps data intensities onto discrete palette indexes,
// through a linear or pseudo-logarithmic lookup table and a one-sided or
// two-sided (signed) color model.
package colorscale

import (
	"image/color"
	"log/slog"

	"cogentcore.org/pcolor/colors/colormap"
	"cogentcore.org/pcolor/math32"
)

// ZeroColorIndex is the palette index of the value zero on a two-sided scale.
const ZeroColorIndex = NumPositiveColors

// ColorScale converts signed data values into palette indexes.
// The zero value is not usable; use [New].
type ColorScale struct {
	cfg     Config
	cmap    *colormap.Map
	palette color.Palette
	table   LogTable
}

// New returns a scale using the default map, two-sided, with a linear shape.
func New() *ColorScale {
	cs := &ColorScale{table: make(LogTable, LogTableSize)}
	cs.SetState(DefaultConfig())
	return cs
}

// Configure selects the named palette and the one or two-sided model.
// An unknown name falls back to [colormap.DefaultMap] with a warning.
func (cs *ColorScale) Configure(paletteName string, twoSided bool) {
	cm, ok := colormap.Lookup(paletteName)
	if !ok {
		slog.Warn("colorscale: unknown color map, using default", "name", paletteName, "default", cm.Name)
	}
	cs.cmap = cm
	cs.cfg.Palette = cm.Name
	cs.cfg.TwoSided = twoSided
	if twoSided {
		cs.palette = cm.DualTable(NumPositiveColors)
	} else {
		cs.palette = cm.Table(NumPositiveColors)
	}
}

// SetShape regenerates the lookup table for shape s in [0, 100].
func (cs *ColorScale) SetShape(s float32) {
	if math32.IsNaN(s) {
		s = 0
	}
	cs.cfg.LogShape = math32.Clamp(s, 0, 100)
	cs.table.SetShape(cs.cfg.LogShape)
}

// Shape returns the current shape parameter.
func (cs *ColorScale) Shape() float32 { return cs.cfg.LogShape }

// TwoSided returns whether negative values get their own colors.
func (cs *ColorScale) TwoSided() bool { return cs.cfg.TwoSided }

// PaletteName returns the name of the active color map.
func (cs *ColorScale) PaletteName() string { return cs.cfg.Palette }

// Palette returns the discrete palette that indexes from [ColorScale.Map]
// refer to. It must not be modified.
func (cs *ColorScale) Palette() color.Palette { return cs.palette }

// ZeroIndex returns the index that the value zero maps to.
func (cs *ColorScale) ZeroIndex() uint8 {
	if cs.cfg.TwoSided {
		return ZeroColorIndex
	}
	return 0
}

// TopIndex returns the index of the most positive color.
func (cs *ColorScale) TopIndex() uint8 {
	return cs.ZeroIndex() + NumPositiveColors - 1
}

// Factor returns the multiplier that takes a data value to a table
// position, for data normalized by maxAbs. It is 0 when maxAbs is 0,
// so that every value lands on the zero index.
func (cs *ColorScale) Factor(maxAbs float32) float32 {
	maxAbs = math32.Abs(maxAbs)
	if maxAbs > 0 && !math32.IsInf(maxAbs, 0) {
		return (LogTableSize - 1) / maxAbs
	}
	return 0
}

// Index returns the palette index for a value already multiplied by
// [ColorScale.Factor]. Positions beyond the table are clamped.
func (cs *ColorScale) Index(scaled float32) uint8 {
	if math32.IsNaN(scaled) {
		return cs.ZeroIndex()
	}
	const top = LogTableSize - 1
	scaled = math32.Clamp(scaled, -top, top)
	zero := int(cs.ZeroIndex())
	var idx int
	if scaled >= 0 {
		idx = zero + int(cs.table[int(scaled)])
	} else {
		idx = zero - int(cs.table[int(-scaled)])
	}
	return uint8(max(idx, 0))
}

// Map returns the palette index for value, normalized by maxAbs.
func (cs *ColorScale) Map(value, maxAbs float32) uint8 {
	return cs.Index(value * cs.Factor(maxAbs))
}

// Color returns the color for value, normalized by maxAbs.
func (cs *ColorScale) Color(value, maxAbs float32) color.Color {
	return cs.palette[cs.Map(value, maxAbs)]
}

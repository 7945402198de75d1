// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides named color maps that map a normalized
// value onto a color, and expand into the discrete palettes used
// by pseudo-color images.
package colormap

import (
	"image/color"
	"sort"

	"cogentcore.org/pcolor/math32"
)

// Map maps a value onto a color by interpolating between a list of colors
// defining a spectrum.
type Map struct {

	// Name is the name of the color map
	Name string

	// if set, this color is used for NaN values
	NoColor color.RGBA

	// Colors is the list of colors to interpolate between,
	// from the value 0 to the value 1.
	Colors []color.RGBA
}

// Map returns color for normalized value in range 0-1.
// NaN returns NoColor which can be used to indicate missing values.
func (cm *Map) Map(val float32) color.RGBA {
	nc := len(cm.Colors)
	if nc == 0 {
		return color.RGBA{}
	}
	if nc == 1 {
		return cm.Colors[0]
	}
	if math32.IsNaN(val) {
		return cm.NoColor
	}
	if val <= 0 {
		return cm.Colors[0]
	} else if val >= 1 {
		return cm.Colors[nc-1]
	}
	ival := val * float32(nc-1)
	lidx := math32.Floor(ival)
	uidx := math32.Ceil(ival)
	if lidx == uidx {
		return cm.Colors[int(lidx)]
	}
	return mix(cm.Colors[int(lidx)], cm.Colors[int(uidx)], ival-lidx)
}

// mix linearly blends a toward b by the proportion p in [0, 1].
func mix(a, b color.RGBA, p float32) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return uint8(math32.Round(math32.Lerp(float32(x), float32(y), p)))
	}
	return color.RGBA{ch(a.R, b.R), ch(a.G, b.G), ch(a.B, b.B), ch(a.A, b.A)}
}

// Negative returns the mirror map used for values below zero on a
// two-sided scale: the same spectrum with the red and blue channels
// exchanged, so that warm positive colors become cool negative ones.
func (cm *Map) Negative() *Map {
	nm := &Map{Name: cm.Name + " (negative)", NoColor: cm.NoColor}
	nm.Colors = make([]color.RGBA, len(cm.Colors))
	for i, c := range cm.Colors {
		nm.Colors[i] = color.RGBA{c.B, c.G, c.R, c.A}
	}
	return nm
}

// AvailableMaps is the list of all available color maps
var AvailableMaps = map[string]*Map{}

// AvailableMapsList returns a sorted list of color map names, e.g., for choosers
func AvailableMapsList() []string {
	sl := make([]string, len(AvailableMaps))
	ctr := 0
	for k := range AvailableMaps {
		sl[ctr] = k
		ctr++
	}
	sort.Strings(sl)
	return sl
}

// Lookup returns the named map and true, or the [DefaultMap] and false
// if there is no map with that name.
func Lookup(name string) (*Map, bool) {
	if cm, ok := AvailableMaps[name]; ok {
		return cm, true
	}
	return AvailableMaps[DefaultMap], false
}

// Register adds the given map to [AvailableMaps], replacing any
// existing map of the same name.
func Register(cm *Map) {
	AvailableMaps[cm.Name] = cm
}

func init() {
	for _, m := range StandardMaps {
		Register(m)
	}
}

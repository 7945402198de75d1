// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import "image/color"

// Names of the standard intensity color maps.
const (
	Gray         = "Gray"
	NegativeGray = "Negative Gray"
	GreenYellow  = "Green-Yellow"
	Heat1        = "Heat 1"
	Heat2        = "Heat 2"
	Rainbow      = "Rainbow"
	Optimal      = "Optimal"
	Multi        = "Multi"
	Spectrum     = "Spectrum"
)

// DefaultMap is the map used when no map, or an unknown map, is named.
const DefaultMap = Heat2

// StandardMaps is a list of standard color maps for intensity images.
// Every map starts at its zero color, which is the background of an
// image with no signal.
var StandardMaps = []*Map{
	{
		Name: Gray,
		Colors: []color.RGBA{
			{0, 0, 0, 255},
			{255, 255, 255, 255},
		},
	},
	{
		Name: NegativeGray,
		Colors: []color.RGBA{
			{255, 255, 255, 255},
			{0, 0, 0, 255},
		},
	},
	{
		Name: GreenYellow,
		Colors: []color.RGBA{
			{0, 0, 0, 255},
			{0, 128, 0, 255},
			{60, 200, 0, 255},
			{200, 230, 0, 255},
			{255, 255, 0, 255},
		},
	},
	{
		Name: Heat1,
		Colors: []color.RGBA{
			{0, 0, 0, 255},
			{140, 0, 0, 255},
			{255, 60, 0, 255},
			{255, 160, 0, 255},
			{255, 255, 60, 255},
			{255, 255, 255, 255},
		},
	},
	{
		Name: Heat2,
		Colors: []color.RGBA{
			{0, 0, 0, 255},
			{60, 0, 110, 255},
			{180, 0, 60, 255},
			{240, 80, 0, 255},
			{255, 190, 0, 255},
			{255, 255, 200, 255},
		},
	},
	{
		Name: Rainbow,
		Colors: []color.RGBA{
			{0, 0, 0, 255},
			{0, 0, 255, 255},
			{0, 255, 255, 255},
			{0, 255, 0, 255},
			{255, 255, 0, 255},
			{255, 0, 0, 255},
		},
	},
	{
		Name: Optimal,
		Colors: []color.RGBA{
			{0, 0, 0, 255},
			{0, 0, 160, 255},
			{160, 0, 160, 255},
			{255, 0, 0, 255},
			{255, 200, 0, 255},
			{255, 255, 255, 255},
		},
	},
	{
		Name: Multi,
		Colors: []color.RGBA{
			{0, 0, 0, 255},
			{0, 0, 200, 255},
			{0, 200, 200, 255},
			{0, 200, 0, 255},
			{200, 200, 0, 255},
			{200, 0, 0, 255},
			{200, 0, 200, 255},
			{255, 255, 255, 255},
		},
	},
	{
		Name: Spectrum,
		Colors: []color.RGBA{
			{100, 0, 140, 255},
			{0, 0, 255, 255},
			{0, 200, 255, 255},
			{0, 220, 0, 255},
			{255, 255, 0, 255},
			{255, 140, 0, 255},
			{255, 0, 0, 255},
		},
	},
}

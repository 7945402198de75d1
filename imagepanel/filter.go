// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagepanel

import (
	"fmt"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// Filter is the resampling filter used to scale the native resolution
// image to the requested raster size.
type Filter int32

const (
	// NearestNeighbor keeps every cell a solid block of color.
	NearestNeighbor Filter = iota
	Box
	Linear
	Gaussian
	MitchellNetravali
	CatmullRom
	Lanczos
)

var filterNames = [...]string{"NearestNeighbor", "Box", "Linear", "Gaussian", "MitchellNetravali", "CatmullRom", "Lanczos"}

// FilterValues returns all of the filters.
func FilterValues() []Filter {
	fs := make([]Filter, len(filterNames))
	for i := range fs {
		fs[i] = Filter(i)
	}
	return fs
}

func (f Filter) String() string {
	if f < 0 || int(f) >= len(filterNames) {
		return fmt.Sprintf("Filter(%d)", int32(f))
	}
	return filterNames[f]
}

// SetString sets the filter from its name, ignoring case.
func (f *Filter) SetString(s string) error {
	for i, nm := range filterNames {
		if strings.EqualFold(nm, s) {
			*f = Filter(i)
			return nil
		}
	}
	return fmt.Errorf("imagepanel: %q is not a valid Filter", s)
}

func (f Filter) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Filter) UnmarshalText(text []byte) error { return f.SetString(string(text)) }

func (f Filter) resample() transform.ResampleFilter {
	switch f {
	case Box:
		return transform.Box
	case Linear:
		return transform.Linear
	case Gaussian:
		return transform.Gaussian
	case MitchellNetravali:
		return transform.MitchellNetravali
	case CatmullRom:
		return transform.CatmullRom
	case Lanczos:
		return transform.Lanczos
	}
	return transform.NearestNeighbor
}

// Scale returns a new RGBA image of src resized to width x height.
// Nearest neighbor sampling is done at pixel centers, so that every
// output pixel shows the cell that [Renderer.ValueAt] reports for it.
func (f Filter) Scale(src image.Image, width, height int) *image.RGBA {
	if src.Bounds().Size() == image.Pt(width, height) {
		return clone.AsRGBA(src)
	}
	if f == NearestNeighbor {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		return dst
	}
	return transform.Resize(src, width, height, f.resample())
}

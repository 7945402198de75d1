// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coords

import (
	"errors"
	"fmt"

	"cogentcore.org/pcolor/math32"
)

// ErrDegenerate is returned when a transform would be built on
// bounds with zero width or height, and so could not be inverted.
var ErrDegenerate = errors.New("coords: degenerate bounds")

// Transform is the axis-aligned affine map taking a source [Bounds]
// onto a destination [Bounds], corner to corner. Each axis is mapped
// independently, so mirrored bounds on one side flip that axis.
type Transform struct {
	src, dst Bounds

	// scale factors, destination units per source unit
	sx, sy float32
}

// NewTransform returns the transform from src to dst. Both must be
// non-degenerate, which guarantees the transform is invertible.
func NewTransform(src, dst Bounds) (Transform, error) {
	if src.IsDegenerate() {
		return Transform{}, fmt.Errorf("coords.NewTransform: source %v: %w", src, ErrDegenerate)
	}
	if dst.IsDegenerate() {
		return Transform{}, fmt.Errorf("coords.NewTransform: destination %v: %w", dst, ErrDegenerate)
	}
	return Transform{src: src, dst: dst, sx: dst.Width() / src.Width(), sy: dst.Height() / src.Height()}, nil
}

// Source returns the source bounds.
func (t Transform) Source() Bounds { return t.src }

// Destination returns the destination bounds.
func (t Transform) Destination() Bounds { return t.dst }

// IsValid returns true if the transform was built by [NewTransform].
func (t Transform) IsValid() bool { return t.sx != 0 && t.sy != 0 }

// Inverse returns the transform from the destination to the source.
func (t Transform) Inverse() Transform {
	return Transform{src: t.dst, dst: t.src, sx: 1 / t.sx, sy: 1 / t.sy}
}

// MapXTo maps a source x to the destination.
func (t Transform) MapXTo(x float32) float32 {
	return t.dst.X1 + (x-t.src.X1)*t.sx
}

// MapYTo maps a source y to the destination.
func (t Transform) MapYTo(y float32) float32 {
	return t.dst.Y1 + (y-t.src.Y1)*t.sy
}

// MapXFrom maps a destination x back to the source.
func (t Transform) MapXFrom(x float32) float32 {
	return t.src.X1 + (x-t.dst.X1)/t.sx
}

// MapYFrom maps a destination y back to the source.
func (t Transform) MapYFrom(y float32) float32 {
	return t.src.Y1 + (y-t.dst.Y1)/t.sy
}

// MapTo maps a source point to the destination.
func (t Transform) MapTo(p math32.Vector2) math32.Vector2 {
	return math32.Vec2(t.MapXTo(p.X), t.MapYTo(p.Y))
}

// MapFrom maps a destination point back to the source.
func (t Transform) MapFrom(p math32.Vector2) math32.Vector2 {
	return math32.Vec2(t.MapXFrom(p.X), t.MapYFrom(p.Y))
}

// MapBoundsTo maps source bounds to the destination, corner by corner.
func (t Transform) MapBoundsTo(b Bounds) Bounds {
	return Bounds{t.MapXTo(b.X1), t.MapYTo(b.Y1), t.MapXTo(b.X2), t.MapYTo(b.Y2)}
}

// MapBoundsFrom maps destination bounds back to the source.
func (t Transform) MapBoundsFrom(b Bounds) Bounds {
	return Bounds{t.MapXFrom(b.X1), t.MapYFrom(b.Y1), t.MapXFrom(b.X2), t.MapYFrom(b.Y2)}
}

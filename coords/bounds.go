// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coords provides rectangles in a coordinate system and the
// affine transforms between them, used to move among world, image
// index, and pixel coordinates.
package coords

import (
	"fmt"

	"cogentcore.org/pcolor/math32"
)

// Bounds is a rectangle given by two corners, (X1, Y1) and (X2, Y2).
// Unlike [math32.Box2] the corners are not ordered: X1 > X2 or Y1 > Y2
// describes a mirrored axis, so that, for example, world Y can increase
// upward while pixel Y increases downward.
type Bounds struct {
	X1, Y1 float32
	X2, Y2 float32
}

// B returns new [Bounds] with the given corners.
func B(x1, y1, x2, y2 float32) Bounds {
	return Bounds{x1, y1, x2, y2}
}

func (b Bounds) String() string {
	return fmt.Sprintf("[(%g, %g), (%g, %g)]", b.X1, b.Y1, b.X2, b.Y2)
}

// Width returns X2 - X1, which is negative for a mirrored X axis.
func (b Bounds) Width() float32 { return b.X2 - b.X1 }

// Height returns Y2 - Y1, which is negative for a mirrored Y axis.
func (b Bounds) Height() float32 { return b.Y2 - b.Y1 }

// IsDegenerate returns true if the bounds have zero width or height,
// or any non-finite corner. Degenerate bounds cannot define a transform.
func (b Bounds) IsDegenerate() bool {
	for _, v := range [4]float32{b.X1, b.Y1, b.X2, b.Y2} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return true
		}
	}
	return b.Width() == 0 || b.Height() == 0
}

// Box returns the bounds as a canonical (ordered) [math32.Box2].
func (b Bounds) Box() math32.Box2 {
	return math32.B2(b.X1, b.Y1, b.X2, b.Y2).Canon()
}

// Center returns the center point of the bounds.
func (b Bounds) Center() math32.Vector2 {
	return math32.Vec2(0.5*(b.X1+b.X2), 0.5*(b.Y1+b.Y2))
}

// Translate returns the bounds shifted by (dx, dy).
func (b Bounds) Translate(dx, dy float32) Bounds {
	return Bounds{b.X1 + dx, b.Y1 + dy, b.X2 + dx, b.Y2 + dy}
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import "cogentcore.org/pcolor/math32"

// F32 represents a min / max range for float32 values.
// It is filled by scanning values, then normalized for scaling.
type F32 struct {
	Min float32
	Max float32
}

// Set sets the min and max values
func (mr *F32) Set(mn, mx float32) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets the Min to +Inf, Max to -Inf -- suitable for
// iteratively calling FitValInRange
func (mr *F32) SetInfinity() {
	mr.Min = math32.Infinity
	mr.Max = -math32.Infinity
}

// MaxAbs returns the larger of |Min| and |Max|, which is the magnitude
// that symmetric (two-sided) color scales normalize by.
func (mr *F32) MaxAbs() float32 {
	return math32.Max(math32.Abs(mr.Min), math32.Abs(mr.Max))
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit. NaN values are ignored.
func (mr *F32) FitValInRange(val float32) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// Normalize puts the range in a usable state for scaling: Min and Max
// are swapped if reversed, and if they are equal (a flat range) Max
// is set to Min + 1 so that no division by zero can occur.
// A range that never saw a value (still at infinity) becomes [0, 1].
func (mr *F32) Normalize() {
	empty := math32.IsInf(mr.Min, 1) && math32.IsInf(mr.Max, -1)
	if empty || math32.IsNaN(mr.Min) || math32.IsNaN(mr.Max) {
		mr.Set(0, 1)
		return
	}
	if mr.Min > mr.Max {
		mr.Min, mr.Max = mr.Max, mr.Min
	}
	if mr.Min == mr.Max {
		mr.Max = mr.Min + 1
	}
}

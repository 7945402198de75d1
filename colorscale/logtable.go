// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorscale

import (
	"math"

	"cogentcore.org/pcolor/math32"
)

const (
	// LogTableSize is the number of entries in a [LogTable]. Data
	// magnitudes are quantized to this many levels before being
	// mapped to a color.
	LogTableSize = 60000

	// NumPositiveColors is the number of colors used for values >= 0.
	NumPositiveColors = 127
)

// LogTable maps a quantized magnitude in [0, LogTableSize) onto
// a color offset in [0, NumPositiveColors).
type LogTable []uint8

// NewLogTable returns a table for the given shape s, which is clamped to
// [0, 100]. Shape 0 is nearly linear; larger shapes give progressively
// more of the color range to small magnitudes, brightening faint features.
func NewLogTable(s float32) LogTable {
	lt := make(LogTable, LogTableSize)
	lt.SetShape(s)
	return lt
}

// SetShape recomputes the table for shape s in place.
// The curve is k * ln(1 + (t-1) * i / size), with t = exp(20 s / 100) + 0.1
// chosen so that equal steps of s look like equal brightness changes.
func (lt LogTable) SetShape(s float32) {
	if math32.IsNaN(s) {
		s = 0
	}
	s = math32.Clamp(s, 0, 100)
	t := math.Exp(20*float64(s)/100) + 0.1
	k := NumPositiveColors / math.Log(t)
	n := float64(len(lt))
	for i := range lt {
		v := k * math.Log(1+(t-1)*float64(i)/n)
		lt[i] = uint8(min(int(v), NumPositiveColors-1))
	}
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorscale

import (
	"testing"

	"cogentcore.org/pcolor/colors/colormap"
	"cogentcore.org/pcolor/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogTable(t *testing.T) {
	lin := NewLogTable(0)
	require.Len(t, lin, LogTableSize)
	assert.Equal(t, uint8(0), lin[0])
	assert.Equal(t, uint8(NumPositiveColors-1), lin[LogTableSize-1])
	// nearly linear: the midpoint is close to half of the colors
	assert.InDelta(t, NumPositiveColors/2, int(lin[LogTableSize/2]), 4)

	bright := NewLogTable(100)
	assert.Equal(t, uint8(NumPositiveColors-1), bright[LogTableSize-1])
	// strong shapes give small magnitudes far more of the colors
	assert.Greater(t, bright[LogTableSize/100], lin[LogTableSize/100]+50)

	for _, lt := range []LogTable{lin, bright, NewLogTable(40)} {
		for i := 1; i < len(lt); i++ {
			if lt[i] < lt[i-1] {
				t.Fatalf("table not monotonic at %d", i)
			}
		}
	}

	// out of range shapes are clamped
	assert.Equal(t, NewLogTable(100), NewLogTable(250))
	assert.Equal(t, NewLogTable(0), NewLogTable(-3))
	assert.Equal(t, NewLogTable(0), NewLogTable(math32.NaN()))
}

func TestMapOneSided(t *testing.T) {
	cs := New()
	cs.Configure(colormap.Gray, false)
	cs.SetShape(0)
	require.Len(t, cs.Palette(), NumPositiveColors)

	assert.Equal(t, cs.TopIndex(), cs.Map(3, 3))
	assert.Equal(t, uint8(NumPositiveColors-1), cs.Map(3, 3))
	assert.Equal(t, uint8(0), cs.Map(0, 3))
	assert.Equal(t, cs.ZeroIndex(), cs.Map(0, 3))

	// values beyond maxAbs clamp to the top color
	assert.Equal(t, cs.TopIndex(), cs.Map(1e9, 3))
	// negative values on a one-sided scale clamp to the base color
	assert.Equal(t, uint8(0), cs.Map(-3, 3))
	assert.Equal(t, uint8(0), cs.Map(math32.NaN(), 3))
}

func TestMapTwoSided(t *testing.T) {
	cs := New()
	cs.Configure(colormap.Heat1, true)
	require.Len(t, cs.Palette(), 2*NumPositiveColors)

	assert.Equal(t, uint8(ZeroColorIndex), cs.Map(0, 5))
	assert.Equal(t, uint8(ZeroColorIndex+NumPositiveColors-1), cs.Map(5, 5))
	assert.Equal(t, uint8(ZeroColorIndex-(NumPositiveColors-1)), cs.Map(-5, 5))
	assert.Equal(t, uint8(ZeroColorIndex-(NumPositiveColors-1)), cs.Map(-50, 5))

	// symmetric about the zero index
	for _, v := range []float32{0.1, 1, 2.5, 4.9} {
		up := int(cs.Map(v, 5)) - ZeroColorIndex
		dn := ZeroColorIndex - int(cs.Map(-v, 5))
		assert.Equal(t, up, dn, "value %g", v)
	}
}

func TestMapDegenerate(t *testing.T) {
	cs := New()
	assert.Equal(t, float32(0), cs.Factor(0))
	assert.Equal(t, float32(0), cs.Factor(math32.Inf(1)))
	for _, v := range []float32{-7, 0, 3, 1e20} {
		assert.Equal(t, cs.ZeroIndex(), cs.Map(v, 0))
	}
}

func TestMapIdempotent(t *testing.T) {
	cs := New()
	cs.SetShape(63)
	for _, v := range []float32{-2, -0.001, 0, 0.5, 1.75, 2} {
		first := cs.Map(v, 2)
		for range 5 {
			assert.Equal(t, first, cs.Map(v, 2))
		}
	}
}

func TestShapeBrightens(t *testing.T) {
	cs := New()
	cs.Configure(colormap.Rainbow, false)
	cs.SetShape(0)
	dim := cs.Map(0.05, 10)
	cs.SetShape(80)
	assert.Greater(t, cs.Map(0.05, 10), dim)
	assert.Equal(t, float32(80), cs.Shape())
	cs.SetShape(120)
	assert.Equal(t, float32(100), cs.Shape())
}

func TestConfigureFallback(t *testing.T) {
	cs := New()
	cs.Configure("Not A Map", false)
	assert.Equal(t, colormap.DefaultMap, cs.PaletteName())
	assert.False(t, cs.TwoSided())
	assert.Len(t, cs.Palette(), NumPositiveColors)
}

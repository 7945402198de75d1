// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image/color"
	"testing"

	"cogentcore.org/pcolor/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	cm := &Map{Name: "test", NoColor: color.RGBA{1, 2, 3, 255}, Colors: []color.RGBA{{0, 0, 0, 255}, {200, 100, 50, 255}}}
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, cm.Map(-1))
	assert.Equal(t, color.RGBA{200, 100, 50, 255}, cm.Map(2))
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, cm.Map(0.5))
	assert.Equal(t, cm.NoColor, cm.Map(math32.NaN()))

	assert.Equal(t, color.RGBA{}, (&Map{}).Map(0.5))
	one := &Map{Colors: []color.RGBA{{9, 9, 9, 255}}}
	assert.Equal(t, color.RGBA{9, 9, 9, 255}, one.Map(0.7))
}

func TestLookup(t *testing.T) {
	for _, nm := range []string{Gray, NegativeGray, GreenYellow, Heat1, Heat2, Rainbow, Optimal, Multi, Spectrum} {
		cm, ok := Lookup(nm)
		require.True(t, ok, nm)
		assert.Equal(t, nm, cm.Name)
	}
	cm, ok := Lookup("no such map")
	assert.False(t, ok)
	assert.Equal(t, DefaultMap, cm.Name)

	names := AvailableMapsList()
	assert.Len(t, names, len(StandardMaps))
	assert.IsIncreasing(t, names)
}

func TestTable(t *testing.T) {
	cm, _ := Lookup(Gray)
	pal := cm.Table(3)
	require.Len(t, pal, 3)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, pal[0])
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, pal[1])
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, pal[2])
	assert.Nil(t, cm.Table(0))
	assert.Len(t, cm.Table(1), 1)
}

func TestDualTable(t *testing.T) {
	cm := &Map{Name: "warm", Colors: []color.RGBA{{0, 0, 0, 255}, {255, 0, 0, 255}}}
	n := 4
	pal := cm.DualTable(n)
	require.Len(t, pal, 2*n)
	pos := cm.Table(n)
	neg := cm.Negative().Table(n)
	assert.Equal(t, pos[0], pal[n], "zero point")
	assert.Equal(t, pos[n-1], pal[2*n-1], "most positive")
	assert.Equal(t, neg[n-1], pal[1], "most negative")
	assert.Equal(t, pal[1], pal[0])
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, pal[1])
}

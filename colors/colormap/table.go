// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import "image/color"

// Table samples the map at n evenly spaced points, returning
// a discrete palette where entry 0 is the map's zero color and
// entry n-1 its top color.
func (cm *Map) Table(n int) color.Palette {
	if n <= 0 {
		return nil
	}
	pal := make(color.Palette, n)
	if n == 1 {
		pal[0] = cm.Map(0)
		return pal
	}
	for i := range n {
		pal[i] = cm.Map(float32(i) / float32(n-1))
	}
	return pal
}

// DualTable returns a two-sided palette of 2*n entries for signed data.
// Index n is the zero point (the map's zero color); index n+k is the
// k'th positive color and index n-k the k'th color of the [Map.Negative]
// map, for k in [0, n-1]. Index 0 repeats the most negative color.
func (cm *Map) DualTable(n int) color.Palette {
	if n <= 0 {
		return nil
	}
	pos := cm.Table(n)
	neg := cm.Negative().Table(n)
	pal := make(color.Palette, 2*n)
	for i := range pal {
		if i >= n {
			pal[i] = pos[i-n]
			continue
		}
		pal[i] = neg[min(n-i, n-1)]
	}
	return pal
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"
	"math"
	"sort"
)

// Pattern fills a grid with synthetic data, for demos and tests.
type Pattern func(g *Grid)

// Patterns are the named synthetic patterns.
var Patterns = map[string]Pattern{
	// lines every 50 cells over a product surface
	"lines": func(g *Grid) {
		for r := range g.Rows {
			for c := range g.Cols {
				switch {
				case r%50 == 0:
					g.Set(r, c, float32(20*r))
				case c%50 == 0:
					g.Set(r, c, float32(20*c))
				default:
					g.Set(r, c, float32(r*c))
				}
			}
		}
	},
	"ramp": func(g *Grid) {
		for r := range g.Rows {
			for c := range g.Cols {
				g.Set(r, c, float32(r*g.Cols+c))
			}
		}
	},
	// a positive and a negative gaussian peak
	"peaks": func(g *Grid) {
		cr, cc := float64(g.Rows)/2, float64(g.Cols)/2
		w := math.Max(float64(min(g.Rows, g.Cols))/8, 1)
		for r := range g.Rows {
			for c := range g.Cols {
				d1 := sq(float64(r)-cr*0.7) + sq(float64(c)-cc*0.7)
				d2 := sq(float64(r)-cr*1.3) + sq(float64(c)-cc*1.3)
				v := 100*math.Exp(-d1/(2*w*w)) - 60*math.Exp(-d2/(2*w*w))
				g.Set(r, c, float32(v))
			}
		}
	},
}

func sq(x float64) float64 { return x * x }

// PatternNames returns the sorted names of [Patterns].
func PatternNames() []string {
	nms := make([]string, 0, len(Patterns))
	for k := range Patterns {
		nms = append(nms, k)
	}
	sort.Strings(nms)
	return nms
}

// NewPattern returns a rows x cols grid filled with the named pattern.
func NewPattern(name string, rows, cols int) (*Grid, error) {
	p, ok := Patterns[name]
	if !ok {
		return nil, fmt.Errorf("grid: unknown pattern %q (have %v)", name, PatternNames())
	}
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	p(g)
	return g, nil
}

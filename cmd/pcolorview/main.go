// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pcolorview shows a grid of intensities as a zoomable
// pseudo-color image in a desktop window.
//
// Drag with the left mouse button to zoom to a box, and click the right
// button to zoom back out. The arrow keys move the cursor one cell at a
// time. [ and ] change the log shape, t toggles the two-sided color
// model, c cycles through the color maps, and s saves the color scale
// to the -config file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"cogentcore.org/pcolor/base/errors"
	"cogentcore.org/pcolor/base/logx"
	"cogentcore.org/pcolor/colorscale"
	"cogentcore.org/pcolor/grid"
	"cogentcore.org/pcolor/imagepanel"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	data := flag.String("data", "", "CSV file of values to show, one row per line")
	pattern := flag.String("pattern", "lines", "synthetic pattern to show when no -data is given: "+strings.Join(grid.PatternNames(), ", "))
	rows := flag.Int("rows", 500, "rows of the synthetic pattern")
	cols := flag.Int("cols", 500, "columns of the synthetic pattern")
	config := flag.String("config", "", "color scale config file (.toml, .yaml), loaded if it exists and saved with s")
	width := flag.Int("width", 800, "initial window width")
	height := flag.Int("height", 800, "initial window height")
	opts := imagepanel.DefaultOptions()
	flag.TextVar(&opts.Filter, "filter", imagepanel.NearestNeighbor, "resampling filter")
	vv := flag.Bool("vv", false, "debug output")
	v := flag.Bool("v", false, "verbose output")
	q := flag.Bool("q", false, "only print errors")
	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Pcolorview shows a 2D grid of intensities as a zoomable pseudo-color image.\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "\tpcolorview [flags]\n")
		_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	logx.SetDefaultLogger()

	var g *grid.Grid
	var err error
	if *data != "" {
		g, err = grid.OpenCSV(*data)
	} else {
		g, err = grid.NewPattern(*pattern, *rows, *cols)
	}
	if errors.Log(err) != nil {
		os.Exit(1)
	}

	r := imagepanel.New(opts)
	if *config != "" {
		if _, serr := os.Stat(*config); serr == nil {
			r.SetState(errors.Log1(colorscale.OpenConfig(*config)))
		}
	}
	if errors.Log(r.SetData(g, true)) != nil {
		os.Exit(1)
	}

	title := "pcolorview: " + *pattern
	if *data != "" {
		title = "pcolorview: " + *data
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if errors.Log(ebiten.RunGame(newViewer(r, *config))) != nil {
		os.Exit(1)
	}
}

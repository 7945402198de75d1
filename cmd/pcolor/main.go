// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pcolor renders a grid of intensities from a CSV file or a
// synthetic pattern as a pseudo-color image file, optionally
// re-rendering whenever its inputs change.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"cogentcore.org/pcolor/base/errors"
	"cogentcore.org/pcolor/base/logx"
	"cogentcore.org/pcolor/colors/colormap"
	"cogentcore.org/pcolor/grid"
	"cogentcore.org/pcolor/imagepanel"
)

func main() {
	job := &Job{Options: imagepanel.DefaultOptions()}
	flag.StringVar(&job.Data, "data", "", "CSV file of values to render, one row per line")
	flag.StringVar(&job.Pattern, "pattern", "peaks", "synthetic pattern to render when no -data is given: "+strings.Join(grid.PatternNames(), ", "))
	flag.IntVar(&job.Rows, "rows", 500, "rows of the synthetic pattern")
	flag.IntVar(&job.Cols, "cols", 500, "columns of the synthetic pattern")
	flag.StringVar(&job.Output, "o", "pcolor.png", "output image file (.png, .tif, .bmp)")
	flag.IntVar(&job.Width, "width", 800, "output width in pixels")
	flag.IntVar(&job.Height, "height", 800, "output height in pixels")
	flag.StringVar(&job.Zoom, "zoom", "", "zoom rectangle in world coordinates: x1,y1,x2,y2")
	flag.StringVar(&job.Global, "global", "", "world coordinates of the whole grid: x1,y1,x2,y2 (default 0,0,cols,rows)")
	flag.StringVar(&job.Range, "range", "", "fixed intensity range min,max (default: from the visible data)")
	flag.StringVar(&job.Thumbnail, "thumbnail", "", "also write a thumbnail of the whole grid to this file")
	flag.IntVar(&job.ThumbnailSize, "thumbnail-size", 0, "thumbnail width and height (default 100)")
	flag.StringVar(&job.Config, "config", "", "color scale config file (.toml, .yaml)")
	flag.StringVar(&job.SaveConfig, "save-config", "", "write the color scale config used to this file")
	flag.TextVar(&job.Options.Filter, "filter", imagepanel.NearestNeighbor, "resampling filter")
	palette := flag.String("palette", colormap.DefaultMap, "color map: "+strings.Join(colormap.AvailableMapsList(), ", "))
	oneSided := flag.Bool("one-sided", false, "use one color ramp for all values instead of separate negative colors")
	shape := flag.Float64("shape", 0, "pseudo-log shape from 0 (linear) to 100")
	watch := flag.Bool("watch", false, "re-render whenever the data or config file changes")
	vv := flag.Bool("vv", false, "debug output")
	v := flag.Bool("v", false, "verbose output")
	q := flag.Bool("q", false, "only print errors")
	flag.Usage = Usage
	flag.Parse()

	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	logx.SetDefaultLogger()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "palette":
			job.Palette = palette
		case "one-sided":
			job.TwoSided = new(bool)
			*job.TwoSided = !*oneSided
		case "shape":
			s := float32(*shape)
			job.Shape = &s
		}
	})

	if !*watch {
		if errors.Log(job.Run()) != nil {
			os.Exit(1)
		}
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := job.Watch(ctx); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Usage is a replacement usage function for the flags package.
func Usage() {
	_, _ = fmt.Fprintf(os.Stderr, "Pcolor renders a 2D grid of intensities as a pseudo-color image.\n")
	_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "\tpcolor [flags]\n")
	_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

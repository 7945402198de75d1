// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/pcolor/base/iox/imagex"
	"cogentcore.org/pcolor/colorscale"
	"cogentcore.org/pcolor/coords"
	"cogentcore.org/pcolor/grid"
	"cogentcore.org/pcolor/imagepanel"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Job is one rendering of a grid to image files.
type Job struct {
	Options imagepanel.Options

	// Data is a CSV file; if empty, Pattern is rendered.
	Data          string
	Pattern       string
	Rows, Cols    int
	Output        string
	Width, Height int

	// Zoom, Global and Range are comma separated numbers; see [ParseBounds].
	Zoom, Global, Range string

	Thumbnail     string
	ThumbnailSize int

	// Config is the color scale config file, and SaveConfig where the
	// config actually used is written.
	Config, SaveConfig string

	// Palette, TwoSided and Shape override Config when not nil.
	Palette  *string
	TwoSided *bool
	Shape    *float32
}

// ParseBounds parses "x1,y1,x2,y2".
func ParseBounds(s string) (coords.Bounds, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return coords.Bounds{}, err
	}
	return coords.B(v[0], v[1], v[2], v[3]), nil
}

func parseFloats(s string, n int) ([]float32, error) {
	fs := strings.Split(s, ",")
	if len(fs) != n {
		return nil, fmt.Errorf("%q: want %d comma separated numbers", s, n)
	}
	v := make([]float32, n)
	for i, f := range fs {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		v[i] = float32(x)
	}
	return v, nil
}

// scaleConfig returns the color scale config from the config file,
// with the overrides applied.
func (j *Job) scaleConfig() (colorscale.Config, error) {
	cfg := colorscale.DefaultConfig()
	if j.Config != "" {
		var err error
		if cfg, err = colorscale.OpenConfig(j.Config); err != nil {
			return cfg, err
		}
	}
	if j.Palette != nil {
		cfg.Palette = *j.Palette
	}
	if j.TwoSided != nil {
		cfg.TwoSided = *j.TwoSided
	}
	if j.Shape != nil {
		cfg.LogShape = *j.Shape
	}
	return cfg, nil
}

func (j *Job) grid() (*grid.Grid, error) {
	if j.Data != "" {
		return grid.OpenCSV(j.Data)
	}
	return grid.NewPattern(j.Pattern, j.Rows, j.Cols)
}

// expandPaths expands a leading ~ in the file names of the job.
func (j *Job) expandPaths() error {
	for _, p := range []*string{&j.Data, &j.Config, &j.SaveConfig, &j.Output, &j.Thumbnail} {
		e, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = e
	}
	return nil
}

// Run renders the image, and the thumbnail if requested.
func (j *Job) Run() error {
	if err := j.expandPaths(); err != nil {
		return err
	}
	cfg, err := j.scaleConfig()
	if err != nil {
		return err
	}
	g, err := j.grid()
	if err != nil {
		return err
	}
	r := imagepanel.New(j.Options)
	r.SetState(cfg)
	if j.Global != "" {
		b, err := ParseBounds(j.Global)
		if err != nil {
			return fmt.Errorf("-global: %w", err)
		}
		if err := r.SetGlobalBounds(b); err != nil {
			return err
		}
	}
	if err := r.SetData(g, true); err != nil {
		return err
	}
	if j.Zoom != "" {
		b, err := ParseBounds(j.Zoom)
		if err != nil {
			return fmt.Errorf("-zoom: %w", err)
		}
		if err := r.SetZoom(b); err != nil {
			return err
		}
		// the automatic range is of the visible cells
		r.EnableAutoRange(true)
	}
	if j.Range != "" {
		v, err := parseFloats(j.Range, 2)
		if err != nil {
			return fmt.Errorf("-range: %w", err)
		}
		r.SetDataRange(v[0], v[1])
	}
	img, err := r.Render(j.Width, j.Height)
	if err != nil {
		return err
	}
	if err := imagex.Save(img, j.Output); err != nil {
		return err
	}
	rng := r.DataRange()
	slog.Info("pcolor: wrote image", "file", j.Output, "rows", g.Rows, "cols", g.Cols, "min", rng.Min, "max", rng.Max, "palette", r.State().Palette)
	if j.Thumbnail != "" {
		th, err := r.Thumbnail(j.ThumbnailSize, j.ThumbnailSize, false)
		if err != nil {
			return err
		}
		if err := imagex.Save(th, j.Thumbnail); err != nil {
			return err
		}
		slog.Info("pcolor: wrote thumbnail", "file", j.Thumbnail)
	}
	if j.SaveConfig != "" {
		return colorscale.SaveConfig(r.State(), j.SaveConfig)
	}
	return nil
}

// watched returns the input files of the job.
func (j *Job) watched() []string {
	var fs []string
	for _, f := range []string{j.Data, j.Config} {
		if f != "" {
			fs = append(fs, f)
		}
	}
	return fs
}

// settle is how long Watch waits after a change for more changes,
// so that an editor saving a file in several steps renders once.
const settle = 100 * time.Millisecond

// Watch runs the job, and again whenever one of its input files
// changes, until ctx is done. Errors of each run are logged.
func (j *Job) Watch(ctx context.Context) error {
	if err := j.expandPaths(); err != nil {
		return err
	}
	files := j.watched()
	if len(files) == 0 {
		return errors.New("-watch needs a -data or -config file")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// watch the directories, since editors often replace files
	names := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		names[abs] = true
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}
	run := func() {
		if err := j.Run(); err != nil {
			slog.Error("pcolor: render failed", "err", err)
		}
	}
	run()
	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !names[filepath.Clean(event.Name)] || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			slog.Debug("pcolor: input changed", "file", event.Name, "op", event.Op)
			timer = time.After(settle)
		case <-timer:
			timer = nil
			run()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("pcolor: watch error", "err", err)
		}
	}
}

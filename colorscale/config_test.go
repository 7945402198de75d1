// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorscale

import (
	"path/filepath"
	"testing"

	"cogentcore.org/pcolor/colors/colormap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	cs := New()
	assert.Equal(t, DefaultConfig(), cs.State())

	cfg := Config{Palette: colormap.Optimal, TwoSided: false, LogShape: 40}
	cs.SetState(cfg)
	assert.Equal(t, cfg, cs.State())
	assert.Equal(t, NewLogTable(40), cs.table)

	other := New()
	other.SetState(cs.State())
	for _, v := range []float32{-1, 0, 0.3, 1} {
		assert.Equal(t, cs.Map(v, 1), other.Map(v, 1))
	}
}

func TestSaveOpenConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{Palette: colormap.Spectrum, TwoSided: true, LogShape: 25}
	for _, ext := range []string{".toml", ".yaml", ".yml"} {
		fn := filepath.Join(dir, "view"+ext)
		require.NoError(t, SaveConfig(cfg, fn), ext)
		got, err := OpenConfig(fn)
		require.NoError(t, err, ext)
		assert.Equal(t, cfg, got, ext)
	}

	_, err := OpenConfig(filepath.Join(dir, "view.ini"))
	assert.Error(t, err)
	assert.Error(t, SaveConfig(cfg, filepath.Join(dir, "view.json")))
}

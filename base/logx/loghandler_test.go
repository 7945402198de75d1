// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	defer func(l slog.Level) { UserLevel = l }(UserLevel)
	UserLevel = slog.LevelWarn

	var b bytes.Buffer
	l := slog.New(NewHandler(&b))
	l.Debug("this is debug")
	l.Info("this is info")
	l.Warn("this is warn", "name", "Heat 2")
	out := b.String()
	assert.NotContains(t, out, "debug")
	assert.NotContains(t, out, "info")
	assert.Contains(t, out, "WARN ")
	assert.Contains(t, out, `msg="this is warn" name="Heat 2"`)
	assert.NotContains(t, out, "time=")
	assert.NotContains(t, out, "level=")

	b.Reset()
	UserLevel = slog.LevelDebug
	l.With("shape", 20).Debug("this is debug")
	assert.Contains(t, b.String(), "DEBUG msg=\"this is debug\" shape=20")
}

func TestDefaultLogger(t *testing.T) {
	defer func(l *slog.Logger) { slog.SetDefault(l) }(slog.Default())
	SetDefaultLogger()
	slog.Debug("this is debug")
	slog.Warn("this is warn")
}

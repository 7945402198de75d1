// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// levelColors are the ANSI colors of the level tags.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "5",
	slog.LevelInfo:  "6",
	slog.LevelWarn:  "3",
	slog.LevelError: "1",
}

// Handler is a [slog.Handler] that writes each record as a level tag,
// colored when the output is a color terminal, followed by the
// message and attributes in [slog.TextHandler] form. Times are omitted.
type Handler struct {
	out  *termenv.Output
	text slog.Handler

	// shared by all handlers derived through WithAttrs and WithGroup
	mu  *sync.Mutex
	buf *bytes.Buffer
}

// NewHandler returns a new [Handler] writing to w at [UserLevel].
func NewHandler(w io.Writer) *Handler {
	buf := &bytes.Buffer{}
	return &Handler{
		out: termenv.NewOutput(w),
		text: slog.NewTextHandler(buf, &slog.HandlerOptions{
			Level: userLeveler{},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
					return slog.Attr{}
				}
				return a
			},
		}),
		mu:  &sync.Mutex{},
		buf: buf,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.text.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Reset()
	if err := h.text.Handle(ctx, r); err != nil {
		return err
	}
	tag := h.out.String(r.Level.String())
	if c, ok := levelColors[r.Level]; ok {
		tag = tag.Foreground(h.out.Color(c)).Bold()
	}
	_, err := io.WriteString(h.out, tag.String()+" "+h.buf.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.text = h.text.WithAttrs(attrs)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.text = h.text.WithGroup(name)
	return &nh
}

// SetDefaultLogger sets the default [slog] logger to one using
// a [Handler] on standard error.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

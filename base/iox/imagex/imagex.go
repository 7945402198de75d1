// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex saves and loads rendered rasters in the lossless
// formats that pseudo-color images are exchanged in, and checks
// rasters against golden images in tests.
package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Formats are the image file formats. All of them are lossless, so a
// saved raster reads back with its exact palette colors.
type Formats int32

const (
	None Formats = iota
	PNG
	TIFF
	BMP
)

// formats are the names that [image.Decode] reports, in Formats order.
var formats = [...]string{"none", "png", "tiff", "bmp"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formats) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return strings.ToUpper(formats[f])
}

// ExtToFormat returns the format for a filename extension,
// with or without the leading dot.
func ExtToFormat(ext string) (Formats, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return PNG, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	}
	return None, fmt.Errorf("imagex: image extension %q not supported (want .png, .tif, or .bmp)", ext)
}

// Open reads the image in filename, returning it with its format.
func Open(filename string) (image.Image, Formats, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer fp.Close()
	img, name, err := image.Decode(bufio.NewReader(fp))
	if err != nil {
		return nil, None, fmt.Errorf("imagex.Open %s: %w", filename, err)
	}
	for f, nm := range formats {
		if f > 0 && nm == name {
			return img, Formats(f), nil
		}
	}
	return img, None, nil
}

// Save writes img to filename, in the format of its extension.
func Save(img image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := Write(img, bw, f); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return fp.Close()
}

// Write encodes img to w in format f.
func Write(img image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case BMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("imagex.Write: format %v not supported", f)
}

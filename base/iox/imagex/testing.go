// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is the part of *testing.T that [Golden] uses.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// UpdateTestImages makes [Assert] rewrite the golden images instead of
// comparing against them. It is set when the environment variable
// PCOLOR_UPDATE_TESTDATA is "true", and should only be used after a
// deliberate change to rendering.
var UpdateTestImages = os.Getenv("PCOLOR_UPDATE_TESTDATA") == "true"

// Golden compares rendered images with PNG files saved under Dir.
type Golden struct {

	// Dir holds the golden images; "testdata" when empty.
	Dir string

	// Tolerance is the largest per channel difference accepted.
	Tolerance int

	// Update rewrites the golden images instead of comparing.
	Update bool
}

// Assert checks img against testdata/name.png with a tolerance of 1,
// which absorbs rounding differences in color interpolation.
func Assert(t TestingT, img image.Image, name string) {
	t.Helper()
	Golden{Tolerance: 1, Update: UpdateTestImages}.Assert(t, img, name)
}

func (g Golden) path(name, suffix string) string {
	dir := g.Dir
	if dir == "" {
		dir = "testdata"
	}
	return filepath.Join(dir, filepath.FromSlash(strings.TrimSuffix(name, ".png"))+suffix+".png")
}

// Assert reports an error unless img matches the golden image name.
// On a mismatch the image and a difference image are saved next to the
// golden one as name.fail.png and name.diff.png. A missing golden image
// is an error too; it is written so that it can be reviewed and kept.
func (g Golden) Assert(t TestingT, img image.Image, name string) {
	t.Helper()
	file, fail, diff := g.path(name, ""), g.path(name, ".fail"), g.path(name, ".diff")
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		t.Errorf("imagex: %v", err)
		return
	}
	os.Remove(fail)
	os.Remove(diff)

	if g.Update {
		if err := Save(img, file); err != nil {
			t.Errorf("imagex: updating %s: %v", file, err)
		}
		return
	}
	want, _, err := Open(file)
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("imagex: no golden image %s; wrote the current one, check it and rerun", file)
		if err := Save(img, file); err != nil {
			t.Errorf("imagex: writing %s: %v", file, err)
		}
		return
	}
	if err != nil {
		t.Errorf("imagex: %v", err)
		return
	}

	if img.Bounds() != want.Bounds() {
		t.Errorf("imagex: %s is %v, got %v; see %s", file, want.Bounds(), img.Bounds(), fail)
		Save(img, fail)
		return
	}
	if pt, ok := FirstDiff(img, want, g.Tolerance); !ok {
		t.Errorf("imagex: %s differs at %v: got %v, want %v; see %s", file, pt,
			rgbaAt(img, pt), rgbaAt(want, pt), diff)
		Save(img, fail)
		Save(DiffImage(img, want), diff)
	}
}

func rgbaAt(img image.Image, pt image.Point) color.RGBA {
	return color.RGBAModel.Convert(img.At(pt.X, pt.Y)).(color.RGBA)
}

// FirstDiff returns the first pixel of a, in row order, with a channel
// more than tol away from the same pixel of b, and false; or true when
// there is none. The images must have equal bounds.
func FirstDiff(a, b image.Image, tol int) (image.Point, bool) {
	r := a.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			pt := image.Pt(x, y)
			ca, cb := rgbaAt(a, pt), rgbaAt(b, pt)
			if !CompareColors(ca, cb, tol) {
				return pt, false
			}
		}
	}
	return image.Point{}, true
}

// CompareColors returns whether every channel of a and b is within tol.
func CompareColors(a, b color.RGBA, tol int) bool {
	return absDiff(a.R, b.R) <= tol && absDiff(a.G, b.G) <= tol &&
		absDiff(a.B, b.B) <= tol && absDiff(a.A, b.A) <= tol
}

func absDiff(a, b uint8) int {
	return max(int(a), int(b)) - min(int(a), int(b))
}

// DiffImage returns an opaque image of the per channel absolute
// difference of a and b.
func DiffImage(a, b image.Image) image.Image {
	r := a.Bounds()
	d := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			pt := image.Pt(x, y)
			ca, cb := rgbaAt(a, pt), rgbaAt(b, pt)
			d.SetRGBA(x, y, color.RGBA{uint8(absDiff(ca.R, cb.R)), uint8(absDiff(ca.G, cb.G)), uint8(absDiff(ca.B, cb.B)), 255})
		}
	}
	return d
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"cogentcore.org/pcolor/math32"
	"github.com/stretchr/testify/assert"
)

func TestF32(t *testing.T) {
	mr := F32{}
	mr.SetInfinity()
	assert.True(t, mr.FitValInRange(3))
	for _, v := range []float32{-2, 7, 0} {
		mr.FitValInRange(v)
	}
	assert.False(t, mr.FitValInRange(1))
	assert.False(t, mr.FitValInRange(math32.NaN()))
	assert.Equal(t, F32{-2, 7}, mr)
	assert.Equal(t, float32(7), mr.MaxAbs())
	assert.Equal(t, float32(9), (&F32{-9, 4}).MaxAbs())
}

func TestF32Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   F32
		want F32
	}{
		{"ordered", F32{1, 4}, F32{1, 4}},
		{"reversed", F32{4, 1}, F32{1, 4}},
		{"flat", F32{3, 3}, F32{3, 4}},
		{"flat zero", F32{0, 0}, F32{0, 1}},
		{"empty", F32{math32.Infinity, -math32.Infinity}, F32{0, 1}},
		{"nan", F32{math32.NaN(), 2}, F32{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr := tt.in
			mr.Normalize()
			assert.Equal(t, tt.want, mr)
		})
	}
}

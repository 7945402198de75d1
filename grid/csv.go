// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadCSV reads a grid of comma separated values, one row per line.
// Lines starting with # are skipped. Rows must all have the same
// number of values.
func ReadCSV(r io.Reader) (*Grid, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	rows := make([][]float32, len(recs))
	for i, rec := range recs {
		rows[i] = make([]float32, len(rec))
		for j, f := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
			if err != nil {
				return nil, fmt.Errorf("grid.ReadCSV: row %d column %d: %w", i+1, j+1, err)
			}
			rows[i][j] = float32(v)
		}
	}
	return FromRows(rows)
}

// OpenCSV reads a grid from the named CSV file. See [ReadCSV].
func OpenCSV(filename string) (*Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

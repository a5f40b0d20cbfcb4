// SPDX-License-Identifier: MIT

package instance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// forbiddenCell reports whether a CSV cell denotes a missing edge.
func forbiddenCell(s string) bool {
	switch strings.ToLower(s) {
	case "", "-", "inf", "+inf":
		return true
	}

	return false
}

// decodeCSV reads a dense table: one record per row, '#' starts a comment.
func decodeCSV(r io.Reader) (*Instance, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("csv line %d: ragged row: %w", pe.Line, ErrInvalidInstance)
		}
		return nil, err
	}

	in := &Instance{Rows: len(records), Costs: make([][]float64, len(records))}
	if in.Rows > 0 {
		in.Cols = len(records[0])
	}
	for i, rec := range records {
		in.Costs[i] = make([]float64, len(rec))
		for j, cell := range rec {
			cell = strings.TrimSpace(cell)
			if forbiddenCell(cell) {
				in.Forbidden = append(in.Forbidden, [2]int{i, j})
				continue
			}
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("csv cell (%d,%d) %q: %w", i, j, cell, ErrInvalidInstance)
			}
			in.Costs[i][j] = v
		}
	}

	return in, nil
}

// encodeCSV writes the dense table of in; missing edges become "inf".
func encodeCSV(w io.Writer, in *Instance) error {
	cw := csv.NewWriter(w)
	rec := make([]string, in.Cols)
	for _, row := range in.Table() {
		for j, v := range row {
			if math.IsInf(v, 1) {
				rec[j] = "inf"
			} else {
				rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// SPDX-License-Identifier: MIT

package instance

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlap/lap"
)

// Report is the serializable summary of one solve.
type Report struct {
	ID             string  `json:"id" yaml:"id" toml:"id" cbor:"id"`
	Name           string  `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" cbor:"name,omitempty"`
	Strategy       string  `json:"strategy" yaml:"strategy" toml:"strategy" cbor:"strategy"`
	Status         string  `json:"status" yaml:"status" toml:"status" cbor:"status"`
	Assignment     []int   `json:"assignment,omitempty" yaml:"assignment,omitempty" toml:"assignment,omitempty" cbor:"assignment,omitempty"`
	TotalCost      float64 `json:"total_cost" yaml:"total_cost" toml:"total_cost" cbor:"total_cost"`
	BlockingRows   []int   `json:"blocking_rows,omitempty" yaml:"blocking_rows,omitempty" toml:"blocking_rows,omitempty" cbor:"blocking_rows,omitempty"`
	BlockingCols   []int   `json:"blocking_cols,omitempty" yaml:"blocking_cols,omitempty" toml:"blocking_cols,omitempty" cbor:"blocking_cols,omitempty"`
	Augmentations  int     `json:"augmentations" yaml:"augmentations" toml:"augmentations" cbor:"augmentations"`
	ColumnsScanned int     `json:"columns_scanned" yaml:"columns_scanned" toml:"columns_scanned" cbor:"columns_scanned"`
	CoreExpansions int     `json:"core_expansions" yaml:"core_expansions" toml:"core_expansions" cbor:"core_expansions"`
	PricingRounds  int     `json:"pricing_rounds" yaml:"pricing_rounds" toml:"pricing_rounds" cbor:"pricing_rounds"`
	Recomputed     bool    `json:"recomputed" yaml:"recomputed" toml:"recomputed" cbor:"recomputed"`
	ElapsedMS      float64 `json:"elapsed_ms" yaml:"elapsed_ms" toml:"elapsed_ms" cbor:"elapsed_ms"`
	Error          string  `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty" cbor:"error,omitempty"`
}

// NewReport summarizes res (and err, if any) under a fresh run ID.
func NewReport(name string, res lap.Result, err error, elapsed time.Duration) Report {
	r := Report{
		ID:             uuid.NewString(),
		Name:           name,
		Strategy:       res.Stats.Strategy.String(),
		Status:         res.Status.String(),
		Assignment:     res.Assignment,
		TotalCost:      res.TotalCost,
		BlockingRows:   res.BlockingRows,
		BlockingCols:   res.BlockingCols,
		Augmentations:  res.Stats.Augmentations,
		ColumnsScanned: res.Stats.ColumnsScanned,
		CoreExpansions: res.Stats.CoreExpansions,
		PricingRounds:  res.Stats.PricingRounds,
		Recomputed:     res.Stats.Recomputed,
		ElapsedMS:      float64(elapsed.Microseconds()) / 1000,
	}
	if err != nil {
		r.Error = err.Error()
	}

	return r
}

// reportFile wraps reports for formats that need a top-level table.
type reportFile struct {
	Runs []Report `toml:"runs"`
}

var reportHeader = []string{
	"id", "name", "strategy", "status", "total_cost", "assignment",
	"blocking_rows", "blocking_cols", "augmentations", "columns_scanned",
	"core_expansions", "pricing_rounds", "recomputed", "elapsed_ms", "error",
}

// EncodeReports writes reports in format f. TOML nests them under [[runs]];
// CSV writes a header and one line per report with index lists joined by
// spaces.
func EncodeReports(w io.Writer, f Format, reports []Report) error {
	var v any = reports
	if f == FormatTOML {
		v = reportFile{Runs: reports}
	}

	return encodeValue(w, f, v, func() error { return encodeReportsCSV(w, reports) })
}

func encodeReportsCSV(w io.Writer, reports []Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, r := range reports {
		rec := []string{
			r.ID, r.Name, r.Strategy, r.Status,
			strconv.FormatFloat(r.TotalCost, 'g', -1, 64),
			joinInts(r.Assignment), joinInts(r.BlockingRows), joinInts(r.BlockingCols),
			strconv.Itoa(r.Augmentations), strconv.Itoa(r.ColumnsScanned),
			strconv.Itoa(r.CoreExpansions), strconv.Itoa(r.PricingRounds),
			strconv.FormatBool(r.Recomputed),
			strconv.FormatFloat(r.ElapsedMS, 'f', 3, 64),
			r.Error,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}

// Failed reports whether the run ended with an error.
func (r Report) Failed() bool { return r.Error != "" }

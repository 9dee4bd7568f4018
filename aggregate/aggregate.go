// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aggregate implements exemplar-based aggregation of a
// [table.Table]: rows that fall in the same bin (numeric columns)
// or carry the same category combination (string columns) are
// grouped under a single representative exemplar row.
//
// The grouping strategy depends on the number of grouping columns:
// one or two columns use equal-width binning on numeric axes and
// sorted distinct ranks on string axes; more than two columns use
// greedy radius-based exemplar discovery, preceded by a seeded
// random projection when the column count exceeds
// [Params.MaxDimensions].
package aggregate

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/exdata/exemplar/column"
	"github.com/exdata/exemplar/table"
)

var (
	// ErrInvalidArgument indicates a parameter with a bad value,
	// e.g. a non-positive bin count or a nil progress function.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedColumnType indicates a grouping column whose
	// kind is not one of int, float, string.
	ErrUnsupportedColumnType = errors.New("unsupported column type")
)

// ProgressFunc is an optional callback reporting aggregation
// progress as a fraction in [0, 1]. It must not mutate the
// table being aggregated.
type ProgressFunc func(frac float64)

// parallelRows is the row count above which per-row bucket
// computation is spread across worker goroutines.
const parallelRows = 16384

// Aggregate groups the rows of the given table into exemplars per
// the given parameters, returning a [Result] holding the per-row
// exemplar id assignment and the exemplar table. The input table is
// only read, never modified: use [Result.Apply] to reproduce the
// in-place reduction of the source table.
//
// An optional progress function is called with a progress fraction
// at phase boundaries; it must be non-nil if supplied.
func Aggregate(dt *table.Table, pr *Params, progress ...ProgressFunc) (*Result, error) {
	var pf ProgressFunc
	if len(progress) > 0 {
		if progress[0] == nil {
			return nil, fmt.Errorf("aggregate.Aggregate: progress function must be non-nil: %w", ErrInvalidArgument)
		}
		pf = progress[0]
	}
	if dt == nil || dt.NumColumns() == 0 || dt.Rows == 0 {
		return nil, fmt.Errorf("aggregate.Aggregate: table must be non-empty: %w", ErrInvalidArgument)
	}
	if err := pr.Validate(); err != nil {
		return nil, err
	}
	for ci := 0; ci < dt.NumColumns(); ci++ {
		if k := dt.ColumnIndex(ci).Kind(); k < 0 || k >= column.KindN {
			return nil, fmt.Errorf("aggregate.Aggregate: column %q has kind %v: %w",
				dt.ColumnName(ci), k, ErrUnsupportedColumnType)
		}
	}
	ag := &aggregator{dt: dt, params: pr, progress: pf}
	return ag.run()
}

// aggregator holds the per-call state of one aggregation pass.
// It is created fresh on each [Aggregate] call and holds no
// state across calls.
type aggregator struct {
	dt       *table.Table
	params   *Params
	progress ProgressFunc
}

func (ag *aggregator) report(frac float64) {
	if ag.progress != nil {
		ag.progress(frac)
	}
}

// run dispatches on row count and grouping dimensionality.
func (ag *aggregator) run() (*Result, error) {
	ag.report(0)
	n := ag.dt.Rows
	if n < ag.params.MinRows {
		res := ag.assemble(identityBuckets(n))
		ag.report(1)
		return res, nil
	}
	var buckets []int
	switch ag.dt.NumColumns() {
	case 1:
		buckets = ag.group1D()
	case 2:
		buckets = ag.group2D()
	default:
		buckets = ag.groupND()
	}
	ag.report(0.5)
	res := ag.assemble(buckets)
	ag.report(1)
	return res, nil
}

// group1D handles the single grouping column case: equal-width
// binning for a numeric column, where bin ids are the exemplar ids
// directly, and sorted distinct value ranks for a string column.
func (ag *aggregator) group1D() []int {
	cl := ag.dt.ColumnIndex(0)
	if cl.IsString() {
		ranks, _ := stringRanks(cl)
		return ranks
	}
	ax := newAxis(cl, ag.params.NBins, ag.params.Epsilon)
	return computeRows(cl.Len(), func(row int) int {
		b := ax.bin(cl.Float1D(row))
		if b < 0 { // missing values get the sentinel bin past the last
			return ax.bins
		}
		return b
	})
}

// group2D handles the two grouping column case. Two numeric columns
// bin independently per axis and combine row-major without
// compaction. When a string column is involved, per-column buckets
// (bins or distinct ranks) combine row-major and are then compacted
// to dense ids in ascending combined-key order.
func (ag *aggregator) group2D() []int {
	cx := ag.dt.ColumnIndex(0)
	cy := ag.dt.ColumnIndex(1)
	if !cx.IsString() && !cy.IsString() {
		return ag.gridNumeric(cx, cy)
	}
	bx, nx := ag.columnBuckets(cx, ag.params.NXBins)
	by, _ := ag.columnBuckets(cy, ag.params.NYBins)
	n := ag.dt.Rows
	keys := make([]int, n)
	for i := range keys {
		keys[i] = by[i]*nx + bx[i]
	}
	return rankKeys(keys)
}

// gridNumeric combines two independently binned numeric axes into
// the row-major grid id ybin*NXBins + xbin. Empty grid cells are
// not re-indexed. Rows with a missing value on either axis fall in
// dedicated cells past the end of the grid.
func (ag *aggregator) gridNumeric(cx, cy column.Column) []int {
	axx := newAxis(cx, ag.params.NXBins, ag.params.Epsilon)
	axy := newAxis(cy, ag.params.NYBins, ag.params.Epsilon)
	ngrid := axx.bins * axy.bins
	return computeRows(ag.dt.Rows, func(row int) int {
		xb := axx.bin(cx.Float1D(row))
		yb := axy.bin(cy.Float1D(row))
		switch {
		case xb < 0 && yb < 0:
			return ngrid + 2
		case yb < 0:
			return ngrid + 1
		case xb < 0:
			return ngrid
		}
		return yb*axx.bins + xb
	})
}

// columnBuckets returns per-row buckets for one column of a combined
// grouping: sorted distinct ranks for a string column, equal-width
// bins for a numeric column, with a sentinel bucket for missing
// values. The second return value is the bucket-space stride.
func (ag *aggregator) columnBuckets(cl column.Column, bins int) (buckets []int, stride int) {
	if cl.IsString() {
		return stringRanks(cl)
	}
	ax := newAxis(cl, bins, ag.params.Epsilon)
	buckets = computeRows(cl.Len(), func(row int) int {
		b := ax.bin(cl.Float1D(row))
		if b < 0 {
			return ax.bins
		}
		return b
	})
	return buckets, ax.bins + 1
}

// identityBuckets is the MinRows passthrough: each row is its own
// exemplar with a count of one.
func identityBuckets(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// computeRows fills out[row] = fn(row) for every row, spreading the
// work across worker goroutines for large row counts. fn must be
// pure with respect to rows (the exemplar id assignment itself is an
// ordering-sensitive reduction and stays sequential in assemble).
func computeRows(n int, fn func(row int) int) []int {
	out := make([]int, n)
	if n < parallelRows {
		for i := range out {
			out[i] = fn(i)
		}
		return out
	}
	nw := runtime.GOMAXPROCS(0)
	chunk := (n + nw - 1) / nw
	var wg sync.WaitGroup
	for st := 0; st < n; st += chunk {
		ed := min(st+chunk, n)
		wg.Add(1)
		go func(st, ed int) {
			defer wg.Done()
			for i := st; i < ed; i++ {
				out[i] = fn(i)
			}
		}(st, ed)
	}
	wg.Wait()
	return out
}

// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/exdata/exemplar/column"
	"github.com/exdata/exemplar/table"
)

// IDColumnName is the name of the exemplar id column in [Result.IDs].
const IDColumnName = "exemplar_id"

// CountColumnName is the name of the membership count column
// appended to [Result.Exemplars].
const CountColumnName = "count"

// Result is the outcome of one [Aggregate] call.
type Result struct {
	// IDs is a single-column int table assigning an exemplar id to
	// each input row, aligned by row position with the input table.
	IDs *table.Table

	// Exemplars holds the input columns reduced to one row per
	// exemplar, in first-seen order, with a trailing int count
	// column holding the number of member rows per exemplar.
	Exemplars *table.Table

	// Members holds the set of input row indexes belonging to each
	// exemplar, aligned with the rows of [Result.Exemplars].
	Members []*roaring.Bitmap

	// idToRow maps an exemplar id to its row in Exemplars. On the
	// grid paths ids are raw grid cells and may be sparse; on the
	// discovery paths the mapping is the identity.
	idToRow map[int]int
}

// assemble builds the [Result] from the per-row exemplar ids in a
// single sequential pass, discovering exemplars in first-seen order.
func (ag *aggregator) assemble(ids []int) *Result {
	dt := ag.dt
	res := &Result{idToRow: make(map[int]int)}
	var reps []int // representative (first) input row per exemplar
	var counts []int
	for i, id := range ids {
		ri, ok := res.idToRow[id]
		if !ok {
			ri = len(reps)
			res.idToRow[id] = ri
			reps = append(reps, i)
			counts = append(counts, 0)
			res.Members = append(res.Members, roaring.New())
		}
		counts[ri]++
		res.Members[ri].Add(uint32(i))
	}
	ex := table.New(dt.Meta.GetName())
	ex.Rows = len(reps)
	for ci := 0; ci < dt.NumColumns(); ci++ {
		src := dt.ColumnIndex(ci)
		cl := src.CloneEmpty(len(reps))
		for r, rep := range reps {
			cl.CopyRow(r, src, rep)
		}
		ex.Columns.Add(dt.ColumnName(ci), cl)
	}
	cname := CountColumnName
	for ex.Columns.IndexByKey(cname) >= 0 { // input already has a count column
		cname += "_"
	}
	ex.Columns.Add(cname, column.NewIntFromValues(counts...))
	res.Exemplars = ex
	res.IDs = table.New()
	res.IDs.AddColumn(IDColumnName, column.NewIntFromValues(ids...))
	return res
}

// ExemplarRow returns the row in [Result.Exemplars] holding the
// exemplar with the given id, -1 if no row carries that id.
func (r *Result) ExemplarRow(id int) int {
	row, ok := r.idToRow[id]
	if !ok {
		return -1
	}
	return row
}

// Counts returns the membership count per exemplar row.
func (r *Result) Counts() []int {
	return r.Exemplars.ColumnIndex(r.Exemplars.NumColumns() - 1).(*column.Int).Values
}

// Apply replaces the columns of the given table with a copy of the
// exemplar table, reproducing the in-place reduction contract for
// callers that want the source table itself reduced to exemplars.
func (r *Result) Apply(dt *table.Table) {
	ex := r.Exemplars.Clone()
	dt.Columns = ex.Columns
	dt.Rows = ex.Rows
}

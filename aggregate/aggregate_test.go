// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exdata/exemplar/column"
	"github.com/exdata/exemplar/table"
)

// testParams returns params that aggregate even tiny test tables.
func testParams() *Params {
	pr := NewParams()
	pr.MinRows = 1
	pr.NBins = 3
	pr.NXBins = 3
	pr.NYBins = 3
	return pr
}

func intTable(name string, vals ...int) *table.Table {
	dt := table.New()
	dt.AddColumn(name, column.NewIntFromValues(vals...))
	return dt
}

func stringTable(name string, vals ...string) *table.Table {
	dt := table.New()
	dt.AddColumn(name, column.NewStringFromValues(vals...))
	return dt
}

func ids(t *testing.T, res *Result) []int {
	t.Helper()
	return res.IDs.Column(IDColumnName).(*column.Int).Values
}

func TestAggregate1DContinuousIntegerSorted(t *testing.T) {
	dt := intTable("C0", 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	res, err := Aggregate(dt, testParams())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 2, 2, 2}, ids(t, res))
	assert.Equal(t, []int{4, 3, 3}, res.Counts())
	assert.Equal(t, 3, res.Exemplars.Rows)
	assert.Equal(t, 2, res.Exemplars.NumColumns())
	assert.Equal(t, []int{0, 4, 7}, res.Exemplars.Column("C0").(*column.Int).Values)
}

func TestAggregate1DContinuousIntegerRandom(t *testing.T) {
	dt := intTable("C0", 9, 8, 2, 3, 3, 0, 5, 5, 8, 1)
	res, err := Aggregate(dt, testParams())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 0, 0, 0, 0, 1, 1, 2, 0}, ids(t, res))
	// exemplar rows are in first-seen order: bin 2 at row 0, bin 0 at
	// row 2, bin 1 at row 6
	assert.Equal(t, []int{3, 5, 2}, res.Counts())
	assert.Equal(t, []int{9, 2, 5}, res.Exemplars.Column("C0").(*column.Int).Values)
	assert.Equal(t, 0, res.ExemplarRow(2))
	assert.Equal(t, 1, res.ExemplarRow(0))
	assert.Equal(t, 2, res.ExemplarRow(1))
}

func TestAggregate1DContinuousRealSorted(t *testing.T) {
	dt := table.New()
	dt.AddColumn("C0", column.NewFloat64FromValues(0, 1, 2, 3, 4, 5, 6, 7, 8, 9))
	res, err := Aggregate(dt, testParams())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 2, 2, 2}, ids(t, res))
}

func TestAggregate1DCategoricalSorted(t *testing.T) {
	dt := stringTable("C0", "blue", "green", "indigo", "orange", "red", "violet", "yellow")
	res, err := Aggregate(dt, testParams())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, ids(t, res))
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1}, res.Counts())
	assert.Equal(t, 7, res.Exemplars.Rows)
}

func TestAggregate1DCategoricalRandom(t *testing.T) {
	dt := stringTable("C0", "blue", "orange", "yellow", "green", "blue", "indigo", "violet")
	res, err := Aggregate(dt, testParams())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 5, 1, 0, 2, 4}, ids(t, res))
	assert.Equal(t, 6, res.Exemplars.Rows)
	// "blue" at rows 0 and 4 share exemplar 0
	assert.Equal(t, 2, res.Counts()[res.ExemplarRow(0)])
}

func TestAggregate2DContinuousIntegerSorted(t *testing.T) {
	dt := intTable("C0", 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	dt.AddColumn("C1", column.NewIntFromValues(0, 1, 2, 3, 4, 5, 6, 7, 8, 9))
	res, err := Aggregate(dt, testParams())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 4, 4, 4, 8, 8, 8}, ids(t, res))
	assert.Equal(t, []int{4, 3, 3}, res.Counts())
	assert.Equal(t, 3, res.Exemplars.Rows)
	assert.Equal(t, 3, res.Exemplars.NumColumns())
	// raw grid ids are not re-indexed over empty cells
	assert.Equal(t, 1, res.ExemplarRow(4))
	assert.Equal(t, -1, res.ExemplarRow(1))
}

func TestAggregate2DCategorical(t *testing.T) {
	dt := stringTable("C0", "blue", "indigo", "red", "violet", "yellow", "violet", "green")
	dt.AddColumn("C1", column.NewStringFromValues("o", "r", "a", "n", "g", "n", "e"))
	res, err := Aggregate(dt, testParams())
	require.NoError(t, err)
	got := ids(t, res)
	// ids are dense from zero
	k := res.Exemplars.Rows
	seen := make(map[int]bool)
	for _, id := range got {
		assert.GreaterOrEqual(t, id, 0)
		assert.Less(t, id, k)
		seen[id] = true
	}
	assert.Equal(t, k, len(seen))
	// identical value pairs share an exemplar
	assert.Equal(t, got[3], got[5])
	assert.Equal(t, 6, k)
	// deterministic across runs
	res2, err := Aggregate(dt, testParams())
	require.NoError(t, err)
	assert.Equal(t, got, ids(t, res2))
}

func TestAggregate2DMixed(t *testing.T) {
	dt := intTable("C0", 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	dt.AddColumn("C1", column.NewStringFromValues("a", "a", "a", "a", "b", "b", "b", "b", "b", "a"))
	res, err := Aggregate(dt, testParams())
	require.NoError(t, err)
	got := ids(t, res)
	k := res.Exemplars.Rows
	seen := make(map[int]bool)
	for _, id := range got {
		assert.GreaterOrEqual(t, id, 0)
		assert.Less(t, id, k)
		seen[id] = true
	}
	assert.Equal(t, k, len(seen))
	// same bin, same category: rows 0..3 are ("a", bin 0)
	assert.Equal(t, got[0], got[1])
	assert.Equal(t, got[0], got[3])
	// row 9 is ("a", bin 2), distinct from both
	assert.NotEqual(t, got[0], got[9])
	assert.NotEqual(t, got[8], got[9])
	sum := 0
	for _, c := range res.Counts() {
		sum += c
	}
	assert.Equal(t, dt.Rows, sum)
}

func TestAggregateMinRowsPassthrough(t *testing.T) {
	pr := testParams()
	pr.MinRows = 100
	dt := intTable("C0", 9, 8, 2, 3, 3, 0, 5, 5, 8, 1)
	res, err := Aggregate(dt, pr)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, ids(t, res))
	assert.Equal(t, dt.Rows, res.Exemplars.Rows)
	assert.Equal(t, dt.Column("C0").(*column.Int).Values, res.Exemplars.Column("C0").(*column.Int).Values)
	for _, c := range res.Counts() {
		assert.Equal(t, 1, c)
	}
}

func TestAggregateRowConservation(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	dt := table.New()
	vals := make([]float64, 1000)
	for i := range vals {
		vals[i] = rnd.Float64() * 100
	}
	dt.AddColumn("C0", column.NewFloat64FromValues(vals...))
	pr := testParams()
	pr.NBins = 7
	res, err := Aggregate(dt, pr)
	require.NoError(t, err)
	sum := 0
	for _, c := range res.Counts() {
		sum += c
	}
	assert.Equal(t, 1000, sum)
	assert.Equal(t, uint64(1000), unionCardinality(res))
}

func unionCardinality(res *Result) uint64 {
	if len(res.Members) == 0 {
		return 0
	}
	u := res.Members[0].Clone()
	for _, m := range res.Members[1:] {
		u.Or(m)
	}
	return u.GetCardinality()
}

func TestAggregateApply(t *testing.T) {
	dt := intTable("C0", 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	res, err := Aggregate(dt, testParams())
	require.NoError(t, err)
	assert.Equal(t, 10, dt.Rows) // input untouched
	res.Apply(dt)
	assert.Equal(t, 3, dt.Rows)
	assert.Equal(t, 2, dt.NumColumns())
	assert.Equal(t, CountColumnName, dt.ColumnName(1))
	assert.Equal(t, column.KindInt, dt.ColumnIndex(1).Kind())
}

func TestAggregateProgress(t *testing.T) {
	dt := intTable("C0", 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	var fracs []float64
	_, err := Aggregate(dt, testParams(), func(frac float64) {
		fracs = append(fracs, frac)
	})
	require.NoError(t, err)
	require.NotEmpty(t, fracs)
	assert.Equal(t, 0.0, fracs[0])
	assert.Equal(t, 1.0, fracs[len(fracs)-1])
	for i := 1; i < len(fracs); i++ {
		assert.GreaterOrEqual(t, fracs[i], fracs[i-1])
	}
}

func TestAggregateErrors(t *testing.T) {
	dt := intTable("C0", 1, 2, 3)
	_, err := Aggregate(nil, testParams())
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Aggregate(table.New(), testParams())
	assert.ErrorIs(t, err, ErrInvalidArgument)

	pr := testParams()
	pr.NBins = 0
	_, err = Aggregate(dt, pr)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Aggregate(dt, testParams(), nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	bad := table.New()
	bad.AddColumn("C0", badKindColumn{column.NewIntFromValues(1, 2, 3)})
	_, err = Aggregate(bad, testParams())
	assert.ErrorIs(t, err, ErrUnsupportedColumnType)
}

// badKindColumn reports a kind outside the supported closed set.
type badKindColumn struct {
	*column.Int
}

func (badKindColumn) Kind() column.Kind { return column.KindN }

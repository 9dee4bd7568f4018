// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides a Table of typed [column.Column] columns
// aligned by a common row dimension, with fast lookup by column name.
package table

import (
	"fmt"

	"github.com/exdata/exemplar/column"

	"github.com/exdata/exemplar/base/keylist"
	"github.com/exdata/exemplar/base/metadata"
)

// Table is a table of column data aligned by a common row count.
// Use the [Table.Column] (by name) and [Table.ColumnIndex] methods
// to access the column data.
type Table struct {
	// Columns has the ordered list of named column data for this table.
	Columns *keylist.List[string, column.Column]

	// Rows is the number of rows, shared across all columns.
	Rows int

	// Meta is misc metadata for the table, with standard
	// "Name" and "Doc" keys.
	Meta metadata.Data
}

// New returns a new Table with its own (empty) set of columns.
// Can pass an optional name which sets metadata.
func New(name ...string) *Table {
	dt := &Table{Columns: keylist.New[string, column.Column]()}
	if len(name) > 0 {
		dt.Meta.SetName(name[0])
	}
	return dt
}

// IsValidRow returns an error if the row is invalid,
// if error checking is needed.
func (dt *Table) IsValidRow(row int) error {
	if row < 0 || row >= dt.Rows {
		return fmt.Errorf("table.Table.IsValidRow: row %d is out of valid range [0..%d]", row, dt.Rows)
	}
	return nil
}

// NumRows returns the number of rows.
func (dt *Table) NumRows() int { return dt.Rows }

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.Columns.Len() }

// Column returns the column with the given name, nil if not found.
// It is best practice to access columns by name.
func (dt *Table) Column(name string) column.Column {
	return dt.Columns.At(name)
}

// ColumnTry is a version of [Table.Column] that also returns an error
// if the column name is not found, for cases when error is needed.
func (dt *Table) ColumnTry(name string) (column.Column, error) {
	cl, ok := dt.Columns.AtTry(name)
	if !ok {
		return nil, fmt.Errorf("table.Table: column named %q not found", name)
	}
	return cl, nil
}

// ColumnIndex returns the column at the given index.
func (dt *Table) ColumnIndex(idx int) column.Column {
	return dt.Columns.Values[idx]
}

// ColumnName returns the name of the column at the given index.
func (dt *Table) ColumnName(idx int) string {
	return dt.Columns.Keys[idx]
}

// AddColumn adds the given column to the table under the given name,
// returning an error and not adding if the name is not unique.
// Automatically adjusts the column length to the current number
// of rows, or adopts the column's length if the table is empty.
func (dt *Table) AddColumn(name string, cl column.Column) error {
	if dt.Columns.Len() == 0 {
		dt.Rows = cl.Len()
	}
	err := dt.Columns.Add(name, cl)
	if err != nil {
		return err
	}
	cl.SetNumRows(dt.Rows)
	return nil
}

// AddColumnOfKind adds a new column of the given kind and name
// (which must be unique) to the table, returning the column.
func (dt *Table) AddColumnOfKind(kind column.Kind, name string) column.Column {
	cl := column.NewOfKind(kind, dt.Rows)
	dt.AddColumn(name, cl)
	return cl
}

// AddIntColumn adds a new int column with the given name.
func (dt *Table) AddIntColumn(name string) *column.Int {
	return dt.AddColumnOfKind(column.KindInt, name).(*column.Int)
}

// AddFloat64Column adds a new float64 column with the given name.
func (dt *Table) AddFloat64Column(name string) *column.Float64 {
	return dt.AddColumnOfKind(column.KindFloat, name).(*column.Float64)
}

// AddStringColumn adds a new string column with the given name.
func (dt *Table) AddStringColumn(name string) *column.String {
	return dt.AddColumnOfKind(column.KindString, name).(*column.String)
}

// DeleteColumnName deletes the column of the given name,
// returning false if not found.
func (dt *Table) DeleteColumnName(name string) bool {
	return dt.Columns.DeleteByKey(name)
}

// DeleteAll deletes all columns, does full reset.
func (dt *Table) DeleteAll() {
	dt.Columns.Reset()
	dt.Rows = 0
}

// SetNumRows sets the number of rows in the table, across all columns.
func (dt *Table) SetNumRows(rows int) *Table {
	dt.Rows = rows
	for _, cl := range dt.Columns.Values {
		cl.SetNumRows(rows)
	}
	return dt
}

// AddRows adds n rows to the end of the table.
func (dt *Table) AddRows(n int) *Table {
	return dt.SetNumRows(dt.Rows + n)
}

// Clone returns a complete copy of this table, including cloning
// the underlying column data.
func (dt *Table) Clone() *Table {
	cp := New()
	cp.Rows = dt.Rows
	cp.Meta.Copy(dt.Meta)
	for i, cl := range dt.Columns.Values {
		cp.Columns.Add(dt.Columns.Keys[i], cl.Clone())
	}
	return cp
}

// CopyRow copies the given row of the from table (which must have the
// same column structure) into the given row of this table.
func (dt *Table) CopyRow(to int, from *Table, fromRow int) {
	for i, cl := range dt.Columns.Values {
		cl.CopyRow(to, from.Columns.Values[i], fromRow)
	}
}

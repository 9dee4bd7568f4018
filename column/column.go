// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package column provides typed columnar storage for row-aligned data.
// A [Column] is a 1D sequence of values of one of a closed set of kinds:
// [KindInt], [KindFloat], [KindString]. It is implemented by the generic
// [Number] type specialized by int and float64, and by [String].
// For float columns, NaN indicates a missing value; all of the
// aggregation functions skip NaNs.
package column

import "fmt"

// Kind is the closed set of column value kinds.
type Kind int32

const (
	// KindInt is an integer-valued column.
	KindInt Kind = iota

	// KindFloat is a float64-valued (real) column.
	KindFloat

	// KindString is a string-valued (categorical) column.
	KindString

	// KindN is the number of column kinds.
	KindN
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// Column is the interface for a typed column of row-aligned values.
// Numeric access goes through the Float1D / Int1D methods regardless
// of the underlying kind, per the standard promotion conventions;
// string columns parse and format numbers on demand.
type Column interface {
	fmt.Stringer

	// Kind returns the kind of the values in this column.
	Kind() Kind

	// IsString returns true if the column kind is [KindString];
	// otherwise the column is numeric.
	IsString() bool

	// Len returns the number of rows in the column.
	Len() int

	// SetNumRows sets the number of rows, retaining existing
	// values that fit.
	SetNumRows(rows int)

	// Float1D returns the value at the given row as a float64.
	Float1D(i int) float64

	// SetFloat1D sets the value at the given row as a float64.
	SetFloat1D(val float64, i int)

	// Int1D returns the value at the given row as an int.
	Int1D(i int) int

	// SetInt1D sets the value at the given row as an int.
	SetInt1D(val int, i int)

	// String1D returns the value at the given row as a string.
	String1D(i int) string

	// SetString1D sets the value at the given row as a string.
	SetString1D(val string, i int)

	// Range returns the min and max values and their row indexes
	// (-1 if there are no values). NaN values are skipped.
	Range() (min, max float64, minIndex, maxIndex int)

	// Clone returns a copy of this column with its own separate
	// memory representation of all the values.
	Clone() Column

	// CloneEmpty returns a new zero-valued column of the same kind
	// as this column, with the given number of rows.
	CloneEmpty(rows int) Column

	// CopyRow copies the value at the given row of the from column
	// into the given row of this column, converting kinds as needed.
	CopyRow(to int, from Column, fromRow int)
}

// NewOfKind returns a new column of the given kind with the
// given number of rows.
func NewOfKind(kind Kind, rows int) Column {
	switch kind {
	case KindInt:
		return NewNumber[int](rows)
	case KindFloat:
		return NewNumber[float64](rows)
	case KindString:
		return NewString(rows)
	default:
		panic(fmt.Sprintf("column.NewOfKind: kind not supported: %v", kind))
	}
}

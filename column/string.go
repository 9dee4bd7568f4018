// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"math"
	"strconv"
	"strings"

	"github.com/exdata/exemplar/base/slicesx"
)

// String is a column of string values, used for categorical data.
type String struct {
	Values []string
}

// NewString returns a new [String] column with the given number of rows.
func NewString(rows int) *String {
	return &String{Values: make([]string, rows)}
}

// NewStringFromValues returns a new [String] column initialized
// directly from the given slice values, which are not copied.
func NewStringFromValues(vals ...string) *String {
	return &String{Values: vals}
}

// String satisfies the fmt.Stringer interface for a summary of the column data.
func (cl *String) String() string {
	return "[" + strings.Join(cl.Values, " ") + "]"
}

func (cl *String) Kind() Kind { return KindString }

func (cl *String) IsString() bool { return true }

func (cl *String) Len() int { return len(cl.Values) }

func (cl *String) SetNumRows(rows int) {
	cl.Values = slicesx.SetLength(cl.Values, rows)
}

// Float1D returns the value at the given row parsed as a float64,
// NaN if the value does not parse.
func (cl *String) Float1D(i int) float64 {
	if fv, err := strconv.ParseFloat(cl.Values[i], 64); err == nil {
		return fv
	}
	return math.NaN()
}

func (cl *String) SetFloat1D(val float64, i int) {
	cl.Values[i] = strconv.FormatFloat(val, 'g', -1, 64)
}

func (cl *String) Int1D(i int) int {
	if iv, err := strconv.Atoi(cl.Values[i]); err == nil {
		return iv
	}
	return 0
}

func (cl *String) SetInt1D(val int, i int) {
	cl.Values[i] = strconv.Itoa(val)
}

func (cl *String) String1D(i int) string { return cl.Values[i] }

func (cl *String) SetString1D(val string, i int) { cl.Values[i] = val }

// Range returns the min and max of the values parsed as numbers,
// skipping any values that do not parse ([Float1D] returns NaN).
func (cl *String) Range() (min, max float64, minIndex, maxIndex int) {
	minIndex, maxIndex = -1, -1
	for i := range cl.Values {
		v := cl.Float1D(i)
		if math.IsNaN(v) {
			continue
		}
		if v < min || minIndex < 0 {
			min = v
			minIndex = i
		}
		if v > max || maxIndex < 0 {
			max = v
			maxIndex = i
		}
	}
	return
}

// Clone returns a copy of this column with its own separate
// memory representation of all the values.
func (cl *String) Clone() Column {
	cp := NewString(len(cl.Values))
	copy(cp.Values, cl.Values)
	return cp
}

// CloneEmpty returns a new zero-valued column of the same kind
// as this column, with the given number of rows.
func (cl *String) CloneEmpty(rows int) Column {
	return NewString(rows)
}

// CopyRow copies the value at the given row of the from column
// into the given row of this column, converting kinds as needed.
func (cl *String) CopyRow(to int, from Column, fromRow int) {
	cl.Values[to] = from.String1D(fromRow)
}

// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/exdata/exemplar/base/num"
	"github.com/exdata/exemplar/base/slicesx"
)

// Number is a column of numerical values.
type Number[T num.Number] struct {
	Values []T
}

// Float64 is an alias for Number[float64].
type Float64 = Number[float64]

// Int is an alias for Number[int].
type Int = Number[int]

// NewNumber returns a new [Number] column of the given
// value type with the given number of rows.
func NewNumber[T num.Number](rows int) *Number[T] {
	return &Number[T]{Values: make([]T, rows)}
}

// NewFloat64 returns a new [Float64] column with the given number of rows.
func NewFloat64(rows int) *Float64 {
	return NewNumber[float64](rows)
}

// NewInt returns a new [Int] column with the given number of rows.
func NewInt(rows int) *Int {
	return NewNumber[int](rows)
}

// NewNumberFromValues returns a new [Number] column initialized
// directly from the given slice values, which are not copied.
// The resulting column thus "wraps" the given values.
func NewNumberFromValues[T num.Number](vals ...T) *Number[T] {
	return &Number[T]{Values: vals}
}

// NewFloat64FromValues returns a new [Float64] column wrapping the given values.
func NewFloat64FromValues(vals ...float64) *Float64 {
	return NewNumberFromValues(vals...)
}

// NewIntFromValues returns a new [Int] column wrapping the given values.
func NewIntFromValues(vals ...int) *Int {
	return NewNumberFromValues(vals...)
}

// String satisfies the fmt.Stringer interface for a summary of the column data.
func (cl *Number[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range cl.Values {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString("]")
	return b.String()
}

// Kind returns [KindFloat] for floating point value types,
// and [KindInt] for all integer value types.
func (cl *Number[T]) Kind() Kind {
	var v T
	switch any(v).(type) {
	case float64, float32:
		return KindFloat
	default:
		return KindInt
	}
}

func (cl *Number[T]) IsString() bool { return false }

func (cl *Number[T]) Len() int { return len(cl.Values) }

func (cl *Number[T]) SetNumRows(rows int) {
	cl.Values = slicesx.SetLength(cl.Values, rows)
}

func (cl *Number[T]) Float1D(i int) float64 { return float64(cl.Values[i]) }

func (cl *Number[T]) SetFloat1D(val float64, i int) { cl.Values[i] = T(val) }

func (cl *Number[T]) Int1D(i int) int { return int(cl.Values[i]) }

func (cl *Number[T]) SetInt1D(val int, i int) { cl.Values[i] = T(val) }

func (cl *Number[T]) String1D(i int) string {
	return strconv.FormatFloat(float64(cl.Values[i]), 'g', -1, 64)
}

func (cl *Number[T]) SetString1D(val string, i int) {
	if fv, err := strconv.ParseFloat(val, 64); err == nil {
		cl.Values[i] = T(fv)
	}
}

// Range returns the min and max values and their row indexes
// (-1 if there are no values). NaN values are skipped.
func (cl *Number[T]) Range() (min, max float64, minIndex, maxIndex int) {
	minIndex, maxIndex = -1, -1
	for i, vl := range cl.Values {
		v := float64(vl)
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
func (cl *Number[T]) Clone() Column {
	cp := NewNumber[T](len(cl.Values))
	copy(cp.Values, cl.Values)
	return cp
}

// CloneEmpty returns a new zero-valued column of the same kind
// as this column, with the given number of rows.
func (cl *Number[T]) CloneEmpty(rows int) Column {
	return NewNumber[T](rows)
}

// CopyRow copies the value at the given row of the from column
// into the given row of this column, converting kinds as needed.
func (cl *Number[T]) CopyRow(to int, from Column, fromRow int) {
	if fsm, ok := from.(*Number[T]); ok {
		cl.Values[to] = fsm.Values[fromRow]
		return
	}
	cl.Values[to] = T(from.Float1D(fromRow))
}

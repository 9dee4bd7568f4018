// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, KindInt, NewInt(3).Kind())
	assert.Equal(t, KindFloat, NewFloat64(3).Kind())
	assert.Equal(t, KindString, NewString(3).Kind())
	assert.False(t, NewInt(1).IsString())
	assert.True(t, NewString(1).IsString())
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "string", KindString.String())
}

func TestNewOfKind(t *testing.T) {
	for _, k := range []Kind{KindInt, KindFloat, KindString} {
		cl := NewOfKind(k, 5)
		assert.Equal(t, k, cl.Kind())
		assert.Equal(t, 5, cl.Len())
	}
	assert.Panics(t, func() { NewOfKind(KindN, 1) })
}

func TestRangeSkipsNaN(t *testing.T) {
	cl := NewFloat64FromValues(3, math.NaN(), -2, 7, math.NaN())
	mn, mx, mni, mxi := cl.Range()
	assert.Equal(t, -2.0, mn)
	assert.Equal(t, 7.0, mx)
	assert.Equal(t, 2, mni)
	assert.Equal(t, 3, mxi)
}

func TestRangeEmpty(t *testing.T) {
	cl := NewFloat64FromValues(math.NaN(), math.NaN())
	_, _, mni, mxi := cl.Range()
	assert.Equal(t, -1, mni)
	assert.Equal(t, -1, mxi)
}

func TestNumberAccess(t *testing.T) {
	cl := NewIntFromValues(1, 2, 3)
	assert.Equal(t, 2.0, cl.Float1D(1))
	cl.SetFloat1D(9.7, 0) // truncates toward zero
	assert.Equal(t, 9, cl.Int1D(0))
	cl.SetString1D("42", 2)
	assert.Equal(t, 42, cl.Int1D(2))
	assert.Equal(t, "42", cl.String1D(2))
}

func TestStringAccess(t *testing.T) {
	cl := NewStringFromValues("1.5", "abc")
	assert.Equal(t, 1.5, cl.Float1D(0))
	assert.True(t, math.IsNaN(cl.Float1D(1)))
	cl.SetFloat1D(2.5, 1)
	assert.Equal(t, "2.5", cl.String1D(1))
}

func TestCloneAndCopyRow(t *testing.T) {
	cl := NewIntFromValues(1, 2, 3)
	cp := cl.Clone()
	cp.SetInt1D(99, 0)
	assert.Equal(t, 1, cl.Int1D(0))

	fl := NewFloat64(3)
	fl.CopyRow(1, cl, 2) // cross-kind copy converts
	assert.Equal(t, 3.0, fl.Float1D(1))

	st := NewString(2)
	st.CopyRow(0, cl, 0)
	assert.Equal(t, "1", st.String1D(0))

	em := cl.CloneEmpty(4)
	assert.Equal(t, KindInt, em.Kind())
	assert.Equal(t, 4, em.Len())
	assert.Equal(t, 0, em.Int1D(0))
}

func TestSetNumRows(t *testing.T) {
	cl := NewIntFromValues(1, 2, 3)
	cl.SetNumRows(5)
	assert.Equal(t, 5, cl.Len())
	assert.Equal(t, 3, cl.Values[2])
	cl.SetNumRows(2)
	assert.Equal(t, 2, cl.Len())
}

// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyList(t *testing.T) {
	kl := New[string, int]()
	assert.NoError(t, kl.Add("a", 1))
	assert.NoError(t, kl.Add("b", 2))
	assert.Error(t, kl.Add("a", 3))
	assert.Equal(t, 2, kl.Len())
	assert.Equal(t, 1, kl.At("a"))
	assert.Equal(t, 0, kl.At("missing"))
	_, ok := kl.AtTry("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, kl.IndexByKey("b"))
	assert.Equal(t, -1, kl.IndexByKey("missing"))

	kl.Set("a", 9)
	assert.Equal(t, 9, kl.At("a"))
	assert.Equal(t, 2, kl.Len())

	kl.Set("c", 3)
	assert.Equal(t, []string{"a", "b", "c"}, kl.Keys)

	assert.True(t, kl.DeleteByKey("b"))
	assert.False(t, kl.DeleteByKey("b"))
	assert.Equal(t, []string{"a", "c"}, kl.Keys)
	assert.Equal(t, 1, kl.IndexByKey("c"))

	kl.RenameIndex(0, "z")
	assert.Equal(t, 9, kl.At("z"))
	assert.Equal(t, -1, kl.IndexByKey("a"))

	kl.Reset()
	assert.Equal(t, 0, kl.Len())
}

func TestKeyListCopy(t *testing.T) {
	src := New[string, int]()
	src.Add("a", 1)
	src.Add("b", 2)
	dst := New[string, int]()
	dst.Add("b", 99)
	dst.Copy(src)
	assert.Equal(t, 2, dst.At("b"))
	assert.Equal(t, 1, dst.At("a"))
}

func TestKeyListZeroValue(t *testing.T) {
	var kl List[string, int]
	kl.Set("a", 1)
	assert.Equal(t, 1, kl.At("a"))
}

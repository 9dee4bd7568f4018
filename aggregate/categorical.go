// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"sort"

	"github.com/exdata/exemplar/column"
)

// stringRanks returns, for each row, the rank of its value among the
// sorted distinct values of the given string column, along with the
// number of distinct values. Every distinct value is its own bucket:
// categorical columns are not subdivided by bin counts. The empty
// string is an ordinary category (it sorts first).
func stringRanks(cl column.Column) (ranks []int, ndistinct int) {
	n := cl.Len()
	vals := make([]string, n)
	rank := make(map[string]int, n)
	for i := 0; i < n; i++ {
		v := cl.String1D(i)
		vals[i] = v
		rank[v] = 0
	}
	distinct := make([]string, 0, len(rank))
	for v := range rank {
		distinct = append(distinct, v)
	}
	sort.Strings(distinct)
	for r, v := range distinct {
		rank[v] = r
	}
	ranks = make([]int, n)
	for i, v := range vals {
		ranks[i] = rank[v]
	}
	return ranks, len(distinct)
}

// rankKeys compacts sparse combined bucket keys into dense 0-based
// ids assigned in ascending key order, so that the id space is
// exactly {0 .. k-1} for k distinct keys.
func rankKeys(keys []int) []int {
	rank := make(map[int]int, len(keys))
	for _, k := range keys {
		rank[k] = 0
	}
	distinct := make([]int, 0, len(rank))
	for k := range rank {
		distinct = append(distinct, k)
	}
	sort.Ints(distinct)
	for r, k := range distinct {
		rank[k] = r
	}
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = rank[k]
	}
	return out
}

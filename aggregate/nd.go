// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/exdata/exemplar/base/randx"
)

// groupND handles more than two grouping columns: rows are min-max
// normalized into the unit hypercube (string columns contribute
// their normalized distinct rank), projected down to MaxDimensions
// dimensions through a seeded Gaussian random matrix when the column
// count exceeds that threshold, and then grouped by greedy
// radius-based exemplar discovery capped at NDBins exemplars.
func (ag *aggregator) groupND() []int {
	dt := ag.dt
	pr := ag.params
	n := dt.Rows
	d := dt.NumColumns()
	x := mat.NewDense(n, d, nil)
	for ci := 0; ci < d; ci++ {
		cl := dt.ColumnIndex(ci)
		if cl.IsString() {
			ranks, nd := stringRanks(cl)
			den := float64(max(nd-1, 1))
			for i := 0; i < n; i++ {
				x.Set(i, ci, float64(ranks[i])/den)
			}
			continue
		}
		mn, mx, _, _ := cl.Range()
		rng := mx - mn
		for i := 0; i < n; i++ {
			v := cl.Float1D(i)
			switch {
			case math.IsNaN(v):
				// missing values sit outside the unit interval,
				// so they group with each other rather than with data
				x.Set(i, ci, -1)
			case rng > 0:
				x.Set(i, ci, (v-mn)/rng)
			default:
				x.Set(i, ci, 0)
			}
		}
	}
	if d > pr.MaxDimensions {
		md := pr.MaxDimensions
		rnd := randx.NewSysRand(pr.Seed)
		prj := mat.NewDense(d, md, nil)
		sc := 1 / math.Sqrt(float64(md))
		for i := 0; i < d; i++ {
			for j := 0; j < md; j++ {
				prj.Set(i, j, rnd.NormFloat64()*sc)
			}
		}
		var y mat.Dense
		y.Mul(x, prj)
		x = &y
	}
	return greedyExemplars(x, pr.NDBins)
}

// greedyExemplars scans rows in order: a row within the current
// radius of an existing exemplar (first match in discovery order)
// joins it, and otherwise founds a new exemplar. Whenever the live
// exemplar count exceeds maxExemplars, the radius grows (seeded from
// the smallest pairwise exemplar distance, then doubling) and nearby
// exemplars merge until the cap is met. Ids are dense, 0-based, in
// first-seen order of the final merged exemplars.
func greedyExemplars(x *mat.Dense, maxExemplars int) []int {
	n, _ := x.Dims()
	var vecs [][]float64 // exemplar representative vectors
	var parent []int     // union-find over merged exemplars
	var live []int       // live exemplar indexes in discovery order
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	assigned := make([]int, n)
	radius2 := 0.0
	for i := 0; i < n; i++ {
		row := mat.Row(nil, i, x)
		idx := -1
		for _, e := range live {
			if dist2(row, vecs[e]) <= radius2 {
				idx = e
				break
			}
		}
		if idx < 0 {
			idx = len(vecs)
			vecs = append(vecs, row)
			parent = append(parent, idx)
			live = append(live, idx)
			if len(live) > maxExemplars {
				radius2, live = mergeExemplars(vecs, parent, live, radius2, maxExemplars)
			}
		}
		assigned[i] = idx
	}
	ids := make([]int, n)
	rootID := make(map[int]int, len(live))
	for i, a := range assigned {
		r := find(a)
		id, ok := rootID[r]
		if !ok {
			id = len(rootID)
			rootID[r] = id
		}
		ids[i] = id
	}
	return ids
}

// mergeExemplars grows the radius and merges live exemplars into the
// earliest surviving exemplar within the radius, repeating until the
// exemplar cap is met. Returns the new radius and surviving set.
func mergeExemplars(vecs [][]float64, parent, live []int, radius2 float64, maxExemplars int) (float64, []int) {
	for {
		if radius2 == 0 {
			radius2 = minPairwise2(vecs, live)
		} else {
			radius2 *= 2
		}
		var surv []int
		for _, e := range live {
			merged := false
			for _, s := range surv {
				if dist2(vecs[e], vecs[s]) <= radius2 {
					parent[e] = s
					merged = true
					break
				}
			}
			if !merged {
				surv = append(surv, e)
			}
		}
		live = surv
		if len(live) <= maxExemplars {
			return radius2, live
		}
	}
}

// minPairwise2 returns the smallest squared distance between any two
// live exemplars. It is positive: coincident rows always join an
// existing exemplar at radius 0 and never found a duplicate.
func minPairwise2(vecs [][]float64, live []int) float64 {
	md := math.MaxFloat64
	for i := 1; i < len(live); i++ {
		for j := 0; j < i; j++ {
			if d := dist2(vecs[live[i]], vecs[live[j]]); d < md {
				md = d
			}
		}
	}
	return md
}

// dist2 returns the squared Euclidean distance between two vectors.
func dist2(a, b []float64) float64 {
	ss := 0.0
	for i, av := range a {
		dv := av - b[i]
		ss += dv * dv
	}
	return ss
}

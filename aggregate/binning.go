// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"math"

	"github.com/exdata/exemplar/column"
)

// axis is the equal-width binning of one numeric column:
// bin = floor(bins * (v - min) / (max - min + epsilon)),
// clipped to [0, bins-1]. The epsilon in the denominator keeps the
// maximum value inside the last bin, and makes a constant column
// (max == min) collapse into bin 0 without a zero division.
type axis struct {
	min    float64
	factor float64
	bins   int
}

// newAxis computes the binning parameters for the given column,
// ignoring missing (NaN) values for the min/max range.
func newAxis(cl column.Column, bins int, epsilon float64) axis {
	mn, mx, mni, _ := cl.Range()
	if mni < 0 { // no values at all
		return axis{bins: bins}
	}
	return axis{min: mn, factor: float64(bins) / (mx - mn + epsilon), bins: bins}
}

// bin returns the bin for the given value, -1 for missing (NaN).
func (ax axis) bin(v float64) int {
	if math.IsNaN(v) {
		return -1
	}
	b := int(ax.factor * (v - ax.min))
	if b < 0 {
		b = 0
	} else if b >= ax.bins {
		b = ax.bins - 1
	}
	return b
}

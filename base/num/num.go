// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides generic constraints for numeric types.
package num

import "golang.org/x/exp/constraints"

// Number is any numeric type: any integer or floating point number.
type Number interface {
	constraints.Integer | constraints.Float
}

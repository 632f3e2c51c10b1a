// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package budgetrecord

import (
	"math"
	"math/bits"

	"github.com/bitmark-inc/budgetd/fault"
)

// CheckedAdd - a + b or MathOverflow
func CheckedAdd(a uint64, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if 0 != carry {
		return 0, fault.MathOverflow
	}
	return sum, nil
}

// CheckedMultiply - a * b or MathOverflow
func CheckedMultiply(a uint64, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if 0 != hi {
		return 0, fault.MathOverflow
	}
	return lo, nil
}

// CheckedIncrement32 - n + 1 or MathOverflow
func CheckedIncrement32(n uint32) (uint32, error) {
	if math.MaxUint32 == n {
		return 0, fault.MathOverflow
	}
	return n + 1, nil
}

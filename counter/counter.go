// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - concurrency safe count of open connections or events
// the zero value is ready to use
type Counter uint64

// Acquire - take one slot if fewer than limit are in use
//
// never moves the count above limit, even briefly
func (c *Counter) Acquire(limit uint64) bool {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if n >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n+1) {
			return true
		}
	}
}

// Release - return a slot taken by Acquire
func (c *Counter) Release() {
	atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Increment - add 1, returns the new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - true when nothing is counted
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}

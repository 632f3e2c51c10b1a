// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/fault"
)

// set of addresses held by in-flight transactions
type lockSet struct {
	sync.Mutex
	held map[address.Address]struct{}
}

func newLockSet() *lockSet {
	return &lockSet{
		held: make(map[address.Address]struct{}),
	}
}

// tryLock - take all the addresses or none of them
//
// duplicates in the list are allowed
func (s *lockSet) tryLock(addresses ...address.Address) (func(), error) {
	s.Lock()
	defer s.Unlock()

	for _, a := range addresses {
		if _, ok := s.held[a]; ok {
			return nil, fault.RecordInUse
		}
	}

	taken := make([]address.Address, 0, len(addresses))
	for _, a := range addresses {
		if _, ok := s.held[a]; ok {
			continue
		}
		s.held[a] = struct{}{}
		taken = append(taken, a)
	}

	return func() {
		s.Lock()
		for _, a := range taken {
			delete(s.held, a)
		}
		s.Unlock()
	}, nil
}

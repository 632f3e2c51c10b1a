// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/budgetd/messagebus"
)

func TestBroadcast(t *testing.T) {

	items := []messagebus.Message{
		{
			Command:    "budget",
			Parameters: [][]byte{{0x01}},
		},
		{
			Command:    "expense",
			Parameters: [][]byte{{0x02}},
		},
		{
			Command:    "spend",
			Parameters: [][]byte{{0x03}},
		},
	}

	// nothing listening so these messages should be dropped
	for _, item := range items {
		messagebus.Bus.Broadcast.Send("ignored:" + item.Command)
	}

	// allow background to run
	time.Sleep(20 * time.Millisecond)

	// create some listeners
	const listeners = 5

	var l [listeners]int
	var wg sync.WaitGroup

	queues := make([]<-chan messagebus.Message, listeners)
	for i := 0; i < listeners; i += 1 {
		queues[i] = messagebus.Bus.Broadcast.Chan(0)
	}

	for i := 0; i < listeners; i += 1 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for _, item := range items {
				received := <-queues[n]
				if received.Command != item.Command {
					t.Errorf("actual: %q  expected: %q", received.Command, item.Command)
				} else {
					l[n] += 1
				}
				assert.Equal(t, item.Parameters, received.Parameters, "parameters")
			}
		}(i)
	}

	// all listening so these messages should be received
	for _, item := range items {
		messagebus.Bus.Broadcast.Send(item.Command, item.Parameters...)
	}

	// wait for completion
	wg.Wait()
	for i, n := range l {
		if n != len(items) {
			t.Errorf("listener[%d] received: %d  expected: %d", i, n, len(items))
		}
	}

	messagebus.Bus.Broadcast.Release()
	for _, q := range queues {
		_, ok := <-q
		assert.False(t, ok, "channel still open after release")
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	queueSize    = 1000
	listenerSize = 100
)

// Message - a command and its binary parameters
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// BroadcastQueue - fan out to all current listeners
type BroadcastQueue struct {
	sync.RWMutex
	in  chan Message
	out []chan Message
}

type busses struct {
	Broadcast *BroadcastQueue
}

// Bus - all available queues
var Bus = busses{
	Broadcast: newBroadcastQueue(queueSize),
}

func newBroadcastQueue(size int) *BroadcastQueue {
	q := &BroadcastQueue{
		in: make(chan Message, size),
	}
	go q.run()
	return q
}

// Send - queue a message for all listeners
//
// messages are dropped if nothing is listening
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {

	// copy the parameters as the caller may reuse its buffers
	p := make([][]byte, len(parameters))
	for i, item := range parameters {
		p[i] = make([]byte, len(item))
		copy(p[i], item)
	}

	queue.in <- Message{
		Command:    command,
		Parameters: p,
	}
}

// Chan - a new listener channel
//
// size zero selects a default buffer size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = listenerSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.out = append(queue.out, c)
	queue.Unlock()

	return c
}

// Release - close and remove all listeners
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	for _, c := range queue.out {
		close(c)
	}
	queue.out = nil
	queue.Unlock()
}

// distribute messages; a full listener misses the message rather
// than blocking the others
func (queue *BroadcastQueue) run() {
	for item := range queue.in {
		queue.RLock()
		for _, c := range queue.out {
			select {
			case c <- item:
			default:
			}
		}
		queue.RUnlock()
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/budgetd/fault"
)

// Subscriber - curve client side of a broadcast
type Subscriber struct {
	socket *zmq.Socket
}

// NewSubscriber - connect to a publisher and subscribe to the topics
//
// no topics subscribes to everything
func NewSubscriber(privateKey []byte, publicKey []byte, serverPublicKey []byte, connect string, timeout time.Duration, topics ...string) (*Subscriber, error) {

	if publicLength != len(publicKey) || publicLength != len(serverPublicKey) {
		return nil, fault.InvalidPublicKeyFile
	}
	if privateLength != len(privateKey) {
		return nil, fault.InvalidPrivateKeyFile
	}

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return nil, err
	}

	// raw 32 byte keys
	err = socket.SetCurveServerkey(string(serverPublicKey))
	if nil != err {
		goto fail
	}
	err = socket.SetCurvePublickey(string(publicKey))
	if nil != err {
		goto fail
	}
	err = socket.SetCurveSecretkey(string(privateKey))
	if nil != err {
		goto fail
	}
	err = socket.SetRcvtimeo(timeout)
	if nil != err {
		goto fail
	}
	err = socket.SetLinger(0)
	if nil != err {
		goto fail
	}

	if 0 == len(topics) {
		topics = []string{""}
	}
	for _, topic := range topics {
		err = socket.SetSubscribe(topic)
		if nil != err {
			goto fail
		}
	}

	err = socket.Connect(connect)
	if nil != err {
		goto fail
	}

	return &Subscriber{socket: socket}, nil

fail:
	socket.Close()
	return nil, err
}

// Receive - wait for the next message: topic then parameters
func (s *Subscriber) Receive() (string, [][]byte, error) {
	data, err := s.socket.RecvMessageBytes(0)
	if nil != err {
		return "", nil, err
	}
	if len(data) < 1 {
		return "", nil, fault.MissingParameters
	}
	return string(data[0]), data[1:], nil
}

// Close - disconnect
func (s *Subscriber) Close() error {
	return s.socket.Close()
}

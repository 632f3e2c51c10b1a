// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/budgetd/messagebus"
	"github.com/bitmark-inc/budgetd/zmqutil"
)

const (
	heartbeatTopic    = "heart"
	heartbeatInterval = 60 * time.Second
	zapDomain         = "publish"
)

type broadcaster struct {
	log     *logger.L
	queue   <-chan messagebus.Message
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	version string
}

func (brdc *broadcaster) initialise(log *logger.L, privateKey []byte, publicKey []byte, broadcast []string, queue <-chan messagebus.Message, version string) error {

	brdc.log = log
	brdc.queue = queue
	brdc.version = version

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, zapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}
	brdc.socket4 = socket4
	brdc.socket6 = socket6

	return nil
}

// Run - forward bus messages to subscribers
//
// each record goes out as a multipart message: topic then parameters
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log
	log.Info("starting…")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	sequence := uint64(0)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			log.Debugf("topic: %s", item.Command)
			brdc.send(item.Command, item.Parameters...)

		case <-heartbeat.C:
			sequence += 1
			s := make([]byte, 8)
			binary.BigEndian.PutUint64(s, sequence)
			brdc.send(heartbeatTopic, []byte(brdc.version), s)
		}
	}

	log.Info("shutting down…")
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

func (brdc *broadcaster) send(topic string, parameters ...[]byte) {
	parts := make([]interface{}, 0, len(parameters)+1)
	parts = append(parts, topic)
	for _, p := range parameters {
		parts = append(parts, p)
	}

	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		_, err := socket.SendMessage(parts...)
		if nil != err {
			brdc.log.Errorf("send topic: %s  error: %s", topic, err)
		}
	}
}

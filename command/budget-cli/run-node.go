// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"syscall"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/budgetd/command/budget-cli/configuration"
	"github.com/bitmark-inc/budgetd/transactionrecord"
	"github.com/bitmark-inc/budgetd/zmqutil"
)

const (
	heartbeatTopic  = "heart"
	receiveTimeout  = 120 * time.Second
	curveKeyLength  = 32
	maximumHexBytes = 8192
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return err
	}

	printJson(m.w, info)
	return nil
}

func runSubmit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := strings.TrimSpace(c.String("record"))
	if "" == s || len(s) > maximumHexBytes {
		return ErrRequiredRecord
	}
	packed, err := hex.DecodeString(s)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Submit(packed)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

// fetch the publisher key from the node and remember where to connect
func runPublisher(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return err
	}
	if "" == info.PublicKey {
		return ErrRequiredPublisher
	}

	m.config.Publisher = configuration.Publisher{
		Connect:   connect,
		PublicKey: info.PublicKey,
	}
	m.save = true

	printJson(m.w, m.config.Publisher)
	return nil
}

// ListenItem - one record received from the publisher
type ListenItem struct {
	Topic string                        `json:"topic"`
	TxId  transactionrecord.TxId        `json:"txId"`
	Item  transactionrecord.Transaction `json:"item"`
}

func runListen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publisher := m.config.Publisher
	if "" == publisher.Connect || "" == publisher.PublicKey {
		return ErrRequiredPublisher
	}

	serverPublicKey, err := hex.DecodeString(publisher.PublicKey)
	if nil != err {
		return err
	}

	// an ephemeral client key, the publisher accepts any
	z85Public, z85Private, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}
	publicKey := []byte(zmq.Z85decode(z85Public))
	privateKey := []byte(zmq.Z85decode(z85Private))
	if curveKeyLength != len(publicKey) || curveKeyLength != len(privateKey) {
		return fmt.Errorf("curve key generation failed")
	}

	subscriber, err := zmqutil.NewSubscriber(privateKey, publicKey, serverPublicKey, publisher.Connect, receiveTimeout, c.StringSlice("topic")...)
	if nil != err {
		return err
	}
	defer subscriber.Close()

	limit := c.Int("count")
	for n := 0; 0 == limit || n < limit; {
		topic, parameters, err := subscriber.Receive()
		if nil != err {
			if zmq.Errno(syscall.EAGAIN) == zmq.AsErrno(err) {
				if m.verbose {
					fmt.Fprintf(m.e, "no message in: %s\n", receiveTimeout)
				}
				continue
			}
			return err
		}

		if heartbeatTopic == topic {
			if m.verbose && len(parameters) > 0 {
				fmt.Fprintf(m.e, "heartbeat from: %s\n", parameters[0])
			}
			continue
		}
		if len(parameters) < 1 {
			continue
		}

		packed := transactionrecord.Packed(parameters[0])
		item, _, err := packed.Unpack(m.testnet)
		if nil != err {
			fmt.Fprintf(m.e, "topic: %s  unpack error: %s\n", topic, err)
			continue
		}

		printJson(m.w, ListenItem{
			Topic: topic,
			TxId:  packed.MakeTxId(),
			Item:  item,
		})
		n += 1
	}
	return nil
}

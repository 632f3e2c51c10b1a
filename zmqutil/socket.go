// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/budgetd/util"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

var authStart sync.Once

// StartAuthentication - the ZAP handler runs once per process and is
// shared by every curve socket
func StartAuthentication() error {
	var err error
	authStart.Do(func() {
		zmq.AuthSetVerbose(false)
		err = zmq.AuthStart()
	})
	return err
}

// NewBind - bind a list of host:port addresses
//
// creates up to 2 sockets for separate IPv4 and IPv6 traffic
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, *zmq.Socket, error) {

	socket4 := (*zmq.Socket)(nil)
	socket6 := (*zmq.Socket)(nil)

	fail := func(err error) (*zmq.Socket, *zmq.Socket, error) {
		if nil != socket4 {
			socket4.Close()
		}
		if nil != socket6 {
			socket6.Close()
		}
		return nil, nil, err
	}

	for i, hostPort := range listen {
		canonical, err := util.CanonicalIPandPort(hostPort)
		if nil != err {
			log.Errorf("invalid bind[%d]: %q  error: %s", i, hostPort, err)
			return fail(err)
		}

		for _, address := range canonical {
			v6 := strings.HasPrefix(address, "[")

			socket := socket4
			if v6 {
				socket = socket6
			}
			if nil == socket {
				socket, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
				if nil != err {
					return fail(err)
				}
				if v6 {
					socket6 = socket
				} else {
					socket4 = socket
				}
			}

			bindTo := "tcp://" + address
			err = socket.Bind(bindTo)
			if nil != err {
				log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
				return fail(err)
			}
			log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
		}
	}
	return socket4, socket6, nil
}

// NewServerSocket - a curve server socket accepting any client key
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	err = socket.SetCurveServer(1)
	if nil != err {
		goto fail
	}
	err = socket.SetCurveSecretkey(string(privateKey))
	if nil != err {
		goto fail
	}
	err = socket.SetZapDomain(zapDomain)
	if nil != err {
		goto fail
	}

	// public key as identity
	err = socket.SetIdentity(string(publicKey))
	if nil != err {
		goto fail
	}
	err = socket.SetIpv6(v6)
	if nil != err {
		goto fail
	}
	err = socket.SetLinger(0)
	if nil != err {
		goto fail
	}

	socket.SetHeartbeatIvl(heartbeatInterval)
	socket.SetHeartbeatTimeout(heartbeatTimeout)
	socket.SetHeartbeatTtl(heartbeatTTL)

	return socket, nil

fail:
	socket.Close()
	return nil, err
}

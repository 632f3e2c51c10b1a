// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/rpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/budgetd/counter"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/rpc/certificate"
	"github.com/bitmark-inc/budgetd/rpc/handler"
	"github.com/bitmark-inc/budgetd/rpc/listeners"
	"github.com/bitmark-inc/budgetd/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connection counts
var connectionCountRPC counter.Counter

// Initialise - start the TLS JSON RPC and the HTTPS servers
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, parameters *server.Parameters) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if nil == parameters.Count {
		parameters.Count = &connectionCountRPC
	}
	s := server.Create(log, parameters)

	tlsConfig, fingerprint, err := certificate.Read(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		parameters.Count,
		s,
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if 0 != len(httpsConfiguration.Listen) {
		httpsListener, err := initialiseHTTPS(log, httpsConfiguration, parameters, s)
		if nil != err {
			stopAll()
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	} else {
		log.Infof("disable: %s", httpsName)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

func initialiseHTTPS(log *logger.L, configuration *listeners.HTTPSConfiguration, parameters *server.Parameters, s *rpc.Server) (listeners.Listener, error) {
	tlsConfig, _, err := certificate.Read(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}

	h := handler.New(
		log,
		s,
		parameters.Ledger,
		parameters.Chain,
		time.Now(),
		parameters.Version,
		configuration.MaximumConnections,
	)

	l, err := listeners.NewHTTPS(configuration, log, tlsConfig, h)
	if nil != err {
		return nil, err
	}

	err = l.Serve()
	if nil != err {
		l.Stop()
		return nil, err
	}
	return l, nil
}

// called with lock held
func stopAll() {
	for _, l := range globalData.listeners {
		l.Stop()
	}
	globalData.listeners = nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	stopAll()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

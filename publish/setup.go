// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/budgetd/background"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/messagebus"
	"github.com/bitmark-inc/budgetd/zmqutil"
)

// Configuration - publishing block of the configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background proccess
type publishData struct {
	sync.RWMutex

	log *logger.L

	brdc broadcaster

	publicKey []byte

	background *background.T

	// set once during initialise
	initialised bool
}

var globalData publishData

// Initialise - bind the broadcast sockets and start forwarding
// committed records
func Initialise(configuration *Configuration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Info("no broadcast addresses: publishing disabled")
		globalData.initialised = true
		return nil
	}

	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return err
	}
	globalData.log.Tracef("public key: %x", publicKey)

	globalData.publicKey = publicKey

	err = zmqutil.StartAuthentication()
	if nil != err {
		return err
	}

	// listen before the first record can be committed
	queue := messagebus.Bus.Broadcast.Chan(0)

	err = globalData.brdc.initialise(globalData.log, privateKey, publicKey, configuration.Broadcast, queue, version)
	if nil != err {
		return err
	}

	globalData.initialised = true

	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}
	globalData.background = background.Start(processes, nil)

	return nil
}

// PublicKey - the curve key subscribers must use, nil if disabled
func PublicKey() []byte {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.publicKey
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

	if nil != globalData.background {
		globalData.background.Stop()
		globalData.background = nil
	}

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/budgetd/rpc/certificate"
)

// LogCategory - logger channel for rpc tests
const LogCategory = "testing"

var directory string

// SetupTestLogger - file logger in a fresh temporary directory
func SetupTestLogger() {
	dir, err := ioutil.TempDir("", "budgetd-rpc-")
	if nil != err {
		panic(err)
	}
	directory = dir

	config := logger.Configuration{
		Directory: directory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(config)
}

// TeardownTestLogger - stop the logger and remove its directory
func TeardownTestLogger() {
	logger.Finalise()
	_ = os.RemoveAll(directory)
}

// Directory - the current temporary directory
func Directory() string {
	return directory
}

// Certificate - a fresh self-signed PEM certificate and key
func Certificate(t *testing.T) (string, string) {
	cer, key, err := certificate.NewPair("testing", []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	return string(cer), string(key)
}

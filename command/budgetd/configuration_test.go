// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/chain"
	"github.com/bitmark-inc/budgetd/token"
)

func writeConfiguration(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "budgetd-config-")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "budgetd.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() {
		_ = os.RemoveAll(dir)
	}
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = arg["chain"]
M.settlement_unit = arg["unit"]
return M
`)
	defer cleanup()

	c, err := getConfiguration(fileName, map[string]string{
		"chain": "Testing",
		"unit":  token.ProgramId.String(),
	})
	assert.Nil(t, err, "wrong error")

	dir := filepath.Dir(fileName)
	assert.Equal(t, chain.Testing, c.Chain, "wrong chain")
	assert.Equal(t, filepath.Join(dir, "data", "testing.leveldb"), c.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, filepath.Join(dir, "publish.private"), c.Publishing.PrivateKey, "wrong publish key")
	assert.Equal(t, token.MetadataProgramId, c.metadataProgram, "wrong metadata program")
	assert.Equal(t, token.ProgramId, c.settlementUnit, "wrong settlement unit")
	assert.False(t, c.ReadOnly, "wrong read only")

	_, err = os.Stat(filepath.Join(dir, "log"))
	assert.Nil(t, err, "log directory not created")
}

func TestGetConfigurationSettings(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "local"
M.read_only = true
M.pidfile = "budgetd.pid"
M.settlement_unit = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
M.client_rpc = {
    maximum_connections = 7,
    listen = { "127.0.0.1:2130" },
}
M.https_rpc = {
    maximum_connections = 3,
    listen = { "127.0.0.1:2131" },
    allow = { details = { "127.0.0.0/8" } },
}
return M
`)
	defer cleanup()

	c, err := getConfiguration(fileName, nil)
	assert.Nil(t, err, "wrong error")

	dir := filepath.Dir(fileName)
	assert.True(t, c.ReadOnly, "wrong read only")
	assert.Equal(t, filepath.Join(dir, "budgetd.pid"), c.PidFile, "wrong pid file")
	assert.Equal(t, token.ProgramId, c.settlementUnit, "wrong settlement unit")
	assert.Equal(t, uint64(7), c.ClientRPC.MaximumConnections, "wrong rpc connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, c.ClientRPC.Listen, "wrong rpc listen")
	assert.Equal(t, []string{"127.0.0.0/8"}, c.HttpsRPC.Allow["details"], "wrong allow")
	assert.Equal(t, filepath.Join(dir, "data", "local.leveldb"), c.Database.Name, "wrong database")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []string{
		`return { data_directory = ".", chain = "nowhere" }`,
		`return { chain = "local" }`,
		`return { data_directory = ".", metadata_program = "nothing" }`,
		`return { data_directory = ".", settlement_unit = "short" }`,
		`return { data_directory = ".", settlement_unit = "" }`,
		`return { data_directory = ".", database = { name = "a/b.leveldb" } }`,
	}

	for i, text := range items {
		fileName, cleanup := writeConfiguration(t, text)
		_, err := getConfiguration(fileName, nil)
		assert.NotNil(t, err, "%d: expected error", i)
		cleanup()
	}
}

func TestGetConfigurationSettlementUnit(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { data_directory = "." }`)
	defer cleanup()

	_, err := getConfiguration(fileName, nil)
	assert.NotNil(t, err, "writable node without settlement unit")

	readOnly, cleanupReadOnly := writeConfiguration(t, `return { data_directory = ".", read_only = true }`)
	defer cleanupReadOnly()

	c, err := getConfiguration(readOnly, nil)
	assert.Nil(t, err, "read only node")
	assert.Equal(t, address.Nil, c.settlementUnit, "wrong settlement unit")
}

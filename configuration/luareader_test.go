// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/budgetd/configuration"
	"github.com/bitmark-inc/budgetd/fault"
)

type databaseBlock struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type sample struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	Database      databaseBlock     `gluamapper:"database"`
	Listen        []string          `gluamapper:"listen"`
	Levels        map[string]string `gluamapper:"levels"`
}

const script = `
local M = {}
M.data_directory = arg[0]:match("(.*/)")
M.chain = arg["chain"] or "budget"
M.database = {
    directory = "data",
    name = "budget.leveldb",
}
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.levels = { main = "info", ledger = "debug" }
return M
`

func writeScript(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "budgetd-config-")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "budgetd.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeScript(t, script)
	defer cleanup()

	options := &sample{}
	err := configuration.ParseConfigurationFile(fileName, options, map[string]string{"chain": "testing"})
	assert.Nil(t, err, "parse")

	assert.Equal(t, filepath.Dir(fileName)+"/", options.DataDirectory, "wrong data directory")
	assert.Equal(t, "testing", options.Chain, "variable not passed")
	assert.Equal(t, "budget.leveldb", options.Database.Name, "wrong database name")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, options.Listen, "wrong listen")
	assert.Equal(t, "debug", options.Levels["ledger"], "wrong level")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	fileName, cleanup := writeScript(t, "return 42\n")
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, &sample{}, nil)
	assert.Equal(t, fault.MissingParameters, err, "non table result")

	err = configuration.ParseConfigurationFile(fileName, sample{}, nil)
	assert.Equal(t, fault.InvalidStructPointer, err, "non pointer")

	broken, cleanupBroken := writeScript(t, "return {\n")
	defer cleanupBroken()
	err = configuration.ParseConfigurationFile(broken, &sample{}, nil)
	assert.NotNil(t, err, "syntax error accepted")
}

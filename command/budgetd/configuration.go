// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/chain"
	"github.com/bitmark-inc/budgetd/configuration"
	"github.com/bitmark-inc/budgetd/publish"
	"github.com/bitmark-inc/budgetd/rpc/listeners"
	"github.com/bitmark-inc/budgetd/token"
	"github.com/bitmark-inc/budgetd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublishPublicKeyFile  = "publish.public"
	defaultPublishPrivateKeyFile = "publish.private"
	defaultKeyFile               = "rpc.key"
	defaultCertificateFile       = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultBudgetDatabase   = chain.Budget + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "budgetd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB store
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory   string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile         string       `gluamapper:"pidfile" json:"pidfile"`
	Chain           string       `gluamapper:"chain" json:"chain"`
	ReadOnly        bool         `gluamapper:"read_only" json:"read_only"`
	Database        DatabaseType `gluamapper:"database" json:"database"`
	MetadataProgram string       `gluamapper:"metadata_program" json:"metadata_program"`
	SettlementUnit  string       `gluamapper:"settlement_unit" json:"settlement_unit"`

	ClientRPC  listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC   listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Publishing publish.Configuration        `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration         `gluamapper:"logging" json:"logging"`

	// decoded from the text fields above
	metadataProgram address.Address
	settlementUnit  address.Address
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:   defaultDataDirectory,
		PidFile:         "", // no PidFile by default
		Chain:           chain.Budget,
		MetadataProgram: token.MetadataProgramId.String(),

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultBudgetDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share config with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublishPublicKeyFile,
			PrivateKey: defaultPublishPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultBudgetDatabase {
		switch options.Chain {
		case chain.Budget:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("Chain: %s no default database setting", options.Chain)
		}
	}

	// program and unit addresses
	options.metadataProgram, err = address.FromBase58(options.MetadataProgram)
	if nil != err {
		return nil, fmt.Errorf("metadata_program: %q  error: %s", options.MetadataProgram, err)
	}
	// spends settle in this unit so a writable node must have one
	if "" == options.SettlementUnit {
		if !options.ReadOnly {
			return nil, fmt.Errorf("settlement_unit: is required unless read_only is set")
		}
	} else {
		options.settlementUnit, err = address.FromBase58(options.SettlementUnit)
		if nil != err {
			return nil, fmt.Errorf("settlement_unit: %q  error: %s", options.SettlementUnit, err)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

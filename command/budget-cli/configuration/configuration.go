// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `toml:"default_identity"`
	TestNet         bool                `toml:"testnet"`
	Connect         string              `toml:"connect"`
	Publisher       Publisher           `toml:"publisher"`
	Identities      map[string]Identity `toml:"identities"`
}

// Publisher - optional ZeroMQ subscription for the listen command
type Publisher struct {
	Connect   string `toml:"connect"`
	PublicKey string `toml:"public_key"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string `toml:"description"`
	Account     string `toml:"account"`
	Data        string `toml:"data"`
	Salt        string `toml:"salt"`
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	options := &Configuration{}
	_, err = toml.DecodeFile(filename, options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Save - write the configuration, keeping one backup
func Save(filename string, configuration *Configuration) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	_ = os.Remove(tempFile)

	file, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		return err
	}

	err = toml.NewEncoder(file).Encode(configuration)
	if nil != err {
		_ = file.Close()
		return err
	}
	err = file.Close()
	if nil != err {
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(filename, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.IdentityNameNotFound
	}

	return &id, nil
}

// Account - find identity for a given name and convert to an account
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return account.FromBase58(id.Account)
}

// Private - find identity decrypt all data for a given name
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity
func (config *Configuration) AddIdentity(name string, description string, seed string, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}

	private, err := account.PrivateKeyFromSeed(seed)
	if nil != err {
		return err
	}
	if private.IsTesting() != config.TestNet {
		return fault.WrongNetworkForPublicKey
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(seed, secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     private.Account().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}

	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}

	_, err := account.FromBase58(acc)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
	}

	return nil
}

// ChangePassword - re-encrypt an identity under a new password
func (config *Configuration) ChangePassword(name string, oldPassword string, newPassword string) error {
	private, err := config.Private(oldPassword, name)
	if nil != err {
		return err
	}

	id := config.Identities[name]
	salt, secretKey, err := hashPassword(newPassword)
	if nil != err {
		return err
	}
	encrypted, err := encryptData(private.Seed, secretKey)
	if nil != err {
		return err
	}
	id.Data = encrypted
	id.Salt = salt.String()
	config.Identities[name] = id
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/util"
)

const validity = 10 * 365 * 24 * time.Hour

// Get - check a PEM certificate and key pair and return the TLS
// configuration and certificate fingerprint
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Read - load the PEM files then Get
func Read(log *logger.L, name, certificateFileName, keyFileName string) (*tls.Config, [32]byte, error) {
	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		log.Errorf("%s certificate: %q  error: %s", name, certificateFileName, err)
		return nil, [32]byte{}, err
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		log.Errorf("%s private key: %q  error: %s", name, keyFileName, err)
		return nil, [32]byte{}, err
	}
	return Get(log, name, string(certificate), string(key))
}

// NewPair - create a self-signed PEM certificate and key
func NewPair(name string, extraHosts []string) ([]byte, []byte, error) {
	org := "budgetd self signed cert for: " + name
	return certgen.NewTLSCertPair(org, time.Now().Add(validity), false, extraHosts)
}

// MakeSelfSigned - write a new self-signed pair, never overwrites
func MakeSelfSigned(name string, certificateFileName string, keyFileName string, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return fault.CertificateFileAlreadyExists
	}
	if util.EnsureFileExists(keyFileName) {
		return fault.KeyFileAlreadyExists
	}

	certificate, key, err := NewPair(name, extraHosts)
	if nil != err {
		return err
	}

	err = ioutil.WriteFile(certificateFileName, certificate, 0666)
	if nil != err {
		return err
	}
	err = ioutil.WriteFile(keyFileName, key, 0600)
	if nil != err {
		_ = os.Remove(certificateFileName)
		return err
	}
	return nil
}

// Fingerprint - SHA3-256 of the DER certificate
//
// openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitmark-inc/budgetd/fault"
)

// CanonicalIPandPort - make the IP:Port canonical
//
// a "*" host expands to the IPv4 and IPv6 wildcard addresses
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
func CanonicalIPandPort(hostPort string) ([]string, error) {

	host, port, err := net.SplitHostPort(strings.TrimSpace(hostPort))
	if nil != err {
		return nil, fault.InvalidIPAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return nil, fault.InvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}
	p := strconv.Itoa(numericPort)

	host = strings.TrimSpace(host)
	if "*" == host {
		return []string{"0.0.0.0:" + p, "[::]:" + p}, nil
	}

	IP := net.ParseIP(host)
	if nil == IP {
		return nil, fault.InvalidIPAddress
	}

	if nil != IP.To4() {
		return []string{IP.String() + ":" + p}, nil
	}
	return []string{"[" + IP.String() + "]:" + p}, nil
}

// EnsureAbsolute - resolve a relative path against a directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true if anything exists at the path
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	testnet bool
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a budgetd
func NewClient(testnet bool, connect string, verbose bool, handle io.Writer) (*Client, error) {

	// budgetd certificates are self-signed
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		testnet: testnet,
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the budgetd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// call with optional request/reply tracing
func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	client.printJson(method+" Request", arguments)

	err := client.client.Call(method, arguments, reply)
	if nil != err {
		return err
	}

	client.printJson(method+" Reply", reply)
	return nil
}

func (client *Client) printJson(title string, message interface{}) error {

	if !client.verbose {
		return nil
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	if "" == title {
		fmt.Fprintf(client.handle, "%s\n", b)
	} else {
		fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
	}
	return nil
}

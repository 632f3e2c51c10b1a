// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/rpc/handler"
)

const (
	httpsLogName     = "https_rpc"
	readWriteTimeout = 10 * time.Second
	shutdownTimeout  = 5 * time.Second
	keepAlivePeriod  = 3 * time.Minute
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	sync.Mutex
	log             *logger.L
	listenIPAndPort []string
	tlsConfig       *tls.Config
	handler         http.Handler
	servers         []*http.Server
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if nil != err {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(keepAlivePeriod)
	return tc, nil
}

// NewHTTPS - the HTTPS JSON RPC and query server
//
// returns a nil listener when no listen addresses are configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	// create access control and format strings to match http.Request.RemoteAddr
	local := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				log.Errorf("invalid %s allow: %q  error: %s", httpsLogName, ip, err)
				return nil, err
			}
			set[i] = cidr
		}
	}
	hdlr.SetAllow(local)

	return &httpsListener{
		log:             log,
		listenIPAndPort: configuration.Listen,
		tlsConfig:       tlsConfig,
		handler:         hdlr.Router(),
	}, nil
}

// Serve - start one server per listen address
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for _, listen := range h.listenIPAndPort {
		h.log.Infof("starting server: %s on: %q", httpsLogName, listen)
		if '*' == listen[0] {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			listen = "[::]" + ":" + strings.Split(listen, ":")[1]
		}

		ln, err := net.Listen("tcp", listen)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			return err
		}

		s := &http.Server{
			Addr:           listen,
			Handler:        h.handler,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)

		cfg := h.tlsConfig.Clone()
		cfg.NextProtos = []string{"http/1.1"}
		tlsListener := tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, cfg)

		go func() {
			err := s.Serve(tlsListener)
			h.log.Infof("%s on: %q stopped: %s", httpsLogName, s.Addr, err)
		}()
	}

	return nil
}

// Stop - shut down all servers
func (h *httpsListener) Stop() {
	h.Lock()
	defer h.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, s := range h.servers {
		_ = s.Shutdown(ctx)
	}
	h.servers = nil
}

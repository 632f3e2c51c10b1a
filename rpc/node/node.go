// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/counter"
	"github.com/bitmark-inc/budgetd/ledger"
	"github.com/bitmark-inc/budgetd/rpc/ratelimit"
	"github.com/bitmark-inc/budgetd/token"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Chain     string
	Ledger    ledger.Handle
	PublicKey func() []byte
	counter   *counter.Counter
}

// New - create a node RPC handler
//
// publicKey returns the publisher's curve key
func New(log *logger.L, start time.Time, version string, chain string, l ledger.Handle, counter *counter.Counter, publicKey func() []byte) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		Chain:     chain,
		Ledger:    l,
		PublicKey: publicKey,
		counter:   counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// Programs - fixed program identities
type Programs struct {
	Budget   address.Address `json:"budget"`
	Token    address.Address `json:"token"`
	Metadata address.Address `json:"metadata"`
}

// InfoReply - results from info request
type InfoReply struct {
	Chain          string          `json:"chain"`
	Testing        bool            `json:"testing"`
	RPCs           uint64          `json:"rpcs"`
	Version        string          `json:"version"`
	Uptime         string          `json:"uptime"`
	PublicKey      string          `json:"publicKey"`
	SettlementUnit address.Address `json:"settlementUnit"`
	Programs       Programs        `json:"programs"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.Testing = node.Ledger.IsTesting()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.SettlementUnit = node.Ledger.SettlementUnit()
	reply.Programs = Programs{
		Budget:   budgetrecord.ProgramId,
		Token:    token.ProgramId,
		Metadata: token.MetadataProgramId,
	}
	if nil != node.PublicKey {
		reply.PublicKey = hex.EncodeToString(node.PublicKey())
	}
	return nil
}

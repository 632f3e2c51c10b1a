// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/gorilla/mux"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/counter"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/ledger"
)

// paths
const (
	prefix = "/budgetd"

	detailsKey = "details"
)

// Handler - HTTPS entry points
type Handler interface {
	Router() *mux.Router
	SetAllow(map[string][]*net.IPNet)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Budget(http.ResponseWriter, *http.Request)
	Expenses(http.ResponseWriter, *http.Request)
	Expense(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	ledger             ledger.Handle
	chain              string
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	count              counter.Counter
	maximumConnections uint64
}

// New - create the HTTPS handlers
func New(log *logger.L, server *rpc.Server, l ledger.Handle, chain string, start time.Time, version string, maximumConnections uint64) Handler {
	return &handler{
		log:                log,
		server:             server,
		ledger:             l,
		chain:              chain,
		start:              start,
		version:            version,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
	}
}

// Router - all routes
func (h *handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc(prefix+"/rpc", h.RPC)
	r.HandleFunc(prefix+"/details", h.Details)
	r.HandleFunc(prefix+"/budgets/{address}", h.Budget)
	r.HandleFunc(prefix+"/budgets/{address}/expenses", h.Expenses)
	r.HandleFunc(prefix+"/expenses/{address}", h.Expense)
	r.NotFoundHandler = http.HandlerFunc(h.Root)
	return r
}

// SetAllow - CIDR lists per restricted path
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// Root - this matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (int, error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (int, error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

// RPC - one JSON RPC call per POST
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.enter() {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	codec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	err := h.server.ServeRequest(codec)
	if nil != err {
		h.log.Warnf("rpc from: %q  error: %s", r.RemoteAddr, err)
		sendInternalServerError(w)
		return
	}
}

// Details - node summary for allowed addresses
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.allowed(detailsKey, r.RemoteAddr) {
		h.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}
	if !h.enter() {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	type theReply struct {
		Chain          string          `json:"chain"`
		Testing        bool            `json:"testing"`
		Connections    uint64          `json:"connections"`
		SettlementUnit address.Address `json:"settlementUnit"`
		Version        string          `json:"version"`
		Uptime         string          `json:"uptime"`
	}

	sendReply(w, theReply{
		Chain:          h.chain,
		Testing:        h.ledger.IsTesting(),
		Connections:    h.count.Uint64(),
		SettlementUnit: h.ledger.SettlementUnit(),
		Version:        h.version,
		Uptime:         time.Since(h.start).String(),
	})
}

// Budget - GET one budget
func (h *handler) Budget(w http.ResponseWriter, r *http.Request) {
	a, ok := h.query(w, r)
	if !ok {
		return
	}
	defer h.count.Release()

	budget, err := h.ledger.GetBudget(a)
	if nil != err {
		sendFault(w, err)
		return
	}
	sendReply(w, budget)
}

// Expenses - GET a page of a budget's expenses
//
// query parameters: start (ordinal), count
func (h *handler) Expenses(w http.ResponseWriter, r *http.Request) {
	a, ok := h.query(w, r)
	if !ok {
		return
	}
	defer h.count.Release()

	start := uint64(0)
	count := ledger.MaximumListCount
	values := r.URL.Query()

	if s := values.Get("start"); "" != s {
		n, err := strconv.ParseUint(s, 10, 32)
		if nil != err {
			sendFault(w, fault.InvalidCursor)
			return
		}
		start = n
	}
	if s := values.Get("count"); "" != s {
		n, err := strconv.Atoi(s)
		if nil != err || n <= 0 || n > ledger.MaximumListCount {
			sendFault(w, fault.InvalidCount)
			return
		}
		count = n
	}

	items, nextStart, err := h.ledger.ListExpenses(a, uint32(start), count)
	if nil != err {
		sendFault(w, err)
		return
	}

	type theReply struct {
		Expenses  []ledger.ExpenseItem `json:"expenses"`
		NextStart uint32               `json:"nextStart"`
	}
	sendReply(w, theReply{
		Expenses:  items,
		NextStart: nextStart,
	})
}

// Expense - GET one expense
func (h *handler) Expense(w http.ResponseWriter, r *http.Request) {
	a, ok := h.query(w, r)
	if !ok {
		return
	}
	defer h.count.Release()

	expense, err := h.ledger.GetExpense(a)
	if nil != err {
		sendFault(w, err)
		return
	}
	sendReply(w, expense)
}

// common checks for the address queries, on success the caller must
// decrement the connection count
func (h *handler) query(w http.ResponseWriter, r *http.Request) (address.Address, bool) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return address.Nil, false
	}

	a, err := address.FromBase58(mux.Vars(r)["address"])
	if nil != err {
		sendError(w, fault.NotAddress.Error(), http.StatusBadRequest)
		return address.Nil, false
	}

	if !h.enter() {
		sendTooManyRequests(w)
		return address.Nil, false
	}
	return a, true
}

// take a connection slot
func (h *handler) enter() bool {
	return h.count.Acquire(h.maximumConnections)
}

func (h *handler) allowed(key string, remoteAddr string) bool {
	host := remoteAddr
	if last := strings.LastIndex(remoteAddr, ":"); last >= 0 {
		host = remoteAddr[:last]
	}
	ip := net.ParseIP(strings.Trim(host, "[]"))
	if nil == ip {
		return false
	}
	for _, cidr := range h.allow[key] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// map ledger errors onto HTTP status codes
func sendFault(w http.ResponseWriter, err error) {
	switch {
	case fault.IsErrNotFound(err):
		sendError(w, err.Error(), http.StatusNotFound)
	case fault.IsErrInvalid(err), fault.IsErrRecord(err):
		sendError(w, err.Error(), http.StatusBadRequest)
	default:
		sendError(w, err.Error(), http.StatusInternalServerError)
	}
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}

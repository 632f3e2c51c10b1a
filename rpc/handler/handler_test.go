// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/ledger"
	"github.com/bitmark-inc/budgetd/rpc/fixtures"
	"github.com/bitmark-inc/budgetd/rpc/handler"
	"github.com/bitmark-inc/budgetd/rpc/mocks"
)

const (
	notAllowed      = "method not allowed"
	tooManyRequests = "Too Many Requests"
)

var (
	budgetAddress  = address.MustFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	expenseAddress = address.MustFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
)

type eResp struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type jResp struct {
	ID     int   `json:"id"`
	Result int   `json:"result"`
	Error  error `json:"error"`
}

type jReq struct {
	ID     int      `json:"id"`
	Method string   `json:"method"`
	Params []AddArg `json:"params"`
}

type Add struct{}
type AddArg struct {
	A int `json:"A"`
	B int `json:"B"`
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func newHandler(t *testing.T, s *rpc.Server, maximum uint64) (handler.Handler, *mocks.MockHandle, *gomock.Controller) {
	ctl := gomock.NewController(t)
	l := mocks.NewMockHandle(ctl)

	h := handler.New(
		logger.New(fixtures.LogCategory),
		s,
		l,
		"testing",
		time.Now(),
		"1.0",
		maximum,
	)
	return h, l, ctl
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) eResp {
	var j eResp
	err := json.NewDecoder(w.Result().Body).Decode(&j)
	assert.Nil(t, err, "wrong decode")
	return j
}

func TestRoot(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	req := httptest.NewRequest("GET", "http://not.found", nil)
	w := httptest.NewRecorder()
	h.Root(w, req)

	j := decodeError(t, w)
	assert.Equal(t, "not found", j.Error, "wrong response")
	assert.Equal(t, http.StatusNotFound, j.Code, "wrong http code")
}

func TestRouterUnknownPath(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	req := httptest.NewRequest("GET", "http://test.com/budgetd/nothing", nil)
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong http code")
}

func TestRPC(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := rpc.NewServer()
	_ = s.Register(Add{})

	h, _, ctl := newHandler(t, s, 5)
	defer ctl.Finish()

	add := AddArg{
		A: 1,
		B: 2,
	}

	arg := jReq{
		ID:     5,
		Method: "Add.Add",
		Params: []AddArg{add},
	}
	data, _ := json.Marshal(arg)

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	resp := w.Result()
	var j jResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, add.A+add.B, j.Result, "wrong result")
	assert.Nil(t, j.Error, "wrong error")
}

func TestRPCWhenWrongHTTPMethod(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	req := httptest.NewRequest("GET", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.RPC(w, req)

	j := decodeError(t, w)
	assert.Equal(t, notAllowed, j.Error, "wrong method")
}

func TestRPCWhenTooManyConnections(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, rpc.NewServer(), 0)
	defer ctl.Finish()

	req := httptest.NewRequest("POST", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.RPC(w, req)

	j := decodeError(t, w)
	assert.Equal(t, tooManyRequests, j.Error, "wrong method")
	assert.Equal(t, http.StatusTooManyRequests, j.Code, "wrong http code")
}

func TestRPCWhenServeError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	data, _ := json.Marshal(jReq{})

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	b, _ := ioutil.ReadAll(w.Result().Body)
	assert.Contains(t, string(b), "internal server error", "wrong response")
}

func TestDetails(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, l, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	allow := make(map[string][]*net.IPNet)
	_, ipNet, _ := net.ParseCIDR("192.0.2.1/32")
	allow["details"] = []*net.IPNet{ipNet}
	h.SetAllow(allow)

	l.EXPECT().IsTesting().Return(true).Times(1)
	l.EXPECT().SettlementUnit().Return(address.Nil).Times(1)

	req := httptest.NewRequest("GET", "http://test.com/budgetd/details", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	var reply struct {
		Chain       string `json:"chain"`
		Testing     bool   `json:"testing"`
		Connections uint64 `json:"connections"`
		Version     string `json:"version"`
	}
	err := json.NewDecoder(w.Result().Body).Decode(&reply)
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, http.StatusOK, w.Code, "wrong http code")
	assert.Equal(t, "testing", reply.Chain, "wrong chain")
	assert.True(t, reply.Testing, "wrong testing")
	assert.Equal(t, uint64(1), reply.Connections, "wrong connections")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
}

func TestDetailsWhenNotAllow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	req := httptest.NewRequest("GET", "http://test.com/budgetd/details", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	j := decodeError(t, w)
	assert.Equal(t, "forbidden", j.Error, "wrong not allow")
}

func TestDetailsWhenWrongHTTPMethod(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	req := httptest.NewRequest("POST", "http://test.com/budgetd/details", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	j := decodeError(t, w)
	assert.Equal(t, notAllowed, j.Error, "wrong method")
}

func TestBudget(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, l, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	budget := &budgetrecord.BudgetRecord{
		Authority:    expenseAddress,
		FiscalYear:   2024,
		ExpenseCount: 2,
		Bump:         254,
	}
	l.EXPECT().GetBudget(budgetAddress).Return(budget, nil).Times(1)

	req := httptest.NewRequest("GET", "http://test.com/budgetd/budgets/"+budgetAddress.String(), nil)
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)

	var reply budgetrecord.BudgetRecord
	err := json.NewDecoder(w.Result().Body).Decode(&reply)
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, http.StatusOK, w.Code, "wrong http code")
	assert.Equal(t, *budget, reply, "wrong budget")
}

func TestBudgetNotFound(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, l, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	l.EXPECT().GetBudget(budgetAddress).Return(nil, fault.BudgetNotFound).Times(1)

	req := httptest.NewRequest("GET", "http://test.com/budgetd/budgets/"+budgetAddress.String(), nil)
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)

	j := decodeError(t, w)
	assert.Equal(t, http.StatusNotFound, j.Code, "wrong http code")
	assert.Equal(t, fault.BudgetNotFound.Error(), j.Error, "wrong error")
}

func TestBudgetBadAddress(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	req := httptest.NewRequest("GET", "http://test.com/budgetd/budgets/not-base58", nil)
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)

	j := decodeError(t, w)
	assert.Equal(t, http.StatusBadRequest, j.Code, "wrong http code")
	assert.Equal(t, fault.NotAddress.Error(), j.Error, "wrong error")
}

func TestBudgetWhenTooManyConnections(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, rpc.NewServer(), 0)
	defer ctl.Finish()

	req := httptest.NewRequest("GET", "http://test.com/budgetd/budgets/"+budgetAddress.String(), nil)
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)

	j := decodeError(t, w)
	assert.Equal(t, tooManyRequests, j.Error, "wrong error")
}

func TestExpenses(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, l, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	items := []ledger.ExpenseItem{
		{
			Address: expenseAddress,
			Expense: &budgetrecord.ExpenseRecord{
				Budget:          budgetAddress,
				ExpenseType:     "Travel",
				ApprovedAmount:  1000,
				VariancePercent: 10,
				Index:           1,
			},
		},
	}
	l.EXPECT().ListExpenses(budgetAddress, uint32(1), 1).Return(items, uint32(2), nil).Times(1)

	req := httptest.NewRequest("GET", "http://test.com/budgetd/budgets/"+budgetAddress.String()+"/expenses?start=1&count=1", nil)
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)

	var reply struct {
		Expenses  []ledger.ExpenseItem `json:"expenses"`
		NextStart uint32               `json:"nextStart"`
	}
	err := json.NewDecoder(w.Result().Body).Decode(&reply)
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, http.StatusOK, w.Code, "wrong http code")
	assert.Equal(t, uint32(2), reply.NextStart, "wrong next start")
	assert.Equal(t, 1, len(reply.Expenses), "wrong item count")
	assert.Equal(t, "Travel", reply.Expenses[0].Expense.ExpenseType, "wrong expense type")
}

func TestExpensesInvalidCount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	for _, q := range []string{"count=0", "count=101", "count=x", "start=-1"} {
		req := httptest.NewRequest("GET", "http://test.com/budgetd/budgets/"+budgetAddress.String()+"/expenses?"+q, nil)
		w := httptest.NewRecorder()
		h.Router().ServeHTTP(w, req)

		j := decodeError(t, w)
		assert.Equal(t, http.StatusBadRequest, j.Code, "wrong http code for: %s", q)
	}
}

func TestExpense(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, l, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	expense := &budgetrecord.ExpenseRecord{
		Budget:          budgetAddress,
		ExpenseType:     "Equipment",
		ApprovedAmount:  500,
		Spent:           20,
		VariancePercent: 5,
	}
	l.EXPECT().GetExpense(expenseAddress).Return(expense, nil).Times(1)

	req := httptest.NewRequest("GET", "http://test.com/budgetd/expenses/"+expenseAddress.String(), nil)
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)

	var reply budgetrecord.ExpenseRecord
	err := json.NewDecoder(w.Result().Body).Decode(&reply)
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, *expense, reply, "wrong expense")
}

func TestExpenseWhenWrongHTTPMethod(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _, ctl := newHandler(t, rpc.NewServer(), 5)
	defer ctl.Finish()

	req := httptest.NewRequest("DELETE", "http://test.com/budgetd/expenses/"+expenseAddress.String(), nil)
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)

	j := decodeError(t, w)
	assert.Equal(t, notAllowed, j.Error, "wrong method")
}

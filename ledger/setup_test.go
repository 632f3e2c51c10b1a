// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"crypto/rand"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/ledger"
	"github.com/bitmark-inc/budgetd/storage"
	"github.com/bitmark-inc/budgetd/token"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

const (
	treasuryFunds = 10000000 * budgetrecord.SettlementScale
)

var testingDirName string

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "budgetd-ledger-")
	if nil != err {
		panic(err)
	}
	testingDirName = dir

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err = storage.Initialise(filepath.Join(testingDirName, "ledger"), storage.ReadWrite)
	if nil != err {
		panic(err)
	}

	rc := m.Run()

	storage.Finalise()
	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// everything a test needs to issue records
type fixture struct {
	ledger         *ledger.Ledger
	tokens         *token.Ledger
	authority      *account.PrivateKey
	treasurer      *account.PrivateKey
	settlementUnit address.Address
	treasury       address.Address
	operations     address.Address
}

func randomAddress(t *testing.T) address.Address {
	a := address.Address{}
	_, err := rand.Read(a[:])
	if nil != err {
		t.Fatalf("random address error: %s", err)
	}
	return a
}

func newKey(t *testing.T) *account.PrivateKey {
	seed := make([]byte, ed25519.SeedSize)
	_, err := rand.Read(seed)
	if nil != err {
		t.Fatalf("random seed error: %s", err)
	}
	return &account.PrivateKey{
		Test:       true,
		PrivateKey: ed25519.NewKeyFromSeed(seed),
	}
}

// a ledger with a funded treasury and an empty operational holding
func newFixture(t *testing.T, funds uint64) *fixture {
	log := logger.New("ledger")
	tokens := token.NewLedger(log)

	f := &fixture{
		tokens:         tokens,
		authority:      newKey(t),
		treasurer:      newKey(t),
		settlementUnit: randomAddress(t),
	}
	f.ledger = ledger.New(log, tokens, tokens, &ledger.Configuration{
		MetadataProgram: token.MetadataProgramId,
		SettlementUnit:  f.settlementUnit,
		Testnet:         true,
	})

	var err error
	f.treasury, err = f.issue(f.treasurer.Account().Address(), funds)
	if nil != err {
		t.Fatalf("treasury issue error: %s", err)
	}
	f.operations, err = f.issue(randomAddress(t), 0)
	if nil != err {
		t.Fatalf("operations issue error: %s", err)
	}
	return f
}

func (f *fixture) issue(owner address.Address, amount uint64) (address.Address, error) {
	i := &transactionrecord.Issue{
		Unit:      f.settlementUnit,
		Owner:     owner,
		Decimals:  6,
		Amount:    amount,
		Authority: f.treasurer.Account(),
	}
	message, _ := i.Pack()
	i.Signature = f.treasurer.Sign(message)

	_, holding, err := f.ledger.Issue(i)
	return holding, err
}

func (f *fixture) budgetRecord(collectionUnit address.Address) *transactionrecord.CreateBudgetCollection {
	budgetAddress, _, _ := budgetrecord.BudgetAddress(collectionUnit)
	c := &transactionrecord.CreateBudgetCollection{
		CollectionUnit: collectionUnit,
		Budget:         budgetAddress,
		Name:           "Operations 2021",
		Symbol:         "OPS21",
		URI:            "https://example.com/budget/2021.json",
		FiscalYear:     2021,
		Payer:          f.authority.Account(),
	}
	signBudget(c, f.authority)
	return c
}

func signBudget(c *transactionrecord.CreateBudgetCollection, payer *account.PrivateKey) {
	c.Signature = nil
	message, _ := c.Pack()
	c.Signature = payer.Sign(message)
}

// create a budget, returns its address and collection unit
func (f *fixture) createBudget(t *testing.T) (address.Address, address.Address) {
	collectionUnit := randomAddress(t)
	c := f.budgetRecord(collectionUnit)
	_, err := f.ledger.CreateBudgetCollection(c)
	if nil != err {
		t.Fatalf("create budget error: %s", err)
	}
	return c.Budget, collectionUnit
}

// an expense record for the next ordinal of a budget
func (f *fixture) expenseRecord(t *testing.T, budgetAddress address.Address, approved uint64, variance uint8) *transactionrecord.CreateExpense {
	budget, err := f.ledger.GetBudget(budgetAddress)
	if nil != err {
		t.Fatalf("get budget error: %s", err)
	}
	expenseAddress, _, _ := budgetrecord.ExpenseAddress(budget.CollectionUnit, budget.ExpenseCount)

	c := &transactionrecord.CreateExpense{
		Budget:          budgetAddress,
		Expense:         expenseAddress,
		Unit:            randomAddress(t),
		ExpenseName:     "Travel",
		ExpenseType:     "travel-and-accommodation",
		URI:             "https://example.com/expense/travel.json",
		ApprovedAmount:  approved,
		VariancePercent: variance,
		Payer:           f.authority.Account(),
		Authority:       f.authority.Account(),
	}
	signExpense(c, f.authority, f.authority)
	return c
}

func signExpense(c *transactionrecord.CreateExpense, payer *account.PrivateKey, authority *account.PrivateKey) {
	c.Signature = nil
	c.Countersignature = nil
	message, _ := c.Pack()
	c.Signature = payer.Sign(message)
	message, _ = c.Pack()
	c.Countersignature = authority.Sign(message)
}

func (f *fixture) createExpense(t *testing.T, budgetAddress address.Address, approved uint64, variance uint8) address.Address {
	c := f.expenseRecord(t, budgetAddress, approved, variance)
	_, err := f.ledger.CreateExpense(c)
	if nil != err {
		t.Fatalf("create expense error: %s", err)
	}
	return c.Expense
}

var nonce uint64

func (f *fixture) spendRecord(expenseAddress address.Address, amount uint64) *transactionrecord.Spend {
	nonce += 1
	s := &transactionrecord.Spend{
		Expense:            expenseAddress,
		TreasuryHolding:    f.treasury,
		OperationalHolding: f.operations,
		Amount:             amount,
		Nonce:              nonce,
		Authority:          f.authority.Account(),
		TreasuryAuthority:  f.treasurer.Account(),
	}
	signSpend(s, f.authority, f.treasurer)
	return s
}

func signSpend(s *transactionrecord.Spend, authority *account.PrivateKey, treasurer *account.PrivateKey) {
	s.Signature = nil
	s.Countersignature = nil
	message, _ := s.Pack()
	s.Signature = authority.Sign(message)
	message, _ = s.Pack()
	s.Countersignature = treasurer.Sign(message)
}

func (f *fixture) spend(expenseAddress address.Address, amount uint64) error {
	_, _, err := f.ledger.Spend(f.spendRecord(expenseAddress, amount))
	return err
}

func (f *fixture) spent(t *testing.T, expenseAddress address.Address) uint64 {
	expense, err := f.ledger.GetExpense(expenseAddress)
	if nil != err {
		t.Fatalf("get expense error: %s", err)
	}
	return expense.Spent
}

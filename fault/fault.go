// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type LimitError GenericError
type NotFoundError GenericError
type OverflowError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	BudgetAlreadyExists          = ExistsError("budget already exists")
	BudgetNotFound               = NotFoundError("budget not found")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CannotDecodeSeed             = InvalidError("cannot decode seed")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	CollectionAlreadyVerified    = ExistsError("collection already verified")
	CollectionNotMasterEdition   = InvalidError("collection unit has no master edition")
	CollectionMismatch           = InvalidError("collection mismatch")
	CryptoFailed                 = ProcessError("crypto failed")
	DerivedAddressNotFound       = ProcessError("unable to find a derived address off the curve")
	ExpenseAlreadyExists         = ExistsError("expense already exists")
	ExpenseNotFound              = NotFoundError("expense not found")
	ExpenseTypeTooLong           = LengthError("expense type too long")
	HoldingAlreadyExists         = ExistsError("holding already exists")
	HoldingMismatch              = InvalidError("holding does not match unit or owner")
	HoldingNotFound              = NotFoundError("holding not found")
	IdentityNameAlreadyExists    = ExistsError("identity name already exists")
	IdentityNameNotFound         = NotFoundError("identity name not found")
	IncorrectAddress             = InvalidError("address does not match derivation")
	IncorrectProgramId           = InvalidError("incorrect program id")
	InsufficientFunds            = LimitError("insufficient funds")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIPAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidSeedHeader            = InvalidError("invalid seed header")
	InvalidSeedLength            = InvalidError("invalid seed length")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidVariance              = InvalidError("invalid variance percentage")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MasterEditionAlreadyExists   = ExistsError("master edition already exists")
	MasterEditionNotFound        = NotFoundError("master edition not found")
	MathOverflow                 = OverflowError("math overflow")
	MetadataAlreadyExists        = ExistsError("metadata already exists")
	MetadataNotFound             = NotFoundError("metadata not found")
	MintAlreadyExists            = ExistsError("mint already exists")
	MintNotFound                 = NotFoundError("mint not found")
	MissingAuthority             = AuthorisationError("missing required authority signature")
	MissingParameters            = InvalidError("missing parameters")
	NameTooLong                  = LengthError("name too long")
	NotAddress                   = InvalidError("not an address")
	NotAvailableInReadOnlyMode   = ProcessError("not available in read-only mode")
	NotBudgetRecordPack          = RecordError("not a budget record pack")
	NotInitialised               = NotFoundError("not initialised")
	NotPublicKey                 = InvalidError("not a public key")
	NotTokenRecordPack           = RecordError("not a token record pack")
	NotTransactionPack           = RecordError("not a transaction pack")
	OverBudget                   = LimitError("over budget limit")
	RateLimiting                 = ProcessError("rate limiting")
	RecordInUse                  = ProcessError("record in use by another transaction")
	StaleExpenseOrdinal          = ProcessError("expense ordinal already used")
	SupplyOverflow               = OverflowError("unit supply overflow")
	SymbolTooLong                = LengthError("symbol too long")
	TransactionAlreadyCommitted  = ProcessError("transaction already committed")
	TransactionAlreadyExists     = ExistsError("transaction already exists")
	TruncatedRecord              = RecordError("truncated record")
	Unauthorised                 = AuthorisationError("unauthorized access")
	UnitMismatch                 = InvalidError("unit mismatch")
	URITooLong                   = LengthError("uri too long")
	WrongNetworkForPublicKey     = InvalidError("wrong network for public key")
	WrongPassword                = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e LimitError) Error() string         { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e OverflowError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrLimit(e error) bool         { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrOverflow(e error) bool      { _, ok := e.(OverflowError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }

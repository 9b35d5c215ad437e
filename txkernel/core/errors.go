package core

import (
	"errors"
	"fmt"
)

// ErrInternal is raised on infrastructure failures that are not the
// transaction's fault. Any other kernel error rejects only the enclosing
// transaction.
var ErrInternal = errors.New("internal")

// Error is a transaction-fatal kernel failure. Every failure kind carries a
// stable numeric code, namespaced per subsystem; external tooling matches on
// the code, in-process callers match on the sentinel with errors.Is.
type Error struct {
	code uint32
	msg  string
}

func newError(code uint32, msg string) *Error {
	return &Error{code: code, msg: msg}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (code 0x%04x)", e.msg, e.code)
}

// Code returns the stable numeric code of the failure kind.
func (e *Error) Code() uint32 {
	return e.code
}

// Code extracts the stable numeric code from err, unwrapping as needed.
func Code(err error) (uint32, bool) {
	var kerr *Error
	if errors.As(err, &kerr) {
		return kerr.code, true
	}
	return 0, false
}

// Authentication gate: 0x1xxx.
var (
	// ErrAccessDenied is raised when the caller's code commitment is not a
	// procedure of the currently targeted account.
	ErrAccessDenied = newError(0x1001, "access denied: caller is not part of the account interface")
	// ErrForeignContext is raised when a mutating operation is attempted
	// while a foreign account is targeted.
	ErrForeignContext = newError(0x1002, "account state can only be mutated in the native context")
)

// Storage subsystem: 0x2xxx.
var (
	// ErrIndexOutOfBounds is raised when a storage index falls outside the
	// caller's window or the storage array.
	ErrIndexOutOfBounds = newError(0x2001, "storage index out of bounds")
	// ErrWrongSlotType is raised on a kind mismatch between the operation
	// and the slot's declared kind.
	ErrWrongSlotType = newError(0x2002, "wrong storage slot type")
	// ErrReservedSlot is raised when the faucet bookkeeping slot is touched
	// through the generic storage API.
	ErrReservedSlot = newError(0x2003, "storage slot is reserved for faucet bookkeeping")
	// ErrNonceOverflow is raised when a nonce increment does not fit in 32 bits.
	ErrNonceOverflow = newError(0x2004, "nonce increment exceeds 32 bits")
	// ErrImmutableCode is raised when set_account_code targets an account
	// whose type freezes its code.
	ErrImmutableCode = newError(0x2005, "account code is immutable")
)

// Asset vault: 0x3xxx.
var (
	// ErrFungibleOverflow is raised when a fungible balance would reach 2^63.
	ErrFungibleOverflow = newError(0x3001, "fungible balance overflow")
	// ErrDuplicateNonFungible is raised when a non-fungible asset is already present.
	ErrDuplicateNonFungible = newError(0x3002, "non-fungible asset already exists")
	// ErrAssetNotFound is raised when a removal cannot be covered.
	ErrAssetNotFound = newError(0x3003, "asset not found in vault")
	// ErrWrongAssetKind is raised on fungible/non-fungible confusion.
	ErrWrongAssetKind = newError(0x3004, "wrong asset kind")
)

// Faucet subsystem: 0x4xxx.
var (
	// ErrNotAFaucet is raised when issuance is attempted on a regular account.
	ErrNotAFaucet = newError(0x4001, "account is not a faucet")
	// ErrNotAFungibleFaucet is raised when a fungible-only operation targets
	// another account type.
	ErrNotAFungibleFaucet = newError(0x4002, "account is not a fungible faucet")
	// ErrFaucetMismatch is raised when the asset names a different issuer
	// than the targeted faucet.
	ErrFaucetMismatch = newError(0x4003, "asset is not issued by this faucet")
	// ErrMalformedAsset is raised when the asset fails structural validation.
	ErrMalformedAsset = newError(0x4004, "malformed asset")
	// ErrIssuanceCapExceeded is raised when a mint would push total issuance
	// over the protocol maximum.
	ErrIssuanceCapExceeded = newError(0x4005, "issuance cap exceeded")
	// ErrInsufficientSupply is raised when a burn exceeds the supply
	// available to the transaction.
	ErrInsufficientSupply = newError(0x4006, "insufficient supply for burn")
	// ErrAlreadyIssued is raised when a non-fungible asset was issued before.
	ErrAlreadyIssued = newError(0x4007, "non-fungible asset already issued")
)

// Note emission: 0x5xxx.
var (
	// ErrTooManyNotes is raised when the output note capacity is reached.
	ErrTooManyNotes = newError(0x5001, "output note limit reached")
	// ErrTooManyAssets is raised when a note's asset list is full or the
	// one-fungible-balance-per-faucet invariant would break.
	ErrTooManyAssets = newError(0x5002, "note asset limit reached")
	// ErrInvalidNoteIndex is raised for indexes not naming a created note.
	ErrInvalidNoteIndex = newError(0x5003, "invalid output note index")
	// ErrNoActiveNote is raised by input-note accessors outside note processing.
	ErrNoActiveNote = newError(0x5004, "no input note is being processed")
	// ErrMalformedNote is raised when note metadata fails structural validation.
	ErrMalformedNote = newError(0x5005, "malformed note metadata")
)

// Foreign context: 0x6xxx.
var (
	// ErrCommitmentMismatch is raised when loaded foreign state does not
	// hash to the commitment the ledger has on record.
	ErrCommitmentMismatch = newError(0x6001, "foreign account commitment mismatch")
	// ErrAlreadyForeign is raised when entering a foreign context twice.
	ErrAlreadyForeign = newError(0x6002, "already in a foreign context")
	// ErrNotForeign is raised when exiting without a foreign context.
	ErrNotForeign = newError(0x6003, "not in a foreign context")
	// ErrMalformedAdvice is raised when the witness record cannot be decoded.
	ErrMalformedAdvice = newError(0x6004, "malformed account witness record")
	// ErrUnknownAccount is raised when the ledger has no commitment on
	// record for the requested account.
	ErrUnknownAccount = newError(0x6005, "no commitment on record for account")
)

// Dispatcher: 0x7xxx.
var (
	// ErrOffsetOutOfBounds is raised for offsets outside the procedure table.
	ErrOffsetOutOfBounds = newError(0x7001, "procedure offset out of bounds")
	// ErrStackOverflow is raised when inputs exceed the stack width.
	ErrStackOverflow = newError(0x7002, "inputs exceed the kernel stack width")
	// ErrInvalidArguments is raised when inputs do not match the procedure's arity.
	ErrInvalidArguments = newError(0x7003, "invalid procedure arguments")
)

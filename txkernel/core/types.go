package core

import (
	"github.com/veilmesh/go-veilmesh/common/types"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/interfaces.go -source=./types.go

// AdviceProvider is the untrusted external data source. It serves
// scale-encoded account witness records keyed by account id. Nothing it
// returns may be used before validation against a commitment the ledger
// already knows.
type AdviceProvider interface {
	AccountWitness(id types.AccountID) ([]byte, error)
}

// CommitmentLoader returns the account commitment the ledger has on record.
// This is the trusted reference the foreign context manager validates
// witness data against.
type CommitmentLoader interface {
	AccountCommitment(id types.AccountID) (types.Word, error)
}

// VaultOp is the direction of a vault mutation.
type VaultOp uint8

const (
	// VaultAdd is an asset addition.
	VaultAdd VaultOp = iota
	// VaultRemove is an asset removal.
	VaultRemove
)

func (op VaultOp) String() string {
	if op == VaultAdd {
		return "add"
	}
	return "remove"
}

// VaultObserver is notified synchronously around every vault mutation. It is
// pure instrumentation: it cannot veto or alter the mutation.
type VaultObserver interface {
	BeforeVaultMutation(id types.AccountID, op VaultOp, asset types.Asset)
	AfterVaultMutation(id types.AccountID, op VaultOp, asset types.Asset)
}

// NopObserver discards all notifications.
type NopObserver struct{}

// BeforeVaultMutation implements VaultObserver.
func (NopObserver) BeforeVaultMutation(types.AccountID, VaultOp, types.Asset) {}

// AfterVaultMutation implements VaultObserver.
func (NopObserver) AfterVaultMutation(types.AccountID, VaultOp, types.Asset) {}

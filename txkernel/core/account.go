package core

import (
	"fmt"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/hash"
)

// SlotKind is the declared kind of a storage slot.
type SlotKind uint8

const (
	// SlotValue holds a single word.
	SlotValue SlotKind = 0
	// SlotMap holds the root of an authenticated key→word map.
	SlotMap SlotKind = 1
)

// ReservedSlot is the storage index reserved for faucet bookkeeping. On
// fungible faucets it stores the total issuance, on non-fungible faucets the
// root of the issued-asset map. It is unreachable through the generic
// storage API whenever the account is a faucet.
const ReservedSlot = 0

// StorageSlot is one typed slot of account storage.
type StorageSlot struct {
	Kind  SlotKind
	Value types.Word
}

// Procedure is one entry of an account's code: a code commitment plus the
// storage window its callers are entitled to.
type Procedure struct {
	Digest        types.Word
	StorageOffset uint8
	StorageSize   uint8
}

// Window is the storage capability issued by the authentication gate: all
// storage indexes supplied by the holder are translated by Offset and must
// resolve within [Offset, Offset+Size).
type Window struct {
	Offset uint8
	Size   uint8
}

// Translate turns a caller-relative index into an absolute slot index,
// enforcing both the window and the bounds of the storage array.
func (w Window) Translate(index uint8, slots int) (uint8, error) {
	translated := uint16(index) + uint16(w.Offset)
	if translated >= uint16(w.Offset)+uint16(w.Size) {
		return 0, fmt.Errorf("%w: index %d window (%d, %d)", ErrIndexOutOfBounds, index, w.Offset, w.Size)
	}
	if translated >= uint16(slots) {
		return 0, fmt.Errorf("%w: index %d storage size %d", ErrIndexOutOfBounds, translated, slots)
	}
	return uint8(translated), nil
}

// Account is the kernel's in-memory account representation: everything the
// account commitment binds. The native account is mutable for the duration
// of one transaction; foreign snapshots are read-only.
type Account struct {
	ID    types.AccountID
	Nonce types.Felt
	Slots []StorageSlot
	// Procedures is the code in force for this transaction; the
	// authentication gate resolves callers against it.
	Procedures []Procedure
	// CodeRoot is the code commitment bound into the account commitment.
	// set_account_code replaces it; the new procedure set takes effect only
	// in later transactions.
	CodeRoot  types.Word
	VaultRoot types.Word
}

// IsFaucet reports whether the account can issue assets.
func (a *Account) IsFaucet() bool {
	return a.ID.IsFaucet()
}

// Slot returns the slot at the absolute index.
func (a *Account) Slot(index uint8) (*StorageSlot, error) {
	if int(index) >= len(a.Slots) {
		return nil, fmt.Errorf("%w: index %d storage size %d", ErrIndexOutOfBounds, index, len(a.Slots))
	}
	return &a.Slots[index], nil
}

// ProcedureByDigest finds the account procedure with the given code
// commitment.
func (a *Account) ProcedureByDigest(digest types.Word) (*Procedure, bool) {
	for i := range a.Procedures {
		if a.Procedures[i].Digest == digest {
			return &a.Procedures[i], true
		}
	}
	return nil, false
}

// StorageCommitment hashes the kind and value of every slot.
func (a *Account) StorageCommitment() types.Word {
	if len(a.Slots) == 0 {
		return types.EmptyWord
	}
	elements := make([]types.Felt, 0, len(a.Slots)*(types.WordLength+1))
	for _, slot := range a.Slots {
		elements = append(elements, types.Felt(slot.Kind))
		elements = append(elements, slot.Value[:]...)
	}
	return hash.Elements(elements...)
}

// CodeCommitment hashes the account's procedure table: every code commitment
// together with its storage window.
func (a *Account) CodeCommitment() types.Word {
	if len(a.Procedures) == 0 {
		return types.EmptyWord
	}
	elements := make([]types.Felt, 0, len(a.Procedures)*(types.WordLength+2))
	for _, proc := range a.Procedures {
		elements = append(elements, proc.Digest[:]...)
		elements = append(elements, types.Felt(proc.StorageOffset), types.Felt(proc.StorageSize))
	}
	return hash.Elements(elements...)
}

// Commitment binds id, nonce, vault root, storage commitment and code
// commitment into the account's sole externally observable identity. The
// element layout is fixed: id in elements 0-1, nonce in element 3, then the
// three roots.
func (a *Account) Commitment() types.Word {
	var elements [16]types.Felt
	id := a.ID.Elements()
	elements[0] = id[0]
	elements[1] = id[1]
	elements[3] = a.Nonce
	storage := a.StorageCommitment()
	copy(elements[4:8], a.VaultRoot[:])
	copy(elements[8:12], storage[:])
	copy(elements[12:16], a.CodeRoot[:])
	return hash.Elements(elements[:]...)
}

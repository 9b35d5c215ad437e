// Package storage implements the account storage subsystem: window-scoped
// access to value and map slots, nonce management and code updates.
//
// Reads work against the currently targeted account (native or foreign);
// every mutator first passes the native-context and authentication gates.
// Storage indexes arriving from callers are relative to the window issued by
// the authentication gate and are translated before use.
package storage

import (
	"fmt"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/txkernel/core"
)

// MaxNonceDelta bounds a single nonce increment to 32 bits.
const MaxNonceDelta = 1 << 32

// GetItem reads the slot at the window-relative index. For map slots the
// stored word is the map root.
func GetItem(ctx *core.Context, win core.Window, index uint8) (types.Word, error) {
	account := ctx.Current()
	translated, err := win.Translate(index, len(account.Slots))
	if err != nil {
		return types.EmptyWord, err
	}
	if err := checkReserved(account, translated); err != nil {
		return types.EmptyWord, err
	}
	slot, err := account.Slot(translated)
	if err != nil {
		return types.EmptyWord, err
	}
	return slot.Value, nil
}

// SetItem writes value into the slot at the window-relative index and
// returns the previous value together with the resulting storage
// commitment. Only value slots can be written through this path.
func SetItem(ctx *core.Context, win core.Window, index uint8, value types.Word) (old, newRoot types.Word, err error) {
	if err := ctx.AssertNative(); err != nil {
		return types.EmptyWord, types.EmptyWord, err
	}
	account := ctx.Current()
	translated, err := win.Translate(index, len(account.Slots))
	if err != nil {
		return types.EmptyWord, types.EmptyWord, err
	}
	if err := checkReserved(account, translated); err != nil {
		return types.EmptyWord, types.EmptyWord, err
	}
	slot, err := account.Slot(translated)
	if err != nil {
		return types.EmptyWord, types.EmptyWord, err
	}
	if slot.Kind != core.SlotValue {
		return types.EmptyWord, types.EmptyWord, fmt.Errorf("%w: slot %d is not a value slot", core.ErrWrongSlotType, translated)
	}
	old = slot.Value
	slot.Value = value
	return old, account.StorageCommitment(), nil
}

// GetMapItem reads the value under key from the map slot at the
// window-relative index.
func GetMapItem(ctx *core.Context, win core.Window, index uint8, key types.Word) (types.Word, error) {
	account := ctx.Current()
	translated, err := win.Translate(index, len(account.Slots))
	if err != nil {
		return types.EmptyWord, err
	}
	if err := checkReserved(account, translated); err != nil {
		return types.EmptyWord, err
	}
	slot, err := account.Slot(translated)
	if err != nil {
		return types.EmptyWord, err
	}
	if slot.Kind != core.SlotMap {
		return types.EmptyWord, fmt.Errorf("%w: slot %d is not a map slot", core.ErrWrongSlotType, translated)
	}
	value, err := ctx.Maps.Get(slot.Value, key)
	if err != nil {
		return types.EmptyWord, fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	return value, nil
}

// SetMapItem writes value under key in the map slot at the window-relative
// index, stores the new map root in the slot, and returns the previous root
// and previous value.
func SetMapItem(ctx *core.Context, win core.Window, index uint8, key, value types.Word) (oldRoot, oldValue types.Word, err error) {
	if err := ctx.AssertNative(); err != nil {
		return types.EmptyWord, types.EmptyWord, err
	}
	account := ctx.Current()
	translated, err := win.Translate(index, len(account.Slots))
	if err != nil {
		return types.EmptyWord, types.EmptyWord, err
	}
	if err := checkReserved(account, translated); err != nil {
		return types.EmptyWord, types.EmptyWord, err
	}
	slot, err := account.Slot(translated)
	if err != nil {
		return types.EmptyWord, types.EmptyWord, err
	}
	if slot.Kind != core.SlotMap {
		return types.EmptyWord, types.EmptyWord, fmt.Errorf("%w: slot %d is not a map slot", core.ErrWrongSlotType, translated)
	}
	oldRoot = slot.Value
	newRoot, oldValue, err := ctx.Maps.Set(slot.Value, key, value)
	if err != nil {
		return types.EmptyWord, types.EmptyWord, fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	slot.Value = newRoot
	return oldRoot, oldValue, nil
}

// IncrementNonce adds delta to the native account's nonce. Deltas are
// unsigned, so the nonce is monotonic by construction; a delta outside the
// 32-bit range is rejected.
func IncrementNonce(ctx *core.Context, delta uint64) (types.Felt, error) {
	if _, err := ctx.AuthenticateOrigin(); err != nil {
		return 0, err
	}
	if err := ctx.AssertNative(); err != nil {
		return 0, err
	}
	if delta >= MaxNonceDelta {
		return 0, fmt.Errorf("%w: delta %d", core.ErrNonceOverflow, delta)
	}
	account := ctx.Current()
	account.Nonce = types.NewFelt(uint64(account.Nonce) + delta)
	return account.Nonce, nil
}

// SetCode replaces the native account's code commitment. Only account types
// with updatable code may do this; the procedure set currently in force
// stays active until the end of the transaction.
func SetCode(ctx *core.Context, commitment types.Word) error {
	if _, err := ctx.AuthenticateOrigin(); err != nil {
		return err
	}
	if err := ctx.AssertNative(); err != nil {
		return err
	}
	account := ctx.Current()
	if !account.ID.Type().HasUpdatableCode() {
		return fmt.Errorf("%w: account type %#b", core.ErrImmutableCode, account.ID.Type())
	}
	account.CodeRoot = commitment
	return nil
}

// GetID returns the currently targeted account's id.
func GetID(ctx *core.Context) types.AccountID {
	return ctx.Current().ID
}

// GetNonce returns the currently targeted account's nonce.
func GetNonce(ctx *core.Context) types.Felt {
	return ctx.Current().Nonce
}

// CurrentCommitment recomputes the commitment of the currently targeted
// account in its present state.
func CurrentCommitment(ctx *core.Context) types.Word {
	return ctx.Current().Commitment()
}

// InitialCommitment returns the native account's commitment at transaction
// start.
func InitialCommitment(ctx *core.Context) types.Word {
	return ctx.InitialCommitment
}

// checkReserved keeps the faucet bookkeeping slot out of reach of the
// generic storage API.
func checkReserved(account *core.Account, index uint8) error {
	if account.IsFaucet() && index == core.ReservedSlot {
		return fmt.Errorf("%w: slot %d of %s", core.ErrReservedSlot, index, account.ID.Hex())
	}
	return nil
}

package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veilmesh/go-veilmesh/common/types"
)

func TestAccountCommitment(t *testing.T) {
	base := func() *Account {
		account := testAccount(types.RegularAccountUpdatableCode, 2)
		account.Slots[1] = StorageSlot{Kind: SlotValue, Value: types.WordFromUint64(5, 0, 0, 0)}
		account.VaultRoot = types.WordFromUint64(9, 9, 9, 9)
		return account
	}
	reference := base().Commitment()

	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, reference, base().Commitment())
	})
	t.Run("binds the nonce", func(t *testing.T) {
		account := base()
		account.Nonce++
		require.NotEqual(t, reference, account.Commitment())
	})
	t.Run("binds storage", func(t *testing.T) {
		account := base()
		account.Slots[0].Value = types.WordFromUint64(1, 0, 0, 0)
		require.NotEqual(t, reference, account.Commitment())
	})
	t.Run("binds the vault root", func(t *testing.T) {
		account := base()
		account.VaultRoot = types.EmptyWord
		require.NotEqual(t, reference, account.Commitment())
	})
	t.Run("binds the code root", func(t *testing.T) {
		account := base()
		account.CodeRoot = types.EmptyWord
		require.NotEqual(t, reference, account.Commitment())
	})
	t.Run("binds the id", func(t *testing.T) {
		account := base()
		account.ID = types.BuildAccountID(types.RegularAccountUpdatableCode, types.StoragePublic, 2000)
		require.NotEqual(t, reference, account.Commitment())
	})
}

func TestStorageCommitment(t *testing.T) {
	t.Run("empty storage", func(t *testing.T) {
		account := &Account{}
		require.Equal(t, types.EmptyWord, account.StorageCommitment())
	})
	t.Run("slot kind matters", func(t *testing.T) {
		value := &Account{Slots: []StorageSlot{{Kind: SlotValue}}}
		mapped := &Account{Slots: []StorageSlot{{Kind: SlotMap}}}
		require.NotEqual(t, value.StorageCommitment(), mapped.StorageCommitment())
	})
}

func TestProcedureByDigest(t *testing.T) {
	account := testAccount(types.RegularAccountUpdatableCode, 3)
	proc, ok := account.ProcedureByDigest(testCaller)
	require.True(t, ok)
	require.Equal(t, testCaller, proc.Digest)

	_, ok = account.ProcedureByDigest(types.WordFromUint64(1, 1, 1, 1))
	require.False(t, ok)
}

func TestSlotBounds(t *testing.T) {
	account := testAccount(types.RegularAccountUpdatableCode, 2)
	_, err := account.Slot(1)
	require.NoError(t, err)
	_, err = account.Slot(2)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

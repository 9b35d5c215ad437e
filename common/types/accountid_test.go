package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccountIDMetadataBits(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		typ    AccountType
		mode   StorageMode
		faucet bool
	}{
		{desc: "regular updatable public", typ: RegularAccountUpdatableCode, mode: StoragePublic},
		{desc: "regular immutable private", typ: RegularAccountImmutableCode, mode: StoragePrivate},
		{desc: "fungible faucet public", typ: FungibleFaucet, mode: StoragePublic, faucet: true},
		{desc: "non-fungible faucet private", typ: NonFungibleFaucet, mode: StoragePrivate, faucet: true},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			id := BuildAccountID(tc.typ, tc.mode, 0xdeadbeef12345678)
			require.Equal(t, tc.typ, id.Type())
			require.Equal(t, tc.mode, id.Mode())
			require.Equal(t, tc.faucet, id.IsFaucet())
			require.Equal(t, !tc.faucet, id.IsRegular())
			require.Equal(t, tc.mode == StoragePublic, id.IsPublic())
		})
	}
}

func TestNewAccountIDValidation(t *testing.T) {
	valid := BuildAccountID(RegularAccountUpdatableCode, StoragePublic, 101)

	t.Run("accepts shaped id", func(t *testing.T) {
		id, err := NewAccountID(valid.Prefix, valid.Suffix)
		require.NoError(t, err)
		require.Equal(t, valid, id)
	})
	t.Run("rejects non-canonical elements", func(t *testing.T) {
		_, err := NewAccountID(Felt(FieldModulus), valid.Suffix)
		require.ErrorIs(t, err, ErrInvalidFieldElement)
	})
	t.Run("rejects unknown version", func(t *testing.T) {
		_, err := NewAccountID(valid.Prefix|0b0001, valid.Suffix)
		require.ErrorIs(t, err, ErrUnsupportedIDVersion)
	})
	t.Run("rejects non-zero suffix byte", func(t *testing.T) {
		_, err := NewAccountID(valid.Prefix, valid.Suffix|0x01)
		require.ErrorIs(t, err, ErrNonZeroSuffixByte)
	})
}

func TestAccountIDBytesRoundtrip(t *testing.T) {
	id := BuildAccountID(FungibleFaucet, StoragePrivate, 424242)
	buf := id.Bytes()
	require.Len(t, buf, AccountIDLength)

	decoded, err := AccountIDFromBytes(buf)
	require.NoError(t, err)
	require.Equal(t, id, decoded)

	_, err = AccountIDFromBytes(buf[:10])
	require.ErrorIs(t, err, ErrWrongAccountIDLength)
}

func TestAccountIDBech32(t *testing.T) {
	id := BuildAccountID(RegularAccountImmutableCode, StoragePublic, 7)
	encoded := id.String()
	require.Contains(t, encoded, "vm1")

	decoded, err := StringToAccountID(encoded)
	require.NoError(t, err)
	require.Equal(t, id, decoded)

	SetAccountHRP("tn")
	foreign := id.String()
	SetAccountHRP("vm")
	_, err = StringToAccountID(foreign)
	require.ErrorContains(t, err, "wrong network id")
}

func TestAccountIDElementsOrder(t *testing.T) {
	id := BuildAccountID(RegularAccountUpdatableCode, StoragePublic, 99)
	elements := id.Elements()
	require.Equal(t, id.Suffix, elements[0])
	require.Equal(t, id.Prefix, elements[1])
}

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFungibleAsset(t *testing.T) {
	faucet := BuildAccountID(FungibleFaucet, StoragePublic, 1)

	t.Run("encodes amount and faucet", func(t *testing.T) {
		asset, err := NewFungibleAsset(faucet, 1000)
		require.NoError(t, err)
		require.True(t, asset.IsFungible())
		require.EqualValues(t, 1000, asset.Amount())
		require.Equal(t, faucet, asset.Faucet())
		require.NoError(t, asset.Validate())
	})
	t.Run("rejects wrong faucet type", func(t *testing.T) {
		regular := BuildAccountID(RegularAccountUpdatableCode, StoragePublic, 2)
		_, err := NewFungibleAsset(regular, 1)
		require.ErrorIs(t, err, ErrWrongFaucetType)
	})
	t.Run("rejects amount over 63 bits", func(t *testing.T) {
		_, err := NewFungibleAsset(faucet, MaxFungibleAmount+1)
		require.ErrorIs(t, err, ErrAmountTooBig)
	})
	t.Run("all amounts of one faucet share a vault key", func(t *testing.T) {
		small, err := NewFungibleAsset(faucet, 1)
		require.NoError(t, err)
		large, err := NewFungibleAsset(faucet, MaxFungibleAmount)
		require.NoError(t, err)
		require.Equal(t, small.VaultKey(), large.VaultKey())
	})
}

func TestNonFungibleAsset(t *testing.T) {
	faucet := BuildAccountID(NonFungibleFaucet, StoragePublic, 3)

	t.Run("stamps the faucet prefix", func(t *testing.T) {
		asset, err := NewNonFungibleAsset(faucet, WordFromUint64(11, 22, 33, 44))
		require.NoError(t, err)
		require.False(t, asset.IsFungible())
		require.Equal(t, faucet.Prefix, asset.FaucetPrefix())
		require.NoError(t, asset.Validate())
	})
	t.Run("kind stays decidable for any digest", func(t *testing.T) {
		// Digest element 3 with fungible-looking type bits.
		digest := WordFromUint64(0, 0, 0, 0)
		asset, err := NewNonFungibleAsset(faucet, digest)
		require.NoError(t, err)
		require.False(t, asset.IsFungible())
	})
	t.Run("keyed by its own word", func(t *testing.T) {
		asset, err := NewNonFungibleAsset(faucet, WordFromUint64(5, 6, 7, 8))
		require.NoError(t, err)
		require.Equal(t, asset.Word(), asset.VaultKey())
	})
	t.Run("rejects wrong faucet type", func(t *testing.T) {
		fungible := BuildAccountID(FungibleFaucet, StoragePublic, 4)
		_, err := NewNonFungibleAsset(fungible, WordFromUint64(1, 2, 3, 4))
		require.ErrorIs(t, err, ErrWrongFaucetType)
	})
}

func TestAssetValidate(t *testing.T) {
	faucet := BuildAccountID(FungibleFaucet, StoragePublic, 5)

	t.Run("fungible with non-zero element 1", func(t *testing.T) {
		asset, err := NewFungibleAsset(faucet, 10)
		require.NoError(t, err)
		asset[1] = 1
		require.Error(t, asset.Validate())
	})
	t.Run("non-canonical element", func(t *testing.T) {
		asset, err := NewFungibleAsset(faucet, 10)
		require.NoError(t, err)
		asset[0] = Felt(FieldModulus)
		require.ErrorIs(t, asset.Validate(), ErrInvalidFieldElement)
	})
}

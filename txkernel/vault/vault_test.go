package vault

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/config"
	"github.com/veilmesh/go-veilmesh/txkernel/amap"
	"github.com/veilmesh/go-veilmesh/txkernel/core"
	"github.com/veilmesh/go-veilmesh/txkernel/core/mocks"
)

var caller = types.WordFromUint64(0xca11, 0, 0, 2)

func newTestContext(tb testing.TB) *core.Context {
	tb.Helper()
	account := &core.Account{
		ID:    types.BuildAccountID(types.RegularAccountUpdatableCode, types.StoragePublic, 7),
		Slots: make([]core.StorageSlot, 1),
		Procedures: []core.Procedure{
			{Digest: caller, StorageOffset: 0, StorageSize: 1},
		},
	}
	return &core.Context{
		Params:   config.DefaultParams(),
		Maps:     amap.New(),
		Observer: core.NopObserver{},
		Native:   account,
		Caller:   caller,
	}
}

func fungible(tb testing.TB, seed, amount uint64) types.Asset {
	tb.Helper()
	faucet := types.BuildAccountID(types.FungibleFaucet, types.StoragePublic, seed)
	asset, err := types.NewFungibleAsset(faucet, amount)
	require.NoError(tb, err)
	return asset
}

func nonFungible(tb testing.TB, seed uint64) types.Asset {
	tb.Helper()
	faucet := types.BuildAccountID(types.NonFungibleFaucet, types.StoragePublic, seed)
	asset, err := types.NewNonFungibleAsset(faucet, types.WordFromUint64(seed, seed+1, seed+2, seed+3))
	require.NoError(tb, err)
	return asset
}

func TestAddRemoveFungible(t *testing.T) {
	ctx := newTestContext(t)
	emptyRoot := ctx.Native.VaultRoot

	added, err := AddAsset(ctx, fungible(t, 1, 100))
	require.NoError(t, err)
	require.EqualValues(t, 100, added.Amount())
	require.NotEqual(t, emptyRoot, ctx.Native.VaultRoot)

	t.Run("amounts merge", func(t *testing.T) {
		merged, err := AddAsset(ctx, fungible(t, 1, 50))
		require.NoError(t, err)
		require.EqualValues(t, 150, merged.Amount())

		balance, err := GetBalance(ctx, fungible(t, 1, 0).Faucet())
		require.NoError(t, err)
		require.EqualValues(t, 150, balance)
	})
	t.Run("faucets do not mix", func(t *testing.T) {
		balance, err := GetBalance(ctx, fungible(t, 2, 0).Faucet())
		require.NoError(t, err)
		require.Zero(t, balance)
	})
	t.Run("full removal clears the key", func(t *testing.T) {
		_, err := RemoveAsset(ctx, fungible(t, 1, 150))
		require.NoError(t, err)
		require.Equal(t, emptyRoot, ctx.Native.VaultRoot)
	})
}

func TestAddRemoveRestoresRoot(t *testing.T) {
	ctx := newTestContext(t)
	asset := fungible(t, 3, 42)
	before := ctx.Native.VaultRoot

	_, err := AddAsset(ctx, asset)
	require.NoError(t, err)
	_, err = RemoveAsset(ctx, asset)
	require.NoError(t, err)
	require.Equal(t, before, ctx.Native.VaultRoot)
}

func TestFungibleOverflow(t *testing.T) {
	ctx := newTestContext(t)
	_, err := AddAsset(ctx, fungible(t, 1, types.MaxFungibleAmount))
	require.NoError(t, err)
	_, err = AddAsset(ctx, fungible(t, 1, 1))
	require.ErrorIs(t, err, core.ErrFungibleOverflow)

	balance, err := GetBalance(ctx, fungible(t, 1, 0).Faucet())
	require.NoError(t, err)
	require.EqualValues(t, types.MaxFungibleAmount, balance)
}

func TestRemoveMoreThanBalance(t *testing.T) {
	ctx := newTestContext(t)
	_, err := AddAsset(ctx, fungible(t, 1, 10))
	require.NoError(t, err)
	_, err = RemoveAsset(ctx, fungible(t, 1, 11))
	require.ErrorIs(t, err, core.ErrAssetNotFound)
}

func TestNonFungible(t *testing.T) {
	ctx := newTestContext(t)
	asset := nonFungible(t, 9)

	has, err := HasNonFungible(ctx, asset)
	require.NoError(t, err)
	require.False(t, has)

	added, err := AddAsset(ctx, asset)
	require.NoError(t, err)
	require.Equal(t, asset, added)

	has, err = HasNonFungible(ctx, asset)
	require.NoError(t, err)
	require.True(t, has)

	t.Run("duplicate rejected", func(t *testing.T) {
		_, err := AddAsset(ctx, asset)
		require.ErrorIs(t, err, core.ErrDuplicateNonFungible)
	})
	t.Run("removal", func(t *testing.T) {
		_, err := RemoveAsset(ctx, asset)
		require.NoError(t, err)
		_, err = RemoveAsset(ctx, asset)
		require.ErrorIs(t, err, core.ErrAssetNotFound)
	})
}

func TestKindChecks(t *testing.T) {
	ctx := newTestContext(t)
	_, err := GetBalance(ctx, types.BuildAccountID(types.NonFungibleFaucet, types.StoragePublic, 1))
	require.ErrorIs(t, err, core.ErrWrongAssetKind)
	_, err = HasNonFungible(ctx, fungible(t, 1, 1))
	require.ErrorIs(t, err, core.ErrWrongAssetKind)
}

func TestMalformedAsset(t *testing.T) {
	ctx := newTestContext(t)
	bad := fungible(t, 1, 1)
	bad[1] = 5
	_, err := AddAsset(ctx, bad)
	require.ErrorIs(t, err, core.ErrMalformedAsset)
	_, err = RemoveAsset(ctx, bad)
	require.ErrorIs(t, err, core.ErrMalformedAsset)
}

func TestMutationsBlockedInForeign(t *testing.T) {
	ctx := newTestContext(t)
	foreign := &core.Account{
		ID: types.BuildAccountID(types.RegularAccountUpdatableCode, types.StoragePublic, 8),
		Procedures: []core.Procedure{
			{Digest: caller, StorageOffset: 0, StorageSize: 0},
		},
	}
	require.NoError(t, ctx.EnterForeign(foreign))

	_, err := AddAsset(ctx, fungible(t, 1, 1))
	require.ErrorIs(t, err, core.ErrForeignContext)
	_, err = RemoveAsset(ctx, fungible(t, 1, 1))
	require.ErrorIs(t, err, core.ErrForeignContext)
}

func TestObserverNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockVaultObserver(ctrl)
	ctx := newTestContext(t)
	ctx.Observer = observer

	asset := fungible(t, 1, 25)
	id := ctx.Native.ID

	gomock.InOrder(
		observer.EXPECT().BeforeVaultMutation(id, core.VaultAdd, asset),
		observer.EXPECT().AfterVaultMutation(id, core.VaultAdd, asset),
		observer.EXPECT().BeforeVaultMutation(id, core.VaultRemove, asset),
		observer.EXPECT().AfterVaultMutation(id, core.VaultRemove, asset),
	)

	_, err := AddAsset(ctx, asset)
	require.NoError(t, err)
	_, err = RemoveAsset(ctx, asset)
	require.NoError(t, err)

	t.Run("failed mutation stops before after-hook", func(t *testing.T) {
		observer.EXPECT().BeforeVaultMutation(id, core.VaultRemove, asset)
		_, err := RemoveAsset(ctx, asset)
		require.ErrorIs(t, err, core.ErrAssetNotFound)
	})
}

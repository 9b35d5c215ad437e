package notes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/config"
	"github.com/veilmesh/go-veilmesh/txkernel/amap"
	"github.com/veilmesh/go-veilmesh/txkernel/core"
)

var caller = types.WordFromUint64(0xca11, 0, 0, 4)

func newTestContext(tb testing.TB, params config.Params) *core.Context {
	tb.Helper()
	account := &core.Account{
		ID: types.BuildAccountID(types.RegularAccountUpdatableCode, types.StoragePublic, 11),
		Procedures: []core.Procedure{
			{Digest: caller, StorageOffset: 0, StorageSize: 0},
		},
	}
	return &core.Context{
		Params:   params,
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

func TestCreate(t *testing.T) {
	ctx := newTestContext(t, config.DefaultParams())
	recipient := types.WordFromUint64(1, 2, 3, 4)

	index, err := Create(ctx, 7, 0, types.NotePublic, types.HintAlways, recipient)
	require.NoError(t, err)
	require.Zero(t, index)
	require.Len(t, ctx.OutputNotes, 1)
	require.Equal(t, ctx.Native.ID, ctx.OutputNotes[0].Metadata.Sender)

	t.Run("indices are sequential", func(t *testing.T) {
		next, err := Create(ctx, 8, 0, types.NotePrivate, types.HintNone, recipient)
		require.NoError(t, err)
		require.Equal(t, 1, next)
	})
	t.Run("invalid metadata", func(t *testing.T) {
		_, err := Create(ctx, 9, 0, types.NoteType(9), types.HintAlways, recipient)
		require.ErrorIs(t, err, core.ErrMalformedNote)
	})
	t.Run("note limit", func(t *testing.T) {
		params := config.DefaultParams()
		params.MaxOutputNotes = 1
		limited := newTestContext(t, params)
		_, err := Create(limited, 1, 0, types.NotePublic, types.HintAlways, recipient)
		require.NoError(t, err)
		_, err = Create(limited, 2, 0, types.NotePublic, types.HintAlways, recipient)
		require.ErrorIs(t, err, core.ErrTooManyNotes)
	})
	t.Run("unauthenticated caller", func(t *testing.T) {
		ctx.Caller = types.EmptyWord
		defer func() { ctx.Caller = caller }()
		_, err := Create(ctx, 1, 0, types.NotePublic, types.HintAlways, recipient)
		require.ErrorIs(t, err, core.ErrAccessDenied)
	})
}

func TestAddAsset(t *testing.T) {
	ctx := newTestContext(t, config.DefaultParams())
	index, err := Create(ctx, 1, 0, types.NotePublic, types.HintAlways, types.EmptyWord)
	require.NoError(t, err)

	added, err := AddAsset(ctx, index, fungible(t, 1, 100))
	require.NoError(t, err)
	require.EqualValues(t, 100, added.Amount())

	t.Run("different faucets coexist", func(t *testing.T) {
		_, err := AddAsset(ctx, index, fungible(t, 2, 50))
		require.NoError(t, err)
		require.Len(t, ctx.OutputNotes[index].Assets, 2)
	})
	t.Run("duplicate fungible faucet", func(t *testing.T) {
		_, err := AddAsset(ctx, index, fungible(t, 1, 1))
		require.ErrorIs(t, err, core.ErrTooManyAssets)
	})
	t.Run("duplicate non-fungible", func(t *testing.T) {
		faucet := types.BuildAccountID(types.NonFungibleFaucet, types.StoragePublic, 3)
		asset, err := types.NewNonFungibleAsset(faucet, types.WordFromUint64(4, 5, 6, 7))
		require.NoError(t, err)
		_, err = AddAsset(ctx, index, asset)
		require.NoError(t, err)
		_, err = AddAsset(ctx, index, asset)
		require.ErrorIs(t, err, core.ErrDuplicateNonFungible)
	})
	t.Run("unknown note index", func(t *testing.T) {
		_, err := AddAsset(ctx, 5, fungible(t, 4, 1))
		require.ErrorIs(t, err, core.ErrInvalidNoteIndex)
		_, err = AddAsset(ctx, -1, fungible(t, 4, 1))
		require.ErrorIs(t, err, core.ErrInvalidNoteIndex)
	})
	t.Run("asset capacity", func(t *testing.T) {
		params := config.DefaultParams()
		params.MaxAssetsPerNote = 1
		limited := newTestContext(t, params)
		idx, err := Create(limited, 1, 0, types.NotePublic, types.HintAlways, types.EmptyWord)
		require.NoError(t, err)
		_, err = AddAsset(limited, idx, fungible(t, 1, 1))
		require.NoError(t, err)
		_, err = AddAsset(limited, idx, fungible(t, 2, 1))
		require.ErrorIs(t, err, core.ErrTooManyAssets)
	})
}

func TestInputNoteAccessors(t *testing.T) {
	ctx := newTestContext(t, config.DefaultParams())

	t.Run("outside note processing", func(t *testing.T) {
		_, _, err := AssetsInfo(ctx)
		require.ErrorIs(t, err, core.ErrNoActiveNote)
		_, err = SerialNumber(ctx)
		require.ErrorIs(t, err, core.ErrNoActiveNote)
		_, err = InputsHash(ctx)
		require.ErrorIs(t, err, core.ErrNoActiveNote)
		_, err = Sender(ctx)
		require.ErrorIs(t, err, core.ErrNoActiveNote)
	})

	sender := types.BuildAccountID(types.RegularAccountImmutableCode, types.StoragePublic, 12)
	note := &core.InputNote{
		Sender:       sender,
		SerialNumber: types.WordFromUint64(1, 1, 2, 2),
		InputsHash:   types.WordFromUint64(3, 3, 4, 4),
		Assets:       []types.Asset{fungible(t, 1, 10)},
	}
	ctx.SetActiveNote(note)

	t.Run("during note processing", func(t *testing.T) {
		commitment, count, err := AssetsInfo(ctx)
		require.NoError(t, err)
		require.Equal(t, note.AssetsCommitment(), commitment)
		require.Equal(t, 1, count)

		serial, err := SerialNumber(ctx)
		require.NoError(t, err)
		require.Equal(t, note.SerialNumber, serial)

		inputs, err := InputsHash(ctx)
		require.NoError(t, err)
		require.Equal(t, note.InputsHash, inputs)

		got, err := Sender(ctx)
		require.NoError(t, err)
		require.Equal(t, sender, got)
	})
}

func TestOutputNotesCommitment(t *testing.T) {
	ctx := newTestContext(t, config.DefaultParams())
	require.Equal(t, types.EmptyWord, OutputNotesCommitment(ctx))

	_, err := Create(ctx, 1, 0, types.NotePublic, types.HintAlways, types.WordFromUint64(1, 0, 0, 0))
	require.NoError(t, err)
	first := OutputNotesCommitment(ctx)
	require.NotEqual(t, types.EmptyWord, first)

	t.Run("changes with every note", func(t *testing.T) {
		_, err := Create(ctx, 2, 0, types.NotePrivate, types.HintNone, types.WordFromUint64(2, 0, 0, 0))
		require.NoError(t, err)
		require.NotEqual(t, first, OutputNotesCommitment(ctx))
	})
	t.Run("changes with note assets", func(t *testing.T) {
		before := OutputNotesCommitment(ctx)
		_, err := AddAsset(ctx, 0, fungible(t, 1, 5))
		require.NoError(t, err)
		require.NotEqual(t, before, OutputNotesCommitment(ctx))
	})
}

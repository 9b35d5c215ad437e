package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/config"
	"github.com/veilmesh/go-veilmesh/txkernel/amap"
)

var testCaller = types.WordFromUint64(0xca11, 1, 2, 3)

func testContext(tb testing.TB, native *Account) *Context {
	tb.Helper()
	return &Context{
		Params:   config.DefaultParams(),
		Maps:     amap.New(),
		Observer: NopObserver{},
		Native:   native,
		Caller:   testCaller,
	}
}

func testAccount(typ types.AccountType, slots int) *Account {
	account := &Account{
		ID:    types.BuildAccountID(typ, types.StoragePublic, 1000),
		Nonce: 1,
		Slots: make([]StorageSlot, slots),
		Procedures: []Procedure{
			{Digest: testCaller, StorageOffset: 0, StorageSize: uint8(slots)},
		},
		CodeRoot: types.WordFromUint64(7, 7, 7, 7),
	}
	return account
}

func TestAuthenticateOrigin(t *testing.T) {
	ctx := testContext(t, testAccount(types.RegularAccountUpdatableCode, 4))

	t.Run("known caller gets its window", func(t *testing.T) {
		win, err := ctx.AuthenticateOrigin()
		require.NoError(t, err)
		require.Equal(t, Window{Offset: 0, Size: 4}, win)
	})
	t.Run("unknown caller is rejected", func(t *testing.T) {
		ctx.Caller = types.WordFromUint64(9, 9, 9, 9)
		defer func() { ctx.Caller = testCaller }()
		_, err := ctx.AuthenticateOrigin()
		require.ErrorIs(t, err, ErrAccessDenied)
	})
	t.Run("resolved against the targeted account", func(t *testing.T) {
		other := testAccount(types.RegularAccountUpdatableCode, 2)
		other.Procedures = nil
		require.NoError(t, ctx.EnterForeign(other))
		defer func() { require.NoError(t, ctx.ExitForeign()) }()
		_, err := ctx.AuthenticateOrigin()
		require.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestForeignContext(t *testing.T) {
	native := testAccount(types.RegularAccountUpdatableCode, 2)
	foreign := testAccount(types.RegularAccountImmutableCode, 2)
	ctx := testContext(t, native)

	require.Same(t, native, ctx.Current())
	require.False(t, ctx.InForeign())

	require.NoError(t, ctx.EnterForeign(foreign))
	require.True(t, ctx.InForeign())
	require.Same(t, foreign, ctx.Current())
	require.Equal(t, foreign.ID, ctx.ForeignID())
	require.ErrorIs(t, ctx.AssertNative(), ErrForeignContext)

	t.Run("no nesting", func(t *testing.T) {
		require.ErrorIs(t, ctx.EnterForeign(native), ErrAlreadyForeign)
	})

	require.NoError(t, ctx.ExitForeign())
	require.Same(t, native, ctx.Current())
	require.NoError(t, ctx.AssertNative())
	require.ErrorIs(t, ctx.ExitForeign(), ErrNotForeign)
}

func TestWindowTranslate(t *testing.T) {
	win := Window{Offset: 2, Size: 3}
	for _, tc := range []struct {
		desc  string
		index uint8
		slots int
		want  uint8
		err   error
	}{
		{desc: "first", index: 0, slots: 8, want: 2},
		{desc: "last", index: 2, slots: 8, want: 4},
		{desc: "past window", index: 3, slots: 8, err: ErrIndexOutOfBounds},
		{desc: "past storage", index: 2, slots: 3, err: ErrIndexOutOfBounds},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := win.Translate(tc.index, tc.slots)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
	t.Run("no uint8 wraparound", func(t *testing.T) {
		wide := Window{Offset: 250, Size: 10}
		_, err := wide.Translate(10, 255)
		require.ErrorIs(t, err, ErrIndexOutOfBounds)
	})
}

func TestActiveNote(t *testing.T) {
	ctx := testContext(t, testAccount(types.RegularAccountUpdatableCode, 1))

	_, err := ctx.ActiveNote()
	require.ErrorIs(t, err, ErrNoActiveNote)

	note := &InputNote{SerialNumber: types.WordFromUint64(1, 2, 3, 4)}
	ctx.SetActiveNote(note)
	got, err := ctx.ActiveNote()
	require.NoError(t, err)
	require.Same(t, note, got)

	ctx.ClearActiveNote()
	_, err = ctx.ActiveNote()
	require.ErrorIs(t, err, ErrNoActiveNote)
}

func TestErrorCodes(t *testing.T) {
	code, ok := Code(ErrAccessDenied)
	require.True(t, ok)
	require.EqualValues(t, 0x1001, code)

	_, ok = Code(ErrInternal)
	require.False(t, ok)
}

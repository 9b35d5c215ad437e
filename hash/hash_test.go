package hash

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veilmesh/go-veilmesh/common/types"
)

func TestElements(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, Elements(1, 2, 3), Elements(1, 2, 3))
	})
	t.Run("order sensitive", func(t *testing.T) {
		require.NotEqual(t, Elements(1, 2, 3), Elements(3, 2, 1))
	})
	t.Run("length sensitive", func(t *testing.T) {
		require.NotEqual(t, Elements(1, 2), Elements(1, 2, 0))
	})
	t.Run("canonical output", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			require.True(t, Elements(types.Felt(i)).Valid())
		}
	})
}

func TestWords(t *testing.T) {
	a := types.WordFromUint64(1, 2, 3, 4)
	b := types.WordFromUint64(5, 6, 7, 8)
	require.Equal(t, Words(a, b), Elements(1, 2, 3, 4, 5, 6, 7, 8))
	require.NotEqual(t, Words(a, b), Words(b, a))
}

func TestFromDigest(t *testing.T) {
	digest := Sum([]byte("payload"))
	w, err := FromDigest(digest[:])
	require.NoError(t, err)
	require.True(t, w.Valid())

	_, err = FromDigest(digest[:16])
	require.ErrorContains(t, err, "wrong digest length")
}

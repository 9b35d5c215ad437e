package hash

import (
	"fmt"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/veilmesh/go-veilmesh/common/types"
)

const (
	// Size is the output size of the hash in bytes.
	Size = 32
)

// hashers amortizes hasher allocations across commitments; Elements runs on
// every state transition. Hashers go back reset.
var hashers = &sync.Pool{
	New: func() any {
		return blake3.New()
	},
}

// New returns a fresh blake3 hasher.
func New() *blake3.Hasher {
	return blake3.New()
}

// Sum computes the blake3 digest of data.
func Sum(data []byte) [Size]byte {
	return blake3.Sum256(data)
}

// Elements hashes a sequence of field elements into a word. Every commitment
// in the kernel is produced through this function, so two states agree iff
// their element sequences agree.
func Elements(elements ...types.Felt) types.Word {
	hasher := hashers.Get().(*blake3.Hasher)
	defer func() {
		hasher.Reset()
		hashers.Put(hasher)
	}()
	var buf [8]byte
	for _, f := range elements {
		putUint64(buf[:], uint64(f))
		hasher.Write(buf[:])
	}
	var digest [Size]byte
	_, _ = hasher.Digest().Read(digest[:])
	return wordFromDigest(digest)
}

// Words hashes a sequence of words into one word.
func Words(words ...types.Word) types.Word {
	elements := make([]types.Felt, 0, len(words)*types.WordLength)
	for _, w := range words {
		elements = append(elements, w[:]...)
	}
	return Elements(elements...)
}

// FromDigest folds an externally produced 32-byte digest into a word of
// canonical field elements.
func FromDigest(digest []byte) (types.Word, error) {
	if len(digest) != Size {
		return types.EmptyWord, fmt.Errorf("wrong digest length %d", len(digest))
	}
	var buf [Size]byte
	copy(buf[:], digest)
	return wordFromDigest(buf), nil
}

func putUint64(buf []byte, v uint64) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
}

// wordFromDigest folds a 32-byte digest into a word of canonical field
// elements. Each 8-byte chunk is reduced modulo the field order.
func wordFromDigest(digest [Size]byte) types.Word {
	var w types.Word
	for i := 0; i < types.WordLength; i++ {
		var v uint64
		for j := 0; j < 8; j++ {
			v |= uint64(digest[i*8+j]) << (8 * j)
		}
		w[i] = types.NewFelt(v % types.FieldModulus)
	}
	return w
}

package types

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/spacemeshos/go-scale"
)

const (
	// FieldModulus is the prime modulus of the 64-bit field (2^64 - 2^32 + 1).
	FieldModulus uint64 = 0xffffffff00000001

	// WordLength is the number of field elements in a word.
	WordLength = 4

	// WordSize is the serialized size of a word in bytes.
	WordSize = WordLength * 8
)

// Felt is a single element of the 64-bit prime field. Values are expected to
// be canonical, i.e. strictly below FieldModulus.
type Felt uint64

// NewFelt reduces value into the canonical field range.
func NewFelt(value uint64) Felt {
	if value >= FieldModulus {
		value -= FieldModulus
	}
	return Felt(value)
}

// Valid reports whether the element is in canonical form.
func (f Felt) Valid() bool {
	return uint64(f) < FieldModulus
}

// Word is a group of four field elements. Words are the unit of storage,
// commitment and stack exchange in the kernel.
type Word [WordLength]Felt

// EmptyWord is the all-zero word.
var EmptyWord = Word{}

// IsEmpty reports whether the word equals EmptyWord.
func (w Word) IsEmpty() bool {
	return w == EmptyWord
}

// Valid reports whether all elements are in canonical form.
func (w Word) Valid() bool {
	for _, f := range w {
		if !f.Valid() {
			return false
		}
	}
	return true
}

// Bytes returns the little-endian serialization of the word.
func (w Word) Bytes() []byte {
	buf := make([]byte, WordSize)
	for i, f := range w {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(f))
	}
	return buf
}

// WordFromBytes decodes a word from its little-endian serialization.
func WordFromBytes(buf []byte) (Word, error) {
	var w Word
	if len(buf) != WordSize {
		return w, fmt.Errorf("wrong word length %d", len(buf))
	}
	for i := range w {
		w[i] = Felt(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return w, nil
}

// WordFromUint64 builds a word from raw integers, reducing each into the
// canonical range.
func WordFromUint64(e0, e1, e2, e3 uint64) Word {
	return Word{NewFelt(e0), NewFelt(e1), NewFelt(e2), NewFelt(e3)}
}

func (w Word) String() string {
	return "0x" + hex.EncodeToString(w.Bytes())
}

// EncodeScale implements scale codec interface.
func (w *Word) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, w.Bytes())
}

// DecodeScale implements scale codec interface.
func (w *Word) DecodeScale(d *scale.Decoder) (int, error) {
	buf := make([]byte, WordSize)
	n, err := scale.DecodeByteArray(d, buf)
	if err != nil {
		return n, err
	}
	decoded, err := WordFromBytes(buf)
	if err != nil {
		return n, err
	}
	*w = decoded
	return n, nil
}

package types

import (
	"errors"
	"fmt"

	"github.com/spacemeshos/go-scale"
)

// NoteType describes how much of a note is recorded on the ledger.
type NoteType uint8

const (
	// NotePublic notes are stored on the ledger in full.
	NotePublic NoteType = 1
	// NotePrivate notes are represented on the ledger only by their commitment.
	NotePrivate NoteType = 2
	// NoteEncrypted notes are stored on the ledger in encrypted form.
	NoteEncrypted NoteType = 3
)

// Valid reports whether the value is a known note type.
func (t NoteType) Valid() bool {
	return t >= NotePublic && t <= NoteEncrypted
}

// ExecutionHint tells consumers when a note is intended to be consumed. It is
// advisory; the kernel only validates the discriminant.
type ExecutionHint uint8

const (
	// HintNone carries no consumption information.
	HintNone ExecutionHint = 0
	// HintAlways marks a note consumable in any block.
	HintAlways ExecutionHint = 1
	// HintAfterBlock marks a note consumable after a given block.
	HintAfterBlock ExecutionHint = 2
)

// Valid reports whether the value is a known execution hint.
func (h ExecutionHint) Valid() bool {
	return h <= HintAfterBlock
}

// ErrInvalidNoteMetadata is returned for out-of-range metadata discriminants.
var ErrInvalidNoteMetadata = errors.New("invalid note metadata")

// NoteMetadata is the public metadata attached to every note produced during
// a transaction.
type NoteMetadata struct {
	Sender AccountID
	Tag    uint32
	Aux    Felt
	Type   NoteType
	Hint   ExecutionHint
}

// Validate checks the metadata discriminants and the aux element.
func (m *NoteMetadata) Validate() error {
	if !m.Type.Valid() {
		return fmt.Errorf("%w: note type %d", ErrInvalidNoteMetadata, m.Type)
	}
	if !m.Hint.Valid() {
		return fmt.Errorf("%w: execution hint %d", ErrInvalidNoteMetadata, m.Hint)
	}
	if !m.Aux.Valid() {
		return fmt.Errorf("%w: aux is not a valid field element", ErrInvalidNoteMetadata)
	}
	return nil
}

// EncodeScale implements scale codec interface.
func (m *NoteMetadata) EncodeScale(e *scale.Encoder) (total int, err error) {
	{
		n, err := m.Sender.EncodeScale(e)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact32(e, m.Tag)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact64(e, uint64(m.Aux))
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact8(e, uint8(m.Type))
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact8(e, uint8(m.Hint))
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (m *NoteMetadata) DecodeScale(d *scale.Decoder) (total int, err error) {
	{
		n, err := m.Sender.DecodeScale(d)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeCompact32(d)
		if err != nil {
			return total, err
		}
		total += n
		m.Tag = field
	}
	{
		field, n, err := scale.DecodeCompact64(d)
		if err != nil {
			return total, err
		}
		total += n
		m.Aux = Felt(field)
	}
	{
		field, n, err := scale.DecodeCompact8(d)
		if err != nil {
			return total, err
		}
		total += n
		m.Type = NoteType(field)
	}
	{
		field, n, err := scale.DecodeCompact8(d)
		if err != nil {
			return total, err
		}
		total += n
		m.Hint = ExecutionHint(field)
	}
	return total, nil
}

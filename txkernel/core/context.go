package core

import (
	"fmt"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/config"
	"github.com/veilmesh/go-veilmesh/txkernel/amap"
)

// Context carries the full state of one transaction execution. It is built
// once per transaction, owned by a single goroutine, and discarded at the
// end; nothing in it is shared across transactions.
//
// The context is either in native mode (the initial and terminal state) or
// targets a read-only foreign account. All components resolve the "current
// account" through it instead of any ambient global.
type Context struct {
	Params   config.Params
	Maps     *amap.Service
	Observer VaultObserver

	// Native is the transaction's single mutable account.
	Native *Account
	// InitialCommitment is the native account's commitment at transaction
	// start; the zero word for accounts created by this transaction.
	InitialCommitment types.Word

	// Reference block data, fixed for the duration of the transaction.
	BlockHash   types.Word
	BlockNumber uint64
	// InputNotesCommitment binds the set of notes consumed by this
	// transaction; computed by the surrounding executor.
	InputNotesCommitment types.Word

	// Caller is the code commitment of the procedure currently executing
	// account or note code. The execution driver keeps it up to date; the
	// authentication gate resolves privileges from it.
	Caller types.Word

	// OutputNotes is the append-only list of notes created so far.
	OutputNotes []*OutputNote

	foreign   *Account
	foreignID types.AccountID

	activeNote *InputNote
}

// Current resolves the currently targeted account: the foreign snapshot
// while one is entered, the native account otherwise.
func (c *Context) Current() *Account {
	if c.foreign != nil {
		return c.foreign
	}
	return c.Native
}

// InForeign reports whether a foreign account is currently targeted.
func (c *Context) InForeign() bool {
	return c.foreign != nil
}

// ForeignID returns the id of the targeted foreign account.
func (c *Context) ForeignID() types.AccountID {
	return c.foreignID
}

// EnterForeign retargets the context at a read-only foreign snapshot.
// Nesting is not allowed: the context must be in native mode.
func (c *Context) EnterForeign(account *Account) error {
	if c.foreign != nil {
		return fmt.Errorf("%w: %s", ErrAlreadyForeign, c.foreignID.Hex())
	}
	c.foreign = account
	c.foreignID = account.ID
	return nil
}

// ExitForeign returns the context to native mode.
func (c *Context) ExitForeign() error {
	if c.foreign == nil {
		return ErrNotForeign
	}
	c.foreign = nil
	c.foreignID = types.AccountID{}
	return nil
}

// AssertNative fails unless the native account is targeted. Every mutating
// operation passes this gate first, so a foreign snapshot can never be
// corrupted.
func (c *Context) AssertNative() error {
	if c.foreign != nil {
		return fmt.Errorf("%w: targeting %s", ErrForeignContext, c.foreignID.Hex())
	}
	return nil
}

// AuthenticateOrigin checks that the current caller's code commitment is
// registered as a procedure of the currently targeted account and returns
// the storage window associated with it.
func (c *Context) AuthenticateOrigin() (Window, error) {
	proc, ok := c.Current().ProcedureByDigest(c.Caller)
	if !ok {
		return Window{}, fmt.Errorf("%w: caller %s target %s",
			ErrAccessDenied, c.Caller, c.Current().ID.Hex())
	}
	return Window{Offset: proc.StorageOffset, Size: proc.StorageSize}, nil
}

// ActiveNote returns the input note currently being consumed.
func (c *Context) ActiveNote() (*InputNote, error) {
	if c.activeNote == nil {
		return nil, ErrNoActiveNote
	}
	return c.activeNote, nil
}

// SetActiveNote points the input note cursor at note. The transaction driver
// calls this before executing each note script.
func (c *Context) SetActiveNote(note *InputNote) {
	c.activeNote = note
}

// ClearActiveNote resets the input note cursor.
func (c *Context) ClearActiveNote() {
	c.activeNote = nil
}

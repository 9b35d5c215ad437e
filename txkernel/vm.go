// Package txkernel is the transaction kernel: the privileged dispatcher every
// transaction goes through to read and mutate account state, move assets,
// issue and redeem them, emit notes and consult foreign accounts.
//
// The kernel exposes a closed, offset indexed procedure table. A transaction
// driver creates one Transaction per executed transaction and funnels every
// call through Invoke; nothing else can reach the state.
package txkernel

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/config"
	"github.com/veilmesh/go-veilmesh/hash"
	"github.com/veilmesh/go-veilmesh/txkernel/amap"
	"github.com/veilmesh/go-veilmesh/txkernel/core"
	"github.com/veilmesh/go-veilmesh/txkernel/foreign"
	"github.com/veilmesh/go-veilmesh/txkernel/registry"
)

// StackWidth is the fixed width of the procedure call stack. Invoke accepts
// at most this many inputs and always returns exactly this many outputs.
const StackWidth = 16

// Opt is for changing Kernel during initialization.
type Opt func(*Kernel)

// WithLogger sets logger for the Kernel.
func WithLogger(logger *zap.Logger) Opt {
	return func(k *Kernel) {
		k.logger = logger
	}
}

// WithParams overrides the default protocol parameters.
func WithParams(params config.Params) Opt {
	return func(k *Kernel) {
		k.params = params
	}
}

// WithObserver sets the vault observer for all transactions created by the
// kernel. The default observer feeds the vault mutation metrics.
func WithObserver(observer core.VaultObserver) Opt {
	return func(k *Kernel) {
		k.observer = observer
	}
}

// Kernel holds the immutable procedure table and the configuration shared by
// all transactions. Safe for concurrent use: per-transaction state lives in
// Transaction.
type Kernel struct {
	logger   *zap.Logger
	params   config.Params
	observer core.VaultObserver
	registry *registry.Registry
}

// New returns a Kernel instance with the version 0 procedure table.
func New(opts ...Opt) *Kernel {
	k := &Kernel{
		logger:   zap.NewNop(),
		params:   config.DefaultParams(),
		observer: vaultMeter{},
		registry: newRegistry(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Root returns the kernel commitment: the merkle root over the procedure
// digests in offset order.
func (k *Kernel) Root() (types.Word, error) {
	return k.registry.Root()
}

// NumProcedures returns the size of the procedure table.
func (k *Kernel) NumProcedures() int {
	return k.registry.Len()
}

// TransactionArgs carries everything needed to start one transaction.
type TransactionArgs struct {
	// Account is the native account; it is mutated in place as the
	// transaction executes.
	Account *core.Account
	// InputNotes are the notes consumed by the transaction, in consumption
	// order.
	InputNotes []*core.InputNote
	// BlockHash and BlockNumber reference the block the transaction executes
	// against.
	BlockHash   types.Word
	BlockNumber uint64
	// Provider and Ledger back the foreign context manager. Both may be nil
	// for transactions that never consult foreign accounts.
	Provider core.AdviceProvider
	Ledger   core.CommitmentLoader
}

// Transaction is the kernel state of one executing transaction. Owned by a
// single goroutine and discarded at the end.
type Transaction struct {
	kernel     *Kernel
	ctx        *core.Context
	foreign    *foreign.Manager
	inputNotes []*core.InputNote
}

// NewTransaction builds the execution context for one transaction.
func (k *Kernel) NewTransaction(args TransactionArgs) (*Transaction, error) {
	if args.Account == nil {
		return nil, errors.New("transaction needs a native account")
	}
	ctx := &core.Context{
		Params:               k.params,
		Maps:                 amap.New(),
		Observer:             k.observer,
		Native:               args.Account,
		InitialCommitment:    args.Account.Commitment(),
		BlockHash:            args.BlockHash,
		BlockNumber:          args.BlockNumber,
		InputNotesCommitment: notesCommitment(args.InputNotes),
	}
	tx := &Transaction{
		kernel:     k,
		ctx:        ctx,
		inputNotes: args.InputNotes,
	}
	if args.Provider != nil && args.Ledger != nil {
		manager, err := foreign.New(ctx, args.Provider, args.Ledger, foreign.WithLogger(k.logger))
		if err != nil {
			return nil, err
		}
		tx.foreign = manager
	}
	return tx, nil
}

// Context exposes the transaction context to typed (non-dispatched) callers.
func (tx *Transaction) Context() *core.Context {
	return tx.ctx
}

// SetCaller records the code commitment of the procedure about to run. The
// execution driver must keep it current; the authentication gate resolves
// privileges from it.
func (tx *Transaction) SetCaller(digest types.Word) {
	tx.ctx.Caller = digest
}

// Invoke runs the procedure at the given offset with the given stack inputs.
// Outputs are right-padded with zeroes to StackWidth.
func (tx *Transaction) Invoke(offset uint32, inputs []types.Felt) ([]types.Felt, error) {
	proc, err := tx.kernel.registry.Get(offset)
	if err != nil {
		invocations.WithLabelValues("unknown", "rejected").Inc()
		return nil, err
	}
	if len(inputs) > StackWidth {
		invocations.WithLabelValues(proc.Name, "rejected").Inc()
		return nil, fmt.Errorf("%w: %d inputs", core.ErrStackOverflow, len(inputs))
	}
	outputs, err := proc.Handler(tx.ctx, inputs)
	if err != nil {
		invocations.WithLabelValues(proc.Name, "failed").Inc()
		tx.kernel.logger.Debug("kernel procedure failed",
			zap.String("procedure", proc.Name),
			zap.Error(err),
		)
		return nil, err
	}
	invocations.WithLabelValues(proc.Name, "ok").Inc()
	padded := make([]types.Felt, StackWidth)
	copy(padded, outputs)
	return padded, nil
}

// BeginNote points the input note cursor at the note with the given index.
// The driver calls this before running each note script.
func (tx *Transaction) BeginNote(index int) error {
	if index < 0 || index >= len(tx.inputNotes) {
		return fmt.Errorf("%w: input note %d of %d",
			core.ErrInvalidNoteIndex, index, len(tx.inputNotes))
	}
	tx.ctx.SetActiveNote(tx.inputNotes[index])
	return nil
}

// EndNote clears the input note cursor.
func (tx *Transaction) EndNote() {
	tx.ctx.ClearActiveNote()
}

// EnterForeign retargets the transaction at a read-only foreign account.
func (tx *Transaction) EnterForeign(id types.AccountID) error {
	if tx.foreign == nil {
		return fmt.Errorf("%w: transaction has no advice provider", core.ErrInternal)
	}
	if err := tx.foreign.Enter(id); err != nil {
		return err
	}
	foreignEnters.WithLabelValues().Inc()
	return nil
}

// ExitForeign returns the transaction to the native account.
func (tx *Transaction) ExitForeign() error {
	if tx.foreign == nil {
		return core.ErrNotForeign
	}
	return tx.foreign.Exit()
}

// OutputNotes returns the notes created so far.
func (tx *Transaction) OutputNotes() []*core.OutputNote {
	return tx.ctx.OutputNotes
}

// notesCommitment binds the set of consumed notes: the hash over each note's
// serial number, inputs hash and assets commitment, in consumption order.
func notesCommitment(notes []*core.InputNote) types.Word {
	if len(notes) == 0 {
		return types.EmptyWord
	}
	words := make([]types.Word, 0, len(notes)*3)
	for _, note := range notes {
		words = append(words, note.SerialNumber, note.InputsHash, note.AssetsCommitment())
	}
	return hash.Words(words...)
}

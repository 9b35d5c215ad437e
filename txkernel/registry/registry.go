// Package registry holds the kernel procedure table: the closed, offset
// indexed set of procedures a transaction can invoke. Offsets are a stable
// ABI; the table is populated once at kernel construction and never changes
// afterwards.
package registry

import (
	"fmt"

	merkle "github.com/spacemeshos/merkle-tree"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/hash"
	"github.com/veilmesh/go-veilmesh/txkernel/core"
)

// Handler executes one kernel procedure against the transaction context.
// Inputs are the caller's stack values in call order; outputs are returned
// unpadded, the dispatcher pads them to the stack width.
type Handler func(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error)

// Procedure is one entry of the kernel procedure table.
type Procedure struct {
	Name    string
	Digest  types.Word
	Handler Handler
}

// New creates an empty Registry instance.
func New() *Registry {
	return &Registry{}
}

// Registry stores the mapping from procedure offset to procedure.
type Registry struct {
	procedures []Procedure
}

// Register appends the procedure at the given offset. Panics if the offset is
// already taken or would leave a gap: the table is dense and built in order.
func (r *Registry) Register(offset uint32, proc Procedure) {
	if int(offset) != len(r.procedures) {
		panic(fmt.Sprintf("procedure %s registered at offset %d, expected %d",
			proc.Name, offset, len(r.procedures)))
	}
	r.procedures = append(r.procedures, proc)
}

// Get returns the procedure at the offset.
func (r *Registry) Get(offset uint32) (*Procedure, error) {
	if int(offset) >= len(r.procedures) {
		return nil, fmt.Errorf("%w: offset %d, table size %d",
			core.ErrOffsetOutOfBounds, offset, len(r.procedures))
	}
	return &r.procedures[offset], nil
}

// Len returns the number of registered procedures.
func (r *Registry) Len() int {
	return len(r.procedures)
}

// Root returns the kernel commitment: the merkle root over the procedure
// digests in offset order.
func (r *Registry) Root() (types.Word, error) {
	tree, err := merkle.NewTree()
	if err != nil {
		return types.EmptyWord, fmt.Errorf("build procedure tree: %w", err)
	}
	for _, proc := range r.procedures {
		if err := tree.AddLeaf(proc.Digest.Bytes()); err != nil {
			return types.EmptyWord, fmt.Errorf("add procedure %s: %w", proc.Name, err)
		}
	}
	root, err := hash.FromDigest(tree.Root())
	if err != nil {
		return types.EmptyWord, fmt.Errorf("fold procedure tree root: %w", err)
	}
	return root, nil
}

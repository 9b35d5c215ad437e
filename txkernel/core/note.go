package core

import (
	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/hash"
)

// OutputNote is a note under construction during the current transaction.
// Notes are created once, populated with assets, and never deleted.
type OutputNote struct {
	Metadata  types.NoteMetadata
	Recipient types.Word
	Assets    []types.Asset
}

// AssetsCommitment hashes the note's asset list.
func (n *OutputNote) AssetsCommitment() types.Word {
	if len(n.Assets) == 0 {
		return types.EmptyWord
	}
	words := make([]types.Word, 0, len(n.Assets))
	for _, asset := range n.Assets {
		words = append(words, asset.Word())
	}
	return hash.Words(words...)
}

// Commitment binds the recipient, metadata and asset list of the note.
func (n *OutputNote) Commitment() types.Word {
	assets := n.AssetsCommitment()
	sender := n.Metadata.Sender.Elements()
	return hash.Elements(
		n.Recipient[0], n.Recipient[1], n.Recipient[2], n.Recipient[3],
		sender[0], sender[1],
		types.Felt(n.Metadata.Tag), n.Metadata.Aux,
		types.Felt(n.Metadata.Type), types.Felt(n.Metadata.Hint),
		assets[0], assets[1], assets[2], assets[3],
	)
}

// InputNote is the read-only view of the input note currently being
// consumed. The transaction driver points the context's cursor at it before
// running the note's script.
type InputNote struct {
	Sender       types.AccountID
	SerialNumber types.Word
	InputsHash   types.Word
	Assets       []types.Asset
}

// AssetsCommitment hashes the input note's asset list.
func (n *InputNote) AssetsCommitment() types.Word {
	if len(n.Assets) == 0 {
		return types.EmptyWord
	}
	words := make([]types.Word, 0, len(n.Assets))
	for _, asset := range n.Assets {
		words = append(words, asset.Word())
	}
	return hash.Words(words...)
}

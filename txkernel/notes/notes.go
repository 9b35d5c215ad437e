// Package notes implements note emission: construction of the transaction's
// output notes and read access to the input note currently being consumed.
package notes

import (
	"fmt"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/hash"
	"github.com/veilmesh/go-veilmesh/txkernel/core"
)

// Create allocates the next output note and records its metadata and
// recipient. The sender is always the native account. Returns the index of
// the created note.
func Create(ctx *core.Context, tag uint32, aux types.Felt, noteType types.NoteType, hint types.ExecutionHint, recipient types.Word) (int, error) {
	if _, err := ctx.AuthenticateOrigin(); err != nil {
		return 0, err
	}
	if err := ctx.AssertNative(); err != nil {
		return 0, err
	}
	metadata := types.NoteMetadata{
		Sender: ctx.Native.ID,
		Tag:    tag,
		Aux:    aux,
		Type:   noteType,
		Hint:   hint,
	}
	if err := metadata.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %s", core.ErrMalformedNote, err)
	}
	if len(ctx.OutputNotes) >= ctx.Params.MaxOutputNotes {
		return 0, fmt.Errorf("%w: limit %d", core.ErrTooManyNotes, ctx.Params.MaxOutputNotes)
	}
	ctx.OutputNotes = append(ctx.OutputNotes, &core.OutputNote{
		Metadata:  metadata,
		Recipient: recipient,
	})
	return len(ctx.OutputNotes) - 1, nil
}

// AddAsset appends an asset to a previously created output note. Within one
// note every fungible faucet may appear at most once and every non-fungible
// asset is unique.
func AddAsset(ctx *core.Context, index int, asset types.Asset) (types.Asset, error) {
	if _, err := ctx.AuthenticateOrigin(); err != nil {
		return types.Asset{}, err
	}
	if err := ctx.AssertNative(); err != nil {
		return types.Asset{}, err
	}
	if index < 0 || index >= len(ctx.OutputNotes) {
		return types.Asset{}, fmt.Errorf("%w: index %d, %d notes created",
			core.ErrInvalidNoteIndex, index, len(ctx.OutputNotes))
	}
	if err := asset.Validate(); err != nil {
		return types.Asset{}, fmt.Errorf("%w: %s", core.ErrMalformedAsset, err)
	}
	note := ctx.OutputNotes[index]
	if len(note.Assets) >= ctx.Params.MaxAssetsPerNote {
		return types.Asset{}, fmt.Errorf("%w: limit %d", core.ErrTooManyAssets, ctx.Params.MaxAssetsPerNote)
	}
	for _, existing := range note.Assets {
		if asset.IsFungible() && existing.IsFungible() && existing.Faucet() == asset.Faucet() {
			return types.Asset{}, fmt.Errorf("%w: faucet %s already present in note %d",
				core.ErrTooManyAssets, asset.Faucet().Hex(), index)
		}
		if !asset.IsFungible() && existing == asset {
			return types.Asset{}, fmt.Errorf("%w: %s in note %d",
				core.ErrDuplicateNonFungible, asset, index)
		}
	}
	note.Assets = append(note.Assets, asset)
	return asset, nil
}

// AssetsInfo returns the assets commitment and asset count of the input
// note currently being consumed.
func AssetsInfo(ctx *core.Context) (types.Word, int, error) {
	note, err := ctx.ActiveNote()
	if err != nil {
		return types.EmptyWord, 0, err
	}
	return note.AssetsCommitment(), len(note.Assets), nil
}

// SerialNumber returns the serial number of the input note currently being
// consumed.
func SerialNumber(ctx *core.Context) (types.Word, error) {
	note, err := ctx.ActiveNote()
	if err != nil {
		return types.EmptyWord, err
	}
	return note.SerialNumber, nil
}

// InputsHash returns the inputs hash of the input note currently being
// consumed.
func InputsHash(ctx *core.Context) (types.Word, error) {
	note, err := ctx.ActiveNote()
	if err != nil {
		return types.EmptyWord, err
	}
	return note.InputsHash, nil
}

// Sender returns the sender of the input note currently being consumed.
func Sender(ctx *core.Context) (types.AccountID, error) {
	note, err := ctx.ActiveNote()
	if err != nil {
		return types.AccountID{}, err
	}
	return note.Sender, nil
}

// InputNotesCommitment returns the commitment binding all notes consumed by
// this transaction.
func InputNotesCommitment(ctx *core.Context) types.Word {
	return ctx.InputNotesCommitment
}

// OutputNotesCommitment hashes the commitments of all output notes created
// so far, in creation order.
func OutputNotesCommitment(ctx *core.Context) types.Word {
	if len(ctx.OutputNotes) == 0 {
		return types.EmptyWord
	}
	words := make([]types.Word, 0, len(ctx.OutputNotes))
	for _, note := range ctx.OutputNotes {
		words = append(words, note.Commitment())
	}
	return hash.Words(words...)
}

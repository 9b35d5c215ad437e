package txkernel

import (
	"fmt"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/txkernel/core"
	"github.com/veilmesh/go-veilmesh/txkernel/faucet"
	"github.com/veilmesh/go-veilmesh/txkernel/notes"
	"github.com/veilmesh/go-veilmesh/txkernel/registry"
	"github.com/veilmesh/go-veilmesh/txkernel/storage"
	"github.com/veilmesh/go-veilmesh/txkernel/vault"
)

// newRegistry builds the version 0 procedure table. The order must match
// kernel0Digests; Register panics on any gap or duplicate.
func newRegistry() *registry.Registry {
	reg := registry.New()
	for offset, proc := range []registry.Procedure{
		{Name: "account_vault_add_asset", Handler: vaultAddAsset},
		{Name: "account_vault_get_balance", Handler: vaultGetBalance},
		{Name: "account_vault_has_non_fungible_asset", Handler: vaultHasNonFungible},
		{Name: "account_vault_remove_asset", Handler: vaultRemoveAsset},
		{Name: "get_account_id", Handler: getAccountID},
		{Name: "get_account_item", Handler: getItem},
		{Name: "get_account_map_item", Handler: getMapItem},
		{Name: "get_account_nonce", Handler: getNonce},
		{Name: "get_account_vault_commitment", Handler: vaultCommitment},
		{Name: "get_current_account_hash", Handler: currentCommitment},
		{Name: "get_initial_account_hash", Handler: initialCommitment},
		{Name: "incr_account_nonce", Handler: incrementNonce},
		{Name: "set_account_code", Handler: setCode},
		{Name: "set_account_item", Handler: setItem},
		{Name: "set_account_map_item", Handler: setMapItem},
		{Name: "burn_asset", Handler: burnAsset},
		{Name: "get_fungible_faucet_total_issuance", Handler: totalIssuance},
		{Name: "mint_asset", Handler: mintAsset},
		{Name: "add_asset_to_note", Handler: noteAddAsset},
		{Name: "create_note", Handler: noteCreate},
		{Name: "get_input_notes_commitment", Handler: inputNotesCommitment},
		{Name: "get_note_assets_info", Handler: noteAssetsInfo},
		{Name: "get_note_inputs_hash", Handler: noteInputsHash},
		{Name: "get_note_sender", Handler: noteSender},
		{Name: "get_note_serial_number", Handler: noteSerialNumber},
		{Name: "get_output_notes_hash", Handler: outputNotesCommitment},
		{Name: "get_block_hash", Handler: blockHash},
		{Name: "get_block_number", Handler: blockNumber},
	} {
		proc.Digest = kernel0Digests[offset]
		reg.Register(uint32(offset), proc)
	}
	return reg
}

// Stack shape helpers. Handlers receive the caller's stack values in call
// order and check exact arity before touching them.

func arity(inputs []types.Felt, n int) error {
	if len(inputs) != n {
		return fmt.Errorf("%w: got %d inputs, want %d", core.ErrInvalidArguments, len(inputs), n)
	}
	return nil
}

func wordAt(inputs []types.Felt, at int) types.Word {
	var w types.Word
	copy(w[:], inputs[at:at+types.WordLength])
	return w
}

func indexAt(inputs []types.Felt, at int) (uint8, error) {
	v := uint64(inputs[at])
	if v > 0xff {
		return 0, fmt.Errorf("%w: storage index %d", core.ErrInvalidArguments, v)
	}
	return uint8(v), nil
}

func idAt(inputs []types.Felt, at int) (types.AccountID, error) {
	id, err := types.NewAccountID(inputs[at], inputs[at+1])
	if err != nil {
		return types.AccountID{}, fmt.Errorf("%w: %s", core.ErrInvalidArguments, err)
	}
	return id, nil
}

func boolFelt(v bool) types.Felt {
	if v {
		return 1
	}
	return 0
}

// Inputs: asset word. Outputs: the resulting asset word.
func vaultAddAsset(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, types.WordLength); err != nil {
		return nil, err
	}
	result, err := vault.AddAsset(ctx, types.Asset(wordAt(inputs, 0)))
	if err != nil {
		return nil, err
	}
	w := result.Word()
	return w[:], nil
}

// Inputs: faucet id (prefix, suffix). Outputs: balance.
func vaultGetBalance(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 2); err != nil {
		return nil, err
	}
	id, err := idAt(inputs, 0)
	if err != nil {
		return nil, err
	}
	balance, err := vault.GetBalance(ctx, id)
	if err != nil {
		return nil, err
	}
	return []types.Felt{types.Felt(balance)}, nil
}

// Inputs: asset word. Outputs: 1 if present, 0 otherwise.
func vaultHasNonFungible(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, types.WordLength); err != nil {
		return nil, err
	}
	has, err := vault.HasNonFungible(ctx, types.Asset(wordAt(inputs, 0)))
	if err != nil {
		return nil, err
	}
	return []types.Felt{boolFelt(has)}, nil
}

// Inputs: asset word. Outputs: the removed asset word.
func vaultRemoveAsset(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, types.WordLength); err != nil {
		return nil, err
	}
	removed, err := vault.RemoveAsset(ctx, types.Asset(wordAt(inputs, 0)))
	if err != nil {
		return nil, err
	}
	w := removed.Word()
	return w[:], nil
}

// Outputs: id (prefix, suffix).
func getAccountID(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 0); err != nil {
		return nil, err
	}
	id := storage.GetID(ctx)
	return []types.Felt{id.Prefix, id.Suffix}, nil
}

// Inputs: slot index. Outputs: slot value word.
func getItem(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 1); err != nil {
		return nil, err
	}
	win, err := ctx.AuthenticateOrigin()
	if err != nil {
		return nil, err
	}
	index, err := indexAt(inputs, 0)
	if err != nil {
		return nil, err
	}
	value, err := storage.GetItem(ctx, win, index)
	if err != nil {
		return nil, err
	}
	return value[:], nil
}

// Inputs: slot index, key word. Outputs: value word.
func getMapItem(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 1+types.WordLength); err != nil {
		return nil, err
	}
	win, err := ctx.AuthenticateOrigin()
	if err != nil {
		return nil, err
	}
	index, err := indexAt(inputs, 0)
	if err != nil {
		return nil, err
	}
	value, err := storage.GetMapItem(ctx, win, index, wordAt(inputs, 1))
	if err != nil {
		return nil, err
	}
	return value[:], nil
}

// Outputs: nonce.
func getNonce(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 0); err != nil {
		return nil, err
	}
	return []types.Felt{storage.GetNonce(ctx)}, nil
}

// Outputs: vault root word.
func vaultCommitment(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 0); err != nil {
		return nil, err
	}
	root := vault.Commitment(ctx)
	return root[:], nil
}

// Outputs: current account commitment word.
func currentCommitment(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 0); err != nil {
		return nil, err
	}
	commitment := storage.CurrentCommitment(ctx)
	return commitment[:], nil
}

// Outputs: account commitment word at transaction start.
func initialCommitment(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 0); err != nil {
		return nil, err
	}
	commitment := storage.InitialCommitment(ctx)
	return commitment[:], nil
}

// Inputs: delta. Outputs: new nonce.
func incrementNonce(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 1); err != nil {
		return nil, err
	}
	nonce, err := storage.IncrementNonce(ctx, uint64(inputs[0]))
	if err != nil {
		return nil, err
	}
	return []types.Felt{nonce}, nil
}

// Inputs: code commitment word.
func setCode(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, types.WordLength); err != nil {
		return nil, err
	}
	if err := storage.SetCode(ctx, wordAt(inputs, 0)); err != nil {
		return nil, err
	}
	return nil, nil
}

// Inputs: slot index, value word. Outputs: previous value word, new storage
// commitment word.
func setItem(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 1+types.WordLength); err != nil {
		return nil, err
	}
	win, err := ctx.AuthenticateOrigin()
	if err != nil {
		return nil, err
	}
	index, err := indexAt(inputs, 0)
	if err != nil {
		return nil, err
	}
	old, root, err := storage.SetItem(ctx, win, index, wordAt(inputs, 1))
	if err != nil {
		return nil, err
	}
	out := make([]types.Felt, 0, 2*types.WordLength)
	out = append(out, old[:]...)
	return append(out, root[:]...), nil
}

// Inputs: slot index, key word, value word. Outputs: previous map root word,
// previous value word.
func setMapItem(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 1+2*types.WordLength); err != nil {
		return nil, err
	}
	win, err := ctx.AuthenticateOrigin()
	if err != nil {
		return nil, err
	}
	index, err := indexAt(inputs, 0)
	if err != nil {
		return nil, err
	}
	oldRoot, oldValue, err := storage.SetMapItem(ctx, win, index, wordAt(inputs, 1), wordAt(inputs, 1+types.WordLength))
	if err != nil {
		return nil, err
	}
	out := make([]types.Felt, 0, 2*types.WordLength)
	out = append(out, oldRoot[:]...)
	return append(out, oldValue[:]...), nil
}

// Inputs: asset word. Outputs: the burned asset word.
func burnAsset(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, types.WordLength); err != nil {
		return nil, err
	}
	burned, err := faucet.Burn(ctx, types.Asset(wordAt(inputs, 0)))
	if err != nil {
		return nil, err
	}
	w := burned.Word()
	return w[:], nil
}

// Outputs: total issuance.
func totalIssuance(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 0); err != nil {
		return nil, err
	}
	issuance, err := faucet.TotalIssuance(ctx)
	if err != nil {
		return nil, err
	}
	return []types.Felt{types.Felt(issuance)}, nil
}

// Inputs: asset word. Outputs: the minted asset word.
func mintAsset(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, types.WordLength); err != nil {
		return nil, err
	}
	minted, err := faucet.Mint(ctx, types.Asset(wordAt(inputs, 0)))
	if err != nil {
		return nil, err
	}
	w := minted.Word()
	return w[:], nil
}

// Inputs: note index, asset word. Outputs: the added asset word.
func noteAddAsset(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 1+types.WordLength); err != nil {
		return nil, err
	}
	added, err := notes.AddAsset(ctx, int(inputs[0]), types.Asset(wordAt(inputs, 1)))
	if err != nil {
		return nil, err
	}
	w := added.Word()
	return w[:], nil
}

// Inputs: tag, aux, note type, execution hint, recipient word. Outputs: note
// index.
func noteCreate(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 4+types.WordLength); err != nil {
		return nil, err
	}
	if uint64(inputs[0]) > 0xffffffff {
		return nil, fmt.Errorf("%w: note tag %d", core.ErrInvalidArguments, uint64(inputs[0]))
	}
	index, err := notes.Create(ctx,
		uint32(inputs[0]), inputs[1],
		types.NoteType(inputs[2]), types.ExecutionHint(inputs[3]),
		wordAt(inputs, 4),
	)
	if err != nil {
		return nil, err
	}
	return []types.Felt{types.Felt(index)}, nil
}

// Outputs: input notes commitment word.
func inputNotesCommitment(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 0); err != nil {
		return nil, err
	}
	commitment := notes.InputNotesCommitment(ctx)
	return commitment[:], nil
}

// Outputs: assets commitment word, asset count.
func noteAssetsInfo(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 0); err != nil {
		return nil, err
	}
	commitment, count, err := notes.AssetsInfo(ctx)
	if err != nil {
		return nil, err
	}
	return append(commitment[:], types.Felt(count)), nil
}

// Outputs: inputs hash word.
func noteInputsHash(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 0); err != nil {
		return nil, err
	}
	h, err := notes.InputsHash(ctx)
	if err != nil {
		return nil, err
	}
	return h[:], nil
}

// Outputs: sender id (prefix, suffix).
func noteSender(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 0); err != nil {
		return nil, err
	}
	sender, err := notes.Sender(ctx)
	if err != nil {
		return nil, err
	}
	return []types.Felt{sender.Prefix, sender.Suffix}, nil
}

// Outputs: serial number word.
func noteSerialNumber(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 0); err != nil {
		return nil, err
	}
	serial, err := notes.SerialNumber(ctx)
	if err != nil {
		return nil, err
	}
	return serial[:], nil
}

// Outputs: output notes commitment word.
func outputNotesCommitment(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 0); err != nil {
		return nil, err
	}
	commitment := notes.OutputNotesCommitment(ctx)
	return commitment[:], nil
}

// Outputs: reference block hash word.
func blockHash(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 0); err != nil {
		return nil, err
	}
	return ctx.BlockHash[:], nil
}

// Outputs: reference block number.
func blockNumber(ctx *core.Context, inputs []types.Felt) ([]types.Felt, error) {
	if err := arity(inputs, 0); err != nil {
		return nil, err
	}
	return []types.Felt{types.NewFelt(ctx.BlockNumber)}, nil
}

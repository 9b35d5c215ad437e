// Package faucet implements the issuance subsystem. Its operations are only
// reachable when the native account's id marks it a faucet; issuance
// bookkeeping lives in the reserved storage slot, which the generic storage
// API cannot touch.
package faucet

import (
	"errors"
	"fmt"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/txkernel/core"
	"github.com/veilmesh/go-veilmesh/txkernel/vault"
)

// issuanceElement is the element of the reserved slot word holding the
// fungible total issuance counter.
const issuanceElement = 3

// Mint issues a new asset and credits it to the faucet's own vault, from
// where the transaction moves it into output notes.
func Mint(ctx *core.Context, asset types.Asset) (types.Asset, error) {
	if _, err := ctx.AuthenticateOrigin(); err != nil {
		return types.Asset{}, err
	}
	if err := ctx.AssertNative(); err != nil {
		return types.Asset{}, err
	}
	account := ctx.Current()
	if !account.IsFaucet() {
		return types.Asset{}, fmt.Errorf("%w: %s", core.ErrNotAFaucet, account.ID.Hex())
	}
	if err := asset.Validate(); err != nil {
		return types.Asset{}, fmt.Errorf("%w: %s", core.ErrMalformedAsset, err)
	}
	if err := checkIssuer(account, asset); err != nil {
		return types.Asset{}, err
	}

	if asset.IsFungible() {
		if err := recordFungibleMint(ctx, account, asset.Amount()); err != nil {
			return types.Asset{}, err
		}
	} else {
		if err := recordNonFungibleMint(ctx, account, asset); err != nil {
			return types.Asset{}, err
		}
	}
	return vault.AddAsset(ctx, asset)
}

// Burn redeems an asset supplied to the transaction, debiting it from the
// faucet's vault and releasing the corresponding issuance.
func Burn(ctx *core.Context, asset types.Asset) (types.Asset, error) {
	if _, err := ctx.AuthenticateOrigin(); err != nil {
		return types.Asset{}, err
	}
	if err := ctx.AssertNative(); err != nil {
		return types.Asset{}, err
	}
	account := ctx.Current()
	if !account.IsFaucet() {
		return types.Asset{}, fmt.Errorf("%w: %s", core.ErrNotAFaucet, account.ID.Hex())
	}
	if err := asset.Validate(); err != nil {
		return types.Asset{}, fmt.Errorf("%w: %s", core.ErrMalformedAsset, err)
	}
	if err := checkIssuer(account, asset); err != nil {
		return types.Asset{}, err
	}

	removed, err := vault.RemoveAsset(ctx, asset)
	if err != nil {
		// Whatever the vault cannot cover was not supplied to this
		// transaction.
		if asset.IsFungible() && errors.Is(err, core.ErrAssetNotFound) {
			return types.Asset{}, fmt.Errorf("%w: %s", core.ErrInsufficientSupply, asset)
		}
		return types.Asset{}, err
	}

	if asset.IsFungible() {
		if err := recordFungibleBurn(ctx, account, asset.Amount()); err != nil {
			return types.Asset{}, err
		}
	} else {
		if err := recordNonFungibleBurn(ctx, account, asset); err != nil {
			return types.Asset{}, err
		}
	}
	return removed, nil
}

// TotalIssuance reads the issuance counter of a fungible faucet.
func TotalIssuance(ctx *core.Context) (uint64, error) {
	account := ctx.Current()
	if account.ID.Type() != types.FungibleFaucet {
		return 0, fmt.Errorf("%w: %s", core.ErrNotAFungibleFaucet, account.ID.Hex())
	}
	slot, err := account.Slot(core.ReservedSlot)
	if err != nil {
		return 0, err
	}
	return uint64(slot.Value[issuanceElement]), nil
}

// checkIssuer ties the asset to the targeted faucet: a faucet can only
// issue and redeem its own asset.
func checkIssuer(account *core.Account, asset types.Asset) error {
	if asset.IsFungible() {
		if asset.Faucet() != account.ID {
			return fmt.Errorf("%w: asset faucet %s, account %s",
				core.ErrFaucetMismatch, asset.Faucet().Hex(), account.ID.Hex())
		}
		return nil
	}
	if asset.FaucetPrefix() != account.ID.Prefix {
		return fmt.Errorf("%w: asset prefix %#x, account %s",
			core.ErrFaucetMismatch, uint64(asset.FaucetPrefix()), account.ID.Hex())
	}
	return nil
}

func recordFungibleMint(ctx *core.Context, account *core.Account, amount uint64) error {
	slot, err := account.Slot(core.ReservedSlot)
	if err != nil {
		return err
	}
	issuance := uint64(slot.Value[issuanceElement])
	if amount > ctx.Params.MaxIssuance || issuance > ctx.Params.MaxIssuance-amount {
		return fmt.Errorf("%w: issuance %d + %d over cap %d",
			core.ErrIssuanceCapExceeded, issuance, amount, ctx.Params.MaxIssuance)
	}
	slot.Value[issuanceElement] = types.NewFelt(issuance + amount)
	return nil
}

func recordFungibleBurn(ctx *core.Context, account *core.Account, amount uint64) error {
	slot, err := account.Slot(core.ReservedSlot)
	if err != nil {
		return err
	}
	issuance := uint64(slot.Value[issuanceElement])
	if issuance < amount {
		return fmt.Errorf("%w: issuance %d, burning %d", core.ErrInternal, issuance, amount)
	}
	slot.Value[issuanceElement] = types.NewFelt(issuance - amount)
	return nil
}

func recordNonFungibleMint(ctx *core.Context, account *core.Account, asset types.Asset) error {
	slot, err := account.Slot(core.ReservedSlot)
	if err != nil {
		return err
	}
	issued, err := ctx.Maps.Get(slot.Value, asset.VaultKey())
	if err != nil {
		return fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	if !issued.IsEmpty() {
		return fmt.Errorf("%w: %s", core.ErrAlreadyIssued, asset)
	}
	newRoot, _, err := ctx.Maps.Set(slot.Value, asset.VaultKey(), asset.Word())
	if err != nil {
		return fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	slot.Value = newRoot
	return nil
}

func recordNonFungibleBurn(ctx *core.Context, account *core.Account, asset types.Asset) error {
	slot, err := account.Slot(core.ReservedSlot)
	if err != nil {
		return err
	}
	issued, err := ctx.Maps.Get(slot.Value, asset.VaultKey())
	if err != nil {
		return fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	if issued.IsEmpty() {
		return fmt.Errorf("%w: %s was never issued", core.ErrAssetNotFound, asset)
	}
	newRoot, _, err := ctx.Maps.Set(slot.Value, asset.VaultKey(), types.EmptyWord)
	if err != nil {
		return fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	slot.Value = newRoot
	return nil
}

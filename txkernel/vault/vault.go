// Package vault implements the asset vault: a committed collection of
// fungible balances and non-fungible assets attached to every account.
// Mutations preserve conservation: value enters or leaves only through the
// faucet subsystem or note consumption, never silently.
package vault

import (
	"fmt"

	"github.com/veilmesh/go-veilmesh/common/types"
	"github.com/veilmesh/go-veilmesh/txkernel/core"
)

// AddAsset merges asset into the native account's vault and returns the
// resulting asset: the full post-merge balance for fungible assets, the
// asset itself for non-fungible ones.
func AddAsset(ctx *core.Context, asset types.Asset) (types.Asset, error) {
	if _, err := ctx.AuthenticateOrigin(); err != nil {
		return types.Asset{}, err
	}
	if err := ctx.AssertNative(); err != nil {
		return types.Asset{}, err
	}
	if err := asset.Validate(); err != nil {
		return types.Asset{}, fmt.Errorf("%w: %s", core.ErrMalformedAsset, err)
	}
	account := ctx.Current()
	ctx.Observer.BeforeVaultMutation(account.ID, core.VaultAdd, asset)

	var result types.Asset
	if asset.IsFungible() {
		merged, err := addFungible(ctx, account, asset)
		if err != nil {
			return types.Asset{}, err
		}
		result = merged
	} else {
		if err := addNonFungible(ctx, account, asset); err != nil {
			return types.Asset{}, err
		}
		result = asset
	}

	ctx.Observer.AfterVaultMutation(account.ID, core.VaultAdd, result)
	return result, nil
}

// RemoveAsset debits asset from the native account's vault and returns the
// asset removed.
func RemoveAsset(ctx *core.Context, asset types.Asset) (types.Asset, error) {
	if _, err := ctx.AuthenticateOrigin(); err != nil {
		return types.Asset{}, err
	}
	if err := ctx.AssertNative(); err != nil {
		return types.Asset{}, err
	}
	if err := asset.Validate(); err != nil {
		return types.Asset{}, fmt.Errorf("%w: %s", core.ErrMalformedAsset, err)
	}
	account := ctx.Current()
	ctx.Observer.BeforeVaultMutation(account.ID, core.VaultRemove, asset)

	if asset.IsFungible() {
		if err := removeFungible(ctx, account, asset); err != nil {
			return types.Asset{}, err
		}
	} else {
		if err := removeNonFungible(ctx, account, asset); err != nil {
			return types.Asset{}, err
		}
	}

	ctx.Observer.AfterVaultMutation(account.ID, core.VaultRemove, asset)
	return asset, nil
}

// GetBalance returns the fungible balance for the given faucet in the
// currently targeted account's vault.
func GetBalance(ctx *core.Context, faucet types.AccountID) (uint64, error) {
	if faucet.Type() != types.FungibleFaucet {
		return 0, fmt.Errorf("%w: %s is not a fungible faucet", core.ErrWrongAssetKind, faucet.Hex())
	}
	probe, err := types.NewFungibleAsset(faucet, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", core.ErrMalformedAsset, err)
	}
	stored, err := ctx.Maps.Get(ctx.Current().VaultRoot, probe.VaultKey())
	if err != nil {
		return 0, fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	return uint64(stored[0]), nil
}

// HasNonFungible reports whether the non-fungible asset is present in the
// currently targeted account's vault.
func HasNonFungible(ctx *core.Context, asset types.Asset) (bool, error) {
	if asset.IsFungible() {
		return false, fmt.Errorf("%w: expected a non-fungible asset", core.ErrWrongAssetKind)
	}
	stored, err := ctx.Maps.Get(ctx.Current().VaultRoot, asset.VaultKey())
	if err != nil {
		return false, fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	return !stored.IsEmpty(), nil
}

// Commitment returns the vault root of the currently targeted account.
func Commitment(ctx *core.Context) types.Word {
	return ctx.Current().VaultRoot
}

func addFungible(ctx *core.Context, account *core.Account, asset types.Asset) (types.Asset, error) {
	key := asset.VaultKey()
	stored, err := ctx.Maps.Get(account.VaultRoot, key)
	if err != nil {
		return types.Asset{}, fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	balance := uint64(stored[0])
	sum := balance + asset.Amount()
	if sum > types.MaxFungibleAmount {
		return types.Asset{}, fmt.Errorf("%w: %d + %d for faucet %s",
			core.ErrFungibleOverflow, balance, asset.Amount(), asset.Faucet().Hex())
	}
	merged, err := types.NewFungibleAsset(asset.Faucet(), sum)
	if err != nil {
		return types.Asset{}, fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	newRoot, _, err := ctx.Maps.Set(account.VaultRoot, key, merged.Word())
	if err != nil {
		return types.Asset{}, fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	account.VaultRoot = newRoot
	return merged, nil
}

func removeFungible(ctx *core.Context, account *core.Account, asset types.Asset) error {
	key := asset.VaultKey()
	stored, err := ctx.Maps.Get(account.VaultRoot, key)
	if err != nil {
		return fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	balance := uint64(stored[0])
	if balance < asset.Amount() {
		return fmt.Errorf("%w: balance %d, removing %d of faucet %s",
			core.ErrAssetNotFound, balance, asset.Amount(), asset.Faucet().Hex())
	}
	remainder := types.EmptyWord
	if balance > asset.Amount() {
		rest, err := types.NewFungibleAsset(asset.Faucet(), balance-asset.Amount())
		if err != nil {
			return fmt.Errorf("%w: %s", core.ErrInternal, err)
		}
		remainder = rest.Word()
	}
	newRoot, _, err := ctx.Maps.Set(account.VaultRoot, key, remainder)
	if err != nil {
		return fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	account.VaultRoot = newRoot
	return nil
}

func addNonFungible(ctx *core.Context, account *core.Account, asset types.Asset) error {
	key := asset.VaultKey()
	stored, err := ctx.Maps.Get(account.VaultRoot, key)
	if err != nil {
		return fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	if !stored.IsEmpty() {
		return fmt.Errorf("%w: %s", core.ErrDuplicateNonFungible, asset)
	}
	newRoot, _, err := ctx.Maps.Set(account.VaultRoot, key, asset.Word())
	if err != nil {
		return fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	account.VaultRoot = newRoot
	return nil
}

func removeNonFungible(ctx *core.Context, account *core.Account, asset types.Asset) error {
	key := asset.VaultKey()
	stored, err := ctx.Maps.Get(account.VaultRoot, key)
	if err != nil {
		return fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	if stored.IsEmpty() {
		return fmt.Errorf("%w: %s", core.ErrAssetNotFound, asset)
	}
	newRoot, _, err := ctx.Maps.Set(account.VaultRoot, key, types.EmptyWord)
	if err != nil {
		return fmt.Errorf("%w: %s", core.ErrInternal, err)
	}
	account.VaultRoot = newRoot
	return nil
}

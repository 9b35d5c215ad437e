package types

import (
	"errors"
	"fmt"
)

const (
	// MaxFungibleAmount is the largest representable fungible amount,
	// 2^63 - 1. Amounts must stay strictly below 2^63.
	MaxFungibleAmount uint64 = (1 << 63) - 1
)

var (
	// ErrAmountTooBig is returned when a fungible amount does not fit in 63 bits.
	ErrAmountTooBig = errors.New("fungible amount exceeds 2^63-1")
	// ErrWrongFaucetType is returned when the issuing faucet's type bits do not
	// match the asset kind.
	ErrWrongFaucetType = errors.New("faucet type does not match asset kind")
)

// Asset is a single asset encoded as one word.
//
// Fungible:     [amount, 0, faucet_suffix, faucet_prefix]
// Non-fungible: [d0, faucet_prefix, d2, d3] where d* come from the digest of
// the asset data. The faucet prefix always carries the issuer's type bits, so
// the kind of an asset is decidable from the word alone.
type Asset Word

// NewFungibleAsset builds a fungible asset issued by the given faucet.
func NewFungibleAsset(faucet AccountID, amount uint64) (Asset, error) {
	if faucet.Type() != FungibleFaucet {
		return Asset{}, fmt.Errorf("%w: %s is not a fungible faucet", ErrWrongFaucetType, faucet.Hex())
	}
	if amount > MaxFungibleAmount {
		return Asset{}, fmt.Errorf("%w: %d", ErrAmountTooBig, amount)
	}
	return Asset{Felt(amount), 0, faucet.Suffix, faucet.Prefix}, nil
}

// NewNonFungibleAsset builds a non-fungible asset from the digest of its data,
// stamping the issuing faucet's prefix into the word. The type bits of the
// top element are forced to NonFungibleFaucet so the kind stays decidable
// for any digest value.
func NewNonFungibleAsset(faucet AccountID, dataHash Word) (Asset, error) {
	if faucet.Type() != NonFungibleFaucet {
		return Asset{}, fmt.Errorf("%w: %s is not a non-fungible faucet", ErrWrongFaucetType, faucet.Hex())
	}
	asset := Asset(dataHash)
	asset[1] = faucet.Prefix
	top := uint64(asset[3])
	top &^= uint64(typeMask)
	top |= uint64(NonFungibleFaucet) << typeShift
	asset[3] = NewFelt(top)
	return asset, nil
}

// IsFungible reports whether the asset is fungible, decided by the type bits
// of the embedded faucet prefix.
func (a Asset) IsFungible() bool {
	return AccountType((uint64(a[3])&typeMask)>>typeShift) == FungibleFaucet
}

// Amount returns the amount of a fungible asset.
func (a Asset) Amount() uint64 {
	return uint64(a[0])
}

// Faucet returns the issuing faucet id of a fungible asset.
func (a Asset) Faucet() AccountID {
	return AccountID{Prefix: a[3], Suffix: a[2]}
}

// FaucetPrefix returns the issuing faucet prefix of a non-fungible asset.
func (a Asset) FaucetPrefix() Felt {
	return a[1]
}

// VaultKey returns the key under which the asset lives in a vault. All
// fungible assets of one faucet share a key; a non-fungible asset is keyed
// by its own word.
func (a Asset) VaultKey() Word {
	if a.IsFungible() {
		return Word{0, 0, a[2], a[3]}
	}
	return Word(a)
}

// Word returns the raw word encoding.
func (a Asset) Word() Word {
	return Word(a)
}

// Validate checks the structural validity of the asset encoding.
func (a Asset) Validate() error {
	if !Word(a).Valid() {
		return ErrInvalidFieldElement
	}
	if a.IsFungible() {
		if a[1] != 0 {
			return fmt.Errorf("fungible asset element 1 must be zero, got %d", a[1])
		}
		if a.Amount() > MaxFungibleAmount {
			return fmt.Errorf("%w: %d", ErrAmountTooBig, a.Amount())
		}
		if _, err := NewAccountID(a[3], a[2]); err != nil {
			return fmt.Errorf("fungible asset faucet id: %w", err)
		}
		return nil
	}
	if typ := AccountType((uint64(a[1]) & typeMask) >> typeShift); typ != NonFungibleFaucet {
		return fmt.Errorf("%w: prefix type bits %#b", ErrWrongFaucetType, typ)
	}
	return nil
}

func (a Asset) String() string {
	if a.IsFungible() {
		return fmt.Sprintf("fungible{faucet: %s, amount: %d}", a.Faucet().Hex(), a.Amount())
	}
	return fmt.Sprintf("nonfungible{%s}", Word(a))
}

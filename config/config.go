// Package config contains the protocol parameters of the transaction kernel.
package config

// Params bounds the resources one transaction may consume. The values are
// protocol constants agreed on outside the kernel; the kernel treats them as
// injected configuration and never hardcodes them.
type Params struct {
	// MaxOutputNotes is the maximum number of notes one transaction may create.
	MaxOutputNotes int `mapstructure:"max-output-notes"`
	// MaxAssetsPerNote is the maximum number of assets one note may carry.
	MaxAssetsPerNote int `mapstructure:"max-assets-per-note"`
	// MaxIssuance caps the total issuance of a single fungible faucet.
	MaxIssuance uint64 `mapstructure:"max-issuance"`
	// MaxStorageSlots is the size of the account storage array.
	MaxStorageSlots int `mapstructure:"max-storage-slots"`
	// ForeignCacheSize bounds the number of foreign account snapshots kept
	// within one transaction.
	ForeignCacheSize int `mapstructure:"foreign-cache-size"`
}

// DefaultParams returns the mainnet protocol parameters.
func DefaultParams() Params {
	return Params{
		MaxOutputNotes:   1024,
		MaxAssetsPerNote: 256,
		MaxIssuance:      (1 << 63) - 1,
		MaxStorageSlots:  255,
		ForeignCacheSize: 64,
	}
}

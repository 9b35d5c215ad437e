package types

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cosmos/btcutil/bech32"
	"github.com/spacemeshos/go-scale"
)

const (
	// AccountIDLength is the serialized length of an account id in bytes.
	// The prefix element occupies the first 8 bytes, the upper 7 bytes of
	// the suffix element follow (its least significant byte is always zero).
	AccountIDLength = 15

	accountIDVersion = 0

	typeShift   = 4
	typeMask    = 0b11 << typeShift
	faucetMask  = 0b10 << typeShift
	modeShift   = 6
	modeMask    = 0b11 << modeShift
	versionMask = 0b1111
)

var (
	// ErrWrongAccountIDLength is returned when the serialized id has a wrong length.
	ErrWrongAccountIDLength = errors.New("wrong account id length")
	// ErrInvalidFieldElement is returned when an id element is not canonical.
	ErrInvalidFieldElement = errors.New("account id element is not a valid field element")
	// ErrUnsupportedIDVersion is returned for unknown account id versions.
	ErrUnsupportedIDVersion = errors.New("unsupported account id version")
	// ErrNonZeroSuffixByte is returned when the suffix low byte is not zero.
	ErrNonZeroSuffixByte = errors.New("account id suffix least significant byte must be zero")
)

// networkHRP is the human readable prefix of bech32-rendered account ids.
var networkHRP = "vm"

// SetAccountHRP overrides the bech32 prefix. Used by testnets.
func SetAccountHRP(update string) {
	networkHRP = update
}

// AccountType describes what an account is allowed to do. It is encoded in
// bits 4-5 of the least significant byte of the id prefix.
type AccountType uint8

const (
	// RegularAccountUpdatableCode is a basic account whose code can change.
	RegularAccountUpdatableCode AccountType = 0b00
	// RegularAccountImmutableCode is a basic account with frozen code.
	RegularAccountImmutableCode AccountType = 0b01
	// FungibleFaucet can issue a fungible asset.
	FungibleFaucet AccountType = 0b10
	// NonFungibleFaucet can issue non-fungible assets.
	NonFungibleFaucet AccountType = 0b11
)

// IsFaucet reports whether accounts of this type can issue assets.
func (t AccountType) IsFaucet() bool {
	return t == FungibleFaucet || t == NonFungibleFaucet
}

// IsRegular reports whether this is a non-faucet account type.
func (t AccountType) IsRegular() bool {
	return !t.IsFaucet()
}

// HasUpdatableCode reports whether set_account_code is permitted for the type.
func (t AccountType) HasUpdatableCode() bool {
	return t == RegularAccountUpdatableCode
}

// StorageMode describes where the full account state lives. It is encoded in
// bits 6-7 of the least significant byte of the id prefix.
type StorageMode uint8

const (
	// StoragePublic means full account state is recorded on the ledger.
	StoragePublic StorageMode = 0b00
	// StoragePrivate means the ledger records only the account commitment.
	StoragePrivate StorageMode = 0b10
)

// AccountID is the identifier of an account. Type, storage mode and version
// are carried in the metadata byte of the prefix, so the id alone is enough
// to gate type-dependent kernel operations.
type AccountID struct {
	Prefix Felt
	Suffix Felt
}

// NewAccountID validates the two elements and returns the id.
func NewAccountID(prefix, suffix Felt) (AccountID, error) {
	if !prefix.Valid() || !suffix.Valid() {
		return AccountID{}, ErrInvalidFieldElement
	}
	if uint64(prefix)&versionMask != accountIDVersion {
		return AccountID{}, fmt.Errorf("%w: %d", ErrUnsupportedIDVersion, uint64(prefix)&versionMask)
	}
	if uint64(suffix)&0xff != 0 {
		return AccountID{}, ErrNonZeroSuffixByte
	}
	if _, ok := storageMode(prefix); !ok {
		return AccountID{}, fmt.Errorf("unknown storage mode in account id prefix %#x", uint64(prefix))
	}
	return AccountID{Prefix: prefix, Suffix: suffix}, nil
}

// BuildAccountID shapes the metadata bits of the prefix so that the id has
// the requested type and storage mode. Intended for tests and tooling; real
// ids are derived from a hashing procedure outside the kernel.
func BuildAccountID(typ AccountType, mode StorageMode, seed uint64) AccountID {
	prefix := seed
	prefix &^= uint64(0xff)
	prefix |= uint64(mode)<<modeShift | uint64(typ)<<typeShift | accountIDVersion
	// Keep the top bit clear so the element stays canonical.
	prefix &^= 1 << 63
	suffix := (seed * 0x9e3779b97f4a7c15) &^ 0xff
	suffix &^= 1 << 63
	id, err := NewAccountID(Felt(prefix), Felt(suffix))
	if err != nil {
		panic(fmt.Sprintf("shaped account id is invalid: %s", err))
	}
	return id
}

// Type returns the account type encoded in the prefix.
func (id AccountID) Type() AccountType {
	return AccountType((uint64(id.Prefix) & typeMask) >> typeShift)
}

// IsFaucet reports whether the account can issue assets.
func (id AccountID) IsFaucet() bool {
	return uint64(id.Prefix)&faucetMask != 0
}

// IsRegular reports whether the account is not a faucet.
func (id AccountID) IsRegular() bool {
	return !id.IsFaucet()
}

// Mode returns the storage mode encoded in the prefix.
func (id AccountID) Mode() StorageMode {
	mode, _ := storageMode(id.Prefix)
	return mode
}

// IsPublic reports whether the full account state is recorded on the ledger.
func (id AccountID) IsPublic() bool {
	return id.Mode() == StoragePublic
}

// IsEmpty reports whether the id is the zero value.
func (id AccountID) IsEmpty() bool {
	return id == AccountID{}
}

// Elements returns the id in hashing order: suffix first, then prefix.
func (id AccountID) Elements() [2]Felt {
	return [2]Felt{id.Suffix, id.Prefix}
}

// Bytes returns the 15-byte big-endian serialization.
func (id AccountID) Bytes() []byte {
	buf := make([]byte, AccountIDLength)
	binary.BigEndian.PutUint64(buf[:8], uint64(id.Prefix))
	var suffix [8]byte
	binary.BigEndian.PutUint64(suffix[:], uint64(id.Suffix))
	copy(buf[8:], suffix[:7])
	return buf
}

// AccountIDFromBytes decodes and validates a 15-byte id serialization.
func AccountIDFromBytes(buf []byte) (AccountID, error) {
	if len(buf) != AccountIDLength {
		return AccountID{}, fmt.Errorf("%w: %d", ErrWrongAccountIDLength, len(buf))
	}
	prefix := binary.BigEndian.Uint64(buf[:8])
	var suffix [8]byte
	copy(suffix[:7], buf[8:])
	return NewAccountID(Felt(prefix), Felt(binary.BigEndian.Uint64(suffix[:])))
}

// Hex returns the 0x-prefixed hex rendering of the id.
func (id AccountID) Hex() string {
	return fmt.Sprintf("0x%x", id.Bytes())
}

// String renders the id with bech32, like `vm1...`.
func (id AccountID) String() string {
	converted, err := bech32.ConvertBits(id.Bytes(), 8, 5, true)
	if err != nil {
		panic("error converting bech32 bits")
	}
	result, err := bech32.Encode(networkHRP, converted)
	if err != nil {
		panic("error encoding account id to bech32")
	}
	return result
}

// StringToAccountID parses a bech32-rendered account id.
func StringToAccountID(src string) (AccountID, error) {
	hrp, data, err := bech32.DecodeNoLimit(src)
	if err != nil {
		return AccountID{}, fmt.Errorf("decoding bech32: %w", err)
	}
	if hrp != networkHRP {
		return AccountID{}, fmt.Errorf("wrong network id: expected `%s`, got `%s`", networkHRP, hrp)
	}
	// bech32 works with 5-bit groups, convert back to 8-bit bytes.
	converted, err := bech32.ConvertBits(data, 5, 8, true)
	if err != nil {
		return AccountID{}, fmt.Errorf("converting bech32 bits: %w", err)
	}
	// ConvertBits appends an empty byte to the end of the slice.
	if len(converted) != AccountIDLength+1 {
		return AccountID{}, fmt.Errorf("%w: %d", ErrWrongAccountIDLength, len(converted))
	}
	return AccountIDFromBytes(converted[:AccountIDLength])
}

// EncodeScale implements scale codec interface.
func (id *AccountID) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, id.Bytes())
}

// DecodeScale implements scale codec interface.
func (id *AccountID) DecodeScale(d *scale.Decoder) (int, error) {
	buf := make([]byte, AccountIDLength)
	n, err := scale.DecodeByteArray(d, buf)
	if err != nil {
		return n, err
	}
	decoded, err := AccountIDFromBytes(buf)
	if err != nil {
		return n, err
	}
	*id = decoded
	return n, nil
}

func storageMode(prefix Felt) (StorageMode, bool) {
	bits := StorageMode((uint64(prefix) & modeMask) >> modeShift)
	switch bits {
	case StoragePublic, StoragePrivate:
		return bits, true
	default:
		return 0, false
	}
}

package types

import (
	"errors"
	"fmt"

	"github.com/cosmos/btcutil/base58"
	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"
)

// AddressLength is the expected length of the address.
const AddressLength = 32

var (
	// ErrInvalidAddress is returned when an address is not exactly AddressLength bytes.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrDecodeBase58 is returned when the text form of an address is not valid base58.
	ErrDecodeBase58 = errors.New("error decoding base58")
)

// Address is the raw ed25519 public key of a ledger account.
type Address [AddressLength]byte

// BytesToAddress copies b into an Address.
func BytesToAddress(b []byte) (Address, error) {
	var addr Address
	if len(b) != AddressLength {
		return addr, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAddress, AddressLength, len(b))
	}
	copy(addr[:], b)
	return addr, nil
}

// StringToAddress returns a new Address from its base58 text form.
func StringToAddress(src string) (Address, error) {
	if src == "" {
		return Address{}, fmt.Errorf("%w: empty string", ErrDecodeBase58)
	}
	// base58.Decode signals invalid input with an empty result.
	raw := base58.Decode(src)
	if len(raw) == 0 {
		return Address{}, fmt.Errorf("%w: %q", ErrDecodeBase58, src)
	}
	return BytesToAddress(raw)
}

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte { return a[:] }

// IsEmpty checks if address is all zeroes.
func (a Address) IsEmpty() bool {
	return a == Address{}
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// ShortString returns the first 5 characters of the base58 form, for logging purposes.
func (a Address) ShortString() string {
	s := a.String()
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

// MarshalLogObject implements encoding for the account.
func (a Address) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("address", a.String())
	return nil
}

// EncodeScale implements scale codec interface.
func (a *Address) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, a[:])
}

// DecodeScale implements scale codec interface.
func (a *Address) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, a[:])
}

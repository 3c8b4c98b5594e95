package types

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/gulfstream/seashell/codec"
)

// Unit is the name of the native ledger unit.
const Unit = "Seashell"

// ErrInvalidAmount is returned when an amount is not a number.
var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a quantity of Seashell.
type Amount uint64

// ParseAmount parses the decimal text form of an amount.
// Negative, fractional and too large values fail with codec.ErrOutOfRange.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !r.IsInt() {
		return 0, fmt.Errorf("%w: %q is not an integer", codec.ErrOutOfRange, s)
	}
	v, err := codec.U64FromBig(r.Num())
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", s, err)
	}
	return Amount(v), nil
}

// String implements fmt.Stringer.
func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10) + " " + Unit
}

package base

import (
	"fmt"
	"math/big"

	"github.com/mr-shifu/sss-lib/core/errs"
)

const (
	MinBase = 2
	MaxBase = 36

	// Alphabet lists the digits in value order. Letters are accepted in
	// either case when decoding.
	Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// DigitValue returns the value of r in Alphabet, or -1 if r is not a digit.
func DigitValue(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'z':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'Z':
		return int(r-'A') + 10
	}
	return -1
}

// Decode returns the exact value of digits read as an unsigned integer
// literal in the given base.
func Decode(digits string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, errs.New(errs.InvalidBase, fmt.Sprintf("base %d outside [%d, %d]", base, MinBase, MaxBase))
	}
	if len(digits) == 0 {
		return nil, errs.New(errs.EmptyInput, "no digits")
	}

	// every character is checked up front so SetString never sees a sign,
	// an underscore or a prefix.
	for i, r := range digits {
		if v := DigitValue(r); v < 0 || v >= base {
			return nil, errs.WithIndex(errs.InvalidDigit, "", i, fmt.Sprintf("%q is not a base-%d digit", r, base))
		}
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, errs.New(errs.InvalidDigit, fmt.Sprintf("cannot parse %q in base %d", digits, base))
	}
	return v, nil
}

// Encode renders a non-negative integer in the given base using lowercase
// digits.
func Encode(v *big.Int, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", errs.New(errs.InvalidBase, fmt.Sprintf("base %d outside [%d, %d]", base, MinBase, MaxBase))
	}
	if v == nil {
		return "", errs.New(errs.EmptyInput, "nil value")
	}
	if v.Sign() < 0 {
		return "", errs.New(errs.InvalidDigit, "negative values have no unsigned encoding")
	}
	return v.Text(base), nil
}

package polynomial

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/sss-lib/core/errs"
)

var one = big.NewInt(1)

// InterpolateAtZeroMod returns f(0) mod m for shares produced over Z/mZ. The
// modulus must be odd and greater than one; every denominator must be
// invertible, which always holds for a prime modulus and distinct x.
func InterpolateAtZeroMod(points []Point, k int, m *saferith.Modulus) (*saferith.Nat, error) {
	if m == nil {
		return nil, errs.New(errs.InvalidModulus, "no modulus")
	}
	mBig := m.Big()
	if mBig.Cmp(one) <= 0 || mBig.Bit(0) == 0 {
		return nil, errs.New(errs.InvalidModulus, fmt.Sprintf("modulus %s must be odd and greater than 1", mBig))
	}

	selected, err := selectPoints(points, k)
	if err != nil {
		return nil, err
	}

	size := m.BitLen()
	xsMod := make([]*saferith.Nat, len(selected))
	ysMod := make([]*saferith.Nat, len(selected))
	reduced := make([]*big.Int, len(selected))
	for i, p := range selected {
		reduced[i] = new(big.Int).Mod(p.X, mBig)
		xsMod[i] = new(saferith.Nat).SetBig(reduced[i], size)
		ysMod[i] = new(saferith.Nat).SetBig(new(big.Int).Mod(p.Y, mBig), size)
	}
	if err := distinct(reduced); err != nil {
		return nil, err
	}

	secret := new(saferith.Nat).SetUint64(0)
	gcd := new(big.Int)
	for j := range xsMod {
		numerator := new(saferith.Nat).SetUint64(1)
		denominator := new(saferith.Nat).SetUint64(1)
		for i := range xsMod {
			if i == j {
				continue
			}
			numerator.ModMul(numerator, xsMod[i], m)
			diff := new(saferith.Nat).ModSub(xsMod[i], xsMod[j], m)
			denominator.ModMul(denominator, diff, m)
		}

		if gcd.GCD(nil, nil, denominator.Big(), mBig).Cmp(one) != 0 {
			return nil, errs.WithIndex(errs.NonInvertible, reduced[j].String(), j, fmt.Sprintf("denominator shares factor %s with modulus", gcd))
		}

		// yⱼ⋅lⱼ(0) (mod m)
		term := new(saferith.Nat).ModInverse(denominator, m)
		term.ModMul(term, numerator, m)
		term.ModMul(term, ysMod[j], m)
		secret.ModAdd(secret, term, m)
	}
	return secret, nil
}

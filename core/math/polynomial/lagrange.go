package polynomial

import (
	"math/big"

	"github.com/mr-shifu/sss-lib/core/errs"
)

// Lagrange returns the Lagrange coefficients lⱼ(0) for every x in the
// interpolation domain, in domain order. The coefficients sum to 1.
func Lagrange(interpolationDomain []*big.Int) ([]*big.Rat, error) {
	for i, x := range interpolationDomain {
		if x == nil {
			return nil, errs.WithIndex(errs.EmptyInput, "", i, "nil x")
		}
	}
	if err := distinct(interpolationDomain); err != nil {
		return nil, err
	}

	coefficients := make([]*big.Rat, len(interpolationDomain))
	for j := range interpolationDomain {
		numerator, denominator := lagrange(interpolationDomain, j)
		coefficients[j] = new(big.Rat).SetFrac(numerator, denominator)
	}
	return coefficients, nil
}

// InterpolateAtZero returns f(0) for the polynomial of degree k-1 through the
// first k points. The sum is accumulated as an exact fraction and must reduce
// to an integer.
func InterpolateAtZero(points []Point, k int) (*big.Int, error) {
	selected, err := selectPoints(points, k)
	if err != nil {
		return nil, err
	}
	domain := xs(selected)
	if err := distinct(domain); err != nil {
		return nil, err
	}

	secret := new(big.Rat)
	for j, p := range selected {
		// yⱼ⋅lⱼ(0)
		numerator, denominator := lagrange(domain, j)
		numerator.Mul(numerator, p.Y)
		secret.Add(secret, new(big.Rat).SetFrac(numerator, denominator))
	}

	if !secret.IsInt() {
		return nil, errs.New(errs.NonIntegralResult, "f(0) = "+secret.RatString())
	}
	return new(big.Int).Set(secret.Num()), nil
}

// lagrange returns the numerator and denominator of lⱼ(0). The domain must
// not contain duplicates.
//
//	         x₀ ⋅⋅⋅ xⱼ₋₁ ⋅ xⱼ₊₁ ⋅⋅⋅ xₖ
//	lⱼ(0) = -------------------------------------------
//	        (x₀ - xⱼ)⋅⋅⋅(xⱼ₋₁ - xⱼ)⋅(xⱼ₊₁ - xⱼ)⋅⋅⋅(xₖ - xⱼ)
func lagrange(interpolationDomain []*big.Int, j int) (*big.Int, *big.Int) {
	xJ := interpolationDomain[j]
	numerator := big.NewInt(1)
	denominator := big.NewInt(1)
	diff := new(big.Int)
	for i, xI := range interpolationDomain {
		if i == j {
			continue
		}
		numerator.Mul(numerator, xI)
		denominator.Mul(denominator, diff.Sub(xI, xJ))
	}
	return numerator, denominator
}

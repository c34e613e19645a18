package test

import (
	"math/big"
	"math/rand"
	"strconv"

	"github.com/mr-shifu/sss-lib/core/math/base"
	"github.com/mr-shifu/sss-lib/core/math/polynomial"
	"github.com/mr-shifu/sss-lib/core/share"
)

// Polynomial represents f(X) = a₀ + a₁⋅X + … + aₜ⋅Xᵗ with integer coefficients.
type Polynomial struct {
	coefficients []*big.Int
}

// NewPolynomial returns the polynomial with the given coefficients, constant first.
func NewPolynomial(coefficients ...*big.Int) *Polynomial {
	p := &Polynomial{coefficients: make([]*big.Int, len(coefficients))}
	for i, c := range coefficients {
		p.coefficients[i] = new(big.Int).Set(c)
	}
	return p
}

// RandomPolynomial generates f(X) = constant + a₁⋅X + … + aₜ⋅Xᵗ with
// non-negative coefficients of at most bits bits.
func RandomPolynomial(rnd *rand.Rand, degree int, constant *big.Int, bits uint) *Polynomial {
	limit := new(big.Int).Lsh(big.NewInt(1), bits)
	p := &Polynomial{coefficients: make([]*big.Int, degree+1)}
	p.coefficients[0] = new(big.Int).Set(constant)
	for i := 1; i <= degree; i++ {
		p.coefficients[i] = new(big.Int).Rand(rnd, limit)
	}
	return p
}

// Evaluate evaluates the polynomial at x using Horner's method.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	if x.Sign() == 0 {
		panic("attempt to leak secret")
	}

	result := new(big.Int)
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		// bₙ₋₁ = bₙ * x + aₙ₋₁
		result.Mul(result, x).Add(result, p.coefficients[i])
	}
	return result
}

// Constant returns a copy of the constant coefficient.
func (p *Polynomial) Constant() *big.Int {
	return new(big.Int).Set(p.coefficients[0])
}

// Degree is the highest power of the Polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Points evaluates the polynomial at every x.
func (p *Polynomial) Points(xs ...int64) []polynomial.Point {
	points := make([]polynomial.Point, len(xs))
	for i, x := range xs {
		bx := big.NewInt(x)
		points[i] = polynomial.Point{X: bx, Y: p.Evaluate(bx)}
	}
	return points
}

// Shares evaluates the polynomial at every x and encodes each y in a base
// taken from bases in turn. The values must be non-negative.
func (p *Polynomial) Shares(xs []int64, bases ...int) []share.EncodedShare {
	if len(bases) == 0 {
		bases = []int{10}
	}
	shares := make([]share.EncodedShare, len(xs))
	for i, pt := range p.Points(xs...) {
		b := bases[i%len(bases)]
		digits, err := base.Encode(pt.Y, b)
		if err != nil {
			panic(err)
		}
		shares[i] = share.EncodedShare{
			Key:    strconv.FormatInt(xs[i], 10),
			Base:   b,
			Digits: digits,
		}
	}
	return shares
}

// Document builds a document with shares at x = 1..n and threshold k = degree+1.
func (p *Polynomial) Document(n int, bases ...int) share.Document {
	return share.Document{
		Threshold: share.Threshold{N: n, K: p.Degree() + 1},
		Shares:    p.Shares(Indices(n), bases...),
	}
}

// Indices returns 1..n.
func Indices(n int) []int64 {
	xs := make([]int64, n)
	for i := range xs {
		xs[i] = int64(i + 1)
	}
	return xs
}

// ModPoints evaluates the polynomial at every x and reduces y modulo m.
func (p *Polynomial) ModPoints(m *big.Int, xs ...int64) []polynomial.Point {
	points := p.Points(xs...)
	for i := range points {
		points[i].Y.Mod(points[i].Y, m)
	}
	return points
}

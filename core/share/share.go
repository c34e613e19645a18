package share

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/sss-lib/core/errs"
	"github.com/mr-shifu/sss-lib/core/math/base"
	"github.com/mr-shifu/sss-lib/core/math/polynomial"
)

// EncodedShare is a share as it arrives from outside: the x coordinate as a
// decimal key and the y coordinate as digits in Base.
type EncodedShare struct {
	Key    string `cbor:"1,keyasint"`
	Base   int    `cbor:"2,keyasint"`
	Digits string `cbor:"3,keyasint"`
}

// Threshold holds the share count n and the reconstruction threshold k.
type Threshold struct {
	N int
	K int
}

// Validate checks 1 <= k <= n and that at least k shares are available.
func (t Threshold) Validate(available int) error {
	if t.K < 1 {
		return errs.WithKey(errs.InvalidThreshold, "k", fmt.Sprintf("k = %d, must be at least 1", t.K))
	}
	if t.K > t.N {
		return errs.WithKey(errs.InvalidThreshold, "k", fmt.Sprintf("k = %d exceeds n = %d", t.K, t.N))
	}
	if available < t.K {
		return errs.New(errs.InsufficientPoints, fmt.Sprintf("need %d shares, got %d", t.K, available))
	}
	return nil
}

// Document is the validated input of a reconstruction.
type Document struct {
	Threshold Threshold
	Shares    []EncodedShare
}

// DecodeShare turns s into a point. Errors carry the share key.
func DecodeShare(s EncodedShare) (polynomial.Point, error) {
	x, ok := new(big.Int).SetString(s.Key, 10)
	if !ok {
		return polynomial.Point{}, errs.WithKey(errs.InvalidDigit, s.Key, "share key is not a decimal integer")
	}
	y, err := base.Decode(s.Digits, s.Base)
	if err != nil {
		return polynomial.Point{}, errs.Rekey(err, s.Key)
	}
	return polynomial.Point{X: x, Y: y}, nil
}

// Points decodes every share and returns the points sorted by x. Duplicate x
// values anywhere in the set are rejected.
func Points(shares []EncodedShare) ([]polynomial.Point, error) {
	points := make([]polynomial.Point, 0, len(shares))
	keys := make(map[string]string, len(shares))
	for i, s := range shares {
		p, err := DecodeShare(s)
		if err != nil {
			return nil, err
		}
		x := p.X.String()
		if prev, ok := keys[x]; ok {
			return nil, errs.WithIndex(errs.DuplicateX, s.Key, i, fmt.Sprintf("x = %s already given by share %q", x, prev))
		}
		keys[x] = s.Key
		points = append(points, p)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].X.Cmp(points[j].X) < 0
	})
	return points, nil
}

// Select returns the first k points.
func Select(points []polynomial.Point, k int) ([]polynomial.Point, error) {
	if k < 1 {
		return nil, errs.WithKey(errs.InvalidThreshold, "k", fmt.Sprintf("k = %d, must be at least 1", k))
	}
	if len(points) < k {
		return nil, errs.New(errs.InsufficientPoints, fmt.Sprintf("need %d points, got %d", k, len(points)))
	}
	return points[:k], nil
}

// Prepare validates doc and returns the k points a reconstruction uses.
func Prepare(doc Document) ([]polynomial.Point, error) {
	if err := doc.Threshold.Validate(len(doc.Shares)); err != nil {
		return nil, err
	}
	points, err := Points(doc.Shares)
	if err != nil {
		return nil, err
	}
	return Select(points, doc.Threshold.K)
}

// Reconstruct returns the secret f(0) encoded by doc.
func Reconstruct(doc Document) (*big.Int, error) {
	points, err := Prepare(doc)
	if err != nil {
		return nil, err
	}
	return polynomial.InterpolateAtZero(points, doc.Threshold.K)
}

// ReconstructMod returns f(0) mod m for a document whose shares were
// produced over Z/mZ.
func ReconstructMod(doc Document, m *saferith.Modulus) (*big.Int, error) {
	points, err := Prepare(doc)
	if err != nil {
		return nil, err
	}
	secret, err := polynomial.InterpolateAtZeroMod(points, doc.Threshold.K, m)
	if err != nil {
		return nil, err
	}
	return secret.Big(), nil
}

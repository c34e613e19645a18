package polynomial

import (
	"fmt"
	"math/big"

	"github.com/mr-shifu/sss-lib/core/errs"
)

// Point is one share (x, y) of a polynomial with integer coefficients.
type Point struct {
	X *big.Int
	Y *big.Int
}

// NewPoint returns a Point holding copies of x and y.
func NewPoint(x, y *big.Int) Point {
	return Point{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// selectPoints returns the first k points after checking the threshold and
// that every selected point is complete.
func selectPoints(points []Point, k int) ([]Point, error) {
	if k < 1 {
		return nil, errs.New(errs.InvalidThreshold, fmt.Sprintf("threshold k = %d, must be at least 1", k))
	}
	if len(points) < k {
		return nil, errs.New(errs.InsufficientPoints, fmt.Sprintf("need %d points, got %d", k, len(points)))
	}
	selected := points[:k]
	for i, p := range selected {
		if p.X == nil || p.Y == nil {
			return nil, errs.WithIndex(errs.EmptyInput, "", i, "point has no coordinate")
		}
	}
	return selected, nil
}

// distinct fails with DuplicateX on the first x already seen in domain.
func distinct(domain []*big.Int) error {
	seen := make(map[string]int, len(domain))
	for i, x := range domain {
		key := x.String()
		if j, ok := seen[key]; ok {
			return errs.WithIndex(errs.DuplicateX, key, i, fmt.Sprintf("x already used by point %d", j))
		}
		seen[key] = i
	}
	return nil
}

func xs(points []Point) []*big.Int {
	domain := make([]*big.Int, len(points))
	for i, p := range points {
		domain[i] = p.X
	}
	return domain
}

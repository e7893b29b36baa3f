/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package field

import (
	"math/big"

	. "github.com/IBM/SSS/types"
	"github.com/pkg/errors"
)

// Polynomial holds coefficients lowest degree first, p[i] multiplies x^i.
type Polynomial []*big.Int

// Reverse returns a polynomial from coefficients given highest degree first.
func Reverse(coefficients []*big.Int) Polynomial {
	p := make(Polynomial, len(coefficients))
	for i, c := range coefficients {
		p[len(coefficients)-1-i] = c
	}
	return p
}

// HighestFirst returns the coefficients highest degree first.
func (p Polynomial) HighestFirst() []*big.Int {
	res := make([]*big.Int, len(p))
	for i, c := range p {
		res[len(p)-1-i] = c
	}
	return res
}

// Copy returns a deep copy of the polynomial.
func (p Polynomial) Copy() Polynomial {
	res := make(Polynomial, len(p))
	for i, c := range p {
		res[i] = new(big.Int).Set(c)
	}
	return res
}

func (p Polynomial) Degree() int {
	return len(p) - 1
}

// ValueAt evaluates the polynomial at x using Horner's rule.
func (p Polynomial) ValueAt(f *Field, x int) *big.Int {
	X := f.Element(int64(x))
	sum := big.NewInt(0)
	for i := len(p) - 1; i >= 0; i-- {
		sum = f.Add(f.Mul(sum, X), p[i])
	}
	return sum
}

// Interpolate returns the unique polynomial of degree < len(points) passing through the points.
// The result always has exactly len(points) coefficients, leading zeros included.
func (f *Field) Interpolate(points []Point) (Polynomial, error) {
	xs := make([]*big.Int, len(points))
	seen := make(map[string]int, len(points))
	for i, pt := range points {
		xs[i] = f.Element(int64(pt.X))
		if j, exists := seen[xs[i].String()]; exists {
			return nil, errors.Wrapf(ErrSingularInterpolation, "points %d and %d share x = %d", j, i, pt.X)
		}
		seen[xs[i].String()] = i
	}

	res := make(Polynomial, len(points))
	for i := range res {
		res[i] = big.NewInt(0)
	}

	for i, pt := range points {
		basis, err := f.lagrangeBasis(i, xs)
		if err != nil {
			return nil, err
		}
		y := f.Reduce(pt.Y)
		for d, c := range basis {
			res[d] = f.Add(res[d], f.Mul(y, c))
		}
	}

	return res, nil
}

// lagrangeBasis expands prod_{j != i} (x - x_j) / (x_i - x_j) into coefficients.
func (f *Field) lagrangeBasis(i int, xs []*big.Int) (Polynomial, error) {
	basis := Polynomial{big.NewInt(1)}
	denominator := big.NewInt(1)

	for j, xj := range xs {
		if i == j {
			continue
		}

		// multiply by (x - x_j)
		next := make(Polynomial, len(basis)+1)
		next[0] = f.Neg(f.Mul(basis[0], xj))
		for d := 1; d < len(basis); d++ {
			next[d] = f.Sub(basis[d-1], f.Mul(basis[d], xj))
		}
		next[len(basis)] = basis[len(basis)-1]
		basis = next

		denominator = f.Mul(denominator, f.Sub(xs[i], xj))
	}

	inv, err := f.Inv(denominator)
	if err != nil {
		return nil, errors.Wrap(ErrSingularInterpolation, err.Error())
	}

	for d := range basis {
		basis[d] = f.Mul(basis[d], inv)
	}

	return basis, nil
}

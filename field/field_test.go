/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package field

import (
	"math/big"
	"testing"

	. "github.com/IBM/SSS/types"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	f, err := New(big.NewInt(17))
	require.NoError(t, err)
	assert.Equal(t, "17", f.Modulus().String())

	_, err = New(big.NewInt(15))
	assert.True(t, errors.Is(err, ErrInvalidParameters))

	_, err = New(nil)
	assert.True(t, errors.Is(err, ErrInvalidParameters))
}

func TestArithmetic(t *testing.T) {
	f, err := New(big.NewInt(17))
	require.NoError(t, err)

	assert.Equal(t, "3", f.Add(big.NewInt(10), big.NewInt(10)).String())
	assert.Equal(t, "13", f.Sub(big.NewInt(2), big.NewInt(6)).String())
	assert.Equal(t, "8", f.Mul(big.NewInt(5), big.NewInt(5)).String())
	assert.Equal(t, "12", f.Neg(big.NewInt(5)).String())
	assert.Equal(t, "16", f.Element(-1).String())
	assert.Equal(t, "8", f.Exp(big.NewInt(2), 3).String())
	assert.Equal(t, "1", f.Exp(big.NewInt(0), 0).String())

	inv, err := f.Inv(big.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Mul(inv, big.NewInt(3)).String())

	_, err = f.Inv(big.NewInt(34))
	assert.Error(t, err)

	assert.True(t, f.Contains(big.NewInt(16)))
	assert.False(t, f.Contains(big.NewInt(17)))
	assert.False(t, f.Contains(big.NewInt(-1)))
}

func TestBN254(t *testing.T) {
	f := BN254()
	assert.Equal(t, fr.Modulus().String(), f.Modulus().String())
	assert.True(t, f.Modulus().ProbablyPrime(20))
}

func TestValueAt(t *testing.T) {
	f, err := New(big.NewInt(17))
	require.NoError(t, err)

	// 3 + 2x + x^2
	p := Polynomial{big.NewInt(3), big.NewInt(2), big.NewInt(1)}
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, "3", p.ValueAt(f, 0).String())
	assert.Equal(t, "6", p.ValueAt(f, 1).String())
	assert.Equal(t, "10", p.ValueAt(f, 4).String())

	r := Reverse([]*big.Int{big.NewInt(3), big.NewInt(2), big.NewInt(1)})
	assert.Equal(t, []string{"1", "2", "3"}, []string{r[0].String(), r[1].String(), r[2].String()})
}

func TestInterpolate(t *testing.T) {
	for _, f := range []*Field{mustField(t, 17), mustField(t, 7919), BN254()} {
		t.Run(f.Modulus().String(), func(t *testing.T) {
			p := Polynomial{big.NewInt(5), big.NewInt(0), big.NewInt(11), big.NewInt(0)}

			var points []Point
			for _, x := range []int{6, 1, 3, 0} {
				points = append(points, Point{X: x, Y: p.ValueAt(f, x)})
			}

			q, err := f.Interpolate(points)
			require.NoError(t, err)
			require.Len(t, q, len(p))
			for i := range p {
				assert.Equal(t, p[i].String(), q[i].String(), "coefficient %d", i)
			}
		})
	}
}

func TestInterpolateDuplicatePoints(t *testing.T) {
	f := mustField(t, 17)

	_, err := f.Interpolate([]Point{
		{X: 1, Y: big.NewInt(3)},
		{X: 2, Y: big.NewInt(4)},
		{X: 1, Y: big.NewInt(3)},
	})
	assert.True(t, errors.Is(err, ErrSingularInterpolation))

	// 18 = 1 mod 17
	_, err = f.Interpolate([]Point{
		{X: 1, Y: big.NewInt(3)},
		{X: 18, Y: big.NewInt(3)},
	})
	assert.True(t, errors.Is(err, ErrSingularInterpolation))
}

func mustField(t *testing.T, p int64) *Field {
	f, err := New(big.NewInt(p))
	require.NoError(t, err)
	return f
}

func TestVector(t *testing.T) {
	f := mustField(t, 17)

	in := []*big.Int{big.NewInt(0), big.NewInt(16)}
	v, err := f.Vector(in)
	require.NoError(t, err)
	assert.Equal(t, "16", v[1].String())

	in[1].SetInt64(3)
	assert.Equal(t, "16", v[1].String())

	_, err = f.Vector([]*big.Int{big.NewInt(17)})
	assert.True(t, errors.Is(err, ErrSymbolOutOfRange))

	_, err = f.Vector([]*big.Int{big.NewInt(-1)})
	assert.True(t, errors.Is(err, ErrSymbolOutOfRange))

	_, err = f.Vector([]*big.Int{nil})
	assert.True(t, errors.Is(err, ErrSymbolOutOfRange))
}

func TestHighestFirst(t *testing.T) {
	p := Polynomial{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
	hf := p.HighestFirst()
	assert.Equal(t, []string{"3", "2", "1"}, []string{hf[0].String(), hf[1].String(), hf[2].String()})
	assert.Equal(t, "1", p[0].String())
}

func TestPolynomialCopy(t *testing.T) {
	p := Polynomial{big.NewInt(1), big.NewInt(2)}
	c := p.Copy()
	require.Len(t, c, 2)
	c[0].SetInt64(7)
	assert.Equal(t, "1", p[0].String())
	assert.Equal(t, "2", c[1].String())
	assert.Len(t, Polynomial{}.Copy(), 0)
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package field

import (
	"math/big"

	. "github.com/IBM/SSS/types"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"
)

// Field is the prime field F_p. All results are reduced mod p.
type Field struct {
	p *big.Int
}

// New returns the field of the given prime order.
func New(p *big.Int) (*Field, error) {
	if p == nil || !p.ProbablyPrime(20) {
		return nil, errors.Wrapf(ErrInvalidParameters, "field order %v is not prime", p)
	}
	return &Field{p: new(big.Int).Set(p)}, nil
}

// BN254 returns the scalar field of the BN254 curve.
func BN254() *Field {
	return &Field{p: fr.Modulus()}
}

func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

func (f *Field) Element(v int64) *big.Int {
	return f.Reduce(big.NewInt(v))
}

// Reduce maps an arbitrary integer into [0, p).
func (f *Field) Reduce(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, f.p)
}

// Contains reports whether v already is a canonical element of the field.
func (f *Field) Contains(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(f.p) < 0
}

func (f *Field) Add(a, b *big.Int) *big.Int {
	res := new(big.Int).Add(a, b)
	return res.Mod(res, f.p)
}

func (f *Field) Sub(a, b *big.Int) *big.Int {
	res := new(big.Int).Sub(a, b)
	return res.Mod(res, f.p)
}

func (f *Field) Mul(a, b *big.Int) *big.Int {
	res := new(big.Int).Mul(a, b)
	return res.Mod(res, f.p)
}

func (f *Field) Neg(a *big.Int) *big.Int {
	res := new(big.Int).Neg(a)
	return res.Mod(res, f.p)
}

// Inv returns the multiplicative inverse of a, which must be non zero.
func (f *Field) Inv(a *big.Int) (*big.Int, error) {
	res := new(big.Int).ModInverse(f.Reduce(a), f.p)
	if res == nil {
		return nil, errors.Errorf("%v has no inverse modulo %v", a, f.p)
	}
	return res, nil
}

// Exp raises a field element to a non negative integer power.
func (f *Field) Exp(base *big.Int, k int) *big.Int {
	return new(big.Int).Exp(base, big.NewInt(int64(k)), f.p)
}

// Vector copies the given symbols, failing if any of them is not a canonical field element.
func (f *Field) Vector(symbols []*big.Int) ([]*big.Int, error) {
	res := make([]*big.Int, len(symbols))
	for i, v := range symbols {
		if !f.Contains(v) {
			return nil, errors.Wrapf(ErrSymbolOutOfRange, "symbol %d is %v, field order is %v", i, v, f.p)
		}
		res[i] = new(big.Int).Set(v)
	}
	return res, nil
}

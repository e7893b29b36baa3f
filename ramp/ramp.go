/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ramp

import (
	"math/big"
	"sync"

	"github.com/IBM/SSS/field"
	"github.com/IBM/SSS/logging"
	. "github.com/IBM/SSS/types"
	"github.com/pkg/errors"
)

// Scheme is a communication efficient ramp scheme.
// A message of D*(n-r) symbols can be reconstructed by exactly Ds[i] = L/(i+1) parties, for every i < D.
// Larger party sets read a single value from every party, smaller ones read more values from fewer parties.
//
// Every party holds one evaluation of each of the D polynomials. Polynomial 0 holds the whole message,
// and polynomial i > 0 repeats the top coefficients of the message so that the smaller party sets
// can peel them off the bigger polynomials.
type Scheme struct {
	// State
	lock        sync.RWMutex
	field       *field.Field
	message     []*big.Int
	ladder      []int
	levels      [][]int
	polynomials []field.Polynomial
	parties     PartyTable
	// Config
	Params Parameters
	Logger Logger
}

// New creates a ramp scheme of order D sharing message among n parties over F_p.
func New(message []*big.Int, n, r int, p *big.Int, D int) (*Scheme, error) {
	params := Parameters{
		Parties: n,
		Privacy: r,
		Prime:   p,
		Order:   D,
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	if D < 1 || D*params.Threshold() > n {
		return nil, errors.Wrapf(ErrInvalidRampOrder, "ramp order must be in [1, %d], got %d", n/params.Threshold(), D)
	}

	if len(message) != D*params.Threshold() {
		return nil, errors.Wrapf(ErrInvalidMessageLength, "message length must be %d, got %d", D*params.Threshold(), len(message))
	}

	ds := ladder(len(message), D)
	levels, err := layout(ds)
	if err != nil {
		return nil, err
	}
	if err := verify(ds, levels); err != nil {
		return nil, err
	}

	f, err := field.New(p)
	if err != nil {
		return nil, err
	}

	m, err := f.Vector(message)
	if err != nil {
		return nil, err
	}

	return &Scheme{
		field:   f,
		message: m,
		ladder:  ds,
		levels:  levels,
		Params:  params,
	}, nil
}

// Ladder returns the party set sizes that can reconstruct the message, largest first.
func (s *Scheme) Ladder() []int {
	return append([]int(nil), s.ladder...)
}

// Encode builds the polynomials and the shares of all parties.
// Encoding again yields the same shares.
func (s *Scheme) Encode() error {
	logger := logging.OrNop(s.Logger)

	polynomials := make([]field.Polynomial, len(s.levels))
	for i, level := range s.levels {
		p := make(field.Polynomial, len(level))
		for degree, symbol := range level {
			p[degree] = new(big.Int).Set(s.message[symbol])
		}
		polynomials[i] = p
	}

	parties := make(PartyTable, s.Params.Parties)
	for x := range parties {
		values := make([]*big.Int, len(polynomials))
		for i, p := range polynomials {
			values[i] = p.ValueAt(s.field, x)
		}
		parties[x] = Share{Party: x, Values: values}
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.polynomials = polynomials
	s.parties = parties

	if logger.DebugEnabled() {
		logger.Debugf("Encoded %d symbols into %d polynomials for %d parties, ladder is %v",
			len(s.message), len(polynomials), len(parties), s.ladder)
	}

	return nil
}

// Polynomials returns a copy of the polynomials built by Encode, or nil if Encode wasn't called.
func (s *Scheme) Polynomials() []field.Polynomial {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.polynomials == nil {
		return nil
	}
	res := make([]field.Polynomial, len(s.polynomials))
	for i, p := range s.polynomials {
		res[i] = p.Copy()
	}
	return res
}

// Shares returns a copy of the shares of all parties, or nil if Encode wasn't called.
func (s *Scheme) Shares() PartyTable {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.parties == nil {
		return nil
	}
	return s.parties.Copy()
}

// Decode reconstructs the message from the shares of the given parties.
// The number of parties must be exactly one of the ladder sizes.
func (s *Scheme) Decode(indices []int) ([]*big.Int, error) {
	logger := logging.OrNop(s.Logger)

	s.lock.RLock()
	parties := s.parties
	s.lock.RUnlock()

	if parties == nil {
		return nil, ErrNotEncoded
	}

	d := -1
	for i, size := range s.ladder {
		if size == len(indices) {
			d = i
			break
		}
	}

	if d < 0 {
		logger.Warnf("Cannot decode from %d parties, party count must be one of %v", len(indices), s.ladder)
		return nil, errors.Wrapf(ErrUnsupportedShareCount, "party count must be one of %v, got %d", s.ladder, len(indices))
	}

	shares, err := parties.Select(indices)
	if err != nil {
		return nil, err
	}

	// Go from the smallest polynomial the parties can fully interpolate up to the biggest one,
	// accumulating the top coefficients that the next level peels off.
	var high, low []*big.Int
	for lv := d; lv > 0; lv-- {
		coefficients, err := s.recover(shares, lv, high)
		if err != nil {
			return nil, err
		}

		nHigh := min(s.ladder[lv-1]-s.ladder[lv], len(coefficients))
		high = append(high, coefficients[:nHigh]...)
		low = append(low, reversed(coefficients[nHigh:])...)

		if logger.DebugEnabled() {
			logger.Debugf("Level %d: recovered %d high order and %d low order coefficients", lv, nHigh, len(coefficients)-nHigh)
		}
	}

	known := append(high, reversed(low)...)
	coefficients, err := s.recover(shares, 0, known)
	if err != nil {
		return nil, err
	}

	return append(reversed(coefficients), reversed(known)...), nil
}

// recover interpolates the given level after subtracting the contribution of the known
// top coefficients, and returns the coefficients of the remainder highest degree first.
func (s *Scheme) recover(shares []Share, level int, known []*big.Int) ([]*big.Int, error) {
	maxDegree := s.ladder[level] - 1

	points := Column(shares, level)
	for i, pt := range points {
		x := s.field.Element(int64(pt.X))
		y := pt.Y
		for j, c := range known {
			y = s.field.Sub(y, s.field.Mul(c, s.field.Exp(x, maxDegree-j)))
		}
		points[i].Y = y
	}

	p, err := s.field.Interpolate(points)
	if err != nil {
		return nil, errors.Wrapf(err, "failed recovering level %d", level)
	}

	return p.HighestFirst(), nil
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package threshold

import (
	"math/big"
	"sync"

	"github.com/IBM/SSS/field"
	"github.com/IBM/SSS/logging"
	. "github.com/IBM/SSS/types"
	"github.com/pkg/errors"
)

// Scheme is an (n-r, n) threshold scheme: any n-r parties reconstruct the message,
// fewer learn nothing about it.
//
// The message is split into blocks of n-r symbols, and every block is the coefficient
// vector of its own polynomial. Party x receives the evaluations of all polynomials at x.
type Scheme struct {
	// State
	lock        sync.RWMutex
	field       *field.Field
	message     []*big.Int
	degree      int
	polynomials []field.Polynomial
	parties     PartyTable
	// Config
	Params Parameters
	Logger Logger
}

// New creates a scheme sharing message among n parties over F_p, such that n-r parties reconstruct it.
func New(message []*big.Int, n, r int, p *big.Int) (*Scheme, error) {
	params := Parameters{
		Parties: n,
		Privacy: r,
		Prime:   p,
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	degree := params.Threshold()
	if len(message) == 0 || len(message)%degree != 0 {
		return nil, errors.Wrapf(ErrInvalidMessageLength, "message length must be a positive multiple of %d, got %d", degree, len(message))
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
		degree:  degree,
		Params:  params,
	}, nil
}

// Degree returns the number of parties needed to reconstruct.
func (s *Scheme) Degree() int {
	return s.degree
}

// Blocks returns the number of polynomials, which is also the number of values every share holds.
func (s *Scheme) Blocks() int {
	return len(s.message) / s.degree
}

// Encode builds the polynomials and the shares of all parties.
// Encoding again yields the same shares.
func (s *Scheme) Encode() error {
	logger := logging.OrNop(s.Logger)

	polynomials := make([]field.Polynomial, s.Blocks())
	for i := range polynomials {
		// The first symbol of a block is its highest degree coefficient
		polynomials[i] = field.Reverse(s.message[i*s.degree : (i+1)*s.degree]).Copy()
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
		logger.Debugf("Encoded %d symbols into %d polynomials of degree %d for %d parties",
			len(s.message), len(polynomials), s.degree-1, len(parties))
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
// Only the first n-r indices are used. Ids past them are ignored and not validated,
// so callers that care which shares are used must order indices by priority.
func (s *Scheme) Decode(indices []int) ([]*big.Int, error) {
	logger := logging.OrNop(s.Logger)

	s.lock.RLock()
	parties := s.parties
	s.lock.RUnlock()

	if parties == nil {
		return nil, ErrNotEncoded
	}

	if len(indices) < s.degree {
		logger.Warnf("Cannot decode from %d parties, at least %d are needed", len(indices), s.degree)
		return nil, errors.Wrapf(ErrInsufficientShares, "need at least %d parties, got %d", s.degree, len(indices))
	}

	if len(indices) > s.degree && logger.DebugEnabled() {
		logger.Debugf("Using parties %v, ignoring %v", indices[:s.degree], indices[s.degree:])
	}

	shares, err := parties.Select(indices[:s.degree])
	if err != nil {
		return nil, err
	}

	message := make([]*big.Int, 0, len(s.message))
	for i := 0; i < s.Blocks(); i++ {
		p, err := s.field.Interpolate(Column(shares, i))
		if err != nil {
			return nil, errors.Wrapf(err, "failed recovering block %d", i)
		}
		message = append(message, p.HighestFirst()...)
	}

	return message, nil
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sss

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	ErrInvalidParameters     = errors.New("invalid scheme parameters")
	ErrInvalidMessageLength  = errors.New("invalid message length")
	ErrInvalidRampOrder      = errors.New("invalid ramp order")
	ErrSymbolOutOfRange      = errors.New("message symbol out of field range")
	ErrInsufficientShares    = errors.New("insufficient shares")
	ErrUnsupportedShareCount = errors.New("unsupported share count")
	ErrUnknownParty          = errors.New("unknown party")
	ErrNotEncoded            = errors.New("message not encoded")
	ErrSingularInterpolation = errors.New("singular interpolation")
)

// Logger logs messages in a synchronized fashion to the same destination (usually to a file)
type Logger interface {
	DebugEnabled() bool
	Debugf(format string, a ...interface{})
	Infof(format string, a ...interface{})
	Warnf(format string, a ...interface{})
	Errorf(format string, a ...interface{})
}

// Parameters describes a sharing instance.
// Parties is n, Privacy is r, so that n - r parties reconstruct.
// Order is the ramp order D and is ignored by the threshold scheme.
type Parameters struct {
	Parties int
	Privacy int
	Prime   *big.Int
	Order   int
}

// Threshold returns n - r, the smallest number of parties that reconstruct the message.
func (p Parameters) Threshold() int {
	return p.Parties - p.Privacy
}

// Validate checks the parameters shared by all schemes.
// The evaluation points are the party ids 0..n-1, so they must be distinct field elements.
func (p Parameters) Validate() error {
	if p.Parties < 1 {
		return errors.Wrapf(ErrInvalidParameters, "party count must be positive, got %d", p.Parties)
	}
	if p.Privacy < 0 || p.Privacy >= p.Parties {
		return errors.Wrapf(ErrInvalidParameters, "privacy must be in [0, %d), got %d", p.Parties, p.Privacy)
	}
	if p.Prime == nil || !p.Prime.ProbablyPrime(20) {
		return errors.Wrapf(ErrInvalidParameters, "field order %v is not prime", p.Prime)
	}
	if big.NewInt(int64(p.Parties)).Cmp(p.Prime) > 0 {
		return errors.Wrapf(ErrInvalidParameters, "%d parties do not fit into a field of order %v", p.Parties, p.Prime)
	}
	return nil
}

// Point is a single evaluation (x, f(x)).
type Point struct {
	X int
	Y *big.Int
}

// Share is what a single party holds: one evaluation per polynomial, all at X = Party.
type Share struct {
	Party  int
	Values []*big.Int
}

// Points returns the evaluations of the share as (x, y) pairs.
func (s Share) Points() []Point {
	res := make([]Point, len(s.Values))
	for i, y := range s.Values {
		res[i] = Point{X: s.Party, Y: y}
	}
	return res
}

// Copy returns a deep copy of the share.
func (s Share) Copy() Share {
	values := make([]*big.Int, len(s.Values))
	for i, v := range s.Values {
		values[i] = new(big.Int).Set(v)
	}
	return Share{Party: s.Party, Values: values}
}

// PartyTable holds the shares of all parties, indexed by party id.
type PartyTable []Share

// Select returns the shares of the given parties, in the given order.
func (pt PartyTable) Select(indices []int) ([]Share, error) {
	res := make([]Share, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(pt) {
			return nil, errors.Wrapf(ErrUnknownParty, "party %d not in [0, %d)", i, len(pt))
		}
		res = append(res, pt[i])
	}
	return res, nil
}

// Column gathers the evaluations of the polynomial at position idx from the given shares.
func Column(shares []Share, idx int) []Point {
	res := make([]Point, len(shares))
	for i, s := range shares {
		res[i] = Point{X: s.Party, Y: s.Values[idx]}
	}
	return res
}

// Copy returns a deep copy of the table.
func (pt PartyTable) Copy() PartyTable {
	res := make(PartyTable, len(pt))
	for i, s := range pt {
		res[i] = s.Copy()
	}
	return res
}

// SharingScheme is a two phase secret sharing scheme.
// Encode is run by the dealer, Decode by whoever collected shares from the given parties.
type SharingScheme interface {
	Encode() error

	Decode(indices []int) ([]*big.Int, error)
}

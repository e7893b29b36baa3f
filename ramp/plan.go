/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ramp

import (
	. "github.com/IBM/SSS/types"
	"github.com/pkg/errors"
)

// zero marks a coefficient slot that interpolation fills with 0 rather than with a message symbol.
const zero = -1

// ladder returns the reconstruction set sizes L/1, L/2, ..., L/D, largest first.
func ladder(length, order int) []int {
	ds := make([]int, order)
	for i := range ds {
		ds[i] = length / (i + 1)
	}
	return ds
}

// highOrder returns how many of the top coefficients of level i are the message tail.
func highOrder(ds []int, i int) int {
	return min(ds[i-1]-ds[len(ds)-1], ds[i])
}

// layout places message symbol indices into the coefficients (lowest degree first) of every level.
// Level 0 is the whole message. Level i > 0 holds a low order slice of its own,
// walked backward through the message, topped by the message tail it shares with level i-1.
func layout(ds []int) ([][]int, error) {
	if err := decreasing(ds); err != nil {
		return nil, err
	}

	length := ds[0]
	levels := [][]int{span(0, length)}

	if len(ds) == 1 {
		return levels, nil
	}

	end := length - highOrder(ds, 1)
	for i := 1; i < len(ds); i++ {
		nHigh := highOrder(ds, i)
		nLow := ds[i] - nHigh
		if nHigh <= 0 || end-nLow < 0 {
			return nil, errors.Wrapf(ErrInvalidRampOrder, "ladder %v leaves no room for level %d", ds, i)
		}

		level := append(span(end-nLow, end), span(length-nHigh, length)...)
		levels = append(levels, level)
		end -= nLow
	}

	return levels, nil
}

// verify replays the decoder on symbol indices instead of field elements,
// and fails if the parties of some ladder size would not get back the message.
func verify(ds []int, levels [][]int) error {
	if err := decreasing(ds); err != nil {
		return err
	}

	for d := range ds {
		if err := replay(ds, levels, d); err != nil {
			return errors.Wrapf(ErrInvalidRampOrder, "%d parties cannot reconstruct: %v", ds[d], err)
		}
	}

	return nil
}

// decreasing fails unless every ladder size is smaller than the one before it.
// Decode picks the level by party count, so no two levels may share a size.
func decreasing(ds []int) error {
	for i := 1; i < len(ds); i++ {
		if ds[i] == ds[i-1] {
			return errors.Wrapf(ErrInvalidRampOrder, "ladder %v repeats party set size %d at levels %d and %d", ds, ds[i], i-1, i)
		}
		if ds[i] > ds[i-1] {
			return errors.Wrapf(ErrInvalidRampOrder, "ladder %v is not strictly decreasing", ds)
		}
	}
	return nil
}

func replay(ds []int, levels [][]int, d int) error {
	size := ds[d]

	var high, low []int
	for lv := d; lv > 0; lv-- {
		coefficients, err := peel(reversed(levels[lv]), high, size)
		if err != nil {
			return errors.Wrapf(err, "level %d", lv)
		}
		nHigh := min(ds[lv-1]-ds[lv], len(coefficients))
		high = append(high, coefficients[:nHigh]...)
		low = append(low, reversed(coefficients[nHigh:])...)
	}

	known := append(high, reversed(low)...)
	coefficients, err := peel(reversed(levels[0]), known, size)
	if err != nil {
		return errors.Wrap(err, "level 0")
	}

	message := append(reversed(coefficients), reversed(known)...)
	if len(message) != ds[0] {
		return errors.Errorf("recovered %d symbols out of %d", len(message), ds[0])
	}
	for i, symbol := range message {
		if symbol != i {
			return errors.Errorf("symbol %d recovered in place of symbol %d", symbol, i)
		}
	}

	return nil
}

// peel strips the known top coefficients of a level given highest degree first,
// and returns what interpolating size points of the remainder yields, highest degree first.
func peel(coefficients []int, known []int, size int) ([]int, error) {
	if len(known) > len(coefficients) {
		return nil, errors.Errorf("%d coefficients known but level has only %d", len(known), len(coefficients))
	}
	for i, symbol := range known {
		if coefficients[i] != symbol {
			return nil, errors.Errorf("coefficient %d is symbol %d but symbol %d would be subtracted", i, coefficients[i], symbol)
		}
	}

	rest := coefficients[len(known):]
	if len(rest) > size {
		return nil, errors.Errorf("%d unknown coefficients but only %d points", len(rest), size)
	}

	res := make([]int, 0, size)
	for i := len(rest); i < size; i++ {
		res = append(res, zero)
	}
	return append(res, rest...), nil
}

func span(from, to int) []int {
	res := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		res = append(res, i)
	}
	return res
}

func reversed[T any](s []T) []T {
	res := make([]T, len(s))
	for i, v := range s {
		res[len(s)-1-i] = v
	}
	return res
}

/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package choose

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// KOutOfN invokes f on every k sized subset of the party ids {0, ..., n-1},
// in lexicographic order. The slice passed to f must not be retained.
func KOutOfN(n, k int, f func([]int)) {
	choose(n, k, 0, make([]int, 0, k), f)
}

func choose(n int, targetAmount int, i int, currentSubGroup []int, f func([]int)) {
	// Check if we have enough elements in our current subgroup
	if len(currentSubGroup) == targetAmount {
		f(currentSubGroup)
		return
	}
	// Return early if not enough remaining candidates to pick from
	itemsLeftToPick := n - i
	if targetAmount-len(currentSubGroup) > itemsLeftToPick {
		return
	}
	// We either pick the current element
	choose(n, targetAmount, i+1, append(currentSubGroup, i), f)
	// Or don't pick it
	choose(n, targetAmount, i+1, currentSubGroup, f)
}

// Parties picks k distinct party ids out of {0, ..., n-1}, deterministically derived from seed.
// The order of the result is meaningful, decoders use the first ids first.
func Parties(n, k int, seed []byte) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}

	r := rand.New(&randFromHash{
		hash: seed,
	})

	return r.Perm(n)[:k]
}

type randFromHash struct {
	i    uint64
	hash []byte
}

func (r *randFromHash) Int63() int64 {
	buff := make([]byte, 8)
	binary.BigEndian.PutUint64(buff, r.i)
	r.i++

	prf := hmac.New(sha256.New, r.hash)
	prf.Write(buff)
	digest := prf.Sum(nil)

	return int64(binary.BigEndian.Uint64(digest[:8]) >> 1)
}

func (r *randFromHash) Seed(seed int64) {
	panic("should not be ever called")
}

// Package keccak provides the reference Combiner: Keccak-256 over the
// concatenation of two digests, matching the Rust reference instantiation
// (alloy_primitives::Keccak256 over left || right, unsalted).
package keccak

import (
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/forestrie/compactmmr/digest"
)

// Combiner implements digest.Combiner using Keccak-256.
type Combiner struct{}

// Combine returns Keccak256(left || right).
func (Combiner) Combine(left, right digest.Digest) digest.Digest {
	sum := crypto.Keccak256(left[:], right[:])
	return digest.FromBytes(sum)
}

var _ digest.Combiner = Combiner{}

// Hash returns the single-input Keccak-256 digest of b, for leaf material
// derived from something other than two existing digests (e.g. a leaf
// index), matching alloy_primitives::Keccak256 applied to a single buffer.
func Hash(b []byte) digest.Digest {
	return digest.FromBytes(crypto.Keccak256(b))
}

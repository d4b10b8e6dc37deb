// Package digest defines the fixed-width hash value the compact MMR core
// operates on, and the combiner capability it is hashed with.
package digest

import (
	"encoding/hex"
	"fmt"
)

// Size is the width, in bytes, of a Digest in the reference instantiation.
const Size = 32

// Digest is an opaque fixed-width byte string. Equality is bytewise.
type Digest [Size]byte

// Zero is the distinguished empty-tree digest.
var Zero Digest

// IsZero reports whether d is the all-zero digest.
func (d Digest) IsZero() bool {
	return d == Zero
}

// String renders d as a hex string, for logging and test failure messages.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// FromBytes copies b into a Digest. It panics if b is not exactly Size bytes,
// mirroring the fixed-width precondition callers are expected to uphold.
func FromBytes(b []byte) Digest {
	if len(b) != Size {
		panic("digest: value is not 32 bytes")
	}
	var d Digest
	copy(d[:], b)
	return d
}

// MarshalBinary renders d as a flat byte slice, so CBOR (and anything else
// that honors encoding.BinaryMarshaler) encodes it as a byte string rather
// than a 32-element array.
func (d Digest) MarshalBinary() ([]byte, error) {
	return d[:], nil
}

// UnmarshalBinary is the inverse of MarshalBinary.
func (d *Digest) UnmarshalBinary(b []byte) error {
	if len(b) != Size {
		return fmt.Errorf("digest: value is %d bytes, want %d", len(b), Size)
	}
	copy(d[:], b)
	return nil
}

// Combiner is the external hash oracle: a deterministic, reentrant binary
// mapping (Digest, Digest) -> Digest. The core depends only on this
// interface; it never hard-wires a concrete hash.
type Combiner interface {
	Combine(left, right Digest) Digest
}

// Package leafgen produces the leaf digests fed to a merklize program:
// a deterministic sequential generator for benchmarking, and a random
// generator for tests, mirroring get_random_hash from the reference
// implementation.
package leafgen

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/forestrie/compactmmr/digest"
)

// Hasher is a single-input digest function, the shape benchmark leaf
// generation needs and digest.Combiner (two-input) does not provide.
type Hasher func(b []byte) digest.Digest

// Sequential returns the benchmark leaf digest for index j: hash of the
// native-endian 8-byte representation of j.
func Sequential(hash Hasher, j uint64) digest.Digest {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], j)
	return hash(b[:])
}

// Random returns a cryptographically random digest, for use as test leaf
// material where the leaf's value itself carries no meaning.
func Random() (digest.Digest, error) {
	var d digest.Digest
	if _, err := rand.Read(d[:]); err != nil {
		return digest.Digest{}, err
	}
	return d, nil
}

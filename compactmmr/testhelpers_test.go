package compactmmr

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forestrie/compactmmr/digest"
)

// sha256Combiner is a cheap, non-cryptographic-purpose stand-in for the
// reference Keccak-256 combiner, used so unit tests don't depend on the
// keccak package.
type sha256Combiner struct{}

func (sha256Combiner) Combine(left, right digest.Digest) digest.Digest {
	var buf [2 * digest.Size]byte
	copy(buf[:digest.Size], left[:])
	copy(buf[digest.Size:], right[:])
	return sha256.Sum256(buf[:])
}

func randomDigest(t *testing.T, seed byte) digest.Digest {
	t.Helper()
	var d digest.Digest
	for i := range d {
		d[i] = seed ^ byte(i)
	}
	return d
}

func requireMMREqual(t *testing.T, want, got MMR) {
	t.Helper()
	require.Equal(t, want.Start(), got.Start())
	require.Equal(t, want.End(), got.End())
	require.Equal(t, want.Peaks(), got.Peaks())
}

package compactmmr

import (
	"math/bits"

	"github.com/forestrie/compactmmr/digest"
	"github.com/forestrie/compactmmr/rangearith"
)

// Append inserts element at leaf index m.End(), then advances End() by one.
//
// The new leaf's merge path left-merges under each existing peak whose
// subtree it completes, and stops at the first height where the path turns
// right. That stop height is the least-significant unset bit of the right
// decomposition bitmap, which is exactly how many trailing peaks fuse with
// the new leaf: trailing_zeros(^right) counts the run of set low bits in
// right, i.e. the number of consecutive left-merges before the first
// right-merge.
//
// Precondition: m.End() < math.MaxUint64.
func (m *MMR) Append(element digest.Digest) {
	_, right := rangearith.Decompose(m.start, m.end)
	fuseCount := bits.TrailingZeros64(^right)

	n := len(m.peaks)
	keep := 0
	if n > fuseCount {
		keep = n - fuseCount
	}

	// Right-fold the combiner over peaks[keep:] with element as the seed,
	// scanning from the tail toward keep: each step is one left-merge of
	// the accumulator under a progressively taller existing peak.
	acc := element
	for i := n - 1; i >= keep; i-- {
		acc = m.combine.Combine(m.peaks[i], acc)
	}

	// Copy rather than append-in-place: m.peaks may alias a slice a caller
	// obtained via Peaks(), and truncating-then-appending in place would
	// silently overwrite data through that alias.
	kept := make([]digest.Digest, keep, keep+1)
	copy(kept, m.peaks[:keep])
	m.peaks = append(kept, acc)
	m.end++
}

// FromLeaves folds Append over leaves in order, starting from the empty
// MMR. Leaves are inserted at positions 0, 1, 2, ... regardless of content.
func FromLeaves(combine digest.Combiner, leaves []digest.Digest) MMR {
	m := New(combine)
	for _, leaf := range leaves {
		m.Append(leaf)
	}
	return m
}

package compactmmr

import (
	"fmt"
	"math/bits"

	"github.com/forestrie/compactmmr/digest"
)

// Merge combines m and other, which must be adjacent (m.End() ==
// other.Start()) with m starting at zero; non-zero-start merge is not yet
// supported (see the package's design notes on the open question). Both
// violations are reported as ErrMergeError.
//
// Merge is a zipper walked along the common merge path of the boundary
// leaf: starting from m's rightmost peak, it climbs upward, consuming left
// siblings from m's own peaks and right siblings from other's peaks, until
// neither side can supply one that still fits inside [0, other.End()). The
// remaining peaks on both sides carry over unchanged.
func (m MMR) Merge(other MMR) (MMR, error) {
	if m.end != other.start {
		return MMR{}, fmt.Errorf("%w: ranges [%d,%d) and [%d,%d) are not adjacent", ErrMergeError, m.start, m.end, other.start, other.end)
	}
	if m.start != 0 {
		return MMR{}, fmt.Errorf("%w: merge requires the left operand to start at zero", ErrMergeError)
	}
	if len(m.peaks) == 0 {
		return MMR{}, fmt.Errorf("%w: left operand has no peaks to seed the merge from", ErrMergeError)
	}

	seed := m.peaks[len(m.peaks)-1]
	seedHeight := uint64(bits.TrailingZeros64(m.end))
	seedIndex := (m.end - 1) >> seedHeight
	seedRangeStart := seedIndex << seedHeight

	leftCursor := len(m.peaks) - 1
	rightCursor := 0

	for seedHeight < 255 {
		layer := uint64(1) << seedHeight
		if seedIndex%2 == 0 {
			mergedEnd := seedRangeStart + 2*layer
			if mergedEnd > other.end {
				break
			}
			seed = m.combine.Combine(seed, other.peaks[rightCursor])
			rightCursor++
		} else {
			if layer > seedRangeStart {
				break
			}
			leftCursor--
			seed = m.combine.Combine(m.peaks[leftCursor], seed)
			seedRangeStart -= layer
		}
		seedIndex >>= 1
		seedHeight++
	}

	merged := make([]digest.Digest, 0, leftCursor+1+(len(other.peaks)-rightCursor))
	merged = append(merged, m.peaks[:leftCursor]...)
	merged = append(merged, seed)
	merged = append(merged, other.peaks[rightCursor:]...)

	return MMR{start: m.start, end: other.end, peaks: merged, combine: m.combine}, nil
}

package compactmmr

import (
	"math/bits"

	"github.com/forestrie/compactmmr/digest"
	"github.com/forestrie/compactmmr/rangearith"
)

// Root computes the Merkle root of the interval, or digest.Zero if the MMR
// is empty.
//
// Left peaks are ordered ascending by subtree size, so bagging them proceeds
// upward by attaching successively taller siblings on the right:
// H(peaks[0], peaks[1]), then H(that, peaks[2]), ...
//
// Right peaks are ordered descending by subtree size, so bagging them
// proceeds upward by attaching successively taller siblings on the left:
// H(peaks[n-2], peaks[n-1]), then H(peaks[n-3], that), ...
//
// An empty side contributes nothing; an MMR with both sides non-empty
// combines the two bagged roots with one final Combine call.
func (m MMR) Root() digest.Digest {
	if len(m.peaks) == 0 {
		return digest.Zero
	}

	left, _ := rangearith.Decompose(m.start, m.end)
	nLeft := bits.OnesCount64(left)

	var leftRoot digest.Digest
	haveLeft := nLeft > 0
	if haveLeft {
		leftRoot = m.peaks[0]
		for i := 1; i < nLeft; i++ {
			leftRoot = m.combine.Combine(leftRoot, m.peaks[i])
		}
	}

	var rightRoot digest.Digest
	haveRight := nLeft < len(m.peaks)
	if haveRight {
		last := len(m.peaks) - 1
		rightRoot = m.peaks[last]
		for i := last - 1; i >= nLeft; i-- {
			rightRoot = m.combine.Combine(m.peaks[i], rightRoot)
		}
	}

	switch {
	case haveLeft && haveRight:
		return m.combine.Combine(leftRoot, rightRoot)
	case haveLeft:
		return leftRoot
	default:
		return rightRoot
	}
}

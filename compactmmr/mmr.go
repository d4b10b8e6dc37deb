package compactmmr

import (
	"fmt"

	"github.com/forestrie/compactmmr/digest"
	"github.com/forestrie/compactmmr/rangearith"
)

// MMR is the triple (start, end, peaks) described in the package doc. The
// zero value is not usable; construct one with New, FromParams, or
// FromLeaves.
type MMR struct {
	start, end uint64
	peaks      []digest.Digest
	combine    digest.Combiner
}

// New returns the empty MMR (0, 0, []) bound to combine.
func New(combine digest.Combiner) MMR {
	return MMR{combine: combine}
}

// FromParams validates and wraps caller-supplied peaks. It does not verify
// that peaks are themselves consistent with any leaves; callers provide
// trusted peaks. It fails with ErrStartGreaterThanEnd if start > end, and
// with ErrInvalidNumberOfPeaks if len(peaks) does not match
// rangearith.ExpectedNumPeaks(start, end).
func FromParams(combine digest.Combiner, start, end uint64, peaks []digest.Digest) (MMR, error) {
	if start > end {
		return MMR{}, ErrStartGreaterThanEnd
	}
	want := rangearith.ExpectedNumPeaks(start, end)
	if uint64(len(peaks)) != want {
		return MMR{}, fmt.Errorf("%w: got %d, want %d for [%d, %d)", ErrInvalidNumberOfPeaks, len(peaks), want, start, end)
	}
	return MMR{start: start, end: end, peaks: peaks, combine: combine}, nil
}

// Start returns the first leaf index the MMR covers.
func (m MMR) Start() uint64 { return m.start }

// End returns the leaf index one past the last leaf the MMR covers.
func (m MMR) End() uint64 { return m.end }

// Size returns the number of leaves the MMR covers, end - start.
func (m MMR) Size() uint64 { return m.end - m.start }

// Peaks returns the MMR's peak digests, ordered left-ascending then
// right-descending as described in the package doc. The returned slice
// aliases the MMR's internal storage; callers that need to mutate it should
// copy it first.
func (m MMR) Peaks() []digest.Digest { return m.peaks }

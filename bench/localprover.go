package bench

import (
	"context"

	"github.com/forestrie/compactmmr/blob"
	"github.com/forestrie/compactmmr/compactmmr"
	"github.com/forestrie/compactmmr/digest"
)

// countingCombiner wraps a digest.Combiner and counts how many times Combine
// is invoked.
type countingCombiner struct {
	inner digest.Combiner
	count uint64
}

func (c *countingCombiner) Combine(left, right digest.Digest) digest.Digest {
	c.count++
	return c.inner.Combine(left, right)
}

// LocalProver computes the root in-process and reports the number of
// Combine calls as a stand-in cycle count. It has no access to a real zkVM,
// so this is a deliberately named proxy metric, not a cycle count from any
// actual prover.
type LocalProver struct {
	Combine digest.Combiner
}

// Prove folds params.Leaves into an MMR root and returns the number of
// Combine invocations performed.
func (p LocalProver) Prove(ctx context.Context, params blob.Params) (uint64, error) {
	counter := &countingCombiner{inner: p.Combine}
	m := compactmmr.New(counter)
	for _, leaf := range params.Leaves {
		select {
		case <-ctx.Done():
			return counter.count, ctx.Err()
		default:
		}
		m.Append(leaf)
	}
	m.Root()
	return counter.count, nil
}

var _ Prover = LocalProver{}

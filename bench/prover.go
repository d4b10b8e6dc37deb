// Package bench drives a merklize computation across a range of input
// sizes and renders the result as the Markdown table the prover benchmark
// harness produces, mirroring benches/sp1_merklize.rs.
package bench

import (
	"context"

	"github.com/forestrie/compactmmr/blob"
)

// Prover computes a root for params and reports the cycle cost of doing so.
// The reference harness measures a zkVM guest program's cycle count; this
// repo has no zkVM SDK available, so LocalProver below substitutes a local
// proxy metric rather than fabricating one.
type Prover interface {
	Prove(ctx context.Context, params blob.Params) (cycles uint64, err error)
}

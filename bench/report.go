package bench

import (
	"context"
	"fmt"
	"strings"

	"github.com/forestrie/compactmmr/blob"
	"github.com/forestrie/compactmmr/digest"
	"github.com/forestrie/compactmmr/leafgen"
)

// Result is one row of the bench report: the outcome of proving a single
// iteration's parameter blob.
type Result struct {
	Iteration     int
	Args          string
	TotalCycles   uint64
	CyclesPerLeaf uint64
}

// Run drives prover across iterations i in [0, 16) with num_leaves = 2^i,
// leaf j generated by leafgen.Sequential(hash, j), matching the reference
// benchmark's driver loop.
func Run(ctx context.Context, prover Prover, hash leafgen.Hasher) ([]Result, error) {
	const iterations = 16

	results := make([]Result, 0, iterations)
	for i := 0; i < iterations; i++ {
		numLeaves := uint64(1) << uint(i)

		leaves := make([]digest.Digest, numLeaves)
		for j := range leaves {
			leaves[j] = leafgen.Sequential(hash, uint64(j))
		}

		cycles, err := prover.Prove(ctx, blob.Params{Leaves: leaves})
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}

		results = append(results, Result{
			Iteration:     i,
			Args:          fmt.Sprintf("2^%d = %d leaves", i, numLeaves),
			TotalCycles:   cycles,
			CyclesPerLeaf: cycles / numLeaves,
		})
	}
	return results, nil
}

// Render writes results as the Markdown table the reference harness
// produces under the heading "## Merklize Bench Results".
func Render(results []Result) string {
	var b strings.Builder
	b.WriteString("## Merklize Bench Results\n")
	b.WriteString("| Iteration | Args | Total Cycles | Cycles Per Leaf |\n")
	b.WriteString("|-----------|------|--------------|----------------|\n")
	for _, r := range results {
		fmt.Fprintf(&b, "| %d | %s | %d | %d |\n", r.Iteration, r.Args, r.TotalCycles, r.CyclesPerLeaf)
	}
	return b.String()
}

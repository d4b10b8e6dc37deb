// merklizebench drives LocalProver across the benchmark's 16 iterations and
// writes the resulting Markdown table, mirroring benches/sp1_merklize.rs's
// driver loop and output file.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/forestrie/compactmmr/bench"
	"github.com/forestrie/compactmmr/keccak"
)

var outFlag = &cli.StringFlag{
	Name:  "out",
	Usage: "file to write the Markdown report to; stdout if omitted",
}

func main() {
	app := &cli.App{
		Name:   "merklizebench",
		Usage:  "benchmark merklize over a range of input sizes",
		Flags:  []cli.Flag{outFlag},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Crit("merklizebench failed", "error", err)
	}
}

func run(c *cli.Context) error {
	prover := bench.LocalProver{Combine: keccak.Combiner{}}

	results, err := bench.Run(c.Context, prover, keccak.Hash)
	if err != nil {
		return fmt.Errorf("running bench: %w", err)
	}

	report := bench.Render(results)

	if path := c.String(outFlag.Name); path != "" {
		if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
			return fmt.Errorf("writing report to %s: %w", path, err)
		}
		log.Info("wrote bench report", "path", path)
		return nil
	}

	fmt.Fprint(c.App.Writer, report)
	return nil
}

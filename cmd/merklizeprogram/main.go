// merklizeprogram mirrors the zkVM guest entry point: it reads a parameter
// blob, folds the leaves into an MMR, and commits the root. The zkVM's
// stdin/stdout I/O is replaced here with a file or stdin flag and stdout,
// since this repo has no zkVM runtime to host a real guest program in.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/forestrie/compactmmr/blob"
	"github.com/forestrie/compactmmr/compactmmr"
	"github.com/forestrie/compactmmr/keccak"
)

var paramsFlag = &cli.StringFlag{
	Name:  "params",
	Usage: "path to a CBOR-encoded Params blob; reads stdin if omitted",
}

func main() {
	app := &cli.App{
		Name:   "merklizeprogram",
		Usage:  "fold a leaf sequence into an MMR root",
		Flags:  []cli.Flag{paramsFlag},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Crit("merklizeprogram failed", "error", err)
	}
}

func run(c *cli.Context) error {
	raw, err := readParams(c)
	if err != nil {
		return fmt.Errorf("reading params: %w", err)
	}

	params, err := blob.Decode(raw)
	if err != nil {
		return fmt.Errorf("decoding params: %w", err)
	}

	m := compactmmr.FromLeaves(keccak.Combiner{}, params.Leaves)
	root := m.Root()

	log.Info("merklized", "leaves", len(params.Leaves), "root", root.String(), "peaks", m.DebugString(","))
	fmt.Fprintln(c.App.Writer, root.String())
	return nil
}

func readParams(c *cli.Context) ([]byte, error) {
	if path := c.String(paramsFlag.Name); path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

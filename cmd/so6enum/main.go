// Command so6enum enumerates canonical SO(6) Clifford+T matrices by
// T-count, matching them against a pattern checklist.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "so6enum",
		Short: "Enumerate SO(6) Clifford+T circuits by T-count",
		Long: `so6enum enumerates, up to row/column permutation and sign
equivalence, the orthogonal 6×6 matrices over Z[1/√2] built from
products of the fifteen T-generators. Newly discovered matrices are
matched against a pattern checklist and their circuits streamed to
per-T-count data files.`,
		SilenceUsage: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newReplayCmd())
	root.AddCommand(newChartCmd())
	return root
}

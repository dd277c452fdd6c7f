package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmendel/so6enum/enumerate"
	"github.com/tmendel/so6enum/so6"
)

func newReplayCmd() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "replay [circuit]",
		Short: "Rebuild matrices from circuit strings",
		Long: `replay reconstructs matrices from space-separated generator
indices, either a single circuit given as an argument or every line
of a per-T-count data file via --file, and prints each matrix's
canonical form together with its pattern case.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if fromFile != "" {
				f, err := os.Open(fromFile)
				if err != nil {
					return err
				}
				defer f.Close()

				mats, err := enumerate.ReplayFile(f)
				if err != nil {
					return err
				}
				for _, m := range mats {
					printMatrix(out, m)
				}
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("need a circuit argument or --file")
			}
			return printCircuit(out, args[0])
		},
	}

	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "replay every line of a .dat file")
	return cmd
}

func printCircuit(out io.Writer, circuit string) error {
	m, err := so6.Replay(circuit)
	if err != nil {
		return err
	}
	printMatrix(out, m)
	return nil
}

func printMatrix(out io.Writer, m *so6.Matrix) {
	p := m.ToPattern()
	fmt.Fprintf(out, "circuit: %s\nT-count: %d\ncase:    %d\n%s\n", m.CircuitString(), m.TCount(), p.Case(), m)
}

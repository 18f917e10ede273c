package main

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/gridio"
)

var errNoSolution = errors.New("no solution")

func newSolveCommand() *cobra.Command {
	var (
		inputFile  string
		outputFile string
		noBorder   bool
		all        bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solves a puzzle read from a file or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := newService()
			g, err := readGrid(inputFile)
			if err != nil {
				return err
			}
			out, err := openOutput(outputFile)
			if err != nil {
				return err
			}
			defer out.Close()

			if all {
				solutions, st := uc.SolveAll(cmd.Context(), g)
				if len(solutions) == 0 {
					return errNoSolution
				}
				log.Debug().Int("solutions", len(solutions)).Int("nodes", st.Nodes).Dur("dur", st.Duration).Msg("solved")
				for _, sol := range solutions {
					if err := gridio.Write(out, sol, !noBorder, ' '); err != nil {
						return err
					}
				}
				return nil
			}

			sol, ok, st := uc.SolveAny(cmd.Context(), g)
			if !ok {
				return errNoSolution
			}
			log.Debug().Int("nodes", st.Nodes).Dur("dur", st.Duration).Msg("solved")
			return gridio.Write(out, sol, !noBorder, ' ')
		},
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "input file, omit to read from stdin")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (overwrites), omit to write to stdout")
	cmd.Flags().BoolVarP(&noBorder, "no-border", "n", false, "do not draw a border around the solution")
	cmd.Flags().BoolVar(&all, "all", false, "print every solution instead of the first")
	return cmd
}

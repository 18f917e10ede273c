package main

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/gridio"
)

func newGenCommand() *cobra.Command {
	var (
		outputFile string
		noBorder   bool
		blankChar  string
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generates a puzzle with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := newService()
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			p, st, err := uc.Generate(cmd.Context(), seed)
			if err != nil {
				return err
			}
			log.Debug().
				Int64("seed", seed).
				Int("blanks", p.Grid.CountBlanks()).
				Int("nodes", st.Nodes).
				Dur("dur", st.Duration).
				Msg("generated")

			out, err := openOutput(outputFile)
			if err != nil {
				return err
			}
			if err := gridio.Write(out, p.Grid, !noBorder, blankRune(blankChar)); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (overwrites), omit to write to stdout")
	cmd.Flags().BoolVarP(&noBorder, "no-border", "n", false, "do not draw a border around the puzzle")
	cmd.Flags().StringVarP(&blankChar, "blank", "b", " ", "character that represents a blank cell")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 picks one from the clock")
	return cmd
}

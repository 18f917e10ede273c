package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/generator"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "Generate and solve 9x9 Sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenCommand(), newSolveCommand(), newServeCommand())

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("sudoku")
	}
}

// newService wires the backtracking solver into the generator and the
// conflict-reporting validator, the full engine surface.
func newService() *usecase.Service {
	s := solver.NewBacktrackingSolver()
	return usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New())
}

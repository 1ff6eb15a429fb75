// apps/go-server/cmd/boggle/main.go
//
// Command-line front end for the solver.
//   boggle solve  --grid FILE [--dict FILE] [--highlight]
//   boggle random --size N [--dict FILE]
//
// Without --dict the embedded word list is used. Output goes to stdout,
// diagnostics to stderr.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/boggle/apps/go-server/internal/boggle"
	"github.com/robalobadob/boggle/apps/go-server/internal/config"
	"github.com/robalobadob/boggle/apps/go-server/internal/game"
	"github.com/robalobadob/boggle/apps/go-server/internal/words"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(config.GetStringEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "boggle",
		Short:        "Find every dictionary word on a Boggle grid",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd(), newRandomCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	var gridPath, dictPath string
	var highlight bool

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a grid read from a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(gridPath)
			if err != nil {
				return err
			}
			defer f.Close()

			grid, err := ParseGrid(f)
			if err != nil {
				return fmt.Errorf("%s: %w", gridPath, err)
			}
			dict, err := loadDictionary(dictPath)
			if err != nil {
				return err
			}

			found := boggle.Solve(grid, dict)
			log.Debug().Int("rows", len(grid)).Int("dictionary", len(dict)).Int("found", len(found)).Msg("solved")
			printWords(cmd.OutOrStdout(), grid, found, highlight)
			return nil
		},
	}
	cmd.Flags().StringVar(&gridPath, "grid", "", "grid file: one row per line, tiles split by commas or spaces")
	cmd.Flags().StringVar(&dictPath, "dict", "", "word list file (default: embedded list)")
	cmd.Flags().BoolVar(&highlight, "highlight", false, "draw each word's path on the grid")
	_ = cmd.MarkFlagRequired("grid")
	return cmd
}

func newRandomCmd() *cobra.Command {
	var size int
	var dictPath string

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random grid and solve it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 1 {
				return fmt.Errorf("size must be at least 1, got %d", size)
			}
			dict, err := loadDictionary(dictPath)
			if err != nil {
				return err
			}

			grid := game.RandomGrid(size)
			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderGrid(grid, nil))
			fmt.Fprintln(out)
			printWords(out, grid, boggle.Solve(grid, dict), false)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 4, "grid side length")
	cmd.Flags().StringVar(&dictPath, "dict", "", "word list file (default: embedded list)")
	return cmd
}

func loadDictionary(path string) ([]string, error) {
	dict, err := words.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	return dict, nil
}

// printWords writes one word per line, or each word followed by its
// highlighted path when highlight is set.
func printWords(w io.Writer, grid [][]string, found []string, highlight bool) {
	for _, word := range found {
		fmt.Fprintln(w, word)
		if highlight {
			fmt.Fprint(w, renderGrid(grid, boggle.FindPath(grid, word)))
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintf(w, "%d words\n", len(found))
}

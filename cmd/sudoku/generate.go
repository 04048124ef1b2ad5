package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sudokuengine/core/internal/config"
	"github.com/sudokuengine/core/internal/domain"
	"github.com/sudokuengine/core/internal/generator"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/solver"
)

type generateOptions struct {
	blockHeight int
	blockWidth  int
	difficulty  string
	seed        int64
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Carve a fresh puzzle at a target difficulty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &opts)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.blockHeight, "block-height", 0, "block height (default from config, else 3)")
	f.IntVar(&opts.blockWidth, "block-width", 0, "block width (default from config, else 3)")
	f.StringVar(&opts.difficulty, "difficulty", "medium", "easy|medium|hard|expert")
	f.Int64Var(&opts.seed, "seed", 0, "RNG seed; 0 picks one from the current time")
	return cmd
}

func init() {
	rootCmd.AddCommand(newGenerateCmd())
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	bh, bw := cfg.BlockHeight, cfg.BlockWidth
	if cmd.Flags().Changed("block-height") {
		bh = opts.blockHeight
	}
	if cmd.Flags().Changed("block-width") {
		bw = opts.blockWidth
	}
	g, err := grid.New(bh, bw)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := generator.NewUniqueGenerator(solver.NewDLXSolver())
	diff := domain.ParseDifficulty(opts.difficulty)
	p, _, err := gen.Generate(context.Background(), seed, g, cfg.Marks, diff)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), p.Board.Lines)
	return nil
}

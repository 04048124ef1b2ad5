package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sudokuengine/core/internal/config"
	"github.com/sudokuengine/core/internal/deducer"
	"github.com/sudokuengine/core/internal/evidence"
	"github.com/sudokuengine/core/internal/format"
	"github.com/sudokuengine/core/internal/grid"
	"github.com/sudokuengine/core/internal/puzzle"
	"github.com/sudokuengine/core/internal/searcher"
)

type solveOptions struct {
	blockHeight     int
	blockWidth      int
	marks           string
	naked           int
	hidden          int
	linked          int
	lowerLevelFirst bool
	guess           bool
	maxSolutions    int
	deduceMsg       bool
	boardPrint      bool
}

func newSolveCmd() *cobra.Command {
	var opts solveOptions
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a puzzle, printing its deduce/guess transcript",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, &opts)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.blockHeight, "block-height", 0, "block height (default from config, else 3)")
	f.IntVar(&opts.blockWidth, "block-width", 0, "block width (default from config, else 3)")
	f.StringVar(&opts.marks, "marks", "", "marker alphabet (default from config, else digits+A-Z)")
	f.IntVar(&opts.naked, "naked", -1, "max naked-subset level, -1 unlimited")
	f.IntVar(&opts.hidden, "hidden", -1, "max hidden-subset level, -1 unlimited")
	f.IntVar(&opts.linked, "linked", -1, "max linked (fish) level, -1 unlimited")
	f.BoolVar(&opts.lowerLevelFirst, "lower-level-first", true, "restart each round at the lowest rule level after a hit")
	f.BoolVar(&opts.guess, "guess", true, "fall back to guess search when deduction reaches a fixpoint")
	f.IntVar(&opts.maxSolutions, "max-solutions", 1, "stop guess search after this many solutions")
	f.BoolVar(&opts.deduceMsg, "deduce-msg", true, "print each step's transcript line")
	f.BoolVar(&opts.boardPrint, "board-print", false, "print the final board state")
	return cmd
}

func init() {
	rootCmd.AddCommand(newSolveCmd())
}

func runSolve(cmd *cobra.Command, args []string, opts *solveOptions) error {
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
	marks := cfg.Marks
	if cmd.Flags().Changed("marks") {
		marks = opts.marks
	}

	g, err := grid.New(bh, bw)
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	p, err := format.ParsePuzzle(r, g, marks)
	if err != nil {
		return err
	}

	dcfg := cfg.DeducerConfig()
	if cmd.Flags().Changed("naked") {
		dcfg.NakedMaxLevel = opts.naked
	}
	if cmd.Flags().Changed("hidden") {
		dcfg.HiddenMaxLevel = opts.hidden
	}
	if cmd.Flags().Changed("linked") {
		dcfg.LinkedMaxLevel = opts.linked
	}
	if cmd.Flags().Changed("lower-level-first") {
		dcfg.LowerLevelFirst = opts.lowerLevelFirst
	}

	out := cmd.OutOrStdout()
	ctx := context.Background()
	printStep := func(rule string, renderTo func(w io.Writer) error) error {
		if !opts.deduceMsg {
			return nil
		}
		var sb strings.Builder
		if err := renderTo(&sb); err != nil {
			return err
		}
		fmt.Fprint(out, styleLine(rule, sb.String()))
		return nil
	}

	d := deducer.New(dcfg)
	for st := range d.Deduce(ctx, p) {
		rule := ruleOf(st.Evidence)
		if err := printStep(rule, func(w io.Writer) error {
			return format.FormatStep(w, st, g, marks)
		}); err != nil {
			return err
		}
	}

	if p.Paradoxical() {
		fmt.Fprintln(out, styleLine("paradox", "paradox: no solution"))
		return fmt.Errorf("solve: puzzle is paradoxical")
	}

	if !p.Solved() && opts.guess {
		se := searcher.New(deducer.New(dcfg))
		var solutions []*puzzle.Puzzle
		for st := range se.Search(ctx, p, &solutions, opts.maxSolutions) {
			rule := ruleOf(st.Evidence)
			if err := printStep(rule, func(w io.Writer) error {
				return format.FormatStep(w, st, g, marks)
			}); err != nil {
				return err
			}
		}
		if len(solutions) > 0 {
			p = solutions[0]
		}
	}

	if opts.boardPrint {
		var sb strings.Builder
		if err := format.FormatPuzzle(&sb, p, marks); err != nil {
			return err
		}
		fmt.Fprint(out, styleSolved(sb.String()))
	}

	return nil
}

func ruleOf(ev evidence.Evidence) string {
	switch e := ev.(type) {
	case evidence.Naked:
		return "naked"
	case evidence.Hidden:
		return "hidden"
	case evidence.Linked:
		return "linked"
	case evidence.Guess:
		return "guess"
	case evidence.Paradox:
		return ruleOf(e.Cause)
	default:
		return "unknown"
	}
}

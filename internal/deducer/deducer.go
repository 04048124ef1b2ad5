// Package deducer runs the naked/hidden/linked logical deduction rules
// to a fixpoint, streaming every mutating step it makes and aborting the
// stream the instant a rule proves the puzzle has no solution.
package deducer

import (
	"context"
	"iter"

	"github.com/sudokuengine/core/internal/puzzle"
	"github.com/sudokuengine/core/internal/step"
)

// Deducer applies its Config's rule families to a Puzzle in place.
type Deducer struct {
	Config Config
}

// New constructs a Deducer with the given configuration.
func New(cfg Config) *Deducer {
	return &Deducer{Config: cfg}
}

// Deduce mutates p in place, yielding one Step per fired deduction,
// until a full round produces nothing new or p is fulfilled. If a rule
// finds a pigeonhole violation, the final yielded step carries a
// Paradox and the sequence ends there rather than at a fixpoint.
func (d *Deducer) Deduce(ctx context.Context, p *puzzle.Puzzle) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		n := p.Grid().Size()
		for {
			if ctx.Err() != nil || p.Fulfilled() {
				return
			}

			fired := false
			for k := 1; k <= n-1; k++ {
				if d.Config.nakedEnabledAt(k) {
					f, cont := d.nakedDeduce(p, k, yield)
					if !cont {
						return
					}
					fired = fired || f
				}
				if d.Config.hiddenEnabledAt(k) {
					f, cont := d.hiddenDeduce(p, k, yield)
					if !cont {
						return
					}
					fired = fired || f
				}
				if k >= 2 && d.Config.linkedEnabledAt(k) {
					f, cont := d.linkedDeduce(p, k, yield)
					if !cont {
						return
					}
					fired = fired || f
				}
				if fired && d.Config.LowerLevelFirst {
					break
				}
			}

			if !fired {
				return
			}
		}
	}
}

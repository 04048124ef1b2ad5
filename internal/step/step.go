// Package step defines the unit the Deducer and Searcher stream out:
// one justified batch of candidate removals.
package step

import (
	"github.com/sudokuengine/core/internal/evidence"
	"github.com/sudokuengine/core/internal/puzzle"
)

// Step bundles the evidence that justified a round of mutation with the
// exact per-cell removals it produced.
type Step struct {
	Evidence  evidence.Evidence
	Mutations []puzzle.Variation
}

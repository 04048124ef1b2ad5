// Package combinator generates the fixed-size subsequences the naked,
// hidden, and linked deduction rules enumerate over, with an optional
// greedy-pruning hook to keep C(N,k) tractable at higher levels.
package combinator

import "iter"

// Prune receives the candidate element under consideration and the
// accumulator built from the selection so far, and returns whether to
// stop extending this partial selection (and skip every extension of
// it) plus the accumulator to carry forward if it continues.
type Prune[T, A any] func(elem T, acc A) (stop bool, next A)

// Combinations yields every strictly increasing-index subsequence of
// length k from items, in lexicographic order of index, with no pruning.
func Combinations[T any](items []T, k int) iter.Seq[[]T] {
	return CombinationsPruned[T, struct{}](items, k, nil, struct{}{})
}

// CombinationsPruned is Combinations with an optional greedy-pruning
// reducer. zero is the initial accumulator value; prune may be nil, in
// which case no pruning is applied.
func CombinationsPruned[T, A any](items []T, k int, prune Prune[T, A], zero A) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if k < 0 || k > len(items) {
			return
		}
		chosen := make([]T, 0, k)
		var rec func(start int, acc A) bool
		rec = func(start int, acc A) bool {
			if len(chosen) == k {
				out := make([]T, k)
				copy(out, chosen)
				return yield(out)
			}
			remaining := k - len(chosen)
			for i := start; i <= len(items)-remaining; i++ {
				elem := items[i]
				nextAcc := acc
				if prune != nil {
					var stop bool
					stop, nextAcc = prune(elem, acc)
					if stop {
						continue
					}
				}
				chosen = append(chosen, elem)
				cont := rec(i+1, nextAcc)
				chosen = chosen[:len(chosen)-1]
				if !cont {
					return false
				}
			}
			return true
		}
		rec(0, zero)
	}
}

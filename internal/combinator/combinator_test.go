package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect[T any](seq func(func([]T) bool)) [][]T {
	var out [][]T
	for c := range seq {
		out = append(out, c)
	}
	return out
}

func TestCombinationsK2(t *testing.T) {
	items := []int{1, 2, 3}
	got := collect(Combinations(items, 2))
	assert.Equal(t, [][]int{{1, 2}, {1, 3}, {2, 3}}, got)
}

func TestCombinationsK0YieldsOneEmptySelection(t *testing.T) {
	got := collect(Combinations([]int{1, 2}, 0))
	assert.Equal(t, [][]int{{}}, got)
}

func TestCombinationsKLargerThanItemsYieldsNothing(t *testing.T) {
	got := collect(Combinations([]int{1, 2}, 3))
	assert.Empty(t, got)
}

func TestCombinationsEarlyStopViaFalseReturn(t *testing.T) {
	items := []int{1, 2, 3, 4}
	var seen [][]int
	for c := range Combinations(items, 2) {
		seen = append(seen, c)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, [][]int{{1, 2}, {1, 3}}, seen)
}

func TestCombinationsPrunedSkipsElementsAndTheirExtensions(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	// Stop extending a partial selection once its running sum would exceed 6.
	prune := func(elem int, acc int) (bool, int) {
		if acc+elem > 6 {
			return true, acc
		}
		return false, acc + elem
	}
	got := collect(CombinationsPruned(items, 2, prune, 0))
	assert.Equal(t, [][]int{{1, 2}, {1, 3}, {1, 4}, {1, 5}, {2, 3}, {2, 4}}, got)
}

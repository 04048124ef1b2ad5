package candidateset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullAndSize(t *testing.T) {
	s := Full(9)
	require.Equal(t, 9, s.Size())
	for v := 0; v < 9; v++ {
		assert.True(t, s.Contains(v))
	}
	assert.False(t, s.Contains(9))
}

func TestMergeReturnsExactDiff(t *testing.T) {
	s := Of(1, 2)
	added := s.Merge(Of(2, 3, 4))
	assert.Equal(t, Of(3, 4), added)
	assert.Equal(t, Of(1, 2, 3, 4), s)

	// merging nothing new yields an empty diff
	again := s.Merge(Of(3))
	assert.True(t, again.Empty())
}

func TestRemoveReturnsExactDiff(t *testing.T) {
	s := Of(1, 2, 3)
	removed := s.Remove(Of(2, 5))
	assert.Equal(t, Of(2), removed)
	assert.Equal(t, Of(1, 3), s)
}

func TestRetainReturnsExactDiff(t *testing.T) {
	s := Of(1, 2, 3, 4)
	removed := s.Retain(Of(2, 4, 9))
	assert.Equal(t, Of(1, 3), removed)
	assert.Equal(t, Of(2, 4), s)
}

func TestPeekMinimum(t *testing.T) {
	s := Of(5, 2, 8)
	v, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = Set{}.Peek()
	assert.False(t, ok)
}

func TestValuesAscending(t *testing.T) {
	s := Of(7, 1, 4)
	assert.Equal(t, []int{1, 4, 7}, s.Slice())
}

func TestUnion(t *testing.T) {
	u := Union(Of(1, 2), Of(2, 3), Of(9))
	assert.Equal(t, Of(1, 2, 3, 9), u)
}

// merge(remove(x)) = x when x is a subset of the original (round-trip law, spec §8).
func TestMergeRemoveRoundTrip(t *testing.T) {
	original := Of(0, 1, 2, 3, 4)
	x := Of(1, 3)
	working := original
	working.Remove(x)
	working.Merge(x)
	assert.Equal(t, original, working)
}

// retain(s).remove(s) = original - s (round-trip law, spec §8): the diff
// Retain(s) returns, with s removed from it, is original minus s.
func TestRetainThenRemoveEqualsSubtract(t *testing.T) {
	original := Of(0, 1, 2, 3, 4)
	s := Of(1, 3)
	working := original
	diff := working.Retain(s)
	diff.Remove(s)

	expected := original
	expected.Remove(s)
	assert.Equal(t, expected, diff)
}

func TestContainsAnyAll(t *testing.T) {
	s := Of(1, 2, 3)
	assert.True(t, s.ContainsAny(Of(3, 9)))
	assert.False(t, s.ContainsAny(Of(9, 10)))
	assert.True(t, s.ContainsAll(Of(1, 2)))
	assert.False(t, s.ContainsAll(Of(1, 9)))
}

package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphConstructionPathsMatch(t *testing.T) {
	t.Parallel()

	fromParallel, err := NewGraph([]int{0, 5}, []int{10, 20})
	require.NoError(t, err)
	fromPoints := GraphFromPoints([]Point{{0, 10}, {5, 20}})

	want := []Point{{Time: 0, Value: 10}, {Time: 5, Value: 20}}
	assert.Equal(t, want, fromParallel.AsPoints())
	assert.Equal(t, want, fromPoints.AsPoints())
	assert.Equal(t, fromParallel, fromPoints)
}

func TestGraphAsPointsRestartable(t *testing.T) {
	t.Parallel()

	g := GraphFromPoints([]Point{{0, 1}, {10, 2}, {20, 3}})

	first := g.AsPoints()
	second := g.AsPoints()
	assert.Equal(t, first, second)

	// Mutating a returned slice must not leak into the graph.
	first[0].Value = 999
	assert.Equal(t, 1, g.AsPoints()[0].Value)
}

func TestGraphCopiesInputs(t *testing.T) {
	t.Parallel()

	times := []int{0, 5}
	values := []int{1, 2}
	g, err := NewGraph(times, values)
	require.NoError(t, err)

	times[0] = 100
	assert.Equal(t, 0, g.Times()[0])
}

func TestGraphLengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := NewGraph([]int{0, 5, 10}, []int{1})
	require.Error(t, err)
}

func TestGraphEmpty(t *testing.T) {
	t.Parallel()

	g := GraphFromPoints(nil)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.AsPoints())
	assert.Equal(t, "Graph with 0 values", g.String())
}

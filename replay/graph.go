package replay

import "fmt"

// Point is one (time, value) sample from a score-screen graph.
type Point struct {
	Time  int
	Value int
}

// Graph holds one score-screen time series as parallel time/value slices.
// Times are expected to be non-decreasing; the container neither enforces
// nor repairs ordering — the summary decoder that supplies the samples owns
// that guarantee.
type Graph struct {
	times  []int
	values []int
}

// NewGraph builds a graph from pre-split parallel slices. Both slices are
// copied, and their lengths must match.
func NewGraph(times, values []int) (*Graph, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("graph: %d times but %d values", len(times), len(values))
	}
	g := &Graph{
		times:  make([]int, len(times)),
		values: make([]int, len(values)),
	}
	copy(g.times, times)
	copy(g.values, values)
	return g, nil
}

// GraphFromPoints builds a graph from an ordered sample list. The resulting
// state is identical to NewGraph over the split slices.
func GraphFromPoints(points []Point) *Graph {
	g := &Graph{
		times:  make([]int, len(points)),
		values: make([]int, len(points)),
	}
	for i, p := range points {
		g.times[i] = p.Time
		g.values[i] = p.Value
	}
	return g
}

// AsPoints returns the samples as a freshly allocated slice. It never
// mutates the graph; repeated calls yield identical, independent results.
func (g *Graph) AsPoints() []Point {
	points := make([]Point, len(g.times))
	for i := range g.times {
		points[i] = Point{Time: g.times[i], Value: g.values[i]}
	}
	return points
}

// Times returns the x-axis samples in game seconds.
func (g *Graph) Times() []int { return g.times }

// Values returns the y-axis samples.
func (g *Graph) Values() []int { return g.values }

// Len returns the number of samples.
func (g *Graph) Len() int { return len(g.times) }

func (g *Graph) String() string {
	return fmt.Sprintf("Graph with %d values", len(g.times))
}

// BuildEntry is a single build-order sample from the score screen.
type BuildEntry struct {
	Supply      int
	TotalSupply int
	Time        int
	Order       string
	BuildIndex  int
}

package dijkstra_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/livewire/dijkstra"
	"github.com/katalvlaran/livewire/pixelgraph"
)

// testRaster builds a w×h gray raster; pixel values are irrelevant to the
// arithmetic weigher below, which depends only on vertex ids.
func testRaster(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}

	return img
}

// arithWeigher is a deterministic, symmetric, non-negative weigher derived
// from the endpoint ids alone, giving small graphs interesting weight
// structure without any raster content.
func arithWeigher(_ *pixelgraph.Graph, a, b int) int64 {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}

	return int64((lo*7 + hi*13) % 11)
}

// uniformWeigher prices every edge at 1.
func uniformWeigher(_ *pixelgraph.Graph, _, _ int) int64 { return 1 }

// negativeWeigher violates the non-negativity precondition on purpose.
func negativeWeigher(_ *pixelgraph.Graph, _, _ int) int64 { return -1 }

// bellmanFord is the brute-force reference: |V|-1 rounds of relaxing every
// neighbor edge, immune to any bug class the heap-based search could share.
func bellmanFord(t *testing.T, g *pixelgraph.Graph, w pixelgraph.Weigher, source int) []int64 {
	t.Helper()
	const inf = int64(1) << 62
	n := g.VertexCount()
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[source] = 0

	for round := 0; round < n-1; round++ {
		changed := false
		for u := 0; u < n; u++ {
			if dist[u] == inf {
				continue
			}
			nbrs, err := g.Neighbors(u)
			require.NoError(t, err)
			for _, v := range nbrs {
				if cand := dist[u] + w(g, u, v); cand < dist[v] {
					dist[v] = cand
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// ---------------------------------------------------------------------------
// 1. Construction validation
// ---------------------------------------------------------------------------

func TestNewPathfinder_Validation(t *testing.T) {
	g, err := pixelgraph.New(testRaster(4, 4), pixelgraph.DefaultOptions())
	require.NoError(t, err)

	_, err = dijkstra.NewPathfinder(nil, uniformWeigher, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph, "nil graph")

	_, err = dijkstra.NewPathfinder(g, nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilWeigher, "nil weigher")

	_, err = dijkstra.NewPathfinder(g, uniformWeigher, -1)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound, "negative source")

	_, err = dijkstra.NewPathfinder(g, uniformWeigher, g.VertexCount())
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound, "source past the raster")
}

func TestExtendSearch_BadBudget(t *testing.T) {
	g, err := pixelgraph.New(testRaster(3, 3), pixelgraph.DefaultOptions())
	require.NoError(t, err)
	p, err := dijkstra.NewPathfinder(g, uniformWeigher, 0)
	require.NoError(t, err)

	_, err = p.ExtendSearch(0)
	assert.ErrorIs(t, err, dijkstra.ErrBadBudget)
	_, err = p.ExtendSearch(-5)
	assert.ErrorIs(t, err, dijkstra.ErrBadBudget)
}

// ---------------------------------------------------------------------------
// 2. Search correctness against a brute-force reference
// ---------------------------------------------------------------------------

func TestExtendSearch_MatchesBellmanFord(t *testing.T) {
	g, err := pixelgraph.New(testRaster(7, 5), pixelgraph.DefaultOptions())
	require.NoError(t, err)
	source, err := g.VertexIDAt(image.Pt(2, 1))
	require.NoError(t, err)

	p, err := dijkstra.NewPathfinder(g, arithWeigher, source)
	require.NoError(t, err)

	var snap *dijkstra.Snapshot
	for !p.AllPathsFound() {
		snap, err = p.ExtendSearch(6)
		require.NoError(t, err)
	}
	require.Equal(t, g.VertexCount(), p.SettledCount(), "grid is fully connected")

	ref := bellmanFord(t, g, arithWeigher, source)
	for id := 0; id < g.VertexCount(); id++ {
		d, ok := snap.DistanceTo(id)
		require.True(t, ok, "vertex %d must be settled", id)
		assert.Equal(t, ref[id], d, "vertex %d distance", id)
	}
}

func TestExtendSearch_SettleOrderNonDecreasing(t *testing.T) {
	g, err := pixelgraph.New(testRaster(5, 5), pixelgraph.DefaultOptions())
	require.NoError(t, err)
	p, err := dijkstra.NewPathfinder(g, arithWeigher, 0)
	require.NoError(t, err)

	// Budget 1 settles exactly one vertex per slice; diffing consecutive
	// snapshots recovers the settle order.
	settledBefore := make([]bool, g.VertexCount())
	last := int64(-1)
	for !p.AllPathsFound() {
		snap, err := p.ExtendSearch(1)
		require.NoError(t, err)
		for id := 0; id < g.VertexCount(); id++ {
			if !snap.Settled(id) || settledBefore[id] {
				continue
			}
			settledBefore[id] = true
			d, ok := snap.DistanceTo(id)
			require.True(t, ok)
			assert.GreaterOrEqual(t, d, last, "settle order must be non-decreasing in distance")
			last = d
		}
	}
}

func TestExtendSearch_NegativeWeight(t *testing.T) {
	g, err := pixelgraph.New(testRaster(3, 3), pixelgraph.DefaultOptions())
	require.NoError(t, err)
	p, err := dijkstra.NewPathfinder(g, negativeWeigher, 0)
	require.NoError(t, err)

	_, err = p.ExtendSearch(10)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

// ---------------------------------------------------------------------------
// 3. Budget slicing and snapshot monotonicity
// ---------------------------------------------------------------------------

func TestExtendSearch_BudgetBoundsSettlements(t *testing.T) {
	g, err := pixelgraph.New(testRaster(6, 6), pixelgraph.DefaultOptions())
	require.NoError(t, err)
	p, err := dijkstra.NewPathfinder(g, uniformWeigher, 0)
	require.NoError(t, err)

	before := p.SettledCount()
	snap, err := p.ExtendSearch(4)
	require.NoError(t, err)
	assert.Equal(t, before+4, snap.SettledCount(), "a full slice settles exactly the budget")
	assert.False(t, p.AllPathsFound())

	// Draining the rest must stop at the vertex count, never beyond.
	for !p.AllPathsFound() {
		snap, err = p.ExtendSearch(7)
		require.NoError(t, err)
	}
	assert.Equal(t, g.VertexCount(), snap.SettledCount())

	// Calling past completion is a no-op returning the final state.
	again, err := p.ExtendSearch(7)
	require.NoError(t, err)
	assert.Equal(t, snap.SettledCount(), again.SettledCount())
}

func TestSnapshots_Monotonic(t *testing.T) {
	g, err := pixelgraph.New(testRaster(6, 4), pixelgraph.DefaultOptions())
	require.NoError(t, err)
	p, err := dijkstra.NewPathfinder(g, arithWeigher, 5)
	require.NoError(t, err)

	var snaps []*dijkstra.Snapshot
	for !p.AllPathsFound() {
		snap, err := p.ExtendSearch(3)
		require.NoError(t, err)
		snaps = append(snaps, snap)
	}

	for i := 1; i < len(snaps); i++ {
		s1, s2 := snaps[i-1], snaps[i]
		assert.LessOrEqual(t, s1.SettledCount(), s2.SettledCount())
		for id := 0; id < g.VertexCount(); id++ {
			if !s1.Settled(id) {
				continue
			}
			require.True(t, s2.Settled(id), "settled sets must only grow")
			d1, _ := s1.DistanceTo(id)
			d2, _ := s2.DistanceTo(id)
			assert.Equal(t, d1, d2, "settled distances must never change")
		}
	}
}

// ---------------------------------------------------------------------------
// 4. Path reconstruction
// ---------------------------------------------------------------------------

func TestPathTo_TransientNilThenValid(t *testing.T) {
	g, err := pixelgraph.New(testRaster(8, 8), pixelgraph.DefaultOptions())
	require.NoError(t, err)
	source, err := g.VertexIDAt(image.Pt(0, 0))
	require.NoError(t, err)
	target, err := g.VertexIDAt(image.Pt(7, 7))
	require.NoError(t, err)

	p, err := dijkstra.NewPathfinder(g, uniformWeigher, source)
	require.NoError(t, err)

	// The far corner cannot be settled before the search reaches it.
	assert.Nil(t, p.PathTo(target), "no path yet is nil, not an error")
	assert.Nil(t, p.PathTo(-1), "out of range is nil")

	for !p.AllPathsFound() {
		_, err = p.ExtendSearch(16)
		require.NoError(t, err)
	}

	walk := p.PathTo(target)
	require.NotEmpty(t, walk)
	assert.Equal(t, source, walk[0], "walk starts at the source")
	assert.Equal(t, target, walk[len(walk)-1], "walk ends at the target")

	// Consecutive walk vertices must be 8-connected neighbors.
	for i := 1; i < len(walk); i++ {
		a, err := g.VertexAt(walk[i-1])
		require.NoError(t, err)
		b, err := g.VertexAt(walk[i])
		require.NoError(t, err)
		dx, dy := b.X-a.X, b.Y-a.Y
		assert.LessOrEqual(t, dx*dx, 1)
		assert.LessOrEqual(t, dy*dy, 1)
		assert.False(t, dx == 0 && dy == 0)
	}

	// With uniform weights the shortest corner-to-corner walk is the
	// diagonal: 8 vertices, distance 7.
	final, err := p.FindAllPaths(source)
	require.NoError(t, err)
	dist, known := final.DistanceTo(target)
	require.True(t, known)
	assert.Equal(t, int64(7), dist)
	assert.Len(t, walk, 8)
}

func TestFindAllPaths_Preconditions(t *testing.T) {
	g, err := pixelgraph.New(testRaster(4, 4), pixelgraph.DefaultOptions())
	require.NoError(t, err)
	p, err := dijkstra.NewPathfinder(g, uniformWeigher, 3)
	require.NoError(t, err)

	_, err = p.FindAllPaths(3)
	assert.ErrorIs(t, err, dijkstra.ErrIncompleteSearch, "frontier still live")

	for !p.AllPathsFound() {
		_, err = p.ExtendSearch(100)
		require.NoError(t, err)
	}

	_, err = p.FindAllPaths(0)
	assert.ErrorIs(t, err, dijkstra.ErrSourceMismatch)

	final, err := p.FindAllPaths(3)
	require.NoError(t, err)
	assert.Equal(t, 3, final.Source())
	assert.Equal(t, g.VertexCount(), final.SettledCount())
}

func TestSnapshot_PathToAgreesWithPathfinder(t *testing.T) {
	g, err := pixelgraph.New(testRaster(5, 4), pixelgraph.DefaultOptions())
	require.NoError(t, err)
	p, err := dijkstra.NewPathfinder(g, arithWeigher, 0)
	require.NoError(t, err)

	var snap *dijkstra.Snapshot
	for !p.AllPathsFound() {
		snap, err = p.ExtendSearch(50)
		require.NoError(t, err)
	}
	for id := 0; id < g.VertexCount(); id++ {
		assert.Equal(t, p.PathTo(id), snap.PathTo(id), "vertex %d", id)
	}
}

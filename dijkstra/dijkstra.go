package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/livewire/minqueue"
	"github.com/katalvlaran/livewire/pixelgraph"
)

// Pathfinder is a single-source Dijkstra search over a pixel graph that runs
// in bounded slices. Construction fixes the graph, the weigher and the
// source; no reconfiguration is possible afterwards. The instance moves
// through Ready → Extending → Complete as ExtendSearch is called.
//
// A Pathfinder is exclusively owned by one goroutine; only the Snapshots it
// returns may be shared.
type Pathfinder struct {
	g      *pixelgraph.Graph
	weigh  pixelgraph.Weigher
	source int

	dist    []int64 // tentative distance per vertex; infDist while unreached
	prev    []int32 // predecessor per vertex; noPrev for the source
	state   []uint8 // stateUnvisited / stateFrontier / stateSettled
	queue   *minqueue.Queue
	settled int
	buf     []int // neighbor scratch, reused across relaxations
}

// NewPathfinder constructs a search over g from the given source vertex,
// weighing edges with w.
//
// Returns ErrNilGraph, ErrNilWeigher or ErrVertexNotFound on invalid input.
func NewPathfinder(g *pixelgraph.Graph, w pixelgraph.Weigher, source int) (*Pathfinder, error) {
	// 1) Validate construction inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if w == nil {
		return nil, ErrNilWeigher
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}

	// 2) Allocate the dense per-vertex tables.
	p := &Pathfinder{
		g:      g,
		weigh:  w,
		source: source,
		dist:   make([]int64, n),
		prev:   make([]int32, n),
		state:  make([]uint8, n),
		queue:  minqueue.New(),
		buf:    make([]int, 0, 8),
	}
	for i := range p.dist {
		p.dist[i] = infDist
		p.prev[i] = noPrev
	}

	// 3) Seed the frontier with the source at distance zero.
	p.dist[source] = 0
	p.state[source] = stateFrontier
	p.queue.AddOrUpdate(source, 0)

	return p, nil
}

// Source returns the source vertex fixed at construction.
func (p *Pathfinder) Source() int { return p.source }

// VertexCount returns the number of vertices in the underlying graph.
func (p *Pathfinder) VertexCount() int { return len(p.state) }

// SettledCount returns the number of vertices with finalized distances.
// SettledCount()/VertexCount() approximates search progress; completion is
// authoritatively reported by AllPathsFound, not by this ratio.
func (p *Pathfinder) SettledCount() int { return p.settled }

// AllPathsFound reports whether every vertex reachable from the source has
// been settled (the frontier is exhausted).
func (p *Pathfinder) AllPathsFound() bool { return p.queue.IsEmpty() }

// ExtendSearch settles up to budget further vertices, fewer if the frontier
// drains first, and returns a snapshot of the state after the slice. It is
// safe to call repeatedly, including after the search has completed.
//
// Each settlement extracts the frontier vertex with the smallest tentative
// distance, finalizes it, and relaxes its unsettled neighbors, lowering
// their queued priority in place when a shorter route is found.
//
// Returns ErrBadBudget for non-positive budgets, ErrNegativeWeight if the
// weigher ever yields a negative weight.
func (p *Pathfinder) ExtendSearch(budget int) (*Snapshot, error) {
	if budget <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBudget, budget)
	}

	var u, v int
	var w, cand int64
	for i := 0; i < budget && !p.queue.IsEmpty(); i++ {
		// 1) Extract the closest frontier vertex and finalize it. Ties are
		//    broken arbitrarily by the queue; path shape on equal weights is
		//    not contractual.
		u, _ = p.queue.Remove()
		p.state[u] = stateSettled
		p.settled++

		// 2) Relax every unsettled in-bounds neighbor.
		p.buf = p.g.AppendNeighbors(u, p.buf[:0])
		for _, v = range p.buf {
			if p.state[v] == stateSettled {
				continue
			}
			w = p.g.Weight(p.weigh, u, v)
			if w < 0 {
				return nil, fmt.Errorf("%w: %d on edge %d–%d", ErrNegativeWeight, w, u, v)
			}
			cand = p.dist[u] + w
			if p.state[v] == stateUnvisited || cand < p.dist[v] {
				p.dist[v] = cand
				p.prev[v] = int32(u)
				p.state[v] = stateFrontier
				p.queue.AddOrUpdate(v, cand)
			}
		}
	}

	return p.snapshot(), nil
}

// PathTo returns the source→id vertex walk along shortest-path predecessor
// links, or nil while id is not yet settled (or out of range). A nil result
// during an ongoing search means "no path yet", not failure.
func (p *Pathfinder) PathTo(id int) []int {
	return pathTo(p.state, p.prev, id)
}

// FindAllPaths returns the final, complete snapshot of the search.
//
// Returns ErrSourceMismatch if source differs from the construction source,
// ErrIncompleteSearch while the frontier is non-empty.
func (p *Pathfinder) FindAllPaths(source int) (*Snapshot, error) {
	if source != p.source {
		return nil, fmt.Errorf("%w: got %d, search runs from %d", ErrSourceMismatch, source, p.source)
	}
	if !p.AllPathsFound() {
		return nil, ErrIncompleteSearch
	}

	return p.snapshot(), nil
}

// snapshot captures the current tables into an immutable Snapshot.
func (p *Pathfinder) snapshot() *Snapshot {
	s := &Snapshot{
		source:  p.source,
		settled: p.settled,
		dist:    make([]int64, len(p.dist)),
		prev:    make([]int32, len(p.prev)),
		state:   make([]uint8, len(p.state)),
	}
	copy(s.dist, p.dist)
	copy(s.prev, p.prev)
	copy(s.state, p.state)

	return s
}

// pathTo walks predecessor links from id back to the source and returns the
// walk in source→id order. Shared by Pathfinder and Snapshot.
func pathTo(state []uint8, prev []int32, id int) []int {
	if id < 0 || id >= len(state) || state[id] != stateSettled {
		return nil
	}

	// 1) Collect the walk target-first.
	walk := make([]int, 0, 16)
	for at := int32(id); at != noPrev; at = prev[at] {
		walk = append(walk, int(at))
	}

	// 2) Reverse in place into source→target order.
	for i, j := 0, len(walk)-1; i < j; i, j = i+1, j-1 {
		walk[i], walk[j] = walk[j], walk[i]
	}

	return walk
}

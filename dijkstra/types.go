// Package dijkstra defines the sentinel errors and internal search-state
// encoding for the incremental shortest-path solver of
// github.com/katalvlaran/livewire.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors for dijkstra operations.
var (
	// ErrNilGraph indicates a nil graph was passed to NewPathfinder.
	ErrNilGraph = errors.New("dijkstra: graph must be non-nil")
	// ErrNilWeigher indicates a nil weigher was passed to NewPathfinder.
	ErrNilWeigher = errors.New("dijkstra: weigher must be non-nil")
	// ErrVertexNotFound indicates the source vertex id is outside the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not in graph")
	// ErrBadBudget indicates ExtendSearch was given a non-positive budget.
	ErrBadBudget = errors.New("dijkstra: budget must be positive")
	// ErrNegativeWeight indicates the weigher produced a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
	// ErrSourceMismatch indicates FindAllPaths was called with a source other
	// than the one fixed at construction.
	ErrSourceMismatch = errors.New("dijkstra: source differs from construction source")
	// ErrIncompleteSearch indicates FindAllPaths was called before the
	// frontier was exhausted.
	ErrIncompleteSearch = errors.New("dijkstra: search has not settled all reachable vertices")
)

// Per-vertex search state. A vertex starts unvisited, enters the frontier
// when a tentative distance is first found, and is settled exactly once;
// settled distance and predecessor never change afterwards.
const (
	stateUnvisited uint8 = iota
	stateFrontier
	stateSettled
)

// noPrev marks a vertex with no predecessor (the source, or untouched).
const noPrev int32 = -1

// infDist is the tentative distance of vertices the search has not reached.
const infDist int64 = math.MaxInt64

// Package dijkstra provides an incremental single-source shortest-path
// solver over a pixel-adjacency graph with non-negative edge weights.
//
// Overview:
//
//   - Pathfinder runs Dijkstra's algorithm in bounded slices: each
//     ExtendSearch(budget) call settles at most budget further vertices and
//     returns an immutable Snapshot of the search so far.
//   - Snapshots from one run are monotonic: a later snapshot's settled set
//     contains the earlier one's, and settled distances never change.
//   - PathTo reconstructs the source→target vertex walk for any settled
//     vertex; unsettled vertices yield nil, an expected transient during an
//     incremental search rather than an error.
//
// When to use:
//
//   - Interactive tracing, where a caller interleaves progress reporting and
//     cancellation checks between slices instead of blocking on one long
//     search.
//   - Any workload that needs partial shortest-path results before the full
//     search completes.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) over a full run; each slice costs
//     O(budget · (deg + log V)). The frontier is an indexed min-queue with
//     true decrease-key, so at most one entry per vertex ever exists.
//   - Space: O(V) for the distance, predecessor and state tables; each
//     Snapshot copies them, O(V) per slice.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph / ErrNilWeigher / ErrVertexNotFound:
//     Invalid Pathfinder construction inputs.
//   - ErrBadBudget:
//     ExtendSearch was given a non-positive budget.
//   - ErrNegativeWeight:
//     The weigher produced a negative weight; the search cannot continue.
//   - ErrSourceMismatch / ErrIncompleteSearch:
//     FindAllPaths called with the wrong source, or before AllPathsFound.
//
// Concurrency:
//
//   - A Pathfinder is not safe for concurrent use. Each instance is owned by
//     exactly one goroutine for its whole lifetime; Snapshots it hands out
//     are immutable and may cross goroutine boundaries freely.
package dijkstra

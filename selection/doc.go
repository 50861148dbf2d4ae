// Package selection defines the selection state machine shared by the
// tracing variants of github.com/katalvlaran/livewire: the state and event
// types, the capability interface every variant implements, and the
// straight-line PointToPoint variant.
//
// Overview:
//
//   - A selection is a start point plus an ordered sequence of committed
//     polyline segments; it moves through NoSelection → Selecting →
//     (Processing ⇄) → Selected as points are committed and closed.
//   - Model is the capability interface of a tracing variant: commit a
//     point, preview a live wire, undo, move a point, finish, cancel, reset.
//     Variants are composed, not inherited: PointToPoint here draws straight
//     segments synchronously and never enters Processing; the scissors
//     package adds the graph-search variant with a background solver.
//   - Listeners observe typed events (StateChanged, SelectionChanged,
//     ProgressUpdated, PendingPathsUpdated, SearchFailed) instead of polling.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidState:
//     An operation was invoked in a state that forbids it; rejected
//     synchronously, the selection is never corrupted.
//   - ErrNoImage:
//     A point operation was attempted before an image was set.
//   - ErrNoPath:
//     A committed path between two points is required but unavailable.
//   - ErrBadPointIndex:
//     MovePoint was given an index outside the segment sequence.
//
// Concurrency:
//
//   - Models serialize all state transitions and selection-data access
//     internally. Listeners run on the goroutine that caused the event,
//     after the model's lock is released, and must not assume any
//     particular goroutine.
package selection

// Package scissors implements the "intelligent scissors" tracing variant:
// a selection model whose segments snap to strong image edges via
// background shortest-path searches over the pixel graph.
//
// Overview:
//
//   - Model implements selection.Model. Committing a point records it and
//     launches a solver goroutine; the model is Processing until the search
//     finishes, then the final path table becomes the committed table that
//     live-wire previews and appended segments are read from.
//   - The solver runs in bounded slices, handing an immutable snapshot to
//     the model after each one; the model publishes them as progress events
//     and as the pending view for preview rendering.
//   - Every search carries a fresh generation token. Results are applied
//     only when their token is still the active one; anything else is a late
//     delivery from an abandoned search and is discarded silently. Restart,
//     reset and image changes therefore never race with in-flight workers.
//   - Cancellation is cooperative and advisory: workers observe it at slice
//     boundaries, so at most one slice of work is wasted. A cancelled
//     search rolls the selection back to where it was before the search
//     started and returns to the state it was launched from.
//
// State machine:
//
//	NoSelection ─AddPoint→ Processing ─success→ Selecting
//	Selecting ─AddPoint/UndoPoint→ Processing ─success→ Selecting
//	Selecting ─Finish→ Selected ─MovePoint→ Processing ─success→ Selected
//	Processing ─cancelled→ rollback to the origin state
//	any ─Reset→ NoSelection
//
// Error handling:
//
//   - Invalid operations are rejected synchronously with
//     selection.ErrInvalidState; they never corrupt the selection.
//   - An unexpected solver fault is surfaced as a selection.SearchFailed
//     event, never absorbed; the model still returns to its origin state.
//   - Configuration errors are the package's own sentinels
//     (ErrBadSliceBudget, ErrBadProgressInterval, ErrNilContext,
//     ErrNilLogger); unknown weigher names surface
//     pixelgraph.ErrUnknownWeigher.
//
// Concurrency:
//
//   - All methods are safe from any goroutine. One mutex serializes state
//     transitions and selection data; at most one worker is active, and
//     only one search's results can ever be applied. Listeners run on the
//     goroutine that caused the event, after the lock is released.
package scissors

// Package selection defines core types and sentinel errors for the
// selection subpackage of github.com/katalvlaran/livewire.
package selection

import "errors"

// Sentinel errors shared by selection variants.
var (
	// ErrInvalidState indicates an operation invoked in a state that forbids it.
	ErrInvalidState = errors.New("selection: operation invalid in current state")
	// ErrNoImage indicates a point operation before any image was set.
	ErrNoImage = errors.New("selection: no image set")
	// ErrNoPath indicates a required committed path is unavailable.
	ErrNoPath = errors.New("selection: no path to point")
	// ErrBadPointIndex indicates a MovePoint index outside the selection.
	ErrBadPointIndex = errors.New("selection: point index out of range")
)

// State is one phase of a selection's lifecycle.
type State int

// Selection lifecycle states. Processing is always entered transiently from
// NoSelection, Selecting or Selected, and that origin is the rollback target
// should the processing be cancelled.
const (
	// NoSelection means no point has been committed.
	NoSelection State = iota
	// Selecting means at least the start point is committed and the
	// selection is still open.
	Selecting
	// Processing means a background search for the next segment is running.
	Processing
	// Selected means the selection is closed into a cycle.
	Selected
)

// String returns the state's display name.
func (s State) String() string {
	switch s {
	case NoSelection:
		return "NoSelection"
	case Selecting:
		return "Selecting"
	case Processing:
		return "Processing"
	case Selected:
		return "Selected"
	default:
		return "Unknown"
	}
}

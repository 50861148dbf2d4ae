package selection

import (
	"image"

	"github.com/katalvlaran/livewire/pixelgraph"
)

// Model is the capability interface of a tracing variant. A variant owns a
// selection (start point + committed segments) over one image and advances
// it through the State machine.
//
// All methods are safe for use from any goroutine; mutating methods reject
// operations their current state forbids with ErrInvalidState.
type Model interface {
	// State returns the current lifecycle state.
	State() State

	// SetImage resets the selection and binds the model to a new image.
	// A nil image unbinds; point operations then fail with ErrNoImage.
	SetImage(img image.Image) error

	// AddPoint commits a point: the first one starts the selection, later
	// ones append a segment connecting the previous endpoint to p.
	AddPoint(p image.Point) error

	// LiveWire returns the preview path from the selection's endpoint to p
	// without committing anything. Valid only while Selecting.
	LiveWire(p image.Point) (pixelgraph.Polyline, error)

	// UndoPoint removes the most recently committed point; undoing the
	// start point resets the selection. Valid only while Selecting.
	UndoPoint() error

	// MovePoint relocates the anchor starting segment index to p, rewriting
	// the two adjacent segments. Valid only while Selected.
	MovePoint(index int, p image.Point) error

	// Finish closes the selection with a segment back to the start point.
	// Valid only while Selecting; a selection with no segments resets
	// instead, since a single point cannot close a region.
	Finish() error

	// Cancel requests cancellation of the active background search. Valid
	// only while Processing; the state transition happens when the
	// cancelled search's completion is processed.
	Cancel() error

	// Reset discards the whole selection from any state, cancelling any
	// active background search.
	Reset()

	// Selection returns the committed segments in order.
	Selection() []pixelgraph.Polyline

	// Start returns the start point and whether one is committed.
	Start() (image.Point, bool)

	// AddListener registers a listener for model events.
	AddListener(l Listener)
}

package selection

import (
	"fmt"
	"image"
	"sync"

	"github.com/katalvlaran/livewire/pixelgraph"
)

// PointToPoint is the straight-line tracing variant: every committed point
// is connected to the previous one by a two-point segment, synchronously.
// It never enters Processing, so Cancel is always invalid and no background
// coordination exists.
type PointToPoint struct {
	Notifier

	mu       sync.Mutex
	state    State
	bounds   image.Rectangle // working bounds, anchored at the origin
	hasImage bool
	start    image.Point
	hasStart bool
	segments []pixelgraph.Polyline
}

var _ Model = (*PointToPoint)(nil)

// NewPointToPoint constructs an empty straight-line selection model with no
// image bound.
func NewPointToPoint() *PointToPoint {
	return &PointToPoint{state: NoSelection}
}

// State returns the current lifecycle state.
func (m *PointToPoint) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// SetImage resets the selection and binds the model to img's bounds,
// normalized to the origin. A nil image unbinds.
// Returns ErrEmptyImage for a raster with no pixels.
func (m *PointToPoint) SetImage(img image.Image) error {
	m.Reset()

	m.mu.Lock()
	defer m.mu.Unlock()
	if img == nil {
		m.hasImage = false
		m.bounds = image.Rectangle{}

		return nil
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return pixelgraph.ErrEmptyImage
	}
	m.bounds = image.Rect(0, 0, b.Dx(), b.Dy())
	m.hasImage = true

	return nil
}

// AddPoint commits p: the first point starts the selection, later points
// append the straight segment from the previous endpoint.
// Returns ErrInvalidState while Selected, ErrNoImage or ErrOutOfBounds on
// bad input.
func (m *PointToPoint) AddPoint(p image.Point) error {
	m.mu.Lock()
	if err := m.checkPointLocked(p); err != nil {
		m.mu.Unlock()

		return err
	}

	var events []Event
	switch m.state {
	case NoSelection:
		m.start = p
		m.hasStart = true
		m.state = Selecting
		events = append(events, SelectionChanged{}, StateChanged{From: NoSelection, To: Selecting})
	case Selecting:
		m.segments = append(m.segments, pixelgraph.Polyline{m.lastPointLocked(), p})
		events = append(events, SelectionChanged{})
	default:
		st := m.state
		m.mu.Unlock()

		return fmt.Errorf("%w: AddPoint while %s", ErrInvalidState, st)
	}
	m.mu.Unlock()
	m.emitAll(events)

	return nil
}

// LiveWire returns the straight preview segment from the selection endpoint
// to p. Valid only while Selecting.
func (m *PointToPoint) LiveWire(p image.Point) (pixelgraph.Polyline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkPointLocked(p); err != nil {
		return nil, err
	}
	if m.state != Selecting {
		return nil, fmt.Errorf("%w: LiveWire while %s", ErrInvalidState, m.state)
	}

	return pixelgraph.Polyline{m.lastPointLocked(), p}, nil
}

// UndoPoint removes the most recently committed point; removing the start
// point resets the selection. Valid only while Selecting.
func (m *PointToPoint) UndoPoint() error {
	m.mu.Lock()
	if m.state != Selecting {
		st := m.state
		m.mu.Unlock()

		return fmt.Errorf("%w: UndoPoint while %s", ErrInvalidState, st)
	}

	var events []Event
	if len(m.segments) == 0 {
		events = m.clearLocked()
	} else {
		m.segments = m.segments[:len(m.segments)-1]
		events = append(events, SelectionChanged{})
	}
	m.mu.Unlock()
	m.emitAll(events)

	return nil
}

// MovePoint relocates the anchor starting segment index to p, replacing the
// segment and its predecessor (wrapping around) with straight lines. Moving
// anchor 0 also moves the start point. Valid only while Selected.
func (m *PointToPoint) MovePoint(index int, p image.Point) error {
	m.mu.Lock()
	if err := m.checkPointLocked(p); err != nil {
		m.mu.Unlock()

		return err
	}
	if m.state != Selected {
		st := m.state
		m.mu.Unlock()

		return fmt.Errorf("%w: MovePoint while %s", ErrInvalidState, st)
	}
	n := len(m.segments)
	if index < 0 || index >= n {
		m.mu.Unlock()

		return fmt.Errorf("%w: %d of %d", ErrBadPointIndex, index, n)
	}

	// 1) The segment starting at the moved anchor now runs p → its old end.
	m.segments[index] = pixelgraph.Polyline{p, m.segments[index].End()}

	// 2) The preceding segment (wrapping) now runs its old start → p.
	prev := (index - 1 + n) % n
	m.segments[prev] = pixelgraph.Polyline{m.segments[prev].Start(), p}

	// 3) Anchor 0 is the start point.
	if index == 0 {
		m.start = p
	}
	m.mu.Unlock()
	m.Emit(SelectionChanged{})

	return nil
}

// Finish closes the selection with the straight segment back to the start.
// A selection with no segments resets instead. Valid only while Selecting.
func (m *PointToPoint) Finish() error {
	m.mu.Lock()
	if m.state != Selecting {
		st := m.state
		m.mu.Unlock()

		return fmt.Errorf("%w: Finish while %s", ErrInvalidState, st)
	}

	var events []Event
	if len(m.segments) == 0 {
		events = m.clearLocked()
	} else {
		m.segments = append(m.segments, pixelgraph.Polyline{m.lastPointLocked(), m.start})
		m.state = Selected
		events = append(events, SelectionChanged{}, StateChanged{From: Selecting, To: Selected})
	}
	m.mu.Unlock()
	m.emitAll(events)

	return nil
}

// Cancel is never valid: the straight-line variant has no background
// processing to cancel.
func (m *PointToPoint) Cancel() error {
	m.mu.Lock()
	st := m.state
	m.mu.Unlock()

	return fmt.Errorf("%w: Cancel while %s", ErrInvalidState, st)
}

// Reset discards the whole selection from any state.
func (m *PointToPoint) Reset() {
	m.mu.Lock()
	events := m.clearLocked()
	m.mu.Unlock()
	m.emitAll(events)
}

// Selection returns a copy of the committed segments in order.
func (m *PointToPoint) Selection() []pixelgraph.Polyline {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]pixelgraph.Polyline, len(m.segments))
	copy(out, m.segments)

	return out
}

// Start returns the start point and whether one is committed.
func (m *PointToPoint) Start() (image.Point, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.start, m.hasStart
}

// lastPointLocked returns the selection's current endpoint: the end of the
// last segment, or the start point when no segment is committed.
func (m *PointToPoint) lastPointLocked() image.Point {
	if n := len(m.segments); n > 0 {
		return m.segments[n-1].End()
	}

	return m.start
}

// checkPointLocked validates that an image is bound and p lies inside it.
func (m *PointToPoint) checkPointLocked(p image.Point) error {
	if !m.hasImage {
		return ErrNoImage
	}
	if !p.In(m.bounds) {
		return fmt.Errorf("%w: (%d,%d)", pixelgraph.ErrOutOfBounds, p.X, p.Y)
	}

	return nil
}

// clearLocked wipes all selection data and returns the events describing the
// wipe, for emission after the lock is released.
func (m *PointToPoint) clearLocked() []Event {
	var events []Event
	if m.hasStart || len(m.segments) > 0 {
		events = append(events, SelectionChanged{})
	}
	if m.state != NoSelection {
		events = append(events, StateChanged{From: m.state, To: NoSelection})
	}
	m.state = NoSelection
	m.start = image.Point{}
	m.hasStart = false
	m.segments = nil

	return events
}

// emitAll delivers events in order; callers invoke it with the lock released.
func (m *PointToPoint) emitAll(events []Event) {
	for _, e := range events {
		m.Emit(e)
	}
}

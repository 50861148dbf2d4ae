package scissors

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/livewire/dijkstra"
	"github.com/katalvlaran/livewire/pixelgraph"
	"github.com/katalvlaran/livewire/selection"
)

// Model is the graph-search tracing variant: each committed point launches a
// background shortest-path search over the pixel graph, and segments snap to
// the cheapest routes the configured weigher finds.
//
// One mutex serializes every state transition and every selection-data
// access (the foreground control flow); worker goroutines hand results back
// through token-checked apply methods taking the same mutex, so at most one
// search ever mutates shared state and the foreground never blocks on the
// background.
type Model struct {
	selection.Notifier

	weigherName string
	cfg         Options
	log         *slog.Logger

	mu       sync.Mutex
	state    selection.State
	previous selection.State // rollback target while Processing
	graph    *pixelgraph.Graph
	weigh    pixelgraph.Weigher
	start    image.Point
	hasStart bool
	segments []pixelgraph.Polyline
	paths    *dijkstra.Snapshot // committed table of the last finished search
	pending  *dijkstra.Snapshot // latest slice snapshot while Processing
	token    string             // active generation token; empty when none
	cancel   context.CancelFunc // cancels the active worker's context
	move     *moveRequest       // deferred MovePoint application
}

// moveRequest remembers a MovePoint call until its search completes; the
// segment rewrite is applied only on success.
type moveRequest struct {
	index int
	point image.Point
}

var _ selection.Model = (*Model)(nil)

// NewModel constructs a scissors model tracing with the named weigher.
// Returns ErrUnknownWeigher for names with no registered factory.
func NewModel(weigherName string, opts ...Option) (*Model, error) {
	// 1) Build and apply options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) The weigher name must be resolvable before any image arrives.
	if !slices.Contains(pixelgraph.WeigherNames(), weigherName) {
		return nil, fmt.Errorf("%w: %q", pixelgraph.ErrUnknownWeigher, weigherName)
	}

	return &Model{
		weigherName: weigherName,
		cfg:         cfg,
		log:         cfg.Logger.With(slog.String("component", "scissors")),
		state:       selection.NoSelection,
	}, nil
}

// State returns the current lifecycle state.
func (m *Model) State() selection.State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Graph returns the pixel graph of the current image, nil when no image is
// bound. The graph is immutable and safe to share.
func (m *Model) Graph() *pixelgraph.Graph {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.graph
}

// SetImage resets the selection, then rebuilds the graph and the named
// weigher for the new raster. A nil image unbinds; point operations then
// fail with ErrNoImage.
func (m *Model) SetImage(img image.Image) error {
	m.Reset()

	m.mu.Lock()
	defer m.mu.Unlock()
	if img == nil {
		m.graph = nil
		m.weigh = nil

		return nil
	}

	g, err := pixelgraph.New(img, m.cfg.Pixel)
	if err != nil {
		return err
	}
	weigh, err := pixelgraph.NewWeigher(m.weigherName, g)
	if err != nil {
		return err
	}
	m.graph = g
	m.weigh = weigh
	m.log.Debug("image bound", slog.Int("width", g.Width()), slog.Int("height", g.Height()))

	return nil
}

// AddPoint commits p. From NoSelection it records the start point; from
// Selecting it appends the committed-table path from the previous endpoint
// to p. Either way a fresh background search from p is started and the model
// enters Processing.
// Returns ErrInvalidState while Processing or Selected, ErrNoImage,
// ErrOutOfBounds, or ErrNoPath when the committed table cannot reach p.
func (m *Model) AddPoint(p image.Point) error {
	m.mu.Lock()
	if m.graph == nil {
		m.mu.Unlock()

		return selection.ErrNoImage
	}
	id, err := m.graph.VertexIDAt(p)
	if err != nil {
		m.mu.Unlock()

		return err
	}

	var events []selection.Event
	var w *worker
	switch m.state {
	case selection.NoSelection:
		m.start = p
		m.hasStart = true
		w, events = m.startSearchLocked(id)
		events = append([]selection.Event{selection.SelectionChanged{}}, events...)
	case selection.Selecting:
		seg, serr := m.committedPathLocked(id)
		if serr != nil {
			m.mu.Unlock()

			return serr
		}
		m.segments = append(m.segments, seg)
		w, events = m.startSearchLocked(id)
		events = append([]selection.Event{selection.SelectionChanged{}}, events...)
	default:
		st := m.state
		m.mu.Unlock()

		return fmt.Errorf("%w: AddPoint while %s", selection.ErrInvalidState, st)
	}
	m.mu.Unlock()

	m.emitAll(events)
	go w.run()

	return nil
}

// LiveWire returns the preview path from the selection's endpoint to p,
// read from the committed table of the last finished search. Valid only
// while Selecting.
func (m *Model) LiveWire(p image.Point) (pixelgraph.Polyline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.graph == nil {
		return nil, selection.ErrNoImage
	}
	if m.state != selection.Selecting {
		return nil, fmt.Errorf("%w: LiveWire while %s", selection.ErrInvalidState, m.state)
	}
	id, err := m.graph.VertexIDAt(p)
	if err != nil {
		return nil, err
	}

	return m.committedPathLocked(id)
}

// UndoPoint removes the most recently committed point and restarts the
// search from the restored endpoint; undoing the start point resets the
// selection. Valid only while Selecting.
func (m *Model) UndoPoint() error {
	m.mu.Lock()
	if m.state != selection.Selecting {
		st := m.state
		m.mu.Unlock()

		return fmt.Errorf("%w: UndoPoint while %s", selection.ErrInvalidState, st)
	}

	if len(m.segments) == 0 {
		events := m.clearLocked()
		m.mu.Unlock()
		m.emitAll(events)

		return nil
	}

	// 1) Pop the last segment; the endpoint rolls back to the previous
	//    anchor, so the frontier must be recomputed from there.
	m.segments = m.segments[:len(m.segments)-1]
	endpoint := m.start
	if n := len(m.segments); n > 0 {
		endpoint = m.segments[n-1].End()
	}
	id, err := m.graph.VertexIDAt(endpoint)
	if err != nil {
		m.mu.Unlock()

		return err
	}
	w, events := m.startSearchLocked(id)
	events = append([]selection.Event{selection.SelectionChanged{}}, events...)
	m.mu.Unlock()

	m.emitAll(events)
	go w.run()

	return nil
}

// MovePoint relocates the anchor starting segment index to p. The search
// from p runs in the background; on success the two adjacent segments are
// rewritten, on cancellation or failure the selection is left untouched.
// Valid only while Selected.
func (m *Model) MovePoint(index int, p image.Point) error {
	m.mu.Lock()
	if m.graph == nil {
		m.mu.Unlock()

		return selection.ErrNoImage
	}
	if m.state != selection.Selected {
		st := m.state
		m.mu.Unlock()

		return fmt.Errorf("%w: MovePoint while %s", selection.ErrInvalidState, st)
	}
	if index < 0 || index >= len(m.segments) {
		m.mu.Unlock()

		return fmt.Errorf("%w: %d of %d", selection.ErrBadPointIndex, index, len(m.segments))
	}
	id, err := m.graph.VertexIDAt(p)
	if err != nil {
		m.mu.Unlock()

		return err
	}

	w, events := m.startSearchLocked(id)
	m.move = &moveRequest{index: index, point: p}
	m.mu.Unlock()

	m.emitAll(events)
	go w.run()

	return nil
}

// Finish closes the selection with the committed-table path back to the
// start point and enters Selected. A selection with no segments resets
// instead. Valid only while Selecting.
func (m *Model) Finish() error {
	m.mu.Lock()
	if m.state != selection.Selecting {
		st := m.state
		m.mu.Unlock()

		return fmt.Errorf("%w: Finish while %s", selection.ErrInvalidState, st)
	}

	if len(m.segments) == 0 {
		events := m.clearLocked()
		m.mu.Unlock()
		m.emitAll(events)

		return nil
	}

	startID, err := m.graph.VertexIDAt(m.start)
	if err != nil {
		m.mu.Unlock()

		return err
	}
	seg, err := m.committedPathLocked(startID)
	if err != nil {
		m.mu.Unlock()

		return err
	}
	m.segments = append(m.segments, seg)
	m.state = selection.Selected
	m.mu.Unlock()

	m.emitAll([]selection.Event{
		selection.SelectionChanged{},
		selection.StateChanged{From: selection.Selecting, To: selection.Selected},
	})

	return nil
}

// Cancel requests cancellation of the active search. The worker observes it
// at its next slice boundary; the state transition happens when the
// cancelled completion is processed. Valid only while Processing.
func (m *Model) Cancel() error {
	m.mu.Lock()
	if m.state != selection.Processing {
		st := m.state
		m.mu.Unlock()

		return fmt.Errorf("%w: Cancel while %s", selection.ErrInvalidState, st)
	}
	cancel := m.cancel
	m.mu.Unlock()

	cancel()

	return nil
}

// Reset discards the whole selection from any state. An active search is
// cancelled and its generation token invalidated, so any late result it
// still delivers is ignored.
func (m *Model) Reset() {
	m.mu.Lock()
	if m.state == selection.Processing && m.cancel != nil {
		m.cancel()
	}
	events := m.clearLocked()
	m.mu.Unlock()
	m.emitAll(events)
}

// Selection returns a copy of the committed segments in order.
func (m *Model) Selection() []pixelgraph.Polyline {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]pixelgraph.Polyline, len(m.segments))
	copy(out, m.segments)

	return out
}

// Start returns the start point and whether one is committed.
func (m *Model) Start() (image.Point, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.start, m.hasStart
}

// PendingPaths returns the latest partial snapshot of the active search, nil
// while no slice has completed yet. Valid only while Processing.
func (m *Model) PendingPaths() (*dijkstra.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != selection.Processing {
		return nil, fmt.Errorf("%w: PendingPaths while %s", selection.ErrInvalidState, m.state)
	}

	return m.pending, nil
}

// Progress returns the active search's completion percentage and an
// indeterminate hint that is set until the first slice lands. Outside
// Processing it reports zero determinate progress.
func (m *Model) Progress() (percent int, indeterminate bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != selection.Processing {
		return 0, false
	}
	if m.pending == nil {
		return 0, true
	}

	return m.pending.SettledCount() * 100 / m.pending.VertexCount(), false
}

// startSearchLocked records the rollback origin, enters Processing and
// prepares a worker tagged with a fresh generation token. The caller emits
// the returned events after unlocking, then launches the worker; an earlier
// worker is abandoned, not joined, and its late results fail the token
// check.
func (m *Model) startSearchLocked(sourceID int) (*worker, []selection.Event) {
	m.previous = m.state
	events := []selection.Event{
		selection.StateChanged{From: m.state, To: selection.Processing},
		selection.ProgressUpdated{Indeterminate: true},
	}
	m.state = selection.Processing
	m.pending = nil
	m.move = nil

	token := uuid.NewString()
	m.token = token
	ctx, cancel := context.WithCancel(m.cfg.Ctx)
	m.cancel = cancel

	pf, err := dijkstra.NewPathfinder(m.graph, m.weigh, sourceID)
	if err != nil {
		// Every caller validates the graph, weigher and source first.
		panic(err)
	}

	w := &worker{
		model:  m,
		token:  token,
		pf:     pf,
		ctx:    ctx,
		source: sourceID,
		budget: m.cfg.SliceBudget,
		log:    m.log.With(slog.String("search", token[:8])),
	}
	if m.cfg.ProgressInterval > 0 {
		w.throttle = &rate.Sometimes{First: 1, Interval: m.cfg.ProgressInterval}
	}
	m.log.Debug("search starting",
		slog.String("search", token[:8]),
		slog.Int("source", sourceID),
		slog.String("from", m.previous.String()))

	return w, events
}

// committedPathLocked maps the committed table's path from its source to id
// into a polyline. Returns ErrNoPath when no finished search covers id.
func (m *Model) committedPathLocked(id int) (pixelgraph.Polyline, error) {
	if m.paths == nil {
		return nil, selection.ErrNoPath
	}
	walk := m.paths.PathTo(id)
	if walk == nil {
		return nil, fmt.Errorf("%w: vertex %d", selection.ErrNoPath, id)
	}

	return m.graph.PathToPolyline(walk)
}

// clearLocked wipes all selection data, invalidates the generation token and
// returns the events describing the wipe, for emission after unlocking.
func (m *Model) clearLocked() []selection.Event {
	var events []selection.Event
	if m.hasStart || len(m.segments) > 0 {
		events = append(events, selection.SelectionChanged{})
	}
	if m.state != selection.NoSelection {
		events = append(events, selection.StateChanged{From: m.state, To: selection.NoSelection})
	}
	m.state = selection.NoSelection
	m.start = image.Point{}
	m.hasStart = false
	m.segments = nil
	m.paths = nil
	m.pending = nil
	m.token = ""
	m.cancel = nil
	m.move = nil

	return events
}

// emitAll delivers events in order; callers invoke it with the lock released.
func (m *Model) emitAll(events []selection.Event) {
	for _, e := range events {
		m.Emit(e)
	}
}

// ---------------------------------------------------------------------------
// Worker result application. Each apply method compares the worker's token
// against the active one before touching any state: a mismatch means the
// model moved on (new search, reset, new image) and the result is discarded
// silently. This check is what makes late results from abandoned searches
// harmless, so it is correctness, not an optimization.
// ---------------------------------------------------------------------------

// applyProgress records a slice snapshot as the pending view and reports
// progress, unless the token is stale.
func (m *Model) applyProgress(token string, snap *dijkstra.Snapshot) {
	m.mu.Lock()
	if token != m.token {
		m.mu.Unlock()

		return
	}
	m.pending = snap
	percent := snap.SettledCount() * 100 / snap.VertexCount()
	m.mu.Unlock()

	m.emitAll([]selection.Event{
		selection.ProgressUpdated{Percent: percent},
		selection.PendingPathsUpdated{Paths: snap},
	})
}

// applySuccess commits the final snapshot as the committed table and leaves
// Processing: to Selecting when the search began a selection, otherwise back
// to the rollback origin. A deferred MovePoint rewrite is applied here.
func (m *Model) applySuccess(token string, final *dijkstra.Snapshot) {
	m.mu.Lock()
	if token != m.token {
		m.mu.Unlock()

		return
	}
	m.paths = final
	m.pending = nil
	m.token = ""
	m.cancel = nil

	var events []selection.Event
	if mv := m.move; mv != nil {
		m.move = nil
		if m.applyMoveLocked(mv, final) {
			events = append(events, selection.SelectionChanged{})
		}
	}

	next := m.previous
	if next == selection.NoSelection {
		next = selection.Selecting
	}
	m.state = next
	events = append(events, selection.StateChanged{From: selection.Processing, To: next})
	m.mu.Unlock()

	m.emitAll(events)
}

// applyCancelled processes a cancelled completion: no table update, the
// most recent uncommitted point addition is rolled back, and the model
// returns to the rollback origin.
func (m *Model) applyCancelled(token string) {
	m.mu.Lock()
	if token != m.token {
		m.mu.Unlock()

		return
	}
	m.pending = nil
	m.token = ""
	m.cancel = nil
	m.move = nil

	var events []selection.Event
	next := m.previous
	switch m.previous {
	case selection.Selecting:
		// Undo the point whose search was cancelled.
		if len(m.segments) > 0 {
			m.segments = m.segments[:len(m.segments)-1]
		} else {
			m.hasStart = false
			m.start = image.Point{}
		}
		events = append(events, selection.SelectionChanged{})
	case selection.NoSelection:
		// The start point was never confirmed by a finished search.
		if m.hasStart {
			m.hasStart = false
			m.start = image.Point{}
			events = append(events, selection.SelectionChanged{})
		}
	case selection.Selected:
		// A cancelled move leaves every segment untouched.
	}
	if !m.hasStart {
		next = selection.NoSelection
		m.paths = nil
	}
	m.state = next
	events = append(events, selection.StateChanged{From: selection.Processing, To: next})
	m.mu.Unlock()

	m.emitAll(events)
}

// applyFailure surfaces an unexpected solver fault and restores the rollback
// origin so the model is never left wedged in Processing.
func (m *Model) applyFailure(token string, err error) {
	m.mu.Lock()
	if token != m.token {
		m.mu.Unlock()

		return
	}
	m.pending = nil
	m.token = ""
	m.cancel = nil
	m.move = nil

	var events []selection.Event
	next := m.previous
	if next == selection.NoSelection && m.hasStart {
		// The failed search was the one meant to confirm the start point.
		m.hasStart = false
		m.start = image.Point{}
		events = append(events, selection.SelectionChanged{})
	}
	if !m.hasStart {
		next = selection.NoSelection
	}
	m.state = next
	events = append(events,
		selection.SearchFailed{Err: err},
		selection.StateChanged{From: selection.Processing, To: next})
	m.mu.Unlock()

	m.emitAll(events)
}

// applyMoveLocked rewrites the two segments adjacent to the moved anchor
// from the finished search: the segment starting at the anchor becomes the
// path to its successor, the preceding one (wrapping) the reversed path to
// its predecessor. Reports whether the selection changed.
func (m *Model) applyMoveLocked(mv *moveRequest, final *dijkstra.Snapshot) bool {
	n := len(m.segments)
	if n == 0 || mv.index < 0 || mv.index >= n {
		return false
	}

	// 1) Path from the moved anchor to the successor anchor.
	nextEndID, err := m.graph.VertexIDAt(m.segments[mv.index].End())
	if err != nil {
		return false
	}
	after, err := m.graph.PathToPolyline(final.PathTo(nextEndID))
	if err != nil || len(after) == 0 {
		return false
	}

	// 2) Reversed path from the moved anchor to the predecessor anchor.
	prevIdx := (mv.index - 1 + n) % n
	prevStartID, err := m.graph.VertexIDAt(m.segments[prevIdx].Start())
	if err != nil {
		return false
	}
	before, err := m.graph.PathToPolyline(final.PathTo(prevStartID))
	if err != nil || len(before) == 0 {
		return false
	}

	m.segments[mv.index] = after
	m.segments[prevIdx] = before.Reversed()
	if mv.index == 0 {
		m.start = mv.point
	}

	return true
}

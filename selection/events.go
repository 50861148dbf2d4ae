package selection

import (
	"sync"

	"github.com/katalvlaran/livewire/dijkstra"
)

// Event is a typed notification from a selection model. The concrete types
// are StateChanged, SelectionChanged, ProgressUpdated, PendingPathsUpdated
// and SearchFailed.
type Event interface {
	event()
}

// StateChanged reports a state-machine transition.
type StateChanged struct {
	From State
	To   State
}

// SelectionChanged reports that the committed segments or the start point
// changed.
type SelectionChanged struct{}

// ProgressUpdated reports background-search progress for display. Percent is
// in [0, 100]; Indeterminate is set while no slice has completed yet, hinting
// that the percentage is meaningless so far.
type ProgressUpdated struct {
	Percent       int
	Indeterminate bool
}

// PendingPathsUpdated carries the latest partial search snapshot while a
// model is Processing, for live preview of the expanding search.
type PendingPathsUpdated struct {
	Paths *dijkstra.Snapshot
}

// SearchFailed reports an unexpected background-solver fault. The operation
// that started the search is over; the model has already returned to a
// consistent state.
type SearchFailed struct {
	Err error
}

func (StateChanged) event()        {}
func (SelectionChanged) event()    {}
func (ProgressUpdated) event()     {}
func (PendingPathsUpdated) event() {}
func (SearchFailed) event()        {}

// Listener receives model events. Listeners run on the goroutine that caused
// the event, after the model has released its lock; they may call back into
// the model but must not block for long.
type Listener func(Event)

// Notifier is the listener registry embedded by selection models. The zero
// value is ready to use.
type Notifier struct {
	mu        sync.RWMutex
	listeners []Listener
}

// AddListener registers l for all future events. Nil listeners are ignored.
func (n *Notifier) AddListener(l Listener) {
	if l == nil {
		return
	}
	n.mu.Lock()
	n.listeners = append(n.listeners, l)
	n.mu.Unlock()
}

// Emit delivers e to every registered listener, in registration order.
func (n *Notifier) Emit(e Event) {
	n.mu.RLock()
	listeners := n.listeners
	n.mu.RUnlock()

	for _, l := range listeners {
		l(e)
	}
}

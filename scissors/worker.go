package scissors

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/livewire/dijkstra"
)

// worker drives one background search to completion. It exclusively owns its
// Pathfinder; the only way it touches the model is through the token-checked
// apply methods, handing over immutable snapshots.
//
// Cancellation is cooperative: the context is checked once per slice
// boundary, so cancellation latency is bounded by one slice's work, never by
// the total search size. A completion delivery (success, cancelled or
// failure) is always the worker's last, so per-generation notification order
// is the slice computation order with completion at the end.
type worker struct {
	model    *Model
	token    string
	pf       *dijkstra.Pathfinder
	ctx      context.Context
	source   int
	budget   int
	throttle *rate.Sometimes // nil reports every slice
	log      *slog.Logger
}

// run executes the slice loop. It must run on its own goroutine.
func (w *worker) run() {
	// A panicking weigher must not kill the process; it is a solver failure
	// like any other.
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("search panicked", slog.Any("panic", r))
			w.model.applyFailure(w.token, fmt.Errorf("scissors: search panicked: %v", r))
		}
	}()

	w.log.Debug("search running", slog.Int("vertices", w.pf.VertexCount()))
	for !w.pf.AllPathsFound() {
		// 1) Observe cancellation at the slice boundary.
		select {
		case <-w.ctx.Done():
			w.log.Debug("search cancelled", slog.Int("settled", w.pf.SettledCount()))
			w.model.applyCancelled(w.token)

			return
		default:
		}

		// 2) One bounded slice of work.
		snap, err := w.pf.ExtendSearch(w.budget)
		if err != nil {
			w.log.Error("search failed", slog.String("error", err.Error()))
			w.model.applyFailure(w.token, err)

			return
		}

		// 3) Publish the slice snapshot as progress.
		w.publish(snap)
	}

	// 4) Frontier exhausted: deliver the complete result.
	final, err := w.pf.FindAllPaths(w.source)
	if err != nil {
		w.model.applyFailure(w.token, err)

		return
	}
	w.log.Debug("search finished", slog.Int("settled", final.SettledCount()))
	w.model.applySuccess(w.token, final)
}

// publish hands a slice snapshot to the model, throttled when a progress
// interval is configured.
func (w *worker) publish(snap *dijkstra.Snapshot) {
	if w.throttle == nil {
		w.model.applyProgress(w.token, snap)

		return
	}
	w.throttle.Do(func() {
		w.model.applyProgress(w.token, snap)
	})
}

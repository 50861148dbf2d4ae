// Package minqueue defines the options and sentinel errors for the
// indexed min-priority queue of github.com/katalvlaran/livewire.
package minqueue

import "errors"

// Sentinel errors for minqueue operations.
var (
	// ErrEmptyQueue indicates Min, MinPriority or Remove was called on an empty queue.
	ErrEmptyQueue = errors.New("minqueue: queue is empty")
	// ErrBadCapacity indicates a negative capacity was passed to WithCapacity.
	ErrBadCapacity = errors.New("minqueue: capacity must be non-negative")
)

// Options contains tunable parameters for queue construction.
type Options struct {
	// Capacity preallocates internal storage for the expected number of keys.
	// Zero means no preallocation.
	Capacity int
}

// DefaultOptions returns an Options with default settings: Capacity=0.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}

// Option adjusts Options in the functional-options style.
type Option func(*Options)

// WithCapacity preallocates storage for n keys.
// Panics with ErrBadCapacity if n is negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(ErrBadCapacity)
	}

	return func(o *Options) {
		o.Capacity = n
	}
}

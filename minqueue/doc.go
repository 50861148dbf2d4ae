// Package minqueue provides an indexed binary min-priority queue over
// (key, priority) pairs with true decrease-key support.
//
// Overview:
//
//   - Queue keeps a dense binary heap plus a key→position index maintained
//     on every swap, so any queued key is located in O(1) and repositioned
//     in O(log n).
//   - AddOrUpdate inserts absent keys and reprioritizes present ones, in
//     either direction; at most one entry per key ever exists.
//   - Remove extracts a minimum-priority key; ties are broken arbitrarily.
//
// When to use:
//
//   - As the frontier of Dijkstra-style searches where tentative distances
//     shrink repeatedly and duplicate heap entries are unacceptable.
//   - Anywhere a mutable priority schedule over integer keys is needed with
//     O(1) containment and priority lookup.
//
// Performance and complexity:
//
//   - Time:  AddOrUpdate, Remove O(log n); Len, IsEmpty, Min, MinPriority,
//     Contains, Priority O(1); Clear O(n).
//   - Space: O(n) for the heap slice and the position index.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyQueue:
//     Returned by Min, MinPriority and Remove when no keys are queued.
//   - ErrBadCapacity:
//     Returned (via panic) if WithCapacity is given a negative value.
//
// Concurrency:
//
//   - Queue is not safe for concurrent use. Every instance is owned by
//     exactly one caller; searches in this module never share a queue.
package minqueue

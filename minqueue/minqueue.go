package minqueue

import "fmt"

// Queue is an indexed binary min-heap over (key, priority) pairs.
//
// The heap itself lives in a dense slice; a side table maps every queued key
// to its current slice position and is kept in lock-step on each swap, so an
// arbitrary key can be located in O(1) before rebalancing. This is what makes
// AddOrUpdate a true decrease-key (or increase-key) in O(log n) instead of
// the lazy duplicate-push strategy: at most one entry per key ever exists.
//
// Queue is not safe for concurrent use; callers own their instance.
type Queue struct {
	heap  []entry     // dense binary heap, heap[0] is the minimum
	index map[int]int // key → position in heap; len(index) == len(heap) always
}

// entry is one (key, priority) pair stored in the heap slice.
type entry struct {
	key      int
	priority int64
}

// New constructs an empty Queue, honoring any provided options.
func New(opts ...Option) *Queue {
	// 1) Build and apply options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Allocate storage up front when a capacity hint was given.
	return &Queue{
		heap:  make([]entry, 0, cfg.Capacity),
		index: make(map[int]int, cfg.Capacity),
	}
}

// Len returns the number of queued keys. O(1).
func (q *Queue) Len() int { return len(q.heap) }

// IsEmpty reports whether no keys are queued. O(1).
func (q *Queue) IsEmpty() bool { return len(q.heap) == 0 }

// Contains reports whether key is currently queued. O(1).
func (q *Queue) Contains(key int) bool {
	_, ok := q.index[key]

	return ok
}

// Priority returns the current priority of key and whether key is queued. O(1).
func (q *Queue) Priority(key int) (int64, bool) {
	pos, ok := q.index[key]
	if !ok {
		return 0, false
	}

	return q.heap[pos].priority, true
}

// Min returns a key with the smallest priority without removing it.
// Returns ErrEmptyQueue if the queue is empty. O(1).
func (q *Queue) Min() (int, error) {
	if len(q.heap) == 0 {
		return 0, ErrEmptyQueue
	}

	return q.heap[0].key, nil
}

// MinPriority returns the smallest queued priority without removing its key.
// Returns ErrEmptyQueue if the queue is empty. O(1).
func (q *Queue) MinPriority() (int64, error) {
	if len(q.heap) == 0 {
		return 0, ErrEmptyQueue
	}

	return q.heap[0].priority, nil
}

// AddOrUpdate inserts key with the given priority, or, if key is already
// queued, moves it to the new priority (raising or lowering it). Duplicate
// keys never coexist. O(log n).
func (q *Queue) AddOrUpdate(key int, priority int64) {
	if pos, ok := q.index[key]; ok {
		q.update(pos, priority)

		return
	}
	q.add(key, priority)
}

// Remove extracts and returns a key with the minimum priority. When several
// keys tie for the minimum, the choice among them is unspecified.
// Returns ErrEmptyQueue if the queue is empty. O(log n).
func (q *Queue) Remove() (int, error) {
	if len(q.heap) == 0 {
		return 0, ErrEmptyQueue
	}

	// 1) Remember the root, then move the last element into its place.
	min := q.heap[0].key
	last := len(q.heap) - 1
	q.swap(0, last)

	// 2) Shrink the heap and drop the extracted key from the index.
	q.heap = q.heap[:last]
	delete(q.index, min)

	// 3) Restore heap order from the root down.
	if last > 0 {
		q.siftDown(0)
	}

	return min, nil
}

// Clear empties the queue, retaining allocated storage. O(n).
func (q *Queue) Clear() {
	q.heap = q.heap[:0]
	clear(q.index)
}

// add appends a fresh key and sifts it up to its position.
func (q *Queue) add(key int, priority int64) {
	q.heap = append(q.heap, entry{key: key, priority: priority})
	q.index[key] = len(q.heap) - 1
	q.siftUp(len(q.heap) - 1)
}

// update rewrites the priority at position pos and repositions the entry.
// The direction is decided once, from the parent comparison alone: a priority
// smaller than the parent's can only need to travel up, anything else can
// only need to travel down. Never both.
func (q *Queue) update(pos int, priority int64) {
	q.heap[pos].priority = priority
	if pos > 0 && priority < q.heap[parent(pos)].priority {
		q.siftUp(pos)

		return
	}
	q.siftDown(pos)
}

// siftUp moves the entry at i toward the root until its parent is no larger.
func (q *Queue) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if q.heap[i].priority >= q.heap[p].priority {
			break
		}
		q.swap(i, p)
		i = p
	}
}

// siftDown moves the entry at i toward the leaves, always descending into
// the smaller child, until both children are no smaller.
func (q *Queue) siftDown(i int) {
	n := len(q.heap)
	for {
		l := left(i)
		if l >= n {
			break
		}
		smallest := l
		if r := l + 1; r < n && q.heap[r].priority < q.heap[l].priority {
			smallest = r
		}
		if q.heap[i].priority <= q.heap[smallest].priority {
			break
		}
		q.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges the heap entries at i and j and updates the index table in
// lock-step, preserving the index-consistency invariant.
func (q *Queue) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.index[q.heap[i].key] = i
	q.index[q.heap[j].key] = j
}

// parent returns the heap position of the parent of i.
func parent(i int) int { return (i - 1) / 2 }

// left returns the heap position of the left child of i.
func left(i int) int { return 2*i + 1 }

// checkInvariants verifies the heap-order invariant and the index-table
// consistency invariant. It exists for test builds; production paths never
// call it.
func (q *Queue) checkInvariants() error {
	// 1) Index and heap must describe the same key set.
	if len(q.index) != len(q.heap) {
		return fmt.Errorf("minqueue: index size %d != heap size %d", len(q.index), len(q.heap))
	}

	// 2) Every non-root entry must be no smaller than its parent.
	for i := 1; i < len(q.heap); i++ {
		if q.heap[parent(i)].priority > q.heap[i].priority {
			return fmt.Errorf("minqueue: heap order violated at %d: parent %d > child %d",
				i, q.heap[parent(i)].priority, q.heap[i].priority)
		}
	}

	// 3) Every indexed key must point at the entry that holds it.
	for key, pos := range q.index {
		if pos < 0 || pos >= len(q.heap) || q.heap[pos].key != key {
			return fmt.Errorf("minqueue: index for key %d points at %d, heap disagrees", key, pos)
		}
	}

	return nil
}

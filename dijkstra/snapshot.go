package dijkstra

// Snapshot is an immutable capture of an incremental search at one instant:
// the settled set, the frontier's tentative distances, and the predecessor
// links sufficient to reconstruct a path from the source to any settled
// vertex.
//
// Two snapshots taken from the same run are monotonic: the later one's
// settled set is a superset of the earlier one's, and a vertex settled in
// both records the same distance in both.
type Snapshot struct {
	source  int
	settled int
	dist    []int64
	prev    []int32
	state   []uint8
}

// Source returns the source vertex of the search this snapshot came from.
func (s *Snapshot) Source() int { return s.source }

// SettledCount returns the number of settled vertices at capture time.
func (s *Snapshot) SettledCount() int { return s.settled }

// VertexCount returns the number of vertices in the searched graph.
func (s *Snapshot) VertexCount() int { return len(s.state) }

// Settled reports whether id's shortest distance was finalized at capture
// time. Out-of-range ids report false.
func (s *Snapshot) Settled(id int) bool {
	return id >= 0 && id < len(s.state) && s.state[id] == stateSettled
}

// DistanceTo returns the distance recorded for id and whether one is known.
// Settled vertices report their final distance, frontier vertices their
// tentative one; use Settled to tell the two apart.
func (s *Snapshot) DistanceTo(id int) (int64, bool) {
	if id < 0 || id >= len(s.state) || s.state[id] == stateUnvisited {
		return 0, false
	}

	return s.dist[id], true
}

// PathTo returns the source→id vertex walk along predecessor links, or nil
// while id was not settled at capture time.
func (s *Snapshot) PathTo(id int) []int {
	return pathTo(s.state, s.prev, id)
}

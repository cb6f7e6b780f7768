package dijkstra

// Relaxation is the outcome of offering a node a new candidate cost.
type Relaxation int

const (
	// Unchanged: the candidate is worse than the recorded cost.
	Unchanged Relaxation = iota
	// Improved: the candidate beats the recorded cost; the predecessor set is replaced.
	Improved
	// Tied: the candidate matches the recorded cost; the predecessor is appended.
	Tied
)

// String returns the outcome's name.
func (r Relaxation) String() string {
	switch r {
	case Improved:
		return "improved"
	case Tied:
		return "tied"
	default:
		return "unchanged"
	}
}

// search holds the mutable state of one Dijkstra run over nodes of type N.
// costs only ever decrease, and a settled node's cost never changes again.
type search[N comparable] struct {
	costs    map[N]int
	prev     map[N][]N
	settled  map[N]bool
	frontier frontier[N]
	expanded int
}

func newSearch[N comparable](kind Frontier) *search[N] {
	return &search[N]{
		costs:    make(map[N]int),
		prev:     make(map[N][]N),
		settled:  make(map[N]bool),
		frontier: newFrontier[N](kind),
	}
}

// seed registers n as a source with cost 0.
func (s *search[N]) seed(n N) {
	s.costs[n] = 0
	s.frontier.push(n, 0)
}

// next pops the cheapest unsettled node and settles it.
// Stale heap entries for already-settled nodes are discarded.
func (s *search[N]) next() (N, int, bool) {
	for {
		n, cost, ok := s.frontier.pop()
		if !ok {
			return n, 0, false
		}
		if s.settled[n] {
			continue
		}
		s.settled[n] = true
		s.expanded++
		return n, cost, true
	}
}

// relax offers to the candidate cost reached from from.
func (s *search[N]) relax(from, to N, cost int) Relaxation {
	old, seen := s.costs[to]
	switch {
	case !seen || cost < old:
		s.costs[to] = cost
		s.prev[to] = []N{from}
		s.frontier.push(to, cost)
		return Improved
	case cost == old:
		s.prev[to] = append(s.prev[to], from)
		return Tied
	default:
		return Unchanged
	}
}

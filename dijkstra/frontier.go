package dijkstra

import "container/heap"

// frontier holds pending nodes keyed by tentative cost. Equal costs pop in
// insertion order, so both implementations settle nodes identically.
type frontier[N comparable] interface {
	push(n N, cost int)
	pop() (n N, cost int, ok bool)
}

func newFrontier[N comparable](kind Frontier) frontier[N] {
	if kind == FrontierLinear {
		return &linearFrontier[N]{}
	}
	return &heapFrontier[N]{}
}

type entry[N comparable] struct {
	node N
	cost int
	seq  int
}

// linearFrontier keeps one entry per node and scans for the minimum.
type linearFrontier[N comparable] struct {
	entries []entry[N]
	seq     int
}

func (f *linearFrontier[N]) push(n N, cost int) {
	f.seq++
	for i := range f.entries {
		if f.entries[i].node == n {
			f.entries[i].cost, f.entries[i].seq = cost, f.seq
			return
		}
	}
	f.entries = append(f.entries, entry[N]{node: n, cost: cost, seq: f.seq})
}

func (f *linearFrontier[N]) pop() (N, int, bool) {
	if len(f.entries) == 0 {
		var zero N
		return zero, 0, false
	}
	best := 0
	for i, e := range f.entries[1:] {
		if less(e, f.entries[best]) {
			best = i + 1
		}
	}
	e := f.entries[best]
	f.entries = append(f.entries[:best], f.entries[best+1:]...)
	return e.node, e.cost, true
}

// heapFrontier is a min-heap with lazy decrease-key: improved nodes are pushed
// again and stale entries are skipped by the search once the node is settled.
type heapFrontier[N comparable] struct {
	items entryHeap[N]
	seq   int
}

func (f *heapFrontier[N]) push(n N, cost int) {
	f.seq++
	heap.Push(&f.items, entry[N]{node: n, cost: cost, seq: f.seq})
}

func (f *heapFrontier[N]) pop() (N, int, bool) {
	if f.items.Len() == 0 {
		var zero N
		return zero, 0, false
	}
	e := heap.Pop(&f.items).(entry[N])
	return e.node, e.cost, true
}

// entryHeap implements heap.Interface.
type entryHeap[N comparable] []entry[N]

func (h entryHeap[N]) Len() int           { return len(h) }
func (h entryHeap[N]) Less(i, j int) bool { return less(h[i], h[j]) }
func (h entryHeap[N]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[N]) Push(x interface{}) {
	*h = append(*h, x.(entry[N]))
}

func (h *entryHeap[N]) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

func less[N comparable](a, b entry[N]) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.seq < b.seq
}

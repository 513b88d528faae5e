package pathfinder

import "container/heap"

// Frontier hands out the cheapest unfinished cell of the current query.
// Offer may insert the same index more than once as its recorded cost
// improves; stale entries are harmless because the search re-reads the
// cell's current cost after every TakeMin. Reset prepares the frontier
// for the next query without releasing backing storage.
type Frontier interface {
	Offer(cost, index uint32)
	TakeMin() (index uint32, ok bool)
	Reset()
}

// HeapFrontier is the comparison-based strategy: a binary heap ordered by
// cost, ties broken by insertion sequence so exploration order is
// deterministic. Works for any edge weights.
type HeapFrontier struct {
	items frontierHeap
	seq   uint64
}

// NewHeapFrontier returns an empty comparison-based frontier.
func NewHeapFrontier() *HeapFrontier {
	return &HeapFrontier{}
}

func (f *HeapFrontier) Offer(cost, index uint32) {
	heap.Push(&f.items, frontierItem{cost: cost, seq: f.seq, index: index})
	f.seq++
}

func (f *HeapFrontier) TakeMin() (uint32, bool) {
	if len(f.items) == 0 {
		return 0, false
	}
	item := heap.Pop(&f.items).(frontierItem)
	return item.index, true
}

func (f *HeapFrontier) Reset() {
	f.items = f.items[:0]
	f.seq = 0
}

type frontierItem struct {
	cost  uint32
	seq   uint64
	index uint32
}

// frontierHeap implements container/heap (min-heap by cost, then seq).
type frontierHeap []frontierItem

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].seq < h[j].seq
}
func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *frontierHeap) Push(x any)   { *h = append(*h, x.(frontierItem)) }
func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

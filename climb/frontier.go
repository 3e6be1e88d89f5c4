package climb

import "container/heap"

// frontier yields padded cell indices in non-decreasing distance order.
// Entries may be stale; the runner skips indices already settled.
type frontier interface {
	push(idx, dist int)
	pop() (idx int, ok bool)
}

func newFrontier(s Strategy, dist []int, visited []bool) frontier {
	switch s {
	case StrategyQueue:
		return &queueFrontier{}
	case StrategyScan:
		return &scanFrontier{dist: dist, visited: visited}
	default:
		pq := make(nodePQ, 0, 64)
		heap.Init(&pq)
		return &heapFrontier{pq: pq}
	}
}

//----------------------------------------------------------------------------//
// Binary heap
//----------------------------------------------------------------------------//

// nodeItem pairs a padded index with the distance it was pushed at.
type nodeItem struct {
	idx  int
	dist int
}

// nodePQ is a min-heap of nodeItem ordered by dist. Decrease-key is lazy:
// an improved cell is pushed again and the outdated entry is skipped on pop.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

type heapFrontier struct {
	pq nodePQ
}

func (f *heapFrontier) push(idx, dist int) {
	heap.Push(&f.pq, nodeItem{idx: idx, dist: dist})
}

func (f *heapFrontier) pop() (int, bool) {
	if f.pq.Len() == 0 {
		return 0, false
	}
	return heap.Pop(&f.pq).(nodeItem).idx, true
}

//----------------------------------------------------------------------------//
// FIFO queue
//----------------------------------------------------------------------------//

// queueFrontier is a plain FIFO. With unit weights, cells leave it in
// non-decreasing distance order.
type queueFrontier struct {
	items []int
	head  int
}

func (f *queueFrontier) push(idx, _ int) {
	f.items = append(f.items, idx)
}

func (f *queueFrontier) pop() (int, bool) {
	if f.head == len(f.items) {
		return 0, false
	}
	idx := f.items[f.head]
	f.head++
	return idx, true
}

//----------------------------------------------------------------------------//
// Full scan
//----------------------------------------------------------------------------//

// scanFrontier ignores pushes and picks the closest unsettled cell by
// scanning every distance on each pop.
type scanFrontier struct {
	dist    []int
	visited []bool
}

func (f *scanFrontier) push(int, int) {}

func (f *scanFrontier) pop() (int, bool) {
	best, bestDist := -1, Unreachable
	for i, d := range f.dist {
		if !f.visited[i] && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

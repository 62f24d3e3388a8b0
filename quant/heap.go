package quant

import "container/heap"

// boxQueue is a max-heap of vboxes ordered by an extractor key that can be
// swapped mid-run and re-established with heap.Init, modeling the
// two-phase split scheme median_cut.rs implements with its
// PopulationExtractor, then PopulationVolumeExtractor.
type boxQueue struct {
	boxes []*vbox
	key   func(*vbox) uint64
}

func (q boxQueue) Len() int { return len(q.boxes) }

func (q boxQueue) Less(i, j int) bool {
	// container/heap is a min-heap; inverting the comparison gives us a
	// max-heap without a wrapper type.
	return q.key(q.boxes[i]) > q.key(q.boxes[j])
}

func (q boxQueue) Swap(i, j int) { q.boxes[i], q.boxes[j] = q.boxes[j], q.boxes[i] }

func (q *boxQueue) Push(x any) { q.boxes = append(q.boxes, x.(*vbox)) }

func (q *boxQueue) Pop() any {
	old := q.boxes
	n := len(old)
	item := old[n-1]
	q.boxes = old[:n-1]
	return item
}

func heapify(q *boxQueue) { heap.Init(q) }

func populationKey(b *vbox) uint64 { return uint64(b.population) }

func populationVolumeKey(b *vbox) uint64 { return uint64(b.population) * uint64(b.volume()) }

// splitBoxes repeatedly pops the highest-priority box, splits it, and
// pushes the resulting one or two boxes back, until the queue reaches
// target entries or a pop yields a box that cannot be split further.
func splitBoxes(q *boxQueue, h *histogram, target int) {
	for q.Len() < target {
		b := heap.Pop(q).(*vbox)
		left, right := b.split(h)
		heap.Push(q, left)
		if right == nil {
			break
		}
		heap.Push(q, right)
	}
}

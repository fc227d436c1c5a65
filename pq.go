package gridpath

import (
	"slices"

	"github.com/zyedidia/generic/heap"
)

type PriorityQueueItem struct {
	Node     Coord
	Priority int
}

func lessItem(a, b PriorityQueueItem) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Node.Less(b.Node)
}

// PriorityQueue is a min-queue of nodes. Equal priorities pop in Coord order.
// A node may be queued any number of times.
type PriorityQueue struct {
	items  *heap.Heap[PriorityQueueItem]
	queued map[Coord]int
}

func NewPriorityQueue() *PriorityQueue {
	return &PriorityQueue{
		items:  heap.New(lessItem),
		queued: make(map[Coord]int),
	}
}

func (queue *PriorityQueue) Put(node Coord, priority int) {
	queue.items.Push(PriorityQueueItem{Node: node, Priority: priority})
	queue.queued[node]++
}

// Get removes and returns the node with the smallest priority.
// It panics on an empty queue.
func (queue *PriorityQueue) Get() Coord {
	item, ok := queue.items.Pop()
	if !ok {
		panic("gridpath: Get on empty PriorityQueue")
	}
	if queue.queued[item.Node]--; queue.queued[item.Node] == 0 {
		delete(queue.queued, item.Node)
	}
	return item.Node
}

func (queue *PriorityQueue) Empty() bool { return queue.items.Size() == 0 }
func (queue *PriorityQueue) Len() int    { return queue.items.Size() }

// Nodes returns the distinct queued nodes sorted by Coord order.
func (queue *PriorityQueue) Nodes() []Coord {
	nodes := make([]Coord, 0, len(queue.queued))
	for node := range queue.queued {
		nodes = append(nodes, node)
	}
	slices.SortFunc(nodes, Coord.Compare)
	return nodes
}

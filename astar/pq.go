package astar

type PriorityQueueItem[NodeType comparable] struct {
	Node         NodeType
	GScore       float64
	FCost        float64
	IndexInQueue int
}

type PriorityQueue[NodeType comparable] []*PriorityQueueItem[NodeType]

func (queue PriorityQueue[NodeType]) Len() int { return len(queue) }

func (queue PriorityQueue[NodeType]) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	// On equal FCost prefer the item with the higher GScore: it is deeper
	// into the search and closer to the goal.
	return queue[i].GScore > queue[j].GScore
}

func (queue PriorityQueue[NodeType]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue[NodeType]) Push(x any) {
	item := x.(*PriorityQueueItem[NodeType])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue[NodeType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

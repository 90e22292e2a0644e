package astar

import (
	"container/heap"
	"context"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	Open      map[NodeType]bool
	Closed    map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	Done      bool
	Found     bool
	Path      []NodeType
	StepIndex int
}

// Stepper runs the same search as Search one node expansion at a time
type Stepper[NodeType comparable] struct {
	ctx       context.Context
	cancel    context.CancelFunc
	graph     Graph[NodeType]
	start     NodeType
	goal      NodeType
	heuristic Heuristic[NodeType]

	openSet    PriorityQueue[NodeType]
	openSetMap map[NodeType]*PriorityQueueItem[NodeType]
	closedSet  map[NodeType]bool
	cameFrom   map[NodeType]NodeType
	gScore     map[NodeType]float64

	stepCount int
	done      bool
	found     bool
}

// NewStepper creates a new stepper using the same expansion logic as Search
func NewStepper[NodeType comparable](
	parent context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
) *Stepper[NodeType] {
	ctx, cancel := context.WithCancel(parent)
	s := &Stepper[NodeType]{
		ctx: ctx, cancel: cancel,
		graph: graph, start: startNode, goal: goalNode, heuristic: heuristic,
		openSet:    make(PriorityQueue[NodeType], 0),
		openSetMap: make(map[NodeType]*PriorityQueueItem[NodeType]),
		closedSet:  make(map[NodeType]bool),
		cameFrom:   make(map[NodeType]NodeType),
		gScore:     map[NodeType]float64{startNode: 0},
	}

	heap.Init(&s.openSet)
	startItem := &PriorityQueueItem[NodeType]{Node: startNode, GScore: 0, FCost: heuristic(startNode, goalNode)}
	heap.Push(&s.openSet, startItem)
	s.openSetMap[startNode] = startItem

	return s
}

// Close releases the stepper's context
func (s *Stepper[NodeType]) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Step advances the search by one node expansion and returns a snapshot
func (s *Stepper[NodeType]) Step() (StepSnapshot[NodeType], error) {
	if err := s.ctx.Err(); err != nil {
		s.done = true
		return StepSnapshot[NodeType]{Done: true, Found: false, StepIndex: s.stepCount}, err
	}
	if s.done {
		return s.snapshot(s.goal, nil), nil
	}
	if s.openSet.Len() == 0 {
		s.done = true
		return s.snapshot(s.goal, nil), nil
	}

	s.stepCount++
	currentItem := heap.Pop(&s.openSet).(*PriorityQueueItem[NodeType])
	current := currentItem.Node
	delete(s.openSetMap, current)
	if s.closedSet[current] {
		return s.Step()
	}
	s.closedSet[current] = true

	if current == s.goal {
		s.done = true
		s.found = true
		return s.snapshot(current, reconstructPath(s.cameFrom, current, s.start)), nil
	}

	for _, neighbor := range s.graph.Neighbors(current) {
		if s.closedSet[neighbor.ID] {
			continue
		}
		tentativeG := currentItem.GScore + neighbor.Cost
		if gPrev, ok := s.gScore[neighbor.ID]; ok && tentativeG >= gPrev {
			continue
		}
		s.gScore[neighbor.ID] = tentativeG
		s.cameFrom[neighbor.ID] = current
		f := tentativeG + s.heuristic(neighbor.ID, s.goal)
		if item, ok := s.openSetMap[neighbor.ID]; !ok {
			item = &PriorityQueueItem[NodeType]{Node: neighbor.ID, GScore: tentativeG, FCost: f}
			heap.Push(&s.openSet, item)
			s.openSetMap[neighbor.ID] = item
		} else if f < item.FCost {
			item.GScore = tentativeG
			item.FCost = f
			heap.Fix(&s.openSet, item.IndexInQueue)
		}
	}

	return s.snapshot(current, nil), nil
}

func (s *Stepper[NodeType]) snapshot(current NodeType, path []NodeType) StepSnapshot[NodeType] {
	return StepSnapshot[NodeType]{
		Current:   current,
		Open:      copyBoolMap(s.openSetToBoolMap()),
		Closed:    copyBoolMap(s.closedSet),
		CameFrom:  copyCameFrom(s.cameFrom),
		Done:      s.done,
		Found:     s.found,
		Path:      path,
		StepIndex: s.stepCount,
	}
}

func (s *Stepper[NodeType]) openSetToBoolMap() map[NodeType]bool {
	m := make(map[NodeType]bool, len(s.openSetMap))
	for k := range s.openSetMap {
		m[k] = true
	}
	return m
}

func copyBoolMap[T comparable](m map[T]bool) map[T]bool {
	if m == nil {
		return nil
	}
	c := make(map[T]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func copyCameFrom[T comparable](m map[T]T) map[T]T {
	if m == nil {
		return nil
	}
	c := make(map[T]T, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

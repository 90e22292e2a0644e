// Package astar provides a generic A* shortest-path implementation.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// The library is generic over node type. Expansion is strictly sequential so
// that identical inputs always produce identical results, including the way
// equal-cost ties are broken.
package astar

import (
	"container/heap"
	"context"
	"errors"
)

// ErrNoPath is returned when the open set is exhausted before the goal is
// reached.
var ErrNoPath = errors.New("astar: no path found")

// ErrExpansionLimit is returned when the search expands more nodes than the
// configured limit allows.
var ErrExpansionLimit = errors.New("astar: expansion limit exceeded")

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []Neighbor[NodeType]
}

// Neighbor represents a reachable node with a cost.
type Neighbor[NodeType comparable] struct {
	ID   NodeType
	Cost float64
}

// Heuristic returns the estimated cost from node a to node b
type Heuristic[NodeType comparable] func(from NodeType, to NodeType) float64

// Result contains the outcome of a search
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	MaxExpansions int // zero means no limit
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxExpansions caps how many nodes the search may expand before giving
// up with ErrExpansionLimit.
func WithMaxExpansions(maxExpansions int) Option {
	return func(options *Options) { options.MaxExpansions = maxExpansions }
}

// Search executes the A* search algorithm.
func Search[NodeType comparable](
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option,
) (Result[NodeType], error) {

	// --- Apply options ---
	searchOptions := Options{}
	for _, option := range options {
		option(&searchOptions)
	}

	// --- Initialize state ---
	openSet := make(PriorityQueue[NodeType], 0)
	heap.Init(&openSet)

	startItem := &PriorityQueueItem[NodeType]{
		Node:   startNode,
		GScore: 0.0,
		FCost:  heuristic(startNode, goalNode),
	}
	heap.Push(&openSet, startItem)

	cameFrom := make(map[NodeType]NodeType)
	pathCostFromStart := map[NodeType]float64{startNode: 0.0}
	closedSet := make(map[NodeType]bool)
	openSetMap := make(map[NodeType]*PriorityQueueItem[NodeType])
	openSetMap[startNode] = startItem

	// --- Orchestrator loop ---
	expandedNodes := 0
	for {
		if err := contextObject.Err(); err != nil {
			return Result[NodeType]{}, err
		}
		if openSet.Len() == 0 {
			return Result[NodeType]{
				Path:          nil,
				TotalCost:     0,
				ExpandedNodes: expandedNodes,
				Found:         false,
			}, ErrNoPath
		}

		currentItem := heap.Pop(&openSet).(*PriorityQueueItem[NodeType])
		currentNode := currentItem.Node
		delete(openSetMap, currentNode)

		// Skip if already closed
		if closedSet[currentNode] {
			continue
		}
		closedSet[currentNode] = true
		expandedNodes++
		if searchOptions.MaxExpansions > 0 && expandedNodes > searchOptions.MaxExpansions {
			return Result[NodeType]{ExpandedNodes: expandedNodes}, ErrExpansionLimit
		}

		// Goal check
		if currentNode == goalNode {
			return Result[NodeType]{
				Path:          reconstructPath(cameFrom, currentNode, startNode),
				TotalCost:     currentItem.GScore,
				ExpandedNodes: expandedNodes,
				Found:         true,
			}, nil
		}

		// Relax every neighbor of the current node in the order the graph
		// reports them. Keeping this loop on the orchestrator is what makes
		// equal-cost tie-breaking reproducible.
		for _, neighbor := range graph.Neighbors(currentNode) {
			if closedSet[neighbor.ID] {
				continue
			}
			tentativeG := currentItem.GScore + neighbor.Cost
			currentG, exists := pathCostFromStart[neighbor.ID]
			if exists && tentativeG >= currentG {
				continue
			}
			pathCostFromStart[neighbor.ID] = tentativeG
			cameFrom[neighbor.ID] = currentNode
			f := tentativeG + heuristic(neighbor.ID, goalNode)
			if item, inOpen := openSetMap[neighbor.ID]; !inOpen {
				item = &PriorityQueueItem[NodeType]{
					Node:   neighbor.ID,
					GScore: tentativeG,
					FCost:  f,
				}
				heap.Push(&openSet, item)
				openSetMap[neighbor.ID] = item
			} else if f < item.FCost {
				item.GScore = tentativeG
				item.FCost = f
				heap.Fix(&openSet, item.IndexInQueue)
			}
		}
	}
}

// reconstructPath is internal to the orchestrator.
func reconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	current NodeType,
	start NodeType,
) []NodeType {
	path := []NodeType{current}
	for current != start {
		previousNode, exists := cameFrom[current]
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

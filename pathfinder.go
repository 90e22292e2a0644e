package geopath

import (
	"context"
	"errors"
	"math"

	"github.com/pdrpinto/geopath/astar"
)

// PathFinder is the discrete search capability the pipeline depends on:
// a minimal-cost walk over the occupancy grid with 8-directional adjacency,
// unit cost for orthogonal steps and √2 for diagonal steps. An empty node
// sequence (with a nil error) means the endpoints are unreachable from each
// other.
type PathFinder interface {
	FindPath(ctx context.Context, occupancy *Occupancy, start, end Node) ([]Node, error)
}

// gridGraph adapts an Occupancy to the astar package's graph interface.
type gridGraph struct {
	occupancy *Occupancy
}

var neighborOffsets = [8]Node{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (g gridGraph) Neighbors(n Node) []astar.Neighbor[Node] {
	neighbors := make([]astar.Neighbor[Node], 0, 8)
	for _, offset := range neighborOffsets {
		next := Node{Row: n.Row + offset.Row, Col: n.Col + offset.Col}
		if g.occupancy.Blocked(next) {
			continue
		}
		cost := 1.0
		if offset.Row != 0 && offset.Col != 0 {
			cost = math.Sqrt2
		}
		neighbors = append(neighbors, astar.Neighbor[Node]{ID: next, Cost: cost})
	}
	return neighbors
}

// nodeDistance is the Euclidean distance between two nodes in index space,
// an admissible heuristic for the step costs above.
func nodeDistance(a, b Node) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// gridFinder is the default PathFinder, backed by astar.Search.
type gridFinder struct{}

func (gridFinder) FindPath(ctx context.Context, occupancy *Occupancy, start, end Node) ([]Node, error) {
	result, err := astar.Search(ctx, gridGraph{occupancy}, start, end, nodeDistance)
	if errors.Is(err, astar.ErrNoPath) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result.Path, nil
}

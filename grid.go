package geopath

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/pdrpinto/geopath/internal/units"
)

// Node addresses a single grid cell. Row 0 is the northernmost row, column 0
// the westernmost column.
type Node struct {
	Row, Col int
}

// Grid is the geometry of the rasterized search space: an origin at the
// west/north corner plus cell dimensions in coordinate space. Cells are not
// required to be square.
type Grid struct {
	Origin     orb.Point
	CellWidth  float64
	CellHeight float64
	Rows, Cols int
}

// Coordinate recovers a node's real-world coordinate. This formula is the
// only mapping between grid indices and geometry; no per-node coordinates
// are stored anywhere, so the occupancy scan and the result mapping cannot
// drift apart.
func (g Grid) Coordinate(n Node) orb.Point {
	return orb.Point{
		g.Origin[0] + float64(n.Col)*g.CellWidth,
		g.Origin[1] - float64(n.Row)*g.CellHeight,
	}
}

// Occupancy classifies every grid node as free or blocked. It is built once
// per query and never mutated afterwards, so it may be shared read-only.
type Occupancy struct {
	rows, cols int
	blocked    []bool // row-major
}

func newOccupancy(rows, cols int) *Occupancy {
	return &Occupancy{rows: rows, cols: cols, blocked: make([]bool, rows*cols)}
}

// Rows returns the number of grid rows.
func (o *Occupancy) Rows() int { return o.rows }

// Cols returns the number of grid columns.
func (o *Occupancy) Cols() int { return o.cols }

// Blocked reports whether a node is blocked by an obstacle. Nodes outside
// the grid count as blocked.
func (o *Occupancy) Blocked(n Node) bool {
	if n.Row < 0 || n.Row >= o.rows || n.Col < 0 || n.Col >= o.cols {
		return true
	}
	return o.blocked[n.Row*o.cols+n.Col]
}

func (o *Occupancy) block(n Node) {
	o.blocked[n.Row*o.cols+n.Col] = true
}

// buildGrid derives the grid geometry for a pre-expanded bounding box.
// resolution is a real-world length in the query's units; zero means auto,
// one hundredth of the box's southern edge.
func buildGrid(bound orb.Bound, unit units.Unit, resolution float64) Grid {
	west, south := bound.Min[0], bound.Min[1]
	east, north := bound.Max[0], bound.Max[1]

	southWest := orb.Point{west, south}
	widthDistance := distance(southWest, orb.Point{east, south}, unit)
	heightDistance := distance(southWest, orb.Point{west, north}, unit)

	if resolution <= 0 {
		resolution = widthDistance / 100
	}

	// Turn the linear resolution into a fraction of the box measured
	// along its edges, then back into coordinate space. Cell size stays
	// roughly uniform in real-world distance even where coordinate
	// scaling is not (longitude degrees shrink with latitude).
	cellWidth := resolution / widthDistance * (east - west)
	cellHeight := resolution / heightDistance * (north - south)

	cols := int(math.Floor((east - west) / cellWidth))
	rows := int(math.Floor((north - south) / cellHeight))

	// Flooring leaves some extent over; split it evenly so the grid sits
	// centered in the box rather than flush against one edge.
	marginX := ((east - west) - float64(cols)*cellWidth) / 2
	marginY := ((north - south) - float64(rows)*cellHeight) / 2

	return Grid{
		Origin:     orb.Point{west + marginX, north - marginY},
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Rows:       rows,
		Cols:       cols,
	}
}

// rasterize walks the grid once from north to south and west to east,
// classifying every node against the obstacle set and tracking the free
// node nearest each endpoint. It fails with ErrNoFreeNode when every node
// is blocked.
func rasterize(grid Grid, rings []orb.Ring, start, end orb.Point, unit units.Unit) (*Occupancy, Node, Node, error) {
	occupancy := newOccupancy(grid.Rows, grid.Cols)

	var startNode, endNode Node
	bestToStart := math.Inf(1)
	bestToEnd := math.Inf(1)
	anyFree := false

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			node := Node{Row: row, Col: col}
			coordinate := grid.Coordinate(node)
			if anyRingContains(rings, coordinate) {
				occupancy.block(node)
				continue
			}
			anyFree = true
			// Strict comparisons: a tie keeps the node seen first
			// in scan order.
			if d := distance(coordinate, start, unit); d < bestToStart {
				bestToStart = d
				startNode = node
			}
			if d := distance(coordinate, end, unit); d < bestToEnd {
				bestToEnd = d
				endNode = node
			}
		}
	}

	if !anyFree {
		return nil, Node{}, Node{}, ErrNoFreeNode
	}
	return occupancy, startNode, endNode, nil
}

// Package geopath computes a traversable path between two geographic points
// that avoids a set of polygonal obstacles.
//
// It exposes one main entry point:
//
//   - ShortestPath: rasterize the obstacles onto a grid, search the grid and
//     reconstruct a continuous line from start to end.
//
// The obstacles are converted into an occupancy grid whose resolution is
// expressed in real-world distance units, the grid is searched with a
// weighted 8-directional shortest-path engine (the astar subpackage by
// default, any PathFinder implementation via WithPathFinder), and the result
// is mapped back to coordinates with the caller's exact endpoints preserved.
package geopath

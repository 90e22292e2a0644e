package geopath

import (
	"context"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"

	"github.com/pdrpinto/geopath/internal/units"
)

// boundExpansion grows the combined bounding box before gridding so routes
// can swing around obstacles that touch the box edge.
const boundExpansion = 1.15

// Result contains the outcome of a shortest-path query.
type Result struct {
	// Line connects start to end. Its first and last points are always
	// the caller's exact coordinates, never grid-snapped.
	Line orb.LineString

	// Routed reports that Line came out of the grid search. It is false
	// for the no-obstacle shortcut and for the straight-line fallback
	// accompanying ErrNoRoute.
	Routed bool
}

// ShortestPath computes a path from start to end that avoids the obstacle
// polygons. Both endpoints must be Point geometries; every obstacle feature
// must be a Polygon or MultiPolygon. A nil or empty obstacle collection
// short-circuits to the straight start-end segment.
func ShortestPath(
	ctx context.Context,
	start orb.Geometry,
	end orb.Geometry,
	obstacles *geojson.FeatureCollection,
	options ...Option,
) (Result, error) {

	queryOptions := Options{}
	for _, option := range options {
		option(&queryOptions)
	}

	startPoint, ok := start.(orb.Point)
	if !ok {
		return Result{}, fmt.Errorf("%w: start must be a point, got %s", ErrInvalidArgument, geometryType(start))
	}
	endPoint, ok := end.(orb.Point)
	if !ok {
		return Result{}, fmt.Errorf("%w: end must be a point, got %s", ErrInvalidArgument, geometryType(end))
	}

	unit, err := units.Parse(queryOptions.Units)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if queryOptions.resolutionSet &&
		(math.IsNaN(queryOptions.Resolution) || queryOptions.Resolution <= 0) {
		return Result{}, fmt.Errorf("%w: resolution must be a positive number, got %v",
			ErrInvalidArgument, queryOptions.Resolution)
	}

	rings, err := obstacleRings(obstacles)
	if err != nil {
		return Result{}, err
	}
	if len(rings) == 0 {
		// Nothing to avoid: the straight segment is already optimal.
		return Result{Line: orb.LineString{startPoint, endPoint}}, nil
	}

	bound := scaleBound(combinedBound(rings, startPoint, endPoint), boundExpansion)
	grid := buildGrid(bound, unit, queryOptions.Resolution)

	occupancy, startNode, endNode, err := rasterize(grid, rings, startPoint, endPoint, unit)
	if err != nil {
		return Result{}, err
	}

	finder := queryOptions.PathFinder
	if finder == nil {
		finder = gridFinder{}
	}
	nodes, err := finder.FindPath(ctx, occupancy, startNode, endNode)
	if err != nil {
		return Result{}, err
	}
	if len(nodes) == 0 {
		return Result{Line: orb.LineString{startPoint, endPoint}}, ErrNoRoute
	}

	return Result{Line: reconstruct(startPoint, endPoint, nodes, grid), Routed: true}, nil
}

// obstacleRings collects the outer ring of every obstacle polygon into a
// local slice, leaving the caller's collection untouched. Holes are not
// modeled; inner rings are ignored.
func obstacleRings(obstacles *geojson.FeatureCollection) ([]orb.Ring, error) {
	if obstacles == nil {
		return nil, nil
	}
	rings := make([]orb.Ring, 0, len(obstacles.Features))
	for _, feature := range obstacles.Features {
		switch geometry := feature.Geometry.(type) {
		case orb.Polygon:
			if len(geometry) > 0 {
				rings = append(rings, geometry[0])
			}
		case orb.MultiPolygon:
			for _, polygon := range geometry {
				if len(polygon) > 0 {
					rings = append(rings, polygon[0])
				}
			}
		default:
			return nil, fmt.Errorf("%w: obstacles must be polygons, got %s",
				ErrInvalidArgument, geometryType(feature.Geometry))
		}
	}
	return rings, nil
}

// reconstruct maps the search result back to coordinates via the grid
// formula and wraps it in the caller's exact endpoints. A zero-threshold
// Douglas-Peucker pass then drops consecutive duplicates and exactly
// collinear interior points; endpoints always survive simplification.
func reconstruct(start, end orb.Point, nodes []Node, grid Grid) orb.LineString {
	line := make(orb.LineString, 0, len(nodes)+2)
	line = append(line, start)
	for _, node := range nodes {
		line = append(line, grid.Coordinate(node))
	}
	line = append(line, end)
	return simplify.DouglasPeucker(0).LineString(line)
}

func geometryType(g orb.Geometry) string {
	if g == nil {
		return "nil"
	}
	return g.GeoJSONType()
}

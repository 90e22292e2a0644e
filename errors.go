package geopath

import "errors"

var (
	// ErrInvalidArgument wraps every input validation failure: endpoints
	// that are not points, obstacle features that are not polygons, a
	// non-positive resolution or an unknown unit system.
	ErrInvalidArgument = errors.New("geopath: invalid argument")

	// ErrNoFreeNode means every node of the rasterized grid classified as
	// blocked, so no path can exist at the chosen resolution.
	ErrNoFreeNode = errors.New("geopath: every grid node is blocked")

	// ErrNoRoute means the grid search could not connect the endpoints.
	// It is returned together with a straight start-to-end Result so the
	// caller can still use the degraded line knowingly.
	ErrNoRoute = errors.New("geopath: no obstacle-avoiding route found")
)

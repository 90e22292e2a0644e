package geopath

// Options defines parameters for a shortest-path query.
type Options struct {
	// Units is the distance unit system for Resolution and for the
	// default-resolution computation: "kilometers" (default), "miles",
	// "meters", "degrees" or "radians".
	Units string

	// Resolution is the target real-world distance between adjacent grid
	// nodes, in Units. Zero means auto: one hundredth of the bounding
	// box's southern edge.
	Resolution float64

	// PathFinder runs the discrete search. Nil means the built-in
	// engine backed by the astar subpackage.
	PathFinder PathFinder

	resolutionSet bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithUnits selects the distance unit system.
func WithUnits(units string) Option {
	return func(options *Options) { options.Units = units }
}

// WithResolution sets the grid cell size target, in the query's units.
func WithResolution(resolution float64) Option {
	return func(options *Options) {
		options.Resolution = resolution
		options.resolutionSet = true
	}
}

// WithPathFinder supplies a custom discrete search implementation.
func WithPathFinder(finder PathFinder) Option {
	return func(options *Options) { options.PathFinder = finder }
}

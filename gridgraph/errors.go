package gridgraph

import "errors"

var (
	// ErrEmptyRegion indicates a region with no cells.
	ErrEmptyRegion = errors.New("gridgraph: region must have at least one cell")
	// ErrOutOfBounds indicates a region cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: region cell out of bounds")
	// ErrNoPath indicates no conversion path exists between two regions.
	ErrNoPath = errors.New("gridgraph: no path between regions")
)

// Package dijkstra defines the options, results and sentinel errors of the
// grid shortest-path searches.
//
// Options:
//
//	– Wall:        rune treated as impassable (default '#').
//	– TurnPenalty: extra cost of changing heading in ShortestPathWithTurns
//	               (default 1000, must be ≥ 0).
//	– Heading:     initial heading in ShortestPathWithTurns (default East,
//	               must be cardinal).
//	– Frontier:    FrontierHeap (default) or FrontierLinear.
//	– Logger:      receives one Debug record per search (default: discard).
//
// Errors (sentinel):
//
//	– ErrNilGrid            if the grid pointer is nil.
//	– ErrSourceOutOfBounds  if the source is not a cell of the grid.
//	– ErrSinkOutOfBounds    if the sink is not a cell of the grid.
//	– ErrBadTurnPenalty     (panic) if TurnPenalty < 0.
//	– ErrBadHeading         (panic) if Heading is diagonal or unknown.
//	– ErrBadFrontier        (panic) if Frontier is unknown.
package dijkstra

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/gridwalk/core"
)

// Sentinel errors returned by the searches.
var (
	// ErrNilGrid indicates that a nil *cursor.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceOutOfBounds indicates that the source point lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source point out of bounds")

	// ErrSinkOutOfBounds indicates that the sink point lies outside the grid.
	ErrSinkOutOfBounds = errors.New("dijkstra: sink point out of bounds")

	// ErrBadTurnPenalty indicates a negative turn penalty.
	ErrBadTurnPenalty = errors.New("dijkstra: TurnPenalty must be non-negative")

	// ErrBadHeading indicates a heading that is not one of East, South, West, North.
	ErrBadHeading = errors.New("dijkstra: Heading must be cardinal")

	// ErrBadFrontier indicates an unknown frontier kind.
	ErrBadFrontier = errors.New("dijkstra: unknown Frontier")
)

// Frontier selects the structure holding not-yet-finalized nodes.
type Frontier int

const (
	// FrontierHeap is a binary min-heap with lazy decrease-key. O(log n) per operation.
	FrontierHeap Frontier = iota

	// FrontierLinear scans every pending node for the minimum. O(n) per pop;
	// fine for puzzle-sized grids.
	FrontierLinear
)

// String returns "heap" or "linear".
func (f Frontier) String() string {
	switch f {
	case FrontierHeap:
		return "heap"
	case FrontierLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// ParseFrontier maps "heap" or "linear" to its Frontier.
func ParseFrontier(s string) (Frontier, bool) {
	switch s {
	case "heap":
		return FrontierHeap, true
	case "linear":
		return FrontierLinear, true
	}
	return 0, false
}

// Options configures both searches.
type Options struct {
	Wall        rune           // impassable cell
	TurnPenalty int            // extra cost per heading change
	Heading     core.Direction // initial heading of the turn-aware search
	Frontier    Frontier       // frontier implementation
	Logger      *log.Logger    // debug sink
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the defaults: '#' walls, penalty 1000, heading East,
// heap frontier, discard logger.
func DefaultOptions() Options {
	return Options{
		Wall:        '#',
		TurnPenalty: 1000,
		Heading:     core.East,
		Frontier:    FrontierHeap,
		Logger:      log.New(io.Discard),
	}
}

// WithWall sets the impassable rune.
func WithWall(r rune) Option {
	return func(o *Options) {
		o.Wall = r
	}
}

// WithTurnPenalty sets the extra cost of a heading change.
// Panics with ErrBadTurnPenalty if penalty < 0.
func WithTurnPenalty(penalty int) Option {
	return func(o *Options) {
		if penalty < 0 {
			panic(ErrBadTurnPenalty.Error())
		}
		o.TurnPenalty = penalty
	}
}

// WithHeading sets the initial heading of the turn-aware search.
// Panics with ErrBadHeading unless d is cardinal.
func WithHeading(d core.Direction) Option {
	return func(o *Options) {
		if !d.IsCardinal() {
			panic(ErrBadHeading.Error())
		}
		o.Heading = d
	}
}

// WithFrontier selects the frontier implementation.
// Panics with ErrBadFrontier for unknown kinds.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		if f != FrontierHeap && f != FrontierLinear {
			panic(ErrBadFrontier.Error())
		}
		o.Frontier = f
	}
}

// WithLogger routes the per-search Debug record to l. A nil l keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of ShortestPath.
//
// Found is false when the sink is unreachable; Cost is then 0 and Path empty,
// which keeps "no path" distinct from "path of cost 0" (source == sink).
type Result struct {
	Cost  int          // total cost, valid only if Found
	Found bool         // whether the sink was reached
	Path  []core.Point // source to sink inclusive, following first predecessors
}

// TurnResult is the outcome of ShortestPathWithTurns.
type TurnResult struct {
	Cost  int          // minimal cost over every heading at the sink
	Found bool         // whether the sink was reached
	Cells []core.Point // cells on at least one minimal path, row-major order
}

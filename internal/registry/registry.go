// Package registry provides a global registry of puzzle solvers.
// Puzzle packages register their solvers in init() functions, allowing the
// CLI to discover and run them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknown indicates that no solver is registered for a key.
var ErrUnknown = errors.New("registry: unknown puzzle")

// Solver computes the answer for one puzzle part from the raw input text.
type Solver func(input string) (string, error)

// Key identifies a puzzle part.
type Key struct {
	Year int
	Day  int
	Part int
}

// String formats the key as year/day/part.
func (k Key) String() string {
	return fmt.Sprintf("%d/%d/%d", k.Year, k.Day, k.Part)
}

var (
	solvers = make(map[Key]Solver)
	mu      sync.RWMutex
)

// Register adds a solver to the registry.
// Typically called from a puzzle package's init() function.
// Panics if a solver for the same key is already registered.
func Register(year, day, part int, s Solver) {
	mu.Lock()
	defer mu.Unlock()

	k := Key{Year: year, Day: day, Part: part}
	if _, exists := solvers[k]; exists {
		panic(fmt.Sprintf("registry: puzzle %s already registered", k))
	}
	solvers[k] = s
}

// List returns every registered key, sorted by year, day, then part.
func List() []Key {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Key, 0, len(solvers))
	for k := range solvers {
		result = append(result, k)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.Part < b.Part
	})

	return result
}

// Lookup returns the solver for a puzzle part.
// Returns an error wrapping ErrUnknown if nothing is registered.
func Lookup(year, day, part int) (Solver, error) {
	mu.RLock()
	defer mu.RUnlock()

	k := Key{Year: year, Day: day, Part: part}
	s, ok := solvers[k]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknown, k)
	}
	return s, nil
}

// Solve looks up and runs the solver for a puzzle part.
func Solve(year, day, part int, input string) (string, error) {
	s, err := Lookup(year, day, part)
	if err != nil {
		return "", err
	}
	return s(input)
}

// Exists checks if a solver for the puzzle part is registered.
func Exists(year, day, part int) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := solvers[Key{Year: year, Day: day, Part: part}]
	return ok
}

// Package y2024 registers grid puzzle solvers for the 2024 season.
// Importing it for side effects fills internal/registry.
package y2024

import "errors"

// errNoSolution is returned when a puzzle input has no answer.
var errNoSolution = errors.New("y2024: no solution")
